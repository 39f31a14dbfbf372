package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamilaomar/moodtracker/backend/internal/logger"
	"github.com/kamilaomar/moodtracker/backend/internal/middleware"
)

// RouterConfig selects the middleware wrapped around the API
type RouterConfig struct {
	Env         string
	Logger      logger.Logger
	CORSOrigins []string
	// RateLimiter is optional; nil disables rate limiting
	RateLimiter *middleware.RateLimiter
	// Verifier is optional; nil leaves the user routes unauthenticated
	Verifier middleware.TokenVerifier
}

// NewRouter builds the gin engine with every route of the API
func NewRouter(cfg RouterConfig, taskHandler *TaskHandler, analysisHandler *AnalysisHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Logger))
	router.Use(middleware.SecurityHeaders(cfg.Env == "production"))
	router.Use(middleware.CORS(cfg.CORSOrigins))
	if cfg.RateLimiter != nil {
		router.Use(middleware.RateLimit(cfg.RateLimiter))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	v1 := router.Group("/api/v1")
	users := v1.Group("/users/:user_id")
	if cfg.Verifier != nil {
		users.Use(middleware.Auth(cfg.Verifier))
	}
	{
		users.GET("/tasks", taskHandler.ListTasks)
		users.POST("/tasks", taskHandler.CreateTask)
		users.GET("/tasks/:id", taskHandler.GetTask)
		users.PATCH("/tasks/:id", taskHandler.UpdateTask)
		users.DELETE("/tasks/:id", taskHandler.DeleteTask)

		users.GET("/analysis", analysisHandler.GetAnalysis)
	}

	return router
}
