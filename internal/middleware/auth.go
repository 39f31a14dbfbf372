package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kamilaomar/moodtracker/backend/internal/apierror"
	"github.com/kamilaomar/moodtracker/backend/internal/logger"
	"github.com/kamilaomar/moodtracker/backend/pkg/supabase"
)

// TokenVerifier resolves a bearer token into its user
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*supabase.User, error)
}

// Auth verifies the bearer token and requires it to belong to the user
// named by the :user_id path parameter.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.Ctx(c.Request.Context())
		requestID := apierror.GetRequestID(c)

		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			log.Debug("authentication failed: missing or malformed authorization header")
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
			return
		}

		user, err := verifier.VerifyToken(c.Request.Context(), token)
		if err != nil {
			log.Warn("authentication failed: token verification error", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
			return
		}

		if pathUser := c.Param("user_id"); pathUser != "" && pathUser != user.ID {
			log.Warn("authenticated user does not own the requested tasks",
				logger.String("token_user_id", user.ID),
				logger.String("path_user_id", pathUser),
			)
			apierror.WriteProblem(c, apierror.NewForbiddenError(requestID))
			return
		}

		c.Set("user_id", user.ID)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), user.ID))

		c.Next()
	}
}
