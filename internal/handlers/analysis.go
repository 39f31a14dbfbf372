package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamilaomar/moodtracker/backend/internal/service"
)

type AnalysisHandler struct {
	analysisService service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// GetAnalysis handles GET /api/v1/users/:user_id/analysis
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	report, err := h.analysisService.Analyze(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, report)
}
