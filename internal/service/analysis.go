package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kamilaomar/moodtracker/backend/internal/analysis"
	"github.com/kamilaomar/moodtracker/backend/internal/logger"
	"github.com/kamilaomar/moodtracker/backend/internal/models"
	"github.com/kamilaomar/moodtracker/backend/internal/repository"
)

type analysisService struct {
	taskRepo repository.TaskRepository
	engine   *analysis.Engine
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(taskRepo repository.TaskRepository, engine *analysis.Engine) AnalysisService {
	return &analysisService{
		taskRepo: taskRepo,
		engine:   engine,
	}
}

// Analyze loads the user's tasks and builds their report. Repository errors
// are returned wrapped; a malformed stored time yields *analysis.TimeParseError.
func (s *analysisService) Analyze(ctx context.Context, userID string) (*models.AnalysisReport, error) {
	start := time.Now()
	log := logger.Ctx(ctx)

	tasks, err := s.taskRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}

	report, err := s.engine.Analyze(tasks)
	if err != nil {
		log.Warn("task analysis failed", logger.Int("tasks", len(tasks)), logger.Err(err))
		return nil, err
	}

	log.Info("task analysis completed",
		logger.Int("tasks", len(tasks)),
		logger.Int("moods", len(report.ProductiveMinutesPerMood)),
		logger.Int("avoid_tasks", len(report.AvoidTasks)),
		logger.Duration("duration", time.Since(start)),
	)
	return report, nil
}
