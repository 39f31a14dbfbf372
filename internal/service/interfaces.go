package service

import (
	"context"

	"github.com/kamilaomar/moodtracker/backend/internal/models"
)

// TaskService defines the interface for task business logic
type TaskService interface {
	CreateTask(ctx context.Context, userID string, req *models.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, userID, taskID string) (*models.Task, error)
	ListTasks(ctx context.Context, userID string) ([]models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID string, req *models.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
}

// AnalysisService runs the task analysis for a user
type AnalysisService interface {
	Analyze(ctx context.Context, userID string) (*models.AnalysisReport, error)
}
