package repository

import (
	"context"
	"errors"

	"github.com/kamilaomar/moodtracker/backend/internal/models"
)

// ErrNotFound is returned when a task does not exist
var ErrNotFound = errors.New("task not found")

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_task_repository.go -package=mocks

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	// GetByUserID returns the user's tasks in the order they were created
	GetByUserID(ctx context.Context, userID string) ([]models.Task, error)
	// Update replaces title, mood and times of an existing task
	Update(ctx context.Context, task *models.Task) (*models.Task, error)
	Delete(ctx context.Context, id string) error
}
