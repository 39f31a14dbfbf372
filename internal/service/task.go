package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/kamilaomar/moodtracker/backend/internal/analysis"
	"github.com/kamilaomar/moodtracker/backend/internal/logger"
	"github.com/kamilaomar/moodtracker/backend/internal/models"
	"github.com/kamilaomar/moodtracker/backend/internal/repository"
)

// ErrTaskNotFound is returned for missing tasks and for tasks owned by another user
var ErrTaskNotFound = errors.New("task not found")

// InvalidTimeError reports a task time that is not HH:MM
type InvalidTimeError struct {
	Field string
	Value string
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("%s %q must be a 24-hour HH:MM time", e.Field, e.Value)
}

// FieldTooLongError reports a text field over its length limit
type FieldTooLongError struct {
	Field string
	Max   int
}

func (e *FieldTooLongError) Error() string {
	return fmt.Sprintf("%s must be at most %d characters", e.Field, e.Max)
}

type taskService struct {
	taskRepo repository.TaskRepository
	now      func() time.Time
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskService{
		taskRepo: taskRepo,
		now:      time.Now,
	}
}

func (s *taskService) CreateTask(ctx context.Context, userID string, req *models.CreateTaskRequest) (*models.Task, error) {
	if err := validateTimes(req.StartTime, req.FinishTime); err != nil {
		return nil, err
	}

	id, err := NewTaskID()
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:         id,
		UserID:     userID,
		Title:      req.Title,
		Mood:       req.Mood,
		StartTime:  req.StartTime,
		FinishTime: req.FinishTime,
		CreatedAt:  s.now().UTC(),
	}

	created, err := s.taskRepo.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	logger.Ctx(ctx).Debug("task created", logger.String("task_id", created.ID))
	return created, nil
}

func (s *taskService) GetTask(ctx context.Context, userID, taskID string) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	if task.UserID != userID {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	return s.taskRepo.GetByUserID(ctx, userID)
}

func (s *taskService) UpdateTask(ctx context.Context, userID, taskID string, req *models.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.GetTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	task.Title = req.Title.Apply(task.Title)
	task.Mood = req.Mood.Apply(task.Mood)
	task.StartTime = req.StartTime.Apply(task.StartTime)
	task.FinishTime = req.FinishTime.Apply(task.FinishTime)

	if err := validateLengths(task.Title, task.Mood); err != nil {
		return nil, err
	}
	if err := validateTimes(task.StartTime, task.FinishTime); err != nil {
		return nil, err
	}

	updated, err := s.taskRepo.Update(ctx, task)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTaskNotFound
	}
	return updated, err
}

func (s *taskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	if _, err := s.GetTask(ctx, userID, taskID); err != nil {
		return err
	}

	err := s.taskRepo.Delete(ctx, taskID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTaskNotFound
	}
	return err
}

func validateTimes(start, finish *string) error {
	if start != nil && !analysis.ValidClock(*start) {
		return &InvalidTimeError{Field: "start_time", Value: *start}
	}
	if finish != nil && !analysis.ValidClock(*finish) {
		return &InvalidTimeError{Field: "finish_time", Value: *finish}
	}
	return nil
}

// validateLengths applies the limits CreateTaskRequest enforces through its
// binding tags, counted in runes as the validator does.
func validateLengths(title, mood *string) error {
	if title != nil && utf8.RuneCountInString(*title) > models.MaxTitleLength {
		return &FieldTooLongError{Field: "title", Max: models.MaxTitleLength}
	}
	if mood != nil && utf8.RuneCountInString(*mood) > models.MaxMoodLength {
		return &FieldTooLongError{Field: "mood", Max: models.MaxMoodLength}
	}
	return nil
}
