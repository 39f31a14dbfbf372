package service

import (
	"context"

	"github.com/kamilaomar/moodtracker/backend/internal/models"
	"github.com/kamilaomar/moodtracker/backend/internal/repository"
)

// mockTaskRepository is an in-memory TaskRepository for testing
type mockTaskRepository struct {
	tasks   map[string]*models.Task
	order   []string
	listErr error
}

func newMockTaskRepository() *mockTaskRepository {
	return &mockTaskRepository{tasks: make(map[string]*models.Task)}
}

func (m *mockTaskRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	stored := *task
	m.tasks[task.ID] = &stored
	m.order = append(m.order, task.ID)
	out := stored
	return &out, nil
}

func (m *mockTaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	task, ok := m.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *task
	return &out, nil
}

func (m *mockTaskRepository) GetByUserID(ctx context.Context, userID string) ([]models.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := []models.Task{}
	for _, id := range m.order {
		if task, ok := m.tasks[id]; ok && task.UserID == userID {
			result = append(result, *task)
		}
	}
	return result, nil
}

func (m *mockTaskRepository) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	existing, ok := m.tasks[task.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	existing.Title = task.Title
	existing.Mood = task.Mood
	existing.StartTime = task.StartTime
	existing.FinishTime = task.FinishTime
	out := *existing
	return &out, nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.tasks, id)
	return nil
}
