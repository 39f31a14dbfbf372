package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/kamilaomar/moodtracker/backend/internal/models"
	"github.com/kamilaomar/moodtracker/backend/pkg/supabase"
)

const tasksTable = "tasks"

type supabaseTaskRepository struct {
	client *supabase.Client
}

// NewSupabaseTaskRepository creates a task repository backed by Supabase PostgREST
func NewSupabaseTaskRepository(client *supabase.Client) TaskRepository {
	return &supabaseTaskRepository{client: client}
}

func (r *supabaseTaskRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	data := map[string]interface{}{
		"id":          task.ID,
		"user_id":     task.UserID,
		"title":       task.Title,
		"mood":        task.Mood,
		"start_time":  task.StartTime,
		"finish_time": task.FinishTime,
		"created_at":  task.CreatedAt,
	}

	body, err := r.client.Insert(ctx, tasksTable, data)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return firstTask(body)
}

func (r *supabaseTaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	body, err := r.client.Query(ctx, tasksTable, url.Values{
		"id":     {"eq." + id},
		"select": {"*"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return firstTask(body)
}

func (r *supabaseTaskRepository) GetByUserID(ctx context.Context, userID string) ([]models.Task, error) {
	body, err := r.client.Query(ctx, tasksTable, url.Values{
		"user_id": {"eq." + userID},
		"select":  {"*"},
		"order":   {"created_at.asc,id.asc"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}

	var tasks []models.Task
	if err := json.Unmarshal(body, &tasks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tasks: %w", err)
	}
	return tasks, nil
}

func (r *supabaseTaskRepository) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	data := map[string]interface{}{
		"title":       task.Title,
		"mood":        task.Mood,
		"start_time":  task.StartTime,
		"finish_time": task.FinishTime,
	}

	body, err := r.client.Update(ctx, tasksTable, url.Values{"id": {"eq." + task.ID}}, data)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return firstTask(body)
}

func (r *supabaseTaskRepository) Delete(ctx context.Context, id string) error {
	body, err := r.client.Delete(ctx, tasksTable, url.Values{"id": {"eq." + id}})
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	_, err = firstTask(body)
	return err
}

// firstTask decodes a PostgREST representation, mapping an empty result to ErrNotFound
func firstTask(body []byte) (*models.Task, error) {
	var tasks []models.Task
	if err := json.Unmarshal(body, &tasks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(tasks) == 0 {
		return nil, ErrNotFound
	}
	return &tasks[0], nil
}
