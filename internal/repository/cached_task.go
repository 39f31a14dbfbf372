package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/kamilaomar/moodtracker/backend/internal/logger"
	"github.com/kamilaomar/moodtracker/backend/internal/models"
	"github.com/redis/go-redis/v9"
)

// cacheStore is the subset of the Redis client the task cache needs
type cacheStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CachedTaskRepository caches each user's task list in Redis and drops the
// entry on every write. Redis failures are logged and fall through to the
// wrapped repository.
type CachedTaskRepository struct {
	next  TaskRepository
	store cacheStore
	ttl   time.Duration
}

// NewCachedTaskRepository wraps next with a Redis read cache
func NewCachedTaskRepository(next TaskRepository, client *redis.Client, ttl time.Duration) *CachedTaskRepository {
	return &CachedTaskRepository{next: next, store: client, ttl: ttl}
}

func userTasksKey(userID string) string {
	return "moodtracker:tasks:" + userID
}

func (r *CachedTaskRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	created, err := r.next.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, created.UserID)
	return created, nil
}

func (r *CachedTaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedTaskRepository) GetByUserID(ctx context.Context, userID string) ([]models.Task, error) {
	key := userTasksKey(userID)
	log := logger.Ctx(ctx)

	cached, err := r.store.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var tasks []models.Task
		if err := json.Unmarshal(cached, &tasks); err == nil {
			return tasks, nil
		}
		log.Warn("discarding undecodable task cache entry", logger.String("key", key))
	case !errors.Is(err, redis.Nil):
		log.Warn("task cache read failed", logger.String("key", key), logger.Err(err))
	}

	tasks, err := r.next.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(tasks)
	if err == nil {
		err = r.store.Set(ctx, key, payload, r.ttl).Err()
	}
	if err != nil {
		log.Warn("task cache write failed", logger.String("key", key), logger.Err(err))
	}
	return tasks, nil
}

func (r *CachedTaskRepository) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	updated, err := r.next.Update(ctx, task)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, updated.UserID)
	return updated, nil
}

func (r *CachedTaskRepository) Delete(ctx context.Context, id string) error {
	task, err := r.next.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, task.UserID)
	return nil
}

func (r *CachedTaskRepository) invalidate(ctx context.Context, userID string) {
	if err := r.store.Del(ctx, userTasksKey(userID)).Err(); err != nil {
		logger.Ctx(ctx).Warn("task cache invalidation failed",
			logger.String("user_id", userID),
			logger.Err(err),
		)
	}
}
