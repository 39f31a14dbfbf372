package repository

import (
	"context"
	"testing"
	"time"

	"github.com/kamilaomar/moodtracker/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRepo(t *testing.T) TaskRepository {
	t.Helper()
	db, err := OpenSQL(context.Background(), SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLTaskRepository(db, SQLite)
}

func TestSQLTaskRepository_CreateAndListInOrder(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	for _, id := range []string{"c", "a", "b"} {
		_, err := repo.Create(ctx, &models.Task{
			ID:        id,
			UserID:    "user-1",
			Title:     models.StringPtr("Task " + id),
			Mood:      models.StringPtr("Focused"),
			StartTime: models.StringPtr("08:00"),
			CreatedAt: now,
		})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, &models.Task{ID: "other", UserID: "user-2", CreatedAt: now})
	require.NoError(t, err)

	tasks, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "c", tasks[0].ID)
	assert.Equal(t, "a", tasks[1].ID)
	assert.Equal(t, "b", tasks[2].ID)
	assert.Equal(t, "Task c", *tasks[0].Title)
	assert.Nil(t, tasks[0].FinishTime)
	assert.True(t, tasks[0].CreatedAt.Equal(now))
}

func TestSQLTaskRepository_EmptyUserHasNoTasks(t *testing.T) {
	tasks, err := newSQLiteRepo(t).GetByUserID(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSQLTaskRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	created, err := repo.Create(ctx, &models.Task{
		ID:        "t1",
		UserID:    "user-1",
		Mood:      models.StringPtr("Tired"),
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	created.Mood = nil
	created.Title = models.StringPtr("Home Repairs")
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Nil(t, updated.Mood)
	assert.Equal(t, "Home Repairs", *updated.Title)

	require.NoError(t, repo.Delete(ctx, "t1"))
	_, err = repo.GetByID(ctx, "t1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "t1"), ErrNotFound)
	_, err = repo.Update(ctx, &models.Task{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDialectRebind(t *testing.T) {
	q := `UPDATE tasks SET title = ?, mood = ? WHERE id = ?`
	assert.Equal(t, q, SQLite.rebind(q))
	assert.Equal(t, `UPDATE tasks SET title = $1, mood = $2 WHERE id = $3`, Postgres.rebind(q))
}
