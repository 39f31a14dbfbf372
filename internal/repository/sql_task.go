package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kamilaomar/moodtracker/backend/internal/models"

	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Dialect captures the differences between the SQL backends
type Dialect struct {
	DriverName string
	schema     []string
	numbered   bool // $1 placeholders instead of ?
}

var (
	Postgres = Dialect{
		DriverName: "postgres",
		numbered:   true,
		schema: []string{
			`CREATE TABLE IF NOT EXISTS tasks (
				seq         BIGSERIAL PRIMARY KEY,
				id          TEXT NOT NULL UNIQUE,
				user_id     TEXT NOT NULL,
				title       TEXT,
				mood        TEXT,
				start_time  TEXT,
				finish_time TEXT,
				created_at  TIMESTAMPTZ NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS tasks_user_id_seq_idx ON tasks (user_id, seq)`,
		},
	}

	SQLite = Dialect{
		DriverName: "sqlite3",
		schema: []string{
			`CREATE TABLE IF NOT EXISTS tasks (
				seq         INTEGER PRIMARY KEY AUTOINCREMENT,
				id          TEXT NOT NULL UNIQUE,
				user_id     TEXT NOT NULL,
				title       TEXT,
				mood        TEXT,
				start_time  TEXT,
				finish_time TEXT,
				created_at  DATETIME NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS tasks_user_id_seq_idx ON tasks (user_id, seq)`,
		},
	}
)

// rebind rewrites ? placeholders for dialects that number them
func (d Dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type sqlTaskRepository struct {
	db      *sql.DB
	dialect Dialect
}

// OpenSQL opens a database for the dialect and creates the tasks table if needed
func OpenSQL(ctx context.Context, dialect Dialect, dsn string) (*sql.DB, error) {
	db, err := sql.Open(dialect.DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dialect.DriverName, err)
	}

	// An in-memory SQLite database lives and dies with its connection.
	if dialect.DriverName == SQLite.DriverName {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", dialect.DriverName, err)
	}

	for _, stmt := range dialect.schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return db, nil
}

// NewSQLTaskRepository creates a task repository on an opened database
func NewSQLTaskRepository(db *sql.DB, dialect Dialect) TaskRepository {
	return &sqlTaskRepository{db: db, dialect: dialect}
}

const taskColumns = `id, user_id, title, mood, start_time, finish_time, created_at`

func (r *sqlTaskRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	query := r.dialect.rebind(`INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.UserID, task.Title, task.Mood, task.StartTime, task.FinishTime, task.CreatedAt.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return r.GetByID(ctx, task.ID)
}

func (r *sqlTaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	query := r.dialect.rebind(`SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`)
	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

func (r *sqlTaskRepository) GetByUserID(ctx context.Context, userID string) ([]models.Task, error) {
	query := r.dialect.rebind(`SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? ORDER BY seq`)
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}

func (r *sqlTaskRepository) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	query := r.dialect.rebind(`UPDATE tasks SET title = ?, mood = ?, start_time = ?, finish_time = ? WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, task.Title, task.Mood, task.StartTime, task.FinishTime, task.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, task.ID)
}

func (r *sqlTaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.dialect.rebind(`DELETE FROM tasks WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return requireAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var (
		task                            models.Task
		title, mood, startTime, finTime sql.NullString
	)
	if err := row.Scan(&task.ID, &task.UserID, &title, &mood, &startTime, &finTime, &task.CreatedAt); err != nil {
		return nil, err
	}
	task.Title = nullString(title)
	task.Mood = nullString(mood)
	task.StartTime = nullString(startTime)
	task.FinishTime = nullString(finTime)
	return &task, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
