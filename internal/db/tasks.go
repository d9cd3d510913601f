package db

import (
	"context"
	"database/sql"
	"time"
)

const taskColumns = "id, user_id, title, description, status, due_date, completed_at, reminder_sent, created_at, updated_at"

// scanTask scans a task row handling nullable due_date and completed_at
func scanTask(scan func(dest ...interface{}) error) (*Task, error) {
	task := &Task{}
	var dueDate, completedAt sql.NullTime
	err := scan(&task.ID, &task.UserID, &task.Title, &task.Description, &task.Status,
		&dueDate, &completedAt, &task.ReminderSent, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if dueDate.Valid {
		task.DueDate = &dueDate.Time
	}
	if completedAt.Valid {
		task.CompletedAt = &completedAt.Time
	}
	return task, nil
}

// CreateTask creates a new task
func (db *DB) CreateTask(ctx context.Context, task *Task) error {
	_, err := db.ExecContext(ctx,
		"INSERT INTO tasks (id, user_id, title, description, status, due_date, completed_at, reminder_sent, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		task.ID, task.UserID, task.Title, task.Description, task.Status,
		task.DueDate, task.CompletedAt, task.ReminderSent, task.CreatedAt, task.UpdatedAt,
	)
	return err
}

// GetTask retrieves a task by ID scoped to its owner
func (db *DB) GetTask(ctx context.Context, id, userID string) (*Task, error) {
	row := db.QueryRowContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = ? AND user_id = ?",
		id, userID,
	)
	return scanTask(row.Scan)
}

// ListTasksByUser retrieves a user's tasks, newest first, optionally filtered by status
func (db *DB) ListTasksByUser(ctx context.Context, userID, status string) ([]*Task, error) {
	query := "SELECT " + taskColumns + " FROM tasks WHERE user_id = ?"
	args := []interface{}{userID}
	if status != "" {
		query += " AND status = ?"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*Task
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// UpdateTask updates a task's mutable fields and refreshes UpdatedAt on the struct
func (db *DB) UpdateTask(ctx context.Context, task *Task) error {
	now := time.Now()
	_, err := db.ExecContext(ctx,
		"UPDATE tasks SET title = ?, description = ?, status = ?, due_date = ?, completed_at = ?, reminder_sent = ?, updated_at = ? WHERE id = ? AND user_id = ?",
		task.Title, task.Description, task.Status, task.DueDate, task.CompletedAt,
		task.ReminderSent, now, task.ID, task.UserID,
	)
	if err != nil {
		return err
	}
	task.UpdatedAt = now
	return nil
}

// DeleteTask deletes a task scoped to its owner and returns the number of rows removed
func (db *DB) DeleteTask(ctx context.Context, id, userID string) (int64, error) {
	result, err := db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// ListTasksDueBefore retrieves unfinished tasks with a due date before the cutoff
// that have not had a reminder sent yet
func (db *DB) ListTasksDueBefore(ctx context.Context, cutoff time.Time) ([]*Task, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE due_date IS NOT NULL AND due_date <= ? AND status != ? AND reminder_sent = 0",
		cutoff, TaskStatusCompleted,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*Task
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// MarkTaskReminderSent sets the reminder flag for a task
func (db *DB) MarkTaskReminderSent(ctx context.Context, id string) error {
	_, err := db.ExecContext(ctx, "UPDATE tasks SET reminder_sent = 1 WHERE id = ?", id)
	return err
}

// CountTasks returns the total number of tasks
func (db *DB) CountTasks(ctx context.Context) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tasks").Scan(&count)
	return count, err
}
