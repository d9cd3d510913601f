package db

import "context"

// CreateTaskEvent appends an event to a task's history
func (db *DB) CreateTaskEvent(ctx context.Context, event *TaskEvent) error {
	_, err := db.ExecContext(ctx,
		"INSERT INTO task_events (id, task_id, user_id, action, detail, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		event.ID, event.TaskID, event.UserID, event.Action, event.Detail, event.CreatedAt,
	)
	return err
}

// ListTaskEvents retrieves a task's history, newest first
func (db *DB) ListTaskEvents(ctx context.Context, taskID string) ([]*TaskEvent, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT id, task_id, user_id, action, detail, created_at FROM task_events WHERE task_id = ? ORDER BY created_at DESC",
		taskID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*TaskEvent
	for rows.Next() {
		event := &TaskEvent{}
		err := rows.Scan(&event.ID, &event.TaskID, &event.UserID, &event.Action, &event.Detail, &event.CreatedAt)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}
