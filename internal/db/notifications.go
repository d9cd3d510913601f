package db

import "context"

// CreateNotification creates a new notification
func (db *DB) CreateNotification(ctx context.Context, notification *Notification) error {
	_, err := db.ExecContext(ctx,
		"INSERT INTO notifications (id, user_id, task_id, type, message, read, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		notification.ID, notification.UserID, notification.TaskID, notification.Type,
		notification.Message, notification.Read, notification.CreatedAt,
	)
	return err
}

// ListNotificationsByUser retrieves a user's notifications, newest first,
// optionally restricted to unread ones
func (db *DB) ListNotificationsByUser(ctx context.Context, userID string, unreadOnly bool) ([]*Notification, error) {
	query := "SELECT id, user_id, task_id, type, message, read, created_at FROM notifications WHERE user_id = ?"
	if unreadOnly {
		query += " AND read = 0"
	}
	query += " ORDER BY created_at DESC"

	rows, err := db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*Notification
	for rows.Next() {
		n := &Notification{}
		err := rows.Scan(&n.ID, &n.UserID, &n.TaskID, &n.Type, &n.Message, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// CountUnreadNotifications returns the number of unread notifications for a user
func (db *DB) CountUnreadNotifications(ctx context.Context, userID string) (int, error) {
	var count int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM notifications WHERE user_id = ? AND read = 0", userID,
	).Scan(&count)
	return count, err
}

// MarkNotificationRead marks a notification as read scoped to its owner and
// returns the number of rows updated
func (db *DB) MarkNotificationRead(ctx context.Context, id, userID string) (int64, error) {
	result, err := db.ExecContext(ctx,
		"UPDATE notifications SET read = 1 WHERE id = ? AND user_id = ?", id, userID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// MarkAllNotificationsRead marks all of a user's notifications as read and
// returns the number of rows updated
func (db *DB) MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error) {
	result, err := db.ExecContext(ctx,
		"UPDATE notifications SET read = 1 WHERE user_id = ? AND read = 0", userID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// CountNotifications returns the total number of notifications
func (db *DB) CountNotifications(ctx context.Context) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM notifications").Scan(&count)
	return count, err
}
