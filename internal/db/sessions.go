package db

import (
	"context"
	"time"
)

// CreateSession creates a new session
func (db *DB) CreateSession(ctx context.Context, session *Session) error {
	_, err := db.ExecContext(ctx,
		"INSERT INTO sessions (id, user_id, created_at, expires_at) VALUES (?, ?, ?, ?)",
		session.ID, session.UserID, session.CreatedAt, session.ExpiresAt,
	)
	return err
}

// GetSession retrieves a session by ID
func (db *DB) GetSession(ctx context.Context, id string) (*Session, error) {
	session := &Session{}
	err := db.QueryRowContext(ctx,
		"SELECT id, user_id, created_at, expires_at FROM sessions WHERE id = ?",
		id,
	).Scan(&session.ID, &session.UserID, &session.CreatedAt, &session.ExpiresAt)
	return session, err
}

// DeleteSession deletes a session by ID
func (db *DB) DeleteSession(ctx context.Context, id string) error {
	_, err := db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	return err
}

// DeleteSessionsByUserID deletes all sessions for a user and returns the number removed
func (db *DB) DeleteSessionsByUserID(ctx context.Context, userID string) (int64, error) {
	result, err := db.ExecContext(ctx, "DELETE FROM sessions WHERE user_id = ?", userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteExpiredSessions deletes all sessions that expired before the given time
func (db *DB) DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error) {
	result, err := db.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at < ?", before)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// CountSessions returns the total number of sessions
func (db *DB) CountSessions(ctx context.Context) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions").Scan(&count)
	return count, err
}
