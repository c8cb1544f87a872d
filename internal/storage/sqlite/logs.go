package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rio1412/acoount251013kakei/internal/models"
)

// AppendLog records an audit log entry for the user.
// Logs are append-only; there is no update or delete path.
func (s *SQLiteStore) AppendLog(ctx context.Context, userID, action string) error {
	query := `
		INSERT INTO logs (id, user_id, action, timestamp)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		uuid.New().String(),
		userID,
		action,
		time.Now().Unix(),
	)

	if err != nil {
		return fmt.Errorf("failed to append log: %w", err)
	}

	return nil
}

// ListLogs returns all audit log entries, newest first.
func (s *SQLiteStore) ListLogs(ctx context.Context) ([]models.Log, error) {
	query := `
		SELECT id, user_id, action, timestamp
		FROM logs
		ORDER BY timestamp DESC, rowid DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	defer rows.Close()

	var logs []models.Log
	for rows.Next() {
		var entry models.Log
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Action,
			&entry.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan log: %w", err)
		}
		logs = append(logs, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating logs: %w", err)
	}

	return logs, nil
}
