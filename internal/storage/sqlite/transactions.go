package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rio1412/acoount251013kakei/internal/authz"
	"github.com/rio1412/acoount251013kakei/internal/models"
)

// CreateTransaction inserts a new transaction into the database.
// The tx.ID field is populated if unset. The foreign key constraint
// rejects a UserID that doesn't reference an existing user.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}

	query := `
		INSERT INTO transactions (id, user_id, date, category, amount, note, type)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		tx.ID,
		tx.UserID,
		tx.Date,
		tx.Category,
		tx.Amount,
		tx.Note,
		string(tx.Type),
	)

	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// GetTransaction retrieves a transaction by its ID.
func (s *SQLiteStore) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, date, category, amount, note, type
		FROM transactions
		WHERE id = ?
	`

	tx := &models.Transaction{}
	var txType string
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&tx.ID,
		&tx.UserID,
		&tx.Date,
		&tx.Category,
		&tx.Amount,
		&tx.Note,
		&txType,
	)

	if err == sql.ErrNoRows {
		return nil, nil // Transaction not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	tx.Type = models.TransactionType(txType)
	return tx, nil
}

// ListTransactions returns transactions within the scope, ordered by date
// descending. rowid preserves insertion order for equal dates, keeping the
// ordering stable.
func (s *SQLiteStore) ListTransactions(ctx context.Context, scope authz.Scope) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, date, category, amount, note, type
		FROM transactions
	`
	var args []interface{}
	if !scope.All {
		query += " WHERE user_id = ?"
		args = append(args, scope.UserID)
	}
	query += " ORDER BY date DESC, rowid ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		var txType string
		if err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&tx.Date,
			&tx.Category,
			&tx.Amount,
			&tx.Note,
			&txType,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		tx.Type = models.TransactionType(txType)
		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return txs, nil
}

// DeleteTransaction removes a transaction by ID, reporting whether a row
// was actually deleted.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check deleted rows: %w", err)
	}

	return affected > 0, nil
}
