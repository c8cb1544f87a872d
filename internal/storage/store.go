// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/rio1412/acoount251013kakei/internal/authz"
	"github.com/rio1412/acoount251013kakei/internal/models"
)

// ErrDuplicateUsername is returned by CreateUser when the username is
// already taken.
var ErrDuplicateUsername = errors.New("username already exists")

// Store defines the interface for bookkeeping storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the handlers.
//
// Lookup methods return (nil, nil) when the record does not exist; errors
// are reserved for storage failures. Ownership and role checks are the
// caller's responsibility, not the store's.
type Store interface {
	// CreateUser persists a new user. The user.ID and user.CreatedAt
	// fields are populated by the store. Fails with ErrDuplicateUsername
	// if the username is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by their unique username.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves a user by their ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetUsersByIDs retrieves multiple users keyed by ID. Users that
	// don't exist are omitted from the result.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)

	// ListUsers returns all users in creation order.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CountUsers returns the number of registered users.
	CountUsers(ctx context.Context) (int, error)

	// CreateTransaction persists a new transaction. The tx.ID field is
	// populated by the store. tx.UserID must reference an existing user.
	CreateTransaction(ctx context.Context, tx *models.Transaction) error

	// GetTransaction retrieves a transaction by its ID.
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)

	// ListTransactions returns transactions within the scope, ordered by
	// date descending; equal dates keep insertion order.
	ListTransactions(ctx context.Context, scope authz.Scope) ([]models.Transaction, error)

	// DeleteTransaction removes a transaction, reporting whether a row
	// was actually deleted.
	DeleteTransaction(ctx context.Context, id string) (bool, error)

	// AppendLog records an audit log entry for the user.
	AppendLog(ctx context.Context, userID, action string) error

	// ListLogs returns all audit log entries, newest first.
	ListLogs(ctx context.Context) ([]models.Log, error)

	// Close releases any resources held by the store.
	Close() error
}
