package models

// Log is an append-only audit record of a user action.
// Logs are written as a side effect of every state-changing or
// session-changing operation and are never mutated or deleted.
type Log struct {
	// ID is the unique identifier for the log entry (UUID format).
	ID string

	// UserID is the acting user's ID. Must reference an existing user
	// at creation time.
	UserID string

	// Action is a free-text description, e.g. "LOGIN" or "ADD_TX id=...".
	Action string

	// Timestamp is the Unix timestamp when the action happened.
	Timestamp int64
}
