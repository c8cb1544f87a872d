package models

// Role is the closed set of authorization roles a user can hold.
type Role string

const (
	// RoleUser is a regular account: sees and manages only its own records.
	RoleUser Role = "user"
	// RoleAdmin can manage users and read or delete any transaction.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered user account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Username is the unique login name. Immutable after creation.
	Username string

	// PasswordHash is the opaque stored digest of the user's password.
	// Only the auth package knows its format.
	PasswordHash string

	// Role determines what the user is authorized to do.
	Role Role

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}
