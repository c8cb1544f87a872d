// Package authz holds the role-based authorization rules as pure decision
// functions. Nothing here touches storage or the request; handlers gather
// the actor and the record, authz only answers yes or no.
package authz

import (
	"github.com/rio1412/acoount251013kakei/internal/models"
)

// Scope restricts a transaction list or export query.
type Scope struct {
	// All is true when the actor may see every user's transactions.
	All bool
	// UserID is the owning user the query is restricted to when All is
	// false.
	UserID string
}

// ScopeAll covers every user's transactions.
func ScopeAll() Scope {
	return Scope{All: true}
}

// ScopeOwnedBy covers only transactions owned by the given user.
func ScopeOwnedBy(userID string) Scope {
	return Scope{UserID: userID}
}

// CanReadTransaction reports whether actor may read tx:
// admins read everything, users read their own.
func CanReadTransaction(actor *models.User, tx *models.Transaction) bool {
	return actor.Role == models.RoleAdmin || tx.UserID == actor.ID
}

// CanDeleteTransaction reports whether actor may delete tx.
// Same rule as reading: admins or the owner.
func CanDeleteTransaction(actor *models.User, tx *models.Transaction) bool {
	return CanReadTransaction(actor, tx)
}

// CanManageUsers reports whether actor may list or create users.
func CanManageUsers(actor *models.User) bool {
	return actor.Role == models.RoleAdmin
}

// TransactionScope returns the list scope for the actor: everything for
// admins, only their own records for everyone else.
func TransactionScope(actor *models.User) Scope {
	if actor.Role == models.RoleAdmin {
		return ScopeAll()
	}
	return ScopeOwnedBy(actor.ID)
}
