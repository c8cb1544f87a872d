package models

import "time"

// TransactionType is the closed set of transaction kinds.
type TransactionType string

const (
	// TypeIncome marks money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense marks money going out.
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the defined transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Label returns the human-readable label used in exports:
// 収入 for income, 支出 for expense.
func (t TransactionType) Label() string {
	if t == TypeIncome {
		return "収入"
	}
	return "支出"
}

// Transaction represents a single income or expense entry.
// Transactions are created and deleted but never updated.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string

	// UserID is the owning user's ID. Immutable; must reference an
	// existing user at creation time.
	UserID string

	// Date is when the transaction occurred (not when it was recorded).
	Date time.Time

	// Category groups transactions for reporting (e.g. "food", "salary").
	Category string

	// Amount is the transaction value. Always non-negative; direction is
	// carried by Type.
	Amount float64

	// Note is an optional free-text memo.
	Note string

	// Type marks the entry as income or expense.
	Type TransactionType
}
