// Package models defines the core domain models for the bookkeeping API.
//
// # Models
//
//   - User: a registered account with a role (user or admin)
//   - Transaction: a single income or expense entry owned by a user
//   - Log: an append-only audit record of a user action
//
// # Relationships
//
// A User owns zero or more Transactions and Logs. Ownership is expressed as
// ID strings on the owned records, never as back-pointers, to avoid circular
// references. Users are never deleted, so no cascade semantics are defined.
//
// # Design Principles
//
//  1. Role and TransactionType are closed enumerations, not free-form
//     strings; authorization and rendering switch on them, instead of string
//     comparisons scattered across handlers.
//  2. Records are plain structs with no behavior beyond validation helpers;
//     persistence concerns live in the storage package.
package models
