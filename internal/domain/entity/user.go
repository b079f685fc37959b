// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a single account in the system. Username and Email are
// each globally unique across all accounts; the database enforces both.
type User struct {
	ID           uuid.UUID // The unique identifier for the account, assigned by the store.
	Username     string    // The login identifier, unique across all accounts.
	Email        string    // The contact email, unique across all accounts.
	PasswordHash string    // The bcrypt digest of the password. Never serialized outward.
	Role         Role      // The account's role, either admin or user.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
