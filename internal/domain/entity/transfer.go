// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Transfer represents a single money movement recorded against an adhered
// company. Transfers reference an existing Company and, like companies,
// are append-only records.
type Transfer struct {
	ID            uuid.UUID // The unique identifier for the transfer, assigned by the store.
	Amount        float64   // The transferred amount.
	CompanyID     uuid.UUID // Links this transfer to the Company it belongs to.
	DebitAccount  string    // The account the amount was debited from.
	CreditAccount string    // The account the amount was credited to.
	TransferDate  time.Time // When the transfer took place, assigned at creation.
	CreatedAt     time.Time // Timestamp of when this record was created.
	UpdatedAt     time.Time // Timestamp of the last modification to this record.
}
