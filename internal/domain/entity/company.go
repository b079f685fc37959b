// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a business adhered to the transfer scheme. The CUIT
// (the Argentine tax registration code) is the natural key: exactly one
// company may hold a given CUIT. Companies are created once and never
// updated or deleted by this system.
type Company struct {
	ID           uuid.UUID // The unique identifier for the company, assigned by the store.
	CUIT         string    // The company's tax registration code, unique across all companies.
	BusinessName string    // The company's registered business name.
	AdhesionDate time.Time // When the company adhered to the scheme, assigned at creation.
	CreatedAt    time.Time // Timestamp of when this record was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this record.
}
