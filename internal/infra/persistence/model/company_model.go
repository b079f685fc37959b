package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyModel mirrors the 'companies' table.
type CompanyModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CUIT         string    `gorm:"column:cuit;type:varchar(20);uniqueIndex;not null"`
	BusinessName string    `gorm:"type:varchar(255);not null"`
	AdhesionDate time.Time `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Transfers []TransferModel `gorm:"foreignKey:CompanyID"`
}

// TableName explicitly sets the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (m *CompanyModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
