package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransferModel mirrors the 'transfers' table. CompanyID references companies.id.
type TransferModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Amount        float64   `gorm:"type:numeric(15,2);not null"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index"`
	DebitAccount  string    `gorm:"type:varchar(50);not null"`
	CreditAccount string    `gorm:"type:varchar(50);not null"`
	TransferDate  time.Time `gorm:"not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransferModel) TableName() string {
	return "transfers"
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (m *TransferModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
