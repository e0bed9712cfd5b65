package models

import (
	"strings"

	"github.com/casazen/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthBalance is the balance a household carries into a month. The amount
// may be negative. Months without a row start at zero.
type MonthBalance struct {
	Timestamps
	Household   Household       `json:"-"`
	HouseholdID uuid.UUID       `gorm:"primaryKey"`
	Month       types.Month     `gorm:"primaryKey"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note        string
}

func (m *MonthBalance) BeforeSave(_ *gorm.DB) error {
	m.Note = strings.TrimSpace(m.Note)
	return nil
}

func (m *MonthBalance) BeforeCreate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(*MonthBalance)
	return tx.First(&Household{}, toSave.HouseholdID).Error
}
