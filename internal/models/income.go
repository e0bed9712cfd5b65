package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is money received by the household, dated at the day it was or
// will be received.
type Income struct {
	DefaultModel
	Household   Household `json:"-"`
	HouseholdID uuid.UUID
	Name        string
	Note        string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        time.Time
}

// BeforeSave trims whitespace and normalizes the date to UTC. An income
// without a date is received right now.
func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)
	i.Note = strings.TrimSpace(i.Note)

	if i.Date.IsZero() {
		i.Date = time.Now().In(time.UTC)
	} else {
		i.Date = i.Date.In(time.UTC)
	}

	return nil
}

func (i *Income) BeforeCreate(tx *gorm.DB) error {
	_ = i.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Income)
	return i.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the income before
// committing an update to the database.
func (i *Income) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Income)

	if tx.Statement.Changed("HouseholdID") {
		err := i.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

func (i *Income) checkIntegrity(tx *gorm.DB, toSave Income) error {
	return tx.First(&Household{}, toSave.HouseholdID).Error
}

func (i *Income) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(i.Amount) {
		return ErrAmountNotPositive
	}

	return nil
}
