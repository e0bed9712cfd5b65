package models

import (
	"strings"
	"time"

	"github.com/casazen/backend/internal/health"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is money spent by the household, dated at the day it was or will
// be paid. Future expenses carry a priority tier from essential (P1) to
// fully flexible (P4).
type Expense struct {
	DefaultModel
	Household   Household `json:"-"`
	HouseholdID uuid.UUID
	Name        string
	Note        string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        time.Time
	Priority    health.Tier
}

// BeforeSave trims whitespace, normalizes the date to UTC and resolves the
// priority tier: an explicit tier is validated, an empty one is resolved
// through the household's priority rules, falling back to the default tier.
func (e *Expense) BeforeSave(tx *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Note = strings.TrimSpace(e.Note)

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	if e.Priority == "" {
		e.Priority = matchPriorityRules(tx, e.HouseholdID, e.Name)
	}

	if !e.Priority.Valid() {
		return ErrPriorityTierInvalid
	}

	return nil
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Expense)
	return e.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the expense before
// committing an update to the database.
func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Expense)

	if tx.Statement.Changed("HouseholdID") {
		err := e.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

func (e *Expense) checkIntegrity(tx *gorm.DB, toSave Expense) error {
	return tx.First(&Household{}, toSave.HouseholdID).Error
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(e.Amount) {
		return ErrAmountNotPositive
	}

	return nil
}
