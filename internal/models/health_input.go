package models

import (
	"errors"
	"time"

	"github.com/casazen/backend/internal/health"
	"github.com/casazen/backend/internal/types"
	"gorm.io/gorm"
)

// HealthInput loads everything the financial health engine needs for one
// month of this household.
//
// Missing financial settings are an error: the engine never computes with
// invented financial data. A missing month balance only means the month
// starts at zero.
func (h Household) HealthInput(db *gorm.DB, month types.Month, now time.Time) (health.Input, error) {
	input := health.Input{
		Month: month,
		Now:   now,
	}

	var settings FinancialSettings
	err := db.First(&settings, "household_id = ?", h.ID).Error
	if err != nil {
		return health.Input{}, err
	}
	input.Settings = settings.Engine()

	var opening MonthBalance
	err = db.First(&opening, "household_id = ? AND month = ?", h.ID, month).Error
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		return health.Input{}, err
	}
	input.OpeningBalance = opening.Amount

	from := month.First()
	until := month.AddDate(0, 1).First()

	var incomes []Income
	err = db.
		Where("household_id = ? AND date >= ? AND date < ?", h.ID, from, until).
		Order("date ASC").
		Find(&incomes).Error
	if err != nil {
		return health.Input{}, err
	}

	for _, income := range incomes {
		input.Incomes = append(input.Incomes, health.Event{
			Date:   income.Date,
			Amount: income.Amount,
		})
	}

	var expenses []Expense
	err = db.
		Where("household_id = ? AND date >= ? AND date < ?", h.ID, from, until).
		Order("date ASC").
		Find(&expenses).Error
	if err != nil {
		return health.Input{}, err
	}

	for _, expense := range expenses {
		input.Expenses = append(input.Expenses, health.Event{
			Date:   expense.Date,
			Amount: expense.Amount,
			Tier:   expense.Priority,
		})
	}

	return input, nil
}

// Snapshot computes the financial health snapshot for one month of this
// household.
func (h Household) Snapshot(db *gorm.DB, month types.Month, now time.Time) (health.Snapshot, error) {
	input, err := h.HealthInput(db, month, now)
	if err != nil {
		return health.Snapshot{}, err
	}

	return health.Compute(input), nil
}
