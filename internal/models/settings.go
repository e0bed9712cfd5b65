package models

import (
	"github.com/casazen/backend/internal/health"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FinancialSettings is the household-level configuration for the financial
// health engine. There is exactly one row per household; the health
// endpoints refuse to compute without it.
type FinancialSettings struct {
	Timestamps
	Household           Household           `json:"-"`
	HouseholdID         uuid.UUID           `gorm:"primaryKey"`
	MinimumReserveType  health.ReserveType  // FIXED or PERCENTAGE
	MinimumReserveValue decimal.Decimal     `gorm:"type:DECIMAL(20,8)"`
	WeekendWeight       decimal.Decimal     `gorm:"type:DECIMAL(20,8)"` // How much more a weekend day weighs, defaults to 1.5
	LowBalanceThreshold decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"` // Alert threshold, defaults to the minimum reserve when unset
}

// BeforeSave defaults and validates the settings.
func (s *FinancialSettings) BeforeSave(_ *gorm.DB) error {
	if s.MinimumReserveType == "" {
		s.MinimumReserveType = health.ReserveFixed
	}

	if s.MinimumReserveType != health.ReserveFixed && s.MinimumReserveType != health.ReservePercentage {
		return ErrReserveTypeInvalid
	}

	if s.MinimumReserveValue.IsNegative() {
		return ErrReserveValueNegative
	}

	if s.WeekendWeight.IsZero() {
		s.WeekendWeight = decimal.NewFromFloat(1.5)
	}

	if !s.WeekendWeight.IsPositive() {
		return ErrWeekendWeightNotPositive
	}

	return nil
}

func (s *FinancialSettings) BeforeCreate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(*FinancialSettings)
	return tx.First(&Household{}, toSave.HouseholdID).Error
}

// Engine returns the settings in the form the health engine consumes.
func (s FinancialSettings) Engine() health.Settings {
	return health.Settings{
		ReserveType:         s.MinimumReserveType,
		ReserveValue:        s.MinimumReserveValue,
		WeekendWeight:       s.WeekendWeight,
		LowBalanceThreshold: s.LowBalanceThreshold,
	}
}
