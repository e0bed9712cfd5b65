package models_test

import (
	"github.com/casazen/backend/internal/models"
	"github.com/casazen/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMonthBalanceCreate() {
	household := suite.createTestHousehold(models.Household{})

	balance := suite.createTestMonthBalance(models.MonthBalance{
		HouseholdID: household.ID,
		Month:       types.NewMonth(2026, 6),
		Amount:      decimal.NewFromInt(1500),
	})

	assert.True(suite.T(), balance.Amount.Equal(decimal.NewFromInt(1500)))
}

func (suite *TestSuiteStandard) TestMonthBalanceNegativeAllowed() {
	household := suite.createTestHousehold(models.Household{})

	// A household can start a month in the red
	balance := suite.createTestMonthBalance(models.MonthBalance{
		HouseholdID: household.ID,
		Month:       types.NewMonth(2026, 6),
		Amount:      decimal.NewFromInt(-300),
	})

	assert.True(suite.T(), balance.Amount.IsNegative())
}

func (suite *TestSuiteStandard) TestMonthBalanceUnique() {
	household := suite.createTestHousehold(models.Household{})

	_ = suite.createTestMonthBalance(models.MonthBalance{
		HouseholdID: household.ID,
		Month:       types.NewMonth(2026, 6),
		Amount:      decimal.NewFromInt(1500),
	})

	second := models.MonthBalance{
		HouseholdID: household.ID,
		Month:       types.NewMonth(2026, 6),
		Amount:      decimal.NewFromInt(100),
	}
	err := models.DB.Create(&second).Error
	assert.ErrorIs(suite.T(), err, models.ErrMonthBalanceNotUnique)

	// The same month for another household is fine
	other := suite.createTestHousehold(models.Household{})
	_ = suite.createTestMonthBalance(models.MonthBalance{
		HouseholdID: other.ID,
		Month:       types.NewMonth(2026, 6),
		Amount:      decimal.NewFromInt(100),
	})
}

func (suite *TestSuiteStandard) TestMonthBalanceNonExistingHousehold() {
	balance := models.MonthBalance{
		HouseholdID: uuid.New(),
		Month:       types.NewMonth(2026, 6),
	}

	err := models.DB.Create(&balance).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
