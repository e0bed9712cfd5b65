package models_test

import (
	"testing"
	"time"

	"github.com/casazen/backend/internal/health"
	"github.com/casazen/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExpensePriorityDefault() {
	household := suite.createTestHousehold(models.Household{})

	// Without rules, an expense without a tier is flexible
	expense := suite.createTestExpense(models.Expense{
		HouseholdID: household.ID,
		Name:        "Groceries",
		Amount:      decimal.NewFromInt(120),
	})

	assert.Equal(suite.T(), health.TierDefault, expense.Priority)
}

func (suite *TestSuiteStandard) TestExpensePriorityInvalid() {
	household := suite.createTestHousehold(models.Household{})

	expense := models.Expense{
		HouseholdID: household.ID,
		Name:        "Groceries",
		Amount:      decimal.NewFromInt(120),
		Priority:    health.Tier("P9"),
	}

	err := models.DB.Create(&expense).Error
	assert.ErrorIs(suite.T(), err, models.ErrPriorityTierInvalid)
}

func (suite *TestSuiteStandard) TestExpensePriorityRuleMatching() {
	household := suite.createTestHousehold(models.Household{})

	suite.createTestPriorityRule(models.PriorityRule{
		HouseholdID: household.ID,
		Priority:    1,
		Match:       "Rent*",
		Tier:        health.TierP1,
	})
	suite.createTestPriorityRule(models.PriorityRule{
		HouseholdID: household.ID,
		Priority:    2,
		Match:       "*",
		Tier:        health.TierP4,
	})

	tests := []struct {
		name string
		tier health.Tier
	}{
		// The first rule in priority order wins
		{"Rent June", health.TierP1},
		{"Groceries", health.TierP4},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			expense := suite.createTestExpense(models.Expense{
				HouseholdID: household.ID,
				Name:        tt.name,
				Amount:      decimal.NewFromInt(100),
			})

			assert.Equal(t, tt.tier, expense.Priority)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseExplicitPriorityWins() {
	household := suite.createTestHousehold(models.Household{})

	suite.createTestPriorityRule(models.PriorityRule{
		HouseholdID: household.ID,
		Priority:    1,
		Match:       "*",
		Tier:        health.TierP4,
	})

	// An explicit tier is never overridden by rules
	expense := suite.createTestExpense(models.Expense{
		HouseholdID: household.ID,
		Name:        "Medication",
		Amount:      decimal.NewFromInt(80),
		Priority:    health.TierP1,
	})

	assert.Equal(suite.T(), health.TierP1, expense.Priority)
}

func (suite *TestSuiteStandard) TestExpenseNonExistingHousehold() {
	expense := models.Expense{
		HouseholdID: uuid.New(),
		Name:        "Rent",
		Amount:      decimal.NewFromInt(1200),
		Date:        time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
	}

	err := models.DB.Create(&expense).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestExpenseAmountPositive() {
	household := suite.createTestHousehold(models.Household{})

	expense := models.Expense{
		HouseholdID: household.ID,
		Name:        "Nothing",
		Amount:      decimal.Zero,
	}

	err := models.DB.Create(&expense).Error
	assert.ErrorIs(suite.T(), err, models.ErrAmountNotPositive)
}
