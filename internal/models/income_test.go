package models_test

import (
	"testing"
	"time"

	"github.com/casazen/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestIncomeCreate() {
	household := suite.createTestHousehold(models.Household{})

	income := suite.createTestIncome(models.Income{
		HouseholdID: household.ID,
		Name:        "Salary",
		Amount:      decimal.NewFromInt(3500),
		Date:        time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC),
	})

	assert.NotEqual(suite.T(), uuid.Nil, income.ID)
}

func (suite *TestSuiteStandard) TestIncomeNonExistingHousehold() {
	income := models.Income{
		HouseholdID: uuid.New(),
		Name:        "Salary",
		Amount:      decimal.NewFromInt(3500),
	}

	err := models.DB.Create(&income).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestIncomeAmountPositive() {
	household := suite.createTestHousehold(models.Household{})

	tests := []struct {
		name   string
		amount decimal.Decimal
		err    error
	}{
		{"positive", decimal.NewFromFloat(0.01), nil},
		{"zero", decimal.Zero, models.ErrAmountNotPositive},
		{"negative", decimal.NewFromInt(-10), models.ErrAmountNotPositive},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			income := models.Income{
				HouseholdID: household.ID,
				Name:        tt.name,
				Amount:      tt.amount,
			}

			err := models.DB.Create(&income).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestIncomeDateDefaults() {
	household := suite.createTestHousehold(models.Household{})

	income := suite.createTestIncome(models.Income{
		HouseholdID: household.ID,
		Amount:      decimal.NewFromInt(100),
	})

	// An income without a date is received right now
	assert.WithinDuration(suite.T(), time.Now(), income.Date, time.Minute)
}
