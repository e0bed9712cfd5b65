package models_test

import (
	"time"

	"github.com/casazen/backend/internal/health"
	"github.com/casazen/backend/internal/models"
	"github.com/casazen/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestHealthInputWithoutSettings() {
	household := suite.createTestHousehold(models.Household{})

	// A snapshot without settings would have to invent financial data
	_, err := household.HealthInput(models.DB, types.NewMonth(2026, 6), time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC))
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestHealthInputWithoutMonthBalance() {
	household := suite.createTestHousehold(models.Household{})
	_ = suite.createTestSettings(models.FinancialSettings{HouseholdID: household.ID})

	// A month without an opening balance starts at zero
	input, err := household.HealthInput(models.DB, types.NewMonth(2026, 6), time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC))
	require.NoError(suite.T(), err)
	assert.True(suite.T(), input.OpeningBalance.IsZero())
}

func (suite *TestSuiteStandard) TestHealthInputScopedToMonth() {
	household := suite.createTestHousehold(models.Household{})
	_ = suite.createTestSettings(models.FinancialSettings{HouseholdID: household.ID})

	_ = suite.createTestIncome(models.Income{
		HouseholdID: household.ID,
		Name:        "Salary June",
		Amount:      decimal.NewFromInt(3000),
		Date:        time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC),
	})

	// Events in other months must not leak into the input
	_ = suite.createTestIncome(models.Income{
		HouseholdID: household.ID,
		Name:        "Salary July",
		Amount:      decimal.NewFromInt(3000),
		Date:        time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC),
	})

	_ = suite.createTestExpense(models.Expense{
		HouseholdID: household.ID,
		Name:        "Rent",
		Amount:      decimal.NewFromInt(1200),
		Date:        time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		Priority:    health.TierP1,
	})

	input, err := household.HealthInput(models.DB, types.NewMonth(2026, 6), time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC))
	require.NoError(suite.T(), err)

	require.Len(suite.T(), input.Incomes, 1)
	require.Len(suite.T(), input.Expenses, 1)
	assert.Equal(suite.T(), health.TierP1, input.Expenses[0].Tier)
}

func (suite *TestSuiteStandard) TestSnapshot() {
	household := suite.createTestHousehold(models.Household{})
	_ = suite.createTestSettings(models.FinancialSettings{
		HouseholdID:         household.ID,
		MinimumReserveValue: decimal.NewFromInt(200),
		WeekendWeight:       decimal.NewFromInt(1),
	})
	_ = suite.createTestMonthBalance(models.MonthBalance{
		HouseholdID: household.ID,
		Month:       types.NewMonth(2026, 6),
		Amount:      decimal.NewFromInt(500),
	})

	_ = suite.createTestIncome(models.Income{
		HouseholdID: household.ID,
		Name:        "Salary",
		Amount:      decimal.NewFromInt(3000),
		Date:        time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestExpense(models.Expense{
		HouseholdID: household.ID,
		Name:        "Rent",
		Amount:      decimal.NewFromInt(1200),
		Date:        time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		Priority:    health.TierP1,
	})

	// June 21 to June 30 is 10 remaining days
	snapshot, err := household.Snapshot(models.DB, types.NewMonth(2026, 6), time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC))
	require.NoError(suite.T(), err)

	// 500 opening + 3000 salary - 1200 rent
	assert.True(suite.T(), snapshot.CurrentBalance.Equal(decimal.NewFromInt(2300)), "current balance is %s", snapshot.CurrentBalance)
	// (2300 - 200 reserve) / 10 days
	assert.True(suite.T(), snapshot.DailyBudget.Equal(decimal.NewFromInt(210)), "daily budget is %s", snapshot.DailyBudget)
	assert.Equal(suite.T(), health.StatusHealthy, snapshot.Status)
	assert.Len(suite.T(), snapshot.Days, 10)
}
