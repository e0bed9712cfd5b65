package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/casazen/backend/internal/controllers/v1"
	"github.com/casazen/backend/internal/health"
	"github.com/casazen/backend/internal/types"
	"github.com/casazen/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestHealthScenario sets up a household with settings, an opening
// balance and a realized income and expense for June 2026.
//
// Evaluated at June 21 noon: balance 500 + 3000 - 1200 = 2300, reserve 200,
// 10 flat remaining days, daily budget (2300 - 200) / 10 = 210.
func createTestHealthScenario(t *testing.T) v1.HouseholdResponse {
	household := createTestHousehold(t, v1.HouseholdEditable{})

	_ = createTestSettings(t, v1.SettingsEditable{
		HouseholdID:         household.Data.ID,
		MinimumReserveValue: decimal.NewFromInt(200),
		WeekendWeight:       decimal.NewFromInt(1),
	})
	_ = createTestMonthBalance(t, v1.MonthBalanceEditable{
		HouseholdID: household.Data.ID,
		Month:       types.NewMonth(2026, 6),
		Amount:      decimal.NewFromInt(500),
	})
	_ = createTestIncome(t, v1.IncomeEditable{
		HouseholdID: household.Data.ID,
		Name:        "Salary",
		Amount:      decimal.NewFromInt(3000),
		Date:        time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC),
	})
	_ = createTestExpense(t, v1.ExpenseEditable{
		HouseholdID: household.Data.ID,
		Name:        "Rent",
		Amount:      decimal.NewFromInt(1200),
		Date:        time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		Priority:    health.TierP1,
	})

	return household
}

func (suite *TestSuiteStandard) TestHealthOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/health", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/health/simulation", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestHealthGet() {
	household := createTestHealthScenario(suite.T())

	url := fmt.Sprintf("http://example.com/v1/health?household=%s&month=2026-06&now=2026-06-21T12:00:00Z", household.Data.ID)
	r := test.Request(suite.T(), http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HealthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	snapshot := *response.Data

	assert.True(suite.T(), snapshot.CurrentBalance.Equal(decimal.NewFromInt(2300)), "current balance is %s", snapshot.CurrentBalance)
	assert.True(suite.T(), snapshot.MinimumReserve.Equal(decimal.NewFromInt(200)))
	assert.True(suite.T(), snapshot.AvailableBalance.Equal(decimal.NewFromInt(2100)))
	assert.True(suite.T(), snapshot.DailyBudget.Equal(decimal.NewFromInt(210)), "daily budget is %s", snapshot.DailyBudget)
	assert.Equal(suite.T(), 10, snapshot.DaysRemaining)
	assert.Equal(suite.T(), health.StatusHealthy, snapshot.Status)
	assert.Len(suite.T(), snapshot.Days, 10)
}

func (suite *TestSuiteStandard) TestHealthGetErrors() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{})

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"Missing household", "month=2026-06", http.StatusBadRequest},
		{"Missing month", fmt.Sprintf("household=%s", household.Data.ID), http.StatusBadRequest},
		{"Invalid household", "household=NotAUUID&month=2026-06", http.StatusBadRequest},
		{"Non-existing household", fmt.Sprintf("household=%s&month=2026-06", uuid.New()), http.StatusNotFound},
		{"No settings configured", fmt.Sprintf("household=%s&month=2026-06", household.Data.ID), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/health?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestHealthSimulation() {
	household := createTestHealthScenario(suite.T())

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/health/simulation", v1.SimulationEditable{
		HouseholdID: household.Data.ID,
		Month:       time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromInt(500),
		Now:         time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SimulationResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	simulation := *response.Data

	// (2100 - 500) / 10 days
	assert.True(suite.T(), simulation.NewDailyBudget.Equal(decimal.NewFromInt(160)), "new daily budget is %s", simulation.NewDailyBudget)
	assert.True(suite.T(), simulation.BudgetDropAmount.Equal(decimal.NewFromInt(50)))
	assert.Equal(suite.T(), health.PurchaseMedium, simulation.Severity)
}

func (suite *TestSuiteStandard) TestHealthSimulationSevere() {
	household := createTestHealthScenario(suite.T())

	// Spending more than is available pushes the budget below zero
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/health/simulation", v1.SimulationEditable{
		HouseholdID: household.Data.ID,
		Month:       time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromInt(2500),
		Now:         time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SimulationResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), health.PurchaseCritical, response.Data.Severity)
}

func (suite *TestSuiteStandard) TestHealthSimulationErrors() {
	household := createTestHealthScenario(suite.T())

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"No body", "", http.StatusBadRequest},
		{"Zero amount", v1.SimulationEditable{HouseholdID: household.Data.ID, Month: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)}, http.StatusBadRequest},
		{"Negative amount", v1.SimulationEditable{HouseholdID: household.Data.ID, Month: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(-1)}, http.StatusBadRequest},
		{"Non-existing household", v1.SimulationEditable{HouseholdID: uuid.New(), Month: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(10)}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/health/simulation", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
