package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/casazen/backend/internal/controllers/v1"
	"github.com/casazen/backend/internal/types"
	"github.com/casazen/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestMonthBalance(t *testing.T, c v1.MonthBalanceEditable, expectedStatus ...int) v1.MonthBalanceResponse {
	if c.HouseholdID == uuid.Nil {
		c.HouseholdID = createTestHousehold(t, v1.HouseholdEditable{}).Data.ID
	}

	if c.Month.IsZero() {
		c.Month = types.NewMonth(2026, 6)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.MonthBalanceEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/month-balances", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var balance v1.MonthBalanceCreateResponse
	test.DecodeResponse(t, &r, &balance)

	if r.Code == http.StatusCreated {
		return balance.Data[0]
	}

	return v1.MonthBalanceResponse{}
}

func (suite *TestSuiteStandard) TestMonthBalancesCreate() {
	balance := createTestMonthBalance(suite.T(), v1.MonthBalanceEditable{
		Amount: decimal.NewFromFloat(1500.00),
		Note:   "Carried over from May",
	})

	assert.True(suite.T(), balance.Data.Amount.Equal(decimal.NewFromFloat(1500.00)))
	assert.Equal(suite.T(), "Carried over from May", balance.Data.Note)
}

func (suite *TestSuiteStandard) TestMonthBalancesCreateErrors() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{})
	_ = createTestMonthBalance(suite.T(), v1.MonthBalanceEditable{HouseholdID: household.Data.ID, Month: types.NewMonth(2026, 6)})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Duplicate month", []v1.MonthBalanceEditable{{HouseholdID: household.Data.ID, Month: types.NewMonth(2026, 6)}}, http.StatusBadRequest},
		{"Non-existing household", []v1.MonthBalanceEditable{{HouseholdID: uuid.New(), Month: types.NewMonth(2026, 6)}}, http.StatusNotFound},
		{"Broken body", `{ "month": 2" }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/month-balances", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthBalancesGetSingle() {
	b := createTestMonthBalance(suite.T(), v1.MonthBalanceEditable{Month: types.NewMonth(2026, 6)})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Existing balance", fmt.Sprintf("%s/2026-06", b.Data.HouseholdID), http.StatusOK},
		{"Wrong month", fmt.Sprintf("%s/2026-07", b.Data.HouseholdID), http.StatusNotFound},
		{"No balance for this household", fmt.Sprintf("%s/2026-06", uuid.New()), http.StatusNotFound},
		{"Invalid ID", "notAUUID/2026-06", http.StatusBadRequest},
		{"Invalid month", fmt.Sprintf("%s/June", b.Data.HouseholdID), http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/month-balances/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthBalancesUpdate() {
	b := createTestMonthBalance(suite.T(), v1.MonthBalanceEditable{Amount: decimal.NewFromInt(500)})

	r := test.Request(suite.T(), http.MethodPatch, b.Data.Links.Self, map[string]any{
		"amount": "-120.55",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.MonthBalanceResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.True(suite.T(), updated.Data.Amount.Equal(decimal.NewFromFloat(-120.55)))
}

func (suite *TestSuiteStandard) TestMonthBalancesDelete() {
	b := createTestMonthBalance(suite.T(), v1.MonthBalanceEditable{})

	r := test.Request(suite.T(), http.MethodDelete, b.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, b.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestMonthBalancesList() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{})

	_ = createTestMonthBalance(suite.T(), v1.MonthBalanceEditable{HouseholdID: household.Data.ID, Month: types.NewMonth(2026, 5)})
	_ = createTestMonthBalance(suite.T(), v1.MonthBalanceEditable{HouseholdID: household.Data.ID, Month: types.NewMonth(2026, 6)})
	_ = createTestMonthBalance(suite.T(), v1.MonthBalanceEditable{Month: types.NewMonth(2026, 6)})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"all", "", 3},
		{"by household", fmt.Sprintf("household=%s", household.Data.ID), 2},
		{"by month", "month=2026-06", 2},
		{"by household and month", fmt.Sprintf("household=%s&month=2026-05", household.Data.ID), 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/month-balances?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.MonthBalanceListResponse
			test.DecodeResponse(t, &r, &response)

			require.Len(t, response.Data, tt.count)
		})
	}
}
