package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/casazen/backend/internal/controllers/v1"
	"github.com/casazen/backend/internal/health"
	"github.com/casazen/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPriorityRule(t *testing.T, c v1.PriorityRuleEditable, expectedStatus ...int) v1.PriorityRuleResponse {
	if c.HouseholdID == uuid.Nil {
		c.HouseholdID = createTestHousehold(t, v1.HouseholdEditable{}).Data.ID
	}

	if c.Match == "" {
		c.Match = "*"
	}

	if c.Tier == "" {
		c.Tier = health.TierP3
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.PriorityRuleEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/priority-rules", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var rule v1.PriorityRuleCreateResponse
	test.DecodeResponse(t, &r, &rule)

	if r.Code == http.StatusCreated {
		return rule.Data[0]
	}

	return v1.PriorityRuleResponse{}
}

func (suite *TestSuiteStandard) TestPriorityRulesOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Priority Rule with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Priority Rule exists", createTestPriorityRule(suite.T(), v1.PriorityRuleEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/priority-rules", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestPriorityRulesCreate() {
	rule := createTestPriorityRule(suite.T(), v1.PriorityRuleEditable{
		Priority: 1,
		Match:    "Rent*",
		Tier:     health.TierP1,
	})

	assert.Equal(suite.T(), "Rent*", rule.Data.Match)
	assert.Equal(suite.T(), health.TierP1, rule.Data.Tier)
}

func (suite *TestSuiteStandard) TestPriorityRulesCreateErrors() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty match", []v1.PriorityRuleEditable{{HouseholdID: household.Data.ID, Tier: health.TierP1}}, http.StatusBadRequest},
		{"Invalid tier", []v1.PriorityRuleEditable{{HouseholdID: household.Data.ID, Match: "*", Tier: health.Tier("P0")}}, http.StatusBadRequest},
		{"Non-existing household", []v1.PriorityRuleEditable{{HouseholdID: uuid.New(), Match: "*", Tier: health.TierP1}}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/priority-rules", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestPriorityRulesUpdate() {
	rule := createTestPriorityRule(suite.T(), v1.PriorityRuleEditable{Match: "Rent*", Tier: health.TierP1})

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{
		"match": "Mortgage*",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.PriorityRuleResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "Mortgage*", updated.Data.Match)
}

func (suite *TestSuiteStandard) TestPriorityRulesDelete() {
	rule := createTestPriorityRule(suite.T(), v1.PriorityRuleEditable{})

	r := test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestPriorityRulesList() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{})

	_ = createTestPriorityRule(suite.T(), v1.PriorityRuleEditable{HouseholdID: household.Data.ID, Priority: 2, Match: "*", Tier: health.TierP4})
	_ = createTestPriorityRule(suite.T(), v1.PriorityRuleEditable{HouseholdID: household.Data.ID, Priority: 1, Match: "Rent*", Tier: health.TierP1})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"all", "", 2},
		{"by household", fmt.Sprintf("household=%s", household.Data.ID), 2},
		{"by tier", "tier=P1", 1},
		{"by match", "match=Rent*", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/priority-rules?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.PriorityRuleListResponse
			test.DecodeResponse(t, &r, &response)

			require.Len(t, response.Data, tt.count)
		})
	}
}

// TestPriorityRulesListSorted verifies that rules come back in evaluation
// order.
func (suite *TestSuiteStandard) TestPriorityRulesListSorted() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{})

	_ = createTestPriorityRule(suite.T(), v1.PriorityRuleEditable{HouseholdID: household.Data.ID, Priority: 2, Match: "*", Tier: health.TierP4})
	_ = createTestPriorityRule(suite.T(), v1.PriorityRuleEditable{HouseholdID: household.Data.ID, Priority: 1, Match: "Rent*", Tier: health.TierP1})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/priority-rules", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PriorityRuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), uint(1), response.Data[0].Priority)
}
