package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/casazen/backend/internal/controllers/v1"
	"github.com/casazen/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHousehold(t *testing.T, c v1.HouseholdEditable, expectedStatus ...int) v1.HouseholdResponse {
	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.HouseholdEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/households", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var household v1.HouseholdCreateResponse
	test.DecodeResponse(t, &r, &household)

	if r.Code == http.StatusCreated {
		return household.Data[0]
	}

	return v1.HouseholdResponse{}
}

// TestHouseholdsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestHouseholdsOptions() {
	tests := []struct {
		name   string
		id     string // path at the households endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Household with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Household exists", createTestHousehold(suite.T(), v1.HouseholdEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/households", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestHouseholdsCreate() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{Name: "Casa da Praia", Currency: "EUR"})

	assert.Equal(suite.T(), "Casa da Praia", household.Data.Name)
	assert.Equal(suite.T(), "EUR", household.Data.Currency)
	assert.NotEqual(suite.T(), uuid.Nil, household.Data.ID)
}

func (suite *TestSuiteStandard) TestHouseholdsCreateInvalidCurrency() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/households", []v1.HouseholdEditable{{Name: "Broken", Currency: "MOON"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestHouseholdsCreateInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/households", `{ "name": "not an array" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestHouseholdsGetSingle() {
	h := createTestHousehold(suite.T(), v1.HouseholdEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Household", h.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET Nonexistent Household", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "notAUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID", "notAUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID", "notAUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/households/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestHouseholdsUpdate() {
	h := createTestHousehold(suite.T(), v1.HouseholdEditable{Name: "Before"})

	r := test.Request(suite.T(), http.MethodPatch, h.Data.Links.Self, map[string]any{
		"name": "After",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.HouseholdResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "After", updated.Data.Name)
}

func (suite *TestSuiteStandard) TestHouseholdsDelete() {
	h := createTestHousehold(suite.T(), v1.HouseholdEditable{})

	r := test.Request(suite.T(), http.MethodDelete, h.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, h.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestHouseholdsList() {
	for _, name := range []string{"Casa da Praia", "Apartment"} {
		_ = createTestHousehold(suite.T(), v1.HouseholdEditable{Name: name})
	}

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"all", "", 2},
		{"filter by name", "name=Praia", 1},
		{"search", "search=apart", 1},
		{"no match", "name=Igloo", 0},
		{"limit", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/households?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.HouseholdListResponse
			test.DecodeResponse(t, &r, &response)

			require.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestHouseholdsPagination() {
	for range 3 {
		_ = createTestHousehold(suite.T(), v1.HouseholdEditable{})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/households?offset=1&limit=1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HouseholdListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), 1, response.Pagination.Count)
	assert.Equal(suite.T(), uint(1), response.Pagination.Offset)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)
}
