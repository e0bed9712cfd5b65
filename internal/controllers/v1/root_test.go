package v1_test

import (
	"net/http"

	v1 "github.com/casazen/backend/internal/controllers/v1"
	"github.com/casazen/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestV1RootGet() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "http://example.com/v1/households", response.Links.Households)
	assert.Equal(suite.T(), "http://example.com/v1/health", response.Links.Health)
	assert.Equal(suite.T(), "http://example.com/v1/insights", response.Links.Insights)
}

func (suite *TestSuiteStandard) TestV1RootOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))
}
