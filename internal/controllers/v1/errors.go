package v1

import (
	"errors"
	"net/http"

	"github.com/casazen/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errHouseholdIDParameter = errors.New("the household parameter must be set")
	errMonthNotSetInQuery   = errors.New("the month query parameter must be set")
)

// Health errors
var (
	errSimulationAmountNotPositive = errors.New("the simulation amount must be positive")
)

// Insight errors
var (
	errInsightTypeInvalid = errors.New("the specified insight type is invalid")
)
