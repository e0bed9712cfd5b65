package v1

import (
	"time"

	"github.com/casazen/backend/internal/health"
	cz_uuid "github.com/casazen/backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HealthQueryFilter struct {
	Household cz_uuid.UUID `form:"household"`                                                  // ID of the household
	Month     time.Time    `form:"month" time_format:"2006-01" time_utc:"1" example:"2026-06"` // The month to compute the snapshot for
	Now       time.Time    `form:"now" time_utc:"1"`                                           // The instant to evaluate at. Defaults to the current time.
}

type HealthResponse struct {
	Data  *health.Snapshot `json:"data"`                                                   // The financial health snapshot
	Error *string          `json:"error" example:"the household parameter must be set"` // The error, if any occurred
}

// SimulationEditable represents all user configurable parameters of a
// purchase simulation
type SimulationEditable struct {
	HouseholdID uuid.UUID       `json:"householdId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`          // ID of the household to simulate for
	Month       time.Time       `json:"month" example:"2026-06-01T00:00:00Z"`                                // The month to simulate in
	Amount      decimal.Decimal `json:"amount" example:"250.00" minimum:"0.00000001" multipleOf:"0.000001"`  // The purchase amount. Must be positive.
	Now         time.Time       `json:"now" example:"2026-06-21T12:00:00Z"`                                  // The instant to evaluate at. Defaults to the current time.
}

type SimulationResponse struct {
	Data  *health.PurchaseSimulation `json:"data"`                                                // The purchase simulation
	Error *string                    `json:"error" example:"the simulation amount must be positive"` // The error, if any occurred
}
