package v1

import (
	"fmt"

	"github.com/casazen/backend/internal/health"
	"github.com/casazen/backend/internal/models"
	cz_uuid "github.com/casazen/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettingsEditable represents all user configurable parameters
type SettingsEditable struct {
	HouseholdID         uuid.UUID           `json:"householdId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                    // ID of the household the settings belong to
	MinimumReserveType  health.ReserveType  `json:"minimumReserveType" example:"FIXED" enums:"FIXED,PERCENTAGE" default:"FIXED"`   // How the minimum reserve is calculated
	MinimumReserveValue decimal.Decimal     `json:"minimumReserveValue" example:"500" minimum:"0"`                                 // Fixed amount or percentage of monthly income to always keep
	WeekendWeight       decimal.Decimal     `json:"weekendWeight" example:"1.5" default:"1.5"`                                     // How much more a weekend day weighs in the daily budget
	LowBalanceThreshold decimal.NullDecimal `json:"lowBalanceThreshold" swaggertype:"number" example:"200"`                        // Alert threshold for projected low balance days. Defaults to the minimum reserve.
}

func (editable SettingsEditable) model() models.FinancialSettings {
	return models.FinancialSettings{
		HouseholdID:         editable.HouseholdID,
		MinimumReserveType:  editable.MinimumReserveType,
		MinimumReserveValue: editable.MinimumReserveValue,
		WeekendWeight:       editable.WeekendWeight,
		LowBalanceThreshold: editable.LowBalanceThreshold,
	}
}

type SettingsLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/settings/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`        // The settings themselves
	Household string `json:"household" example:"https://example.com/api/v1/households/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The household the settings belong to
}

type Settings struct {
	models.Timestamps
	SettingsEditable
	Links SettingsLinks `json:"links"`
}

func newSettings(c *gin.Context, model models.FinancialSettings) Settings {
	url := c.GetString(string(models.DBContextURL))

	return Settings{
		Timestamps: model.Timestamps,
		SettingsEditable: SettingsEditable{
			HouseholdID:         model.HouseholdID,
			MinimumReserveType:  model.MinimumReserveType,
			MinimumReserveValue: model.MinimumReserveValue,
			WeekendWeight:       model.WeekendWeight,
			LowBalanceThreshold: model.LowBalanceThreshold,
		},
		Links: SettingsLinks{
			Self:      fmt.Sprintf("%s/v1/settings/%s", url, model.HouseholdID),
			Household: fmt.Sprintf("%s/v1/households/%s", url, model.HouseholdID),
		},
	}
}

type SettingsListResponse struct {
	Data       []Settings  `json:"data"`                                                          // List of Settings
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type SettingsCreateResponse struct {
	Data  []SettingsResponse `json:"data"`                                                          // List of the created Settings or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (s *SettingsCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	s.Data = append(s.Data, SettingsResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SettingsResponse struct {
	Data  *Settings `json:"data"`                                                          // Data for the Settings
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SettingsQueryFilter struct {
	HouseholdID        cz_uuid.UUID `form:"household"`                  // By ID of the Household
	MinimumReserveType string       `form:"reserveType"`                // By minimum reserve type
	Offset             uint         `form:"offset" filterField:"false"` // The offset of the first result returned. Defaults to 0.
	Limit              int          `form:"limit" filterField:"false"`  // Maximum number of results to return. Defaults to 50.
}

func (f SettingsQueryFilter) model() (models.FinancialSettings, error) {
	reserveType := health.ReserveType(f.MinimumReserveType)
	if f.MinimumReserveType != "" && reserveType != health.ReserveFixed && reserveType != health.ReservePercentage {
		return models.FinancialSettings{}, models.ErrReserveTypeInvalid
	}

	return models.FinancialSettings{
		HouseholdID:        f.HouseholdID.UUID,
		MinimumReserveType: reserveType,
	}, nil
}
