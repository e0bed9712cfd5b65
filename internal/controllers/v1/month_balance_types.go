package v1

import (
	"fmt"

	"github.com/casazen/backend/internal/models"
	"github.com/casazen/backend/internal/types"
	cz_uuid "github.com/casazen/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthBalanceEditable represents all user configurable parameters
type MonthBalanceEditable struct {
	HouseholdID uuid.UUID       `json:"householdId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the household the balance belongs to
	Month       types.Month     `json:"month" example:"2026-06-01T00:00:00Z"`                       // The month the balance is carried into
	Amount      decimal.Decimal `json:"amount" example:"1500.00"`                                   // Opening balance for the month. May be negative.
	Note        string          `json:"note" example:"Carried over from May" default:""`            // Notes about the balance
}

func (editable MonthBalanceEditable) model() models.MonthBalance {
	return models.MonthBalance{
		HouseholdID: editable.HouseholdID,
		Month:       editable.Month,
		Amount:      editable.Amount,
		Note:        editable.Note,
	}
}

type MonthBalanceLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/month-balances/550dc009-cea6-4c12-b2a5-03446eb7b7cf/2026-06"` // The month balance itself
	Household string `json:"household" example:"https://example.com/api/v1/households/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`        // The household this balance belongs to
}

type MonthBalance struct {
	models.Timestamps
	MonthBalanceEditable
	Links MonthBalanceLinks `json:"links"`
}

func newMonthBalance(c *gin.Context, model models.MonthBalance) MonthBalance {
	url := c.GetString(string(models.DBContextURL))

	return MonthBalance{
		Timestamps: model.Timestamps,
		MonthBalanceEditable: MonthBalanceEditable{
			HouseholdID: model.HouseholdID,
			Month:       model.Month,
			Amount:      model.Amount,
			Note:        model.Note,
		},
		Links: MonthBalanceLinks{
			Self:      fmt.Sprintf("%s/v1/month-balances/%s/%s", url, model.HouseholdID, model.Month),
			Household: fmt.Sprintf("%s/v1/households/%s", url, model.HouseholdID),
		},
	}
}

type MonthBalanceListResponse struct {
	Data       []MonthBalance `json:"data"`                                                          // List of Month Balances
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type MonthBalanceCreateResponse struct {
	Data  []MonthBalanceResponse `json:"data"`                                                          // List of the created Month Balances or their respective error
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (m *MonthBalanceCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	m.Data = append(m.Data, MonthBalanceResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MonthBalanceResponse struct {
	Data  *MonthBalance `json:"data"`                                                          // Data for the Month Balance
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MonthBalanceQueryFilter struct {
	HouseholdID cz_uuid.UUID `form:"household"` // By ID of the Household
	QueryMonth
	Offset uint `form:"offset" filterField:"false"` // The offset of the first Month Balance returned. Defaults to 0.
	Limit  int  `form:"limit" filterField:"false"`  // Maximum number of Month Balances to return. Defaults to 50.
}
