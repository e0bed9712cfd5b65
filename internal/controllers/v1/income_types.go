package v1

import (
	"fmt"
	"time"

	"github.com/casazen/backend/internal/models"
	cz_uuid "github.com/casazen/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeEditable represents all user configurable parameters
type IncomeEditable struct {
	HouseholdID uuid.UUID       `json:"householdId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`          // ID of the household the income belongs to
	Name        string          `json:"name" example:"Salary" default:""`                                    // Name of the income
	Note        string          `json:"note" example:"Main job, paid on the 5th" default:""`                 // Notes about the income
	Amount      decimal.Decimal `json:"amount" example:"3500.00" minimum:"0.00000001" multipleOf:"0.000001"` // Amount of the income
	Date        time.Time       `json:"date" example:"2026-06-05T00:00:00Z"`                                 // Date the income is (or was) received
}

func (editable IncomeEditable) model() models.Income {
	return models.Income{
		HouseholdID: editable.HouseholdID,
		Name:        editable.Name,
		Note:        editable.Note,
		Amount:      editable.Amount,
		Date:        editable.Date,
	}
}

type IncomeLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/incomes/d430d7c3-d14c-4712-9336-ee56965a6673"`         // The income itself
	Household string `json:"household" example:"https://example.com/api/v1/households/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The household this income belongs to
}

type Income struct {
	models.DefaultModel
	IncomeEditable
	Links IncomeLinks `json:"links"`
}

func newIncome(c *gin.Context, model models.Income) Income {
	url := c.GetString(string(models.DBContextURL))

	return Income{
		DefaultModel: model.DefaultModel,
		IncomeEditable: IncomeEditable{
			HouseholdID: model.HouseholdID,
			Name:        model.Name,
			Note:        model.Note,
			Amount:      model.Amount,
			Date:        model.Date,
		},
		Links: IncomeLinks{
			Self:      fmt.Sprintf("%s/v1/incomes/%s", url, model.ID),
			Household: fmt.Sprintf("%s/v1/households/%s", url, model.HouseholdID),
		},
	}
}

type IncomeListResponse struct {
	Data       []Income    `json:"data"`                                                          // List of Incomes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type IncomeCreateResponse struct {
	Data  []IncomeResponse `json:"data"`                                                          // List of the created Incomes or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (i *IncomeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, IncomeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeResponse struct {
	Data  *Income `json:"data"`                                                          // Data for the Income
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeQueryFilter struct {
	HouseholdID cz_uuid.UUID `form:"household"`                                       // By ID of the Household
	Name        string       `form:"name" filterField:"false"`                        // By name
	Note        string       `form:"note" filterField:"false"`                        // By note
	FromDate    time.Time    `form:"fromDate" filterField:"false" time_utc:"1"`       // Incomes dated at or after this date
	UntilDate   time.Time    `form:"untilDate" filterField:"false" time_utc:"1"`      // Incomes dated at or before this date
	Search      string       `form:"search" filterField:"false"`                      // By string in name or note
	Offset      uint         `form:"offset" filterField:"false"`                      // The offset of the first Income returned. Defaults to 0.
	Limit       int          `form:"limit" filterField:"false"`                       // Maximum number of Incomes to return. Defaults to 50.
}
