package v1

import (
	"fmt"
	"time"

	"github.com/casazen/backend/internal/health"
	"github.com/casazen/backend/internal/models"
	cz_uuid "github.com/casazen/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	HouseholdID uuid.UUID       `json:"householdId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`         // ID of the household the expense belongs to
	Name        string          `json:"name" example:"Rent" default:""`                                     // Name of the expense
	Note        string          `json:"note" example:"Apartment, due on the 10th" default:""`               // Notes about the expense
	Amount      decimal.Decimal `json:"amount" example:"1200.00" minimum:"0.00000001" multipleOf:"0.000001"` // Amount of the expense
	Date        time.Time       `json:"date" example:"2026-06-10T00:00:00Z"`                                // Date the expense is (or was) due
	Priority    health.Tier     `json:"priority" example:"P1" enums:"P1,P2,P3,P4"`                          // Priority tier. Empty values get one assigned from the household's priority rules.
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		HouseholdID: editable.HouseholdID,
		Name:        editable.Name,
		Note:        editable.Note,
		Amount:      editable.Amount,
		Date:        editable.Date,
		Priority:    editable.Priority,
	}
}

type ExpenseLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/expenses/6b0f4f08-2a5e-4cd9-b0a0-e75c0b2f29b0"`        // The expense itself
	Household string `json:"household" example:"https://example.com/api/v1/households/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The household this expense belongs to
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			HouseholdID: model.HouseholdID,
			Name:        model.Name,
			Note:        model.Note,
			Amount:      model.Amount,
			Date:        model.Date,
			Priority:    model.Priority,
		},
		Links: ExpenseLinks{
			Self:      fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			Household: fmt.Sprintf("%s/v1/households/%s", url, model.HouseholdID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of Expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`                                                          // List of the created Expenses or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (e *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the Expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	HouseholdID cz_uuid.UUID `form:"household"`                                  // By ID of the Household
	Name        string       `form:"name" filterField:"false"`                   // By name
	Note        string       `form:"note" filterField:"false"`                   // By note
	Priority    string       `form:"priority"`                                   // By priority tier
	FromDate    time.Time    `form:"fromDate" filterField:"false" time_utc:"1"`  // Expenses dated at or after this date
	UntilDate   time.Time    `form:"untilDate" filterField:"false" time_utc:"1"` // Expenses dated at or before this date
	Search      string       `form:"search" filterField:"false"`                 // By string in name or note
	Offset      uint         `form:"offset" filterField:"false"`                 // The offset of the first Expense returned. Defaults to 0.
	Limit       int          `form:"limit" filterField:"false"`                  // Maximum number of Expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() (models.Expense, error) {
	priority := health.Tier(f.Priority)
	if f.Priority != "" && !priority.Valid() {
		return models.Expense{}, models.ErrPriorityTierInvalid
	}

	return models.Expense{
		HouseholdID: f.HouseholdID.UUID,
		Priority:    priority,
	}, nil
}
