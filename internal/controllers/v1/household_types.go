package v1

import (
	"fmt"

	"github.com/casazen/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// HouseholdEditable represents all user configurable parameters
type HouseholdEditable struct {
	Name     string `json:"name" example:"Casa da Praia" default:""`           // Name of the household
	Note     string `json:"note" example:"The beach house budget" default:""`  // Notes about the household
	Currency string `json:"currency" example:"BRL" default:"BRL" minLength:"3" maxLength:"3"` // ISO 4217 currency code for all amounts of the household
}

func (editable HouseholdEditable) model() models.Household {
	return models.Household{
		Name:     editable.Name,
		Note:     editable.Note,
		Currency: editable.Currency,
	}
}

type HouseholdLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/households/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`            // The household itself
	Incomes       string `json:"incomes" example:"https://example.com/api/v1/incomes?household=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`  // Incomes for this household
	Expenses      string `json:"expenses" example:"https://example.com/api/v1/expenses?household=550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // Expenses for this household
	PriorityRules string `json:"priorityRules" example:"https://example.com/api/v1/priority-rules?household=550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // Priority rules for this household
	Settings      string `json:"settings" example:"https://example.com/api/v1/settings/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`          // Financial settings for this household
	Health        string `json:"health" example:"https://example.com/api/v1/health?household=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`    // Financial health for this household
}

type Household struct {
	models.DefaultModel
	HouseholdEditable
	Links HouseholdLinks `json:"links"`
}

func newHousehold(c *gin.Context, model models.Household) Household {
	url := c.GetString(string(models.DBContextURL))

	return Household{
		DefaultModel: model.DefaultModel,
		HouseholdEditable: HouseholdEditable{
			Name:     model.Name,
			Note:     model.Note,
			Currency: model.Currency,
		},
		Links: HouseholdLinks{
			Self:          fmt.Sprintf("%s/v1/households/%s", url, model.ID),
			Incomes:       fmt.Sprintf("%s/v1/incomes?household=%s", url, model.ID),
			Expenses:      fmt.Sprintf("%s/v1/expenses?household=%s", url, model.ID),
			PriorityRules: fmt.Sprintf("%s/v1/priority-rules?household=%s", url, model.ID),
			Settings:      fmt.Sprintf("%s/v1/settings/%s", url, model.ID),
			Health:        fmt.Sprintf("%s/v1/health?household=%s", url, model.ID),
		},
	}
}

type HouseholdListResponse struct {
	Data       []Household `json:"data"`                                                          // List of Households
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type HouseholdCreateResponse struct {
	Data  []HouseholdResponse `json:"data"`                                                          // List of the created Households or their respective error
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (h *HouseholdCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	h.Data = append(h.Data, HouseholdResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type HouseholdResponse struct {
	Data  *Household `json:"data"`                                                          // Data for the Household
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type HouseholdQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Note     string `form:"note" filterField:"false"`   // By note
	Currency string `form:"currency"`                   // By currency
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Household returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Households to return. Defaults to 50.
}
