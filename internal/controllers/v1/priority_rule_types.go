package v1

import (
	"fmt"

	"github.com/casazen/backend/internal/health"
	"github.com/casazen/backend/internal/models"
	cz_uuid "github.com/casazen/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PriorityRuleEditable represents all user configurable parameters
type PriorityRuleEditable struct {
	HouseholdID uuid.UUID   `json:"householdId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the household the rule belongs to
	Priority    uint        `json:"priority" example:"1"`                                       // The priority of the rule. Lower numbers are evaluated first.
	Match       string      `json:"match" example:"Rent*"`                                      // The matching pattern applied to expense names
	Tier        health.Tier `json:"tier" example:"P1" enums:"P1,P2,P3,P4"`                      // The tier assigned to matching expenses
}

func (editable PriorityRuleEditable) model() models.PriorityRule {
	return models.PriorityRule{
		HouseholdID: editable.HouseholdID,
		Priority:    editable.Priority,
		Match:       editable.Match,
		Tier:        editable.Tier,
	}
}

type PriorityRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/priority-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The priority rule itself
}

type PriorityRule struct {
	models.DefaultModel
	PriorityRuleEditable
	Links PriorityRuleLinks `json:"links"`
}

func newPriorityRule(c *gin.Context, model models.PriorityRule) PriorityRule {
	url := c.GetString(string(models.DBContextURL))

	return PriorityRule{
		DefaultModel: model.DefaultModel,
		PriorityRuleEditable: PriorityRuleEditable{
			HouseholdID: model.HouseholdID,
			Priority:    model.Priority,
			Match:       model.Match,
			Tier:        model.Tier,
		},
		Links: PriorityRuleLinks{
			Self: fmt.Sprintf("%s/v1/priority-rules/%s", url, model.ID),
		},
	}
}

type PriorityRuleListResponse struct {
	Data       []PriorityRule `json:"data"`                                                          // List of Priority Rules
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type PriorityRuleCreateResponse struct {
	Data  []PriorityRuleResponse `json:"data"`                                                          // List of the created Priority Rules or their respective error
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (p *PriorityRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, PriorityRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PriorityRuleResponse struct {
	Data  *PriorityRule `json:"data"`                                                          // Data for the Priority Rule
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PriorityRuleQueryFilter struct {
	HouseholdID cz_uuid.UUID `form:"household"`                  // By ID of the Household
	Priority    uint         `form:"priority"`                   // By priority
	Match       string       `form:"match" filterField:"false"`  // By match
	Tier        string       `form:"tier"`                       // By tier
	Offset      uint         `form:"offset" filterField:"false"` // The offset of the first Priority Rule returned. Defaults to 0.
	Limit       int          `form:"limit" filterField:"false"`  // Maximum number of Priority Rules to return. Defaults to 50.
}

func (f PriorityRuleQueryFilter) model() (models.PriorityRule, error) {
	tier := health.Tier(f.Tier)
	if f.Tier != "" && !tier.Valid() {
		return models.PriorityRule{}, models.ErrPriorityTierInvalid
	}

	return models.PriorityRule{
		HouseholdID: f.HouseholdID.UUID,
		Priority:    f.Priority,
		Tier:        tier,
	}, nil
}
