package v1

import (
	"fmt"
	"net/http"

	"github.com/casazen/backend/internal/httputil"
	"github.com/casazen/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterPriorityRuleRoutes registers the routes for priority rules with
// the RouterGroup that is passed.
func RegisterPriorityRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPriorityRuleList)
		r.GET("", GetPriorityRules)
		r.POST("", CreatePriorityRules)
	}

	// PriorityRule with ID
	{
		r.OPTIONS("/:id", OptionsPriorityRuleDetail)
		r.GET("/:id", GetPriorityRule)
		r.PATCH("/:id", UpdatePriorityRule)
		r.DELETE("/:id", DeletePriorityRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			PriorityRules
// @Success		204
// @Router			/v1/priority-rules [options]
func OptionsPriorityRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			PriorityRules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/priority-rules/{id} [options]
func OptionsPriorityRuleDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.PriorityRule{})
}

// @Summary		Create priority rules
// @Description	Creates new priority rules
// @Tags			PriorityRules
// @Accept			json
// @Produce		json
// @Success		201				{object}	PriorityRuleCreateResponse
// @Failure		400				{object}	PriorityRuleCreateResponse
// @Failure		404				{object}	PriorityRuleCreateResponse
// @Failure		500				{object}	PriorityRuleCreateResponse
// @Param			priorityRules	body		[]PriorityRuleEditable	true	"PriorityRules"
// @Router			/v1/priority-rules [post]
func CreatePriorityRules(c *gin.Context) {
	var editables []PriorityRuleEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PriorityRuleCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := PriorityRuleCreateResponse{}

	for _, editable := range editables {
		rule := editable.model()

		err = models.DB.Create(&rule).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newPriorityRule(c, rule)
		r.Data = append(r.Data, PriorityRuleResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List priority rules
// @Description	Returns a list of priority rules
// @Tags			PriorityRules
// @Produce		json
// @Success		200	{object}	PriorityRuleListResponse
// @Failure		400	{object}	PriorityRuleListResponse
// @Failure		500	{object}	PriorityRuleListResponse
// @Router			/v1/priority-rules [get]
// @Param			household	query	string	false	"Filter by household ID"
// @Param			priority	query	uint	false	"Filter by priority"
// @Param			match		query	string	false	"Filter by match"
// @Param			tier		query	string	false	"Filter by tier"
// @Param			offset		query	uint	false	"The offset of the first Priority Rule returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Priority Rules to return. Defaults to 50."
func GetPriorityRules(c *gin.Context) {
	var filter PriorityRuleQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, PriorityRuleListResponse{
			Error: &s,
		})
		return
	}

	// Get the parameters set in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model to filter with
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PriorityRuleListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("priority ASC, match ASC").
		Where(&filterModel, queryFields...)

	// Filter for match containing the query string or explicitly empty one
	if filter.Match != "" {
		q = q.Where("match LIKE ?", fmt.Sprintf("%%%s%%", filter.Match))
	} else if slices.Contains(setFields, "Match") {
		q = q.Where("match = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Priority Rules and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var rules []models.PriorityRule
	err = q.Find(&rules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PriorityRuleListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PriorityRuleListResponse{
			Error: &e,
		})
		return
	}

	data := make([]PriorityRule, 0)
	for _, rule := range rules {
		data = append(data, newPriorityRule(c, rule))
	}

	c.JSON(http.StatusOK, PriorityRuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get priority rule
// @Description	Returns a specific priority rule
// @Tags			PriorityRules
// @Produce		json
// @Success		200	{object}	PriorityRuleResponse
// @Failure		400	{object}	PriorityRuleResponse
// @Failure		404	{object}	PriorityRuleResponse
// @Failure		500	{object}	PriorityRuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/priority-rules/{id} [get]
func GetPriorityRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PriorityRuleResponse{
			Error: &s,
		})
		return
	}

	var rule models.PriorityRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PriorityRuleResponse{
			Error: &s,
		})
		return
	}

	data := newPriorityRule(c, rule)
	c.JSON(http.StatusOK, PriorityRuleResponse{Data: &data})
}

// @Summary		Update priority rule
// @Description	Updates an existing priority rule. Only values to be updated need to be specified.
// @Tags			PriorityRules
// @Accept			json
// @Produce		json
// @Success		200				{object}	PriorityRuleResponse
// @Failure		400				{object}	PriorityRuleResponse
// @Failure		404				{object}	PriorityRuleResponse
// @Failure		500				{object}	PriorityRuleResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			priorityRule	body		PriorityRuleEditable	true	"PriorityRule"
// @Router			/v1/priority-rules/{id} [patch]
func UpdatePriorityRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PriorityRuleResponse{
			Error: &s,
		})
		return
	}

	var rule models.PriorityRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PriorityRuleResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PriorityRuleEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PriorityRuleResponse{
			Error: &s,
		})
		return
	}

	var data PriorityRuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PriorityRuleResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&rule).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PriorityRuleResponse{
			Error: &s,
		})
		return
	}

	r := newPriorityRule(c, rule)
	c.JSON(http.StatusOK, PriorityRuleResponse{Data: &r})
}

// @Summary		Delete priority rule
// @Description	Deletes a priority rule
// @Tags			PriorityRules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/priority-rules/{id} [delete]
func DeletePriorityRule(c *gin.Context) {
	deleteResource[models.PriorityRule](c)
}
