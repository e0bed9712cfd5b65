package v1

import (
	"net/http"

	"github.com/casazen/backend/internal/httputil"
	"github.com/casazen/backend/internal/models"
	"github.com/casazen/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterMonthBalanceRoutes registers the routes for month balances with
// the RouterGroup that is passed.
func RegisterMonthBalanceRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMonthBalanceList)
		r.GET("", GetMonthBalances)
		r.POST("", CreateMonthBalances)
	}

	// MonthBalance for a specific household and month
	{
		r.OPTIONS("/:id/:month", OptionsMonthBalanceDetail)
		r.GET("/:id/:month", GetMonthBalance)
		r.PATCH("/:id/:month", UpdateMonthBalance)
		r.DELETE("/:id/:month", DeleteMonthBalance)
	}
}

// monthBalance returns the month balance for the household and month in the URI.
func monthBalance(c *gin.Context) (models.MonthBalance, error) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.MonthBalance{}, err
	}

	var balance models.MonthBalance
	err = models.DB.
		Where("household_id = ? AND month = ?", uri.ID, types.MonthOf(uri.Month)).
		First(&balance).Error

	return balance, err
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MonthBalances
// @Success		204
// @Router			/v1/month-balances [options]
func OptionsMonthBalanceList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MonthBalances
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID of the household"
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/month-balances/{id}/{month} [options]
func OptionsMonthBalanceDetail(c *gin.Context) {
	_, err := monthBalance(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create month balances
// @Description	Creates opening balances for household months. Each household can only have one balance per month.
// @Tags			MonthBalances
// @Accept			json
// @Produce		json
// @Success		201				{object}	MonthBalanceCreateResponse
// @Failure		400				{object}	MonthBalanceCreateResponse
// @Failure		404				{object}	MonthBalanceCreateResponse
// @Failure		500				{object}	MonthBalanceCreateResponse
// @Param			monthBalances	body		[]MonthBalanceEditable	true	"MonthBalances"
// @Router			/v1/month-balances [post]
func CreateMonthBalances(c *gin.Context) {
	var editables []MonthBalanceEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthBalanceCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := MonthBalanceCreateResponse{}

	for _, editable := range editables {
		balance := editable.model()

		err = models.DB.Create(&balance).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newMonthBalance(c, balance)
		r.Data = append(r.Data, MonthBalanceResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List month balances
// @Description	Returns a list of month balances
// @Tags			MonthBalances
// @Produce		json
// @Success		200	{object}	MonthBalanceListResponse
// @Failure		400	{object}	MonthBalanceListResponse
// @Failure		500	{object}	MonthBalanceListResponse
// @Router			/v1/month-balances [get]
// @Param			household	query	string	false	"Filter by household ID"
// @Param			month		query	string	false	"Filter by month"
// @Param			offset		query	uint	false	"The offset of the first Month Balance returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Month Balances to return. Defaults to 50."
func GetMonthBalances(c *gin.Context) {
	var filter MonthBalanceQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, MonthBalanceListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("month DESC").
		Where(&models.MonthBalance{
			HouseholdID: filter.HouseholdID.UUID,
		}, queryFields...)

	if !filter.Month.IsZero() {
		q = q.Where("month = ?", types.MonthOf(filter.Month))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Month Balances and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var balances []models.MonthBalance
	err := q.Find(&balances).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthBalanceListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthBalanceListResponse{
			Error: &e,
		})
		return
	}

	data := make([]MonthBalance, 0)
	for _, balance := range balances {
		data = append(data, newMonthBalance(c, balance))
	}

	c.JSON(http.StatusOK, MonthBalanceListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get month balance
// @Description	Returns the opening balance of a specific household month
// @Tags			MonthBalances
// @Produce		json
// @Success		200		{object}	MonthBalanceResponse
// @Failure		400		{object}	MonthBalanceResponse
// @Failure		404		{object}	MonthBalanceResponse
// @Failure		500		{object}	MonthBalanceResponse
// @Param			id		path		string	true	"ID of the household"
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/month-balances/{id}/{month} [get]
func GetMonthBalance(c *gin.Context) {
	balance, err := monthBalance(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthBalanceResponse{
			Error: &s,
		})
		return
	}

	data := newMonthBalance(c, balance)
	c.JSON(http.StatusOK, MonthBalanceResponse{Data: &data})
}

// @Summary		Update month balance
// @Description	Updates an existing month balance. Only values to be updated need to be specified.
// @Tags			MonthBalances
// @Accept			json
// @Produce		json
// @Success		200				{object}	MonthBalanceResponse
// @Failure		400				{object}	MonthBalanceResponse
// @Failure		404				{object}	MonthBalanceResponse
// @Failure		500				{object}	MonthBalanceResponse
// @Param			id				path		string					true	"ID of the household"
// @Param			month			path		string					true	"The month in YYYY-MM format"
// @Param			monthBalance	body		MonthBalanceEditable	true	"MonthBalance"
// @Router			/v1/month-balances/{id}/{month} [patch]
func UpdateMonthBalance(c *gin.Context) {
	balance, err := monthBalance(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthBalanceResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, MonthBalanceEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthBalanceResponse{
			Error: &s,
		})
		return
	}

	var data MonthBalanceEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthBalanceResponse{
			Error: &s,
		})
		return
	}

	// The household and month a balance belongs to can never change
	updateFields = slices.DeleteFunc(updateFields, func(field any) bool {
		return field == "HouseholdID" || field == "Month"
	})

	err = models.DB.Model(&balance).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthBalanceResponse{
			Error: &s,
		})
		return
	}

	r := newMonthBalance(c, balance)
	c.JSON(http.StatusOK, MonthBalanceResponse{Data: &r})
}

// @Summary		Delete month balance
// @Description	Deletes the opening balance of a household month
// @Tags			MonthBalances
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID of the household"
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/month-balances/{id}/{month} [delete]
func DeleteMonthBalance(c *gin.Context) {
	balance, err := monthBalance(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&balance).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
