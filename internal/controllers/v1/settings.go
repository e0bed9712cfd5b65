package v1

import (
	"net/http"

	"github.com/casazen/backend/internal/httputil"
	"github.com/casazen/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterSettingsRoutes registers the routes for financial settings with
// the RouterGroup that is passed.
func RegisterSettingsRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSettingsList)
		r.GET("", GetSettingsList)
		r.POST("", CreateSettingsList)
	}

	// Settings for a specific household
	{
		r.OPTIONS("/:id", OptionsSettingsDetail)
		r.GET("/:id", GetSettings)
		r.PATCH("/:id", UpdateSettings)
		r.DELETE("/:id", DeleteSettings)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func OptionsSettingsList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the household"
// @Router			/v1/settings/{id} [options]
func OptionsSettingsDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.FinancialSettings{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create settings
// @Description	Creates financial settings for households. Each household can only have one set of settings.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		201			{object}	SettingsCreateResponse
// @Failure		400			{object}	SettingsCreateResponse
// @Failure		404			{object}	SettingsCreateResponse
// @Failure		500			{object}	SettingsCreateResponse
// @Param			settings	body		[]SettingsEditable	true	"Settings"
// @Router			/v1/settings [post]
func CreateSettingsList(c *gin.Context) {
	var editables []SettingsEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SettingsCreateResponse{}

	for _, editable := range editables {
		settings := editable.model()

		err = models.DB.Create(&settings).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newSettings(c, settings)
		r.Data = append(r.Data, SettingsResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List settings
// @Description	Returns the financial settings of all households
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsListResponse
// @Failure		400	{object}	SettingsListResponse
// @Failure		500	{object}	SettingsListResponse
// @Router			/v1/settings [get]
// @Param			household	query	string	false	"Filter by household ID"
// @Param			reserveType	query	string	false	"Filter by minimum reserve type"
// @Param			offset		query	uint	false	"The offset of the first result returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of results to return. Defaults to 50."
func GetSettingsList(c *gin.Context) {
	var filter SettingsQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, SettingsListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model to filter with
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("household_id ASC").
		Where(&filterModel, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 results and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var settingsList []models.FinancialSettings
	err = q.Find(&settingsList).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Settings, 0)
	for _, settings := range settingsList {
		data = append(data, newSettings(c, settings))
	}

	c.JSON(http.StatusOK, SettingsListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get settings
// @Description	Returns the financial settings of a specific household
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		400	{object}	SettingsResponse
// @Failure		404	{object}	SettingsResponse
// @Failure		500	{object}	SettingsResponse
// @Param			id	path		URIID	true	"ID of the household"
// @Router			/v1/settings/{id} [get]
func GetSettings(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &s,
		})
		return
	}

	var settings models.FinancialSettings
	err = models.DB.First(&settings, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &s,
		})
		return
	}

	data := newSettings(c, settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &data})
}

// @Summary		Update settings
// @Description	Updates existing financial settings. Only values to be updated need to be specified.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Failure		404			{object}	SettingsResponse
// @Failure		500			{object}	SettingsResponse
// @Param			id			path		URIID				true	"ID of the household"
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/v1/settings/{id} [patch]
func UpdateSettings(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &s,
		})
		return
	}

	var settings models.FinancialSettings
	err = models.DB.First(&settings, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SettingsEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &s,
		})
		return
	}

	var data SettingsEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &s,
		})
		return
	}

	// The household a settings row belongs to can never change
	updateFields = slices.DeleteFunc(updateFields, func(field any) bool {
		return field == "HouseholdID"
	})

	err = models.DB.Model(&settings).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &s,
		})
		return
	}

	r := newSettings(c, settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &r})
}

// @Summary		Delete settings
// @Description	Deletes the financial settings of a household
// @Tags			Settings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the household"
// @Router			/v1/settings/{id} [delete]
func DeleteSettings(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var settings models.FinancialSettings
	err = models.DB.First(&settings, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&settings).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
