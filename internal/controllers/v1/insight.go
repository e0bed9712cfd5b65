package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/casazen/backend/internal/httputil"
	"github.com/casazen/backend/internal/insight"
	cz_uuid "github.com/casazen/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

// insightClient is the client for the external insight service. It is set
// once during startup, a nil client disables the endpoint.
var insightClient *insight.Client

// SetInsightClient sets the client used by the insights endpoint.
func SetInsightClient(client *insight.Client) {
	insightClient = client
}

// RegisterInsightRoutes registers the routes for insights with
// the RouterGroup that is passed.
func RegisterInsightRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsInsights)
	r.GET("", GetInsights)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Insights
// @Success		204
// @Router			/v1/insights [options]
func OptionsInsights(c *gin.Context) {
	httputil.OptionsGet(c)
}

type InsightQueryFilter struct {
	Household cz_uuid.UUID `form:"household"`                                // ID of the household
	Type      insight.Type `form:"type"`                                     // The kind of narration to produce
	Month     time.Time    `form:"month" time_format:"2006-01" time_utc:"1"` // The month to narrate. Defaults to the current month.
	Now       time.Time    `form:"now" time_utc:"1"`                         // The instant to evaluate at. Defaults to the current time.
}

type InsightResponse struct {
	Data  *insight.Insight `json:"data"`                                              // The insight narration
	Error *string          `json:"error" example:"the specified insight type is invalid"` // The error, if any occurred
}

// insightStatus maps insight client errors to HTTP statuses. Everything that
// is not an insight error is a snapshot error and mapped like the health
// endpoint maps it.
func insightStatus(err error) int {
	switch {
	case errors.Is(err, insight.ErrCooldown):
		return http.StatusTooManyRequests
	case errors.Is(err, insight.ErrUnconfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, insight.ErrUnavailable):
		return http.StatusBadGateway
	}

	return status(err)
}

// @Summary		Get insight
// @Description	Asks the configured LLM service to narrate the household's current financial health. Responses are cached and rate limited, a 429 means an insight was requested too recently.
// @Tags			Insights
// @Produce		json
// @Success		200	{object}	InsightResponse
// @Failure		400	{object}	InsightResponse
// @Failure		404	{object}	InsightResponse
// @Failure		429	{object}	InsightResponse
// @Failure		502	{object}	InsightResponse
// @Failure		503	{object}	InsightResponse
// @Router			/v1/insights [get]
// @Param			household	query	string	true	"ID of the household"
// @Param			type		query	string	false	"The kind of narration: general or chart. Defaults to general."
// @Param			month		query	string	false	"The month in YYYY-MM format. Defaults to the current month."
// @Param			now			query	string	false	"The instant to evaluate at, RFC3339. Defaults to the current time."
func GetInsights(c *gin.Context) {
	var filter InsightQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, InsightResponse{
			Error: &s,
		})
		return
	}

	insightType := filter.Type
	if insightType == "" {
		insightType = insight.TypeGeneral
	}

	if !insightType.Valid() {
		s := errInsightTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, InsightResponse{
			Error: &s,
		})
		return
	}

	now := filter.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	month := filter.Month
	if month.IsZero() {
		month = now
	}

	snap, err := snapshot(HealthQueryFilter{
		Household: filter.Household,
		Month:     month,
		Now:       now,
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InsightResponse{
			Error: &s,
		})
		return
	}

	data, err := insightClient.Get(c.Request.Context(), snap, insightType)
	if err != nil {
		s := err.Error()
		c.JSON(insightStatus(err), InsightResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, InsightResponse{Data: &data})
}
