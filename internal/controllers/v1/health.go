package v1

import (
	"net/http"
	"time"

	"github.com/casazen/backend/internal/health"
	"github.com/casazen/backend/internal/httputil"
	"github.com/casazen/backend/internal/models"
	"github.com/casazen/backend/internal/types"
	cz_uuid "github.com/casazen/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterHealthRoutes registers the routes for the financial health
// endpoints with the RouterGroup that is passed.
func RegisterHealthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsHealth)
		r.GET("", GetHealth)
	}

	{
		r.OPTIONS("/simulation", OptionsHealthSimulation)
		r.POST("/simulation", SimulateHealthPurchase)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Health
// @Success		204
// @Router			/v1/health [options]
func OptionsHealth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Health
// @Success		204
// @Router			/v1/health/simulation [options]
func OptionsHealthSimulation(c *gin.Context) {
	httputil.OptionsPost(c)
}

// snapshot loads the household from the filter and computes its financial
// health snapshot. The evaluation instant defaults to the current time.
func snapshot(filter HealthQueryFilter) (health.Snapshot, error) {
	if filter.Household.UUID == uuid.Nil {
		return health.Snapshot{}, errHouseholdIDParameter
	}

	if filter.Month.IsZero() {
		return health.Snapshot{}, errMonthNotSetInQuery
	}

	now := filter.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var household models.Household
	err := models.DB.First(&household, filter.Household).Error
	if err != nil {
		return health.Snapshot{}, err
	}

	return household.Snapshot(models.DB, types.MonthOf(filter.Month), now)
}

// @Summary		Get financial health
// @Description	Computes the financial health snapshot for one month of a household: balances, the safe daily budget, the projected bottleneck, status and alerts.
// @Tags			Health
// @Produce		json
// @Success		200	{object}	HealthResponse
// @Failure		400	{object}	HealthResponse
// @Failure		404	{object}	HealthResponse
// @Failure		500	{object}	HealthResponse
// @Router			/v1/health [get]
// @Param			household	query	string	true	"ID of the household"
// @Param			month		query	string	true	"The month in YYYY-MM format"
// @Param			now			query	string	false	"The instant to evaluate at, RFC3339. Defaults to the current time."
func GetHealth(c *gin.Context) {
	var filter HealthQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, HealthResponse{
			Error: &s,
		})
		return
	}

	data, err := snapshot(filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HealthResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Data: &data})
}

// @Summary		Simulate a purchase
// @Description	Computes what a purchase right now would do to the safe daily budget of the household's current month.
// @Tags			Health
// @Accept			json
// @Produce		json
// @Success		200			{object}	SimulationResponse
// @Failure		400			{object}	SimulationResponse
// @Failure		404			{object}	SimulationResponse
// @Failure		500			{object}	SimulationResponse
// @Param			simulation	body		SimulationEditable	true	"Simulation"
// @Router			/v1/health/simulation [post]
func SimulateHealthPurchase(c *gin.Context) {
	var editable SimulationEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	if !editable.Amount.IsPositive() {
		s := errSimulationAmountNotPositive.Error()
		c.JSON(http.StatusBadRequest, SimulationResponse{
			Error: &s,
		})
		return
	}

	snap, err := snapshot(HealthQueryFilter{
		Household: cz_uuid.UUID{UUID: editable.HouseholdID},
		Month:     editable.Month,
		Now:       editable.Now,
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	data := health.SimulatePurchase(snap, editable.Amount)
	c.JSON(http.StatusOK, SimulationResponse{Data: &data})
}
