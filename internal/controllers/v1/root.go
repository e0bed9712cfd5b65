package v1

import (
	"net/http"

	"github.com/casazen/backend/internal/httputil"
	"github.com/casazen/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Households    string `json:"households" example:"https://example.com/api/v1/households"`          // URL of the household list endpoint
	Incomes       string `json:"incomes" example:"https://example.com/api/v1/incomes"`                // URL of the income list endpoint
	Expenses      string `json:"expenses" example:"https://example.com/api/v1/expenses"`              // URL of the expense list endpoint
	PriorityRules string `json:"priorityRules" example:"https://example.com/api/v1/priority-rules"`   // URL of the priority rule list endpoint
	Settings      string `json:"settings" example:"https://example.com/api/v1/settings"`              // URL of the settings list endpoint
	MonthBalances string `json:"monthBalances" example:"https://example.com/api/v1/month-balances"`   // URL of the month balance list endpoint
	Health        string `json:"health" example:"https://example.com/api/v1/health"`                  // URL of the financial health endpoint
	Insights      string `json:"insights" example:"https://example.com/api/v1/insights"`              // URL of the insights endpoint
}

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Households:    url + "/v1/households",
			Incomes:       url + "/v1/incomes",
			Expenses:      url + "/v1/expenses",
			PriorityRules: url + "/v1/priority-rules",
			Settings:      url + "/v1/settings",
			MonthBalances: url + "/v1/month-balances",
			Health:        url + "/v1/health",
			Insights:      url + "/v1/insights",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
