package health

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AlertType identifies the condition an alert reports.
// swagger:enum AlertType
type AlertType string

const (
	AlertInsufficientForCommitments AlertType = "INSUFFICIENT_FOR_COMMITMENTS"
	AlertLowBalanceDay              AlertType = "LOW_BALANCE_DAY"
	AlertOverBudget                 AlertType = "OVER_BUDGET"
	AlertNegativeBalance            AlertType = "NEGATIVE_BALANCE"
	AlertAllHealthy                 AlertType = "ALL_HEALTHY"
)

// Severity grades an alert.
// swagger:enum Severity
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Alert is a structured finding about the month's financial health.
type Alert struct {
	Type       AlertType  `json:"type" example:"LOW_BALANCE_DAY"`
	Severity   Severity   `json:"severity" example:"warning"`
	Message    string     `json:"message" example:"your balance is projected to drop below the reserve on 2026-08-23"`
	Actionable bool       `json:"actionable" example:"true"`
	Date       *time.Time `json:"date,omitempty" example:"2026-08-23T00:00:00Z"` // The affected day, if the alert concerns one
}

// overBudgetTolerance: spending is only flagged once it exceeds the daily
// budget by 20%, to avoid nagging about rounding-level overshoots.
var overBudgetTolerance = decimal.NewFromFloat(1.2)

type classification struct {
	currentBalance decimal.Decimal
	available      decimal.Decimal
	committed      decimal.Decimal
	threshold      decimal.Decimal
	dailyBudget    decimal.Decimal
	burnRate       decimal.Decimal
	days           []DayProjection
}

// rank orders statuses so that classification can only escalate.
func rank(s Status) int {
	switch s {
	case StatusCaution:
		return 1
	case StatusDanger:
		return 2
	default:
		return 0
	}
}

func escalate(current, next Status) Status {
	if rank(next) > rank(current) {
		return next
	}

	return current
}

// classify runs the escalating sequence of health checks. The status never
// downgrades within one evaluation, and at least one alert is always present.
func classify(c classification) (Status, []Alert) {
	status := StatusHealthy
	var alerts []Alert

	// 1. The available balance does not cover the committed future expenses.
	if c.available.LessThan(c.committed) {
		alerts = append(alerts, Alert{
			Type:       AlertInsufficientForCommitments,
			Severity:   SeverityCritical,
			Message:    fmt.Sprintf("your available balance of %s does not cover the %s still committed this month", c.available.StringFixed(2), c.committed.StringFixed(2)),
			Actionable: true,
		})
		status = escalate(status, StatusDanger)
	}

	// 2. A projected day drops below the low-balance threshold. Only the
	// first offending day is reported.
	for _, day := range c.days {
		if day.ProjectedBalance.LessThan(c.threshold) {
			date := day.Date
			alerts = append(alerts, Alert{
				Type:       AlertLowBalanceDay,
				Severity:   SeverityWarning,
				Message:    fmt.Sprintf("your balance is projected to drop below %s on %s", c.threshold.StringFixed(2), date.Format("2006-01-02")),
				Actionable: true,
				Date:       &date,
			})
			status = escalate(status, StatusCaution)
			break
		}
	}

	// 3. The recent spend rate exceeds the daily budget.
	if c.burnRate.GreaterThan(c.dailyBudget.Mul(overBudgetTolerance)) {
		message := fmt.Sprintf("you are spending %s per day against a budget of %s", c.burnRate.StringFixed(2), c.dailyBudget.StringFixed(2))
		if !c.dailyBudget.IsPositive() {
			message = fmt.Sprintf("you are spending %s per day but there is no room in the budget", c.burnRate.StringFixed(2))
		}

		alerts = append(alerts, Alert{
			Type:       AlertOverBudget,
			Severity:   SeverityWarning,
			Message:    message,
			Actionable: true,
		})
		status = escalate(status, StatusCaution)
	}

	// 4. The balance is already negative. Absolute, independent of the
	// checks above.
	if c.currentBalance.IsNegative() {
		alerts = append(alerts, Alert{
			Type:       AlertNegativeBalance,
			Severity:   SeverityCritical,
			Message:    fmt.Sprintf("your balance is negative at %s", c.currentBalance.StringFixed(2)),
			Actionable: true,
		})
		status = escalate(status, StatusDanger)
	}

	if len(alerts) == 0 {
		alerts = append(alerts, Alert{
			Type:       AlertAllHealthy,
			Severity:   SeverityInfo,
			Message:    "everything looks healthy this month",
			Actionable: false,
		})
	}

	return status, alerts
}
