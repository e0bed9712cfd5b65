// Package health implements the financial health engine for a household
// month: a day-by-day cash-flow projection, bottleneck detection, the safe
// daily spending budget and the health status with its alerts.
//
// The engine is a pure function of its inputs. It performs no I/O, reads no
// clocks and keeps no state: calling Compute twice with identical inputs
// returns identical snapshots. Callers load the month's records from the
// database, fill an Input and decide their own memoization policy.
package health

import (
	"time"

	"github.com/casazen/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Tier ranks a future expense from essential (P1) to fully flexible (P4).
// swagger:enum Tier
type Tier string

const (
	TierP1 Tier = "P1"
	TierP2 Tier = "P2"
	TierP3 Tier = "P3"
	TierP4 Tier = "P4"
)

// TierDefault is the tier assumed for expenses that do not carry one.
const TierDefault = TierP3

// Valid reports whether the tier is one of P1 to P4.
func (t Tier) Valid() bool {
	return t == TierP1 || t == TierP2 || t == TierP3 || t == TierP4
}

// Essential reports whether expenses of this tier must be preserved.
func (t Tier) Essential() bool {
	return t == TierP1 || t == TierP2
}

// ReserveType determines how the minimum reserve is derived.
// swagger:enum ReserveType
type ReserveType string

const (
	// ReserveFixed keeps a fixed amount untouchable.
	ReserveFixed ReserveType = "FIXED"
	// ReservePercentage keeps a percentage of the total monthly income untouchable.
	ReservePercentage ReserveType = "PERCENTAGE"
)

// Status is the overall health classification for the month.
// swagger:enum Status
type Status string

const (
	StatusHealthy Status = "HEALTHY"
	StatusCaution Status = "CAUTION"
	StatusDanger  Status = "DANGER"
)

// Event is a dated monetary movement. Amount is always positive, the
// direction is determined by the list it is passed in (Input.Incomes or
// Input.Expenses). Tier is only meaningful for expenses.
type Event struct {
	Date   time.Time
	Amount decimal.Decimal
	Tier   Tier
}

// Settings is the household-level configuration for the engine.
type Settings struct {
	ReserveType         ReserveType
	ReserveValue        decimal.Decimal
	WeekendWeight       decimal.Decimal     // defaults to 1.5 when not positive
	LowBalanceThreshold decimal.NullDecimal // defaults to the minimum reserve when not set
}

// Input is everything the engine needs for one computation.
//
// Now is passed explicitly so that computations are deterministic and can be
// tested across month ends, leap years and time zones.
type Input struct {
	Month          types.Month
	Now            time.Time
	OpeningBalance decimal.Decimal
	Incomes        []Event
	Expenses       []Event
	Settings       Settings
}

// DayProjection is the simulated balance for one remaining calendar day.
type DayProjection struct {
	Date             time.Time       `json:"date" example:"2026-08-20T00:00:00Z"`           // The day, midnight UTC
	ProjectedBalance decimal.Decimal `json:"projectedBalance" example:"1140.50"`             // Balance after the day's known events
	BudgetedBalance  decimal.Decimal `json:"budgetedBalance" example:"1018.20"`              // Balance assuming the daily budget is spent every day
	Income           decimal.Decimal `json:"income" example:"0"`                             // Known income on this day
	Expense          decimal.Decimal `json:"expense" example:"89.90"`                        // Known expenses on this day
}

// Snapshot is the single output aggregate of the engine. It is recomputed
// wholesale on every call and never mutated.
type Snapshot struct {
	Month types.Month `json:"month" example:"2026-08-01T00:00:00Z"` // The month the snapshot covers
	Date  time.Time   `json:"date" example:"2026-08-17T14:00:00Z"`  // The instant the snapshot was evaluated at

	CurrentBalance   decimal.Decimal `json:"currentBalance" example:"1820.45"`   // Opening balance plus realized income minus realized expenses
	MinimumReserve   decimal.Decimal `json:"minimumReserve" example:"500"`       // The untouchable balance floor
	AvailableBalance decimal.Decimal `json:"availableBalance" example:"1320.45"` // Current balance minus the minimum reserve
	RealizedIncome   decimal.Decimal `json:"realizedIncome" example:"4200"`      // Income received up to the evaluation instant
	RealizedExpense  decimal.Decimal `json:"realizedExpense" example:"2379.55"`  // Expenses paid up to the evaluation instant
	FutureCommitted  decimal.Decimal `json:"futureCommitted" example:"830"`      // Future P1+P2 expenses that must be preserved
	FutureFlexible   decimal.Decimal `json:"futureFlexible" example:"240"`       // Future P3+P4 expenses

	StandardDailyBudget   decimal.Decimal `json:"standardDailyBudget" example:"17.88"`   // Spread-everything-evenly candidate
	BottleneckDailyBudget decimal.Decimal `json:"bottleneckDailyBudget" example:"12.30"` // Trough-constrained candidate
	DailyBudget           decimal.Decimal `json:"dailyBudget" example:"12.30"`           // The resolved safe daily budget (weekday)
	WeekendDailyBudget    decimal.Decimal `json:"weekendDailyBudget" example:"18.45"`    // The resolved safe daily budget on weekend days

	DaysRemaining          int             `json:"daysRemaining" example:"15"`            // Raw calendar days left, today inclusive
	EffectiveDaysRemaining decimal.Decimal `json:"effectiveDaysRemaining" example:"17.5"` // Weighted days left, today inclusive
	TotalMonthWeights      decimal.Decimal `json:"totalMonthWeights" example:"36"`        // Weighted day count for the whole month
	SafeLiquidity          decimal.Decimal `json:"safeLiquidity" example:"430.20"`        // Lowest available balance before the bottleneck, floored at zero
	DaysUntilBottleneck    decimal.Decimal `json:"daysUntilBottleneck" example:"6.5"`     // Weighted days until the bottleneck day

	ProjectedEndBalance decimal.Decimal `json:"projectedEndBalance" example:"950.45"` // Balance at month end with all known events applied
	Autonomy            decimal.Decimal `json:"autonomy" example:"23.4"`              // Days the current balance lasts at the recent burn rate

	Status Status          `json:"status" example:"CAUTION"`
	Alerts []Alert         `json:"alerts"`
	Days   []DayProjection `json:"days"` // Day-by-day projection, ascending, today to month end
}

// Compute runs the full engine over the input and returns the snapshot.
func Compute(input Input) Snapshot {
	weekendWeight := input.Settings.WeekendWeight
	if !weekendWeight.IsPositive() {
		weekendWeight = defaultWeekendWeight
	}

	led := collect(input)
	cal := buildCalendar(input.Month, input.Now, weekendWeight)
	reserve := minimumReserve(input.Settings, led)
	sim := simulate(input.Month, input.Now, led, cal, reserve, weekendWeight)
	bud := resolveBudget(led, cal, sim.bottleneck, reserve, weekendWeight)

	// The budgeted balance assumes the daily budget is consumed every day,
	// weekends at the weekend weight.
	consumed := decimal.Zero
	for i := range sim.days {
		consumed = consumed.Add(bud.daily.Mul(dayWeight(sim.days[i].Date, weekendWeight)))
		sim.days[i].BudgetedBalance = sim.days[i].ProjectedBalance.Sub(consumed)
	}

	currentBalance := led.currentBalance
	available := currentBalance.Sub(reserve)
	burn := burnRate(input.Month, input.Now, led.realizedExpense)

	status, alerts := classify(classification{
		currentBalance: currentBalance,
		available:      available,
		committed:      led.committed,
		threshold:      lowBalanceThreshold(input.Settings, reserve),
		dailyBudget:    bud.daily,
		burnRate:       burn,
		days:           sim.days,
	})

	return Snapshot{
		Month: input.Month,
		Date:  input.Now,

		CurrentBalance:   currentBalance,
		MinimumReserve:   reserve,
		AvailableBalance: available,
		RealizedIncome:   led.realizedIncome,
		RealizedExpense:  led.realizedExpense,
		FutureCommitted:  led.committed,
		FutureFlexible:   led.flexible,

		StandardDailyBudget:   bud.standard,
		BottleneckDailyBudget: bud.constrained,
		DailyBudget:           bud.daily,
		WeekendDailyBudget:    bud.weekend,

		DaysRemaining:          cal.daysRemaining,
		EffectiveDaysRemaining: cal.effectiveDaysRemaining,
		TotalMonthWeights:      cal.totalMonthWeights,
		SafeLiquidity:          sim.safeLiquidity,
		DaysUntilBottleneck:    sim.daysUntil,

		ProjectedEndBalance: sim.projectedEnd,
		Autonomy:            autonomy(currentBalance, burn, cal.daysRemaining),

		Status: status,
		Alerts: alerts,
		Days:   sim.days,
	}
}

// minimumReserve derives the untouchable balance floor from the settings.
// A percentage reserve is taken from the total monthly income, realized and
// future.
func minimumReserve(settings Settings, led ledger) decimal.Decimal {
	if settings.ReserveType == ReservePercentage {
		return led.totalIncome.Mul(settings.ReserveValue).Div(decimal.NewFromInt(100))
	}

	return settings.ReserveValue
}

// lowBalanceThreshold returns the configured low-balance alert threshold,
// falling back to the minimum reserve.
func lowBalanceThreshold(settings Settings, reserve decimal.Decimal) decimal.Decimal {
	if settings.LowBalanceThreshold.Valid {
		return settings.LowBalanceThreshold.Decimal
	}

	return reserve
}

// burnRate is the average realized spend per elapsed day of the month,
// today inclusive.
func burnRate(month types.Month, now time.Time, realizedExpense decimal.Decimal) decimal.Decimal {
	today := dateOf(now)
	if today.Before(month.First()) {
		return decimal.Zero
	}

	last := month.Last()
	if today.After(last) {
		today = last
	}

	elapsed := int(today.Sub(month.First()).Hours()/24) + 1
	return realizedExpense.Div(decimal.NewFromInt(int64(elapsed)))
}

// autonomy is the number of days the current balance lasts at the recent
// burn rate. With nothing being burned the balance outlasts the month, so
// the raw remaining day count is reported.
func autonomy(balance, burn decimal.Decimal, daysRemaining int) decimal.Decimal {
	if !balance.IsPositive() {
		return decimal.Zero
	}

	if !burn.IsPositive() {
		return decimal.NewFromInt(int64(daysRemaining))
	}

	return balance.Div(burn)
}

// dateOf truncates an instant to midnight UTC of its calendar day.
func dateOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
