package health

import (
	"time"

	"github.com/casazen/backend/internal/types"
	"github.com/shopspring/decimal"
)

// bottleneck is the binding constraint on safe spending: the lowest point
// the available balance reaches before future income recovers it.
type bottleneck struct {
	safeLiquidity decimal.Decimal // lowest available balance, floored at zero
	daysUntil     decimal.Decimal // weighted days from today until that point
}

// projection is the result of the day-by-day walk.
type projection struct {
	bottleneck
	days         []DayProjection
	projectedEnd decimal.Decimal
}

const dayKeyFormat = "2006-01-02"

// indexByDay sums event amounts per exact calendar date. Matching events by
// full date avoids misattributing events when day-of-month numbers repeat
// across month boundaries.
func indexByDay(events []Event) map[string]decimal.Decimal {
	index := make(map[string]decimal.Decimal, len(events))
	for _, event := range events {
		key := dateOf(event.Date).Format(dayKeyFormat)
		index[key] = index[key].Add(event.Amount)
	}

	return index
}

// simulate walks forward one calendar day at a time from today through month
// end, applying each day's net cash delta and tracking the low-water mark of
// the available balance.
//
// The comparison is strictly-less-than: in a flat trough spanning several
// days the earliest day is the constraint point, because that is the day
// spending must already be curtailed.
func simulate(month types.Month, now time.Time, led ledger, cal calendar, reserve, weekendWeight decimal.Decimal) projection {
	incomeByDay := indexByDay(led.futureIncomes)
	expenseByDay := indexByDay(led.futureExpenses)

	start := dateOf(now)
	if start.Before(month.First()) {
		start = month.First()
	}
	last := month.Last()

	result := projection{
		projectedEnd: led.currentBalance,
	}

	running := led.currentBalance
	weights := decimal.Zero
	lowest := decimal.Zero
	found := false

	for day := start; !day.After(last); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayKeyFormat)
		income := incomeByDay[key]
		expense := expenseByDay[key]

		running = running.Add(income).Sub(expense)
		available := running.Sub(reserve)
		weights = weights.Add(dayWeight(day, weekendWeight))

		if !found || available.LessThan(lowest) {
			lowest = available
			result.daysUntil = weights
			found = true
		}

		result.days = append(result.days, DayProjection{
			Date:             day,
			ProjectedBalance: running,
			Income:           income,
			Expense:          expense,
		})
	}

	result.projectedEnd = running

	// A month without future events has no real trough. Fall back to the
	// weighted remaining day count so that the constrained budget degenerates
	// to the even spread instead of dividing by a single day's weight.
	if !found || len(led.futureIncomes)+len(led.futureExpenses) == 0 {
		lowest = led.currentBalance.Sub(reserve)
		result.daysUntil = cal.effectiveDaysRemaining
	}

	// A below-reserve low point means zero safe spending, never a negative
	// budget.
	result.safeLiquidity = decimal.Max(decimal.Zero, lowest)

	return result
}
