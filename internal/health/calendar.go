package health

import (
	"time"

	"github.com/casazen/backend/internal/types"
	"github.com/shopspring/decimal"
)

var (
	defaultWeekendWeight = decimal.NewFromFloat(1.5)

	// effectiveDaysEpsilon keeps the weighted remaining day count strictly
	// positive so that it can be used as a divisor.
	effectiveDaysEpsilon = decimal.NewFromFloat(0.01)

	one = decimal.NewFromInt(1)
)

// calendar is the weighted view of the month: weekend days consume more
// budget than weekdays, so the remaining day count is a weight sum rather
// than a day count.
type calendar struct {
	totalMonthWeights      decimal.Decimal
	effectiveDaysRemaining decimal.Decimal
	daysRemaining          int
}

// dayWeight returns the spending weight of a calendar day.
func dayWeight(day time.Time, weekendWeight decimal.Decimal) decimal.Decimal {
	if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		return weekendWeight
	}

	return one
}

// buildCalendar sums day weights over the whole month and over the days from
// today (inclusive) to month end.
func buildCalendar(month types.Month, now time.Time, weekendWeight decimal.Decimal) calendar {
	today := dateOf(now)
	last := month.Last()

	cal := calendar{
		totalMonthWeights:      decimal.Zero,
		effectiveDaysRemaining: decimal.Zero,
	}

	for day := month.First(); !day.After(last); day = day.AddDate(0, 0, 1) {
		weight := dayWeight(day, weekendWeight)
		cal.totalMonthWeights = cal.totalMonthWeights.Add(weight)

		if !day.Before(today) {
			cal.effectiveDaysRemaining = cal.effectiveDaysRemaining.Add(weight)
			cal.daysRemaining++
		}
	}

	cal.effectiveDaysRemaining = decimal.Max(cal.effectiveDaysRemaining, effectiveDaysEpsilon)
	return cal
}
