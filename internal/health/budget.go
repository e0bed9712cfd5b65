package health

import (
	"github.com/shopspring/decimal"
)

// budgets holds the two candidate daily budgets and the resolved values.
type budgets struct {
	standard    decimal.Decimal // spread all spreadable money evenly
	constrained decimal.Decimal // do not outspend the bottleneck
	daily       decimal.Decimal
	weekend     decimal.Decimal
}

// resolveBudget combines the naive even spread with the bottleneck-constrained
// budget and takes the minimum.
//
// Taking the minimum keeps the causal order intact: income that arrives after
// a trough must never justify spending more before it.
func resolveBudget(led ledger, cal calendar, b bottleneck, reserve, weekendWeight decimal.Decimal) budgets {
	available := led.currentBalance.Sub(reserve)

	spreadable := decimal.Max(decimal.Zero, available.Sub(led.committed).Sub(led.flexible))
	standard := spreadable.Div(cal.effectiveDaysRemaining)

	divisor := decimal.Max(one, b.daysUntil)
	constrained := b.safeLiquidity.Div(divisor)

	daily := decimal.Min(standard, constrained)

	return budgets{
		standard:    standard,
		constrained: constrained,
		daily:       daily,
		weekend:     daily.Mul(weekendWeight),
	}
}
