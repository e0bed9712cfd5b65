package health

import (
	"github.com/shopspring/decimal"
)

// ledger is the aggregation of the month's cash events: the realized side
// collapsed into sums and the future side kept as events, bucketed by tier.
type ledger struct {
	currentBalance  decimal.Decimal
	realizedIncome  decimal.Decimal
	realizedExpense decimal.Decimal
	totalIncome     decimal.Decimal // realized and future, used for percentage reserves

	futureIncomes  []Event
	futureExpenses []Event

	committed decimal.Decimal // future P1+P2
	flexible  decimal.Decimal // future P3+P4
	byTier    map[Tier]decimal.Decimal
}

// collect partitions the month's events into realized and future and derives
// the current balance.
//
// An event dated exactly at the evaluation instant counts as realized. The
// priority tier defaults to P3 here, at the ingestion boundary, so that the
// policy is visible in one place.
func collect(input Input) ledger {
	led := ledger{
		currentBalance:  input.OpeningBalance,
		realizedIncome:  decimal.Zero,
		realizedExpense: decimal.Zero,
		totalIncome:     decimal.Zero,
		committed:       decimal.Zero,
		flexible:        decimal.Zero,
		byTier: map[Tier]decimal.Decimal{
			TierP1: decimal.Zero,
			TierP2: decimal.Zero,
			TierP3: decimal.Zero,
			TierP4: decimal.Zero,
		},
	}

	for _, event := range input.Incomes {
		led.totalIncome = led.totalIncome.Add(event.Amount)

		if event.Date.After(input.Now) {
			led.futureIncomes = append(led.futureIncomes, event)
			continue
		}

		led.realizedIncome = led.realizedIncome.Add(event.Amount)
	}

	for _, event := range input.Expenses {
		if !event.Tier.Valid() {
			event.Tier = TierDefault
		}

		if event.Date.After(input.Now) {
			led.futureExpenses = append(led.futureExpenses, event)
			led.byTier[event.Tier] = led.byTier[event.Tier].Add(event.Amount)

			if event.Tier.Essential() {
				led.committed = led.committed.Add(event.Amount)
			} else {
				led.flexible = led.flexible.Add(event.Amount)
			}
			continue
		}

		led.realizedExpense = led.realizedExpense.Add(event.Amount)
	}

	led.currentBalance = led.currentBalance.Add(led.realizedIncome).Sub(led.realizedExpense)
	return led
}
