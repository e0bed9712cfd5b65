package health

import (
	"github.com/shopspring/decimal"
)

// PurchaseSeverity grades the impact of a simulated purchase on the daily
// budget.
// swagger:enum PurchaseSeverity
type PurchaseSeverity string

const (
	PurchaseLow      PurchaseSeverity = "LOW"
	PurchaseMedium   PurchaseSeverity = "MEDIUM"
	PurchaseHigh     PurchaseSeverity = "HIGH"
	PurchaseCritical PurchaseSeverity = "CRITICAL"
)

var (
	severityHighOver   = decimal.NewFromInt(40)
	severityMediumOver = decimal.NewFromInt(15)
	hundred            = decimal.NewFromInt(100)
)

// PurchaseSimulation answers "what happens to my daily budget if I spend this
// now". It is derived on demand from a snapshot and never cached.
type PurchaseSimulation struct {
	Amount               decimal.Decimal  `json:"amount" example:"250"`               // The simulated purchase amount
	NewDailyBudget       decimal.Decimal  `json:"newDailyBudget" example:"8.12"`      // The daily budget after the purchase
	BudgetDropAmount     decimal.Decimal  `json:"budgetDropAmount" example:"4.18"`    // Absolute budget drop per day
	BudgetDropPercentage decimal.Decimal  `json:"budgetDropPercentage" example:"34"`  // Relative budget drop, 100 when there is no budget
	DaysToRecover        decimal.Decimal  `json:"daysToRecover" example:"20.3"`       // Days of full budget the purchase consumes, 0 when there is no budget
	Severity             PurchaseSeverity `json:"severity" example:"MEDIUM"`
}

// SimulatePurchase recomputes the even-spread daily budget against a balance
// reduced by the purchase and classifies the severity of the drop.
//
// The amount is assumed to be validated as positive by the caller.
func SimulatePurchase(snapshot Snapshot, amount decimal.Decimal) PurchaseSimulation {
	newDaily := snapshot.AvailableBalance.Sub(amount).Div(snapshot.EffectiveDaysRemaining)
	drop := snapshot.DailyBudget.Sub(newDaily)

	// An exhausted budget drops by 100% and cannot recover, not by NaN.
	dropPercentage := hundred
	daysToRecover := decimal.Zero
	if snapshot.DailyBudget.IsPositive() {
		dropPercentage = drop.Div(snapshot.DailyBudget).Mul(hundred)
		daysToRecover = amount.Div(snapshot.DailyBudget)
	}

	severity := PurchaseLow
	switch {
	case newDaily.IsNegative():
		severity = PurchaseCritical
	case dropPercentage.GreaterThan(severityHighOver):
		severity = PurchaseHigh
	case dropPercentage.GreaterThan(severityMediumOver):
		severity = PurchaseMedium
	}

	return PurchaseSimulation{
		Amount:               amount,
		NewDailyBudget:       newDaily,
		BudgetDropAmount:     drop,
		BudgetDropPercentage: dropPercentage,
		DaysToRecover:        daysToRecover,
		Severity:             severity,
	}
}
