package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAmountNotPositive        = errors.New("amounts must be larger than zero")
	ErrCurrencyInvalid          = errors.New("the currency must be a valid ISO 4217 code")
	ErrPriorityTierInvalid      = errors.New("the priority tier must be one of P1, P2, P3, P4")
	ErrReserveTypeInvalid       = errors.New("the minimum reserve type must be FIXED or PERCENTAGE")
	ErrReserveValueNegative     = errors.New("the minimum reserve value must not be negative")
	ErrWeekendWeightNotPositive = errors.New("the weekend weight must be larger than zero")
	ErrMatchPatternEmpty        = errors.New("the match pattern must not be empty")

	ErrSettingsNotUnique     = errors.New("there already are financial settings for this household")
	ErrMonthBalanceNotUnique = errors.New("there already is an opening balance for this household and month")
)
