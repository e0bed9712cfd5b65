package models

import (
	"strings"

	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// Household is the highest level of organization in CasaZen, all other
// resources reference it directly.
type Household struct {
	DefaultModel
	Name     string
	Note     string
	Currency string // ISO 4217 code, defaults to BRL
}

// BeforeSave trims whitespace, defaults the currency and verifies it is a
// valid ISO 4217 code.
func (h *Household) BeforeSave(_ *gorm.DB) error {
	h.Name = strings.TrimSpace(h.Name)
	h.Note = strings.TrimSpace(h.Note)
	h.Currency = strings.ToUpper(strings.TrimSpace(h.Currency))

	if h.Currency == "" {
		h.Currency = "BRL"
	}

	if _, err := currency.ParseISO(h.Currency); err != nil {
		return ErrCurrencyInvalid
	}

	return nil
}
