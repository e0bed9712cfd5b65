package models

import (
	"strings"

	"github.com/casazen/backend/internal/health"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// PriorityRule assigns a priority tier to expenses whose name matches a glob
// pattern, e.g. "Rent*" -> P1. Rules are evaluated in ascending priority
// order, the first match wins.
type PriorityRule struct {
	DefaultModel
	Household   Household `json:"-"`
	HouseholdID uuid.UUID
	Priority    uint   // The priority of the rule, lower number = earlier evaluation
	Match       string // The glob pattern expense names are matched against
	Tier        health.Tier
}

// BeforeSave trims whitespace and validates the rule.
func (r *PriorityRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)

	if r.Match == "" {
		return ErrMatchPatternEmpty
	}

	if !r.Tier.Valid() {
		return ErrPriorityTierInvalid
	}

	return nil
}

func (r *PriorityRule) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*PriorityRule)
	return r.checkIntegrity(tx, *toSave)
}

func (r *PriorityRule) checkIntegrity(tx *gorm.DB, toSave PriorityRule) error {
	return tx.First(&Household{}, toSave.HouseholdID).Error
}

// matchPriorityRules resolves the tier for an expense name through the
// household's rules. Without a matching rule the default tier applies.
func matchPriorityRules(tx *gorm.DB, householdID uuid.UUID, name string) health.Tier {
	var rules []PriorityRule

	err := tx.
		Where(&PriorityRule{HouseholdID: householdID}).
		Order("priority ASC").
		Find(&rules).Error
	if err != nil {
		return health.TierDefault
	}

	for _, rule := range rules {
		if glob.Glob(rule.Match, name) {
			return rule.Tier
		}
	}

	return health.TierDefault
}
