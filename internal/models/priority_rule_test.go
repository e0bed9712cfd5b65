package models_test

import (
	"testing"

	"github.com/casazen/backend/internal/health"
	"github.com/casazen/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestPriorityRuleValidation() {
	household := suite.createTestHousehold(models.Household{})

	tests := []struct {
		name  string
		match string
		tier  health.Tier
		err   error
	}{
		{"valid", "Rent*", health.TierP1, nil},
		{"empty match", "  ", health.TierP1, models.ErrMatchPatternEmpty},
		{"invalid tier", "Rent*", health.Tier("essential"), models.ErrPriorityTierInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			rule := models.PriorityRule{
				HouseholdID: household.ID,
				Match:       tt.match,
				Tier:        tt.tier,
			}

			err := models.DB.Create(&rule).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestPriorityRuleNonExistingHousehold() {
	rule := models.PriorityRule{
		HouseholdID: uuid.New(),
		Match:       "Rent*",
		Tier:        health.TierP1,
	}

	err := models.DB.Create(&rule).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
