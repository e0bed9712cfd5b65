package models_test

import (
	"testing"

	"github.com/casazen/backend/internal/health"
	"github.com/casazen/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSettingsDefaults() {
	household := suite.createTestHousehold(models.Household{})

	settings := suite.createTestSettings(models.FinancialSettings{
		HouseholdID: household.ID,
	})

	assert.Equal(suite.T(), health.ReserveFixed, settings.MinimumReserveType)
	assert.True(suite.T(), settings.WeekendWeight.Equal(decimal.NewFromFloat(1.5)), "weekend weight is %s", settings.WeekendWeight)
	assert.False(suite.T(), settings.LowBalanceThreshold.Valid)
}

func (suite *TestSuiteStandard) TestSettingsValidation() {
	household := suite.createTestHousehold(models.Household{})

	tests := []struct {
		name     string
		settings models.FinancialSettings
		err      error
	}{
		{
			"invalid reserve type",
			models.FinancialSettings{HouseholdID: household.ID, MinimumReserveType: health.ReserveType("GOLD")},
			models.ErrReserveTypeInvalid,
		},
		{
			"negative reserve value",
			models.FinancialSettings{HouseholdID: household.ID, MinimumReserveValue: decimal.NewFromInt(-1)},
			models.ErrReserveValueNegative,
		},
		{
			"negative weekend weight",
			models.FinancialSettings{HouseholdID: household.ID, WeekendWeight: decimal.NewFromInt(-2)},
			models.ErrWeekendWeightNotPositive,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.settings).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestSettingsUnique() {
	household := suite.createTestHousehold(models.Household{})

	_ = suite.createTestSettings(models.FinancialSettings{
		HouseholdID: household.ID,
	})

	second := models.FinancialSettings{HouseholdID: household.ID}
	err := models.DB.Create(&second).Error
	assert.ErrorIs(suite.T(), err, models.ErrSettingsNotUnique)
}

func (suite *TestSuiteStandard) TestSettingsEngine() {
	household := suite.createTestHousehold(models.Household{})

	settings := suite.createTestSettings(models.FinancialSettings{
		HouseholdID:         household.ID,
		MinimumReserveType:  health.ReservePercentage,
		MinimumReserveValue: decimal.NewFromInt(10),
		LowBalanceThreshold: decimal.NewNullDecimal(decimal.NewFromInt(200)),
	})

	engine := settings.Engine()
	assert.Equal(suite.T(), health.ReservePercentage, engine.ReserveType)
	assert.True(suite.T(), engine.ReserveValue.Equal(decimal.NewFromInt(10)))
	assert.True(suite.T(), engine.LowBalanceThreshold.Valid)
}
