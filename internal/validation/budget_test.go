package validation

import (
	"testing"

	"planning-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBudget(t *testing.T) {
	b := &model.ActivityBudget{
		CalculationType:          model.BudgetWithoutTool,
		EstimatedCostWithoutTool: 1000,
		GovernmentTreasury:       600,
		SDGFunding:               300,
	}
	assert.NoError(t, ValidateBudget(b))

	// Funding equal to the estimate is allowed.
	b.PartnersFunding = 100
	assert.NoError(t, ValidateBudget(b))

	b.OtherFunding = 1
	err := ValidateBudget(b)
	require.Error(t, err)
	var be *BudgetError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 1001.0, be.TotalFunding)
	assert.Equal(t, 1000.0, be.EstimatedCost)
}

func TestValidateBudgetCalculationTypeSelectsEstimate(t *testing.T) {
	b := &model.ActivityBudget{
		CalculationType:          model.BudgetWithTool,
		EstimatedCostWithTool:    500,
		EstimatedCostWithoutTool: 2000,
		GovernmentTreasury:       600,
	}
	// With-tool estimate is authoritative, so 600 > 500 fails even though
	// the without-tool estimate would admit it.
	assert.Error(t, ValidateBudget(b))

	b.CalculationType = model.BudgetWithoutTool
	assert.NoError(t, ValidateBudget(b))
}

func TestValidateBudgetUnknownCalculationType(t *testing.T) {
	b := &model.ActivityBudget{CalculationType: "GUESS"}
	assert.Error(t, ValidateBudget(b))
}

func TestFundingGap(t *testing.T) {
	b := &model.ActivityBudget{
		CalculationType:          model.BudgetWithoutTool,
		EstimatedCostWithoutTool: 1000,
		GovernmentTreasury:       400,
	}
	assert.Equal(t, 600.0, b.FundingGap())
}
