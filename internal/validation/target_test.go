package validation

import (
	"testing"

	"planning-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTargetsCumulative(t *testing.T) {
	assert.NoError(t, ValidateTargets(model.TargetCumulative, "", 10, 20, 30, 40, 100))

	err := ValidateTargets(model.TargetCumulative, "", 10, 20, 30, 40, 99)
	require.Error(t, err)
	var te *TargetError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "annual_target", te.Field)
}

func TestValidateTargetsIncreasing(t *testing.T) {
	assert.NoError(t, ValidateTargets(model.TargetIncreasing, "5", 5, 10, 15, 20, 20))
	assert.NoError(t, ValidateTargets(model.TargetIncreasing, "5", 5, 5, 5, 20, 20))

	// Q1 below a numeric baseline.
	assert.Error(t, ValidateTargets(model.TargetIncreasing, "10", 5, 10, 15, 20, 20))

	// A non-numeric baseline skips the baseline check entirely.
	assert.NoError(t, ValidateTargets(model.TargetIncreasing, "N/A", 5, 10, 15, 20, 20))
	assert.NoError(t, ValidateTargets(model.TargetIncreasing, "", 5, 10, 15, 20, 20))

	// Out of order.
	assert.Error(t, ValidateTargets(model.TargetIncreasing, "", 5, 15, 10, 20, 20))

	// Q4 must equal annual.
	err := ValidateTargets(model.TargetIncreasing, "", 5, 10, 15, 20, 25)
	require.Error(t, err)
	var te *TargetError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "q4_target", te.Field)
}

func TestValidateTargetsDecreasing(t *testing.T) {
	assert.NoError(t, ValidateTargets(model.TargetDecreasing, "50", 40, 30, 20, 10, 10))

	// Q1 above baseline.
	assert.Error(t, ValidateTargets(model.TargetDecreasing, "30", 40, 30, 20, 10, 10))

	// Baseline check skipped for free text.
	assert.NoError(t, ValidateTargets(model.TargetDecreasing, "about thirty", 40, 30, 20, 10, 10))

	// Not descending.
	assert.Error(t, ValidateTargets(model.TargetDecreasing, "", 40, 45, 20, 10, 10))

	// Q4 must equal annual.
	assert.Error(t, ValidateTargets(model.TargetDecreasing, "", 40, 30, 20, 10, 5))
}

func TestValidateTargetsConstant(t *testing.T) {
	assert.NoError(t, ValidateTargets(model.TargetConstant, "", 25, 25, 25, 25, 25))
	assert.Error(t, ValidateTargets(model.TargetConstant, "", 25, 25, 25, 24, 25))
}

func TestValidateTargetsUnknownType(t *testing.T) {
	err := ValidateTargets("sideways", "", 1, 2, 3, 4, 10)
	require.Error(t, err)
	var te *TargetError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "target_type", te.Field)
}

func TestValidatePeriods(t *testing.T) {
	assert.NoError(t, ValidatePeriods([]string{"January"}, nil))
	assert.NoError(t, ValidatePeriods(nil, []string{"Q1"}))
	assert.Error(t, ValidatePeriods(nil, nil))
	assert.Error(t, ValidatePeriods([]string{}, []string{}))
}
