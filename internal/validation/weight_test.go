package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckObjectiveWeight(t *testing.T) {
	assert.NoError(t, CheckObjectiveWeight(0.01))
	assert.NoError(t, CheckObjectiveWeight(100))
	assert.Error(t, CheckObjectiveWeight(0))
	assert.Error(t, CheckObjectiveWeight(-5))
	assert.Error(t, CheckObjectiveWeight(100.5))
}

func TestCheckInitiativeWeight(t *testing.T) {
	// Incremental authoring under a weight-30 objective: 12 then 18.
	assert.NoError(t, CheckInitiativeWeight(30, 0, 12))
	assert.NoError(t, CheckInitiativeWeight(30, 12, 18))

	// A third initiative would overflow.
	err := CheckInitiativeWeight(30, 30, 1)
	require.Error(t, err)
	var we *WeightError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, 30.0, we.Current)
	assert.Equal(t, 1.0, we.Attempted)
	assert.Equal(t, 30.0, we.Max)

	// Tolerance admits a rounding hair over the parent weight.
	assert.NoError(t, CheckInitiativeWeight(30, 12, 18.01))
	assert.Error(t, CheckInitiativeWeight(30, 12, 18.02))

	assert.Error(t, CheckInitiativeWeight(30, 0, 0))
	assert.Error(t, CheckInitiativeWeight(30, 0, -1))
}

func TestMeasureCap(t *testing.T) {
	assert.Equal(t, 3.5, MeasureCap(10))
	assert.Equal(t, 4.38, MeasureCap(12.5))
	assert.Equal(t, 14.0, MeasureCap(40))
	assert.Equal(t, 35.0, MeasureCap(100))
}

func TestMeasureWeightExhaustsCap(t *testing.T) {
	// Initiative weight 40 leaves 14.00 for measures: 10 and 4 fill it
	// exactly, then even 0.01 more is rejected.
	assert.NoError(t, CheckMeasureWeight(40, 0, 10))
	assert.NoError(t, CheckMeasureWeight(40, 10, 4))
	assert.Error(t, CheckMeasureWeight(40, 14, 0.01))
}

func TestActivityCap(t *testing.T) {
	assert.Equal(t, 6.5, ActivityCap(10))
	assert.Equal(t, 8.13, ActivityCap(12.5))
	assert.Equal(t, 65.0, ActivityCap(100))
}

func TestCheckMeasureWeight(t *testing.T) {
	// Initiative weight 10 caps measures at 3.5.
	assert.NoError(t, CheckMeasureWeight(10, 0, 3.5))
	assert.NoError(t, CheckMeasureWeight(10, 2, 1.5))

	err := CheckMeasureWeight(10, 2, 1.6)
	require.Error(t, err)
	var we *WeightError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, "performance measures", we.Entity)
	assert.Equal(t, 3.5, we.Max)

	assert.Error(t, CheckMeasureWeight(10, 0, 0))
}

func TestCheckActivityWeight(t *testing.T) {
	assert.NoError(t, CheckActivityWeight(10, 0, 6.5))
	assert.NoError(t, CheckActivityWeight(10, 4, 2.5))

	err := CheckActivityWeight(10, 4, 2.6)
	require.Error(t, err)
	var we *WeightError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, "main activities", we.Entity)
	assert.Equal(t, 6.5, we.Max)
}

func TestObjectiveSummary(t *testing.T) {
	s := ObjectiveSummary(100)
	assert.True(t, s.IsValid)
	assert.Equal(t, 0.0, s.Remaining)

	s = ObjectiveSummary(99.995)
	assert.True(t, s.IsValid)

	s = ObjectiveSummary(95)
	assert.False(t, s.IsValid)
	assert.Equal(t, 5.0, s.Remaining)

	s = ObjectiveSummary(101)
	assert.False(t, s.IsValid)
}

func TestInitiativeSummary(t *testing.T) {
	// Under an objective the allocation must be exact.
	assert.True(t, InitiativeSummary(30, 30, true).IsValid)
	assert.False(t, InitiativeSummary(30, 12, true).IsValid)
	assert.False(t, InitiativeSummary(30, 31, true).IsValid)

	// Under a program staying below the ceiling is fine.
	assert.True(t, InitiativeSummary(100, 40, false).IsValid)
	assert.True(t, InitiativeSummary(100, 100, false).IsValid)
	assert.False(t, InitiativeSummary(100, 101, false).IsValid)
}

func TestMeasureAndActivitySummaries(t *testing.T) {
	m := MeasureSummary(10, 2)
	assert.Equal(t, 3.5, m.ExpectedMax)
	assert.Equal(t, 1.5, m.Remaining)
	assert.True(t, m.IsValid)
	assert.False(t, MeasureSummary(10, 3.6).IsValid)

	a := ActivitySummary(10, 2)
	assert.Equal(t, 6.5, a.ExpectedMax)
	assert.Equal(t, 4.5, a.Remaining)
	assert.True(t, a.IsValid)
	assert.False(t, ActivitySummary(10, 6.6).IsValid)
}
