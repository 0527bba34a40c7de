package repository

import (
	"testing"

	"planning-backend/internal/model"
	"planning-backend/internal/testutil"
	"planning-backend/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validActivity(initiativeID uint, weight float64) model.MainActivity {
	return model.MainActivity{
		InitiativeID:     initiativeID,
		Name:             "Activity",
		Weight:           weight,
		TargetType:       model.TargetConstant,
		Q1Target:         25,
		Q2Target:         25,
		Q3Target:         25,
		Q4Target:         25,
		AnnualTarget:     25,
		SelectedQuarters: []string{"Q1"},
	}
}

func TestActivityWeightCap(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewActivityRepository(db)
	init := seedInitiative(t, db, 10, nil)

	// 65% of 10 = 6.5 available.
	first := validActivity(init.ID, 4)
	require.NoError(t, repo.Create(&first))

	second := validActivity(init.ID, 2.5)
	require.NoError(t, repo.Create(&second))

	third := validActivity(init.ID, 0.1)
	err := repo.Create(&third)
	require.Error(t, err)
	var we *validation.WeightError
	assert.ErrorAs(t, err, &we)
}

func TestActivityUpdateExcludesSelf(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewActivityRepository(db)
	init := seedInitiative(t, db, 10, nil)

	a := validActivity(init.ID, 6.5)
	require.NoError(t, repo.Create(&a))

	a.Weight = 6.5
	a.Budget = nil
	assert.NoError(t, repo.Update(&a))
}

func TestBudgetUpsertIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewActivityRepository(db)
	init := seedInitiative(t, db, 10, nil)

	a := validActivity(init.ID, 4)
	require.NoError(t, repo.Create(&a))

	b := model.ActivityBudget{
		ActivityID:               a.ID,
		CalculationType:          model.BudgetWithoutTool,
		EstimatedCostWithoutTool: 1000,
		GovernmentTreasury:       600,
	}
	require.NoError(t, repo.UpsertBudget(&b))
	firstID := b.ID

	// Re-running the same payload replaces in place, never duplicates.
	again := model.ActivityBudget{
		ActivityID:               a.ID,
		CalculationType:          model.BudgetWithoutTool,
		EstimatedCostWithoutTool: 1000,
		GovernmentTreasury:       700,
	}
	require.NoError(t, repo.UpsertBudget(&again))
	assert.Equal(t, firstID, again.ID)

	var count int64
	db.Model(&model.ActivityBudget{}).Where("activity_id = ?", a.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	stored, err := repo.GetBudget(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 700.0, stored.GovernmentTreasury)
}

func TestBudgetFundingCannotExceedEstimate(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewActivityRepository(db)
	init := seedInitiative(t, db, 10, nil)

	a := validActivity(init.ID, 4)
	require.NoError(t, repo.Create(&a))

	b := model.ActivityBudget{
		ActivityID:               a.ID,
		CalculationType:          model.BudgetWithoutTool,
		EstimatedCostWithoutTool: 1000,
		GovernmentTreasury:       800,
		SDGFunding:               300,
	}
	err := repo.UpsertBudget(&b)
	require.Error(t, err)
	var be *validation.BudgetError
	assert.ErrorAs(t, err, &be)
}

func TestActivityDeleteRemovesBudget(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewActivityRepository(db)
	init := seedInitiative(t, db, 10, nil)

	a := validActivity(init.ID, 4)
	require.NoError(t, repo.Create(&a))
	require.NoError(t, repo.UpsertBudget(&model.ActivityBudget{
		ActivityID:               a.ID,
		CalculationType:          model.BudgetWithoutTool,
		EstimatedCostWithoutTool: 100,
	}))

	require.NoError(t, repo.Delete(a.ID))

	var count int64
	db.Model(&model.ActivityBudget{}).Where("activity_id = ?", a.ID).Count(&count)
	assert.Zero(t, count)
}
