package usecase

import (
	"testing"

	"planning-backend/internal/model"
	"planning-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncludeInitiative(t *testing.T) {
	orgID := uint(7)
	other := uint(8)

	assert.True(t, IncludeInitiative(&model.StrategicInitiative{IsDefault: true}, orgID))
	assert.True(t, IncludeInitiative(&model.StrategicInitiative{IsDefault: false}, orgID))
	assert.True(t, IncludeInitiative(&model.StrategicInitiative{IsDefault: false, OrganizationID: &orgID}, orgID))
	assert.False(t, IncludeInitiative(&model.StrategicInitiative{IsDefault: false, OrganizationID: &other}, orgID))
}

func TestIncludeNode(t *testing.T) {
	orgID := uint(7)
	other := uint(8)

	assert.True(t, IncludeNode(nil, orgID))
	assert.True(t, IncludeNode(&orgID, orgID))
	assert.False(t, IncludeNode(&other, orgID))
}

func TestPlanTree(t *testing.T) {
	f := newPlanFixture(t)
	db := f.db

	other := model.Organization{Name: "Other Desk", Type: model.OrgTypeDesk}
	require.NoError(t, db.Create(&other).Error)

	shared := model.StrategicInitiative{Name: "Shared", Weight: 10, StrategicObjectiveID: &f.objective.ID, IsDefault: true}
	require.NoError(t, db.Create(&shared).Error)
	owned := model.StrategicInitiative{Name: "Ours", Weight: 10, StrategicObjectiveID: &f.objective.ID, IsDefault: false, OrganizationID: &f.org.ID}
	require.NoError(t, db.Create(&owned).Error)
	foreign := model.StrategicInitiative{Name: "Theirs", Weight: 10, StrategicObjectiveID: &f.objective.ID, IsDefault: false, OrganizationID: &other.ID}
	require.NoError(t, db.Create(&foreign).Error)

	sharedMeasure := model.PerformanceMeasure{InitiativeID: shared.ID, Name: "Shared measure", Weight: 1, TargetType: model.TargetConstant, SelectedQuarters: []string{"Q1"}}
	require.NoError(t, db.Create(&sharedMeasure).Error)
	foreignMeasure := model.PerformanceMeasure{InitiativeID: shared.ID, Name: "Foreign measure", Weight: 1, TargetType: model.TargetConstant, OrganizationID: &other.ID, SelectedQuarters: []string{"Q1"}}
	require.NoError(t, db.Create(&foreignMeasure).Error)

	activity := model.MainActivity{InitiativeID: shared.ID, Name: "Shared activity", Weight: 2, TargetType: model.TargetConstant, SelectedQuarters: []string{"Q1"}}
	require.NoError(t, db.Create(&activity).Error)

	plan := f.newPlan(t)
	plan.SelectedObjectivesWeights = map[string]float64{formatID(f.objective.ID): 55}
	require.NoError(t, f.uc.Update(plan))
	stored, err := f.uc.plans.GetByID(plan.ID)
	require.NoError(t, err)

	resolver := NewVisibilityResolver(
		repository.NewInitiativeRepository(db),
		repository.NewMeasureRepository(db),
		repository.NewActivityRepository(db),
	)
	tree := resolver.PlanTree(stored)
	require.Len(t, tree, 1)

	node := tree[0]
	// The frozen snapshot weight wins over the objective's current weight.
	assert.Equal(t, 55.0, node.EffectiveWeight)

	names := make([]string, 0, len(node.Initiatives))
	for _, in := range node.Initiatives {
		names = append(names, in.Initiative.Name)
	}
	assert.ElementsMatch(t, []string{"Shared", "Ours"}, names)

	for _, in := range node.Initiatives {
		if in.Initiative.Name != "Shared" {
			continue
		}
		require.Len(t, in.PerformanceMeasures, 1)
		assert.Equal(t, "Shared measure", in.PerformanceMeasures[0].Name)
		require.Len(t, in.MainActivities, 1)
		assert.Equal(t, "Shared activity", in.MainActivities[0].Name)
	}
}

func TestPlanTreeSnapshotFallsBackToEffectiveWeight(t *testing.T) {
	f := newPlanFixture(t)

	override := 22.0
	require.NoError(t, f.db.Model(f.objective).Update("planner_weight", &override).Error)

	plan := f.newPlan(t)
	stored, err := f.uc.plans.GetByID(plan.ID)
	require.NoError(t, err)

	resolver := NewVisibilityResolver(
		repository.NewInitiativeRepository(f.db),
		repository.NewMeasureRepository(f.db),
		repository.NewActivityRepository(f.db),
	)
	tree := resolver.PlanTree(stored)
	require.Len(t, tree, 1)
	assert.Equal(t, 22.0, tree[0].EffectiveWeight)
}
