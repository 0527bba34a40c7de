package repository

import (
	"testing"

	"planning-backend/internal/model"
	"planning-backend/internal/testutil"
	"planning-backend/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedObjective(t *testing.T, db *gorm.DB, weight float64) *model.StrategicObjective {
	t.Helper()
	obj := model.StrategicObjective{Title: "Objective", Weight: weight, IsDefault: true}
	require.NoError(t, db.Create(&obj).Error)
	return &obj
}

func seedOrganization(t *testing.T, db *gorm.DB, name string) *model.Organization {
	t.Helper()
	org := model.Organization{Name: name, Type: model.OrgTypeDesk}
	require.NoError(t, db.Create(&org).Error)
	return &org
}

func TestInitiativeWeightOverflow(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewInitiativeRepository(db)
	obj := seedObjective(t, db, 30)

	// Incremental authoring is allowed: 12, then 18.
	first := model.StrategicInitiative{Name: "First", Weight: 12, StrategicObjectiveID: &obj.ID, IsDefault: true}
	require.NoError(t, repo.Create(&first))

	second := model.StrategicInitiative{Name: "Second", Weight: 18, StrategicObjectiveID: &obj.ID, IsDefault: true}
	require.NoError(t, repo.Create(&second))

	// 12 + 18 + 1 would exceed 30.
	third := model.StrategicInitiative{Name: "Third", Weight: 1, StrategicObjectiveID: &obj.ID, IsDefault: true}
	err := repo.Create(&third)
	require.Error(t, err)
	var we *validation.WeightError
	assert.ErrorAs(t, err, &we)
}

func TestInitiativeUpdateExcludesSelf(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewInitiativeRepository(db)
	obj := seedObjective(t, db, 30)

	init := model.StrategicInitiative{Name: "Only", Weight: 30, StrategicObjectiveID: &obj.ID, IsDefault: true}
	require.NoError(t, repo.Create(&init))

	// Re-saving at the same weight must not double count.
	init.Weight = 30
	assert.NoError(t, repo.Update(&init))

	init.Weight = 31
	assert.Error(t, repo.Update(&init))
}

func TestInitiativePlannerOverrideRaisesCeiling(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewInitiativeRepository(db)
	obj := seedObjective(t, db, 30)

	override := 50.0
	require.NoError(t, db.Model(obj).Update("planner_weight", &override).Error)

	init := model.StrategicInitiative{Name: "Big", Weight: 45, StrategicObjectiveID: &obj.ID, IsDefault: true}
	assert.NoError(t, repo.Create(&init))
}

func TestInitiativeParentXor(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewInitiativeRepository(db)
	obj := seedObjective(t, db, 30)

	prog := model.Program{StrategicObjectiveID: obj.ID, Name: "Program", IsDefault: true}
	require.NoError(t, db.Create(&prog).Error)

	neither := model.StrategicInitiative{Name: "Neither", Weight: 5, IsDefault: true}
	assert.ErrorIs(t, repo.Create(&neither), model.ErrInitiativeParent)

	both := model.StrategicInitiative{Name: "Both", Weight: 5, StrategicObjectiveID: &obj.ID, ProgramID: &prog.ID, IsDefault: true}
	assert.ErrorIs(t, repo.Create(&both), model.ErrInitiativeParent)

	underProgram := model.StrategicInitiative{Name: "Under program", Weight: 5, ProgramID: &prog.ID, IsDefault: true}
	assert.NoError(t, repo.Create(&underProgram))
}

func TestCustomInitiativeRequiresOrganization(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewInitiativeRepository(db)
	obj := seedObjective(t, db, 30)

	custom := model.StrategicInitiative{Name: "Custom", Weight: 5, StrategicObjectiveID: &obj.ID, IsDefault: false}
	assert.ErrorIs(t, repo.Create(&custom), ErrCustomNeedsOrganization)

	org := seedOrganization(t, db, "Desk A")
	custom.OrganizationID = &org.ID
	assert.NoError(t, repo.Create(&custom))
}

func TestInitiativeListVisible(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewInitiativeRepository(db)
	obj := seedObjective(t, db, 100)
	orgA := seedOrganization(t, db, "Desk A")
	orgB := seedOrganization(t, db, "Desk B")

	require.NoError(t, repo.Create(&model.StrategicInitiative{Name: "Default", Weight: 10, StrategicObjectiveID: &obj.ID, IsDefault: true}))
	require.NoError(t, repo.Create(&model.StrategicInitiative{Name: "A custom", Weight: 10, StrategicObjectiveID: &obj.ID, IsDefault: false, OrganizationID: &orgA.ID}))
	require.NoError(t, repo.Create(&model.StrategicInitiative{Name: "B custom", Weight: 10, StrategicObjectiveID: &obj.ID, IsDefault: false, OrganizationID: &orgB.ID}))

	list, err := repo.ListVisible(&obj.ID, nil, []uint{orgA.ID})
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, in := range list {
		names = append(names, in.Name)
	}
	assert.ElementsMatch(t, []string{"Default", "A custom"}, names)

	// No organization context sees only defaults.
	list, err = repo.ListVisible(&obj.ID, nil, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Default", list[0].Name)
}

func TestInitiativeDeleteCascades(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewInitiativeRepository(db)
	obj := seedObjective(t, db, 100)

	init := model.StrategicInitiative{Name: "Doomed", Weight: 10, StrategicObjectiveID: &obj.ID, IsDefault: true}
	require.NoError(t, repo.Create(&init))

	measure := model.PerformanceMeasure{InitiativeID: init.ID, Name: "M", Weight: 1, TargetType: model.TargetConstant, SelectedQuarters: []string{"Q1"}}
	require.NoError(t, db.Create(&measure).Error)
	activity := model.MainActivity{InitiativeID: init.ID, Name: "A", Weight: 1, TargetType: model.TargetConstant, SelectedQuarters: []string{"Q1"}}
	require.NoError(t, db.Create(&activity).Error)

	require.NoError(t, repo.Delete(init.ID))

	var count int64
	db.Model(&model.PerformanceMeasure{}).Where("initiative_id = ?", init.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.MainActivity{}).Where("initiative_id = ?", init.ID).Count(&count)
	assert.Zero(t, count)
}
