package repository

import (
	"testing"

	"planning-backend/internal/model"
	"planning-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectiveWeightBounds(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewObjectiveRepository(db)

	require.NoError(t, repo.Create(&model.StrategicObjective{Title: "Access", Weight: 40}))
	assert.Error(t, repo.Create(&model.StrategicObjective{Title: "Bad", Weight: 0}))
	assert.Error(t, repo.Create(&model.StrategicObjective{Title: "Bad", Weight: 101}))

	over := 120.0
	assert.Error(t, repo.Create(&model.StrategicObjective{Title: "Bad", Weight: 40, PlannerWeight: &over}))
}

func TestTotalEffectiveWeight(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewObjectiveRepository(db)

	require.NoError(t, repo.Create(&model.StrategicObjective{Title: "A", Weight: 40}))
	require.NoError(t, repo.Create(&model.StrategicObjective{Title: "B", Weight: 35}))

	override := 20.0
	require.NoError(t, repo.Create(&model.StrategicObjective{Title: "C", Weight: 25, PlannerWeight: &override}))

	// C counts at its planner override, not the admin weight.
	total, err := repo.TotalEffectiveWeight()
	require.NoError(t, err)
	assert.InDelta(t, 95.0, total, 0.001)
}

func TestProgramAndFeedCRUD(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewObjectiveRepository(db)

	obj := model.StrategicObjective{Title: "Access", Weight: 40}
	require.NoError(t, repo.Create(&obj))

	prog := model.Program{StrategicObjectiveID: obj.ID, Name: "Primary care", IsDefault: true}
	require.NoError(t, repo.CreateProgram(&prog))

	progs, err := repo.GetPrograms(&obj.ID)
	require.NoError(t, err)
	require.Len(t, progs, 1)
	assert.Equal(t, "Primary care", progs[0].Name)

	feed := model.InitiativeFeed{Name: "Expand clinics", StrategicObjectiveID: &obj.ID, IsActive: true}
	require.NoError(t, repo.CreateFeed(&feed))

	inactive := model.InitiativeFeed{Name: "Old idea", IsActive: false}
	require.NoError(t, db.Create(&inactive).Error)

	feeds, err := repo.GetFeeds(nil)
	require.NoError(t, err)
	require.Len(t, feeds, 1)
	assert.Equal(t, "Expand clinics", feeds[0].Name)
}
