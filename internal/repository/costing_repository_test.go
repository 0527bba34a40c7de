package repository

import (
	"testing"

	"planning-backend/internal/model"
	"planning-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostingFilters(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewCostingRepository(db)

	addis := model.Location{Name: "Addis Ababa", Region: "Addis Ababa"}
	require.NoError(t, repo.Create(&addis))
	gambella := model.Location{Name: "Gambella", Region: "Gambella", IsHardshipArea: true}
	require.NoError(t, repo.Create(&gambella))

	hardship := true
	locs, err := repo.ListLocations(CostingFilters{Hardship: &hardship})
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, "Gambella", locs[0].Name)

	require.NoError(t, repo.Create(&model.LandTransport{OriginID: addis.ID, DestinationID: gambella.ID, TripType: model.TripRound, Price: 1800}))
	require.NoError(t, repo.Create(&model.LandTransport{OriginID: addis.ID, DestinationID: gambella.ID, TripType: model.TripSingle, Price: 900}))

	trips, err := repo.ListLandTransports(CostingFilters{OriginID: addis.ID, TripType: model.TripRound})
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, 1800.0, trips[0].Price)

	require.NoError(t, repo.Create(&model.Accommodation{LocationID: addis.ID, ServiceType: "LUNCH", Price: 350}))
	require.NoError(t, repo.Create(&model.Accommodation{LocationID: addis.ID, ServiceType: "BED", Price: 1200}))

	rooms, err := repo.ListAccommodations(CostingFilters{LocationID: addis.ID, ServiceType: "BED"})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, 1200.0, rooms[0].Price)
}

func TestCostingSaveAndRemove(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewCostingRepository(db)

	item := model.ProcurementItem{Category: "OFFICE", Name: "Laptop", Unit: "piece", UnitPrice: 60000}
	require.NoError(t, repo.Create(&item))

	item.UnitPrice = 65000
	require.NoError(t, repo.Save(&item))

	stored, err := repo.GetProcurementItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 65000.0, stored.UnitPrice)

	require.NoError(t, repo.Remove(&model.ProcurementItem{}, item.ID))
	_, err = repo.GetProcurementItem(item.ID)
	assert.Error(t, err)
}
