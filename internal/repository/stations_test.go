package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machikasa/machikasa-api/internal/domain"
)

func TestStationLookup(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	db.SetStations(ctx, []domain.Station{
		{ID: "station-1", Capacity: 8, CurrentCount: 5},
		{ID: "station-2", Capacity: 6, CurrentCount: 3},
	})

	station, ok := db.Station(ctx, "station-2")
	require.True(t, ok)
	assert.Equal(t, 6, station.Capacity)

	_, ok = db.Station(ctx, "station-99")
	assert.False(t, ok)
}

func TestUpdateStationCountClampsAtZero(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	db.SetStations(ctx, []domain.Station{{ID: "station-1", Capacity: 8, CurrentCount: 1}})

	assert.True(t, db.UpdateStationCount(ctx, "station-1", -5))

	station, _ := db.Station(ctx, "station-1")
	assert.Equal(t, 0, station.CurrentCount)
}

func TestUpdateStationCountClampsAtCapacity(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	db.SetStations(ctx, []domain.Station{{ID: "station-1", Capacity: 8, CurrentCount: 7}})

	assert.True(t, db.UpdateStationCount(ctx, "station-1", 3))

	station, _ := db.Station(ctx, "station-1")
	assert.Equal(t, 8, station.CurrentCount)
}

func TestUpdateStationCountUnknownStation(t *testing.T) {
	db := newTestDB(t)

	assert.False(t, db.UpdateStationCount(context.Background(), "station-99", 1))
}
