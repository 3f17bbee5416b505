package repository

import (
	"context"

	"github.com/machikasa/machikasa-api/internal/domain"
	"github.com/machikasa/machikasa-api/internal/repository/dao"
)

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}

	return n
}

func (db *LocalDB) Stations(ctx context.Context) []domain.Station {
	return getData(ctx, db, dao.KeyStations, []domain.Station{})
}

func (db *LocalDB) SetStations(ctx context.Context, stations []domain.Station) bool {
	return setData(ctx, db, dao.KeyStations, stations)
}

func (db *LocalDB) Station(ctx context.Context, id string) (domain.Station, bool) {
	for _, s := range db.Stations(ctx) {
		if s.ID == id {
			return s, true
		}
	}

	return domain.Station{}, false
}

// UpdateStationCount adjusts the station's available count by delta,
// clamped into [0, capacity]. Reports whether the station was found.
func (db *LocalDB) UpdateStationCount(ctx context.Context, stationID string, delta int) bool {
	stations := db.Stations(ctx)
	for i := range stations {
		if stations[i].ID != stationID {
			continue
		}

		stations[i].CurrentCount = clamp(stations[i].CurrentCount+delta, 0, stations[i].Capacity)

		return db.SetStations(ctx, stations)
	}

	return false
}
