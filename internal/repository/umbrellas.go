package repository

import (
	"context"
	"time"

	"github.com/machikasa/machikasa-api/internal/domain"
	"github.com/machikasa/machikasa-api/internal/pkg/qr"
	"github.com/machikasa/machikasa-api/internal/repository/dao"
)

func (db *LocalDB) Umbrellas(ctx context.Context) []domain.Umbrella {
	return getData(ctx, db, dao.KeyUmbrellas, []domain.Umbrella{})
}

func (db *LocalDB) SetUmbrellas(ctx context.Context, umbrellas []domain.Umbrella) bool {
	return setData(ctx, db, dao.KeyUmbrellas, umbrellas)
}

func (db *LocalDB) Umbrella(ctx context.Context, id string) (domain.Umbrella, bool) {
	for _, u := range db.Umbrellas(ctx) {
		if u.ID == id {
			return u, true
		}
	}

	return domain.Umbrella{}, false
}

// UmbrellaByQR resolves a scanned "machikasa://umbrella/{id}" payload.
// Malformed payloads are rejected before any lookup happens.
func (db *LocalDB) UmbrellaByQR(ctx context.Context, payload string) (domain.Umbrella, bool) {
	id, err := qr.UmbrellaID(payload)
	if err != nil {
		return domain.Umbrella{}, false
	}

	return db.Umbrella(ctx, id)
}

// AvailableUmbrellas lists available umbrellas, optionally restricted
// to one station. An empty stationID means all stations.
func (db *LocalDB) AvailableUmbrellas(ctx context.Context, stationID string) []domain.Umbrella {
	available := make([]domain.Umbrella, 0)
	for _, u := range db.Umbrellas(ctx) {
		if u.Status != domain.UmbrellaAvailable {
			continue
		}
		if stationID != "" && u.StationID != stationID {
			continue
		}

		available = append(available, u)
	}

	return available
}

// UpdateUmbrellaStatus sets the umbrella's status and refreshes its
// timestamp. borrowedBy is recorded when entering in_use and cleared
// when the umbrella becomes available again.
func (db *LocalDB) UpdateUmbrellaStatus(ctx context.Context, umbrellaID string, status domain.UmbrellaStatus, borrowedBy string) bool {
	umbrellas := db.Umbrellas(ctx)
	for i := range umbrellas {
		if umbrellas[i].ID != umbrellaID {
			continue
		}

		umbrellas[i].Status = status
		umbrellas[i].LastUpdated = time.Now()

		switch {
		case status == domain.UmbrellaInUse && borrowedBy != "":
			umbrellas[i].BorrowedBy = borrowedBy
		case status == domain.UmbrellaAvailable:
			umbrellas[i].BorrowedBy = ""
		}

		return db.SetUmbrellas(ctx, umbrellas)
	}

	return false
}

// MoveUmbrella reassigns an umbrella to a new station (or partner
// store, which is treated as a station for placement) and marks it
// available.
func (db *LocalDB) MoveUmbrella(ctx context.Context, umbrellaID, stationID string) bool {
	umbrellas := db.Umbrellas(ctx)
	for i := range umbrellas {
		if umbrellas[i].ID != umbrellaID {
			continue
		}

		umbrellas[i].StationID = stationID
		umbrellas[i].Status = domain.UmbrellaAvailable
		umbrellas[i].BorrowedBy = ""
		umbrellas[i].LastUpdated = time.Now()

		return db.SetUmbrellas(ctx, umbrellas)
	}

	return false
}
