package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/machikasa/machikasa-api/internal/domain"
	"github.com/machikasa/machikasa-api/internal/repository/dao"
)

func (db *LocalDB) PartnerStores(ctx context.Context) []domain.PartnerStore {
	return getData(ctx, db, dao.KeyPartnerStores, []domain.PartnerStore{})
}

func (db *LocalDB) SetPartnerStores(ctx context.Context, stores []domain.PartnerStore) bool {
	return setData(ctx, db, dao.KeyPartnerStores, stores)
}

func (db *LocalDB) PartnerStore(ctx context.Context, id string) (domain.PartnerStore, bool) {
	for _, s := range db.PartnerStores(ctx) {
		if s.ID == id {
			return s, true
		}
	}

	return domain.PartnerStore{}, false
}

func (db *LocalDB) ActivePartnerStores(ctx context.Context) []domain.PartnerStore {
	active := make([]domain.PartnerStore, 0)
	for _, s := range db.PartnerStores(ctx) {
		if s.IsActive {
			active = append(active, s)
		}
	}

	return active
}

func (db *LocalDB) PartnerStoresByType(ctx context.Context, storeType domain.PartnerStoreType) []domain.PartnerStore {
	stores := make([]domain.PartnerStore, 0)
	for _, s := range db.ActivePartnerStores(ctx) {
		if s.Type == storeType {
			stores = append(stores, s)
		}
	}

	return stores
}

// UpdatePartnerStoreUmbrellas sets the store's umbrella count, clamped
// into [0, maxCapacity], and refreshes its timestamp.
func (db *LocalDB) UpdatePartnerStoreUmbrellas(ctx context.Context, storeID string, count int) bool {
	stores := db.PartnerStores(ctx)
	for i := range stores {
		if stores[i].ID != storeID {
			continue
		}

		stores[i].AvailableUmbrellas = clamp(count, 0, stores[i].MaxCapacity)
		stores[i].LastUpdated = time.Now()

		return db.SetPartnerStores(ctx, stores)
	}

	return false
}

func (db *LocalDB) SponsorshipDeals(ctx context.Context) []domain.SponsorshipDeal {
	return getData(ctx, db, dao.KeySponsorshipDeals, []domain.SponsorshipDeal{})
}

func (db *LocalDB) SetSponsorshipDeals(ctx context.Context, deals []domain.SponsorshipDeal) bool {
	return setData(ctx, db, dao.KeySponsorshipDeals, deals)
}

// ActiveDealsByPartnerStore lists the store's deals whose window
// covers now. A zero end date keeps the deal open-ended.
func (db *LocalDB) ActiveDealsByPartnerStore(ctx context.Context, storeID string) []domain.SponsorshipDeal {
	now := time.Now()

	active := make([]domain.SponsorshipDeal, 0)
	for _, deal := range db.SponsorshipDeals(ctx) {
		if deal.PartnerStoreID != storeID || !deal.Active {
			continue
		}
		if deal.StartDate.After(now) {
			continue
		}
		if !deal.EndDate.IsZero() && deal.EndDate.Before(now) {
			continue
		}

		active = append(active, deal)
	}

	return active
}

func (db *LocalDB) PartnerReturns(ctx context.Context) []domain.PartnerStoreReturn {
	return getData(ctx, db, dao.KeyPartnerReturns, []domain.PartnerStoreReturn{})
}

func (db *LocalDB) SetPartnerReturns(ctx context.Context, returns []domain.PartnerStoreReturn) bool {
	return setData(ctx, db, dao.KeyPartnerReturns, returns)
}

// AddPartnerReturn appends the record produced by a partner-store
// return and returns its id.
func (db *LocalDB) AddPartnerReturn(ctx context.Context, storeID, transactionID, userID, umbrellaID string, bonusPoints int, dealApplied string) string {
	returns := db.PartnerReturns(ctx)

	record := domain.PartnerStoreReturn{
		ID:             "pr-" + uuid.NewString(),
		TransactionID:  transactionID,
		PartnerStoreID: storeID,
		UserID:         userID,
		UmbrellaID:     umbrellaID,
		BonusPoints:    bonusPoints,
		DealApplied:    dealApplied,
		Timestamp:      time.Now(),
	}

	if !db.SetPartnerReturns(ctx, append(returns, record)) {
		return ""
	}

	return record.ID
}
