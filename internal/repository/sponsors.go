package repository

import (
	"context"

	"github.com/machikasa/machikasa-api/internal/domain"
	"github.com/machikasa/machikasa-api/internal/repository/dao"
)

func (db *LocalDB) Sponsors(ctx context.Context) []domain.Sponsor {
	return getData(ctx, db, dao.KeySponsors, []domain.Sponsor{})
}

func (db *LocalDB) SetSponsors(ctx context.Context, sponsors []domain.Sponsor) bool {
	return setData(ctx, db, dao.KeySponsors, sponsors)
}

func (db *LocalDB) Sponsor(ctx context.Context, id string) (domain.Sponsor, bool) {
	for _, s := range db.Sponsors(ctx) {
		if s.ID == id {
			return s, true
		}
	}

	return domain.Sponsor{}, false
}

func (db *LocalDB) ActiveSponsors(ctx context.Context) []domain.Sponsor {
	active := make([]domain.Sponsor, 0)
	for _, s := range db.Sponsors(ctx) {
		if s.Active {
			active = append(active, s)
		}
	}

	return active
}
