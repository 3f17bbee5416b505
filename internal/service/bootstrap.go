package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/machikasa/machikasa-api/internal/repository"
	"github.com/machikasa/machikasa-api/internal/seed"
)

// BootstrapService seeds the store on first run and repairs it on
// subsequent runs. Every step degrades to a safe default; nothing here
// returns an error to the caller.
type BootstrapService struct {
	repo *repository.LocalDB
}

func NewBootstrapService(repo *repository.LocalDB) *BootstrapService {
	return &BootstrapService{
		repo: repo,
	}
}

// Initialize is idempotent. On first run it validates the fixtures and
// writes every collection plus the default current user; on later runs
// it verifies data integrity and reinitializes if essentials are gone.
func (s *BootstrapService) Initialize(ctx context.Context) {
	if s.repo.Initialized(ctx) {
		s.verifyDataIntegrity(ctx)

		return
	}

	dataset := seed.Fixtures()
	if err := dataset.Validate(); err != nil {
		zap.L().Warn("fixture validation failed, using minimal fallback data", zap.Error(err))
		dataset = seed.Fallback()
	}

	s.writeDataset(ctx, dataset)
	zap.L().Info("store initialized with seed data",
		zap.Int("stations", len(dataset.Stations)),
		zap.Int("umbrellas", len(dataset.Umbrellas)),
		zap.Int("users", len(dataset.Users)))
}

// Reset clears every known storage key and reinitializes from the
// fixtures.
func (s *BootstrapService) Reset(ctx context.Context) {
	s.repo.ClearAll(ctx)
	s.Initialize(ctx)
	zap.L().Info("store reset and reinitialized")
}

func (s *BootstrapService) writeDataset(ctx context.Context, dataset seed.Dataset) {
	s.repo.SetStations(ctx, dataset.Stations)
	s.repo.SetUmbrellas(ctx, dataset.Umbrellas)
	s.repo.SetUsers(ctx, dataset.Users)
	s.repo.SetTransactions(ctx, dataset.Transactions)
	s.repo.SetSponsors(ctx, dataset.Sponsors)
	s.repo.SetPartnerStores(ctx, dataset.PartnerStores)
	s.repo.SetSponsorshipDeals(ctx, dataset.SponsorshipDeals)
	s.repo.SetPartnerReturns(ctx, nil)
	s.repo.SetCurrentUser(ctx, dataset.Users[0])
	s.repo.SetInitialized(ctx, true)
}

// verifyDataIntegrity reinitializes when essential collections are
// empty and repairs a dangling current-user pointer.
func (s *BootstrapService) verifyDataIntegrity(ctx context.Context) {
	stations := s.repo.Stations(ctx)
	umbrellas := s.repo.Umbrellas(ctx)
	users := s.repo.Users(ctx)

	if len(stations) == 0 || len(umbrellas) == 0 || len(users) == 0 {
		zap.L().Warn("essential data missing, reinitializing")
		s.repo.ClearInitialized(ctx)
		s.Initialize(ctx)

		return
	}

	current, ok := s.repo.CurrentUser(ctx)
	if ok {
		for _, u := range users {
			if u.ID == current.ID {
				return
			}
		}
	}

	zap.L().Warn("current user invalid, resetting to default user")
	s.repo.SetCurrentUser(ctx, users[0])
}
