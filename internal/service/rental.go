package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/machikasa/machikasa-api/internal/domain"
	"github.com/machikasa/machikasa-api/internal/repository"
	"github.com/machikasa/machikasa-api/internal/seed"
)

// basePoints is the fixed award for returning an umbrella.
const basePoints = 1

// RentalService implements the umbrella status machine:
// available --borrow--> in_use --return--> available. maintenance and
// lost are never entered or left here. Rule violations come back as
// results with Success=false; the composed writes are best effort with
// no rollback, matching the store's snapshot semantics.
type RentalService struct {
	repo *repository.LocalDB
}

func NewRentalService(repo *repository.LocalDB) *RentalService {
	return &RentalService{
		repo: repo,
	}
}

// BorrowUmbrella hands an available umbrella to the user: status to
// in_use, station count down one, borrow counter up one, and a borrow
// transaction appended.
func (s *RentalService) BorrowUmbrella(ctx context.Context, umbrellaID, userID string) domain.BorrowResult {
	umbrella, ok := s.repo.Umbrella(ctx, umbrellaID)
	if !ok {
		return domain.BorrowResult{Message: "umbrella not found"}
	}

	if umbrella.Status == domain.UmbrellaInUse {
		return domain.BorrowResult{Message: "this umbrella is already in use"}
	}
	if umbrella.Status != domain.UmbrellaAvailable {
		return domain.BorrowResult{Message: "this umbrella is currently unavailable"}
	}

	s.repo.UpdateUmbrellaStatus(ctx, umbrellaID, domain.UmbrellaInUse, userID)
	s.repo.UpdateStationCount(ctx, umbrella.StationID, -1)
	s.repo.UpdateUserStats(ctx, userID, domain.ActionBorrow, 0)
	s.repo.AddTransaction(ctx, domain.ActionBorrow, umbrellaID, userID, umbrella.StationID)

	updated, _ := s.repo.Umbrella(ctx, umbrellaID)

	return domain.BorrowResult{
		Success:  true,
		Message:  "umbrella borrowed, enjoy your day",
		Umbrella: &updated,
	}
}

// ReturnUmbrella takes the umbrella back at its station: status to
// available, station count up one, return counter and a fixed 1 point
// credited, and a return transaction appended. Only the borrower may
// return it.
func (s *RentalService) ReturnUmbrella(ctx context.Context, umbrellaID, userID string) domain.ReturnResult {
	umbrella, ok := s.repo.Umbrella(ctx, umbrellaID)
	if !ok {
		return domain.ReturnResult{Message: "umbrella not found"}
	}

	if umbrella.Status == domain.UmbrellaAvailable {
		return domain.ReturnResult{Message: "this umbrella has already been returned"}
	}
	if umbrella.Status != domain.UmbrellaInUse || umbrella.BorrowedBy != userID {
		return domain.ReturnResult{Message: "you do not have permission to return this umbrella"}
	}

	s.repo.UpdateUmbrellaStatus(ctx, umbrellaID, domain.UmbrellaAvailable, "")
	s.repo.UpdateStationCount(ctx, umbrella.StationID, 1)
	s.repo.UpdateUserStats(ctx, userID, domain.ActionReturn, 0)
	s.repo.AddUserPoints(ctx, userID, basePoints)
	s.repo.AddTransaction(ctx, domain.ActionReturn, umbrellaID, userID, umbrella.StationID)

	updated, _ := s.repo.Umbrella(ctx, umbrellaID)

	return domain.ReturnResult{
		Success:  true,
		Message:  fmt.Sprintf("umbrella returned, you earned %d point", basePoints),
		Points:   basePoints,
		Cheer:    seed.ReturnMessages[rand.Intn(len(seed.ReturnMessages))],
		Umbrella: &updated,
	}
}

// ReturnUmbrellaToPartnerStore drops the umbrella at a partner store
// instead of a station. The best active points_bonus deal determines
// the bonus (ties broken by smallest deal id); without one the base
// point applies. The partner store becomes the umbrella's station for
// placement purposes.
func (s *RentalService) ReturnUmbrellaToPartnerStore(ctx context.Context, umbrellaID, userID, partnerStoreID string) domain.PartnerReturnResult {
	umbrella, ok := s.repo.Umbrella(ctx, umbrellaID)
	if !ok {
		return domain.PartnerReturnResult{Message: "umbrella not found"}
	}

	store, ok := s.repo.PartnerStore(ctx, partnerStoreID)
	if !ok || !store.IsActive {
		return domain.PartnerReturnResult{Message: "this partner store is not available"}
	}

	if _, ok := s.repo.User(ctx, userID); !ok {
		return domain.PartnerReturnResult{Message: "user not found"}
	}

	if umbrella.Status != domain.UmbrellaInUse || umbrella.BorrowedBy != userID {
		return domain.PartnerReturnResult{Message: "this umbrella cannot be returned here"}
	}

	if store.AvailableUmbrellas >= store.MaxCapacity {
		return domain.PartnerReturnResult{Message: "this store is at capacity, please return elsewhere"}
	}

	bonusPoints, dealApplied := s.bestPointsBonus(ctx, partnerStoreID)

	s.repo.MoveUmbrella(ctx, umbrellaID, partnerStoreID)
	s.repo.UpdatePartnerStoreUmbrellas(ctx, partnerStoreID, store.AvailableUmbrellas+1)

	transactionID := s.repo.AddTransaction(ctx, domain.ActionReturn, umbrellaID, userID, partnerStoreID)
	s.repo.AddPartnerReturn(ctx, partnerStoreID, transactionID, userID, umbrellaID, bonusPoints, dealApplied)

	s.repo.UpdateUserStats(ctx, userID, domain.ActionReturn, 0)
	s.repo.AddUserPoints(ctx, userID, bonusPoints)

	message := fmt.Sprintf("returned at %s, thank you", store.Name)
	if dealApplied != "" {
		message = fmt.Sprintf("returned at %s, %s applied", store.Name, dealApplied)
	}

	return domain.PartnerReturnResult{
		Success:     true,
		Message:     message,
		Points:      bonusPoints,
		DealApplied: dealApplied,
	}
}

// bestPointsBonus selects the highest-value active points_bonus deal
// for the store; equal values break toward the smallest deal id.
func (s *RentalService) bestPointsBonus(ctx context.Context, partnerStoreID string) (int, string) {
	var best *domain.SponsorshipDeal

	deals := s.repo.ActiveDealsByPartnerStore(ctx, partnerStoreID)
	for i := range deals {
		deal := &deals[i]
		if deal.DealType != domain.DealPointsBonus {
			continue
		}
		if best == nil || deal.Value > best.Value ||
			(deal.Value == best.Value && deal.ID < best.ID) {
			best = deal
		}
	}

	if best == nil {
		return basePoints, ""
	}

	return best.Value, best.Description
}
