package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machikasa/machikasa-api/internal/domain"
	"github.com/machikasa/machikasa-api/internal/seed"
)

func TestBorrowUmbrella(t *testing.T) {
	repo := seededRepo(t)
	svc := NewRentalService(repo)
	ctx := context.Background()

	result := svc.BorrowUmbrella(ctx, "umb-001", "user-1")

	require.True(t, result.Success)
	require.NotNil(t, result.Umbrella)
	assert.Equal(t, domain.UmbrellaInUse, result.Umbrella.Status)
	assert.Equal(t, "user-1", result.Umbrella.BorrowedBy)

	station, _ := repo.Station(ctx, "station-1")
	assert.Equal(t, 4, station.CurrentCount)

	user, _ := repo.User(ctx, "user-1")
	assert.Equal(t, 16, user.TotalBorrows)
	assert.Equal(t, 280, user.Points)

	transactions := repo.Transactions(ctx)
	require.Len(t, transactions, 4)
	last := transactions[len(transactions)-1]
	assert.Equal(t, domain.ActionBorrow, last.Action)
	assert.Equal(t, "umb-001", last.UmbrellaID)
	assert.Equal(t, "station-1", last.StationID)
}

func TestBorrowUmbrellaAlreadyInUse(t *testing.T) {
	repo := seededRepo(t)
	svc := NewRentalService(repo)
	ctx := context.Background()

	result := svc.BorrowUmbrella(ctx, "umb-006", "user-2")

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "already in use")

	// Nothing moved.
	station, _ := repo.Station(ctx, "station-1")
	assert.Equal(t, 5, station.CurrentCount)
	assert.Len(t, repo.Transactions(ctx), 3)
}

func TestBorrowUmbrellaUnderMaintenance(t *testing.T) {
	repo := seededRepo(t)
	svc := NewRentalService(repo)

	result := svc.BorrowUmbrella(context.Background(), "umb-013", "user-1")

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "unavailable")
}

func TestBorrowUmbrellaNotFound(t *testing.T) {
	repo := seededRepo(t)
	svc := NewRentalService(repo)

	result := svc.BorrowUmbrella(context.Background(), "umb-404", "user-1")

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "not found")
}

func TestReturnUmbrella(t *testing.T) {
	repo := seededRepo(t)
	svc := NewRentalService(repo)
	ctx := context.Background()

	result := svc.ReturnUmbrella(ctx, "umb-006", "user-1")

	require.True(t, result.Success)
	assert.Equal(t, 1, result.Points)
	assert.Contains(t, seed.ReturnMessages, result.Cheer)
	require.NotNil(t, result.Umbrella)
	assert.Equal(t, domain.UmbrellaAvailable, result.Umbrella.Status)
	assert.Empty(t, result.Umbrella.BorrowedBy)

	station, _ := repo.Station(ctx, "station-1")
	assert.Equal(t, 6, station.CurrentCount)

	user, _ := repo.User(ctx, "user-1")
	assert.Equal(t, 15, user.TotalReturns)
	assert.Equal(t, 281, user.Points)

	transactions := repo.Transactions(ctx)
	require.Len(t, transactions, 4)
	assert.Equal(t, domain.ActionReturn, transactions[len(transactions)-1].Action)
	assert.Equal(t, 1, transactions[len(transactions)-1].PointsEarned)
}

func TestReturnUmbrellaAlreadyReturned(t *testing.T) {
	repo := seededRepo(t)
	svc := NewRentalService(repo)

	result := svc.ReturnUmbrella(context.Background(), "umb-001", "user-1")

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "already been returned")
}

func TestReturnUmbrellaWrongBorrower(t *testing.T) {
	repo := seededRepo(t)
	svc := NewRentalService(repo)
	ctx := context.Background()

	result := svc.ReturnUmbrella(ctx, "umb-010", "user-1")

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "permission")

	umbrella, _ := repo.Umbrella(ctx, "umb-010")
	assert.Equal(t, domain.UmbrellaInUse, umbrella.Status)
	assert.Equal(t, "user-2", umbrella.BorrowedBy)
}

func TestReturnUmbrellaToPartnerStoreWithDeal(t *testing.T) {
	repo := seededRepo(t)
	svc := NewRentalService(repo)
	ctx := context.Background()

	repo.SetSponsorshipDeals(ctx, []domain.SponsorshipDeal{
		{
			ID:             "deal-bonus",
			PartnerStoreID: "partner-1",
			DealType:       domain.DealPointsBonus,
			Description:    "extra points at Fukui Coffee",
			Value:          2,
			Active:         true,
			StartDate:      time.Now().AddDate(0, -1, 0),
		},
	})

	result := svc.ReturnUmbrellaToPartnerStore(ctx, "umb-006", "user-1", "partner-1")

	require.True(t, result.Success)
	assert.Equal(t, 2, result.Points)
	assert.Equal(t, "extra points at Fukui Coffee", result.DealApplied)
	assert.Contains(t, result.Message, "applied")

	umbrella, _ := repo.Umbrella(ctx, "umb-006")
	assert.Equal(t, "partner-1", umbrella.StationID)
	assert.Equal(t, domain.UmbrellaAvailable, umbrella.Status)

	store, _ := repo.PartnerStore(ctx, "partner-1")
	assert.Equal(t, 4, store.AvailableUmbrellas)

	user, _ := repo.User(ctx, "user-1")
	assert.Equal(t, 15, user.TotalReturns)
	assert.Equal(t, 282, user.Points)

	returns := repo.PartnerReturns(ctx)
	require.Len(t, returns, 1)
	assert.Equal(t, "partner-1", returns[0].PartnerStoreID)
	assert.Equal(t, 2, returns[0].BonusPoints)
	assert.NotEmpty(t, returns[0].TransactionID)
}

func TestReturnUmbrellaToPartnerStoreWithoutDeal(t *testing.T) {
	repo := seededRepo(t)
	svc := NewRentalService(repo)
	ctx := context.Background()

	// partner-5 carries no deals at all.
	result := svc.ReturnUmbrellaToPartnerStore(ctx, "umb-006", "user-1", "partner-5")

	require.True(t, result.Success)
	assert.Equal(t, 1, result.Points)
	assert.Empty(t, result.DealApplied)
	assert.Contains(t, result.Message, "thank you")
}

func TestReturnUmbrellaToPartnerStoreDealTieBreak(t *testing.T) {
	repo := seededRepo(t)
	svc := NewRentalService(repo)
	ctx := context.Background()

	start := time.Now().AddDate(0, -1, 0)
	repo.SetSponsorshipDeals(ctx, []domain.SponsorshipDeal{
		{ID: "deal-b", PartnerStoreID: "partner-1", DealType: domain.DealPointsBonus, Description: "deal b", Value: 5, Active: true, StartDate: start},
		{ID: "deal-a", PartnerStoreID: "partner-1", DealType: domain.DealPointsBonus, Description: "deal a", Value: 5, Active: true, StartDate: start},
		{ID: "deal-c", PartnerStoreID: "partner-1", DealType: domain.DealDiscount, Description: "deal c", Value: 50, Active: true, StartDate: start},
	})

	result := svc.ReturnUmbrellaToPartnerStore(ctx, "umb-006", "user-1", "partner-1")

	require.True(t, result.Success)
	assert.Equal(t, 5, result.Points)
	assert.Equal(t, "deal a", result.DealApplied)
}

func TestReturnUmbrellaToPartnerStoreAtCapacity(t *testing.T) {
	repo := seededRepo(t)
	svc := NewRentalService(repo)
	ctx := context.Background()

	repo.UpdatePartnerStoreUmbrellas(ctx, "partner-1", 6)

	result := svc.ReturnUmbrellaToPartnerStore(ctx, "umb-006", "user-1", "partner-1")

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "capacity")

	umbrella, _ := repo.Umbrella(ctx, "umb-006")
	assert.Equal(t, domain.UmbrellaInUse, umbrella.Status)
}

func TestReturnUmbrellaToPartnerStoreWrongBorrower(t *testing.T) {
	repo := seededRepo(t)
	svc := NewRentalService(repo)

	result := svc.ReturnUmbrellaToPartnerStore(context.Background(), "umb-010", "user-1", "partner-1")

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "cannot be returned here")
}

func TestReturnUmbrellaToPartnerStoreUnknownStore(t *testing.T) {
	repo := seededRepo(t)
	svc := NewRentalService(repo)

	result := svc.ReturnUmbrellaToPartnerStore(context.Background(), "umb-006", "user-1", "partner-404")

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "not available")
}
