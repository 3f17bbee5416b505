package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machikasa/machikasa-api/internal/domain"
	"github.com/machikasa/machikasa-api/internal/pkg/qr"
)

func TestFixturesAreValid(t *testing.T) {
	dataset := Fixtures()

	require.NoError(t, dataset.Validate())

	assert.Len(t, dataset.Stations, 3)
	assert.Len(t, dataset.Umbrellas, 13)
	assert.Len(t, dataset.Users, 3)
	assert.Len(t, dataset.Transactions, 3)
	assert.Len(t, dataset.Sponsors, 4)
	assert.Len(t, dataset.PartnerStores, 5)
	assert.Len(t, dataset.SponsorshipDeals, 3)
}

func TestFixtureUmbrellaCodesParse(t *testing.T) {
	for _, u := range Fixtures().Umbrellas {
		id, err := qr.UmbrellaID(u.Code)

		require.NoError(t, err, u.ID)
		assert.Equal(t, u.ID, id)
	}
}

func TestFixtureReferencesResolve(t *testing.T) {
	dataset := Fixtures()

	stationIDs := make(map[string]bool)
	for _, s := range dataset.Stations {
		stationIDs[s.ID] = true
	}
	for _, u := range dataset.Umbrellas {
		assert.True(t, stationIDs[u.StationID], "umbrella %s references unknown station", u.ID)
	}

	storeIDs := make(map[string]bool)
	for _, s := range dataset.PartnerStores {
		storeIDs[s.ID] = true
	}
	for _, deal := range dataset.SponsorshipDeals {
		assert.True(t, storeIDs[deal.PartnerStoreID], "deal %s references unknown store", deal.ID)
	}
}

func TestFixtureStationCountsWithinCapacity(t *testing.T) {
	for _, s := range Fixtures().Stations {
		assert.GreaterOrEqual(t, s.CurrentCount, 0, s.ID)
		assert.LessOrEqual(t, s.CurrentCount, s.Capacity, s.ID)
	}
}

func TestFixtureAdminExists(t *testing.T) {
	var admins int
	for _, u := range Fixtures().Users {
		if u.Role == domain.RoleAdmin {
			admins++
		}
	}

	assert.Equal(t, 1, admins)
}

func TestFallbackIsValid(t *testing.T) {
	dataset := Fallback()

	require.NoError(t, dataset.Validate())

	assert.Len(t, dataset.Stations, 1)
	assert.Len(t, dataset.Umbrellas, 1)
	assert.Len(t, dataset.Users, 1)
}

func TestReturnMessagesNotEmpty(t *testing.T) {
	require.NotEmpty(t, ReturnMessages)
	for _, msg := range ReturnMessages {
		assert.NotEmpty(t, msg)
	}
}
