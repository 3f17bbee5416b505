package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machikasa/machikasa-api/internal/domain"
	"github.com/machikasa/machikasa-api/internal/repository/dao"
)

func newTestDB(t *testing.T) *LocalDB {
	t.Helper()

	store, err := dao.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	return NewLocalDB(store)
}

func TestReadsReturnDefaultsOnEmptyStore(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	assert.Empty(t, db.Stations(ctx))
	assert.Empty(t, db.Umbrellas(ctx))
	assert.Empty(t, db.Users(ctx))
	assert.Empty(t, db.Transactions(ctx))
	assert.Empty(t, db.Sponsors(ctx))
	assert.Empty(t, db.PartnerStores(ctx))
	assert.Empty(t, db.SponsorshipDeals(ctx))
	assert.Empty(t, db.PartnerReturns(ctx))
	assert.False(t, db.Initialized(ctx))

	_, ok := db.CurrentUser(ctx)
	assert.False(t, ok)
}

func TestInitializedFlagRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	assert.True(t, db.SetInitialized(ctx, true))
	assert.True(t, db.Initialized(ctx))

	db.ClearInitialized(ctx)
	assert.False(t, db.Initialized(ctx))
}

func TestCurrentUserRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := domain.User{ID: "user-1", Name: "Takeshi Yamada"}
	assert.True(t, db.SetCurrentUser(ctx, user))

	got, ok := db.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, "user-1", got.ID)
}

func TestClearAllWipesEveryCollection(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	db.SetStations(ctx, []domain.Station{{ID: "station-1"}})
	db.SetUsers(ctx, []domain.User{{ID: "user-1"}})
	db.SetInitialized(ctx, true)

	db.ClearAll(ctx)

	assert.Empty(t, db.Stations(ctx))
	assert.Empty(t, db.Users(ctx))
	assert.False(t, db.Initialized(ctx))
}
