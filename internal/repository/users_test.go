package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machikasa/machikasa-api/internal/domain"
)

func seedUsers(t *testing.T, db *LocalDB) {
	t.Helper()

	db.SetUsers(context.Background(), []domain.User{
		{ID: "user-1", Name: "Takeshi Yamada", TotalBorrows: 15, TotalReturns: 14, Points: 280},
		{ID: "user-2", Name: "Yuki Tanaka", TotalBorrows: 8, TotalReturns: 8, Points: 160},
	})
}

func TestUpdateUserStatsBorrow(t *testing.T) {
	db := newTestDB(t)
	seedUsers(t, db)
	ctx := context.Background()

	assert.True(t, db.UpdateUserStats(ctx, "user-1", domain.ActionBorrow, 0))

	user, _ := db.User(ctx, "user-1")
	assert.Equal(t, 16, user.TotalBorrows)
	assert.Equal(t, 14, user.TotalReturns)
	assert.Equal(t, 280, user.Points)
}

func TestUpdateUserStatsReturnWithPoints(t *testing.T) {
	db := newTestDB(t)
	seedUsers(t, db)
	ctx := context.Background()

	assert.True(t, db.UpdateUserStats(ctx, "user-2", domain.ActionReturn, 3))

	user, _ := db.User(ctx, "user-2")
	assert.Equal(t, 9, user.TotalReturns)
	assert.Equal(t, 163, user.Points)
}

func TestUpdateUserStatsUnknownUser(t *testing.T) {
	db := newTestDB(t)
	seedUsers(t, db)

	assert.False(t, db.UpdateUserStats(context.Background(), "user-99", domain.ActionBorrow, 0))
}

func TestAddUserPoints(t *testing.T) {
	db := newTestDB(t)
	seedUsers(t, db)
	ctx := context.Background()

	assert.True(t, db.AddUserPoints(ctx, "user-1", 5))
	assert.Equal(t, 285, db.UserPoints(ctx, "user-1"))
	assert.Equal(t, 0, db.UserPoints(ctx, "user-99"))
}

func TestSaveUserSyncsCurrentUser(t *testing.T) {
	db := newTestDB(t)
	seedUsers(t, db)
	ctx := context.Background()

	user, _ := db.User(ctx, "user-1")
	db.SetCurrentUser(ctx, user)

	user.Points = 300
	require.True(t, db.SaveUser(ctx, user))

	current, ok := db.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, 300, current.Points)
}

func TestSaveUserDoesNotTouchOtherSessions(t *testing.T) {
	db := newTestDB(t)
	seedUsers(t, db)
	ctx := context.Background()

	other, _ := db.User(ctx, "user-2")
	db.SetCurrentUser(ctx, other)

	user, _ := db.User(ctx, "user-1")
	user.Points = 300
	require.True(t, db.SaveUser(ctx, user))

	current, ok := db.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, "user-2", current.ID)
	assert.Equal(t, 160, current.Points)
}
