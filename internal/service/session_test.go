package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentUserAfterInitialize(t *testing.T) {
	repo := seededRepo(t)
	svc := NewSessionService(repo)

	user, err := svc.CurrentUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestCurrentUserMissing(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewSessionService(repo)

	_, err := svc.CurrentUser(context.Background())

	assert.ErrorIs(t, err, ErrNoCurrentUser)
}

func TestSwitchUser(t *testing.T) {
	repo := seededRepo(t)
	svc := NewSessionService(repo)
	ctx := context.Background()

	user, err := svc.SwitchUser(ctx, "user-2")

	require.NoError(t, err)
	assert.Equal(t, "user-2", user.ID)

	current, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-2", current.ID)
}

func TestSwitchUserUnknown(t *testing.T) {
	repo := seededRepo(t)
	svc := NewSessionService(repo)
	ctx := context.Background()

	_, err := svc.SwitchUser(ctx, "user-404")
	assert.ErrorIs(t, err, ErrUserNotFound)

	// The session still points at the original user.
	current, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", current.ID)
}

func TestUserTransactionsUnknownUser(t *testing.T) {
	repo := seededRepo(t)
	svc := NewSessionService(repo)

	_, err := svc.UserTransactions(context.Background(), "user-404", 0)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserTransactionsLimited(t *testing.T) {
	repo := seededRepo(t)
	svc := NewSessionService(repo)

	history, err := svc.UserTransactions(context.Background(), "user-1", 1)

	require.NoError(t, err)
	assert.Len(t, history, 1)
}
