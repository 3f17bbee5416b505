package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machikasa/machikasa-api/internal/domain"
)

func TestAddTransactionBorrowEarnsNoPoints(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	id := db.AddTransaction(ctx, domain.ActionBorrow, "umb-001", "user-1", "station-1")
	require.NotEmpty(t, id)
	assert.True(t, strings.HasPrefix(id, "tx-"))

	transactions := db.Transactions(ctx)
	require.Len(t, transactions, 1)
	assert.Equal(t, 0, transactions[0].PointsEarned)
}

func TestAddTransactionReturnEarnsOnePoint(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	db.AddTransaction(ctx, domain.ActionReturn, "umb-001", "user-1", "station-1")

	transactions := db.Transactions(ctx)
	require.Len(t, transactions, 1)
	assert.Equal(t, 1, transactions[0].PointsEarned)
}

func TestUserTransactionsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	db.AddTransaction(ctx, domain.ActionBorrow, "umb-001", "user-1", "station-1")
	db.AddTransaction(ctx, domain.ActionReturn, "umb-001", "user-1", "station-1")
	db.AddTransaction(ctx, domain.ActionBorrow, "umb-002", "user-2", "station-2")

	history := db.UserTransactions(ctx, "user-1", 0)
	require.Len(t, history, 2)
	assert.False(t, history[0].Timestamp.Before(history[1].Timestamp))
	for _, tx := range history {
		assert.Equal(t, "user-1", tx.UserID)
	}
}

func TestUserTransactionsLimit(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		db.AddTransaction(ctx, domain.ActionBorrow, "umb-001", "user-1", "station-1")
	}

	assert.Len(t, db.UserTransactions(ctx, "user-1", 3), 3)
	assert.Len(t, db.UserTransactions(ctx, "user-1", 0), 5)
}
