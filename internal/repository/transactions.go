package repository

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/machikasa/machikasa-api/internal/domain"
	"github.com/machikasa/machikasa-api/internal/repository/dao"
)

func (db *LocalDB) Transactions(ctx context.Context) []domain.Transaction {
	return getData(ctx, db, dao.KeyTransactions, []domain.Transaction{})
}

func (db *LocalDB) SetTransactions(ctx context.Context, transactions []domain.Transaction) bool {
	return setData(ctx, db, dao.KeyTransactions, transactions)
}

// AddTransaction appends an immutable borrow/return record and returns
// its id. Returns earn a fixed 1 point at the station; partner-store
// bonuses are tracked separately on the PartnerStoreReturn record.
func (db *LocalDB) AddTransaction(ctx context.Context, action domain.TransactionAction, umbrellaID, userID, stationID string) string {
	transactions := db.Transactions(ctx)

	tx := domain.Transaction{
		ID:         "tx-" + uuid.NewString(),
		UmbrellaID: umbrellaID,
		Action:     action,
		UserID:     userID,
		StationID:  stationID,
		Timestamp:  time.Now(),
	}
	if action == domain.ActionReturn {
		tx.PointsEarned = 1
	}

	if !db.SetTransactions(ctx, append(transactions, tx)) {
		return ""
	}

	return tx.ID
}

// UserTransactions returns the user's history, newest first. A limit
// of 0 means no limit.
func (db *LocalDB) UserTransactions(ctx context.Context, userID string, limit int) []domain.Transaction {
	history := make([]domain.Transaction, 0)
	for _, tx := range db.Transactions(ctx) {
		if tx.UserID == userID {
			history = append(history, tx)
		}
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Timestamp.After(history[j].Timestamp)
	})

	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}

	return history
}
