package repository

import (
	"context"
	"time"

	"github.com/machikasa/machikasa-api/internal/domain"
	"github.com/machikasa/machikasa-api/internal/repository/dao"
)

func (db *LocalDB) Users(ctx context.Context) []domain.User {
	return getData(ctx, db, dao.KeyUsers, []domain.User{})
}

func (db *LocalDB) SetUsers(ctx context.Context, users []domain.User) bool {
	return setData(ctx, db, dao.KeyUsers, users)
}

func (db *LocalDB) User(ctx context.Context, id string) (domain.User, bool) {
	for _, u := range db.Users(ctx) {
		if u.ID == id {
			return u, true
		}
	}

	return domain.User{}, false
}

// SaveUser replaces the user's record in the collection and keeps the
// current-user snapshot in sync.
func (db *LocalDB) SaveUser(ctx context.Context, user domain.User) bool {
	users := db.Users(ctx)
	for i := range users {
		if users[i].ID != user.ID {
			continue
		}

		users[i] = user
		if !db.SetUsers(ctx, users) {
			return false
		}
		db.refreshCurrentUser(ctx, user)

		return true
	}

	return false
}

// UpdateUserStats bumps the borrow/return counters after a rental
// operation. points are credited on returns only.
func (db *LocalDB) UpdateUserStats(ctx context.Context, userID string, action domain.TransactionAction, points int) bool {
	users := db.Users(ctx)
	for i := range users {
		if users[i].ID != userID {
			continue
		}

		if action == domain.ActionBorrow {
			users[i].TotalBorrows++
		} else {
			users[i].TotalReturns++
			if points > 0 {
				users[i].Points += points
			}
		}
		users[i].LastLoginAt = time.Now()

		if !db.SetUsers(ctx, users) {
			return false
		}
		db.refreshCurrentUser(ctx, users[i])

		return true
	}

	return false
}

func (db *LocalDB) AddUserPoints(ctx context.Context, userID string, value int) bool {
	users := db.Users(ctx)
	for i := range users {
		if users[i].ID != userID {
			continue
		}

		users[i].Points += value

		if !db.SetUsers(ctx, users) {
			return false
		}
		db.refreshCurrentUser(ctx, users[i])

		return true
	}

	return false
}

func (db *LocalDB) UserPoints(ctx context.Context, userID string) int {
	user, ok := db.User(ctx, userID)
	if !ok {
		return 0
	}

	return user.Points
}
