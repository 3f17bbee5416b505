package repository

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/machikasa/machikasa-api/internal/domain"
	"github.com/machikasa/machikasa-api/internal/repository/dao"
)

// LocalDB exposes typed accessors over the blob store. It is the only
// error-containment boundary in the system: storage failures are
// logged and masked with a caller-facing default, reads never fail and
// writes report a plain success flag. Business operations upstream
// branch on state, not on storage errors.
type LocalDB struct {
	store *dao.Store
}

func NewLocalDB(store *dao.Store) *LocalDB {
	return &LocalDB{
		store: store,
	}
}

// getData reads and decodes the document under key, substituting def
// on a missing key, a storage failure, or corrupt JSON.
func getData[T any](ctx context.Context, db *LocalDB, key string, def T) T {
	raw, err := db.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, dao.ErrKeyNotFound) {
			zap.L().Warn("store read failed, substituting default",
				zap.String("key", key), zap.Error(err))
		}

		return def
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		zap.L().Warn("stored document corrupt, substituting default",
			zap.String("key", key), zap.Error(err))

		return def
	}

	return value
}

// setData encodes value and writes it whole under key. Failures are
// logged and reported as false, never raised.
func setData[T any](ctx context.Context, db *LocalDB, key string, value T) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		zap.L().Warn("failed to encode document", zap.String("key", key), zap.Error(err))

		return false
	}

	if err := db.store.Put(ctx, key, raw); err != nil {
		zap.L().Warn("store write failed", zap.String("key", key), zap.Error(err))

		return false
	}

	return true
}

func (db *LocalDB) Initialized(ctx context.Context) bool {
	return getData(ctx, db, dao.KeyInitialized, false)
}

func (db *LocalDB) SetInitialized(ctx context.Context, v bool) bool {
	return setData(ctx, db, dao.KeyInitialized, v)
}

func (db *LocalDB) ClearInitialized(ctx context.Context) {
	if err := db.store.Delete(ctx, dao.KeyInitialized); err != nil {
		zap.L().Warn("failed to clear initialized flag", zap.Error(err))
	}
}

// ClearAll removes every known storage key.
func (db *LocalDB) ClearAll(ctx context.Context) {
	if err := db.store.Clear(ctx); err != nil {
		zap.L().Warn("failed to clear store", zap.Error(err))
	}
}

func (db *LocalDB) CurrentUser(ctx context.Context) (domain.User, bool) {
	user := getData[*domain.User](ctx, db, dao.KeyCurrentUser, nil)
	if user == nil {
		return domain.User{}, false
	}

	return *user, true
}

func (db *LocalDB) SetCurrentUser(ctx context.Context, user domain.User) bool {
	return setData(ctx, db, dao.KeyCurrentUser, &user)
}

// refreshCurrentUser keeps the current-user snapshot in sync after a
// user record mutation.
func (db *LocalDB) refreshCurrentUser(ctx context.Context, user domain.User) {
	current, ok := db.CurrentUser(ctx)
	if ok && current.ID == user.ID {
		db.SetCurrentUser(ctx, user)
	}
}
