package dao

import (
	"context"
	"errors"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

var ErrKeyNotFound = errors.New("key not found")

// Fixed storage keys, one JSON document per entity collection plus the
// current-user pointer and the initialized flag.
const (
	KeyStations         = "machikasa_stations"
	KeyUmbrellas        = "machikasa_umbrellas"
	KeyUsers            = "machikasa_users"
	KeyTransactions     = "machikasa_transactions"
	KeySponsors         = "machikasa_sponsors"
	KeyPartnerStores    = "machikasa_partner_stores"
	KeySponsorshipDeals = "machikasa_sponsorship_deals"
	KeyPartnerReturns   = "machikasa_partner_returns"
	KeyCurrentUser      = "machikasa_current_user"
	KeyInitialized      = "machikasa_initialized"
)

// Keys lists every key the store owns; Clear removes exactly these.
var Keys = []string{
	KeyStations,
	KeyUmbrellas,
	KeyUsers,
	KeyTransactions,
	KeySponsors,
	KeyPartnerStores,
	KeySponsorshipDeals,
	KeyPartnerReturns,
	KeyCurrentUser,
	KeyInitialized,
}

type Blob struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (Blob) TableName() string {
	return "blobs"
}

// Store is a blob store holding one JSON document per fixed key.
// Collections are always read and written whole; there are no partial
// updates. Errors carry the diagnostic up to the repository layer,
// which decides whether to substitute a default.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the sqlite file at path and migrates the
// blobs table.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var blob Blob

	result := s.db.WithContext(ctx).First(&blob, "key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}

		return nil, result.Error
	}

	return []byte(blob.Value), nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	blob := Blob{Key: key, Value: string(value), UpdatedAt: time.Now()}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob)

	return result.Error
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Blob{}, "key = ?", key).Error
}

// Clear removes every known storage key.
func (s *Store) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).Delete(&Blob{}, "key IN ?", Keys).Error
}
