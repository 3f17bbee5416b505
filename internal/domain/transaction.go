package domain

import "time"

type TransactionAction string

const (
	ActionBorrow TransactionAction = "borrow"
	ActionReturn TransactionAction = "return"
)

// Transaction is an immutable borrow/return record. The append-only
// transaction list is the source of truth for analytics.
type Transaction struct {
	ID           string            `json:"id"`
	UmbrellaID   string            `json:"umbrella_id"`
	Action       TransactionAction `json:"action"`
	UserID       string            `json:"user_id"`
	StationID    string            `json:"station_id"`
	Timestamp    time.Time         `json:"timestamp"`
	Location     *GeoPoint         `json:"location,omitempty"`
	Weather      string            `json:"weather,omitempty"`
	PointsEarned int               `json:"points_earned,omitempty"`
}
