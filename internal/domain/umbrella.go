package domain

import "time"

type UmbrellaStatus string

const (
	UmbrellaAvailable   UmbrellaStatus = "available"
	UmbrellaInUse       UmbrellaStatus = "in_use"
	UmbrellaMaintenance UmbrellaStatus = "maintenance"
	UmbrellaLost        UmbrellaStatus = "lost"
)

type UmbrellaCondition string

const (
	ConditionGood UmbrellaCondition = "good"
	ConditionFair UmbrellaCondition = "fair"
	ConditionPoor UmbrellaCondition = "poor"
)

// Umbrella status transitions are driven solely by the rental service:
// available -> in_use on borrow, in_use -> available on return.
// maintenance and lost are reachable only through seed data.
type Umbrella struct {
	ID          string            `json:"id"`
	Code        string            `json:"code"` // "machikasa://umbrella/{id}"
	Status      UmbrellaStatus    `json:"status"`
	StationID   string            `json:"station_id"`
	LastUpdated time.Time         `json:"last_updated"`
	BorrowedBy  string            `json:"borrowed_by,omitempty"` // user id while in_use
	Condition   UmbrellaCondition `json:"condition"`
	// BatteryLevel is 0-100 for smart umbrellas, 0 when not reported.
	BatteryLevel int `json:"battery_level,omitempty"`
}
