package domain

import "time"

type PartnerStoreType string

const (
	PartnerRestaurant  PartnerStoreType = "restaurant"
	PartnerCafe        PartnerStoreType = "cafe"
	PartnerSupermarket PartnerStoreType = "supermarket"
	PartnerPharmacy    PartnerStoreType = "pharmacy"
	PartnerBookstore   PartnerStoreType = "bookstore"
	PartnerConvenience PartnerStoreType = "convenience"
	PartnerOther       PartnerStoreType = "other"
)

type PartnerFeature string

const (
	FeatureUmbrellaStation PartnerFeature = "umbrella_station"
	FeatureReturnBonus     PartnerFeature = "return_bonus"
	FeatureSponsorBenefits PartnerFeature = "sponsor_benefits"
	FeatureStudentDiscount PartnerFeature = "student_discount"
)

// PartnerStore is a business that also accepts umbrella returns.
// SponsorID is a weak reference, resolved by lookup only.
// AvailableUmbrellas is clamped into [0, MaxCapacity] on every mutation.
type PartnerStore struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	NameEn             string           `json:"name_en,omitempty"`
	Type               PartnerStoreType `json:"type"`
	Address            string           `json:"address"`
	Lat                float64          `json:"lat"`
	Lng                float64          `json:"lng"`
	Phone              string           `json:"phone,omitempty"`
	Hours              string           `json:"hours,omitempty"` // e.g. "9:00-21:00"
	SponsorID          string           `json:"sponsor_id,omitempty"`
	Offers             []string         `json:"offers"`
	AvailableUmbrellas int              `json:"available_umbrellas"`
	MaxCapacity        int              `json:"max_capacity"`
	IsActive           bool             `json:"is_active"`
	JoinedDate         time.Time        `json:"joined_date"`
	LastUpdated        time.Time        `json:"last_updated"`
	Features           []PartnerFeature `json:"features"`
}

type DealType string

const (
	DealPointsBonus DealType = "points_bonus"
	DealDiscount    DealType = "discount"
	DealFreeItem    DealType = "free_item"
	DealCashback    DealType = "cashback"
)

// SponsorshipDeal is a time-bounded promotional rule tied to a sponsor
// and a partner store. A zero EndDate means the deal is open-ended.
type SponsorshipDeal struct {
	ID             string    `json:"id"`
	SponsorID      string    `json:"sponsor_id"`
	PartnerStoreID string    `json:"partner_store_id"`
	DealType       DealType  `json:"deal_type"`
	Description    string    `json:"description"`
	Value          int       `json:"value"` // points, discount percentage, or amount
	Active         bool      `json:"active"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date,omitempty"`
}

// PartnerStoreReturn is an append-only record produced only by the
// partner-store return operation.
type PartnerStoreReturn struct {
	ID             string    `json:"id"`
	TransactionID  string    `json:"transaction_id"`
	PartnerStoreID string    `json:"partner_store_id"`
	UserID         string    `json:"user_id"`
	UmbrellaID     string    `json:"umbrella_id"`
	BonusPoints    int       `json:"bonus_points"`
	DealApplied    string    `json:"deal_applied,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}
