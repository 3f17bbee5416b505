package domain

type StationType string

const (
	StationUniversity StationType = "university"
	StationStore      StationType = "store"
	StationPublic     StationType = "public"
)

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type OperatingHours struct {
	Open  string `json:"open"`  // "09:00"
	Close string `json:"close"` // "21:00"
}

type ContactInfo struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Station is a physical umbrella pickup/drop-off point.
// CurrentCount is clamped into [0, Capacity] on every mutation.
type Station struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	NameJa         string         `json:"name_ja"`
	Location       GeoPoint       `json:"location"`
	Address        string         `json:"address"`
	AddressJa      string         `json:"address_ja"`
	Capacity       int            `json:"capacity"`      // max umbrella slots
	CurrentCount   int            `json:"current_count"` // available umbrellas
	Type           StationType    `json:"type"`
	OperatingHours OperatingHours `json:"operating_hours"`
	IsActive       bool           `json:"is_active"`
	ContactInfo    *ContactInfo   `json:"contact_info,omitempty"`
}
