package domain

import "time"

type SponsorCategory string

const (
	SponsorLocalBusiness SponsorCategory = "local_business"
	SponsorUniversity    SponsorCategory = "university"
	SponsorGovernment    SponsorCategory = "government"
	SponsorNPO           SponsorCategory = "npo"
	SponsorOther         SponsorCategory = "other"
)

type Sponsor struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	NameEn       string          `json:"name_en,omitempty"`
	LogoURL      string          `json:"logo_url"`
	Message      string          `json:"message"`
	MessageEn    string          `json:"message_en,omitempty"`
	WebsiteURL   string          `json:"website_url,omitempty"`
	Active       bool            `json:"active"`
	JoinedDate   time.Time       `json:"joined_date"`
	ContactEmail string          `json:"contact_email,omitempty"`
	Category     SponsorCategory `json:"category"`
}
