package domain

// Rental operation outcomes. Business-rule violations are reported
// through Success=false and Message, never as errors.

type BorrowResult struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	Umbrella *Umbrella `json:"umbrella,omitempty"`
}

type ReturnResult struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	Points   int       `json:"points,omitempty"`
	Cheer    string    `json:"cheer,omitempty"`
	Umbrella *Umbrella `json:"umbrella,omitempty"`
}

type PartnerReturnResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Points      int    `json:"points,omitempty"`
	DealApplied string `json:"deal_applied,omitempty"`
}
