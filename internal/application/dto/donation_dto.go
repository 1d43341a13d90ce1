package dto

import "time"

// RecordDonationInput body de POST /api/admin/donations.
type RecordDonationInput struct {
	UserID           string     `json:"userId"`
	Date             *time.Time `json:"date"` // nil = ahora
	CollectionCenter string     `json:"collectionCenter"`
	Quantity         int        `json:"quantity"`
	Notes            string     `json:"notes"`
}

// EligibilityDTO próxima fecha en que el donante puede volver a donar.
type EligibilityDTO struct {
	LastDonation  *time.Time `json:"lastDonation,omitempty"`
	NextEligible  *time.Time `json:"nextEligible,omitempty"`
	CanDonate     bool       `json:"canDonate"`
	DaysRemaining int        `json:"daysRemaining"`
}
