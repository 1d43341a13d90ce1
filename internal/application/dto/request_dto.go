package dto

import "time"

// SubmitRequestInput body de POST /api/me/requests.
type SubmitRequestInput struct {
	BloodGroup   string `json:"bloodGroup"`
	Quantity     int    `json:"quantity"`
	Urgency      string `json:"urgency"` // vacío = Medium
	HospitalName string `json:"hospitalName"`
	Reason       string `json:"reason"`
	Notes        string `json:"notes"`
}

// FulfillInput body de POST /api/admin/requests/:id/fulfill.
type FulfillInput struct {
	CollectionCenter string     `json:"collectionCenter"`
	SupplyDate       *time.Time `json:"supplyDate"` // nil = ahora
	Notes            string     `json:"notes"`
}
