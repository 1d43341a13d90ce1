package entity

import "time"

// RequestStatus estado del ciclo de vida de una solicitud.
type RequestStatus string

const (
	RequestPending   RequestStatus = "Pending"
	RequestApproved  RequestStatus = "Approved"
	RequestRejected  RequestStatus = "Rejected"
	RequestFulfilled RequestStatus = "Fulfilled"
)

// Urgencias válidas.
const (
	UrgencyLow    = "Low"
	UrgencyMedium = "Medium"
	UrgencyHigh   = "High"
)

// BloodRequest solicitud de sangre de un receptor.
// Tras la creación solo cambian Status y DeliveryDate.
type BloodRequest struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	BloodGroup   BloodGroup    `json:"bloodGroup"`
	Quantity     int           `json:"quantity"`
	RequestDate  time.Time     `json:"requestDate"`
	Status       RequestStatus `json:"status"`
	Notes        string        `json:"notes,omitempty"`
	Urgency      string        `json:"urgency"`
	DeliveryDate *time.Time    `json:"deliveryDate,omitempty"`
	HospitalName string        `json:"hospitalName"`
	Reason       string        `json:"reason"`
}

func (r BloodRequest) GetID() string { return r.ID }

// transitions origen -> destinos permitidos. Rejected y Fulfilled son terminales.
var transitions = map[RequestStatus][]RequestStatus{
	RequestPending:  {RequestApproved, RequestRejected},
	RequestApproved: {RequestFulfilled},
}

// CanTransition indica si el paso from -> to es válido.
func CanTransition(from, to RequestStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsValid valida el estado contra la enumeración.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected, RequestFulfilled:
		return true
	}
	return false
}

// IsValidUrgency valida la urgencia contra la enumeración.
func IsValidUrgency(u string) bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}
