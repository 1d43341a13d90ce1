package entity

import "time"

// BloodSupply entrega de sangre contra una solicitud cumplida (1:1 con la solicitud).
type BloodSupply struct {
	ID               string     `json:"id"`
	RequestID        string     `json:"requestId"`
	UserID           string     `json:"userId"`
	Quantity         int        `json:"quantity"`
	BloodGroup       BloodGroup `json:"bloodGroup"`
	CollectionCenter string     `json:"collectionCenter"`
	SupplyDate       time.Time  `json:"supplyDate"`
	Notes            string     `json:"notes,omitempty"`
}

func (s BloodSupply) GetID() string { return s.ID }
