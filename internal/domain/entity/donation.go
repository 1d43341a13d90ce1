package entity

import "time"

// Donation registro de una donación (creada por un admin, nunca se modifica).
type Donation struct {
	ID               string     `json:"id"`
	UserID           string     `json:"userId"`
	Date             time.Time  `json:"date"`
	BloodGroup       BloodGroup `json:"bloodGroup"`
	Quantity         int        `json:"quantity"` // unidades
	Notes            string     `json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	CollectionCenter string     `json:"collectionCenter"`
}

func (d Donation) GetID() string { return d.ID }
