package entity

import "time"

// BloodStock cantidad disponible de un grupo sanguíneo. Hay exactamente una fila por grupo.
type BloodStock struct {
	ID          string     `json:"id"`
	BloodGroup  BloodGroup `json:"bloodGroup"`
	Quantity    int        `json:"quantity"` // siempre >= 0
	LastUpdated time.Time  `json:"lastUpdated"`
}

func (s BloodStock) GetID() string { return s.ID }
