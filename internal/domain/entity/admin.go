package entity

import "time"

// Admin operador del banco de sangre.
type Admin struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a Admin) GetID() string { return a.ID }
