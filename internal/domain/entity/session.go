package entity

import "time"

// Roles de sesión.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Session descriptor del actor autenticado. Se pasa explícitamente a las operaciones que lo requieren.
type Session struct {
	Role      string    `json:"role"`
	SubjectID string    `json:"subjectId"`
	Subject   string    `json:"subject"` // email del usuario o username del admin
	IssuedAt  time.Time `json:"issuedAt"`
}

// IsAdmin atajo para Role == admin.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }
