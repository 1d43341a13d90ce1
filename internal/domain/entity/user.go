package entity

import "time"

// Géneros válidos para User.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// MinDonorAge edad mínima para registrarse.
const MinDonorAge = 18

// User representa un donante y/o receptor.
// Password se guarda en texto plano: así lo hace el sistema de origen y no se endurece aquí.
type User struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Age        int        `json:"age"`
	Gender     string     `json:"gender"`
	BloodGroup BloodGroup `json:"bloodGroup"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email"`
	Address    string     `json:"address"`
	Password   string     `json:"password"`
	IsDonor    bool       `json:"isDonor"`
	IsReceiver bool       `json:"isReceiver"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (u User) GetID() string { return u.ID }

// IsValidGender valida el género contra la enumeración.
func IsValidGender(g string) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}
