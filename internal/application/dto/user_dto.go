package dto

import (
	"time"

	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
)

// UserInput datos editables de un usuario (registro y CRUD admin).
type UserInput struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	BloodGroup string `json:"bloodGroup"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	Password   string `json:"password"`
	IsDonor    bool   `json:"isDonor"`
	IsReceiver bool   `json:"isReceiver"`
}

// UserResponse usuario sin contraseña.
type UserResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Age        int               `json:"age"`
	Gender     string            `json:"gender"`
	BloodGroup entity.BloodGroup `json:"bloodGroup"`
	Phone      string            `json:"phone"`
	Email      string            `json:"email"`
	Address    string            `json:"address"`
	IsDonor    bool              `json:"isDonor"`
	IsReceiver bool              `json:"isReceiver"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// ToUserResponse proyecta la entidad sin el campo password.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Age:        u.Age,
		Gender:     u.Gender,
		BloodGroup: u.BloodGroup,
		Phone:      u.Phone,
		Email:      u.Email,
		Address:    u.Address,
		IsDonor:    u.IsDonor,
		IsReceiver: u.IsReceiver,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// ToUserResponses proyecta una lista.
func ToUserResponses(users []entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *ToUserResponse(&users[i]))
	}
	return out
}
