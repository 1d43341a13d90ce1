package dto

import "github.com/jhoicas/bloodbank-api/internal/domain/entity"

// RegisterRequest body de POST /api/auth/register.
type RegisterRequest struct {
	UserInput
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest body de POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLoginRequest body de POST /api/auth/admin/login.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token firmado + descriptor de sesión.
// User solo viene en logins de usuario.
type LoginResponse struct {
	Token   string         `json:"token"`
	Session entity.Session `json:"session"`
	User    *UserResponse  `json:"user,omitempty"`
}
