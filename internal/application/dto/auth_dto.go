package dto

import (
	validation "github.com/jellydator/validation"
)

// LoginRequest entrada para login. El email se compara sin distinguir
// mayúsculas; el password de forma exacta (texto plano, demo).
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate valida los campos requeridos del login.
func (r *LoginRequest) Validate() error {
	return WrapValidation(validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required.Error("email es requerido"), notBlank),
		validation.Field(&r.Password, validation.Required.Error("password es requerido")),
	))
}

// SessionResponse sesión activa: el usuario autenticado, sin password.
type SessionResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
