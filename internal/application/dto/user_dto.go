package dto

import "time"

// RegisterRequest entrada para registro público.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"omitempty,max=200"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Role       string    `json:"role"`
	BusinessID *int64    `json:"business_id"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LoginRequest entrada para login de usuario o de administrador.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse sesión activa tal como la ve el cliente.
type SessionResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
	RoleDisplay string `json:"role_display"`
	BusinessID  *int64 `json:"business_id"`
	IsActive    bool   `json:"is_active"`
}

// LoginResponse token firmado + sesión guardada.
type LoginResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}

// SetActiveRequest activar o desactivar una cuenta (solo admin).
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
