package entity

import (
	"strings"
	"time"
)

// Roles válidos. El rol "owner" no se confía tal cual viene de la tabla:
// se deriva del vínculo con un negocio (ver EffectiveRole).
const (
	RoleAdmin = "admin"
	RoleOwner = "owner"
	RoleUser  = "user"
)

// User representa una fila del almacén de credenciales.
type User struct {
	ID           int64
	Username     string
	Email        string
	FullName     string
	PasswordHash string // bcrypt, nunca la contraseña en claro
	Role         string
	BusinessID   *int64 // negocio que puede administrar; nil si no tiene
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EffectiveRole deriva el rol a partir del vínculo con el negocio.
// Un "admin" guardado se respeta; en cualquier otro caso manda BusinessID.
func (u *User) EffectiveRole() string {
	if u.Role == RoleAdmin {
		return RoleAdmin
	}
	if u.BusinessID != nil {
		return RoleOwner
	}
	return RoleUser
}

// NormalizeUsername forma canónica del username: sin espacios alrededor y en minúsculas.
// Registro y login la usan para que "Alice" y "alice" sean la misma cuenta.
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
