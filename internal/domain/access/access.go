// Package access contiene los predicados de autorización sobre una sesión.
// Son funciones puras: no consultan la base ni el slot de sesión.
package access

import (
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

// Etiquetas visibles del rol.
const (
	LabelAdmin = "Admin"
	LabelOwner = "Business Owner"
	LabelUser  = "User"
	LabelGuest = "Guest"
)

// IsAdmin el rol admin anula cualquier otra comprobación.
func IsAdmin(s *entity.Session) bool {
	return s != nil && s.Role == entity.RoleAdmin
}

// IsOwner decide por el vínculo con el negocio, no por el texto del rol.
func IsOwner(s *entity.Session) bool {
	return s != nil && s.BusinessID != nil
}

// IsNormalUser sin negocio vinculado y sin rol admin.
func IsNormalUser(s *entity.Session) bool {
	return s != nil && s.BusinessID == nil && s.Role != entity.RoleAdmin
}

// RoleDisplay etiqueta con precedencia admin > owner > user. Sin sesión o con un rol
// desconocido devuelve "Guest".
func RoleDisplay(s *entity.Session) string {
	switch {
	case s == nil:
		return LabelGuest
	case IsAdmin(s):
		return LabelAdmin
	case IsOwner(s):
		return LabelOwner
	case s.Role == entity.RoleUser || s.Role == entity.RoleOwner:
		return LabelUser
	default:
		return LabelGuest
	}
}

// CanManageBusiness único control de escritura sobre un negocio y su contenido.
// Admin siempre; cualquier otra sesión solo si su BusinessID coincide.
func CanManageBusiness(businessID int64, s *entity.Session) bool {
	if s == nil {
		return false
	}
	if IsAdmin(s) {
		return true
	}
	return s.BusinessID != nil && *s.BusinessID == businessID
}

// RequireManage traduce CanManageBusiness a error de dominio para los casos de uso.
func RequireManage(businessID int64, s *entity.Session) error {
	if s == nil {
		return domain.ErrUnauthorized
	}
	if !CanManageBusiness(businessID, s) {
		return domain.ErrForbidden
	}
	return nil
}

// RequireAdmin exige sesión de administrador.
func RequireAdmin(s *entity.Session) error {
	if s == nil {
		return domain.ErrUnauthorized
	}
	if !IsAdmin(s) {
		return domain.ErrForbidden
	}
	return nil
}
