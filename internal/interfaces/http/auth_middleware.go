package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/application/session"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/access"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/pkg/jwt"
)

// Locals keys para la sesión y su slot en Fiber.
const (
	LocalSession = "session"
	LocalSlot    = "session_slot"
)

// AuthMiddleware si llega un Bearer Token lo valida, abre el slot que nombra (claim sid) y
// carga la sesión en c.Locals. Sin header la petición sigue como invitado; las rutas
// privadas añaden RequireSession. Un token válido cuyo slot ya no existe (logout) es 401.
func AuthMiddleware(jwtSecret string, sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}

		slot := sessions.Slot(claims.SessionID)
		sess, err := sessions.GetSession(c.UserContext(), slot)
		if err != nil {
			return writeError(c, err)
		}
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión ya no existe, inicie sesión de nuevo"})
		}
		if !sess.IsActive {
			return writeError(c, domain.ErrAccountInactive)
		}
		c.Locals(LocalSession, sess)
		c.Locals(LocalSlot, slot)
		return c.Next()
	}
}

// RequireSession corta con 401 si AuthMiddleware no cargó una sesión.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetSession(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		return c.Next()
	}
}

// RequireAdmin exige sesión de administrador. Va después de AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := access.RequireAdmin(GetSession(c)); err != nil {
			return writeError(c, err)
		}
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto o nil (invitado).
func GetSession(c *fiber.Ctx) *entity.Session {
	s, _ := c.Locals(LocalSession).(*entity.Session)
	return s
}

// GetSlot devuelve el slot de la sesión del contexto o nil.
func GetSlot(c *fiber.Ctx) *session.Slot {
	s, _ := c.Locals(LocalSlot).(*session.Slot)
	return s
}
