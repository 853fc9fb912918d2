package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Autenticación. ErrUserNotFound y ErrInvalidCredentials se reportan al cliente
	// con el mismo mensaje; solo los logs los distinguen.
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrAccountInactive    = errors.New("cuenta inactiva")

	// ErrStoreUnavailable el almacén (Postgres o Redis) no respondió a tiempo o no es alcanzable.
	ErrStoreUnavailable = errors.New("almacén no disponible")

	// ErrCorruptSession el contenido guardado en el slot de sesión no se puede decodificar.
	// Nunca llega al usuario: se trata como "sin sesión".
	ErrCorruptSession = errors.New("sesión corrupta")
)
