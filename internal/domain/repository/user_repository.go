package repository

import (
	"context"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

// UserRepository puerto del almacén de credenciales (DIP).
// Los Get devuelven (nil, nil) si no hay fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// LinkBusiness enlaza una cuenta sin negocio; ErrConflict si ya tenía uno.
	LinkBusiness(ctx context.Context, userID, businessID int64) error
	SetActive(ctx context.Context, userID int64, active bool) error
}
