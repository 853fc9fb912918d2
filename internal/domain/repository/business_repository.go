package repository

import (
	"context"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

// BusinessRepository define el puerto de persistencia para Business.
type BusinessRepository interface {
	Create(ctx context.Context, b *entity.Business) error
	GetByID(ctx context.Context, id int64) (*entity.Business, error)
	GetByUsername(ctx context.Context, username string) (*entity.Business, error)
	Update(ctx context.Context, b *entity.Business) error
	Delete(ctx context.Context, id int64) error
	// List devuelve la página pedida y el total sin paginar.
	List(ctx context.Context, f entity.BusinessFilter) ([]*entity.Business, int, error)
}
