package repository

import (
	"context"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

// WifiRepository define el puerto de persistencia para WifiNetwork.
type WifiRepository interface {
	Create(ctx context.Context, w *entity.WifiNetwork) error
	GetByID(ctx context.Context, id int64) (*entity.WifiNetwork, error)
	Update(ctx context.Context, w *entity.WifiNetwork) error
	Delete(ctx context.Context, id int64) error
	ListByBusiness(ctx context.Context, businessID int64) ([]*entity.WifiNetwork, error)
}
