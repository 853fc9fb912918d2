package repository

import (
	"context"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

// MenuRepository persistencia de los tres niveles del menú de un negocio.
type MenuRepository interface {
	CreateCategory(ctx context.Context, c *entity.MenuCategory) error
	GetCategory(ctx context.Context, id int64) (*entity.MenuCategory, error)
	UpdateCategory(ctx context.Context, c *entity.MenuCategory) error
	DeleteCategory(ctx context.Context, id int64) error
	ListCategories(ctx context.Context, businessID int64) ([]*entity.MenuCategory, error)

	CreateSubcategory(ctx context.Context, s *entity.MenuSubcategory) error
	GetSubcategory(ctx context.Context, id int64) (*entity.MenuSubcategory, error)
	DeleteSubcategory(ctx context.Context, id int64) error
	ListSubcategories(ctx context.Context, businessID int64) ([]*entity.MenuSubcategory, error)

	CreateItem(ctx context.Context, it *entity.MenuItem) error
	GetItem(ctx context.Context, id int64) (*entity.MenuItem, error)
	UpdateItem(ctx context.Context, it *entity.MenuItem) error
	DeleteItem(ctx context.Context, id int64) error
	ListItems(ctx context.Context, businessID int64) ([]*entity.MenuItem, error)
}
