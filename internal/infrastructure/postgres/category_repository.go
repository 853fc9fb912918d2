package postgres

import (
	"context"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo categorías del directorio.
type CategoryRepo struct {
	db DBTX
}

func NewCategoryRepository(db DBTX) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO categories (name, slug, created_at) VALUES ($1, $2, $3) RETURNING id`,
		c.Name, c.Slug, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return wrap("insert category", err)
	}
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.db.QueryRow(ctx, `SELECT id, name, slug, created_at FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrap("get category", err)
	}
	return &c, nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, slug, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, wrap("list categories", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, wrap("scan category", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
