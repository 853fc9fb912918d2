package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.MenuRepository = (*MenuRepo)(nil)

// MenuRepo menú de tres niveles: menu_categories → menu_subcategories → menu_items.
type MenuRepo struct {
	db DBTX
}

// NewMenuRepository construye el adaptador del menú.
func NewMenuRepository(db DBTX) *MenuRepo {
	return &MenuRepo{db: db}
}

// ── Categorías ───────────────────────────────────────────────────────────────

func (r *MenuRepo) CreateCategory(ctx context.Context, c *entity.MenuCategory) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO menu_categories (business_id, name, position, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		c.BusinessID, c.Name, c.Position, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return wrap("insert menu category", err)
	}
	return nil
}

func (r *MenuRepo) GetCategory(ctx context.Context, id int64) (*entity.MenuCategory, error) {
	var c entity.MenuCategory
	err := r.db.QueryRow(ctx,
		`SELECT id, business_id, name, position, created_at FROM menu_categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.BusinessID, &c.Name, &c.Position, &c.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrap("get menu category", err)
	}
	return &c, nil
}

func (r *MenuRepo) UpdateCategory(ctx context.Context, c *entity.MenuCategory) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE menu_categories SET name = $2, position = $3 WHERE id = $1`, c.ID, c.Name, c.Position)
	if err != nil {
		return wrap("update menu category", err)
	}
	return mustAffect(tag)
}

// DeleteCategory subcategorías e ítems caen por ON DELETE CASCADE.
func (r *MenuRepo) DeleteCategory(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM menu_categories WHERE id = $1`, id)
	if err != nil {
		return wrap("delete menu category", err)
	}
	return mustAffect(tag)
}

func (r *MenuRepo) ListCategories(ctx context.Context, businessID int64) ([]*entity.MenuCategory, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, business_id, name, position, created_at
		FROM menu_categories WHERE business_id = $1
		ORDER BY position, id`, businessID)
	if err != nil {
		return nil, wrap("list menu categories", err)
	}
	defer rows.Close()
	var list []*entity.MenuCategory
	for rows.Next() {
		var c entity.MenuCategory
		if err := rows.Scan(&c.ID, &c.BusinessID, &c.Name, &c.Position, &c.CreatedAt); err != nil {
			return nil, wrap("scan menu category", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ── Subcategorías ────────────────────────────────────────────────────────────

func (r *MenuRepo) CreateSubcategory(ctx context.Context, s *entity.MenuSubcategory) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO menu_subcategories (category_id, name, position, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		s.CategoryID, s.Name, s.Position, s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		return wrap("insert menu subcategory", err)
	}
	return nil
}

func (r *MenuRepo) GetSubcategory(ctx context.Context, id int64) (*entity.MenuSubcategory, error) {
	var s entity.MenuSubcategory
	err := r.db.QueryRow(ctx,
		`SELECT id, category_id, name, position, created_at FROM menu_subcategories WHERE id = $1`, id,
	).Scan(&s.ID, &s.CategoryID, &s.Name, &s.Position, &s.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrap("get menu subcategory", err)
	}
	return &s, nil
}

// DeleteSubcategory los ítems quedan en la categoría padre (ON DELETE SET NULL).
func (r *MenuRepo) DeleteSubcategory(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM menu_subcategories WHERE id = $1`, id)
	if err != nil {
		return wrap("delete menu subcategory", err)
	}
	return mustAffect(tag)
}

func (r *MenuRepo) ListSubcategories(ctx context.Context, businessID int64) ([]*entity.MenuSubcategory, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.category_id, s.name, s.position, s.created_at
		FROM menu_subcategories s
		JOIN menu_categories c ON c.id = s.category_id
		WHERE c.business_id = $1
		ORDER BY s.position, s.id`, businessID)
	if err != nil {
		return nil, wrap("list menu subcategories", err)
	}
	defer rows.Close()
	var list []*entity.MenuSubcategory
	for rows.Next() {
		var s entity.MenuSubcategory
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Position, &s.CreatedAt); err != nil {
			return nil, wrap("scan menu subcategory", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ── Ítems ────────────────────────────────────────────────────────────────────

const itemColumns = `id, business_id, category_id, subcategory_id, name, description, price, image_url,
	available, position, created_at, updated_at`

func (r *MenuRepo) CreateItem(ctx context.Context, it *entity.MenuItem) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO menu_items (business_id, category_id, subcategory_id, name, description, price, image_url,
			available, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		it.BusinessID, it.CategoryID, it.SubcategoryID, it.Name, it.Description, it.Price, it.ImageURL,
		it.Available, it.Position, it.CreatedAt, it.UpdatedAt,
	).Scan(&it.ID)
	if err != nil {
		return wrap("insert menu item", err)
	}
	return nil
}

func (r *MenuRepo) GetItem(ctx context.Context, id int64) (*entity.MenuItem, error) {
	it, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM menu_items WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrap("get menu item", err)
	}
	return it, nil
}

func (r *MenuRepo) UpdateItem(ctx context.Context, it *entity.MenuItem) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET category_id = $2, subcategory_id = $3, name = $4, description = $5, price = $6,
			image_url = $7, available = $8, position = $9, updated_at = $10
		WHERE id = $1`,
		it.ID, it.CategoryID, it.SubcategoryID, it.Name, it.Description, it.Price,
		it.ImageURL, it.Available, it.Position, it.UpdatedAt,
	)
	if err != nil {
		return wrap("update menu item", err)
	}
	return mustAffect(tag)
}

func (r *MenuRepo) DeleteItem(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return wrap("delete menu item", err)
	}
	return mustAffect(tag)
}

func (r *MenuRepo) ListItems(ctx context.Context, businessID int64) ([]*entity.MenuItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+` FROM menu_items WHERE business_id = $1 ORDER BY position, id`, businessID)
	if err != nil {
		return nil, wrap("list menu items", err)
	}
	defer rows.Close()
	var list []*entity.MenuItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, wrap("scan menu item", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func scanItem(row pgx.Row) (*entity.MenuItem, error) {
	var it entity.MenuItem
	err := row.Scan(&it.ID, &it.BusinessID, &it.CategoryID, &it.SubcategoryID, &it.Name, &it.Description,
		&it.Price, &it.ImageURL, &it.Available, &it.Position, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
