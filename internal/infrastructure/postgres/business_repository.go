package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

// Asegura que BusinessRepo implementa repository.BusinessRepository.
var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación del puerto BusinessRepository sobre PostgreSQL.
type BusinessRepo struct {
	db DBTX
}

// NewBusinessRepository construye el adaptador de persistencia para negocios.
func NewBusinessRepository(db DBTX) *BusinessRepo {
	return &BusinessRepo{db: db}
}

const businessColumns = `id, username, name, category_id, address, city, description, phone, email, website,
	primary_color, secondary_color, image_url, social, opening_hours, is_active, created_at, updated_at`

// Create persiste un nuevo negocio. social se guarda como jsonb.
func (r *BusinessRepo) Create(ctx context.Context, b *entity.Business) error {
	query := `
		INSERT INTO businesses (username, name, category_id, address, city, description, phone, email, website,
			primary_color, secondary_color, image_url, social, opening_hours, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`
	err := r.db.QueryRow(ctx, query,
		b.Username, b.Name, b.CategoryID, b.Address, b.City, b.Description, b.Phone, b.Email, b.Website,
		b.PrimaryColor, b.SecondaryColor, b.ImageURL, b.Social, b.OpeningHours, b.IsActive,
		b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
	if err != nil {
		return wrap("insert business", err)
	}
	return nil
}

// GetByID obtiene un negocio por ID.
func (r *BusinessRepo) GetByID(ctx context.Context, id int64) (*entity.Business, error) {
	b, err := scanBusiness(r.db.QueryRow(ctx, `SELECT `+businessColumns+` FROM businesses WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrap("get business", err)
	}
	return b, nil
}

// GetByUsername obtiene un negocio por su slug público.
func (r *BusinessRepo) GetByUsername(ctx context.Context, username string) (*entity.Business, error) {
	b, err := scanBusiness(r.db.QueryRow(ctx, `SELECT `+businessColumns+` FROM businesses WHERE username = $1`, username))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrap("get business by username", err)
	}
	return b, nil
}

// Update actualiza los datos del negocio.
func (r *BusinessRepo) Update(ctx context.Context, b *entity.Business) error {
	query := `
		UPDATE businesses
		SET username = $2, name = $3, category_id = $4, address = $5, city = $6, description = $7,
			phone = $8, email = $9, website = $10, primary_color = $11, secondary_color = $12,
			image_url = $13, social = $14, opening_hours = $15, is_active = $16, updated_at = $17
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		b.ID, b.Username, b.Name, b.CategoryID, b.Address, b.City, b.Description,
		b.Phone, b.Email, b.Website, b.PrimaryColor, b.SecondaryColor,
		b.ImageURL, b.Social, b.OpeningHours, b.IsActive, b.UpdatedAt,
	)
	if err != nil {
		return wrap("update business", err)
	}
	return mustAffect(tag)
}

// Delete elimina el negocio; menú y WiFi caen por ON DELETE CASCADE y el dueño queda sin vínculo.
func (r *BusinessRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return wrap("delete business", err)
	}
	return mustAffect(tag)
}

// List aplica los filtros con ILIKE y devuelve la página junto al total.
func (r *BusinessRepo) List(ctx context.Context, f entity.BusinessFilter) ([]*entity.Business, int, error) {
	where, args := businessWhere(f)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM businesses`+where, args...).Scan(&total); err != nil {
		return nil, 0, wrap("count businesses", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	query := fmt.Sprintf(`SELECT %s FROM businesses%s ORDER BY name, id LIMIT $%d OFFSET $%d`,
		businessColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, limit, f.Offset)...)
	if err != nil {
		return nil, 0, wrap("list businesses", err)
	}
	defer rows.Close()

	var list []*entity.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, 0, wrap("scan business", err)
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrap("list businesses", err)
	}
	return list, total, nil
}

func businessWhere(f entity.BusinessFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if !f.IncludeInactive {
		conds = append(conds, "is_active")
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		add("(name ILIKE $%[1]d OR description ILIKE $%[1]d)", "%"+escapeLike(q)+"%")
	}
	if f.CategoryID != nil {
		add("category_id = $%d", *f.CategoryID)
	}
	if c := strings.TrimSpace(f.City); c != "" {
		add("city ILIKE $%d", escapeLike(c))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

func scanBusiness(row pgx.Row) (*entity.Business, error) {
	var b entity.Business
	err := row.Scan(
		&b.ID, &b.Username, &b.Name, &b.CategoryID, &b.Address, &b.City, &b.Description,
		&b.Phone, &b.Email, &b.Website, &b.PrimaryColor, &b.SecondaryColor, &b.ImageURL,
		&b.Social, &b.OpeningHours, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
