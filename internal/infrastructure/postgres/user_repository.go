package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo almacén de credenciales sobre la tabla users.
type UserRepo struct {
	db DBTX
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db DBTX) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, username, email, full_name, password_hash, role, business_id, is_active, created_at, updated_at`

// Create persiste un nuevo usuario y rellena su ID.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (username, email, full_name, password_hash, role, business_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.db.QueryRow(ctx, query,
		u.Username, u.Email, u.FullName, u.PasswordHash, u.Role, u.BusinessID, u.IsActive,
		u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		return wrap("insert user", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getOne(ctx, "get user by id", `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByUsername obtiene exactamente un usuario por username, sin distinguir mayúsculas.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getOne(ctx, "get user by username", `SELECT `+userColumns+` FROM users WHERE lower(username) = lower($1)`, username)
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, "get user by email", `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
}

// LinkBusiness vincula el usuario con su negocio. users.business_id es UNIQUE: un negocio, un dueño.
// Solo enlaza cuentas sin negocio; si ya tenía uno devuelve ErrConflict y no lo pisa.
func (r *UserRepo) LinkBusiness(ctx context.Context, userID, businessID int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET business_id = $2, updated_at = now() WHERE id = $1 AND business_id IS NULL`, userID, businessID)
	if err != nil {
		return wrap("link business", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("link business: %w", domain.ErrConflict)
	}
	return nil
}

// SetActive activa o desactiva la cuenta.
func (r *UserRepo) SetActive(ctx context.Context, userID int64, active bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET is_active = $2, updated_at = now() WHERE id = $1`, userID, active)
	if err != nil {
		return wrap("set user active", err)
	}
	return mustAffect(tag)
}

func (r *UserRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.FullName, &u.PasswordHash, &u.Role, &u.BusinessID, &u.IsActive,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrap(op, err)
	}
	return &u, nil
}

