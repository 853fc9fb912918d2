package usecase

import (
	"context"

	"github.com/jhoicas/Directorio-api/internal/application/auth"
	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/access"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID. Solo el propio usuario o un admin.
func (uc *UserUseCase) GetByID(ctx context.Context, sess *entity.Session, id int64) (*dto.UserResponse, error) {
	if sess == nil {
		return nil, domain.ErrUnauthorized
	}
	if !access.IsAdmin(sess) && sess.ID != id {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return auth.ToUserResponse(user), nil
}

// SetActive activa o desactiva una cuenta (solo admin). Una cuenta desactivada recibe
// ErrAccountInactive en su siguiente login.
func (uc *UserUseCase) SetActive(ctx context.Context, sess *entity.Session, id int64, active bool) (*dto.UserResponse, error) {
	if err := access.RequireAdmin(sess); err != nil {
		return nil, err
	}
	if err := uc.repo.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return auth.ToUserResponse(user), nil
}
