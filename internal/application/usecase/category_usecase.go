package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/access"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

// CategoryUseCase categorías del directorio (Restaurantes, Cafés, ...).
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List todas las categorías, ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}
	return out, nil
}

// Create solo admin. El slug se deriva del nombre y es único.
func (uc *CategoryUseCase) Create(ctx context.Context, sess *entity.Session, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := access.RequireAdmin(sess); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	slug := entity.Slugify(name)
	if slug == "" {
		return nil, fmt.Errorf("%w: nombre de categoría inválido", domain.ErrInvalidInput)
	}
	c := &entity.Category{Name: name, Slug: slug, CreatedAt: time.Now()}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug}, nil
}
