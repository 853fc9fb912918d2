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

// MenuUseCase menú de tres niveles de un negocio. Toda mutación exige CanManageBusiness
// sobre el negocio de la ruta, y la fila tocada debe pertenecer a ese negocio (si no, ErrNotFound).
type MenuUseCase struct {
	menu       repository.MenuRepository
	businesses repository.BusinessRepository
	tx         TxRunner
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(menu repository.MenuRepository, businesses repository.BusinessRepository, tx TxRunner) *MenuUseCase {
	return &MenuUseCase{menu: menu, businesses: businesses, tx: tx}
}

// GetMenu arma el árbol categoría → subcategoría → ítem ordenado por posición.
func (uc *MenuUseCase) GetMenu(ctx context.Context, sess *entity.Session, businessID int64) (*dto.MenuResponse, error) {
	b, err := uc.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if b == nil || (!b.IsActive && !access.CanManageBusiness(businessID, sess)) {
		return nil, domain.ErrNotFound
	}
	cats, err := uc.menu.ListCategories(ctx, businessID)
	if err != nil {
		return nil, err
	}
	subs, err := uc.menu.ListSubcategories(ctx, businessID)
	if err != nil {
		return nil, err
	}
	items, err := uc.menu.ListItems(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return buildMenu(businessID, cats, subs, items), nil
}

// ── Categorías ───────────────────────────────────────────────────────────────

func (uc *MenuUseCase) CreateCategory(ctx context.Context, sess *entity.Session, businessID int64, in dto.MenuCategoryRequest) (*dto.MenuCategoryResponse, error) {
	if err := access.RequireManage(businessID, sess); err != nil {
		return nil, err
	}
	name, err := requiredName(in.Name)
	if err != nil {
		return nil, err
	}
	c := &entity.MenuCategory{BusinessID: businessID, Name: name, Position: in.Position, CreatedAt: time.Now()}
	if err := uc.tx.RunAs(ctx, sess, func(r Repos) error { return r.Menu.CreateCategory(ctx, c) }); err != nil {
		return nil, err
	}
	return &dto.MenuCategoryResponse{ID: c.ID, Name: c.Name, Position: c.Position,
		Items: []dto.MenuItemResponse{}, Subcategories: []dto.MenuSubcategoryResponse{}}, nil
}

func (uc *MenuUseCase) UpdateCategory(ctx context.Context, sess *entity.Session, businessID, categoryID int64, in dto.MenuCategoryRequest) (*dto.MenuCategoryResponse, error) {
	if err := access.RequireManage(businessID, sess); err != nil {
		return nil, err
	}
	c, err := uc.ownedCategory(ctx, businessID, categoryID)
	if err != nil {
		return nil, err
	}
	if c.Name, err = requiredName(in.Name); err != nil {
		return nil, err
	}
	c.Position = in.Position
	if err := uc.tx.RunAs(ctx, sess, func(r Repos) error { return r.Menu.UpdateCategory(ctx, c) }); err != nil {
		return nil, err
	}
	return &dto.MenuCategoryResponse{ID: c.ID, Name: c.Name, Position: c.Position}, nil
}

// DeleteCategory borra la categoría con sus subcategorías e ítems.
func (uc *MenuUseCase) DeleteCategory(ctx context.Context, sess *entity.Session, businessID, categoryID int64) error {
	if err := access.RequireManage(businessID, sess); err != nil {
		return err
	}
	if _, err := uc.ownedCategory(ctx, businessID, categoryID); err != nil {
		return err
	}
	return uc.tx.RunAs(ctx, sess, func(r Repos) error { return r.Menu.DeleteCategory(ctx, categoryID) })
}

// ── Subcategorías ────────────────────────────────────────────────────────────

func (uc *MenuUseCase) CreateSubcategory(ctx context.Context, sess *entity.Session, businessID int64, in dto.MenuSubcategoryRequest) (*dto.MenuSubcategoryResponse, error) {
	if err := access.RequireManage(businessID, sess); err != nil {
		return nil, err
	}
	if _, err := uc.ownedCategory(ctx, businessID, in.CategoryID); err != nil {
		return nil, err
	}
	name, err := requiredName(in.Name)
	if err != nil {
		return nil, err
	}
	s := &entity.MenuSubcategory{CategoryID: in.CategoryID, Name: name, Position: in.Position, CreatedAt: time.Now()}
	if err := uc.tx.RunAs(ctx, sess, func(r Repos) error { return r.Menu.CreateSubcategory(ctx, s) }); err != nil {
		return nil, err
	}
	return &dto.MenuSubcategoryResponse{ID: s.ID, Name: s.Name, Position: s.Position, Items: []dto.MenuItemResponse{}}, nil
}

// DeleteSubcategory sus ítems pasan a colgar directamente de la categoría.
func (uc *MenuUseCase) DeleteSubcategory(ctx context.Context, sess *entity.Session, businessID, subcategoryID int64) error {
	if err := access.RequireManage(businessID, sess); err != nil {
		return err
	}
	if _, err := uc.ownedSubcategory(ctx, businessID, subcategoryID); err != nil {
		return err
	}
	return uc.tx.RunAs(ctx, sess, func(r Repos) error { return r.Menu.DeleteSubcategory(ctx, subcategoryID) })
}

// ── Ítems ────────────────────────────────────────────────────────────────────

func (uc *MenuUseCase) CreateItem(ctx context.Context, sess *entity.Session, businessID int64, in dto.MenuItemRequest) (*dto.MenuItemResponse, error) {
	if err := access.RequireManage(businessID, sess); err != nil {
		return nil, err
	}
	name, err := requiredName(in.Name)
	if err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if err := uc.checkPlacement(ctx, businessID, in.CategoryID, in.SubcategoryID); err != nil {
		return nil, err
	}
	available := true
	if in.Available != nil {
		available = *in.Available
	}
	now := time.Now()
	it := &entity.MenuItem{
		BusinessID:    businessID,
		CategoryID:    in.CategoryID,
		SubcategoryID: in.SubcategoryID,
		Name:          name,
		Description:   in.Description,
		Price:         in.Price,
		ImageURL:      strings.TrimSpace(in.ImageURL),
		Available:     available,
		Position:      in.Position,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.tx.RunAs(ctx, sess, func(r Repos) error { return r.Menu.CreateItem(ctx, it) }); err != nil {
		return nil, err
	}
	res := toMenuItemResponse(it)
	return &res, nil
}

func (uc *MenuUseCase) UpdateItem(ctx context.Context, sess *entity.Session, businessID, itemID int64, in dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if err := access.RequireManage(businessID, sess); err != nil {
		return nil, err
	}
	it, err := uc.menu.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it == nil || it.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	if in.CategoryID != nil {
		it.CategoryID = *in.CategoryID
		it.SubcategoryID = nil
	}
	if in.SubcategoryID != nil {
		it.SubcategoryID = in.SubcategoryID
	}
	if in.Name != nil {
		if it.Name, err = requiredName(*in.Name); err != nil {
			return nil, err
		}
	}
	if in.Description != nil {
		it.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
		}
		it.Price = *in.Price
	}
	if in.ImageURL != nil {
		it.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if in.Available != nil {
		it.Available = *in.Available
	}
	if in.Position != nil {
		it.Position = *in.Position
	}
	if err := uc.checkPlacement(ctx, businessID, it.CategoryID, it.SubcategoryID); err != nil {
		return nil, err
	}
	it.UpdatedAt = time.Now()
	if err := uc.tx.RunAs(ctx, sess, func(r Repos) error { return r.Menu.UpdateItem(ctx, it) }); err != nil {
		return nil, err
	}
	res := toMenuItemResponse(it)
	return &res, nil
}

func (uc *MenuUseCase) DeleteItem(ctx context.Context, sess *entity.Session, businessID, itemID int64) error {
	if err := access.RequireManage(businessID, sess); err != nil {
		return err
	}
	it, err := uc.menu.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if it == nil || it.BusinessID != businessID {
		return domain.ErrNotFound
	}
	return uc.tx.RunAs(ctx, sess, func(r Repos) error { return r.Menu.DeleteItem(ctx, itemID) })
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (uc *MenuUseCase) ownedCategory(ctx context.Context, businessID, categoryID int64) (*entity.MenuCategory, error) {
	c, err := uc.menu.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if c == nil || c.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (uc *MenuUseCase) ownedSubcategory(ctx context.Context, businessID, subcategoryID int64) (*entity.MenuSubcategory, error) {
	s, err := uc.menu.GetSubcategory(ctx, subcategoryID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.ownedCategory(ctx, businessID, s.CategoryID); err != nil {
		return nil, err
	}
	return s, nil
}

// checkPlacement la categoría es del negocio y la subcategoría, si viene, cuelga de esa categoría.
func (uc *MenuUseCase) checkPlacement(ctx context.Context, businessID, categoryID int64, subcategoryID *int64) error {
	if _, err := uc.ownedCategory(ctx, businessID, categoryID); err != nil {
		return err
	}
	if subcategoryID == nil {
		return nil
	}
	s, err := uc.ownedSubcategory(ctx, businessID, *subcategoryID)
	if err != nil {
		return err
	}
	if s.CategoryID != categoryID {
		return fmt.Errorf("%w: la subcategoría no pertenece a la categoría", domain.ErrInvalidInput)
	}
	return nil
}

func requiredName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	return name, nil
}

// buildMenu las listas ya vienen ordenadas por posición desde el repositorio.
func buildMenu(businessID int64, cats []*entity.MenuCategory, subs []*entity.MenuSubcategory, items []*entity.MenuItem) *dto.MenuResponse {
	out := &dto.MenuResponse{BusinessID: businessID, Categories: make([]dto.MenuCategoryResponse, 0, len(cats))}
	catIdx := make(map[int64]int, len(cats))
	for _, c := range cats {
		catIdx[c.ID] = len(out.Categories)
		out.Categories = append(out.Categories, dto.MenuCategoryResponse{
			ID: c.ID, Name: c.Name, Position: c.Position,
			Items: []dto.MenuItemResponse{}, Subcategories: []dto.MenuSubcategoryResponse{},
		})
	}
	type subPos struct{ cat, sub int }
	subIdx := make(map[int64]subPos, len(subs))
	for _, s := range subs {
		ci, ok := catIdx[s.CategoryID]
		if !ok {
			continue
		}
		cat := &out.Categories[ci]
		subIdx[s.ID] = subPos{cat: ci, sub: len(cat.Subcategories)}
		cat.Subcategories = append(cat.Subcategories, dto.MenuSubcategoryResponse{
			ID: s.ID, Name: s.Name, Position: s.Position, Items: []dto.MenuItemResponse{},
		})
	}
	for _, it := range items {
		if it.SubcategoryID != nil {
			if p, ok := subIdx[*it.SubcategoryID]; ok {
				sub := &out.Categories[p.cat].Subcategories[p.sub]
				sub.Items = append(sub.Items, toMenuItemResponse(it))
				continue
			}
		}
		if ci, ok := catIdx[it.CategoryID]; ok {
			out.Categories[ci].Items = append(out.Categories[ci].Items, toMenuItemResponse(it))
		}
	}
	return out
}

func toMenuItemResponse(it *entity.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:            it.ID,
		CategoryID:    it.CategoryID,
		SubcategoryID: it.SubcategoryID,
		Name:          it.Name,
		Description:   it.Description,
		Price:         it.Price,
		ImageURL:      it.ImageURL,
		Available:     it.Available,
		Position:      it.Position,
	}
}
