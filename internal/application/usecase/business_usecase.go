package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/access"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

// BusinessUseCase directorio de negocios. Lecturas públicas; escrituras con CanManageBusiness
// evaluado antes de escribir y la escritura dentro de TxRunner.RunAs.
type BusinessUseCase struct {
	businesses repository.BusinessRepository
	categories repository.CategoryRepository
	tx         TxRunner
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(businesses repository.BusinessRepository, categories repository.CategoryRepository, tx TxRunner) *BusinessUseCase {
	return &BusinessUseCase{businesses: businesses, categories: categories, tx: tx}
}

var errAlreadyOwner = fmt.Errorf("%w: la cuenta ya tiene un negocio", domain.ErrConflict)

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Create registra el negocio del usuario y lo vincula a su cuenta. Quien ya tiene negocio
// recibe ErrConflict; se decide con la fila de users, no con la sesión, que puede estar
// desactualizada. El llamador debe refrescar la sesión para ver el rol owner.
func (uc *BusinessUseCase) Create(ctx context.Context, sess *entity.Session, in dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	if sess == nil {
		return nil, domain.ErrUnauthorized
	}
	if !access.IsAdmin(sess) && sess.BusinessID != nil {
		return nil, errAlreadyOwner
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	username := in.Username
	if strings.TrimSpace(username) == "" {
		username = name
	}
	username = entity.Slugify(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username inválido", domain.ErrInvalidInput)
	}
	if err := validateColors(in.PrimaryColor, in.SecondaryColor); err != nil {
		return nil, err
	}
	if err := uc.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	b := &entity.Business{
		Username:       username,
		Name:           name,
		CategoryID:     in.CategoryID,
		Address:        strings.TrimSpace(in.Address),
		City:           strings.TrimSpace(in.City),
		Description:    in.Description,
		Phone:          strings.TrimSpace(in.Phone),
		Email:          strings.TrimSpace(in.Email),
		Website:        strings.TrimSpace(in.Website),
		PrimaryColor:   in.PrimaryColor,
		SecondaryColor: in.SecondaryColor,
		ImageURL:       strings.TrimSpace(in.ImageURL),
		Social:         entity.SocialLinks(in.Social),
		OpeningHours:   in.OpeningHours,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	err := uc.tx.RunAs(ctx, sess, func(r Repos) error {
		if access.IsAdmin(sess) {
			return r.Businesses.Create(ctx, b)
		}
		user, err := r.Users.GetByID(ctx, sess.ID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUnauthorized
		}
		if user.BusinessID != nil {
			return errAlreadyOwner
		}
		if err := r.Businesses.Create(ctx, b); err != nil {
			return err
		}
		return r.Users.LinkBusiness(ctx, sess.ID, b.ID)
	})
	if err != nil {
		return nil, err
	}
	return ToBusinessResponse(b), nil
}

// Update modifica el negocio si la sesión puede administrarlo. Solo un admin cambia is_active.
func (uc *BusinessUseCase) Update(ctx context.Context, sess *entity.Session, id int64, in dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	if err := access.RequireManage(id, sess); err != nil {
		return nil, err
	}
	if in.IsActive != nil && !access.IsAdmin(sess) {
		return nil, domain.ErrForbidden
	}
	b, err := uc.businesses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}

	if in.Username != nil {
		b.Username = entity.Slugify(*in.Username)
		if b.Username == "" {
			return nil, fmt.Errorf("%w: username inválido", domain.ErrInvalidInput)
		}
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
		}
		b.Name = strings.TrimSpace(*in.Name)
	}
	if in.CategoryID != nil {
		if err := uc.checkCategory(ctx, in.CategoryID); err != nil {
			return nil, err
		}
		b.CategoryID = in.CategoryID
	}
	setString(&b.Address, in.Address)
	setString(&b.City, in.City)
	setString(&b.Description, in.Description)
	setString(&b.Phone, in.Phone)
	setString(&b.Email, in.Email)
	setString(&b.Website, in.Website)
	setString(&b.PrimaryColor, in.PrimaryColor)
	setString(&b.SecondaryColor, in.SecondaryColor)
	setString(&b.ImageURL, in.ImageURL)
	setString(&b.OpeningHours, in.OpeningHours)
	if in.Social != nil {
		b.Social = entity.SocialLinks(*in.Social)
	}
	if in.IsActive != nil {
		b.IsActive = *in.IsActive
	}
	if err := validateColors(b.PrimaryColor, b.SecondaryColor); err != nil {
		return nil, err
	}
	b.UpdatedAt = time.Now()

	if err := uc.tx.RunAs(ctx, sess, func(r Repos) error {
		return r.Businesses.Update(ctx, b)
	}); err != nil {
		return nil, err
	}
	return ToBusinessResponse(b), nil
}

// Delete elimina un negocio (solo admin). Menú y redes WiFi se borran en cascada.
func (uc *BusinessUseCase) Delete(ctx context.Context, sess *entity.Session, id int64) error {
	if err := access.RequireAdmin(sess); err != nil {
		return err
	}
	return uc.tx.RunAs(ctx, sess, func(r Repos) error {
		return r.Businesses.Delete(ctx, id)
	})
}

// Get devuelve un negocio. Los inactivos solo los ve quien puede administrarlos.
func (uc *BusinessUseCase) Get(ctx context.Context, sess *entity.Session, id int64) (*dto.BusinessResponse, error) {
	b, err := uc.businesses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return visible(b, sess)
}

// GetByUsername perfil público por slug.
func (uc *BusinessUseCase) GetByUsername(ctx context.Context, sess *entity.Session, username string) (*dto.BusinessResponse, error) {
	b, err := uc.businesses.GetByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		return nil, err
	}
	return visible(b, sess)
}

// List listado paginado con filtros. Solo el admin ve negocios inactivos.
func (uc *BusinessUseCase) List(ctx context.Context, sess *entity.Session, in dto.BusinessListRequest) (*dto.BusinessListResponse, error) {
	in.Page.DefaultPage()
	list, total, err := uc.businesses.List(ctx, entity.BusinessFilter{
		Query:           strings.TrimSpace(in.Query),
		CategoryID:      in.CategoryID,
		City:            strings.TrimSpace(in.City),
		IncludeInactive: access.IsAdmin(sess),
		Limit:           in.Page.Limit,
		Offset:          in.Page.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.BusinessResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *ToBusinessResponse(b))
	}
	return &dto.BusinessListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Page.Limit, Offset: in.Page.Offset, Total: total},
	}, nil
}

func (uc *BusinessUseCase) checkCategory(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	c, err := uc.categories.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: categoría %d no existe", domain.ErrInvalidInput, *id)
	}
	return nil
}

func visible(b *entity.Business, sess *entity.Session) (*dto.BusinessResponse, error) {
	if b == nil || (!b.IsActive && !access.CanManageBusiness(b.ID, sess)) {
		return nil, domain.ErrNotFound
	}
	return ToBusinessResponse(b), nil
}

func validateColors(colors ...string) error {
	for _, c := range colors {
		if c != "" && !hexColorRe.MatchString(c) {
			return fmt.Errorf("%w: color %q debe ser #RRGGBB", domain.ErrInvalidInput, c)
		}
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

// ToBusinessResponse convierte la entidad en DTO.
func ToBusinessResponse(b *entity.Business) *dto.BusinessResponse {
	if b == nil {
		return nil
	}
	return &dto.BusinessResponse{
		ID:             b.ID,
		Username:       b.Username,
		Name:           b.Name,
		CategoryID:     b.CategoryID,
		Address:        b.Address,
		City:           b.City,
		Description:    b.Description,
		Phone:          b.Phone,
		Email:          b.Email,
		Website:        b.Website,
		PrimaryColor:   b.PrimaryColor,
		SecondaryColor: b.SecondaryColor,
		ImageURL:       b.ImageURL,
		Social:         dto.SocialLinksDTO(b.Social),
		OpeningHours:   b.OpeningHours,
		IsActive:       b.IsActive,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
