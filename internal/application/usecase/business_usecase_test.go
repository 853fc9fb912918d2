package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
)

func TestBusinessCreate_VinculaAlUsuario(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	out, err := f.business.Create(ctx, ana, dto.CreateBusinessRequest{
		Name: "Heladería Ñapa", City: "Pasto", CategoryID: ptr(int64(1)), PrimaryColor: "#FFAA00",
		Social: dto.SocialLinksDTO{Instagram: "@napa"},
	})
	require.NoError(t, err)
	assert.Equal(t, "heladeria-napa", out.Username)
	assert.True(t, out.IsActive)
	assert.Equal(t, "@napa", out.Social.Instagram)

	u, err := f.users.GetByID(ctx, ana.ID)
	require.NoError(t, err)
	require.NotNil(t, u.BusinessID)
	assert.Equal(t, out.ID, *u.BusinessID)
}

func TestBusinessCreate_Reglas(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.business.Create(ctx, nil, dto.CreateBusinessRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.business.Create(ctx, owner1, dto.CreateBusinessRequest{Name: "Segundo"})
	assert.ErrorIs(t, err, domain.ErrConflict, "un dueño no crea un segundo negocio")

	_, err = f.business.Create(ctx, ana, dto.CreateBusinessRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.business.Create(ctx, ana, dto.CreateBusinessRequest{Name: "Color", PrimaryColor: "red"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.business.Create(ctx, ana, dto.CreateBusinessRequest{Name: "Cat", CategoryID: ptr(int64(404))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.business.Create(ctx, ana, dto.CreateBusinessRequest{Name: "Café Central"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestBusinessCreate_SesionDesactualizadaNoCreaSegundoNegocio(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	// Dos pestañas de ana abiertas antes de crear el negocio: ninguna sesión tiene business_id.
	tab1 := *ana
	tab2 := *ana

	first, err := f.business.Create(ctx, &tab1, dto.CreateBusinessRequest{Name: "Primero"})
	require.NoError(t, err)

	_, err = f.business.Create(ctx, &tab2, dto.CreateBusinessRequest{Name: "Segundo"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	u, err := f.users.GetByID(ctx, ana.ID)
	require.NoError(t, err)
	require.NotNil(t, u.BusinessID)
	assert.Equal(t, first.ID, *u.BusinessID, "el vínculo original no se pisa")

	second, err := f.businesses.GetByUsername(ctx, "segundo")
	require.NoError(t, err)
	assert.Nil(t, second, "no queda un negocio huérfano")
}

func TestLinkBusiness_NoPisaVinculoExistente(t *testing.T) {
	f := newFixture()
	err := f.users.LinkBusiness(context.Background(), owner1.ID, 500)
	assert.ErrorIs(t, err, domain.ErrConflict)

	u, err := f.users.GetByID(context.Background(), owner1.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), *u.BusinessID)
}

func TestBusinessCreate_AdminNoSeVincula(t *testing.T) {
	f := newFixture()
	out, err := f.business.Create(context.Background(), admin, dto.CreateBusinessRequest{Name: "Del Admin"})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
}

func TestBusinessUpdate_SoloQuienPuedeAdministrar(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	name := "Café Central Renovado"

	writes := f.businesses.Writes
	_, err := f.business.Update(ctx, owner2, 42, dto.UpdateBusinessRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.business.Update(ctx, ana, 42, dto.UpdateBusinessRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.business.Update(ctx, nil, 42, dto.UpdateBusinessRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, writes, f.businesses.Writes, "un rechazo no escribe nada")

	out, err := f.business.Update(ctx, owner1, 42, dto.UpdateBusinessRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, out.Name)

	_, err = f.business.Update(ctx, owner1, 42, dto.UpdateBusinessRequest{IsActive: ptr(false)})
	assert.ErrorIs(t, err, domain.ErrForbidden, "is_active lo cambia solo el admin")

	out, err = f.business.Update(ctx, admin, 42, dto.UpdateBusinessRequest{IsActive: ptr(false)})
	require.NoError(t, err)
	assert.False(t, out.IsActive)

	_, err = f.business.Update(ctx, admin, 5000, dto.UpdateBusinessRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBusinessDelete_SoloAdmin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	assert.ErrorIs(t, f.business.Delete(ctx, owner1, 42), domain.ErrForbidden)
	require.NoError(t, f.business.Delete(ctx, admin, 42))
	_, err := f.business.Get(ctx, nil, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBusinessGet_Inactivos(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.business.Get(ctx, nil, 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	out, err := f.business.Get(ctx, admin, 7)
	require.NoError(t, err)
	assert.Equal(t, "cerrado", out.Username)

	out, err = f.business.GetByUsername(ctx, nil, " Cafe-Central ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), out.ID)
}

func TestBusinessList(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	out, err := f.business.List(ctx, nil, dto.BusinessListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Page.Total)
	assert.Equal(t, 20, out.Page.Limit)

	out, err = f.business.List(ctx, admin, dto.BusinessListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Page.Total)

	out, err = f.business.List(ctx, nil, dto.BusinessListRequest{City: "bogotá"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "panaderia", out.Items[0].Username)

	out, err = f.business.List(ctx, nil, dto.BusinessListRequest{Query: "café", Page: dto.PageRequest{Limit: 500}})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, 100, out.Page.Limit)
}

func TestCategory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.category.Create(ctx, owner1, dto.CategoryRequest{Name: "Bares"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := f.category.Create(ctx, admin, dto.CategoryRequest{Name: "Bares y Pubs"})
	require.NoError(t, err)
	assert.Equal(t, "bares-y-pubs", out.Slug)

	_, err = f.category.Create(ctx, admin, dto.CategoryRequest{Name: "Cafés"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := f.category.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestUserSetActive(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.userUC.SetActive(ctx, owner1, 2, false)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := f.userUC.SetActive(ctx, admin, 2, false)
	require.NoError(t, err)
	assert.False(t, out.IsActive)

	_, err = f.userUC.SetActive(ctx, admin, 404, false)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.userUC.GetByID(ctx, ana, 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	me, err := f.userUC.GetByID(ctx, owner1, 1)
	require.NoError(t, err)
	assert.Equal(t, "owner", me.Role)
}
