package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Directorio-api/internal/application/auth"
	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/application/session"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/access"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository/repofake"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/sessionstore"
	"github.com/jhoicas/Directorio-api/pkg/jwt"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

const secret = "auth-test-secret"

func newAuth(t *testing.T) (*auth.AuthUseCase, *session.Manager, *repofake.Users) {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte("r00t-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	users := repofake.NewUsers()
	m := session.NewManager(users, sessionstore.NewMemoryStore(),
		session.Config{Admin: session.AdminCredential{Username: "root", PasswordHash: string(h)}}, logger.Nop())
	uc := auth.NewAuthUseCase(users, m, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"})
	return uc, m, users
}

func TestRegisterUser(t *testing.T) {
	uc, _, users := newAuth(t)
	ctx := context.Background()

	out, err := uc.RegisterUser(ctx, dto.RegisterRequest{
		Username: "  Cafe.Central ", Email: "cafe@dir.co", Password: "suficiente",
	})
	require.NoError(t, err)
	assert.Equal(t, "cafe.central", out.Username)
	assert.Equal(t, "cafe.central", out.FullName)
	assert.Equal(t, entity.RoleUser, out.Role)
	assert.True(t, out.IsActive)
	assert.Nil(t, out.BusinessID)

	stored, err := users.GetByUsername(ctx, "cafe.central")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "suficiente", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("suficiente")))
}

func TestLogin_UsernameComoSeRegistro(t *testing.T) {
	uc, _, _ := newAuth(t)
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: "Alice", Email: "alice@dir.co", Password: "12345678"})
	require.NoError(t, err)

	for _, name := range []string{"Alice", "alice", " ALICE "} {
		out, err := uc.Login(ctx, dto.LoginRequest{Username: name, Password: "12345678"})
		require.NoError(t, err, "login con %q", name)
		assert.Equal(t, "alice", out.Session.Username)
	}

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Username: "ALICE", Email: "otra@dir.co", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegisterUser_Validacion(t *testing.T) {
	uc, _, _ := newAuth(t)
	cases := []dto.RegisterRequest{
		{Username: "ab", Email: "a@b.co", Password: "12345678"},
		{Username: "con espacio", Email: "a@b.co", Password: "12345678"},
		{Username: "valido", Email: "sin-arroba", Password: "12345678"},
		{Username: "valido", Email: "a@b.co", Password: "corta"},
	}
	for _, in := range cases {
		_, err := uc.RegisterUser(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", in)
	}
}

func TestRegisterUser_Duplicado(t *testing.T) {
	uc, _, _ := newAuth(t)
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: "ana", Email: "ana@dir.co", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Username: "ana", Email: "otra@dir.co", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Username: "ana2", Email: "ana@dir.co", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestLogin_EmiteTokenConSlot(t *testing.T) {
	uc, m, _ := newAuth(t)
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: "ana", Email: "ana@dir.co", Password: "12345678"})
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "12345678"})
	require.NoError(t, err)
	assert.Equal(t, access.LabelUser, out.Session.RoleDisplay)

	claims, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	sess, err := m.GetSession(ctx, m.Slot(claims.SessionID))
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "ana", sess.Username)

	require.NoError(t, uc.Logout(ctx, m.Slot(claims.SessionID)))
	sess, err = m.GetSession(ctx, m.Slot(claims.SessionID))
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestLogin_Fallos(t *testing.T) {
	uc, _, _ := newAuth(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLoginAdmin(t *testing.T) {
	uc, _, _ := newAuth(t)
	out, err := uc.LoginAdmin(context.Background(), dto.LoginRequest{Username: "root", Password: "r00t-pass"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Session.Role)
	assert.Equal(t, access.LabelAdmin, out.Session.RoleDisplay)

	_, err = uc.LoginAdmin(context.Background(), dto.LoginRequest{Username: "root", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	uc, m, users := newAuth(t)
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: "ana", Email: "ana@dir.co", Password: "12345678"})
	require.NoError(t, err)
	out, err := uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "12345678"})
	require.NoError(t, err)
	claims, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	slot := m.Slot(claims.SessionID)
	current, err := m.GetSession(ctx, slot)
	require.NoError(t, err)

	require.NoError(t, users.LinkBusiness(ctx, current.ID, 5))
	res, err := uc.Refresh(ctx, slot, current)
	require.NoError(t, err)
	assert.Equal(t, access.LabelOwner, res.RoleDisplay)

	_, err = uc.Refresh(ctx, slot, nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
