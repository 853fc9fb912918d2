package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Directorio-api/internal/application/session"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/access"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository/repofake"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/sessionstore"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func hash(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func bizID(v int64) *int64 { return &v }

type fixture struct {
	users   *repofake.Users
	store   *sessionstore.MemoryStore
	manager *session.Manager
	slot    *session.Slot
}

func newFixture(t *testing.T, cfg session.Config) *fixture {
	t.Helper()
	users := repofake.NewUsers(
		&entity.User{ID: 1, Username: "owner1", Email: "owner1@dir.co", FullName: "Owner Uno",
			PasswordHash: hash(t, "pw"), Role: entity.RoleOwner, BusinessID: bizID(42), IsActive: true},
		&entity.User{ID: 2, Username: "bob", Email: "bob@dir.co", FullName: "Bob",
			PasswordHash: hash(t, "x"), IsActive: false},
		&entity.User{ID: 3, Username: "ana", Email: "ana@dir.co", FullName: "Ana",
			PasswordHash: hash(t, "secreto"), IsActive: true},
	)
	store := sessionstore.NewMemoryStore()
	m := session.NewManager(users, store, cfg, logger.Nop())
	return &fixture{users: users, store: store, manager: m, slot: m.Slot("tab-1")}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_OwnerEscenario(t *testing.T) {
	f := newFixture(t, session.Config{})
	ctx := context.Background()

	sess, err := f.manager.Login(ctx, f.slot, "owner1", "pw")
	require.NoError(t, err)
	require.NotNil(t, sess.BusinessID)
	assert.Equal(t, &entity.Session{
		ID: 1, Username: "owner1", Email: "owner1@dir.co", FullName: "Owner Uno",
		Role: entity.RoleOwner, BusinessID: bizID(42), IsActive: true,
	}, sess)

	loaded, err := f.manager.GetSession(ctx, f.slot)
	require.NoError(t, err)
	assert.Equal(t, sess, loaded, "la sesión leída debe ser igual a la devuelta por login")

	assert.True(t, access.CanManageBusiness(42, loaded))
	assert.False(t, access.CanManageBusiness(99, loaded))
}

func TestLogin_RolAusenteEsUser(t *testing.T) {
	f := newFixture(t, session.Config{})
	sess, err := f.manager.Login(context.Background(), f.slot, "ana", "secreto")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, sess.Role)
	assert.Nil(t, sess.BusinessID)
}

func TestLogin_ContrasenaIncorrecta_NoTocaSesionPrevia(t *testing.T) {
	f := newFixture(t, session.Config{})
	ctx := context.Background()
	prev, err := f.manager.Login(ctx, f.slot, "ana", "secreto")
	require.NoError(t, err)

	_, err = f.manager.Login(ctx, f.slot, "owner1", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	loaded, err := f.manager.GetSession(ctx, f.slot)
	require.NoError(t, err)
	assert.Equal(t, prev, loaded, "un login fallido no sobrescribe la sesión anterior")
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	f := newFixture(t, session.Config{})
	_, err := f.manager.Login(context.Background(), f.slot, "nouser", "anything")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	loaded, err := f.manager.GetSession(context.Background(), f.slot)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	f := newFixture(t, session.Config{})
	_, err := f.manager.Login(context.Background(), f.slot, "bob", "x")
	assert.ErrorIs(t, err, domain.ErrAccountInactive)

	loaded, err := f.manager.GetSession(context.Background(), f.slot)
	require.NoError(t, err)
	assert.Nil(t, loaded, "una cuenta inactiva no deja sesión")
}

func TestLogin_InactivaConClaveMala_EsCredencialInvalida(t *testing.T) {
	f := newFixture(t, session.Config{})
	_, err := f.manager.Login(context.Background(), f.slot, "bob", "wrongpw")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_ReloginSobrescribe(t *testing.T) {
	f := newFixture(t, session.Config{})
	ctx := context.Background()
	_, err := f.manager.Login(ctx, f.slot, "owner1", "pw")
	require.NoError(t, err)
	second, err := f.manager.Login(ctx, f.slot, "ana", "secreto")
	require.NoError(t, err)

	loaded, err := f.manager.GetSession(ctx, f.slot)
	require.NoError(t, err)
	assert.Equal(t, second, loaded)
}

func TestLogin_AlmacenCaido(t *testing.T) {
	f := newFixture(t, session.Config{})
	f.users.Err = errors.New("dial tcp: connection refused")

	_, err := f.manager.Login(context.Background(), f.slot, "owner1", "pw")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

type slowUsers struct {
	*repofake.Users
}

func (s slowUsers) GetByUsername(ctx context.Context, _ string) (*entity.User, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestLogin_TimeoutDeConsulta(t *testing.T) {
	store := sessionstore.NewMemoryStore()
	m := session.NewManager(slowUsers{repofake.NewUsers()}, store,
		session.Config{LookupTimeout: 20 * time.Millisecond}, logger.Nop())

	start := time.Now()
	_, err := m.Login(context.Background(), m.Slot("x"), "owner1", "pw")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestLogin_LlamadorCancelado_NoEscribe(t *testing.T) {
	f := newFixture(t, session.Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.manager.Login(ctx, f.slot, "owner1", "pw")
	assert.Error(t, err)

	loaded, err := f.manager.GetSession(context.Background(), f.slot)
	require.NoError(t, err)
	assert.Nil(t, loaded, "tras cancelar no se escribe la sesión")
}

// ──────────────────────────────────────────────────────────────────────────────
// Admin
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginAdmin(t *testing.T) {
	f := newFixture(t, session.Config{Admin: session.AdminCredential{Username: "root", PasswordHash: hash(t, "r00t!")}})
	ctx := context.Background()

	_, err := f.manager.LoginAdmin(ctx, f.slot, "root", "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = f.manager.LoginAdmin(ctx, f.slot, "owner1", "r00t!")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	sess, err := f.manager.LoginAdmin(ctx, f.slot, "root", "r00t!")
	require.NoError(t, err)
	assert.True(t, access.IsAdmin(sess))
	assert.Nil(t, sess.BusinessID)

	loaded, err := f.manager.GetSession(ctx, f.slot)
	require.NoError(t, err)
	assert.Equal(t, sess, loaded)
	assert.True(t, access.CanManageBusiness(12345, loaded))
}

func TestLoginAdmin_SinConfigurar(t *testing.T) {
	f := newFixture(t, session.Config{})
	_, err := f.manager.LoginAdmin(context.Background(), f.slot, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetSession / Logout / Refresh
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_SiempreDejaSinSesion(t *testing.T) {
	f := newFixture(t, session.Config{})
	ctx := context.Background()

	require.NoError(t, f.manager.Logout(ctx, f.slot), "logout sin sesión es idempotente")

	_, err := f.manager.Login(ctx, f.slot, "owner1", "pw")
	require.NoError(t, err)
	require.NoError(t, f.manager.Logout(ctx, f.slot))
	require.NoError(t, f.manager.Logout(ctx, f.slot))

	loaded, err := f.manager.GetSession(ctx, f.slot)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestGetSession_Corrupta(t *testing.T) {
	f := newFixture(t, session.Config{})
	for _, raw := range []string{`{"id":1,"username":"own`, `not json`, `[]`, `{"id":"uno"}`} {
		require.NoError(t, f.store.Put(context.Background(), f.slot.Key(), []byte(raw), 0))
		loaded, err := f.manager.GetSession(context.Background(), f.slot)
		assert.NoError(t, err, "dato corrupto %q no debe fallar", raw)
		assert.Nil(t, loaded, "dato corrupto %q equivale a sin sesión", raw)
	}
}

func TestSlots_Independientes(t *testing.T) {
	f := newFixture(t, session.Config{})
	ctx := context.Background()
	other := f.manager.Slot("tab-2")

	_, err := f.manager.Login(ctx, f.slot, "owner1", "pw")
	require.NoError(t, err)

	loaded, err := f.manager.GetSession(ctx, other)
	require.NoError(t, err)
	assert.Nil(t, loaded)
	assert.Equal(t, "session:tab-1", f.slot.Key())
}

func TestRefresh_RecogeCambios(t *testing.T) {
	f := newFixture(t, session.Config{})
	ctx := context.Background()
	_, err := f.manager.Login(ctx, f.slot, "ana", "secreto")
	require.NoError(t, err)

	require.NoError(t, f.users.LinkBusiness(ctx, 3, 77))

	sess, err := f.manager.Refresh(ctx, f.slot, 3)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, entity.RoleOwner, sess.Role)
	assert.Equal(t, int64(77), *sess.BusinessID)

	loaded, err := f.manager.GetSession(ctx, f.slot)
	require.NoError(t, err)
	assert.Equal(t, sess, loaded)
}

func TestRefresh_FilaBorrada_NoTocaSesion(t *testing.T) {
	f := newFixture(t, session.Config{})
	ctx := context.Background()
	prev, err := f.manager.Login(ctx, f.slot, "ana", "secreto")
	require.NoError(t, err)

	f.users.Remove(3)
	sess, err := f.manager.Refresh(ctx, f.slot, 3)
	require.NoError(t, err)
	assert.Nil(t, sess)

	loaded, err := f.manager.GetSession(ctx, f.slot)
	require.NoError(t, err)
	assert.Equal(t, prev, loaded)
}

func TestSession_TTL(t *testing.T) {
	f := newFixture(t, session.Config{TTL: time.Hour})
	_, err := f.manager.Login(context.Background(), f.slot, "owner1", "pw")
	require.NoError(t, err)
	loaded, err := f.manager.GetSession(context.Background(), f.slot)
	require.NoError(t, err)
	assert.NotNil(t, loaded)
}
