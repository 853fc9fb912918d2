package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Directorio-api/internal/application/auth"
	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/application/session"
	"github.com/jhoicas/Directorio-api/internal/application/usecase"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository/repofake"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/sessionstore"
	apphttp "github.com/jhoicas/Directorio-api/internal/interfaces/http"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testJWTSecret = "test-secret-key-for-unit-tests"

type testApp struct {
	app   *fiber.App
	users *repofake.Users
	store *sessionstore.MemoryStore
}

func mustHash(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func i64(v int64) *int64 { return &v }

// buildTestApp arma la API completa sobre fakes en memoria:
//   - owner1/pw dueño del negocio 42, owner2/pw dueño del 99
//   - ana/secreto123 usuario sin negocio, bob/x inactivo
//   - admin root/r00t configurado por servidor
func buildTestApp(t *testing.T) *testApp {
	t.Helper()
	users := repofake.NewUsers(
		&entity.User{ID: 1, Username: "owner1", Email: "o1@dir.co", FullName: "Owner Uno", PasswordHash: mustHash(t, "pw"),
			Role: entity.RoleOwner, BusinessID: i64(42), IsActive: true},
		&entity.User{ID: 2, Username: "ana", Email: "ana@dir.co", PasswordHash: mustHash(t, "secreto123"),
			Role: entity.RoleUser, IsActive: true},
		&entity.User{ID: 3, Username: "owner2", Email: "o2@dir.co", PasswordHash: mustHash(t, "pw"),
			Role: entity.RoleOwner, BusinessID: i64(99), IsActive: true},
		&entity.User{ID: 4, Username: "bob", Email: "bob@dir.co", PasswordHash: mustHash(t, "x"), IsActive: false},
	)
	businesses := repofake.NewBusinesses(
		&entity.Business{ID: 42, Username: "cafe-central", Name: "Café Central", City: "Medellín", IsActive: true},
		&entity.Business{ID: 99, Username: "panaderia", Name: "Panadería", City: "Bogotá", IsActive: true},
	)
	categories := repofake.NewCategories()
	menu := repofake.NewMenu()
	wifi := repofake.NewWifi()
	store := sessionstore.NewMemoryStore()

	sessions := session.NewManager(users, store, session.Config{
		Admin: session.AdminCredential{Username: "root", PasswordHash: mustHash(t, "r00t")},
	}, logger.Nop())
	tx := usecase.DirectRunner{Repos: usecase.Repos{Users: users, Businesses: businesses, Menu: menu, Wifi: wifi}}

	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     auth.NewAuthUseCase(users, sessions, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: "test"}),
		Sessions:   sessions,
		BusinessUC: usecase.NewBusinessUseCase(businesses, categories, tx),
		CategoryUC: usecase.NewCategoryUseCase(categories),
		MenuUC:     usecase.NewMenuUseCase(menu, businesses, tx),
		WifiUC:     usecase.NewWifiUseCase(wifi, businesses, tx),
		UserUC:     usecase.NewUserUseCase(users),
		JWTSecret:  testJWTSecret,
	})
	return &testApp{app: app, users: users, store: store}
}

// do lanza la petición con body JSON opcional y token opcional.
func (ta *testApp) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// login devuelve el token de una sesión nueva.
func (ta *testApp) login(t *testing.T, path, username, password string) string {
	t.Helper()
	resp := ta.do(t, http.MethodPost, path, "", dto.LoginRequest{Username: username, Password: password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	decode(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}
