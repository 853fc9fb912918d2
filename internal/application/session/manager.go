// Package session autentica usuarios y mantiene su sesión en un slot del Store.
package session

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// AdminCredential administrador de arranque definido por configuración.
type AdminCredential struct {
	Username     string
	PasswordHash string // bcrypt
}

// Config parámetros del Manager.
type Config struct {
	KeyPrefix     string        // prefijo canónico de las claves, por defecto "session"
	TTL           time.Duration // 0 = la sesión no expira
	LookupTimeout time.Duration // tope de cada consulta al almacén de credenciales
	Admin         AdminCredential
}

// Manager valida credenciales y crea, lee, refresca y borra sesiones.
type Manager struct {
	users repository.UserRepository
	store Store
	cfg   Config
	log   *logger.Logger
}

// NewManager construye el Manager.
func NewManager(users repository.UserRepository, store Store, cfg Config, log *logger.Logger) *Manager {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "session"
	}
	if cfg.LookupTimeout <= 0 {
		cfg.LookupTimeout = 5 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{users: users, store: store, cfg: cfg, log: log}
}

// Slot devuelve el slot de la sesión sessionID (clave "<prefijo>:<sessionID>").
func (m *Manager) Slot(sessionID string) *Slot {
	return NewSlot(m.store, m.cfg.KeyPrefix+":"+sessionID, m.cfg.TTL, m.log)
}

// NewSessionID genera un identificador de sesión opaco.
func NewSessionID() string {
	return uuid.NewString()
}

// Login busca exactamente un usuario por username y, si la contraseña coincide y la cuenta
// está activa, guarda la sesión en el slot (sobrescribiendo la anterior) y la devuelve.
// En cualquier fallo el slot no se toca.
func (m *Manager) Login(ctx context.Context, slot *Slot, username, password string) (*entity.Session, error) {
	user, err := m.lookup(ctx, func(c context.Context) (*entity.User, error) {
		return m.users.GetByUsername(c, username)
	})
	if err != nil {
		m.log.Error().Err(err).Str("username", username).Msg("login: almacén de credenciales")
		return nil, err
	}
	if user == nil {
		// Comparación de relleno: el caso "no existe" cuesta lo mismo que "clave errónea".
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		m.log.Info().Str("username", username).Msg("login: usuario no encontrado")
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		m.log.Info().Str("username", username).Msg("login: contraseña incorrecta")
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		m.log.Info().Str("username", username).Msg("login: cuenta inactiva")
		return nil, domain.ErrAccountInactive
	}
	return m.persist(ctx, slot, entity.NewSession(user))
}

// LoginAdmin valida contra la credencial de administrador configurada en el servidor.
func (m *Manager) LoginAdmin(ctx context.Context, slot *Slot, username, password string) (*entity.Session, error) {
	admin := m.cfg.Admin
	if admin.Username == "" || admin.PasswordHash == "" {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		return nil, domain.ErrInvalidCredentials
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(admin.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password))
	if !userOK || passErr != nil {
		m.log.Warn().Str("username", username).Msg("login admin rechazado")
		return nil, domain.ErrInvalidCredentials
	}
	return m.persist(ctx, slot, &entity.Session{
		Username: admin.Username,
		FullName: "Administrator",
		Role:     entity.RoleAdmin,
		IsActive: true,
	})
}

// GetSession devuelve la sesión guardada o nil si no hay (o si está corrupta).
func (m *Manager) GetSession(ctx context.Context, slot *Slot) (*entity.Session, error) {
	return slot.Load(ctx)
}

// Logout borra el slot. Borrar un slot vacío no es error.
func (m *Manager) Logout(ctx context.Context, slot *Slot) error {
	return slot.Clear(ctx)
}

// Refresh vuelve a leer el usuario y sobrescribe la sesión, para recoger cambios hechos
// fuera de banda (p. ej. el negocio recién creado). Si la fila ya no existe devuelve nil
// y deja la sesión anterior intacta.
func (m *Manager) Refresh(ctx context.Context, slot *Slot, userID int64) (*entity.Session, error) {
	user, err := m.lookup(ctx, func(c context.Context) (*entity.User, error) {
		return m.users.GetByID(c, userID)
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return m.persist(ctx, slot, entity.NewSession(user))
}

// lookup aplica el timeout de consulta y clasifica los fallos como ErrStoreUnavailable.
func (m *Manager) lookup(ctx context.Context, fn func(context.Context) (*entity.User, error)) (*entity.User, error) {
	lctx, cancel := context.WithTimeout(ctx, m.cfg.LookupTimeout)
	defer cancel()
	user, err := fn(lctx)
	if err != nil {
		return nil, fmt.Errorf("consultar usuario: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return user, nil
}

// persist guarda la sesión salvo que el llamador ya se haya ido.
func (m *Manager) persist(ctx context.Context, slot *Slot, sess *entity.Session) (*entity.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := slot.Save(ctx, sess); err != nil {
		return nil, err
	}
	m.log.Info().Int64("user_id", sess.ID).Str("role", sess.Role).Msg("sesión guardada")
	return sess, nil
}

var (
	dummyOnce sync.Once
	dummy     []byte
)

func dummyHash() []byte {
	dummyOnce.Do(func() {
		dummy, _ = bcrypt.GenerateFromPassword([]byte("directorio-dummy-password"), bcrypt.DefaultCost)
	})
	return dummy
}
