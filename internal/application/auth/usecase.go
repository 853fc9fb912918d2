package auth

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/application/session"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/access"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
	"github.com/jhoicas/Directorio-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y ciclo de vida de la sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	sessions *session.Manager
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessions *session.Manager, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessions: sessions, jwtCfg: jwtCfg}
}

var usernameRe = regexp.MustCompile(`^[a-z0-9_.-]{3,50}$`)

// RegisterUser crea un usuario con rol user, activo y sin negocio. El password se guarda con bcrypt.
// Devuelve ErrDuplicate si el username o el email ya existen.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	username := entity.NormalizeUsername(in.Username)
	email := strings.TrimSpace(in.Email)
	if !usernameRe.MatchString(username) {
		return nil, fmt.Errorf("%w: username debe tener 3 a 50 caracteres [a-z0-9_.-]", domain.ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos 8 caracteres", domain.ErrInvalidInput)
	}

	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	existing, err = uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := strings.TrimSpace(in.FullName)
	if name == "" {
		name = username
	}
	user := &entity.User{
		Username:     username,
		Email:        email,
		FullName:     name,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica username/password, guarda la sesión en un slot nuevo y firma un JWT con su id.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	sid := session.NewSessionID()
	slot := uc.sessions.Slot(sid)
	sess, err := uc.sessions.Login(ctx, slot, entity.NormalizeUsername(in.Username), in.Password)
	if err != nil {
		return nil, err
	}
	return uc.issue(ctx, sid, slot, sess)
}

// LoginAdmin igual que Login pero contra la credencial de administrador del servidor.
func (uc *AuthUseCase) LoginAdmin(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	sid := session.NewSessionID()
	slot := uc.sessions.Slot(sid)
	sess, err := uc.sessions.LoginAdmin(ctx, slot, strings.TrimSpace(in.Username), in.Password)
	if err != nil {
		return nil, err
	}
	return uc.issue(ctx, sid, slot, sess)
}

// Refresh relee el usuario de la sesión y reescribe el slot. Si la fila desapareció
// devuelve la sesión actual sin cambios.
func (uc *AuthUseCase) Refresh(ctx context.Context, slot *session.Slot, current *entity.Session) (*dto.SessionResponse, error) {
	if current == nil {
		return nil, domain.ErrUnauthorized
	}
	if access.IsAdmin(current) && current.ID == 0 {
		return ToSessionResponse(current), nil
	}
	sess, err := uc.sessions.Refresh(ctx, slot, current.ID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return ToSessionResponse(current), nil
	}
	return ToSessionResponse(sess), nil
}

// Logout borra el slot; el token deja de servir aunque no haya expirado.
func (uc *AuthUseCase) Logout(ctx context.Context, slot *session.Slot) error {
	return uc.sessions.Logout(ctx, slot)
}

func (uc *AuthUseCase) issue(ctx context.Context, sid string, slot *session.Slot, sess *entity.Session) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, sid, sess.ID, sess.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		_ = uc.sessions.Logout(ctx, slot)
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Session: *ToSessionResponse(sess)}, nil
}

// ToSessionResponse añade la etiqueta del rol a la sesión.
func ToSessionResponse(s *entity.Session) *dto.SessionResponse {
	if s == nil {
		return nil
	}
	return &dto.SessionResponse{
		ID:          s.ID,
		Username:    s.Username,
		Email:       s.Email,
		FullName:    s.FullName,
		Role:        s.Role,
		RoleDisplay: access.RoleDisplay(s),
		BusinessID:  s.BusinessID,
		IsActive:    s.IsActive,
	}
}

// ToUserResponse convierte la fila en DTO (sin hash). El rol expuesto es el efectivo.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FullName:   u.FullName,
		Role:       u.EffectiveRole(),
		BusinessID: u.BusinessID,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
