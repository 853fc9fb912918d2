package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// Store almacén clave/valor donde viven las sesiones serializadas (Redis, memoria).
// Get devuelve (nil, nil) si la clave no existe. Delete de una clave ausente no es error.
type Store interface {
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// Slot es la ranura de una sesión concreta dentro del Store.
// Garantías: Load tras Save devuelve una sesión igual; Load tras Clear devuelve nil;
// Load de datos corruptos devuelve nil sin error.
type Slot struct {
	store Store
	key   string
	ttl   time.Duration
	log   *logger.Logger
}

// NewSlot construye un slot sobre la clave indicada.
func NewSlot(store Store, key string, ttl time.Duration, log *logger.Logger) *Slot {
	if log == nil {
		log = logger.Nop()
	}
	return &Slot{store: store, key: key, ttl: ttl, log: log}
}

// Key clave canónica del slot.
func (s *Slot) Key() string { return s.key }

// Save sobrescribe incondicionalmente lo que hubiera en el slot.
func (s *Slot) Save(ctx context.Context, sess *entity.Session) error {
	if sess == nil {
		return fmt.Errorf("guardar sesión: %w", domain.ErrInvalidInput)
	}
	raw, err := Encode(sess)
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, s.key, raw, s.ttl); err != nil {
		return fmt.Errorf("guardar sesión: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Load lee la sesión del slot. Solo devuelve error si el Store no responde.
func (s *Slot) Load(ctx context.Context) (*entity.Session, error) {
	raw, err := s.store.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w: %w", domain.ErrStoreUnavailable, err)
	}
	if raw == nil {
		return nil, nil
	}
	sess, err := Decode(raw)
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("sesión ilegible, se trata como ausente")
		return nil, nil
	}
	return sess, nil
}

// Clear borra el slot. Idempotente.
func (s *Slot) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("borrar sesión: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Encode serializa la sesión con el formato JSON persistido.
func Encode(sess *entity.Session) ([]byte, error) {
	raw, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("serializar sesión: %w", err)
	}
	return raw, nil
}

// Decode interpreta el JSON guardado. Devuelve domain.ErrCorruptSession si no se puede leer.
// Un "null" guardado equivale a no tener sesión.
func Decode(raw []byte) (*entity.Session, error) {
	var sess *entity.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptSession, err)
	}
	return sess, nil
}
