package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Directorio-api/internal/application/session"
)

var _ session.Store = (*MemoryStore)(nil)

type memEntry struct {
	value     []byte
	expiresAt time.Time // cero = sin vencimiento
}

func (e memEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryStore guarda las sesiones en un mapa del proceso. Sirve para desarrollo y tests;
// con varias réplicas del servicio hay que usar RedisStore.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memEntry
	now     func() time.Time
}

// NewMemoryStore crea un store vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memEntry), now: time.Now}
}

func (s *MemoryStore) Put(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := memEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = e
	return nil
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	now := s.now()
	if !e.expired(now) {
		return append([]byte(nil), e.value...), nil
	}

	// Entre soltar el RLock y tomar el Lock pudo entrar un Put nuevo en la misma clave.
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	if cur.expired(now) {
		delete(s.entries, key)
		return nil, nil
	}
	return append([]byte(nil), cur.value...), nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
