// Package repofake implementaciones en memoria de los puertos de repositorio, para tests.
package repofake

import (
	"context"
	"strings"
	"sync"

	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.UserRepository = (*Users)(nil)

// Users almacén de credenciales en memoria. Err, si no es nil, lo devuelven todas las operaciones.
type Users struct {
	mu     sync.RWMutex
	rows   map[int64]*entity.User
	nextID int64
	Err    error
}

// NewUsers crea el fake con las filas dadas (se copian).
func NewUsers(rows ...*entity.User) *Users {
	f := &Users{rows: make(map[int64]*entity.User)}
	for _, u := range rows {
		c := *u
		f.rows[u.ID] = &c
		if u.ID > f.nextID {
			f.nextID = u.ID
		}
	}
	return f
}

func (f *Users) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	for _, u := range f.rows {
		if u.Username == user.Username || u.Email == user.Email {
			return domain.ErrDuplicate
		}
	}
	f.nextID++
	user.ID = f.nextID
	c := *user
	f.rows[user.ID] = &c
	return nil
}

func (f *Users) GetByID(_ context.Context, id int64) (*entity.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.find(func(u *entity.User) bool { return u.ID == id })
}

func (f *Users) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.find(func(u *entity.User) bool { return strings.EqualFold(u.Username, username) })
}

func (f *Users) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.find(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) })
}

func (f *Users) LinkBusiness(_ context.Context, userID, businessID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	u, ok := f.rows[userID]
	if !ok {
		return domain.ErrNotFound
	}
	if u.BusinessID != nil {
		return domain.ErrConflict
	}
	id := businessID
	u.BusinessID = &id
	return nil
}

func (f *Users) SetActive(_ context.Context, userID int64, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	u, ok := f.rows[userID]
	if !ok {
		return domain.ErrNotFound
	}
	u.IsActive = active
	return nil
}

// Put reemplaza (o inserta) una fila, para simular cambios hechos fuera de banda.
func (f *Users) Put(u *entity.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := *u
	f.rows[u.ID] = &c
}

// Remove borra una fila.
func (f *Users) Remove(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
}

func (f *Users) find(match func(*entity.User) bool) (*entity.User, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	for _, u := range f.rows {
		if match(u) {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}
