package repofake

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*Businesses)(nil)

// Businesses directorio de negocios en memoria.
type Businesses struct {
	mu     sync.RWMutex
	rows   map[int64]*entity.Business
	nextID int64
	Writes int
}

func NewBusinesses(rows ...*entity.Business) *Businesses {
	f := &Businesses{rows: make(map[int64]*entity.Business)}
	for _, b := range rows {
		c := *b
		f.rows[b.ID] = &c
		if b.ID > f.nextID {
			f.nextID = b.ID
		}
	}
	return f
}

func (f *Businesses) Create(_ context.Context, b *entity.Business) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.rows {
		if e.Username == b.Username {
			return domain.ErrDuplicate
		}
	}
	f.nextID++
	b.ID = f.nextID
	c := *b
	f.rows[b.ID] = &c
	f.Writes++
	return nil
}

func (f *Businesses) GetByID(_ context.Context, id int64) (*entity.Business, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if b, ok := f.rows[id]; ok {
		c := *b
		return &c, nil
	}
	return nil, nil
}

func (f *Businesses) GetByUsername(_ context.Context, username string) (*entity.Business, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, b := range f.rows {
		if b.Username == username {
			c := *b
			return &c, nil
		}
	}
	return nil, nil
}

func (f *Businesses) Update(_ context.Context, b *entity.Business) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[b.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *b
	c.UpdatedAt = time.Now()
	f.rows[b.ID] = &c
	f.Writes++
	return nil
}

func (f *Businesses) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.rows, id)
	f.Writes++
	return nil
}

func (f *Businesses) List(_ context.Context, flt entity.BusinessFilter) ([]*entity.Business, int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	q := strings.ToLower(flt.Query)
	var all []*entity.Business
	for _, b := range f.rows {
		if !flt.IncludeInactive && !b.IsActive {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(b.Name+" "+b.Description), q) {
			continue
		}
		if flt.CategoryID != nil && (b.CategoryID == nil || *b.CategoryID != *flt.CategoryID) {
			continue
		}
		if flt.City != "" && !strings.EqualFold(b.City, flt.City) {
			continue
		}
		c := *b
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := len(all)
	if flt.Offset >= total {
		return []*entity.Business{}, total, nil
	}
	end := total
	if flt.Limit > 0 && flt.Offset+flt.Limit < total {
		end = flt.Offset + flt.Limit
	}
	return all[flt.Offset:end], total, nil
}
