package repofake

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.WifiRepository = (*Wifi)(nil)

type Wifi struct {
	mu     sync.RWMutex
	rows   map[int64]*entity.WifiNetwork
	nextID int64
}

func NewWifi() *Wifi {
	return &Wifi{rows: make(map[int64]*entity.WifiNetwork)}
}

func (f *Wifi) Create(_ context.Context, w *entity.WifiNetwork) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	w.ID = f.nextID
	cp := *w
	f.rows[w.ID] = &cp
	return nil
}

func (f *Wifi) GetByID(_ context.Context, id int64) (*entity.WifiNetwork, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if w, ok := f.rows[id]; ok {
		cp := *w
		return &cp, nil
	}
	return nil, nil
}

func (f *Wifi) Update(_ context.Context, w *entity.WifiNetwork) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[w.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *w
	f.rows[w.ID] = &cp
	return nil
}

func (f *Wifi) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *Wifi) ListByBusiness(_ context.Context, businessID int64) ([]*entity.WifiNetwork, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []*entity.WifiNetwork
	for _, w := range f.rows {
		if w.BusinessID == businessID {
			cp := *w
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return byPosition(out[i].Position, out[i].ID, out[j].Position, out[j].ID) })
	return out, nil
}
