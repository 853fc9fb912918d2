package repofake

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*Categories)(nil)

type Categories struct {
	mu     sync.RWMutex
	rows   map[int64]*entity.Category
	nextID int64
}

func NewCategories(rows ...*entity.Category) *Categories {
	f := &Categories{rows: make(map[int64]*entity.Category)}
	for _, c := range rows {
		cp := *c
		f.rows[c.ID] = &cp
		if c.ID > f.nextID {
			f.nextID = c.ID
		}
	}
	return f
}

func (f *Categories) Create(_ context.Context, c *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.rows {
		if e.Slug == c.Slug {
			return domain.ErrDuplicate
		}
	}
	f.nextID++
	c.ID = f.nextID
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *Categories) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if c, ok := f.rows[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (f *Categories) List(_ context.Context) ([]*entity.Category, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*entity.Category, 0, len(f.rows))
	for _, c := range f.rows {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
