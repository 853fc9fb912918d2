package repofake

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.MenuRepository = (*Menu)(nil)

// Menu categorías, subcategorías e ítems en memoria.
type Menu struct {
	mu     sync.RWMutex
	cats   map[int64]*entity.MenuCategory
	subs   map[int64]*entity.MenuSubcategory
	items  map[int64]*entity.MenuItem
	nextID int64
}

func NewMenu() *Menu {
	return &Menu{
		cats:  make(map[int64]*entity.MenuCategory),
		subs:  make(map[int64]*entity.MenuSubcategory),
		items: make(map[int64]*entity.MenuItem),
	}
}

func (f *Menu) CreateCategory(_ context.Context, c *entity.MenuCategory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	c.ID = f.nextID
	cp := *c
	f.cats[c.ID] = &cp
	return nil
}

func (f *Menu) GetCategory(_ context.Context, id int64) (*entity.MenuCategory, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if c, ok := f.cats[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (f *Menu) UpdateCategory(_ context.Context, c *entity.MenuCategory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.cats[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	f.cats[c.ID] = &cp
	return nil
}

// DeleteCategory borra en cascada subcategorías e ítems, como la FK de la tabla.
func (f *Menu) DeleteCategory(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.cats[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.cats, id)
	for sid, s := range f.subs {
		if s.CategoryID == id {
			delete(f.subs, sid)
		}
	}
	for iid, it := range f.items {
		if it.CategoryID == id {
			delete(f.items, iid)
		}
	}
	return nil
}

func (f *Menu) ListCategories(_ context.Context, businessID int64) ([]*entity.MenuCategory, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []*entity.MenuCategory
	for _, c := range f.cats {
		if c.BusinessID == businessID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return byPosition(out[i].Position, out[i].ID, out[j].Position, out[j].ID) })
	return out, nil
}

func (f *Menu) CreateSubcategory(_ context.Context, s *entity.MenuSubcategory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	s.ID = f.nextID
	cp := *s
	f.subs[s.ID] = &cp
	return nil
}

func (f *Menu) GetSubcategory(_ context.Context, id int64) (*entity.MenuSubcategory, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if s, ok := f.subs[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

// DeleteSubcategory los ítems de la subcategoría quedan directamente bajo su categoría.
func (f *Menu) DeleteSubcategory(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.subs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.subs, id)
	for _, it := range f.items {
		if it.SubcategoryID != nil && *it.SubcategoryID == id {
			it.SubcategoryID = nil
		}
	}
	return nil
}

func (f *Menu) ListSubcategories(_ context.Context, businessID int64) ([]*entity.MenuSubcategory, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []*entity.MenuSubcategory
	for _, s := range f.subs {
		if c, ok := f.cats[s.CategoryID]; ok && c.BusinessID == businessID {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return byPosition(out[i].Position, out[i].ID, out[j].Position, out[j].ID) })
	return out, nil
}

func (f *Menu) CreateItem(_ context.Context, it *entity.MenuItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	it.ID = f.nextID
	cp := *it
	f.items[it.ID] = &cp
	return nil
}

func (f *Menu) GetItem(_ context.Context, id int64) (*entity.MenuItem, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if it, ok := f.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (f *Menu) UpdateItem(_ context.Context, it *entity.MenuItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[it.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *it
	f.items[it.ID] = &cp
	return nil
}

func (f *Menu) DeleteItem(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *Menu) ListItems(_ context.Context, businessID int64) ([]*entity.MenuItem, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []*entity.MenuItem
	for _, it := range f.items {
		if it.BusinessID == businessID {
			cp := *it
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return byPosition(out[i].Position, out[i].ID, out[j].Position, out[j].ID) })
	return out, nil
}

// byPosition orden de las consultas reales: position, id.
func byPosition(pi int, idi int64, pj int, idj int64) bool {
	if pi != pj {
		return pi < pj
	}
	return idi < idj
}
