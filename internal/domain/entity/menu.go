package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuCategory primer nivel del menú (Entradas, Bebidas, ...).
type MenuCategory struct {
	ID         int64
	BusinessID int64
	Name       string
	Position   int
	CreatedAt  time.Time
}

// MenuSubcategory agrupación opcional dentro de una categoría.
type MenuSubcategory struct {
	ID         int64
	CategoryID int64
	Name       string
	Position   int
	CreatedAt  time.Time
}

// MenuItem plato o producto del menú.
type MenuItem struct {
	ID            int64
	BusinessID    int64
	CategoryID    int64
	SubcategoryID *int64
	Name          string
	Description   string
	Price         decimal.Decimal
	ImageURL      string
	Available     bool
	Position      int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
