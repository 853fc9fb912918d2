package dto

import "github.com/shopspring/decimal"

// MenuCategoryRequest crear o renombrar una categoría del menú.
type MenuCategoryRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Position int    `json:"position"`
}

// MenuSubcategoryRequest crear una subcategoría dentro de una categoría del menú.
type MenuSubcategoryRequest struct {
	CategoryID int64  `json:"category_id" validate:"required"`
	Name       string `json:"name" validate:"required,max=100"`
	Position   int    `json:"position"`
}

// MenuItemRequest crear un ítem. Price en decimal (ej. "12500.00").
type MenuItemRequest struct {
	CategoryID    int64           `json:"category_id" validate:"required"`
	SubcategoryID *int64          `json:"subcategory_id"`
	Name          string          `json:"name" validate:"required,max=200"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"image_url"`
	Available     *bool           `json:"available"`
	Position      int             `json:"position"`
}

// UpdateMenuItemRequest campos opcionales; nil = no cambiar.
type UpdateMenuItemRequest struct {
	CategoryID    *int64           `json:"category_id"`
	SubcategoryID *int64           `json:"subcategory_id"`
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	ImageURL      *string          `json:"image_url"`
	Available     *bool            `json:"available"`
	Position      *int             `json:"position"`
}

// MenuItemResponse ítem del menú.
type MenuItemResponse struct {
	ID            int64           `json:"id"`
	CategoryID    int64           `json:"category_id"`
	SubcategoryID *int64          `json:"subcategory_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"image_url"`
	Available     bool            `json:"available"`
	Position      int             `json:"position"`
}

// MenuSubcategoryResponse subcategoría con sus ítems.
type MenuSubcategoryResponse struct {
	ID       int64              `json:"id"`
	Name     string             `json:"name"`
	Position int                `json:"position"`
	Items    []MenuItemResponse `json:"items"`
}

// MenuCategoryResponse categoría con ítems directos y subcategorías.
type MenuCategoryResponse struct {
	ID            int64                     `json:"id"`
	Name          string                    `json:"name"`
	Position      int                       `json:"position"`
	Items         []MenuItemResponse        `json:"items"`
	Subcategories []MenuSubcategoryResponse `json:"subcategories"`
}

// MenuResponse menú completo de un negocio ordenado por posición.
type MenuResponse struct {
	BusinessID int64                  `json:"business_id"`
	Categories []MenuCategoryResponse `json:"categories"`
}
