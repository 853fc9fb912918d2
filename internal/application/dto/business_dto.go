package dto

import "time"

// SocialLinksDTO redes sociales del negocio.
type SocialLinksDTO struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
}

// CreateBusinessRequest entrada para crear un negocio. Username vacío: se deriva del nombre.
type CreateBusinessRequest struct {
	Username       string         `json:"username" validate:"omitempty,max=60"`
	Name           string         `json:"name" validate:"required,max=200"`
	CategoryID     *int64         `json:"category_id"`
	Address        string         `json:"address"`
	City           string         `json:"city"`
	Description    string         `json:"description"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email"`
	Website        string         `json:"website"`
	PrimaryColor   string         `json:"primary_color" validate:"omitempty,hexcolor"`
	SecondaryColor string         `json:"secondary_color" validate:"omitempty,hexcolor"`
	ImageURL       string         `json:"image_url"`
	Social         SocialLinksDTO `json:"social"`
	OpeningHours   string         `json:"opening_hours"`
}

// UpdateBusinessRequest campos opcionales; nil = no cambiar.
type UpdateBusinessRequest struct {
	Username       *string         `json:"username"`
	Name           *string         `json:"name"`
	CategoryID     *int64          `json:"category_id"`
	Address        *string         `json:"address"`
	City           *string         `json:"city"`
	Description    *string         `json:"description"`
	Phone          *string         `json:"phone"`
	Email          *string         `json:"email"`
	Website        *string         `json:"website"`
	PrimaryColor   *string         `json:"primary_color"`
	SecondaryColor *string         `json:"secondary_color"`
	ImageURL       *string         `json:"image_url"`
	Social         *SocialLinksDTO `json:"social"`
	OpeningHours   *string         `json:"opening_hours"`
	IsActive       *bool           `json:"is_active"`
}

// BusinessResponse perfil público del negocio.
type BusinessResponse struct {
	ID             int64          `json:"id"`
	Username       string         `json:"username"`
	Name           string         `json:"name"`
	CategoryID     *int64         `json:"category_id"`
	Address        string         `json:"address"`
	City           string         `json:"city"`
	Description    string         `json:"description"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email"`
	Website        string         `json:"website"`
	PrimaryColor   string         `json:"primary_color"`
	SecondaryColor string         `json:"secondary_color"`
	ImageURL       string         `json:"image_url"`
	Social         SocialLinksDTO `json:"social"`
	OpeningHours   string         `json:"opening_hours"`
	IsActive       bool           `json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// BusinessListRequest filtros del listado público.
type BusinessListRequest struct {
	Query      string
	CategoryID *int64
	City       string
	Page       PageRequest
}

// BusinessListResponse listado paginado.
type BusinessListResponse struct {
	Items []BusinessResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CategoryRequest entrada para crear una categoría del directorio.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CategoryResponse categoría del directorio.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
