package entity

import "time"

// SocialLinks redes sociales publicadas en el perfil del negocio.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
}

// Business perfil público de un negocio del directorio.
type Business struct {
	ID             int64
	Username       string // slug único usado en la URL pública
	Name           string
	CategoryID     *int64
	Address        string
	City           string
	Description    string
	Phone          string
	Email          string
	Website        string
	PrimaryColor   string // #RRGGBB
	SecondaryColor string
	ImageURL       string
	Social         SocialLinks
	OpeningHours   string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BusinessFilter filtros del listado público.
type BusinessFilter struct {
	Query           string // busca en nombre y descripción
	CategoryID      *int64
	City            string
	IncludeInactive bool
	Limit           int
	Offset          int
}
