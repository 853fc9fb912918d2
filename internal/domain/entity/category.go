package entity

import "time"

// Category categoría del directorio (restaurantes, cafeterías, ...).
type Category struct {
	ID        int64
	Name      string
	Slug      string // único
	CreatedAt time.Time
}
