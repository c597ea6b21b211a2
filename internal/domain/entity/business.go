package entity

import "time"

// DefaultBusinessName nombre con el que se crea el perfil del negocio si no existe.
const DefaultBusinessName = "Mi Tienda"

// Business perfil del negocio. Conceptualmente existe una única fila.
type Business struct {
	ID            int64
	Name          string
	Phone         string
	ContactPerson string
	Email         string
	Address       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
