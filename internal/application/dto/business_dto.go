package dto

import "time"

// UpdateBusinessRequest reemplaza el perfil del negocio.
type UpdateBusinessRequest struct {
	Name          string `json:"nombre" validate:"required,min=1,max=160"`
	Phone         string `json:"telefono" validate:"omitempty,max=30"`
	ContactPerson string `json:"persona_contacto" validate:"omitempty,max=160"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"direccion" validate:"omitempty,max=255"`
}

// BusinessResponse perfil del negocio.
type BusinessResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"nombre"`
	Phone         string    `json:"telefono"`
	ContactPerson string    `json:"persona_contacto"`
	Email         string    `json:"email"`
	Address       string    `json:"direccion"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
