package dto

import "time"

// AddRoleRequest entrada para crear un role (solo admins).
type AddRoleRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Level        int     `json:"level" validate:"required,min=1"`
	ParentRoleID *string `json:"parent_role_id"`
}

// RoleResponse salida de un role.
type RoleResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Level        int       `json:"level"`
	ParentRoleID *string   `json:"parent_role_id"`
	CreatedAt    time.Time `json:"created_at"`
}
