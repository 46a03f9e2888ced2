package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

// UpdateProductRequest entrada para actualizar un producto (semántica patch:
// nil = no modificar; Description no-nil vacío limpia el campo).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	IsActive    *bool            `json:"is_active"`
}

// ProductResponse salida de un producto con los nombres de usuario resueltos.
type ProductResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Description         *string         `json:"description"`
	Price               decimal.Decimal `json:"price"`
	Stock               int             `json:"stock"`
	IsActive            bool            `json:"is_active"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	CreatedBy           *string         `json:"created_by"`
	PendingDeletion     bool            `json:"pending_deletion"`
	RequestedDeletionBy *string         `json:"requested_deletion_by"`
	DeletionRequestedAt *time.Time      `json:"deletion_requested_at"`
}
