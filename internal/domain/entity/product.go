package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeletionRequest registra una solicitud de eliminación hecha por un funcionario.
// Existe solo mientras el producto está pendiente: producto activo = Deletion nil.
type DeletionRequest struct {
	RequestedByUserID string
	RequestedAt       time.Time
}

// Product representa un producto del catálogo. Price se almacena siempre
// redondeado a 2 decimales; Stock nunca es negativo.
type Product struct {
	ID              string
	Name            string
	Description     *string
	Price           decimal.Decimal
	Stock           int
	IsActive        bool
	CreatedByUserID string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// nil ⇒ activo; no-nil ⇒ pendiente de aprobación de un admin.
	Deletion *DeletionRequest

	// Nombres resueltos en lecturas (join con users). Pueden quedar vacíos
	// si el usuario referenciado ya no existe.
	CreatedByUsername           *string
	RequestedDeletionByUsername *string
}

// PendingDeletion indica si hay una solicitud de eliminación abierta.
func (p *Product) PendingDeletion() bool {
	return p.Deletion != nil
}

// RequestDeletion abre la solicitud de eliminación a nombre de userID.
func (p *Product) RequestDeletion(userID string, at time.Time) {
	p.Deletion = &DeletionRequest{RequestedByUserID: userID, RequestedAt: at}
}

// RejectDeletion descarta la solicitud y devuelve el producto al estado activo.
func (p *Product) RejectDeletion() {
	p.Deletion = nil
}

// RoundPrice redondea un precio a 2 decimales (regla única para todo precio persistido).
func RoundPrice(price decimal.Decimal) decimal.Decimal {
	return price.Round(2)
}
