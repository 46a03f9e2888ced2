package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseRequest entrada para comprar un producto.
type PurchaseRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// PurchaseResponse salida de una compra. ProductName conserva un marcador
// cuando el producto fue eliminado después de la compra.
type PurchaseResponse struct {
	ID            string          `json:"id"`
	ProductName   string          `json:"product_name"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	PurchasedAt   time.Time       `json:"purchased_at"`
}
