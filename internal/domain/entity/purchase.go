package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa una compra de un usuario. PurchasePrice es la foto del
// precio al momento de comprar; el registro es inmutable después de creado.
type Purchase struct {
	ID            string
	UserID        string
	ProductID     string
	Quantity      int
	PurchasePrice decimal.Decimal
	PurchasedAt   time.Time

	// Nombre del producto resuelto en lecturas; nil si el producto fue
	// eliminado después de la compra.
	ProductName *string
}
