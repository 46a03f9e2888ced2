package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia para Purchase (DIP).
// Las compras son inmutables: no hay Update ni Delete.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	// ListByUser devuelve las compras del usuario ordenadas por purchased_at DESC,
	// con ProductName resuelto (nil si el producto ya no existe).
	ListByUser(userID string) ([]*entity.Purchase, error)
}
