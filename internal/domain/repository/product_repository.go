package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE); solo tiene
	// sentido dentro de una transacción. Devuelve nil si no existe.
	GetForUpdate(id string) (*entity.Product, error)
	// List devuelve productos ordenados por created_at DESC. Con includeHidden
	// en false filtra a activos y sin solicitud de eliminación abierta.
	List(includeHidden bool) ([]*entity.Product, error)
	// ListPendingDeletion devuelve los pendientes ordenados por fecha de solicitud ASC.
	ListPendingDeletion() ([]*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, stock int) error
	Delete(id string) error
}
