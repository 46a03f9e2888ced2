package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para la compra:
// decrementar stock y crear la compra se confirman juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
	) error) error
}

// ReceiptPDFGenerator genera el comprobante PDF de una compra.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, purchase *entity.Purchase, user *entity.User) ([]byte, error)
}
