package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// PurchaseUseCase registra compras de forma transaccional: el chequeo de stock,
// su decremento y el alta de la compra ocurren con la fila del producto
// bloqueada (SELECT FOR UPDATE), así compras concurrentes del mismo producto
// se serializan.
type PurchaseUseCase struct {
	txRunner     TxRunner
	userRepo     repository.UserRepository
	purchaseRepo repository.PurchaseRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(txRunner TxRunner, userRepo repository.UserRepository, purchaseRepo repository.PurchaseRepository) *PurchaseUseCase {
	return &PurchaseUseCase{txRunner: txRunner, userRepo: userRepo, purchaseRepo: purchaseRepo}
}

// Purchase compra quantity unidades de un producto. Precondiciones en orden:
// usuario resoluble, cantidad positiva, producto existente, activo y sin
// solicitud de eliminación, stock suficiente. El precio guardado es la foto
// del precio del producto al momento de la compra.
func (uc *PurchaseUseCase) Purchase(ctx context.Context, p auth.Principal, in dto.PurchaseRequest) (*dto.PurchaseResponse, error) {
	buyer, err := uc.userRepo.GetByID(p.UserID)
	if err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.PurchaseResponse
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if !product.IsActive || product.PendingDeletion() {
			return domain.ErrProductUnavailable
		}
		if product.Stock < in.Quantity {
			return fmt.Errorf("%w. Disponible: %d", domain.ErrInsufficientStock, product.Stock)
		}

		if err := productRepo.UpdateStock(product.ID, product.Stock-in.Quantity); err != nil {
			return err
		}
		purchase := &entity.Purchase{
			ID:            uuid.New().String(),
			UserID:        buyer.ID,
			ProductID:     product.ID,
			Quantity:      in.Quantity,
			PurchasePrice: entity.RoundPrice(product.Price),
			PurchasedAt:   time.Now(),
		}
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		out = &dto.PurchaseResponse{
			ID:            purchase.ID,
			ProductName:   product.Name,
			Quantity:      purchase.Quantity,
			PurchasePrice: purchase.PurchasePrice,
			PurchasedAt:   purchase.PurchasedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MyPurchases lista las compras del usuario autenticado, más reciente primero.
// Productos ya eliminados aparecen con un nombre marcador en vez de fallar.
func (uc *PurchaseUseCase) MyPurchases(p auth.Principal) ([]dto.PurchaseResponse, error) {
	buyer, err := uc.userRepo.GetByID(p.UserID)
	if err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, domain.ErrUserNotFound
	}
	list, err := uc.purchaseRepo.ListByUser(buyer.ID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseResponse, 0, len(list))
	for _, pu := range list {
		items = append(items, *toPurchaseResponse(pu))
	}
	return items, nil
}

// GetOwned obtiene una compra verificando que pertenezca al principal.
func (uc *PurchaseUseCase) GetOwned(p auth.Principal, purchaseID string) (*entity.Purchase, error) {
	purchase, err := uc.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	if purchase.UserID != p.UserID {
		return nil, domain.ErrForbidden
	}
	return purchase, nil
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	if p == nil {
		return nil
	}
	name := domain.ErrProductNotFound.Error()
	if p.ProductName != nil {
		name = *p.ProductName
	}
	return &dto.PurchaseResponse{
		ID:            p.ID,
		ProductName:   name,
		Quantity:      p.Quantity,
		PurchasePrice: p.PurchasePrice,
		PurchasedAt:   p.PurchasedAt,
	}
}
