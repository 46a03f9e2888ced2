package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo: CRUD con reglas de visibilidad y
// el flujo de eliminación en dos pasos (solicitud de funcionario, aprobación
// o rechazo de admin).
//
// Las reglas de nivel se verifican aquí además del middleware HTTP, de modo
// que el núcleo deniega aunque se invoque sin pasar por el router.
type ProductUseCase struct {
	repo     repository.ProductRepository
	userRepo repository.UserRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, userRepo repository.UserRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, userRepo: userRepo}
}

// List lista productos ordenados por creación descendente. Los admins ven
// también inactivos y pendientes de eliminación; el resto solo activos.
func (uc *ProductUseCase) List(p auth.Principal) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(p.HasLevel(entity.LevelAdmin))
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, prod := range list {
		items = append(items, *toProductResponse(prod))
	}
	return items, nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Create crea un producto activo. Requiere nivel Funcionario o superior.
// El precio se redondea a 2 decimales antes de persistir.
func (uc *ProductUseCase) Create(p auth.Principal, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !p.HasLevel(entity.LevelFuncionario) {
		return nil, domain.ErrForbidden
	}
	creator, err := uc.userRepo.GetByID(p.UserID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name == "" || in.Price.LessThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Description:       in.Description,
		Price:             entity.RoundPrice(in.Price),
		Stock:             in.Stock,
		IsActive:          true,
		CreatedByUserID:   creator.ID,
		CreatedAt:         now,
		UpdatedAt:         now,
		CreatedByUsername: &creator.Username,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica un patch a un producto. Requiere nivel Funcionario o superior.
// Un producto con solicitud de eliminación abierta no puede editarse: hay que
// aprobar o rechazar primero.
func (uc *ProductUseCase) Update(p auth.Principal, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if !p.HasLevel(entity.LevelFuncionario) {
		return nil, domain.ErrForbidden
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if product.PendingDeletion() {
		return nil, domain.ErrPendingDeletion
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		// Description explícito vacío limpia el campo
		if *in.Description == "" {
			product.Description = nil
		} else {
			product.Description = in.Description
		}
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = entity.RoundPrice(*in.Price)
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete ejecuta la transición de eliminación según el nivel del caller:
// admin elimina de inmediato; funcionario abre una solicitud pendiente.
// Devuelve pending=true cuando quedó en espera de aprobación.
func (uc *ProductUseCase) Delete(p auth.Principal, id string) (pending bool, err error) {
	if !p.HasLevel(entity.LevelFuncionario) {
		return false, domain.ErrForbidden
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, domain.ErrProductNotFound
	}

	if p.HasLevel(entity.LevelAdmin) {
		return false, uc.repo.Delete(id)
	}

	requester, err := uc.userRepo.GetByID(p.UserID)
	if err != nil {
		return false, err
	}
	if requester == nil {
		return false, domain.ErrUserNotFound
	}
	product.RequestDeletion(requester.ID, time.Now())
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return false, err
	}
	return true, nil
}

// ListPendingDeletion lista las solicitudes abiertas, más antigua primero.
// Solo admins.
func (uc *ProductUseCase) ListPendingDeletion(p auth.Principal) ([]dto.ProductResponse, error) {
	if !p.HasLevel(entity.LevelAdmin) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.ListPendingDeletion()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, prod := range list {
		items = append(items, *toProductResponse(prod))
	}
	return items, nil
}

// ApproveDeletion confirma una solicitud pendiente y elimina el producto.
// Solo admins; falla si el producto no está pendiente.
func (uc *ProductUseCase) ApproveDeletion(p auth.Principal, id string) error {
	product, err := uc.pendingProduct(p, id)
	if err != nil {
		return err
	}
	return uc.repo.Delete(product.ID)
}

// RejectDeletion descarta una solicitud pendiente y devuelve el producto al
// estado activo (requester y timestamp se limpian). Solo admins.
func (uc *ProductUseCase) RejectDeletion(p auth.Principal, id string) error {
	product, err := uc.pendingProduct(p, id)
	if err != nil {
		return err
	}
	product.RejectDeletion()
	product.UpdatedAt = time.Now()
	return uc.repo.Update(product)
}

func (uc *ProductUseCase) pendingProduct(p auth.Principal, id string) (*entity.Product, error) {
	if !p.HasLevel(entity.LevelAdmin) {
		return nil, domain.ErrForbidden
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if !product.PendingDeletion() {
		return nil, domain.ErrNotPendingDeletion
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	resp := &dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		Stock:           p.Stock,
		IsActive:        p.IsActive,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		CreatedBy:       p.CreatedByUsername,
		PendingDeletion: p.PendingDeletion(),
	}
	if p.Deletion != nil {
		at := p.Deletion.RequestedAt
		resp.DeletionRequestedAt = &at
		resp.RequestedDeletionBy = p.RequestedDeletionByUsername
	}
	return resp
}
