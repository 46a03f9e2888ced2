package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de una compra del propio usuario.
type ReceiptUseCase struct {
	purchaseUC *PurchaseUseCase
	userRepo   repository.UserRepository
	generator  ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(purchaseUC *PurchaseUseCase, userRepo repository.UserRepository, generator ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{purchaseUC: purchaseUC, userRepo: userRepo, generator: generator}
}

// DownloadReceipt verifica que la compra pertenezca al principal y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la compra no existe.
//   - domain.ErrForbidden        si la compra no es del usuario del token.
func (uc *ReceiptUseCase) DownloadReceipt(ctx context.Context, p auth.Principal, purchaseID string) ([]byte, string, error) {
	purchase, err := uc.purchaseUC.GetOwned(p, purchaseID)
	if err != nil {
		return nil, "", err
	}
	user, err := uc.userRepo.GetByID(purchase.UserID)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", domain.ErrUserNotFound
	}

	pdfBytes, err := uc.generator.GenerateReceiptPDF(ctx, purchase, user)
	if err != nil {
		return nil, "", fmt.Errorf("generar comprobante: %w", err)
	}
	filename := fmt.Sprintf("comprobante-%s.pdf", purchase.ID)
	return pdfBytes, filename, nil
}
