package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// PurchaseHandler maneja compras, historial y comprobantes (protegido).
type PurchaseHandler struct {
	uc        *usecase.PurchaseUseCase
	receiptUC *usecase.ReceiptUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *usecase.PurchaseUseCase, receiptUC *usecase.ReceiptUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc, receiptUC: receiptUC}
}

// Purchase godoc
// @Summary      Comprar un producto
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PurchaseRequest  true  "product_id, quantity"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/purchase [post]
func (h *PurchaseHandler) Purchase(c *fiber.Ctx) error {
	var in dto.PurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Purchase(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MyPurchases godoc
// @Summary      Listar mis compras
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PurchaseResponse
// @Router       /api/products/my-products [get]
func (h *PurchaseHandler) MyPurchases(c *fiber.Ctx) error {
	out, err := h.uc.MyPurchases(GetPrincipal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Descargar comprobante PDF de una compra propia
// @Tags         purchases
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la compra"
// @Success      200  {file}  file
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/my-products/{id}/receipt [get]
func (h *PurchaseHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.receiptUC.DownloadReceipt(c.UserContext(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
