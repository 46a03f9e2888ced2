// Package pdf genera el comprobante de compra en PDF con Maroto v2.
//
// Layout A5 horizontal:
//
//	┌──────────────────────────────────────────────┐
//	│  CATÁLOGO — Comprobante de compra            │
//	│  ──────────────────────────────────────────  │
//	│  Comprador / CPF                             │
//	│  Producto | Cantidad | Precio | Total        │
//	│  ──────────────────────────────────────────  │
//	│  N° de compra + fecha                        │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Ensure MarotoReceiptGenerator implements usecase.ReceiptPDFGenerator.
var _ usecase.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator genera comprobantes de compra usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	purchase *entity.Purchase,
	user *entity.User,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de compra", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(buyerRow(user))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	m.AddRows(detailRow(purchase))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(purchase))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Catálogo — Comprobante de compra", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
	)
}

func buyerRow(user *entity.User) core.Row {
	cpf := "CPF: " + user.Cpf
	return row.New(10).Add(
		col.New(7).Add(
			text.New("Comprador: "+user.Username, props.Text{Size: 9, Top: 1}),
		),
		col.New(5).Add(
			text.New(cpf, props.Text{Size: 9, Top: 1, Align: align.Right, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(s string, size int) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}))
	}
	return row.New(6).Add(
		header("Producto", 6),
		header("Cant.", 2),
		header("Precio", 2),
		header("Total", 2),
	)
}

func detailRow(purchase *entity.Purchase) core.Row {
	name := "producto no encontrado"
	if purchase.ProductName != nil {
		name = *purchase.ProductName
	}
	total := purchase.PurchasePrice.Mul(decimal.NewFromInt(int64(purchase.Quantity)))
	cell := func(s string, size int) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 9}))
	}
	return row.New(8).Add(
		cell(name, 6),
		cell(fmt.Sprintf("%d", purchase.Quantity), 2),
		cell(purchase.PurchasePrice.StringFixed(2), 2),
		cell(total.StringFixed(2), 2),
	)
}

func footerRow(purchase *entity.Purchase) core.Row {
	return row.New(8).Add(
		col.New(8).Add(
			text.New("Compra N° "+purchase.ID, props.Text{Size: 7, Color: colorGray, Top: 2}),
		),
		col.New(4).Add(
			text.New(purchase.PurchasedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Color: colorGray, Top: 2, Align: align.Right,
			}),
		),
	)
}
