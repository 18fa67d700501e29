// Package pdf implementa la generación del recibo de venta imprimible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: nombre de la tienda + n° recibo    │
//	│  Fecha de la venta                          │
//	│  ───────────────────────────────────────── │
//	│  TABLA: Cant | Artículo | P.Unit | Subtotal │
//	│  ───────────────────────────────────────── │
//	│  TOTAL                                      │
//	│  Referencia (UUID) al pie                   │
//	└─────────────────────────────────────────────┘
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/solasiya/spazamanager/internal/application/ledger"
	"github.com/solasiya/spazamanager/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 90, Blue: 50}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ledger.ReceiptGenerator = (*ReceiptGenerator)(nil)

// ReceiptGenerator genera recibos de venta con Maroto v2.
type ReceiptGenerator struct {
	storeName string
	printer   *message.Printer
}

// NewReceiptGenerator construye el generador con el nombre de la tienda que
// encabeza el recibo.
func NewReceiptGenerator(storeName string) *ReceiptGenerator {
	return &ReceiptGenerator{
		storeName: storeName,
		printer:   message.NewPrinter(language.English),
	}
}

// money formatea un monto con separador de miles y dos decimales (Rand).
func (g *ReceiptGenerator) money(d decimal.Decimal) string {
	return g.printer.Sprintf("R %v",
		number.Decimal(d.InexactFloat64(), number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// GenerateSaleReceipt genera el PDF del recibo y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateSaleReceipt(_ context.Context, sale *entity.Sale, names map[int64]string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Recibo %d", sale.ID), true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range g.itemRows(sale, names) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalRow(sale))
	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(5).Add(
		col.New(12).Add(text.New("Ref: "+sale.Reference, props.Text{Size: 7, Color: colorGray})),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *ReceiptGenerator) headerRow(sale *entity.Sale) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Recibo de venta", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("N° %d", sale.ID), props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1}),
			text.New(sale.Date.Format("02/01/2006 15:04"), props.Text{Size: 9, Align: align.Right, Top: 9, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := props.Text{Style: fontstyle.Bold, Size: 9}
	return row.New(7).Add(
		col.New(2).Add(text.New("Cant.", h)),
		col.New(6).Add(text.New("Artículo", h)),
		col.New(2).Add(text.New("P. Unit", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right})),
		col.New(2).Add(text.New("Subtotal", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right})),
	)
}

func (g *ReceiptGenerator) itemRows(sale *entity.Sale, names map[int64]string) []core.Row {
	rows := make([]core.Row, 0, len(sale.Items))
	for _, item := range sale.Items {
		name, ok := names[item.ProductID]
		if !ok {
			// Producto borrado del catálogo después de la venta
			name = fmt.Sprintf("Artículo #%d", item.ProductID)
		}
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9})),
			col.New(6).Add(text.New(name, props.Text{Size: 9})),
			col.New(2).Add(text.New(g.money(item.Price), props.Text{Size: 9, Align: align.Right})),
			col.New(2).Add(text.New(g.money(item.Subtotal()), props.Text{Size: 9, Align: align.Right})),
		))
	}
	return rows
}

func (g *ReceiptGenerator) totalRow(sale *entity.Sale) core.Row {
	return row.New(8).Add(
		col.New(8).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 11, Top: 1})),
		col.New(4).Add(text.New(g.money(sale.Total), props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1})),
	)
}
