// Package pdf implementa la generación del reporte de inventario de un stock
// usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Dirección del stock  │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Descripción | Cantidad | Precio | Valor  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: posiciones / unidades / valor del inventario      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/jhoicas/logistica-api/internal/application/usecase"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.StockReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa usecase.StockReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStockReport(
	_ context.Context,
	stock *entity.Stock,
	rows []usecase.StockReportRow,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(stock))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableDetailRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: dirección del stock (izq) y fecha de generación (der).
func headerRow(stock *entity.Stock) core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(stock.Address, props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 6,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New("Stock: "+stock.ID, props.Text{
				Size: 7, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right}
	return row.New(7).Add(
		col.New(4).Add(text.New("Producto", header)),
		col.New(3).Add(text.New("Descripción", header)),
		col.New(1).Add(text.New("Cant.", headerRight)),
		col.New(2).Add(text.New("Precio", headerRight)),
		col.New(2).Add(text.New("Valor", headerRight)),
	)
}

func tableDetailRow(r usecase.StockReportRow) core.Row {
	title, description := "—", ""
	if r.Product != nil {
		title, description = r.Product.Title, r.Product.Description
	}
	qty := decimal.NewFromInt(r.Position.Quantity)
	value := r.Position.Price.Mul(qty)
	cell := props.Text{Size: 8}
	cellRight := props.Text{Size: 8, Align: align.Right}
	return row.New(6).Add(
		col.New(4).Add(text.New(title, cell)),
		col.New(3).Add(text.New(description, props.Text{Size: 7, Color: colorGray})),
		col.New(1).Add(text.New(qty.String(), cellRight)),
		col.New(2).Add(text.New(r.Position.Price.StringFixed(2), cellRight)),
		col.New(2).Add(text.New(value.StringFixed(2), cellRight)),
	)
}

// totalsRow: número de posiciones, unidades totales y valor total del inventario.
func totalsRow(rows []usecase.StockReportRow) core.Row {
	var units int64
	total := decimal.Zero
	for _, r := range rows {
		units += r.Position.Quantity
		total = total.Add(r.Position.Price.Mul(decimal.NewFromInt(r.Position.Quantity)))
	}
	label := fmt.Sprintf("%d posiciones · %d unidades", len(rows), units)
	return row.New(8).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 8, Color: colorGray, Top: 2})),
		col.New(4).Add(text.New("TOTAL: "+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
		})),
	)
}
