// Package pdf genera el comprobante en PDF de una compra, exportable desde el
// diálogo de detalles del panel.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Comprobante de compra  │  N° compra + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROVEEDOR: Nombre + Contacto                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Insumo | Cantidad | Precio Unit. | Subtotal         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DE LA COMPRA                                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/tu-usuario/panel-inventario/internal/domain/entity"
)

var (
	colorPrimario = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// GeneradorComprobante genera el comprobante de una compra usando Maroto v2.
type GeneradorComprobante struct{}

// NewGeneradorComprobante construye el generador.
func NewGeneradorComprobante() *GeneradorComprobante { return &GeneradorComprobante{} }

// Generar produce el PDF de la compra. nombreInsumo resuelve el nombre de cada
// insumo para la tabla (con "Desconocido" como respaldo del controlador).
func (g *GeneradorComprobante) Generar(compra entity.Compra, nombreInsumo func(int) string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Comprobante de compra #%d", compra.ID), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(filaCabecera(compra))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))
	m.AddRows(filaProveedor(compra.Proveedor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))

	m.AddRows(filaCabeceraTabla())
	for _, r := range filasDetalle(compra.Detalles, nombreInsumo) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))
	m.AddRows(filaTotal(compra.Detalles))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// filaCabecera: título (izq) y número de compra + fecha + estado (der).
func filaCabecera(compra entity.Compra) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("COMPROBANTE DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Top: 1,
			}),
			text.New("Panel de inventario y producción", props.Text{
				Size: 9, Top: 9, Color: colorGris,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("COMPRA N° %d", compra.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+compra.FechaCorta(), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGris,
			}),
			text.New("Estado: "+compra.Estado, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGris,
			}),
		),
	)
}

// filaProveedor: proyección del proveedor de la compra.
func filaProveedor(p entity.Proveedor) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimario, Top: 1,
			}),
			text.New(p.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Contacto: %s   |   ID: %d", noVacio(p.Contacto, "—"), p.ID),
				props.Text{Size: 8, Top: 12, Color: colorGris}),
		),
	)
}

// filaCabeceraTabla: cabecera de la tabla de líneas.
func filaCabeceraTabla() core.Row {
	h := func(etiqueta string, ancho int, a align.Type) core.Col {
		return col.New(ancho).Add(text.New(etiqueta, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimario, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Insumo", 6, align.Left),
		h("Cantidad", 2, align.Center),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// filasDetalle: una fila por línea de la compra.
func filasDetalle(detalles []entity.DetalleCompra, nombreInsumo func(int) string) []core.Row {
	filas := make([]core.Row, 0, len(detalles))
	for _, d := range detalles {
		subtotal := d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
		filas = append(filas, row.New(7).Add(
			col.New(6).Add(text.New(
				nombreInsumo(d.IDInsumo),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", d.Cantidad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+d.PrecioUnitario.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return filas
}

// filaTotal: total de la compra alineado a la derecha.
func filaTotal(detalles []entity.DetalleCompra) core.Row {
	total := decimal.Zero
	for _, d := range detalles {
		total = total.Add(d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad))))
	}
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL DE LA COMPRA:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimario, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("$"+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimario, Right: 1, Top: 2,
		})),
	)
}

func noVacio(s, respaldo string) string {
	if s != "" {
		return s
	}
	return respaldo
}
