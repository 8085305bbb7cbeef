// Package pdf genera el reporte tabular de un listado usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del listado   │  Fecha + N° de registros     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una columna por columna visible, filas alternadas    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de generación                               │
//	└─────────────────────────────────────────────────────────────┘
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
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/classicmodels-admin/internal/application/export"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

// más columnas que esto pasan a página horizontal
const landscapeFrom = 6

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa export.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador. author aparece en los metadatos.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: nonEmpty(author, "classicmodels-admin")}
}

// GenerateTable genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateTable(ctx context.Context, t export.Table) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// grilla de una unidad por columna; mínimo 2 para el header partido
	grid := max(len(t.Headers), 2)

	b := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithMaxGridSize(grid).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(nonEmpty(t.Title, "Listado"), true).
		WithAuthor(g.author, true)
	if len(t.Headers) > landscapeFrom {
		b = b.WithOrientation(orientation.Horizontal)
	}

	m := maroto.New(b.Build())

	m.AddRows(headerRow(t, grid))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(3))

	if len(t.Headers) > 0 {
		m.AddRows(tableHeaderRow(t.Headers))
		m.AddRows(tableRows(t.Rows, len(t.Headers))...)
	}
	if len(t.Rows) == 0 {
		m.AddRows(row.New(10).Add(col.New(grid).Add(
			text.New("Sin registros para los filtros aplicados.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(t, grid))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha + cantidad de registros (der).
func headerRow(t export.Table, grid int) core.Row {
	right := grid / 2
	return row.New(16).Add(
		col.New(grid-right).Add(
			text.New(nonEmpty(t.Title, "Listado"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(right).Add(
			text.New("Generado: "+t.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 2,
			}),
			text.New(fmt.Sprintf("%d registros", len(t.Rows)), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

// tableHeaderRow: cabecera con fondo del color primario.
func tableHeaderRow(headers []string) core.Row {
	cols := make([]core.Col, 0, len(headers))
	for _, h := range headers {
		cols = append(cols, col.New(1).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorWhite,
			Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(cols...)
}

// tableRows: una fila por registro, con franjas alternadas.
func tableRows(rows [][]string, width int) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for i, r := range rows {
		cols := make([]core.Col, 0, width)
		for j := 0; j < width; j++ {
			v := ""
			if j < len(r) {
				v = r[j]
			}
			cols = append(cols, col.New(1).Add(text.New(v, props.Text{
				Size: 8, Top: 1, Left: 1, Right: 1,
			})))
		}
		rw := row.New(7).Add(cols...)
		if i%2 == 1 {
			rw = rw.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, rw)
	}
	return result
}

func footerRow(t export.Table, grid int) core.Row {
	return row.New(8).Add(col.New(grid).Add(
		text.New(
			fmt.Sprintf("Reporte generado desde el panel de administración el %s.",
				t.GeneratedAt.Format("02/01/2006")),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
