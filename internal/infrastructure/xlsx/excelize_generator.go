// Package xlsx genera la hoja de cálculo de un listado usando excelize.
package xlsx

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/classicmodels-admin/internal/application/export"
)

const (
	maxSheetName = 31 // límite de Excel
	minColWidth  = 10
	maxColWidth  = 60
)

// ExcelizeGenerator implementa export.XLSXGenerator.
type ExcelizeGenerator struct{}

// NewExcelizeGenerator construye el generador.
func NewExcelizeGenerator() *ExcelizeGenerator { return &ExcelizeGenerator{} }

// GenerateTable escribe la cabecera en negrita en la fila 1 y una fila por
// registro desde la 2. La cabecera queda fija al hacer scroll.
func (g *ExcelizeGenerator) GenerateTable(ctx context.Context, t export.Table) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(t.Title)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("xlsx: nombre de hoja: %w", err)
	}

	if len(t.Headers) > 0 {
		headers := toCells(t.Headers)
		if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
			return nil, fmt.Errorf("xlsx: cabecera: %w", err)
		}
		style, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
		})
		if err != nil {
			return nil, fmt.Errorf("xlsx: estilo: %w", err)
		}
		last, _ := excelize.CoordinatesToCellName(len(t.Headers), 1)
		if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
			return nil, fmt.Errorf("xlsx: estilo: %w", err)
		}
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
		}); err != nil {
			return nil, fmt.Errorf("xlsx: fijar cabecera: %w", err)
		}
	}

	for i, r := range t.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := toCells(r)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+1, err)
		}
	}

	for i, w := range columnWidths(t) {
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, name, name, w); err != nil {
			return nil, fmt.Errorf("xlsx: ancho de columna: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func toCells(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// columnWidths ancho por columna según el texto más largo, acotado.
func columnWidths(t export.Table) []float64 {
	widths := make([]float64, len(t.Headers))
	measure := func(i int, s string) {
		if i >= len(widths) {
			return
		}
		if w := float64(utf8.RuneCountInString(s) + 2); w > widths[i] {
			widths[i] = w
		}
	}
	for i, h := range t.Headers {
		measure(i, h)
	}
	for _, r := range t.Rows {
		for i, v := range r {
			measure(i, v)
		}
	}
	for i, w := range widths {
		widths[i] = min(max(w, minColWidth), maxColWidth)
	}
	return widths
}

// sheetName quita los caracteres que Excel no admite y recorta a 31.
func sheetName(title string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return -1
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		return "Listado"
	}
	if utf8.RuneCountInString(name) > maxSheetName {
		name = string([]rune(name)[:maxSheetName])
	}
	return name
}
