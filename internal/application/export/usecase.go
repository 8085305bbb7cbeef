// Package export genera archivos descargables (PDF, XLSX) a partir de la vista
// derivada de un listado: filas filtradas y columnas visibles.
package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/classicmodels-admin/internal/application/listview"
)

// ErrUnsupportedFormat formato de exportación desconocido.
var ErrUnsupportedFormat = errors.New("formato de exportación no soportado")

// Format formato de salida.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ParseFormat normaliza el formato pedido por el usuario ("PDF", " xlsx ").
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPDF, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("export: %q: %w", s, ErrUnsupportedFormat)
}

// ContentType MIME del formato.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

// Table contenido tabular ya formateado como texto.
type Table struct {
	Title       string
	Headers     []string
	Rows        [][]string
	GeneratedAt time.Time
}

// PDFGenerator puerto del generador de PDF (maroto).
type PDFGenerator interface {
	GenerateTable(ctx context.Context, t Table) ([]byte, error)
}

// XLSXGenerator puerto del generador de hojas de cálculo (excelize).
type XLSXGenerator interface {
	GenerateTable(ctx context.Context, t Table) ([]byte, error)
}

// File archivo generado listo para descargar o escribir a disco.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// UseCase elige el generador según el formato.
type UseCase struct {
	pdf  PDFGenerator
	xlsx XLSXGenerator
	now  func() time.Time
}

// NewUseCase construye el caso de uso inyectando los generadores.
func NewUseCase(pdf PDFGenerator, xlsx XLSXGenerator) *UseCase {
	return &UseCase{pdf: pdf, xlsx: xlsx, now: time.Now}
}

// Render genera el archivo. El nombre sigue el patrón "<titulo>_AAAA-MM-DD.<ext>".
func (uc *UseCase) Render(ctx context.Context, format Format, t Table) (*File, error) {
	if t.GeneratedAt.IsZero() {
		t.GeneratedAt = uc.now()
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatPDF:
		data, err = uc.pdf.GenerateTable(ctx, t)
	case FormatXLSX:
		data, err = uc.xlsx.GenerateTable(ctx, t)
	default:
		return nil, fmt.Errorf("export: %q: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("export: generar %s: %w", format, err)
	}

	return &File{
		Name:        fmt.Sprintf("%s_%s.%s", slug(t.Title), t.GeneratedAt.Format("2006-01-02"), format),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

// BuildTable arma la tabla con las columnas indicadas (índices de spec.Columns).
// cols vacío exporta todas las columnas.
func BuildTable[T any](title string, spec listview.Spec[T], items []T, cols []int) Table {
	if len(cols) == 0 {
		cols = make([]int, len(spec.Columns))
		for i := range cols {
			cols[i] = i
		}
	}
	headers := make([]string, 0, len(cols))
	for _, i := range cols {
		if i >= 0 && i < len(spec.Columns) {
			headers = append(headers, spec.Columns[i].Title)
		}
	}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, spec.Row(item, cols))
	}
	return Table{Title: title, Headers: headers, Rows: rows}
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "export"
	}
	return strings.Join(strings.Fields(s), "_")
}
