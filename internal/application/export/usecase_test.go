package export_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/classicmodels-admin/internal/application/export"
	"github.com/jhoicas/classicmodels-admin/internal/application/listview"
)

type fakeGen struct {
	got  export.Table
	data []byte
	err  error
}

func (g *fakeGen) GenerateTable(_ context.Context, t export.Table) ([]byte, error) {
	g.got = t
	return g.data, g.err
}

type office struct{ code, city string }

func officeSpec() listview.Spec[office] {
	return listview.Spec[office]{
		Columns: []listview.Column[office]{
			{Key: "code", Title: "Código", Value: func(o office) string { return o.code }},
			{Key: "city", Title: "Ciudad", Value: func(o office) string { return o.city }},
		},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := export.ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, export.FormatPDF, f)

	_, err = export.ParseFormat("csv")
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
}

func TestBuildTable_ColumnasVisibles(t *testing.T) {
	items := []office{{"1", "San Francisco"}, {"4", "Paris"}}

	tbl := export.BuildTable("Oficinas", officeSpec(), items, []int{1})
	assert.Equal(t, []string{"Ciudad"}, tbl.Headers)
	assert.Equal(t, [][]string{{"San Francisco"}, {"Paris"}}, tbl.Rows)

	all := export.BuildTable("Oficinas", officeSpec(), items, nil)
	assert.Equal(t, []string{"Código", "Ciudad"}, all.Headers)
	assert.Equal(t, []string{"4", "Paris"}, all.Rows[1])
}

func TestRender_EligeGeneradorYNombra(t *testing.T) {
	pdf := &fakeGen{data: []byte("%PDF")}
	xlsx := &fakeGen{data: []byte("PK")}
	uc := export.NewUseCase(pdf, xlsx)
	day := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	f, err := uc.Render(context.Background(), export.FormatXLSX, export.Table{Title: "Product Lines", GeneratedAt: day})
	require.NoError(t, err)
	assert.Equal(t, "product_lines_2026-03-15.xlsx", f.Name)
	assert.Equal(t, []byte("PK"), f.Data)
	assert.Contains(t, f.ContentType, "spreadsheetml")
	assert.Equal(t, "Product Lines", xlsx.got.Title)
	assert.Empty(t, pdf.got.Title, "el generador PDF no se usa")

	f, err = uc.Render(context.Background(), export.FormatPDF, export.Table{Title: "", GeneratedAt: day})
	require.NoError(t, err)
	assert.Equal(t, "export_2026-03-15.pdf", f.Name)
	assert.Equal(t, "application/pdf", f.ContentType)
}

func TestRender_PropagaErroresDelGenerador(t *testing.T) {
	boom := errors.New("boom")
	uc := export.NewUseCase(&fakeGen{err: boom}, &fakeGen{})

	_, err := uc.Render(context.Background(), export.FormatPDF, export.Table{Title: "x"})
	assert.ErrorIs(t, err, boom)

	_, err = uc.Render(context.Background(), export.Format("doc"), export.Table{})
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
}
