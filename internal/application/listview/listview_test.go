package listview_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/classicmodels-admin/internal/application/listview"
)

type city struct {
	ID      int
	Name    string
	Country string
	Budget  decimal.Decimal
}

func citySpec() listview.Spec[city] {
	return listview.Spec[city]{
		Search: []func(city) string{
			func(c city) string { return c.Name },
			func(c city) string { return listview.Itoa(c.ID) },
		},
		Filters: []listview.FilterField[city]{
			{Key: "country", Label: "País", Value: func(c city) string { return c.Country }},
		},
		Sorts: []listview.SortField[city]{
			listview.ByText("name", "Nombre", func(c city) string { return c.Name }),
			listview.ByDecimal("budget", "Presupuesto", func(c city) decimal.Decimal { return c.Budget }).Descending(),
			listview.ByInt("id", "Id", func(c city) int { return c.ID }),
		},
		DefaultSort: "name",
		Columns: []listview.Column[city]{
			{Key: "id", Title: "Id", Value: func(c city) string { return listview.Itoa(c.ID) }},
			{Key: "name", Title: "Nombre", Value: func(c city) string { return c.Name }},
			{Key: "country", Title: "País", Value: func(c city) string { return c.Country }},
		},
		Key: func(c city) string { return listview.Itoa(c.ID) },
	}
}

func cities() []city {
	return []city{
		{ID: 1, Name: "Zürich", Country: "Switzerland", Budget: decimal.NewFromInt(300)},
		{ID: 2, Name: "Berlin", Country: "Germany", Budget: decimal.NewFromInt(100)},
		{ID: 3, Name: "Ávila", Country: "Spain", Budget: decimal.NewFromInt(300)},
		{ID: 4, Name: "Zagreb", Country: "", Budget: decimal.NewFromInt(50)},
		{ID: 5, Name: "Bonn", Country: "Germany", Budget: decimal.RequireFromString("100.5")},
	}
}

func names(items []city) []string {
	out := make([]string, 0, len(items))
	for _, c := range items {
		out = append(out, c.Name)
	}
	return out
}

func newLister() *listview.Lister[city] {
	return listview.NewLister(citySpec(), listview.NewCollator("en"))
}

// ── Derive ──

func TestDerive_OrdenPorDefectoUsaCollator(t *testing.T) {
	res := newLister().Derive(cities(), listview.Query{})

	if diff := cmp.Diff([]string{"Ávila", "Berlin", "Bonn", "Zagreb", "Zürich"}, names(res.Items)); diff != "" {
		t.Fatalf("orden inesperado (-want +got):\n%s", diff)
	}
	assert.Equal(t, listview.SortOrder{Key: "name"}, res.Sort)
	assert.Equal(t, 5, res.Total)
}

func TestDerive_NoModificaLaEntrada(t *testing.T) {
	in := cities()
	before := names(in)

	newLister().Derive(in, listview.Query{Sort: "-name"})

	assert.Equal(t, before, names(in))
}

func TestDerive_BusquedaInsensibleAMayusculas(t *testing.T) {
	res := newLister().Derive(cities(), listview.Query{Search: "  BER "})
	assert.Equal(t, []string{"Berlin"}, names(res.Items))

	res = newLister().Derive(cities(), listview.Query{Search: "5"})
	assert.Equal(t, []string{"Bonn"}, names(res.Items), "busca también en campos numéricos")
}

func TestDerive_FiltroExactoYClavesDesconocidas(t *testing.T) {
	q := listview.Query{Filters: map[string]string{"country": "Germany", "planeta": "Marte"}}
	res := newLister().Derive(cities(), q)
	assert.Equal(t, []string{"Berlin", "Bonn"}, names(res.Items))

	q = q.WithFilter("country", "germ")
	res = newLister().Derive(cities(), q)
	assert.Empty(t, res.Items, "el filtro es de igualdad exacta")
}

func TestDerive_DireccionPorDefectoDelCampo(t *testing.T) {
	res := newLister().Derive(cities(), listview.Query{Sort: "budget"})

	assert.Equal(t, listview.SortOrder{Key: "budget", Desc: true}, res.Sort)
	// estable: Zürich y Ávila empatan y conservan el orden original
	assert.Equal(t, []string{"Zürich", "Ávila", "Bonn", "Berlin", "Zagreb"}, names(res.Items))
}

func TestDerive_PrefijosDeDireccion(t *testing.T) {
	res := newLister().Derive(cities(), listview.Query{Sort: "+budget"})
	assert.False(t, res.Sort.Desc)
	assert.Equal(t, []string{"Zagreb", "Berlin", "Bonn", "Zürich", "Ávila"}, names(res.Items))

	res = newLister().Derive(cities(), listview.Query{Sort: "-id"})
	assert.Equal(t, []string{"Bonn", "Zagreb", "Ávila", "Berlin", "Zürich"}, names(res.Items))
	assert.Equal(t, "-id", res.Sort.String())
}

func TestDerive_ClaveDesconocidaUsaElOrdenPorDefecto(t *testing.T) {
	res := newLister().Derive(cities(), listview.Query{Sort: "-inexistente"})
	assert.Equal(t, listview.SortOrder{Key: "name"}, res.Sort)
	assert.Equal(t, "Ávila", res.Items[0].Name)
}

func TestDerive_OpcionesSobreLaColeccionCruda(t *testing.T) {
	q := listview.Query{Filters: map[string]string{"country": "Spain"}}
	res := newLister().Derive(cities(), q)

	want := map[string][]string{"country": {"Germany", "Spain", "Switzerland"}}
	if diff := cmp.Diff(want, res.Options); diff != "" {
		t.Fatalf("opciones (-want +got):\n%s", diff)
	}
}

func TestDerive_EntradaVacia(t *testing.T) {
	res := newLister().Derive(nil, listview.Query{Search: "x"})
	require.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
	assert.Equal(t, []string{}, res.Options["country"])
}

func TestNewCollator_EtiquetaInvalidaCaeAIngles(t *testing.T) {
	assert.Equal(t, "en", listview.NewCollator("@@no-es-idioma").Locale())
	assert.Equal(t, "es-CO", listview.NewCollator("es-CO").Locale())
}

// ── Selection ──

func TestSelection_ToggleYSelectAll(t *testing.T) {
	s := listview.NewSelection()
	assert.True(t, s.Toggle("1"))
	assert.True(t, s.Toggle("9"))
	assert.False(t, s.Toggle("1"))

	s.SelectAll([]string{"2", "3"})
	assert.Equal(t, []string{"2", "3"}, s.Keys(), "select-all deja exactamente los visibles")
	assert.True(t, s.AllSelected([]string{"3", "2"}))
}

func TestSelection_ToggleAll(t *testing.T) {
	visible := []string{"a", "b"}
	s := listview.NewSelection("a")

	s.ToggleAll(visible)
	assert.Equal(t, []string{"a", "b"}, s.Keys())

	s.ToggleAll(visible)
	assert.Equal(t, 0, s.Len())

	s.ToggleAll(nil)
	assert.Equal(t, 0, s.Len(), "lista vacía nunca queda seleccionada")
}

func TestSelection_ValorCeroUsable(t *testing.T) {
	var s listview.Selection
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has("a"))
	s.Retain([]string{"a"})

	assert.True(t, s.Toggle("a"))
	assert.Equal(t, []string{"a"}, s.Keys())
	assert.False(t, s.Toggle("a"))
}

func TestSelection_RetainDescartaClavesInexistentes(t *testing.T) {
	s := listview.NewSelection("1", "2", "3")
	s.Retain([]string{"2", "3", "4"})

	assert.Equal(t, []string{"2", "3"}, s.Keys())
	assert.False(t, s.Has("1"))
	assert.False(t, s.Has("4"))
}

// ── Pager ──

func TestPager_PageNumbersAcotados(t *testing.T) {
	cases := []struct {
		page, total int
		want        []int
	}{
		{1, 100, []int{1, 2, 3, 4, 5}},
		{2, 100, []int{1, 2, 3, 4, 5}},
		{5, 100, []int{3, 4, 5, 6, 7}},
		{10, 100, []int{6, 7, 8, 9, 10}},
		{2, 25, []int{1, 2, 3}},
		{1, 0, []int{}},
	}
	for _, tc := range cases {
		p := listview.NewPager(tc.page, 10, tc.total)
		assert.Equal(t, tc.want, p.PageNumbers(), "page=%d total=%d", tc.page, tc.total)
		for _, n := range p.PageNumbers() {
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, p.TotalPages())
		}
	}
}

func TestPager_ClampYBordes(t *testing.T) {
	p := listview.NewPager(99, 10, 25)
	assert.Equal(t, 3, p.Page)
	assert.False(t, p.HasNext())
	assert.Equal(t, 3, p.Next().Page, "next en la última página no hace nada")

	p = listview.NewPager(0, 10, 25)
	assert.Equal(t, 1, p.Page)
	assert.False(t, p.HasPrev())
	assert.Equal(t, 1, p.Prev().Page)
	assert.Equal(t, 2, p.Next().Page)

	start, end := listview.NewPager(3, 10, 25).Bounds()
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	assert.Equal(t, []int{4, 5, 6}, listview.Paginate(items, listview.Pager{Page: 2, PerPage: 3}))
	assert.Equal(t, []int{7}, listview.Paginate(items, listview.Pager{Page: 9, PerPage: 3}))
	assert.Empty(t, listview.Paginate([]int{}, listview.Pager{Page: 1, PerPage: 3}))
}

// ── ColumnWindow ──

func TestColumnWindow_ScrollAcotado(t *testing.T) {
	w := listview.NewColumnWindow(8, 3, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, w.Visible())
	assert.False(t, w.CanScrollLeft())
	assert.True(t, w.CanScrollRight())

	w = w.ScrollRight()
	assert.Equal(t, []int{0, 4, 5, 6}, w.Visible())

	w = w.ScrollRight()
	assert.Equal(t, []int{0, 5, 6, 7}, w.Visible(), "no se pasa de la última columna")
	assert.False(t, w.CanScrollRight())

	w = w.ScrollLeft().ScrollLeft()
	assert.Equal(t, 0, w.Offset())
}

func TestColumnWindow_MenosColumnasQueLaVentana(t *testing.T) {
	w := listview.NewColumnWindow(2, 5, 0)
	assert.Equal(t, []int{0, 1}, w.Visible())
	assert.False(t, w.ScrollRight().CanScrollLeft())
}

func TestSpec_Row(t *testing.T) {
	s := citySpec()
	row := s.Row(cities()[1], []int{2, 0, 7})
	assert.Equal(t, []string{"Germany", "2"}, row)
	assert.Equal(t, []string{"Id", "Nombre", "País"}, s.ColumnTitles())
}
