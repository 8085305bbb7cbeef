package listview

// maxPageLinks cantidad máxima de números de página mostrados.
const maxPageLinks = 5

// Pager paginación de filas sobre la lista filtrada. Page es 1-based.
type Pager struct {
	Page    int
	PerPage int
	Total   int
}

// NewPager construye un pager con la página ya acotada.
func NewPager(page, perPage, total int) Pager {
	if perPage <= 0 {
		perPage = 10
	}
	if total < 0 {
		total = 0
	}
	p := Pager{Page: page, PerPage: perPage, Total: total}
	return p.Clamp()
}

// TotalPages ceil(Total/PerPage); 0 si no hay filas.
func (p Pager) TotalPages() int {
	if p.Total <= 0 || p.PerPage <= 0 {
		return 0
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}

// Clamp acota Page a [1, TotalPages]; con 0 páginas queda en 1.
func (p Pager) Clamp() Pager {
	last := p.TotalPages()
	if p.Page > last {
		p.Page = last
	}
	if p.Page < 1 {
		p.Page = 1
	}
	return p
}

// Bounds índices [start, end) de la página actual sobre la lista filtrada.
func (p Pager) Bounds() (start, end int) {
	p = p.Clamp()
	start = (p.Page - 1) * p.PerPage
	if start > p.Total {
		start = p.Total
	}
	end = start + p.PerPage
	if end > p.Total {
		end = p.Total
	}
	return start, end
}

// HasPrev hay página anterior.
func (p Pager) HasPrev() bool { return p.Clamp().Page > 1 }

// HasNext hay página siguiente.
func (p Pager) HasNext() bool { return p.Clamp().Page < p.TotalPages() }

// Next avanza una página; en la última no hace nada.
func (p Pager) Next() Pager {
	p = p.Clamp()
	if p.HasNext() {
		p.Page++
	}
	return p
}

// Prev retrocede una página; en la primera no hace nada.
func (p Pager) Prev() Pager {
	p = p.Clamp()
	if p.HasPrev() {
		p.Page--
	}
	return p
}

// PageNumbers ventana de a lo sumo cinco números de página alrededor de la
// actual, siempre dentro de [1, TotalPages].
func (p Pager) PageNumbers() []int {
	last := p.TotalPages()
	if last == 0 {
		return []int{}
	}
	p = p.Clamp()
	start := p.Page - maxPageLinks/2
	if start+maxPageLinks-1 > last {
		start = last - maxPageLinks + 1
	}
	if start < 1 {
		start = 1
	}
	end := start + maxPageLinks - 1
	if end > last {
		end = last
	}
	out := make([]int, 0, end-start+1)
	for n := start; n <= end; n++ {
		out = append(out, n)
	}
	return out
}

// Paginate rebanada de la página actual.
func Paginate[T any](items []T, p Pager) []T {
	p.Total = len(items)
	start, end := p.Bounds()
	return items[start:end]
}
