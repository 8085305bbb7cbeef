package listview

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator comparación de texto sensible al idioma. collate.Collator no es
// seguro entre goroutines; el mutex lo serializa.
type Collator struct {
	mu  sync.Mutex
	col *collate.Collator
	tag language.Tag
}

// NewCollator construye el collator para una etiqueta BCP 47 ("en", "es-CO").
// Una etiqueta inválida cae a inglés.
func NewCollator(locale string) *Collator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Collator{col: collate.New(tag), tag: tag}
}

// Compare -1, 0, 1 según el orden del idioma.
func (c *Collator) Compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.col.CompareString(a, b)
}

// Locale etiqueta efectiva.
func (c *Collator) Locale() string { return c.tag.String() }

// Result vista derivada: registros filtrados y ordenados más las opciones de
// cada filtro calculadas sobre la colección completa.
type Result[T any] struct {
	Items   []T
	Total   int // tamaño de la colección cruda
	Options map[string][]string
	Sort    SortOrder
}

// Lister aplica un Spec con un collator.
type Lister[T any] struct {
	spec Spec[T]
	col  *Collator
}

// NewLister construye el lister.
func NewLister[T any](spec Spec[T], col *Collator) *Lister[T] {
	if col == nil {
		col = NewCollator("en")
	}
	return &Lister[T]{spec: spec, col: col}
}

// Spec devuelve la especificación.
func (l *Lister[T]) Spec() Spec[T] { return l.spec }

// Derive filtra y luego ordena. Nunca modifica items.
func (l *Lister[T]) Derive(items []T, q Query) Result[T] {
	filtered := l.Filter(items, q)
	order := l.Sort(filtered, q.Sort)
	return Result[T]{
		Items:   filtered,
		Total:   len(items),
		Options: l.Options(items),
		Sort:    order,
	}
}

// Filter aplica búsqueda y filtros; conserva el orden original. Siempre
// devuelve un slice nuevo (no nil).
func (l *Lister[T]) Filter(items []T, q Query) []T {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(q.Search))

	type activeFilter struct {
		value string
		fn    func(T) string
	}
	var active []activeFilter
	for _, f := range l.spec.Filters {
		if v := q.Filters[f.Key]; v != "" {
			active = append(active, activeFilter{value: v, fn: f.Value})
		}
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if !l.matchesSearch(item, needle, fold) {
			continue
		}
		ok := true
		for _, f := range active {
			if f.fn(item) != f.value {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, item)
		}
	}
	return out
}

func (l *Lister[T]) matchesSearch(item T, needle string, fold cases.Caser) bool {
	if needle == "" {
		return true
	}
	for _, field := range l.spec.Search {
		if strings.Contains(fold.String(field(item)), needle) {
			return true
		}
	}
	return false
}

// Sort ordena items en el lugar (orden estable) y devuelve el orden efectivo.
// Una clave vacía o desconocida usa DefaultSort con su dirección por defecto.
func (l *Lister[T]) Sort(items []T, sort string) SortOrder {
	key, dir := parseSort(sort)
	field, ok := l.spec.sortField(key)
	if !ok {
		field, ok = l.spec.sortField(l.spec.DefaultSort)
		dir = 0
		if !ok {
			return SortOrder{}
		}
	}
	desc := field.Desc
	switch dir {
	case -1:
		desc = true
	case 1:
		desc = false
	}

	compare := field.cmp
	if field.text != nil {
		text := field.text
		compare = func(a, b T) int { return l.col.Compare(text(a), text(b)) }
	}
	if desc {
		asc := compare
		compare = func(a, b T) int { return asc(b, a) }
	}
	slices.SortStableFunc(items, compare)
	return SortOrder{Key: field.Key, Desc: desc}
}

// Options valores distintos, no vacíos y ordenados de cada filtro sobre la
// colección cruda (alimentan los desplegables).
func (l *Lister[T]) Options(items []T) map[string][]string {
	out := make(map[string][]string, len(l.spec.Filters))
	for _, f := range l.spec.Filters {
		seen := make(map[string]struct{})
		values := make([]string, 0)
		for _, item := range items {
			v := f.Value(item)
			if strings.TrimSpace(v) == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
		slices.SortFunc(values, l.col.Compare)
		out[f.Key] = values
	}
	return out
}
