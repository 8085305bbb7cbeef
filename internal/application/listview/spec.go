// Package listview implementa el patrón genérico de listas del dashboard:
// búsqueda, filtros categóricos, ordenamiento, selección, paginación de filas
// y ventana de columnas. Todo es cálculo puro sobre datos en memoria.
package listview

import (
	"cmp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Spec describe cómo listar una entidad: qué campos se buscan, por cuáles se
// filtra, cómo se ordena y qué columnas se muestran. Se declara una vez por
// entidad.
type Spec[T any] struct {
	Search      []func(T) string
	Filters     []FilterField[T]
	Sorts       []SortField[T]
	DefaultSort string
	Columns     []Column[T]
	Key         func(T) string
}

// FilterField filtro de igualdad exacta sobre un campo categórico.
type FilterField[T any] struct {
	Key   string
	Label string
	Value func(T) string
}

// Column columna de tabla/exportación.
type Column[T any] struct {
	Key   string
	Title string
	Value func(T) string
}

// SortField campo ordenable. Los campos de texto usan el collator; los demás
// su comparador. Desc es la dirección por defecto del campo.
type SortField[T any] struct {
	Key   string
	Label string
	Desc  bool
	text  func(T) string
	cmp   func(a, b T) int
}

// ByText ordena por texto con comparación sensible al idioma.
func ByText[T any](key, label string, fn func(T) string) SortField[T] {
	return SortField[T]{Key: key, Label: label, text: fn}
}

// ByInt ordena numéricamente por un entero.
func ByInt[T any](key, label string, fn func(T) int) SortField[T] {
	return SortField[T]{Key: key, Label: label, cmp: func(a, b T) int { return cmp.Compare(fn(a), fn(b)) }}
}

// ByDecimal ordena numéricamente por un decimal (precios, montos, límites).
func ByDecimal[T any](key, label string, fn func(T) decimal.Decimal) SortField[T] {
	return SortField[T]{Key: key, Label: label, cmp: func(a, b T) int { return fn(a).Cmp(fn(b)) }}
}

// ByTime ordena cronológicamente.
func ByTime[T any](key, label string, fn func(T) time.Time) SortField[T] {
	return SortField[T]{Key: key, Label: label, cmp: func(a, b T) int { return fn(a).Compare(fn(b)) }}
}

// Descending marca el campo como descendente por defecto.
func (f SortField[T]) Descending() SortField[T] {
	f.Desc = true
	return f
}

// IsText indica si el campo se compara con el collator.
func (f SortField[T]) IsText() bool { return f.text != nil }

// sortField busca un campo de orden por clave.
func (s Spec[T]) sortField(key string) (SortField[T], bool) {
	for _, f := range s.Sorts {
		if f.Key == key {
			return f, true
		}
	}
	return SortField[T]{}, false
}

// FilterKeys claves de filtro declaradas, en orden.
func (s Spec[T]) FilterKeys() []string {
	keys := make([]string, 0, len(s.Filters))
	for _, f := range s.Filters {
		keys = append(keys, f.Key)
	}
	return keys
}

// SortKeys claves de orden declaradas, en orden.
func (s Spec[T]) SortKeys() []string {
	keys := make([]string, 0, len(s.Sorts))
	for _, f := range s.Sorts {
		keys = append(keys, f.Key)
	}
	return keys
}

// ColumnTitles títulos de todas las columnas.
func (s Spec[T]) ColumnTitles() []string {
	titles := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		titles = append(titles, c.Title)
	}
	return titles
}

// Row valores de las columnas indicadas (por índice) para un registro.
func (s Spec[T]) Row(item T, cols []int) []string {
	row := make([]string, 0, len(cols))
	for _, i := range cols {
		if i >= 0 && i < len(s.Columns) {
			row = append(row, s.Columns[i].Value(item))
		}
	}
	return row
}

// Itoa atajo para columnas numéricas.
func Itoa(n int) string { return strconv.Itoa(n) }
