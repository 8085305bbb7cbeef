package listview

import "strings"

// Query estado de UI que gobierna la vista derivada. Lo posee la superficie
// (query string, flags del CLI, estado de la TUI).
type Query struct {
	Search  string
	Sort    string            // "key" (dirección por defecto), "-key" desc, "+key" asc
	Filters map[string]string // clave de filtro -> valor exacto; "" = sin restricción
}

// SortOrder orden efectivo después de resolver la clave.
type SortOrder struct {
	Key  string `json:"key"`
	Desc bool   `json:"desc"`
}

// String forma canónica "key" / "-key".
func (o SortOrder) String() string {
	if o.Desc {
		return "-" + o.Key
	}
	return o.Key
}

// parseSort separa prefijo de dirección y clave. dir: -1 desc, +1 asc, 0 por defecto.
func parseSort(s string) (key string, dir int) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "-"):
		return strings.TrimSpace(s[1:]), -1
	case strings.HasPrefix(s, "+"):
		return strings.TrimSpace(s[1:]), 1
	}
	return s, 0
}

// WithFilter devuelve una copia de la query con el filtro aplicado.
func (q Query) WithFilter(key, value string) Query {
	filters := make(map[string]string, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	if value == "" {
		delete(filters, key)
	} else {
		filters[key] = value
	}
	q.Filters = filters
	return q
}
