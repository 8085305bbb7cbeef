package dto

// ── Query parameters ──

// ListRequest parámetros de GET /api/<entidad>. Los filtros llegan como
// filter[<campo>]=valor y se leen aparte.
type ListRequest struct {
	Search  string `query:"search"`
	Sort    string `query:"sort"`     // "campo", "-campo" (desc) o "+campo" (asc)
	Page    int    `query:"page"`     // 1-based
	PerPage int    `query:"per_page"` // por defecto LIST_PAGE_SIZE
	Col     int    `query:"col"`      // desplazamiento de la ventana de columnas
}

// ── Respuestas ──

// SortInfo orden efectivo aplicado.
type SortInfo struct {
	Key  string `json:"key"`
	Desc bool   `json:"desc"`
}

// ColumnInfo columna visible de la ventana actual.
type ColumnInfo struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// ColumnsInfo ventana de columnas.
type ColumnsInfo struct {
	Visible        []ColumnInfo `json:"visible"`
	Offset         int          `json:"offset"`
	Total          int          `json:"total"`
	CanScrollLeft  bool         `json:"can_scroll_left"`
	CanScrollRight bool         `json:"can_scroll_right"`
}

// ListView respuesta de GET /api/<entidad>: página de la vista derivada.
// Total es el tamaño de la colección cruda; Filtered el de la vista filtrada.
type ListView[T any] struct {
	Items    []T                 `json:"items"`
	Total    int                 `json:"total"`
	Filtered int                 `json:"filtered"`
	Page     PageInfo            `json:"page"`
	Options  map[string][]string `json:"options"`
	Sort     SortInfo            `json:"sort"`
	Columns  ColumnsInfo         `json:"columns"`
}

// BulkDeleteRequest cuerpo de POST /api/<entidad>/bulk-delete.
type BulkDeleteRequest struct {
	Keys []string `json:"keys"`
}

// BulkDeleteResponse resultado por clave del borrado masivo.
type BulkDeleteResponse struct {
	Requested int               `json:"requested"`
	Deleted   []string          `json:"deleted"`
	Failed    map[string]string `json:"failed,omitempty"`
}
