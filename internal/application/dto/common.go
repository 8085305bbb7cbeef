package dto

// PageInfo metadatos de la página de filas en la vista de lista.
type PageInfo struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
	Numbers    []int `json:"numbers"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

// ErrorResponse cuerpo de error HTTP. Redirect indica a la UI a dónde ir
// (p. ej. "/login" tras un 401); Fields detalla errores de validación.
type ErrorResponse struct {
	Code     string            `json:"code"`
	Message  string            `json:"message"`
	Redirect string            `json:"redirect,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
}
