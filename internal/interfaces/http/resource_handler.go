package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/classicmodels-admin/internal/application/dto"
	"github.com/jhoicas/classicmodels-admin/internal/application/export"
	"github.com/jhoicas/classicmodels-admin/internal/application/form"
	"github.com/jhoicas/classicmodels-admin/internal/application/listview"
	"github.com/jhoicas/classicmodels-admin/internal/application/usecase"
	"github.com/jhoicas/classicmodels-admin/internal/domain"
	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
)

// pinnedColumns columnas que no se desplazan (la clave del registro).
const pinnedColumns = 1

// ListDefaults tamaños por defecto de las vistas de lista.
type ListDefaults struct {
	PageSize     int
	ColumnWindow int
}

// Resource describe cómo se expone una entidad por HTTP.
type Resource[T entity.Keyed, R any] struct {
	Manager  *usecase.Manager[T]
	Title    string                      // título de los archivos exportados
	Parse    func(form.State) (T, error) // formulario -> entidad validada
	Response func(T) R                   // entidad -> DTO
	KeyParts []string                    // campos del formulario que forman la clave
}

// ResourceHandler CRUD, vista de lista, borrado masivo y exportación de una entidad.
type ResourceHandler[T entity.Keyed, R any] struct {
	res      Resource[T, R]
	exporter *export.UseCase
	defaults ListDefaults
}

// NewResourceHandler construye el handler.
func NewResourceHandler[T entity.Keyed, R any](res Resource[T, R], exporter *export.UseCase, defaults ListDefaults) *ResourceHandler[T, R] {
	if len(res.KeyParts) == 0 {
		res.KeyParts = []string{"key"}
	}
	return &ResourceHandler[T, R]{res: res, exporter: exporter, defaults: defaults}
}

// Register monta las rutas bajo group. Las rutas de escritura pasan por write.
func (h *ResourceHandler[T, R]) Register(group fiber.Router, write ...fiber.Handler) {
	item := ""
	for i := range h.res.KeyParts {
		item += "/:k" + strconv.Itoa(i)
	}
	guard := func(handler fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, write...), handler)
	}

	group.Get("/", h.List)
	group.Get("/export", h.Export)
	group.Post("/", guard(h.Create)...)
	group.Post("/bulk-delete", guard(h.BulkDelete)...)
	group.Get(item, h.Get)
	group.Put(item, guard(h.Update)...)
	group.Delete(item, guard(h.Delete)...)
}

// List godoc
// @Summary      Vista de lista de una entidad
// @Description  Búsqueda, filtros filter[campo]=valor, orden, página de filas y ventana de columnas.
// @Tags         recursos
// @Produce      json
// @Security     BearerAuth
// @Param        entity    path   string  true   "customers, products, orders, payments, employees, offices"
// @Param        search    query  string  false  "texto a buscar"
// @Param        sort      query  string  false  "campo, -campo (desc) o +campo (asc)"
// @Param        page      query  int     false  "página (desde 1)"
// @Param        per_page  query  int     false  "filas por página"
// @Param        col       query  int     false  "desplazamiento de la ventana de columnas"
// @Success      200  {object}  dto.ListView[map[string]any]
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/{entity} [get]
func (h *ResourceHandler[T, R]) List(c *fiber.Ctx) error {
	var req dto.ListRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	view, err := h.res.Manager.View(c.UserContext(), h.query(c, req))
	if err != nil {
		return respondError(c, err)
	}

	perPage := req.PerPage
	if perPage <= 0 {
		perPage = h.defaults.PageSize
	}
	pager := listview.NewPager(req.Page, perPage, len(view.Items))
	page := listview.Paginate(view.Items, pager)

	items := make([]R, 0, len(page))
	for _, it := range page {
		items = append(items, h.res.Response(it))
	}

	return c.JSON(dto.ListView[R]{
		Items:    items,
		Total:    view.Total,
		Filtered: len(view.Items),
		Page: dto.PageInfo{
			Page:       pager.Page,
			PerPage:    pager.PerPage,
			TotalPages: pager.TotalPages(),
			Numbers:    pager.PageNumbers(),
			HasPrev:    pager.HasPrev(),
			HasNext:    pager.HasNext(),
		},
		Options: view.Options,
		Sort:    dto.SortInfo{Key: view.Sort.Key, Desc: view.Sort.Desc},
		Columns: h.columns(req.Col),
	})
}

// Export godoc
// @Summary      Exportar la vista filtrada
// @Description  Todas las filas filtradas con las columnas de la ventana actual.
// @Tags         recursos
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        entity  path   string  true   "entidad"
// @Param        format  query  string  false  "pdf o xlsx (por defecto xlsx)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/{entity}/export [get]
func (h *ResourceHandler[T, R]) Export(c *fiber.Ctx) error {
	var req dto.ListRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	format, err := export.ParseFormat(c.Query("format", string(export.FormatXLSX)))
	if err != nil {
		return respondError(c, err)
	}
	view, err := h.res.Manager.View(c.UserContext(), h.query(c, req))
	if err != nil {
		return respondError(c, err)
	}

	cols := h.window().WithOffset(req.Col).Visible()
	table := export.BuildTable(h.res.Title, h.res.Manager.Lister().Spec(), view.Items, cols)
	file, err := h.exporter.Render(c.UserContext(), format, table)
	if err != nil {
		return respondError(c, err)
	}

	c.Attachment(file.Name)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Data)
}

// Get GET /api/<entidad>/:key
func (h *ResourceHandler[T, R]) Get(c *fiber.Ctx) error {
	key, err := h.key(c)
	if err != nil {
		return respondError(c, err)
	}
	item, err := h.res.Manager.Get(c.UserContext(), key)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.res.Response(*item))
}

// Create POST /api/<entidad>
func (h *ResourceHandler[T, R]) Create(c *fiber.Ctx) error {
	state, err := bodyState(c.Body())
	if err != nil {
		return invalidBody(c)
	}
	item, err := h.res.Parse(state)
	if err != nil {
		return respondError(c, err)
	}
	created, err := h.res.Manager.Create(c.UserContext(), item)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.res.Response(*created))
}

// Update PUT /api/<entidad>/:key. La clave de la ruta manda sobre la del cuerpo.
func (h *ResourceHandler[T, R]) Update(c *fiber.Ctx) error {
	key, err := h.key(c)
	if err != nil {
		return respondError(c, err)
	}
	state, err := bodyState(c.Body())
	if err != nil {
		return invalidBody(c)
	}
	parts := strings.SplitN(key, "/", len(h.res.KeyParts))
	for i, field := range h.res.KeyParts {
		if i < len(parts) {
			state = state.With(field, parts[i])
		}
	}
	item, err := h.res.Parse(state)
	if err != nil {
		return respondError(c, err)
	}
	updated, err := h.res.Manager.Update(c.UserContext(), key, item)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.res.Response(*updated))
}

// Delete DELETE /api/<entidad>/:key
func (h *ResourceHandler[T, R]) Delete(c *fiber.Ctx) error {
	key, err := h.key(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.res.Manager.Delete(c.UserContext(), key); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BulkDelete godoc
// @Summary      Borrado masivo
// @Description  Un DELETE por clave y un único refresh. 200 si todo se borró, 207 con el detalle si alguno falló.
// @Tags         recursos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        entity  path  string                 true  "entidad"
// @Param        body    body  dto.BulkDeleteRequest  true  "claves"
// @Success      200  {object}  dto.BulkDeleteResponse
// @Success      207  {object}  dto.BulkDeleteResponse
// @Failure      405  {object}  dto.ErrorResponse
// @Router       /api/{entity}/bulk-delete [post]
func (h *ResourceHandler[T, R]) BulkDelete(c *fiber.Ctx) error {
	var in dto.BulkDeleteRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if len(in.Keys) == 0 {
		return respondError(c, &domain.ValidationError{Fields: map[string]string{"keys": "es obligatorio"}})
	}

	res, err := h.res.Manager.BulkDelete(c.UserContext(), in.Keys)
	out := dto.BulkDeleteResponse{Requested: res.Requested, Deleted: res.Deleted}
	if out.Deleted == nil {
		out.Deleted = []string{}
	}
	if len(res.Failed) > 0 {
		out.Failed = make(map[string]string, len(res.Failed))
		for k, ferr := range res.Failed {
			_, body := mapError(ferr)
			out.Failed[k] = body.Message
		}
	}

	switch {
	case err == nil:
		return c.JSON(out)
	case errors.Is(err, domain.ErrPartialFailure) && len(res.Deleted) > 0:
		return c.Status(fiber.StatusMultiStatus).JSON(out)
	case errors.Is(err, domain.ErrPartialFailure):
		// nada se borró: se informa con el status del primer fallo
		status, body := mapError(res.Failed[res.FailedKeys()[0]])
		if status < fiber.StatusBadRequest {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(struct {
			dto.ErrorResponse
			Result dto.BulkDeleteResponse `json:"result"`
		}{body, out})
	}
	return respondError(c, err)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (h *ResourceHandler[T, R]) query(c *fiber.Ctx, req dto.ListRequest) listview.Query {
	return listview.Query{
		Search:  req.Search,
		Sort:    req.Sort,
		Filters: parseFilters(string(c.Request().URI().QueryString())),
	}
}

func (h *ResourceHandler[T, R]) window() listview.ColumnWindow {
	return listview.NewColumnWindow(len(h.res.Manager.Lister().Spec().Columns), h.defaults.ColumnWindow, pinnedColumns)
}

func (h *ResourceHandler[T, R]) columns(offset int) dto.ColumnsInfo {
	spec := h.res.Manager.Lister().Spec()
	w := h.window().WithOffset(offset)
	visible := make([]dto.ColumnInfo, 0, len(spec.Columns))
	for _, i := range w.Visible() {
		visible = append(visible, dto.ColumnInfo{Key: spec.Columns[i].Key, Title: spec.Columns[i].Title})
	}
	return dto.ColumnsInfo{
		Visible:        visible,
		Offset:         w.Offset(),
		Total:          len(spec.Columns),
		CanScrollLeft:  w.CanScrollLeft(),
		CanScrollRight: w.CanScrollRight(),
	}
}

// key arma la clave del registro con los parámetros de ruta (k0, k1, ...).
func (h *ResourceHandler[T, R]) key(c *fiber.Ctx) (string, error) {
	parts := make([]string, 0, len(h.res.KeyParts))
	for i := range h.res.KeyParts {
		raw := c.Params("k" + strconv.Itoa(i))
		v, err := url.PathUnescape(raw)
		if err != nil || strings.TrimSpace(v) == "" {
			return "", &domain.ValidationError{Fields: map[string]string{h.res.KeyParts[i]: "clave inválida"}}
		}
		parts = append(parts, v)
	}
	return strings.Join(parts, "/"), nil
}

// parseFilters lee los parámetros filter[campo]=valor.
func parseFilters(rawQuery string) map[string]string {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil
	}
	filters := map[string]string{}
	for key, vs := range values {
		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") && len(vs) > 0 {
			if v := strings.TrimSpace(vs[0]); v != "" {
				filters[key[len("filter["):len(key)-1]] = v
			}
		}
	}
	return filters
}

// bodyState convierte el JSON plano del formulario en form.State. Los números
// conservan su representación textual para que la validación los interprete.
func bodyState(body []byte) (form.State, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return form.New(nil), nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return form.State{}, err
	}
	values := make(map[string]string, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case string:
			values[k] = t
		case json.Number:
			values[k] = t.String()
		case bool:
			values[k] = strconv.FormatBool(t)
		case nil:
			values[k] = ""
		}
	}
	return form.New(values), nil
}
