package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/classicmodels-admin/internal/application/analytics"
	"github.com/jhoicas/classicmodels-admin/internal/application/auth"
	"github.com/jhoicas/classicmodels-admin/internal/application/dto"
	"github.com/jhoicas/classicmodels-admin/internal/application/export"
	"github.com/jhoicas/classicmodels-admin/internal/application/listview"
	"github.com/jhoicas/classicmodels-admin/internal/application/usecase"
	"github.com/jhoicas/classicmodels-admin/internal/infrastructure/backend"
	"github.com/jhoicas/classicmodels-admin/internal/infrastructure/pdf"
	"github.com/jhoicas/classicmodels-admin/internal/infrastructure/xlsx"
	apphttp "github.com/jhoicas/classicmodels-admin/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Backend falso
// ──────────────────────────────────────────────────────────────────────────────

type recorded struct {
	method, path, auth string
	body               []byte
}

type fakeAPI struct {
	mu       sync.Mutex
	calls    []recorded
	handlers map[string]http.HandlerFunc // "METHOD /ruta"
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.calls = append(f.calls, recorded{r.Method, r.URL.EscapedPath(), r.Header.Get("Authorization"), body})
	h, ok := f.handlers[r.Method+" "+r.URL.EscapedPath()]
	f.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	r.Body = io.NopCloser(strings.NewReader(string(body)))
	h(w, r)
}

func (f *fakeAPI) last(method, path string) (recorded, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].method == method && f.calls[i].path == path {
			return f.calls[i], true
		}
	}
	return recorded{}, false
}

func jsonReply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

const customersJSON = `[
	{"customerNumber":103,"customerName":"Atelier graphique","country":"France","city":"Nantes","creditLimit":21000},
	{"customerNumber":112,"customerName":"Signal Gift Stores","country":"USA","city":"Las Vegas","creditLimit":71800},
	{"customerNumber":114,"customerName":"Australian Collectors, Co.","country":"Australia","city":"Melbourne","creditLimit":117300},
	{"customerNumber":124,"customerName":"Mini Gifts Distributors Ltd.","country":"USA","city":"San Rafael","creditLimit":210500}
]`

// newTestServer arma el router completo contra el backend falso. Sin
// JWT_SECRET: el token es opaco y se reenvía tal cual.
func newTestServer(t *testing.T, api *fakeAPI) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	client := backend.NewClient(backend.Config{BaseURL: srv.URL + "/api", Timeout: 2 * time.Second})
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Managers:     usecase.NewSet(backend.NewResources(client), listview.NewCollator("en"), usecase.WithConcurrency(2)),
		AuthUC:       auth.NewAuthUseCase(backend.NewAuthRepository(client), nil),
		DashboardUC:  appanalytics.NewDashboardUseCase(backend.NewDashboardRepository(client)),
		ProductLines: backend.NewProductLineRepository(client),
		Exporter:     export.NewUseCase(pdf.NewMarotoPDFGenerator("test"), xlsx.NewExcelizeGenerator()),
		Lists:        apphttp.ListDefaults{PageSize: 10, ColumnWindow: 3},
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Authorization", "Bearer session-123")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Vista de lista
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FiltraOrdenaYPagina(t *testing.T) {
	api := &fakeAPI{handlers: map[string]http.HandlerFunc{
		"GET /api/customers": jsonReply(http.StatusOK, customersJSON),
	}}
	app := newTestServer(t, api)

	resp := call(t, app, http.MethodGet, "/api/customers?filter%5Bcountry%5D=USA&sort=-creditLimit&per_page=1&page=2", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view dto.ListView[dto.CustomerResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))

	assert.Equal(t, 4, view.Total)
	assert.Equal(t, 2, view.Filtered)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 112, view.Items[0].Number, "página 2 de [124, 112]")
	assert.Equal(t, dto.SortInfo{Key: "creditLimit", Desc: true}, view.Sort)
	assert.Equal(t, dto.PageInfo{Page: 2, PerPage: 1, TotalPages: 2, Numbers: []int{1, 2}, HasPrev: true}, view.Page)
	assert.Equal(t, []string{"Australia", "France", "USA"}, view.Options["country"])

	got, ok := api.last(http.MethodGet, "/api/customers")
	require.True(t, ok)
	assert.Equal(t, "Bearer session-123", got.auth, "el token del usuario viaja al backend")
}

func TestList_VentanaDeColumnas(t *testing.T) {
	api := &fakeAPI{handlers: map[string]http.HandlerFunc{
		"GET /api/customers": jsonReply(http.StatusOK, customersJSON),
	}}
	app := newTestServer(t, api)

	resp := call(t, app, http.MethodGet, "/api/customers?col=3", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view dto.ListView[dto.CustomerResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	keys := make([]string, 0, len(view.Columns.Visible))
	for _, c := range view.Columns.Visible {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{"number", "city", "state", "country"}, keys, "la clave queda fija")
	assert.True(t, view.Columns.CanScrollLeft)
	assert.True(t, view.Columns.CanScrollRight)
	assert.Equal(t, 9, view.Columns.Total)
}

func TestList_SesionExpiradaRedirigeAlLogin(t *testing.T) {
	api := &fakeAPI{handlers: map[string]http.HandlerFunc{
		"GET /api/products": jsonReply(http.StatusUnauthorized, `{"message":"jwt expired"}`),
	}}
	app := newTestServer(t, api)

	resp := call(t, app, http.MethodGet, "/api/products", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeError(t, resp)
	assert.Equal(t, "SESSION_EXPIRED", body.Code)
	assert.Equal(t, "/login", body.Redirect)
}

func TestList_BackendCaido(t *testing.T) {
	api := &fakeAPI{handlers: map[string]http.HandlerFunc{
		"GET /api/offices": jsonReply(http.StatusInternalServerError, `{}`),
	}}
	app := newTestServer(t, api)

	resp := call(t, app, http.MethodGet, "/api/offices", "")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "BACKEND_ERROR", decodeError(t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePayment_PayloadAnidado(t *testing.T) {
	api := &fakeAPI{handlers: map[string]http.HandlerFunc{
		"POST /api/payments": func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write(body)
		},
	}}
	app := newTestServer(t, api)

	resp := call(t, app, http.MethodPost, "/api/payments",
		`{"customerNumber":103,"checkNumber":"HQ336336","paymentDate":"2024-03-15","amount":"100.50"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	sent, ok := api.last(http.MethodPost, "/api/payments")
	require.True(t, ok)
	assert.JSONEq(t, `{"id":{"customerNumber":103,"checkNumber":"HQ336336"},"paymentDate":"2024-03-15","amount":100.5}`, string(sent.body))

	var out dto.PaymentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "100.5", out.Amount.String())
}

func TestCreate_ValidacionPorCampo(t *testing.T) {
	api := &fakeAPI{handlers: map[string]http.HandlerFunc{}}
	app := newTestServer(t, api)

	resp := call(t, app, http.MethodPost, "/api/payments", `{"customerNumber":103,"amount":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeError(t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Fields, "checkNumber")
	assert.Contains(t, body.Fields, "amount")
	_, called := api.last(http.MethodPost, "/api/payments")
	assert.False(t, called, "un formulario inválido no llega al backend")
}

func TestUpdatePayment_ClaveCompuestaEnLaRuta(t *testing.T) {
	api := &fakeAPI{handlers: map[string]http.HandlerFunc{
		"PUT /api/payments/103/HQ%20336": func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(body)
		},
	}}
	app := newTestServer(t, api)

	resp := call(t, app, http.MethodPut, "/api/payments/103/HQ%20336", `{"paymentDate":"2024-03-15","amount":5}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.PaymentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "HQ 336", out.CheckNumber)
	assert.Equal(t, 103, out.CustomerNumber)
}

func TestDeleteOrder_NoSoportado(t *testing.T) {
	api := &fakeAPI{handlers: map[string]http.HandlerFunc{}}
	app := newTestServer(t, api)

	resp := call(t, app, http.MethodDelete, "/api/orders/10100", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "UNSUPPORTED", decodeError(t, resp).Code)
	assert.Empty(t, api.calls)
}

func TestBulkDelete_ResultadoParcial(t *testing.T) {
	api := &fakeAPI{handlers: map[string]http.HandlerFunc{
		"DELETE /api/customers/103": jsonReply(http.StatusNoContent, ""),
		"DELETE /api/customers/112": jsonReply(http.StatusConflict, `{"message":"el cliente tiene pedidos"}`),
	}}
	app := newTestServer(t, api)

	resp := call(t, app, http.MethodPost, "/api/customers/bulk-delete", `{"keys":["103","112"]}`)
	require.Equal(t, http.StatusMultiStatus, resp.StatusCode)

	var out dto.BulkDeleteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 2, out.Requested)
	assert.Equal(t, []string{"103"}, out.Deleted)
	assert.Equal(t, map[string]string{"112": "el cliente tiene pedidos"}, out.Failed)
}

func TestBulkDelete_SinClaves(t *testing.T) {
	app := newTestServer(t, &fakeAPI{})

	resp := call(t, app, http.MethodPost, "/api/customers/bulk-delete", `{"keys":[]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportación y dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_XLSXComoAdjunto(t *testing.T) {
	api := &fakeAPI{handlers: map[string]http.HandlerFunc{
		"GET /api/customers": jsonReply(http.StatusOK, customersJSON),
	}}
	app := newTestServer(t, api)

	resp := call(t, app, http.MethodGet, "/api/customers/export?format=xlsx&search=gift", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")

	data, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(data), "PK"), "xlsx es un zip")
}

func TestExport_FormatoDesconocido(t *testing.T) {
	app := newTestServer(t, &fakeAPI{})

	resp := call(t, app, http.MethodGet, "/api/customers/export?format=csv", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_FORMAT", decodeError(t, resp).Code)
}

func TestDashboard_FallaCompletoSiFallaUnaConsulta(t *testing.T) {
	api := &fakeAPI{handlers: map[string]http.HandlerFunc{
		"GET /api/dashboard/stats":         jsonReply(http.StatusOK, `{"totalCustomers":122}`),
		"GET /api/dashboard/sales-trend":   jsonReply(http.StatusInternalServerError, `{}`),
		"GET /api/dashboard/top-products":  jsonReply(http.StatusOK, `[]`),
		"GET /api/dashboard/top-customers": jsonReply(http.StatusOK, `[]`),
	}}
	app := newTestServer(t, api)

	resp := call(t, app, http.MethodGet, "/api/dashboard/summary", "")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestAuth_CheckEmailEsPublico(t *testing.T) {
	api := &fakeAPI{handlers: map[string]http.HandlerFunc{
		"GET /api/auth/check-email": jsonReply(http.StatusOK, `{"exists":false}`),
	}}
	app := newTestServer(t, api)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check-email?email=new@classicmodelcars.com", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.CheckEmailResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.Exists)
}
