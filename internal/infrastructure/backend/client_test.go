package backend_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/classicmodels-admin/internal/application/form"
	"github.com/jhoicas/classicmodels-admin/internal/domain"
	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
	"github.com/jhoicas/classicmodels-admin/internal/infrastructure/backend"
	pkgjwt "github.com/jhoicas/classicmodels-admin/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeBackend levanta un servidor httptest que responde con handler y cuenta
// las peticiones recibidas.
type fakeBackend struct {
	srv          *httptest.Server
	hits         atomic.Int32
	unauthorized atomic.Int32
	store        *backend.MemoryTokenStore
	c            *backend.Client
}

func newFakeBackend(t *testing.T, handler http.HandlerFunc) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{store: backend.NewMemoryTokenStore()}
	fb.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fb.hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(fb.srv.Close)
	fb.c = backend.NewClient(backend.Config{
		BaseURL:        fb.srv.URL + "/api/",
		Timeout:        2 * time.Second,
		Tokens:         fb.store,
		OnUnauthorized: func() { fb.unauthorized.Add(1) },
	})
	return fb
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// ── Sesión y errores ──

func TestClient_401BorraElTokenYAvisa(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer opaco-123", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.WriteHeader(http.StatusUnauthorized)
	})
	require.NoError(t, fb.store.SetToken("opaco-123"))

	_, err := backend.NewCustomerRepository(fb.c).List(context.Background())

	require.ErrorIs(t, err, domain.ErrSessionExpired)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, domain.FriendlyMessage(http.StatusUnauthorized), apiErr.Message)
	assert.Equal(t, "SESSION_EXPIRED", apiErr.Code)
	assert.Empty(t, fb.store.Token(), "el token se descarta")
	assert.Equal(t, int32(1), fb.unauthorized.Load())
}

func TestClient_401TardioNoBorraUnLoginNuevo(t *testing.T) {
	var fb *fakeBackend
	fb = newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer viejo", r.Header.Get("Authorization"))
		// mientras la petición está en vuelo el usuario vuelve a iniciar sesión
		assert.NoError(t, fb.store.SetToken("nuevo"))
		w.WriteHeader(http.StatusUnauthorized)
	})
	require.NoError(t, fb.store.SetToken("viejo"))

	_, err := backend.NewCustomerRepository(fb.c).List(context.Background())

	require.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Equal(t, "nuevo", fb.store.Token())
}

func TestClient_TokenDelContextoTienePrioridadYNoSeBorra(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer de-la-peticion", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	})
	require.NoError(t, fb.store.SetToken("del-store"))

	ctx := backend.ContextWithToken(context.Background(), "de-la-peticion")
	_, err := backend.NewOfficeRepository(fb.c).List(ctx)

	require.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Equal(t, "del-store", fb.store.Token())
}

func TestClient_JWTExpiradoNoSeAdjunta(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `[]`)
	})
	expired, err := pkgjwt.Generate("secreto", "7", "a@b.co", "admin", -time.Hour)
	require.NoError(t, err)
	require.NoError(t, fb.store.SetToken(expired))

	_, err = backend.NewOfficeRepository(fb.c).List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, fb.store.Token())
}

func TestClient_MensajeDelBackendTienePrioridad(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, `{"code":"DUPLICATE","message":"El cliente 103 ya existe"}`)
	})

	_, err := backend.NewCustomerRepository(fb.c).Get(context.Background(), "103")

	require.ErrorIs(t, err, domain.ErrConflict)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "El cliente 103 ya existe", apiErr.Message)
	assert.Equal(t, "DUPLICATE", apiErr.Code)
}

func TestClient_MensajesAmigablesPorStatus(t *testing.T) {
	cases := map[int]error{
		http.StatusBadRequest:          domain.ErrInvalidInput,
		http.StatusForbidden:           domain.ErrForbidden,
		http.StatusNotFound:            domain.ErrNotFound,
		http.StatusInternalServerError: domain.ErrBackend,
		http.StatusBadGateway:          domain.ErrBackend,
	}
	for status, sentinel := range cases {
		fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
		err := backend.NewOfficeRepository(fb.c).Delete(context.Background(), "7")

		require.ErrorIs(t, err, sentinel, "status %d", status)
		var apiErr *domain.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, domain.FriendlyMessage(status), apiErr.Message)
	}
}

func TestClient_ErrorDeRed(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {})
	fb.srv.Close()

	_, err := backend.NewProductRepository(fb.c).List(context.Background())
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestClient_RespuestaMalformada(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"items": [{"productCode": 12`)
	})

	_, err := backend.NewProductRepository(fb.c).List(context.Background())
	assert.ErrorIs(t, err, domain.ErrDecode)
}

// ── Decodificación tolerante ──

func TestCustomers_ReferenciasAnidadasOPlanas(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/customers", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"content":[
			{"customerNumber":103,"customerName":"Atelier graphique","country":"France",
			 "salesRepEmployee":{"employeeNumber":1370,"firstName":"Gerard","lastName":"Hernandez"},
			 "creditLimit":"21000.00","state":null},
			{"customerNumber":112,"customerName":"Signal Gift Stores","country":"USA",
			 "salesRepEmployeeNumber":"1166","creditLimit":71800},
			{"customerNumber":125,"customerName":"Havel & Zbyszek Co","country":"Poland","creditLimit":null}
		]}`)
	})

	items, err := backend.NewCustomerRepository(fb.c).List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Gerard Hernandez", items[0].SalesRep.Label())
	assert.True(t, items[0].CreditLimit.Equal(decimal.NewFromInt(21000)))
	assert.Empty(t, items[0].State)
	assert.Equal(t, 1166, items[1].SalesRep.Number)
	assert.True(t, items[1].CreditLimit.Equal(decimal.NewFromInt(71800)))
	assert.Nil(t, items[2].SalesRep)
	assert.True(t, items[2].CreditLimit.IsZero())
}

func TestProducts_LineaComoObjetoOTexto(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[
			{"productCode":"S10_1678","productLine":{"productLine":"Motorcycles","textDescription":"..."},"MSRP":95.70,"buyPrice":"48.81"},
			{"productCode":"S10_1949","productLine":"Classic Cars","MSRP":214.30,"buyPrice":98.58}
		]`)
	})

	items, err := backend.NewProductRepository(fb.c).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Motorcycles", items[0].Line)
	assert.Equal(t, "Classic Cars", items[1].Line)
	assert.Equal(t, "95.7", items[0].MSRP.String())
}

func TestOrders_EnviaClienteAnidado(t *testing.T) {
	var body []byte
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/orders/10100", r.URL.Path)
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	})
	s := form.New(map[string]string{
		"orderNumber": "10100", "orderDate": "2003-01-06", "requiredDate": "2003-01-13",
		"status": "Shipped", "customerNumber": "363",
	})
	o, err := form.ParseOrder(s)
	require.NoError(t, err)

	out, err := backend.NewOrderRepository(fb.c).Update(context.Background(), o.Key(), o)
	require.NoError(t, err)

	assert.JSONEq(t, `{"orderNumber":10100,"orderDate":"2003-01-06","requiredDate":"2003-01-13",
		"shippedDate":null,"status":"Shipped","comments":null,"customer":{"customerNumber":363}}`, string(body))
	assert.Equal(t, 363, out.CustomerNumber, "sin cuerpo de respuesta se devuelve lo enviado")
}

// ── Pagos ──

func TestPayments_FormularioProducePayloadAnidado(t *testing.T) {
	var body []byte
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/payments", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ = io.ReadAll(r.Body)
		writeJSON(w, http.StatusCreated, string(body))
	})
	s := form.State{}.
		With("customerNumber", "103").
		With("checkNumber", "HQ336336").
		With("paymentDate", "2024-03-15").
		With("amount", "100.50")
	p, err := form.ParsePayment(s)
	require.NoError(t, err)

	created, err := backend.NewPaymentRepository(fb.c).Create(context.Background(), p)
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":{"customerNumber":103,"checkNumber":"HQ336336"},"paymentDate":"2024-03-15","amount":100.5}`, string(body))
	assert.Equal(t, "103/HQ336336", created.Key())
	assert.True(t, created.Amount.Equal(decimal.RequireFromString("100.5")))
}

func TestPayments_RutaCompuestaEscapada(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/payments/103/HQ%20336", r.URL.EscapedPath())
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, backend.NewPaymentRepository(fb.c).Delete(context.Background(), "103/HQ 336"))

	err := backend.NewPaymentRepository(fb.c).Delete(context.Background(), "sin-cheque")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int32(1), fb.hits.Load())
}

// ── Verbos no soportados ──

func TestVerbosNoSoportados_SinLlamadaDeRed(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no debería llamar al backend: %s %s", r.Method, r.URL.Path)
	})
	ctx := context.Background()

	err := backend.NewOrderRepository(fb.c).Delete(ctx, "10100")
	assert.ErrorIs(t, err, domain.ErrUnsupported)

	_, err = backend.NewPaymentRepository(fb.c).Get(ctx, "103/HQ336336")
	assert.ErrorIs(t, err, domain.ErrUnsupported)

	res := backend.NewResources(fb.c)
	_, err = res.Employees.Update(ctx, "1002", entity.Employee{Number: 1002})
	assert.ErrorIs(t, err, domain.ErrUnsupported)
	assert.ErrorIs(t, res.Employees.Delete(ctx, "1002"), domain.ErrUnsupported)

	assert.Equal(t, int32(0), fb.hits.Load())
}
