package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/classicmodels-admin/internal/domain"
	"github.com/jhoicas/classicmodels-admin/internal/domain/repository"
	"github.com/jhoicas/classicmodels-admin/internal/infrastructure/backend"
)

func TestAuth_LoginAceptaAccessToken(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "diane@classicmodelcars.com", in["email"])
		writeJSON(w, http.StatusOK, `{"accessToken":"abc","user":{"id":1002,"email":"diane@classicmodelcars.com","role":"admin"}}`)
	})

	s, err := backend.NewAuthRepository(fb.c).Login(context.Background(), repository.Credentials{Email: "diane@classicmodelcars.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "abc", s.Token)
	assert.Equal(t, "1002", s.User.ID)
	assert.Equal(t, "admin", s.User.Role)
}

func TestAuth_LoginSinTokenEsErrorDeFormato(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"user":{"id":"u1"}}`)
	})

	_, err := backend.NewAuthRepository(fb.c).Login(context.Background(), repository.Credentials{Email: "a@b.co", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrDecode)
}

func TestAuth_CheckEmailYValidate(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/check-email":
			assert.Equal(t, "a+b@c.co", r.URL.Query().Get("email"))
			writeJSON(w, http.StatusOK, `{"exists":true}`)
		case "/api/auth/validate":
			writeJSON(w, http.StatusOK, `{"valid":false}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	repo := backend.NewAuthRepository(fb.c)

	exists, err := repo.EmailExists(context.Background(), "a+b@c.co")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.Validate(context.Background())
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestDashboard_LimiteEnQuery(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, `{"data":[{"customerNumber":141,"customerName":"Euro+ Shopping Channel","totalPaid":"715738.98"}]}`)
	})

	top, err := backend.NewDashboardRepository(fb.c).TopCustomers(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "715738.98", top[0].TotalPaid.String())
}

func TestFileTokenStore_PersisteConPermisosRestringidos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "token")
	store, err := backend.NewFileTokenStore(path)
	require.NoError(t, err)

	assert.Empty(t, store.Token())
	require.NoError(t, store.SetToken("abc"))
	assert.Equal(t, "abc", store.Token())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "borrar un token inexistente no es error")
	assert.Empty(t, store.Token())
}

func TestFileTokenStore_ClearIfConservaOtroToken(t *testing.T) {
	store, err := backend.NewFileTokenStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)
	require.NoError(t, store.SetToken("nuevo"))

	require.NoError(t, store.ClearIf("viejo"))
	assert.Equal(t, "nuevo", store.Token())

	require.NoError(t, store.ClearIf("nuevo"))
	assert.Empty(t, store.Token())
}
