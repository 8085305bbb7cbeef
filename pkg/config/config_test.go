package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/classicmodels-admin/pkg/config"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "http://localhost:8080/api", cfg.Backend.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout())
	assert.Equal(t, 10, cfg.List.PageSize)
	assert.Equal(t, 5, cfg.List.ColumnWindow)
	assert.Equal(t, "0.0.0.0:8081", cfg.HTTP.Addr())
}

func TestFromViper_SobrescribeDesdeValores(t *testing.T) {
	v := viper.New()
	v.Set("BACKEND_URL", "https://erp.example.com/api/")
	v.Set("LIST_PAGE_SIZE", "25")
	v.Set("BACKEND_BULK_CONCURRENCY", 0)
	v.Set("HTTP_PORT", "no-es-numero")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "https://erp.example.com/api", cfg.Backend.BaseURL, "se elimina la barra final")
	assert.Equal(t, 25, cfg.List.PageSize)
	assert.Equal(t, 1, cfg.Backend.BulkConcurrency, "la concurrencia mínima es 1")
	assert.Equal(t, 8081, cfg.HTTP.Port, "un puerto inválido cae al valor por defecto")
}

func TestFromViper_BackendVacioEsError(t *testing.T) {
	v := viper.New()
	v.Set("BACKEND_URL", "")

	_, err := config.FromViper(v)
	assert.Error(t, err)
}

func TestFromViper_RolesDeEscritura(t *testing.T) {
	v := viper.New()
	v.Set("WRITE_ROLES", " admin, ,sales ")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "sales"}, cfg.JWT.WriteRoles)

	cfg, err = config.FromViper(viper.New())
	require.NoError(t, err)
	assert.Empty(t, cfg.JWT.WriteRoles)
}
