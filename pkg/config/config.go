package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	JWT     JWTConfig
	List    ListConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string
	SwaggerFile string // ruta al swagger.json servido en /docs (vacío = deshabilitado)
}

// HTTPConfig configuración del servidor HTTP del dashboard.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig describe el backend REST que posee los datos.
type BackendConfig struct {
	BaseURL         string
	TimeoutSeconds  int
	BulkConcurrency int    // máximo de DELETE simultáneos en borrado masivo
	TokenFile       string // archivo donde el CLI guarda el bearer token
}

// Timeout devuelve el timeout por petición como duración.
func (c BackendConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// JWTConfig configuración de JWT. Secret vacío = el token solo se inspecciona (sin verificar firma).
type JWTConfig struct {
	Secret     string
	WriteRoles []string // roles que pueden crear, editar y borrar; vacío = todos
}

// ListConfig valores por defecto de las vistas de lista.
type ListConfig struct {
	PageSize     int
	ColumnWindow int
	Locale       string // etiqueta BCP 47 usada para ordenar texto
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_URL, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la Config a partir de una instancia de Viper ya poblada.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "classicmodels-admin"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8081),
		},
		Backend: BackendConfig{
			BaseURL:         strings.TrimRight(getString(v, "BACKEND_URL", "http://localhost:8080/api"), "/"),
			TimeoutSeconds:  getInt(v, "BACKEND_TIMEOUT_SECONDS", 15),
			BulkConcurrency: getInt(v, "BACKEND_BULK_CONCURRENCY", 8),
			TokenFile:       getString(v, "TOKEN_FILE", ""),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			WriteRoles: getList(v, "WRITE_ROLES"),
		},
		List: ListConfig{
			PageSize:     getInt(v, "LIST_PAGE_SIZE", 10),
			ColumnWindow: getInt(v, "LIST_COLUMN_WINDOW", 5),
			Locale:       getString(v, "LOCALE", "en"),
		},
	}

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("config: BACKEND_URL vacío")
	}
	if cfg.List.PageSize <= 0 {
		cfg.List.PageSize = 10
	}
	if cfg.List.ColumnWindow <= 0 {
		cfg.List.ColumnWindow = 5
	}
	if cfg.Backend.BulkConcurrency <= 0 {
		cfg.Backend.BulkConcurrency = 1
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

// getList lee una lista separada por comas, sin elementos vacíos.
func getList(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v.GetString(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
