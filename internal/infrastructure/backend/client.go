// Package backend implementa los puertos de repositorio contra el backend REST
// que posee los datos (clientes, productos, pedidos, pagos, empleados, oficinas).
//
// Usa net/http de la librería estándar; cada llamada lleva context, timeout,
// X-Request-ID y el bearer token de la sesión.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/classicmodels-admin/internal/domain"
	pkgjwt "github.com/jhoicas/classicmodels-admin/pkg/jwt"
	"github.com/jhoicas/classicmodels-admin/pkg/logger"
)

const maxResponseBytes = 8 << 20

// Config opciones del cliente.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client // opcional; por defecto uno propio sin timeout global
	Tokens     TokenStore   // opcional; por defecto en memoria
	Logger     *logger.Logger

	// OnUnauthorized se invoca tras un 401, después de borrar el token del store.
	// Es el equivalente a "redirigir al login" de cada superficie.
	OnUnauthorized func()
}

// Client cliente HTTP/JSON del backend.
type Client struct {
	baseURL        string
	timeout        time.Duration
	http           *http.Client
	tokens         TokenStore
	log            *logger.Logger
	onUnauthorized func()
	now            func() time.Time
}

// NewClient construye el cliente.
func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		timeout:        cfg.Timeout,
		http:           cfg.HTTPClient,
		tokens:         cfg.Tokens,
		log:            cfg.Logger,
		onUnauthorized: cfg.OnUnauthorized,
		now:            time.Now,
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.tokens == nil {
		c.tokens = NewMemoryTokenStore()
	}
	if c.log == nil {
		c.log = logger.Nop()
	}
	if c.timeout <= 0 {
		c.timeout = 15 * time.Second
	}
	return c
}

// Tokens devuelve el store de tokens del cliente.
func (c *Client) Tokens() TokenStore { return c.tokens }

// errorBody formatos de error que devuelve el backend.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// resolveToken devuelve el token a adjuntar y si proviene del store.
// Un JWT del store ya expirado se descarta sin adjuntarlo.
func (c *Client) resolveToken(ctx context.Context) (string, bool) {
	if tok, ok := TokenFromContext(ctx); ok {
		return tok, false
	}
	tok := c.tokens.Token()
	if tok == "" {
		return "", false
	}
	if _, err := pkgjwt.Inspect(tok, c.now()); errors.Is(err, pkgjwt.ErrExpired) {
		c.log.Info().Msg("backend: token expirado descartado")
		_ = c.tokens.Clear()
		return "", false
	}
	return tok, true
}

// do ejecuta una petición JSON. in se serializa como cuerpo (si no es nil) y la
// respuesta se deserializa en out (si no es nil y hay cuerpo).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	raw, err := c.doRaw(ctx, method, path, query, in)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("backend: %s %s: %w: %v", method, path, domain.ErrDecode, err)
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values, in any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("backend: serializar %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("backend: crear petición %s %s: %w", method, path, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	token, fromStore := c.resolveToken(ctx)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Str("request_id", requestID).Msg("backend: llamada fallida")
		switch {
		case errors.Is(ctx.Err(), context.Canceled):
			return nil, fmt.Errorf("backend: %s %s: %w", method, path, context.Canceled)
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			return nil, fmt.Errorf("backend: %s %s: %w (%w)", method, path, domain.ErrNetwork, context.DeadlineExceeded)
		}
		return nil, fmt.Errorf("backend: %s %s: %w: %v", method, path, domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("backend: %s %s: leer respuesta: %w: %v", method, path, domain.ErrNetwork, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Str("request_id", requestID).
		Msg("backend: llamada")

	if resp.StatusCode == http.StatusUnauthorized {
		// un login posterior pudo reemplazar el token: solo se borra el enviado
		if fromStore {
			_ = c.tokens.ClearIf(token)
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("backend: %s %s: %w", method, path, newAPIError(resp.StatusCode, raw))
	}
	return raw, nil
}

// newAPIError arma el APIError; si el backend no envía mensaje se usa el
// mensaje amigable del status.
func newAPIError(status int, raw []byte) *domain.APIError {
	apiErr := &domain.APIError{Status: status, Code: statusCode(status)}
	var eb errorBody
	if json.Unmarshal(raw, &eb) == nil {
		if eb.Code != "" {
			apiErr.Code = eb.Code
		}
		apiErr.Message = eb.Message
		if apiErr.Message == "" {
			apiErr.Message = eb.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = domain.FriendlyMessage(status)
	}
	return apiErr
}

func statusCode(status int) string {
	switch {
	case status == http.StatusBadRequest:
		return "BAD_REQUEST"
	case status == http.StatusUnauthorized:
		return "SESSION_EXPIRED"
	case status == http.StatusForbidden:
		return "FORBIDDEN"
	case status == http.StatusNotFound:
		return "NOT_FOUND"
	case status == http.StatusConflict:
		return "CONFLICT"
	case status == http.StatusUnprocessableEntity:
		return "VALIDATION"
	case status >= 500:
		return "BACKEND_ERROR"
	}
	return "HTTP_ERROR"
}

// decodeList acepta tanto un arreglo JSON como un objeto envoltorio
// ({"items": [...]}, {"data": [...]} o {"content": [...]}).
func decodeList[W any](raw []byte) ([]W, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var out []W
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	for _, key := range []string{"items", "data", "content"} {
		if inner, ok := envelope[key]; ok {
			return decodeList[W](inner)
		}
	}
	return nil, fmt.Errorf("lista sin arreglo reconocible")
}
