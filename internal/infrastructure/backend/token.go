package backend

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore guarda el bearer token opaco emitido por el colaborador de auth.
type TokenStore interface {
	Token() string
	SetToken(token string) error
	Clear() error
	// ClearIf borra solo si el token guardado sigue siendo token.
	ClearIf(token string) error
}

// ── Token por petición ────────────────────────────────────────────────────────

type tokenCtxKey struct{}

// ContextWithToken adjunta un token a la petición en curso. Tiene prioridad
// sobre el TokenStore y no se borra ante un 401 (lo usa el servidor, donde
// cada petición entrante trae su propio token).
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey{}, token)
}

// TokenFromContext devuelve el token adjunto con ContextWithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(tokenCtxKey{}).(string)
	return tok, ok && tok != ""
}

// ── Memoria ───────────────────────────────────────────────────────────────────

// MemoryTokenStore token en memoria del proceso.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryTokenStore construye el store vacío.
func NewMemoryTokenStore() *MemoryTokenStore { return &MemoryTokenStore{} }

func (s *MemoryTokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryTokenStore) SetToken(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *MemoryTokenStore) Clear() error { return s.SetToken("") }

func (s *MemoryTokenStore) ClearIf(token string) error {
	s.mu.Lock()
	if s.token == token {
		s.token = ""
	}
	s.mu.Unlock()
	return nil
}

// ── Archivo ───────────────────────────────────────────────────────────────────

// FileTokenStore persiste el token en un archivo 0600 para que el CLI recuerde
// la sesión entre ejecuciones.
type FileTokenStore struct {
	mu   sync.Mutex
	path string
}

// NewFileTokenStore construye el store. Si path está vacío usa
// $XDG_CONFIG_HOME/classicmodels-admin/token (o el equivalente del SO).
func NewFileTokenStore(path string) (*FileTokenStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("token: directorio de configuración: %w", err)
		}
		path = filepath.Join(dir, "classicmodels-admin", "token")
	}
	return &FileTokenStore{path: path}, nil
}

// Path ruta del archivo de token.
func (s *FileTokenStore) Path() string { return s.path }

func (s *FileTokenStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *FileTokenStore) read() string {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func (s *FileTokenStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("token: crear directorio: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("token: escribir: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove()
}

// ClearIf compara y borra bajo el mismo lock.
func (s *FileTokenStore) ClearIf(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.read() != token {
		return nil
	}
	return s.remove()
}

func (s *FileTokenStore) remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("token: borrar: %w", err)
	}
	return nil
}
