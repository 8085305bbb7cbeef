package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/classicmodels-admin/internal/domain"
	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
	"github.com/jhoicas/classicmodels-admin/internal/domain/repository"
)

// verbs operaciones que expone un endpoint de colección.
type verbs uint8

const (
	verbGet verbs = 1 << iota
	verbCreate
	verbUpdate
	verbDelete

	allVerbs = verbGet | verbCreate | verbUpdate | verbDelete
)

// restResource implementa ResourceRepository[T] para un endpoint REST cuyo
// formato de cable es W. Las funciones de mapeo son las únicas que conocen la
// forma JSON del backend.
type restResource[T entity.Keyed, W any] struct {
	c        *Client
	path     string
	verbs    verbs
	toEntity func(W) (T, error)
	toWire   func(T) W
	itemPath func(key string) (string, error)
}

var _ repository.CustomerRepository = (*restResource[entity.Customer, customerWire])(nil)

// defaultItemPath "/{path}/{key}" con la clave escapada.
func defaultItemPath(base string) func(string) (string, error) {
	return func(key string) (string, error) {
		if key == "" {
			return "", fmt.Errorf("clave vacía: %w", domain.ErrInvalidInput)
		}
		return base + "/" + url.PathEscape(key), nil
	}
}

func (r *restResource[T, W]) unsupported(op string) error {
	return fmt.Errorf("backend: %s %s: %w", op, r.path, domain.ErrUnsupported)
}

// List GET /{path}.
func (r *restResource[T, W]) List(ctx context.Context) ([]T, error) {
	raw, err := r.c.doRaw(ctx, http.MethodGet, r.path, nil, nil)
	if err != nil {
		return nil, err
	}
	wires, err := decodeList[W](raw)
	if err != nil {
		return nil, fmt.Errorf("backend: GET %s: %w: %v", r.path, domain.ErrDecode, err)
	}
	out := make([]T, 0, len(wires))
	for _, w := range wires {
		item, err := r.toEntity(w)
		if err != nil {
			return nil, fmt.Errorf("backend: GET %s: %w: %v", r.path, domain.ErrDecode, err)
		}
		out = append(out, item)
	}
	return out, nil
}

// Get GET /{path}/{key}.
func (r *restResource[T, W]) Get(ctx context.Context, key string) (*T, error) {
	if r.verbs&verbGet == 0 {
		return nil, r.unsupported("GET")
	}
	p, err := r.itemPath(key)
	if err != nil {
		return nil, err
	}
	return r.roundTrip(ctx, http.MethodGet, p, nil)
}

// Create POST /{path}.
func (r *restResource[T, W]) Create(ctx context.Context, item T) (*T, error) {
	if r.verbs&verbCreate == 0 {
		return nil, r.unsupported("POST")
	}
	w := r.toWire(item)
	out, err := r.roundTrip(ctx, http.MethodPost, r.path, &w)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return &item, nil
	}
	return out, nil
}

// Update PUT /{path}/{key}.
func (r *restResource[T, W]) Update(ctx context.Context, key string, item T) (*T, error) {
	if r.verbs&verbUpdate == 0 {
		return nil, r.unsupported("PUT")
	}
	p, err := r.itemPath(key)
	if err != nil {
		return nil, err
	}
	w := r.toWire(item)
	out, err := r.roundTrip(ctx, http.MethodPut, p, &w)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return &item, nil
	}
	return out, nil
}

// Delete DELETE /{path}/{key}.
func (r *restResource[T, W]) Delete(ctx context.Context, key string) error {
	if r.verbs&verbDelete == 0 {
		return r.unsupported("DELETE")
	}
	p, err := r.itemPath(key)
	if err != nil {
		return err
	}
	_, err = r.c.doRaw(ctx, http.MethodDelete, p, nil, nil)
	return err
}

// roundTrip envía in (si no es nil) y decodifica una entidad; devuelve nil si
// el backend respondió sin cuerpo.
func (r *restResource[T, W]) roundTrip(ctx context.Context, method, path string, in *W) (*T, error) {
	var body any
	if in != nil {
		body = in
	}
	var w *W
	if err := r.c.do(ctx, method, path, nil, body, &w); err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}
	item, err := r.toEntity(*w)
	if err != nil {
		return nil, fmt.Errorf("backend: %s %s: %w: %v", method, path, domain.ErrDecode, err)
	}
	return &item, nil
}

// NewResources todos los repositorios de recursos sobre el mismo cliente.
func NewResources(c *Client) repository.Resources {
	return repository.Resources{
		Customers: NewCustomerRepository(c),
		Products:  NewProductRepository(c),
		Orders:    NewOrderRepository(c),
		Payments:  NewPaymentRepository(c),
		Employees: NewEmployeeRepository(c),
		Offices:   NewOfficeRepository(c),
	}
}
