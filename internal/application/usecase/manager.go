// Package usecase contiene los casos de uso CRUD de cada entidad: listar con
// la vista derivada, crear, actualizar, eliminar y eliminar en lote.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/classicmodels-admin/internal/application/collection"
	"github.com/jhoicas/classicmodels-admin/internal/application/listview"
	"github.com/jhoicas/classicmodels-admin/internal/domain"
	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
	"github.com/jhoicas/classicmodels-admin/internal/domain/repository"
	"github.com/jhoicas/classicmodels-admin/pkg/logger"
)

const defaultBulkConcurrency = 8

// BulkResult resultado de un borrado masivo. Deleted y las claves de Failed
// van ordenadas.
type BulkResult struct {
	Requested int
	Deleted   []string
	Failed    map[string]error
}

// FailedKeys claves que no se pudieron borrar, ordenadas.
func (r BulkResult) FailedKeys() []string {
	keys := make([]string, 0, len(r.Failed))
	for k := range r.Failed {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Option configura un Manager.
type Option func(*options)

type options struct {
	concurrency int
	log         *logger.Logger
	store       bool
}

// WithConcurrency límite de DELETE simultáneos en BulkDelete.
func WithConcurrency(n int) Option {
	return func(o *options) { o.concurrency = n }
}

// WithLogger logger del caso de uso.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithStore mantiene la colección en memoria (TUI/CLI). Las mutaciones
// exitosas la refrescan.
func WithStore() Option {
	return func(o *options) { o.store = true }
}

// Manager casos de uso genéricos sobre un recurso.
type Manager[T entity.Keyed] struct {
	name        string
	repo        repository.ResourceRepository[T]
	lister      *listview.Lister[T]
	store       *collection.Store[T]
	concurrency int
	log         *logger.Logger
}

// NewManager construye el caso de uso para la entidad name.
func NewManager[T entity.Keyed](name string, repo repository.ResourceRepository[T], spec listview.Spec[T], col *listview.Collator, opts ...Option) *Manager[T] {
	o := options{concurrency: defaultBulkConcurrency}
	for _, opt := range opts {
		opt(&o)
	}
	if o.concurrency < 1 {
		o.concurrency = 1
	}
	if o.log == nil {
		o.log = logger.Nop()
	}
	m := &Manager[T]{
		name:        name,
		repo:        repo,
		lister:      listview.NewLister(spec, col),
		concurrency: o.concurrency,
		log:         o.log.Component("usecase." + name),
	}
	if o.store {
		m.store = collection.New(repo.List)
	}
	return m
}

// Name nombre de la entidad (ruta REST).
func (m *Manager[T]) Name() string { return m.name }

// Lister reglas de listado de la entidad.
func (m *Manager[T]) Lister() *listview.Lister[T] { return m.lister }

// Store colección en memoria; nil si el Manager no la mantiene.
func (m *Manager[T]) Store() *collection.Store[T] { return m.store }

// Fetch trae la colección completa del backend.
func (m *Manager[T]) Fetch(ctx context.Context) ([]T, error) {
	items, err := m.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: listar %s: %w", m.name, err)
	}
	return items, nil
}

// View trae la colección y deriva la vista para la query.
func (m *Manager[T]) View(ctx context.Context, q listview.Query) (listview.Result[T], error) {
	items, err := m.Fetch(ctx)
	if err != nil {
		return listview.Result[T]{}, err
	}
	return m.lister.Derive(items, q), nil
}

// Get detalle por clave.
func (m *Manager[T]) Get(ctx context.Context, key string) (*T, error) {
	item, err := m.repo.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("usecase: obtener %s %q: %w", m.name, key, err)
	}
	return item, nil
}

// Create da de alta y refresca la colección.
func (m *Manager[T]) Create(ctx context.Context, item T) (*T, error) {
	created, err := m.repo.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("usecase: crear %s: %w", m.name, err)
	}
	m.refresh(ctx)
	return created, nil
}

// Update modifica el registro key y refresca la colección.
func (m *Manager[T]) Update(ctx context.Context, key string, item T) (*T, error) {
	updated, err := m.repo.Update(ctx, key, item)
	if err != nil {
		return nil, fmt.Errorf("usecase: actualizar %s %q: %w", m.name, key, err)
	}
	m.refresh(ctx)
	return updated, nil
}

// Delete elimina el registro key y refresca la colección.
func (m *Manager[T]) Delete(ctx context.Context, key string) error {
	if err := m.repo.Delete(ctx, key); err != nil {
		return fmt.Errorf("usecase: eliminar %s %q: %w", m.name, key, err)
	}
	m.refresh(ctx)
	return nil
}

// BulkDelete un DELETE por clave en paralelo (sin orden garantizado) y un
// único refresh al final. Si alguno falla devuelve ErrPartialFailure junto
// con el detalle por clave.
func (m *Manager[T]) BulkDelete(ctx context.Context, keys []string) (BulkResult, error) {
	keys = dedupe(keys)
	res := BulkResult{Requested: len(keys), Deleted: []string{}, Failed: map[string]error{}}
	if len(keys) == 0 {
		return res, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)
	for _, key := range keys {
		g.Go(func() error {
			err := m.repo.Delete(gctx, key)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				res.Failed[key] = err
				return nil // los demás DELETE siguen
			}
			res.Deleted = append(res.Deleted, key)
			return nil
		})
	}
	_ = g.Wait()
	slices.Sort(res.Deleted)

	m.refresh(ctx)

	if len(res.Failed) > 0 {
		m.log.Warn().
			Int("requested", res.Requested).
			Int("failed", len(res.Failed)).
			Strs("keys", res.FailedKeys()).
			Msg("borrado masivo incompleto")
		if errors.Is(firstError(res), domain.ErrUnsupported) {
			return res, fmt.Errorf("usecase: eliminar %s: %w", m.name, domain.ErrUnsupported)
		}
		return res, fmt.Errorf("usecase: eliminar %s: %d de %d: %w", m.name, len(res.Failed), res.Requested, domain.ErrPartialFailure)
	}
	return res, nil
}

// refresh recarga la store si existe. Un error de refresh queda en el
// snapshot; la mutación ya fue exitosa.
func (m *Manager[T]) refresh(ctx context.Context) {
	if m.store == nil {
		return
	}
	snap := m.store.Refresh(ctx)
	if snap.Err != nil {
		m.log.Warn().Err(snap.Err).Msg("no se pudo refrescar la colección")
	}
}

func firstError(r BulkResult) error {
	for _, k := range r.FailedKeys() {
		return r.Failed[k]
	}
	return nil
}

func dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok || k == "" {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
