// Package collection mantiene en memoria la colección de una entidad traída
// del backend, con estado de carga y error.
package collection

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"
)

// ErrClosed la store fue cerrada (la vista que la usaba ya no existe).
var ErrClosed = errors.New("collection: store cerrada")

// FetchFunc trae la colección completa.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Snapshot estado observable de la store. Data es una copia.
type Snapshot[T any] struct {
	Data     []T
	Loading  bool
	Err      error
	Version  uint64 // incrementa con cada carga exitosa
	LoadedAt time.Time
}

// Store colección con protección contra respuestas viejas: cada fetch recibe
// un número de secuencia, uno nuevo cancela al anterior y solo el último
// puede publicar su resultado.
type Store[T any] struct {
	fetch FetchFunc[T]
	now   func() time.Time

	mu       sync.Mutex
	data     []T
	loading  bool
	err      error
	version  uint64
	loadedAt time.Time
	seq      uint64
	cancel   context.CancelFunc
	closed   bool
}

// New crea la store sin datos; la primera carga la dispara Load.
func New[T any](fetch FetchFunc[T]) *Store[T] {
	return &Store[T]{fetch: fetch, now: time.Now, data: []T{}}
}

// Load trae la colección y devuelve el snapshot resultante.
func (s *Store[T]) Load(ctx context.Context) Snapshot[T] {
	return s.run(ctx)
}

// Refresh vuelve a traer la colección (después de una mutación).
func (s *Store[T]) Refresh(ctx context.Context) Snapshot[T] {
	return s.run(ctx)
}

func (s *Store[T]) run(ctx context.Context) Snapshot[T] {
	s.mu.Lock()
	if s.closed {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		snap.Err = ErrClosed
		return snap
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	seq := s.seq
	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.loading = true
	s.mu.Unlock()

	data, err := s.fetch(fetchCtx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq || s.closed {
		// superada por un fetch más reciente o por Close: se descarta
		cancel()
		return s.snapshotLocked()
	}
	cancel()
	s.cancel = nil
	s.loading = false
	if err != nil {
		s.err = err
		return s.snapshotLocked()
	}
	if data == nil {
		data = []T{}
	}
	s.data = data
	s.err = nil
	s.version++
	s.loadedAt = s.now()
	return s.snapshotLocked()
}

// Snapshot estado actual.
func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store[T]) snapshotLocked() Snapshot[T] {
	return Snapshot[T]{
		Data:     slices.Clone(s.data),
		Loading:  s.loading,
		Err:      s.err,
		Version:  s.version,
		LoadedAt: s.loadedAt,
	}
}

// Close cancela el fetch en curso; las respuestas posteriores se ignoran.
func (s *Store[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.closed = true
	s.loading = false
}
