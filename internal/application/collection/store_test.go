package collection_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jhoicas/classicmodels-admin/internal/application/collection"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStore_LoadExitoso(t *testing.T) {
	s := collection.New(func(ctx context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})

	snap := s.Load(context.Background())

	assert.Equal(t, []string{"a", "b"}, snap.Data)
	assert.False(t, snap.Loading)
	assert.NoError(t, snap.Err)
	assert.Equal(t, uint64(1), snap.Version)
	assert.False(t, snap.LoadedAt.IsZero())
}

func TestStore_ErrorConservaDatosAnteriores(t *testing.T) {
	fail := false
	boom := errors.New("caído")
	s := collection.New(func(ctx context.Context) ([]int, error) {
		if fail {
			return nil, boom
		}
		return []int{1, 2, 3}, nil
	})
	s.Load(context.Background())

	fail = true
	snap := s.Refresh(context.Background())

	assert.ErrorIs(t, snap.Err, boom)
	assert.False(t, snap.Loading)
	assert.Equal(t, []int{1, 2, 3}, snap.Data)
	assert.Equal(t, uint64(1), snap.Version)

	fail = false
	snap = s.Refresh(context.Background())
	assert.NoError(t, snap.Err, "una carga exitosa limpia el error")
}

func TestStore_SnapshotEsUnaCopia(t *testing.T) {
	s := collection.New(func(ctx context.Context) ([]int, error) { return []int{1, 2}, nil })
	s.Load(context.Background())

	snap := s.Snapshot()
	snap.Data[0] = 99

	assert.Equal(t, []int{1, 2}, s.Snapshot().Data)
}

func TestStore_ElFetchMasRecienteGana(t *testing.T) {
	started := make(chan struct{})
	var calls int
	var mu sync.Mutex
	s := collection.New(func(ctx context.Context) ([]string, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			close(started)
			<-ctx.Done() // lento: solo termina al ser cancelado
			return []string{"viejo"}, ctx.Err()
		}
		return []string{"nuevo"}, nil
	})

	done := make(chan collection.Snapshot[string])
	go func() { done <- s.Load(context.Background()) }()
	<-started

	latest := s.Refresh(context.Background())
	stale := <-done

	assert.Equal(t, []string{"nuevo"}, latest.Data)
	assert.NoError(t, stale.Err, "el fetch superado no publica su error")
	assert.Equal(t, []string{"nuevo"}, s.Snapshot().Data)
	assert.Equal(t, uint64(1), s.Snapshot().Version)
}

func TestStore_CloseCancelaYDescarta(t *testing.T) {
	started := make(chan struct{})
	s := collection.New(func(ctx context.Context) ([]int, error) {
		close(started)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(5 * time.Second):
			return []int{1}, nil
		}
	})

	done := make(chan collection.Snapshot[int])
	go func() { done <- s.Load(context.Background()) }()
	<-started
	s.Close()

	snap := <-done
	assert.NoError(t, snap.Err)
	assert.Empty(t, snap.Data)
	assert.False(t, s.Snapshot().Loading)

	after := s.Load(context.Background())
	require.ErrorIs(t, after.Err, collection.ErrClosed)
}
