package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenStore simulates an unreachable cache backend.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (brokenStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}

func (brokenStore) DeleteByPrefix(context.Context, string) error {
	return errors.New("connection refused")
}

func TestGetOrCompute_MissThenHit(t *testing.T) {
	ctx := context.Background()
	facade := NewFacade(NewMemoryStore())

	calls := 0
	compute := func(context.Context) (int, error) {
		calls++
		return 42, nil
	}

	value, err := GetOrCompute(ctx, facade, "answer", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, 42, value)
	assert.Equal(t, 1, calls)

	// Second call is served from the cache.
	value, err = GetOrCompute(ctx, facade, "answer", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, 42, value)
	assert.Equal(t, 1, calls)
}

func TestGetOrCompute_ExpiredEntryRecomputes(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	facade := NewFacade(store)

	calls := 0
	compute := func(context.Context) (string, error) {
		calls++
		return "fresh", nil
	}

	_, err := GetOrCompute(ctx, facade, "k", time.Nanosecond, compute)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	value, err := GetOrCompute(ctx, facade, "k", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, "fresh", value)
	assert.Equal(t, 2, calls)
}

func TestGetOrCompute_FailOpenOnBrokenStore(t *testing.T) {
	ctx := context.Background()
	facade := NewFacade(brokenStore{})

	value, err := GetOrCompute(ctx, facade, "k", time.Minute, func(context.Context) (int, error) {
		return 7, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 7, value)
}

func TestGetOrCompute_ComputeErrorPropagates(t *testing.T) {
	ctx := context.Background()
	facade := NewFacade(NewMemoryStore())

	wantErr := errors.New("query failed")
	_, err := GetOrCompute(ctx, facade, "k", time.Minute, func(context.Context) (int, error) {
		return 0, wantErr
	})

	assert.ErrorIs(t, err, wantErr)
}

func TestInvalidate_RemovesOnlyPrefix(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	facade := NewFacade(store)

	require.NoError(t, store.Set(ctx, "dashboard:summary", []byte("1"), time.Minute))
	require.NoError(t, store.Set(ctx, "dashboard:attendance_summary", []byte("2"), time.Minute))
	require.NoError(t, store.Set(ctx, "employees:list", []byte("3"), time.Minute))

	facade.Invalidate(ctx, "dashboard:")

	_, found, err := store.Get(ctx, "dashboard:summary")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = store.Get(ctx, "employees:list")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestInvalidate_AbsorbsStoreFailure(t *testing.T) {
	facade := NewFacade(brokenStore{})
	// Must not panic or surface the error.
	facade.Invalidate(context.Background(), "dashboard:")
}

func TestKey(t *testing.T) {
	assert.Equal(t, "attendance:list", Key("attendance:list", nil))
	assert.Equal(t, "attendance:list", Key("attendance:list", map[string]string{"status": ""}))

	a := Key("attendance:list", map[string]string{"employee_id": "EMP-001", "status": "Present"})
	b := Key("attendance:list", map[string]string{"status": "Present", "employee_id": "EMP-001"})
	assert.Equal(t, a, b)

	c := Key("attendance:list", map[string]string{"employee_id": "EMP-002", "status": "Present"})
	assert.NotEqual(t, a, c)
}

func TestMemoryStore_TTL(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 0, store.Len())
}
