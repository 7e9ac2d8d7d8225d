package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Data = string

func createCallback(data int) func() (Data, error) {
	return func() (Data, error) {
		return fmt.Sprintf("data%d", data), nil
	}
}

func createErrorCallback(variant int) func() (Data, error) {
	return func() (Data, error) {
		return "", fmt.Errorf("error%d", variant)
	}
}

func TestGetOrCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates once then hits", func(t *testing.T) {
		t.Parallel()

		cache := NewTTLCache[Data](1 * time.Minute)

		data, created, err := GetOrCreate(t.Context(), cache, "key1", createCallback(1))
		require.NoError(t, err)
		require.True(t, created)
		require.Equal(t, "data1", data)

		data, created, err = GetOrCreate(t.Context(), cache, "key1", func() (Data, error) {
			require.FailNow(t, "should be cached")
			return "", nil
		})
		require.NoError(t, err)
		require.False(t, created)
		require.Equal(t, "data1", data)

		data, created, err = GetOrCreate(t.Context(), cache, "key2", createCallback(2))
		require.NoError(t, err)
		require.True(t, created)
		require.Equal(t, "data2", data)
	})

	t.Run("cleans up on error", func(t *testing.T) {
		t.Parallel()

		cache := NewTTLCache[Data](1 * time.Minute)

		_, _, err := GetOrCreate(t.Context(), cache, "key1", createErrorCallback(10))
		require.Error(t, err)

		// The cache should be empty and allow us to create a new entry
		data, created, err := GetOrCreate(t.Context(), cache, "key1", createCallback(1))
		require.NoError(t, err)
		require.True(t, created)
		require.Equal(t, "data1", data)
	})

	t.Run("stops waiting when the context is done", func(t *testing.T) {
		t.Parallel()

		cache := NewTTLCache[Data](1 * time.Minute)
		// Claimed by someone else and never set
		require.True(t, cache.getOrClaim("key1").claimed)

		ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
		defer cancel()

		_, _, err := GetOrCreate(ctx, cache, "key1", createCallback(1))
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("requests are de-duplicated in highly concurrent environment", func(t *testing.T) {
		t.Parallel()

		cache := NewTTLCache[Data](1 * time.Minute)

		for testIndex := range 20 {
			var calls atomic.Int64
			callback := func() (Data, error) {
				calls.Add(1)
				time.Sleep(5 * time.Millisecond)
				return "data1", nil
			}

			var wg sync.WaitGroup
			for range 10 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					data, _, err := GetOrCreate(t.Context(), cache, fmt.Sprintf("key%d", testIndex), callback)
					assert.NoError(t, err)
					assert.Equal(t, "data1", data)
				}()
			}
			wg.Wait()

			require.Equal(t, int64(1), calls.Load(), "Callback should only be called once")
		}
	})
}
