package ports_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Amund211/savewatch/internal/ports"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("read failed")
}

func TestListenForRefreshKey(t *testing.T) {
	t.Parallel()

	t.Run("triggers on r lines", func(t *testing.T) {
		t.Parallel()

		input := strings.NewReader("r\nR\n  r  \nrefresh\n\nx\nr")
		var calls atomic.Int64
		err := ports.ListenForRefreshKey(t.Context(), input, func() bool {
			calls.Add(1)
			return true
		})

		require.NoError(t, err)
		require.Equal(t, int64(4), calls.Load())
	})

	t.Run("read errors are returned", func(t *testing.T) {
		t.Parallel()

		err := ports.ListenForRefreshKey(t.Context(), failingReader{}, func() bool {
			require.FailNow(t, "should not trigger")
			return false
		})

		require.Error(t, err)
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		reader, writer := io.Pipe()
		t.Cleanup(func() {
			writer.Close()
		})

		ctx, cancel := context.WithCancel(t.Context())
		triggered := make(chan struct{}, 1)
		done := make(chan error, 1)
		go func() {
			done <- ports.ListenForRefreshKey(ctx, reader, func() bool {
				triggered <- struct{}{}
				return true
			})
		}()

		_, err := writer.Write([]byte("r\n"))
		require.NoError(t, err)

		select {
		case <-triggered:
		case <-time.After(5 * time.Second):
			require.FailNow(t, "timed out waiting for trigger")
		}

		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			require.FailNow(t, "timed out waiting for listener to stop")
		}
	})
}
