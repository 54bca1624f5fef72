package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoomgrab/zoomgrab/internal/adapters/watcher"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var callCount int
		var received []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			mu.Lock()
			defer mu.Unlock()
			callCount++
			received = paths
		})

		d.Add("input/urls.txt")
		d.Add("input/urls.txt")
		d.Add("input/extra.csv")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		require.Equal(t, 1, callCount)
		require.Len(t, received, 2)
		assert.Contains(t, received, "input/urls.txt")
		assert.Contains(t, received, "input/extra.csv")
	})
}

func TestDebouncer_WindowRestartsOnAdd(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var callCount int

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			mu.Lock()
			defer mu.Unlock()
			callCount++
		})

		d.Add("input/a.txt")
		time.Sleep(60 * time.Millisecond)
		d.Add("input/b.txt")
		time.Sleep(60 * time.Millisecond)

		mu.Lock()
		assert.Equal(t, 0, callCount)
		mu.Unlock()

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 1, callCount)
	})
}

func TestDebouncer_FlushDeliversSynchronously(t *testing.T) {
	var received []string
	d := watcher.NewDebouncer(time.Hour, func(paths []string) {
		received = paths
	})

	d.Add("input/urls.txt")
	d.Flush()

	require.Len(t, received, 1)
	assert.Equal(t, "input/urls.txt", received[0])
}

func TestDebouncer_FlushWithNothingPending(t *testing.T) {
	called := false
	d := watcher.NewDebouncer(time.Hour, func([]string) { called = true })

	d.Flush()
	assert.False(t, called)
}
