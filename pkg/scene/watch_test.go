package scene

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.yaml")
	require.NoError(t, os.WriteFile(path, []byte("room:\n  width: 300\n"), 0o644))

	w, err := NewWatcher(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(path, []byte("room:\n  width: 720\n"), 0o644))

	select {
	case snap := <-w.Updates():
		assert.Equal(t, 720.0, snap.Room.Width)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}

	cancel()
	for range w.Updates() {
	}
}
