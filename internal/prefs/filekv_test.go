package prefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKV_MissingFile(t *testing.T) {
	kv := NewFileKV(filepath.Join(t.TempDir(), "nested", "preferences.yaml"))

	_, ok, err := kv.Get(ModeKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileKV_SetGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")
	kv := NewFileKV(path)

	require.NoError(t, kv.Set(ModeKey, "light"))
	require.NoError(t, kv.Set(ThemeKey, "obsidian"))

	v, ok, err := NewFileKV(path).Get(ModeKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", v)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "energyexe-mode: light")
	assert.Contains(t, string(data), "energyexe-theme: obsidian")
}

func TestFileKV_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a mapping\n"), 0o644))
	kv := NewFileKV(path)

	_, _, err := kv.Get(ModeKey)
	require.Error(t, err)

	c := New(NewStore(kv, nil), nil)
	assert.Equal(t, DefaultState(), c.State())

	// The next write replaces the corrupt document.
	require.NoError(t, c.SetMode(ModeLight))
	v, ok, err := kv.Get(ModeKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", v)
}

func TestFileKV_ControllerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")

	c := New(NewStore(NewFileKV(path), nil), nil)
	c.ToggleMode()

	again := New(NewStore(NewFileKV(path), nil), nil)
	assert.Equal(t, ModeLight, again.Mode())
}

func TestFileKV_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	kv := NewFileKV(path)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- kv.Watch(ctx, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, NewFileKV(path).Set(ModeKey, "light"))

	select {
	case <-changed:
	case <-ctx.Done():
		t.Fatal("no change notification")
	}

	cancel()
	require.NoError(t, <-done)
}
