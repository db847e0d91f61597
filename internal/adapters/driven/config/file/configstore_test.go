package file

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", DirName)

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("display.output", "json"))

	val, ok := store.Get("display.output")
	assert.True(t, ok)
	assert.Equal(t, "json", val)
	assert.Equal(t, "json", store.GetString("display.output"))
}

func TestConfigStore_GetString_MissingOrWrongType(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString("nonexistent"))

	require.NoError(t, store.Set("count", 3))
	assert.Equal(t, "", store.GetString("count"))
}

func TestConfigStore_PersistsAsNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("display.default_calculator", "bsa"))
	require.NoError(t, store.Set("metrics.textfile", "/tmp/medcalc.prom"))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[display]")
	assert.Contains(t, string(raw), "[metrics]")

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "bsa", reopened.GetString("display.default_calculator"))
	assert.Equal(t, "/tmp/medcalc.prom", reopened.GetString("metrics.textfile"))
}

func TestConfigStore_LoadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[display]\ndefault_calculator = \"bmr\"\noutput = \"json\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, "bmr", store.GetString("display.default_calculator"))
	assert.Equal(t, "json", store.GetString("display.output"))
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), nil, 0600))

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestNewConfigStore_CorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not = [valid"), 0600))

	store, err := NewConfigStore(tmpDir)

	require.Error(t, err)
	assert.Nil(t, store)
	assert.Contains(t, err.Error(), "decoding")
}

func TestConfigStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not enforced on Windows")
	}
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("display.output", "text"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Set("display.output", "json")
		}()
		go func() {
			defer wg.Done()
			_ = store.GetString("display.output")
		}()
	}
	wg.Wait()

	assert.Equal(t, "json", store.GetString("display.output"))
}

func TestConfigStore_WatchReloadsOnExternalWrite(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 8)
	go func() {
		_ = store.Watch(ctx, func() { changed <- struct{}{} })
	}()

	content := []byte("[display]\ndefault_calculator = \"bsa\"\n")
	// The watcher registers asynchronously, so keep writing until it reports.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(store.Path(), content, 0600)
		select {
		case <-changed:
		case <-time.After(50 * time.Millisecond):
		}
		return store.GetString("display.default_calculator") == "bsa"
	}, 5*time.Second, 10*time.Millisecond)
}

func TestConfigStore_WatchStopsOnCancel(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- store.Watch(ctx, func() {}) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestFlattenAndNestMap(t *testing.T) {
	nested := map[string]any{
		"display": map[string]any{"output": "json"},
		"top":     "level",
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, map[string]any{"display.output": "json", "top": "level"}, flat)
	assert.Equal(t, nested, nestMap(flat))
}
