package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jladdjr/typey-type/internal/config"
	"github.com/jladdjr/typey-type/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	dict := filepath.Join(dir, "main.json")
	require.NoError(t, os.WriteFile(dict, []byte(`{"KP-PL": "example", "SKP": "and", "TH": "this"}`), 0644))

	cfg := config.Default()
	cfg.DataDir = filepath.Join(dir, "data")
	cfg.Dictionaries = []ports.DictionarySource{{Name: "main", Path: dict}}
	return cfg
}

func TestNew_WiresServices(t *testing.T) {
	a, err := New(testConfig(t), discardLogger())
	require.NoError(t, err)
	defer a.Stop()

	assert.Nil(t, a.Watcher, "watch disabled by default")
	assert.Equal(t, "default", a.Lessons.Profile())
	_, err = os.Stat(a.Paths.DB)
	assert.NoError(t, err)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Lookup.TieBreak = "coin_flip"
	_, err := New(cfg, discardLogger())
	assert.Error(t, err)

	_, err = New(nil, discardLogger())
	assert.Error(t, err)
}

func TestApp_LoadAndCompile(t *testing.T) {
	a, err := New(testConfig(t), discardLogger())
	require.NoError(t, err)
	defer a.Stop()

	require.NoError(t, a.LoadDictionaries(context.Background()))
	got := a.Lessons.Compile(context.Background(), "this\nexample")
	assert.Equal(t, "this\tTH\nexample\tKP-PL", got.TSV)
}

func TestApp_StartLoadsInBackground(t *testing.T) {
	a, err := New(testConfig(t), discardLogger())
	require.NoError(t, err)
	defer a.Stop()

	require.NoError(t, a.Start(context.Background()))
	assert.Eventually(t, a.Dicts.Ready, 2*time.Second, 10*time.Millisecond)
}

func TestApp_WatchReloadsChangedDictionary(t *testing.T) {
	cfg := testConfig(t)
	cfg.Watch = true
	a, err := New(cfg, discardLogger())
	require.NoError(t, err)
	defer a.Stop()

	require.NoError(t, a.LoadDictionaries(context.Background()))
	require.NoError(t, a.Start(context.Background()))
	time.Sleep(50 * time.Millisecond)

	dict := cfg.Dictionaries[0].Path
	require.NoError(t, os.WriteFile(dict, []byte(`{"KP-PL": "example", "SKP": "and", "TKPWO": "go"}`), 0644))

	assert.Eventually(t, func() bool {
		return len(a.Dicts.Current().Strokes("go")) == 1
	}, 3*time.Second, 20*time.Millisecond)
}

func TestApp_ProfilesAndDelete(t *testing.T) {
	a, err := New(testConfig(t), discardLogger())
	require.NoError(t, err)
	defer a.Stop()

	require.NoError(t, a.Lessons.RecordTyped(" the", " cat"))
	require.NoError(t, a.Store.SaveSettings("practice", &ports.UserSettings{BlurMaterial: true}))

	names, err := a.Profiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "practice"}, names)

	require.NoError(t, a.DeleteProfile("default"))
	require.NoError(t, a.DeleteProfile("default"), "deleting twice is fine")
	names, err = a.Profiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"practice"}, names)

	words, err := a.Lessons.MetWords()
	require.NoError(t, err)
	assert.Empty(t, words)

	assert.Error(t, a.DeleteProfile(""))
}
