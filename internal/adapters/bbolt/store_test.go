package bbolt

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jladdjr/typey-type/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore creates a temporary bbolt store for testing.
func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func makeTestWords() []ports.MetWord {
	return []ports.MetWord{
		{Word: " the", Count: 42, Seq: 0},
		{Word: " cat", Count: 3, Seq: 2},
		{Word: " sat", Count: 3, Seq: 1},
		{Word: " on", Count: 0, Seq: 3},
	}
}

func TestStore_SaveLoadMetWords_Roundtrip(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveMetWords("default", makeTestWords()))

	words, err := store.MetWords("default")
	require.NoError(t, err)
	require.Len(t, words, 4)

	got := make([]string, len(words))
	for i, w := range words {
		got[i] = w.Word
	}
	assert.Equal(t, []string{" the", " sat", " cat", " on"}, got, "count desc, then first-met order")
	assert.Equal(t, ports.CategoryRetained, words[0].Category())
}

func TestStore_MetWords_UnknownProfileIsEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	words, err := store.MetWords("nobody")
	require.NoError(t, err)
	assert.NotNil(t, words)
	assert.Empty(t, words)
}

func TestStore_SaveMetWords_Replaces(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveMetWords("default", makeTestWords()))
	require.NoError(t, store.SaveMetWords("default", []ports.MetWord{{Word: "only", Count: 1}}))

	words, err := store.MetWords("default")
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "only", words[0].Word)
}

func TestStore_RecordTyped(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveMetWords("default", []ports.MetWord{{Word: " the", Count: 1, Seq: 5}}))

	require.NoError(t, store.RecordTyped("default", " the", " cat", " the"))

	words, err := store.MetWords("default")
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, ports.MetWord{Word: " the", Count: 3, Seq: 5}, words[0])
	assert.Equal(t, ports.MetWord{Word: " cat", Count: 1, Seq: 6}, words[1])
}

func TestStore_SaveLoadSettings(t *testing.T) {
	store, _ := newTestStore(t)

	loaded, err := store.LoadSettings("default")
	require.NoError(t, err)
	assert.Nil(t, loaded, "fresh profile has no settings")

	want := &ports.UserSettings{SpacePlacement: ports.SpaceBeforeOutput, BlurMaterial: true}
	require.NoError(t, store.SaveSettings("default", want))

	loaded, err = store.LoadSettings("default")
	require.NoError(t, err)
	assert.Equal(t, want, loaded)
}

func TestStore_SaveSettings_Rejects(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Error(t, store.SaveSettings("default", nil))
	err := store.SaveSettings("default", &ports.UserSettings{SpacePlacement: "sideways"})
	assert.ErrorIs(t, err, ports.ErrInvalidSettings)
}

func TestStore_ProfileScoped(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveMetWords("alice", makeTestWords()))
	require.NoError(t, store.SaveMetWords("bob", []ports.MetWord{{Word: "bob", Count: 1}}))

	a, err := store.MetWords("alice")
	require.NoError(t, err)
	b, err := store.MetWords("bob")
	require.NoError(t, err)
	assert.Len(t, a, 4)
	assert.Len(t, b, 1)

	profiles, err := store.Profiles()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, profiles)
}

func TestStore_DeleteProfile(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveMetWords("default", makeTestWords()))
	require.NoError(t, store.SaveSettings("default", &ports.UserSettings{BlurMaterial: true}))

	require.NoError(t, store.DeleteProfile("default"))
	require.NoError(t, store.DeleteProfile("default"), "idempotent")

	words, err := store.MetWords("default")
	require.NoError(t, err)
	assert.Empty(t, words)
	settings, err := store.LoadSettings("default")
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestStore_ConcurrentReads(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveMetWords("default", makeTestWords()))

	var wg sync.WaitGroup
	errs := make(chan error, 10)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			words, err := store.MetWords("default")
			if err != nil {
				errs <- err
				return
			}
			if len(words) != 4 {
				errs <- fmt.Errorf("expected 4 words, got %d", len(words))
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent read error: %v", err)
	}
}

func TestStore_StateSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "restart.db")

	store1, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store1.SaveMetWords("default", makeTestWords()))
	require.NoError(t, store1.SaveSettings("default", &ports.UserSettings{CaseSensitive: true}))
	require.NoError(t, store1.Close())

	_, err = os.Stat(path)
	require.NoError(t, err)

	store2, err := NewStore(path)
	require.NoError(t, err)
	defer store2.Close()

	words, err := store2.MetWords("default")
	require.NoError(t, err)
	assert.Len(t, words, 4)
	settings, err := store2.LoadSettings("default")
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.True(t, settings.CaseSensitive)
}

func TestStore_CorruptValue(t *testing.T) {
	_, err := decodeMetWord([]byte("x"), []byte{1, 2, 3})
	assert.ErrorContains(t, err, "3 bytes")

	w := ports.MetWord{Word: "x", Count: 7, Seq: 1 << 40}
	got, err := decodeMetWord([]byte("x"), encodeMetWord(w))
	require.NoError(t, err)
	assert.Equal(t, w, got)
}

// =============================================================================
// Lock contention tests: verify the 1s timeout prevents hangs
// =============================================================================

func TestStore_OpenTimeout_DoesNotHang(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locked.db")

	store1, err := NewStore(path)
	require.NoError(t, err)
	defer store1.Close()

	start := time.Now()
	store2, err := NewStore(path)
	elapsed := time.Since(start)

	require.Error(t, err, "second open should fail with lock timeout")
	assert.Nil(t, store2, "store should be nil on timeout")
	assert.Contains(t, err.Error(), "timeout", "error should mention timeout")
	assert.Contains(t, err.Error(), "bbolt open")
	assert.Less(t, elapsed, 3*time.Second, "should complete within 3s, not hang")
	assert.GreaterOrEqual(t, elapsed, 900*time.Millisecond, "should wait ~1s for the configured timeout")
}

func TestStore_OpenAfterClose_Succeeds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "released.db")

	store1, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store1.SaveMetWords("default", makeTestWords()))
	store1.Close()

	start := time.Now()
	store2, err := NewStore(path)
	elapsed := time.Since(start)

	require.NoError(t, err, "open after close should succeed")
	require.NotNil(t, store2)
	assert.Less(t, elapsed, 500*time.Millisecond, "should open instantly after lock released")
	defer store2.Close()

	words, err := store2.MetWords("default")
	require.NoError(t, err)
	assert.Len(t, words, 4)
}
