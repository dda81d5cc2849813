package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nixbrew/internal/core/domain"
)

func registryPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), ".nixbrew", "registry.json")
}

func TestStore_LoadMissingFileIsEmptyRegistry(t *testing.T) {
	store := NewStoreWithPath(registryPath(t))

	reg, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, reg)
	assert.Empty(t, reg.History)
	assert.Empty(t, reg.ResolvedCache)
	assert.False(t, reg.Dirty())
}

func TestStore_RoundTrip(t *testing.T) {
	path := registryPath(t)

	store1 := NewStoreWithPath(path)
	reg, err := store1.Load()
	require.NoError(t, err)

	reg.Record(domain.NewPackageInfo("ripgrep", "14.1", "nixpkgs/nixos-unstable#ripgrep"))
	reg.Record(domain.NewPackageInfo("ripgrep", "13.0", "nixpkgs/nixos-23.05#ripgrep"))
	reg.Record(domain.NewPackageInfo("fd", "", "nixpkgs#fd"))
	reg.CachePut("ripgrep", "14.1", "nixpkgs/nixos-unstable#ripgrep")
	require.NoError(t, store1.Save(reg))

	// A fresh store instance reads back the same state, in the same order.
	store2 := NewStoreWithPath(path)
	got, err := store2.Load()
	require.NoError(t, err)

	history := got.HistoryOf("ripgrep")
	require.Len(t, history, 2)
	assert.Equal(t, "14.1", history[0].Version)
	assert.Equal(t, "13.0", history[1].Version)
	assert.Equal(t, reg.HistoryOf("ripgrep")[0].InstalledAt.Unix(), history[0].InstalledAt.Unix())

	ref, ok := got.CacheGet("ripgrep", "14.1")
	require.True(t, ok)
	assert.Equal(t, "nixpkgs/nixos-unstable#ripgrep", ref)
}

func TestStore_SaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "registry.json")
	store := NewStoreWithPath(path)

	require.NoError(t, store.Save(domain.NewRegistry()))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestStore_LoadMalformedFileIsFatal(t *testing.T) {
	path := registryPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewStoreWithPath(path)
	_, err := store.Load()
	require.ErrorIs(t, err, domain.ErrRegistryCorrupt)

	// The corrupt file must survive untouched.
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "{not json", string(data))
}

func TestStore_SaveDetectsConcurrentRewrite(t *testing.T) {
	path := registryPath(t)

	store1 := NewStoreWithPath(path)
	reg1, err := store1.Load()
	require.NoError(t, err)
	reg1.Record(domain.NewPackageInfo("ripgrep", "", "nixpkgs#ripgrep"))
	require.NoError(t, store1.Save(reg1))

	// Two invocations load the same state.
	storeA := NewStoreWithPath(path)
	regA, err := storeA.Load()
	require.NoError(t, err)

	storeB := NewStoreWithPath(path)
	regB, err := storeB.Load()
	require.NoError(t, err)

	// A saves first.
	regA.Record(domain.NewPackageInfo("fd", "", "nixpkgs#fd"))
	require.NoError(t, storeA.Save(regA))

	// B's save must refuse instead of dropping A's entry.
	regB.Record(domain.NewPackageInfo("bat", "", "nixpkgs#bat"))
	err = storeB.Save(regB)
	require.ErrorIs(t, err, domain.ErrRegistryConflict)
}

func TestStore_SaveDetectsFileCreatedSinceLoad(t *testing.T) {
	path := registryPath(t)

	store := NewStoreWithPath(path)
	reg, err := store.Load()
	require.NoError(t, err)

	// Another invocation writes the file first.
	other := NewStoreWithPath(path)
	otherReg, err := other.Load()
	require.NoError(t, err)
	otherReg.Record(domain.NewPackageInfo("fd", "", "nixpkgs#fd"))
	require.NoError(t, other.Save(otherReg))

	reg.Record(domain.NewPackageInfo("bat", "", "nixpkgs#bat"))
	err = store.Save(reg)
	require.ErrorIs(t, err, domain.ErrRegistryConflict)
}

func TestStore_SaveThenSaveAgain(t *testing.T) {
	path := registryPath(t)
	store := NewStoreWithPath(path)

	reg, err := store.Load()
	require.NoError(t, err)
	reg.Record(domain.NewPackageInfo("ripgrep", "", "nixpkgs#ripgrep"))
	require.NoError(t, store.Save(reg))

	// The store's view is refreshed by its own save.
	reg.Record(domain.NewPackageInfo("fd", "", "nixpkgs#fd"))
	require.NoError(t, store.Save(reg))
}

func TestStore_LeavesNoTempFiles(t *testing.T) {
	path := registryPath(t)
	store := NewStoreWithPath(path)

	require.NoError(t, store.Save(domain.NewRegistry()))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "registry.json", entries[0].Name())
}
