package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nixbrew/internal/core/domain"
)

func TestRegistry_RecordAppendsInOrder(t *testing.T) {
	reg := domain.NewRegistry()
	require.False(t, reg.Dirty())

	reg.Record(domain.NewPackageInfo("ripgrep", "14.1.0", "nixpkgs/nixos-unstable#ripgrep"))
	reg.Record(domain.NewPackageInfo("ripgrep", "13.0.0", "nixpkgs/nixos-23.05#ripgrep"))
	// Recording the same version twice yields two entries.
	reg.Record(domain.NewPackageInfo("ripgrep", "14.1.0", "nixpkgs/nixos-unstable#ripgrep"))

	history := reg.HistoryOf("ripgrep")
	require.Len(t, history, 3)
	assert.Equal(t, "14.1.0", history[0].Version)
	assert.Equal(t, "13.0.0", history[1].Version)
	assert.Equal(t, "14.1.0", history[2].Version)
	assert.True(t, reg.Dirty())
}

func TestRegistry_HistoryOfUnknownPackage(t *testing.T) {
	reg := domain.NewRegistry()
	assert.Nil(t, reg.HistoryOf("nothere"))
}

func TestRegistry_Cache(t *testing.T) {
	reg := domain.NewRegistry()

	_, ok := reg.CacheGet("ripgrep", "14.1")
	require.False(t, ok)

	reg.CachePut("ripgrep", "14.1", "nixpkgs/nixos-unstable#ripgrep")
	ref, ok := reg.CacheGet("ripgrep", "14.1")
	require.True(t, ok)
	assert.Equal(t, "nixpkgs/nixos-unstable#ripgrep", ref)
	assert.True(t, reg.Dirty())

	// Other versions of the same package are independent keys.
	_, ok = reg.CacheGet("ripgrep", "13.0")
	assert.False(t, ok)
}

func TestRegistry_MutatorsInitializeNilMaps(t *testing.T) {
	// A registry decoded from JSON may have nil maps.
	var reg domain.Registry

	reg.Record(domain.NewPackageInfo("fd", "", "nixpkgs#fd"))
	require.Len(t, reg.HistoryOf("fd"), 1)

	reg.CachePut("fd", "8.7", "nixpkgs#fd")
	ref, ok := reg.CacheGet("fd", "8.7")
	require.True(t, ok)
	assert.Equal(t, "nixpkgs#fd", ref)
}

func TestNewPackageInfo_TimestampIsUTC(t *testing.T) {
	info := domain.NewPackageInfo("ripgrep", "14.1.0", "nixpkgs#ripgrep")
	assert.Equal(t, "UTC", info.InstalledAt.Location().String())
	assert.Nil(t, info.Lock)
}
