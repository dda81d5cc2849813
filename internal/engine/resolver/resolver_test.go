package resolver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nixbrew/internal/core/domain"
	"go.trai.ch/nixbrew/internal/core/ports/mocks"
	"go.trai.ch/nixbrew/internal/engine/resolver"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func setupResolverTest(t *testing.T, channels ...string) (*resolver.Resolver, *mocks.MockChannelOracle) {
	t.Helper()
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockChannelOracle(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	if len(channels) == 0 {
		channels = domain.DefaultChannels
	}
	policy := domain.ResolvePolicy{
		Channels:            channels,
		CommitHashMinLength: domain.DefaultCommitHashMinLength,
	}
	return resolver.New(oracle, logger, policy), oracle
}

func TestResolve_NoToken(t *testing.T) {
	r, oracle := setupResolverTest(t)
	reg := domain.NewRegistry()

	// No oracle expectations: the empty token never triggers a query.
	_ = oracle

	ref, err := r.Resolve(context.Background(), reg, "ripgrep", "", resolver.Options{})
	require.NoError(t, err)
	assert.Equal(t, "nixpkgs#ripgrep", ref)
	assert.False(t, reg.Dirty(), "registry must stay untouched")
}

func TestResolve_ChannelToken(t *testing.T) {
	r, _ := setupResolverTest(t)
	reg := domain.NewRegistry()

	// Deterministic pure formatting, twice over.
	for range 2 {
		ref, err := r.Resolve(context.Background(), reg, "ripgrep", "23.11", resolver.Options{})
		require.NoError(t, err)
		assert.Equal(t, "nixpkgs/23.11#ripgrep", ref)
	}
	assert.False(t, reg.Dirty())
}

func TestResolve_CommitToken(t *testing.T) {
	r, _ := setupResolverTest(t)
	reg := domain.NewRegistry()

	ref, err := r.Resolve(context.Background(), reg, "ripgrep", "cb82756", resolver.Options{})
	require.NoError(t, err)
	assert.Equal(t, "github:NixOS/nixpkgs/cb82756#ripgrep", ref)
	assert.False(t, reg.Dirty())
}

func TestResolve_FallbackChannelToken(t *testing.T) {
	r, _ := setupResolverTest(t)
	reg := domain.NewRegistry()

	ref, err := r.Resolve(context.Background(), reg, "ripgrep", "nixos-unstable", resolver.Options{})
	require.NoError(t, err)
	assert.Equal(t, "nixpkgs/nixos-unstable#ripgrep", ref)
	assert.False(t, reg.Dirty())
}

func TestResolve_SemanticFirstChannelMatches(t *testing.T) {
	r, oracle := setupResolverTest(t, "channel-a", "channel-b")
	reg := domain.NewRegistry()

	// Prefix match: "14.1.0" matches the reported "14.1.0-1". Channel B must
	// never be queried once A matched.
	oracle.EXPECT().QueryVersion(gomock.Any(), "channel-a", "ripgrep").Return("14.1.0-1", nil).Times(1)

	ref, err := r.Resolve(context.Background(), reg, "ripgrep", "14.1.0", resolver.Options{})
	require.NoError(t, err)
	assert.Equal(t, "channel-a#ripgrep", ref)

	cached, ok := reg.CacheGet("ripgrep", "14.1.0")
	require.True(t, ok)
	assert.Equal(t, ref, cached)
}

func TestResolve_SemanticLaterChannelMatches(t *testing.T) {
	r, oracle := setupResolverTest(t, "channel-a", "channel-b")
	reg := domain.NewRegistry()

	gomock.InOrder(
		oracle.EXPECT().QueryVersion(gomock.Any(), "channel-a", "ripgrep").Return("14.0.9", nil),
		oracle.EXPECT().QueryVersion(gomock.Any(), "channel-b", "ripgrep").Return("14.1.0", nil),
	)

	ref, err := r.Resolve(context.Background(), reg, "ripgrep", "14.1.0", resolver.Options{})
	require.NoError(t, err)
	assert.Equal(t, "channel-b#ripgrep", ref)
}

func TestResolve_SemanticCacheHitSkipsOracle(t *testing.T) {
	r, _ := setupResolverTest(t)
	reg := domain.NewRegistry()
	reg.CachePut("ripgrep", "14.1.0", "nixpkgs/nixos-23.11#ripgrep")

	// No oracle expectations: a cache hit must not query anything.
	ref, err := r.Resolve(context.Background(), reg, "ripgrep", "14.1.0", resolver.Options{})
	require.NoError(t, err)
	assert.Equal(t, "nixpkgs/nixos-23.11#ripgrep", ref)
}

func TestResolve_SemanticIdempotentAcrossCalls(t *testing.T) {
	r, oracle := setupResolverTest(t, "channel-a")
	reg := domain.NewRegistry()

	oracle.EXPECT().QueryVersion(gomock.Any(), "channel-a", "ripgrep").Return("14.1.0", nil).Times(1)

	first, err := r.Resolve(context.Background(), reg, "ripgrep", "14.1.0", resolver.Options{})
	require.NoError(t, err)

	// Second resolution is served from the cache; Times(1) above would fail
	// on a second query.
	second, err := r.Resolve(context.Background(), reg, "ripgrep", "14.1.0", resolver.Options{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolve_SemanticFailedProbeIsSkipped(t *testing.T) {
	r, oracle := setupResolverTest(t, "channel-a", "channel-b")
	reg := domain.NewRegistry()

	gomock.InOrder(
		oracle.EXPECT().QueryVersion(gomock.Any(), "channel-a", "ripgrep").
			Return("", zerr.New("evaluation failed")),
		oracle.EXPECT().QueryVersion(gomock.Any(), "channel-b", "ripgrep").Return("14.1.0", nil),
	)

	ref, err := r.Resolve(context.Background(), reg, "ripgrep", "14.1.0", resolver.Options{})
	require.NoError(t, err)
	assert.Equal(t, "channel-b#ripgrep", ref)
}

func TestResolve_SemanticNoMatchCachesFallback(t *testing.T) {
	r, oracle := setupResolverTest(t, "channel-a", "channel-b")
	reg := domain.NewRegistry()

	oracle.EXPECT().QueryVersion(gomock.Any(), "channel-a", "ripgrep").Return("13.0.0", nil).Times(1)
	oracle.EXPECT().QueryVersion(gomock.Any(), "channel-b", "ripgrep").Return("12.9.0", nil).Times(1)

	ref, err := r.Resolve(context.Background(), reg, "ripgrep", "99.9.9", resolver.Options{})
	require.NoError(t, err)
	assert.Equal(t, "nixpkgs#ripgrep", ref)

	// The fallback was cached: the second call issues zero queries and
	// returns the identical reference.
	second, err := r.Resolve(context.Background(), reg, "ripgrep", "99.9.9", resolver.Options{})
	require.NoError(t, err)
	assert.Equal(t, ref, second)
}

func TestResolve_BypassCacheReprobes(t *testing.T) {
	r, oracle := setupResolverTest(t, "channel-a")
	reg := domain.NewRegistry()

	// A stale fallback sits in the cache from an earlier run.
	reg.CachePut("ripgrep", "14.1.0", "nixpkgs#ripgrep")

	oracle.EXPECT().QueryVersion(gomock.Any(), "channel-a", "ripgrep").Return("14.1.0", nil).Times(1)

	ref, err := r.Resolve(context.Background(), reg, "ripgrep", "14.1.0", resolver.Options{BypassCache: true})
	require.NoError(t, err)
	assert.Equal(t, "channel-a#ripgrep", ref)

	// The cache entry was overwritten with the fresh result.
	cached, ok := reg.CacheGet("ripgrep", "14.1.0")
	require.True(t, ok)
	assert.Equal(t, "channel-a#ripgrep", cached)
}

func TestResolve_InvalidOracleOutputIsFatal(t *testing.T) {
	r, oracle := setupResolverTest(t, "channel-a", "channel-b")
	reg := domain.NewRegistry()

	oracle.EXPECT().QueryVersion(gomock.Any(), "channel-a", "ripgrep").
		Return("", zerr.With(domain.ErrOracleOutputInvalid, "channel", "channel-a")).Times(1)

	_, err := r.Resolve(context.Background(), reg, "ripgrep", "14.1.0", resolver.Options{})
	require.ErrorIs(t, err, domain.ErrOracleOutputInvalid)
	assert.False(t, reg.Dirty(), "no cache entry on fatal error")
}

func TestResolve_CanceledContextStopsProbing(t *testing.T) {
	r, _ := setupResolverTest(t, "channel-a")
	reg := domain.NewRegistry()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Resolve(ctx, reg, "ripgrep", "14.1.0", resolver.Options{})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, reg.Dirty(), "no cache entry after cancellation")
}
