package nix

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nixbrew/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestOracle_QueryVersion(t *testing.T) {
	var gotArgs []string
	oracle := newOracleWithRunner(func(_ context.Context, args ...string) ([]byte, error) {
		gotArgs = args
		return []byte("\"14.1.0\"\n"), nil
	})

	version, err := oracle.QueryVersion(context.Background(), "nixpkgs/nixos-unstable", "ripgrep")
	require.NoError(t, err)
	assert.Equal(t, "14.1.0", version)
	assert.Equal(t, []string{"eval", "nixpkgs/nixos-unstable#ripgrep.version", "--json"}, gotArgs)
}

func TestOracle_QueryVersionCommandFailure(t *testing.T) {
	oracle := newOracleWithRunner(func(_ context.Context, _ ...string) ([]byte, error) {
		return nil, zerr.New("exit status 1")
	})

	_, err := oracle.QueryVersion(context.Background(), "nixpkgs/nixos-23.11", "ripgrep")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrOracleOutputInvalid)
}

func TestOracle_QueryVersionNonStringOutputSkipsChannel(t *testing.T) {
	// Packages without a .version attribute can evaluate to other JSON
	// shapes; that disqualifies the channel but is not fatal.
	oracle := newOracleWithRunner(func(_ context.Context, _ ...string) ([]byte, error) {
		return []byte(`{"version": "14.1.0"}`), nil
	})

	_, err := oracle.QueryVersion(context.Background(), "nixpkgs/nixos-23.11", "ripgrep")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrOracleOutputInvalid)
}

func TestOracle_QueryVersionNonTextOutputIsFatal(t *testing.T) {
	oracle := newOracleWithRunner(func(_ context.Context, _ ...string) ([]byte, error) {
		return []byte{0xff, 0xfe, 0x00, 0x22}, nil
	})

	_, err := oracle.QueryVersion(context.Background(), "nixpkgs/nixos-23.11", "ripgrep")
	require.ErrorIs(t, err, domain.ErrOracleOutputInvalid)
}
