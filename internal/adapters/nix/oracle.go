package nix

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"go.trai.ch/nixbrew/internal/core/domain"
	"go.trai.ch/zerr"
)

// Oracle implements ports.ChannelOracle using `nix eval`.
type Oracle struct {
	run captureRunner
}

// NewOracle creates a ChannelOracle backed by the nix CLI.
func NewOracle() *Oracle {
	return &Oracle{run: runCapture}
}

// newOracleWithRunner creates an Oracle with a custom runner (used for testing).
func newOracleWithRunner(run captureRunner) *Oracle {
	return &Oracle{run: run}
}

// QueryVersion asks a channel for the version it currently reports for a
// package by evaluating `<channel>#<pkg>.version` as JSON.
func (o *Oracle) QueryVersion(ctx context.Context, channel, pkg string) (string, error) {
	installable := fmt.Sprintf("%s#%s.version", channel, pkg)

	output, err := o.run(ctx, "eval", installable, "--json")
	if err != nil {
		queryErr := zerr.Wrap(err, domain.ErrOracleQueryFailed.Error())
		queryErr = zerr.With(queryErr, "channel", channel)
		return "", zerr.With(queryErr, "package", pkg)
	}

	if !utf8.Valid(output) {
		invalidErr := zerr.With(domain.ErrOracleOutputInvalid, "channel", channel)
		return "", zerr.With(invalidErr, "package", pkg)
	}

	// A successful eval that does not yield a JSON string (some packages
	// have no .version attribute) disqualifies this channel only.
	var version string
	if err := json.Unmarshal(output, &version); err != nil {
		queryErr := zerr.Wrap(err, domain.ErrOracleQueryFailed.Error())
		queryErr = zerr.With(queryErr, "channel", channel)
		return "", zerr.With(queryErr, "package", pkg)
	}

	return version, nil
}
