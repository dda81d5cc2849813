// Package ports defines the core interfaces for the application.
package ports

import "context"

// ChannelOracle answers what version a channel currently reports for a
// package. Implemented by the nix adapter via `nix eval`.
//
//go:generate go run go.uber.org/mock/mockgen -source=oracle.go -destination=mocks/mock_oracle.go -package=mocks
type ChannelOracle interface {
	// QueryVersion returns the version string the channel reports for the
	// package, e.g. "14.1.0". A non-success outcome from the oracle is
	// returned as domain.ErrOracleQueryFailed; undecodable output from a
	// successful query is domain.ErrOracleOutputInvalid.
	QueryVersion(ctx context.Context, channel, pkg string) (string, error)
}
