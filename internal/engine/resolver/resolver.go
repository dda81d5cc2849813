// Package resolver turns user-supplied version tokens into fetchable flake
// references.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/nixbrew/internal/core/domain"
	"go.trai.ch/nixbrew/internal/core/ports"
)

// Options control a single resolution.
type Options struct {
	// BypassCache skips the resolved-version cache lookup and overwrites the
	// cached entry with the fresh result. This is the escape hatch for the
	// cached-fallback case: once a version resolves to the fallback, only a
	// bypassed resolution will ever probe the channels again.
	BypassCache bool
}

// Resolver classifies version tokens and resolves semantic versions by
// probing channels through the oracle.
type Resolver struct {
	oracle ports.ChannelOracle
	logger ports.Logger
	policy domain.ResolvePolicy
}

// New creates a Resolver with the given probe policy.
func New(oracle ports.ChannelOracle, logger ports.Logger, policy domain.ResolvePolicy) *Resolver {
	return &Resolver{
		oracle: oracle,
		logger: logger,
		policy: policy,
	}
}

// Resolve produces a fetchable reference for the package and version token.
//
// Empty, channel and commit tokens resolve by pure string formatting and
// never touch the oracle or the registry. Semantic tokens consult the
// registry cache and, on a miss, probe the configured channels in order;
// the registry is mutated (cache entry added) but not persisted here.
func (r *Resolver) Resolve(ctx context.Context, reg *domain.Registry, pkg, token string, opts Options) (string, error) {
	switch domain.ClassifyVersion(token, r.policy.CommitHashMinLength) {
	case domain.KindDefault:
		return domain.DefaultReference(pkg), nil
	case domain.KindChannel, domain.KindChannelFallback:
		return domain.ChannelPinReference(token, pkg), nil
	case domain.KindCommit:
		return domain.CommitReference(token, pkg), nil
	default:
		return r.resolveSemantic(ctx, reg, pkg, token, opts)
	}
}

// resolveSemantic resolves a dotted version like "14.1.0" by asking each
// channel, in policy order, what version it reports for the package. The
// first channel whose report has the token as prefix wins, so "14.1.0"
// matches a reported "14.1.0-1". Probes are strictly sequential and
// short-circuit on the first match.
func (r *Resolver) resolveSemantic(ctx context.Context, reg *domain.Registry, pkg, token string, opts Options) (string, error) {
	if !opts.BypassCache {
		if ref, ok := reg.CacheGet(pkg, token); ok {
			return ref, nil
		}
	}

	for _, channel := range r.policy.Channels {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		reported, err := r.oracle.QueryVersion(ctx, channel, pkg)
		if err != nil {
			// Undecodable output and cancellation are fatal; a failed
			// probe only disqualifies its own channel.
			if errors.Is(err, domain.ErrOracleOutputInvalid) ||
				errors.Is(err, context.Canceled) ||
				errors.Is(err, context.DeadlineExceeded) {
				return "", err
			}
			r.logger.Warn(fmt.Sprintf("skipping channel %s for %s: %v", channel, pkg, err))
			continue
		}

		if strings.HasPrefix(reported, token) {
			ref := domain.ChannelReference(channel, pkg)
			reg.CachePut(pkg, token, ref)
			return ref, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	// No channel matched. The fallback is cached too, which means a later
	// run for the same unresolved version will not re-probe even if a
	// matching channel appears; Options.BypassCache exists for that case.
	ref := domain.DefaultReference(pkg)
	reg.CachePut(pkg, token, ref)
	return ref, nil
}
