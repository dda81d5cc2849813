package domain

import (
	"fmt"
	"strings"
)

// VersionKind classifies a user-supplied version token.
type VersionKind int

const (
	// KindDefault means no token was given: latest from the default channel.
	KindDefault VersionKind = iota

	// KindChannel is a release-line token such as "23.11": exactly one dot,
	// all other characters decimal digits.
	KindChannel

	// KindCommit is a nixpkgs revision: all hexadecimal digits, at least
	// CommitHashMinLength characters long.
	KindCommit

	// KindSemantic is a dotted version such as "14.1.0" that is not a
	// channel token. It needs channel probing to resolve.
	KindSemantic

	// KindChannelFallback is any other token; it is formatted as a channel
	// name without further validation.
	KindChannelFallback
)

// DefaultCommitHashMinLength is the minimum token length for the commit-hash
// rule. The original tool disagreed with itself here (one code path required
// exactly 7 hex digits, another accepted 7 or more); the threshold is a
// policy value, configurable via commit_hash_min_length.
const DefaultCommitHashMinLength = 7

// DefaultChannels is the probe order for semantic resolution, least stable
// first.
var DefaultChannels = []string{
	"nixpkgs/nixos-unstable",
	"nixpkgs/nixos-23.11",
	"nixpkgs/nixos-23.05",
}

// ResolvePolicy carries the configurable knobs of version resolution.
type ResolvePolicy struct {
	// Channels is the ordered list probed during semantic resolution.
	Channels []string

	// CommitHashMinLength is the threshold for the commit-hash rule.
	CommitHashMinLength int
}

// DefaultResolvePolicy returns the built-in resolution policy.
func DefaultResolvePolicy() ResolvePolicy {
	return ResolvePolicy{
		Channels:            DefaultChannels,
		CommitHashMinLength: DefaultCommitHashMinLength,
	}
}

// ClassifyVersion classifies a version token. It is a total function: every
// string input maps to exactly one kind and no input is an error.
//
// The rules apply in order:
//  1. empty token: default channel, latest
//  2. one dot, all other characters digits: channel pin (e.g. "23.11")
//  3. >= hashMinLength hex digits: commit pin (e.g. "cb82756f")
//  4. contains a dot: semantic version, resolved by channel probing
//  5. anything else: treated as a channel name
func ClassifyVersion(token string, hashMinLength int) VersionKind {
	switch {
	case token == "":
		return KindDefault
	case isChannelToken(token):
		return KindChannel
	case len(token) >= hashMinLength && isHex(token):
		return KindCommit
	case strings.Contains(token, "."):
		return KindSemantic
	default:
		return KindChannelFallback
	}
}

// DefaultReference is the unpinned reference for a package.
func DefaultReference(pkg string) string {
	return "nixpkgs#" + pkg
}

// ChannelPinReference pins a package to a release line, e.g.
// "nixpkgs/23.11#ripgrep".
func ChannelPinReference(token, pkg string) string {
	return fmt.Sprintf("nixpkgs/%s#%s", token, pkg)
}

// CommitReference pins a package to a nixpkgs revision, e.g.
// "github:NixOS/nixpkgs/cb82756#ripgrep".
func CommitReference(rev, pkg string) string {
	return fmt.Sprintf("github:NixOS/nixpkgs/%s#%s", rev, pkg)
}

// ChannelReference qualifies a package with a full channel name, e.g.
// "nixpkgs/nixos-unstable#ripgrep". Used for semantic resolution results.
func ChannelReference(channel, pkg string) string {
	return fmt.Sprintf("%s#%s", channel, pkg)
}

func isChannelToken(s string) bool {
	dots := 0
	for _, c := range s {
		switch {
		case c == '.':
			dots++
		case c < '0' || c > '9':
			return false
		}
	}
	return dots == 1
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
