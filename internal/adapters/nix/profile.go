package nix

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"strings"

	"go.trai.ch/nixbrew/internal/core/domain"
	"go.trai.ch/zerr"
)

// Profile implements ports.ProfileManager using `nix profile` and friends.
type Profile struct {
	capture captureRunner
	stream  streamRunner
}

// NewProfile creates a ProfileManager backed by the nix CLI, streaming
// command output to stdout/stderr.
func NewProfile() *Profile {
	return &Profile{
		capture: runCapture,
		stream:  newStreamRunner(os.Stdout, os.Stderr),
	}
}

// newProfileWithRunners creates a Profile with custom runners (used for testing).
func newProfileWithRunners(capture captureRunner, stream streamRunner) *Profile {
	return &Profile{capture: capture, stream: stream}
}

// List returns the installed profile entries. Each line of `nix profile list`
// is reported as "<index> <descriptor>"; lines without an index are skipped.
func (p *Profile) List(ctx context.Context) ([]domain.ProfileEntry, error) {
	output, err := p.capture(ctx, "profile", "list")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrProfileListFailed.Error())
	}

	var entries []domain.ProfileEntry
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		entries = append(entries, domain.ProfileEntry{
			Index:      fields[0],
			Descriptor: strings.Join(fields[1:], " "),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrProfileListFailed.Error())
	}

	return entries, nil
}

// Add installs the package identified by the reference.
func (p *Profile) Add(ctx context.Context, reference string) error {
	return p.stream(ctx, "profile", "add", reference)
}

// Remove uninstalls the profile entry at the given index.
func (p *Profile) Remove(ctx context.Context, index string) error {
	return p.stream(ctx, "profile", "remove", index)
}

// Reinstall re-adds the reference, replacing the installed build.
func (p *Profile) Reinstall(ctx context.Context, reference string) error {
	return p.stream(ctx, "profile", "add", reference, "--reinstall")
}

// Search runs a package search against the default channel.
func (p *Profile) Search(ctx context.Context, query string) error {
	return p.stream(ctx, "search", "nixpkgs", query)
}

// Update refreshes the given flake target.
func (p *Profile) Update(ctx context.Context, target string) error {
	return p.stream(ctx, "flake", "update", target)
}
