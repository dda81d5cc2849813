// Package app implements the application layer for nixbrew.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/nixbrew/internal/core/domain"
	"go.trai.ch/nixbrew/internal/core/ports"
	"go.trai.ch/nixbrew/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options carries per-command flags.
type Options struct {
	// Refresh bypasses the resolved-version cache and overwrites it with a
	// fresh probe result.
	Refresh bool
}

// App wires the registry, resolver and nix adapters into command handlers.
//
// Every mutating handler follows the same shape: load the registry at entry,
// pass it explicitly through the resolution, and save it at most once after
// the full command logic succeeded. Nothing is persisted when a command
// fails or is interrupted partway.
type App struct {
	store    ports.RegistryStore
	resolver *resolver.Resolver
	profile  ports.ProfileManager
	oracle   ports.ChannelOracle
	flakes   ports.FlakeWriter
	logger   ports.Logger
	policy   domain.ResolvePolicy
	out      io.Writer
}

// New creates a new App instance.
func New(
	store ports.RegistryStore,
	res *resolver.Resolver,
	profile ports.ProfileManager,
	oracle ports.ChannelOracle,
	flakes ports.FlakeWriter,
	logger ports.Logger,
	policy domain.ResolvePolicy,
) *App {
	return &App{
		store:    store,
		resolver: res,
		profile:  profile,
		oracle:   oracle,
		flakes:   flakes,
		logger:   logger,
		policy:   policy,
		out:      os.Stdout,
	}
}

// SetOutput redirects user-facing output. Used for testing.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// Install resolves the version token and adds the package to the profile.
func (a *App) Install(ctx context.Context, pkg, version string, opts Options) error {
	if version == "" {
		fmt.Fprintf(a.out, "Installing %s...\n", pkg)
	} else {
		fmt.Fprintf(a.out, "Installing %s version %s...\n", pkg, version)
	}

	reg, err := a.store.Load()
	if err != nil {
		return err
	}

	ref, err := a.resolver.Resolve(ctx, reg, pkg, version, resolver.Options{BypassCache: opts.Refresh})
	if err != nil {
		return err
	}

	if err := a.profile.Add(ctx, ref); err != nil {
		return err
	}

	reg.Record(domain.NewPackageInfo(pkg, version, ref))
	return a.store.Save(reg)
}

// Uninstall removes the package's entry from the profile, located by index.
func (a *App) Uninstall(ctx context.Context, pkg string) error {
	fmt.Fprintf(a.out, "Finding package '%s' to uninstall...\n", pkg)

	entries, err := a.profile.List(ctx)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.Matches(pkg) {
			fmt.Fprintf(a.out, "Uninstalling %s (index: %s)...\n", pkg, entry.Index)
			return a.profile.Remove(ctx, entry.Index)
		}
	}

	return zerr.With(domain.ErrPackageNotInstalled, "package", pkg)
}

// Search searches the default channel, passing the oracle's output through.
func (a *App) Search(ctx context.Context, query string) error {
	return a.profile.Search(ctx, query)
}

// List prints the installed profile entries.
func (a *App) List(ctx context.Context) error {
	entries, err := a.profile.List(ctx)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		fmt.Fprintf(a.out, "%s  %s\n", entry.Index, entry.Descriptor)
	}
	return nil
}

// Update refreshes the default channel flake.
func (a *App) Update(ctx context.Context) error {
	fmt.Fprintln(a.out, "Updating nixpkgs flake...")
	return a.profile.Update(ctx, "nixpkgs")
}

// Upgrade reinstalls the package from the default channel.
func (a *App) Upgrade(ctx context.Context, pkg string) error {
	fmt.Fprintf(a.out, "Upgrading %s...\n", pkg)
	return a.profile.Reinstall(ctx, domain.DefaultReference(pkg))
}

// Versions reports the version each configured channel currently offers for
// the package.
func (a *App) Versions(ctx context.Context, pkg string) error {
	fmt.Fprintf(a.out, "Listing versions of %s...\n", pkg)
	return a.probeChannels(ctx, pkg)
}

// Pin resolves the version token and installs that specific build.
func (a *App) Pin(ctx context.Context, pkg, version string, opts Options) error {
	fmt.Fprintf(a.out, "Pinning %s to version %s...\n", pkg, version)

	reg, err := a.store.Load()
	if err != nil {
		return err
	}

	ref, err := a.resolver.Resolve(ctx, reg, pkg, version, resolver.Options{BypassCache: opts.Refresh})
	if err != nil {
		return err
	}

	if err := a.profile.Add(ctx, ref); err != nil {
		return err
	}

	reg.Record(domain.NewPackageInfo(pkg, version, ref))
	return a.store.Save(reg)
}

// History prints the recorded install history for the package. Without any
// history it falls back to reporting what the channels currently offer.
func (a *App) History(ctx context.Context, pkg string) error {
	reg, err := a.store.Load()
	if err != nil {
		return err
	}

	history := reg.HistoryOf(pkg)
	if len(history) == 0 {
		fmt.Fprintf(a.out, "No history found for package: %s\n", pkg)
		fmt.Fprintln(a.out, "Searching for available versions...")
		return a.probeChannels(ctx, pkg)
	}

	fmt.Fprintf(a.out, "History for %s:\n", pkg)
	for i, info := range history {
		fmt.Fprintf(a.out, "  %d. Version: %s (%s)\n", i+1, info.Version, info.InstalledAt.Format("2006-01-02 15:04:05 MST"))
		fmt.Fprintf(a.out, "     Reference: %s\n", info.Reference)
	}
	return nil
}

// Rollback reinstalls a previous version: the current profile entry is
// removed if present, the requested version is resolved and added, and the
// event is recorded.
func (a *App) Rollback(ctx context.Context, pkg, version string, opts Options) error {
	fmt.Fprintf(a.out, "Rolling back %s to version %s...\n", pkg, version)

	reg, err := a.store.Load()
	if err != nil {
		return err
	}

	// A missing or unlistable profile entry does not block the rollback;
	// the target version is installed either way.
	entries, err := a.profile.List(ctx)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("could not list profile, skipping removal: %v", err))
	} else {
		for _, entry := range entries {
			if entry.Matches(pkg) {
				if err := a.profile.Remove(ctx, entry.Index); err != nil {
					return err
				}
				break
			}
		}
	}

	ref, err := a.resolver.Resolve(ctx, reg, pkg, version, resolver.Options{BypassCache: opts.Refresh})
	if err != nil {
		return err
	}

	if err := a.profile.Add(ctx, ref); err != nil {
		return err
	}

	reg.Record(domain.NewPackageInfo(pkg, version, ref))
	if err := a.store.Save(reg); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Successfully rolled back %s to version %s\n", pkg, version)
	return nil
}

// CreateFlake resolves the version token (warming the cache for semantic
// versions) and generates a standalone flake for the package.
func (a *App) CreateFlake(ctx context.Context, pkg, version string, opts Options) error {
	reg, err := a.store.Load()
	if err != nil {
		return err
	}

	if _, err := a.resolver.Resolve(ctx, reg, pkg, version, resolver.Options{BypassCache: opts.Refresh}); err != nil {
		return err
	}

	path, err := a.flakes.Create(ctx, pkg)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created flake at: %s\n", path)

	if reg.Dirty() {
		return a.store.Save(reg)
	}
	return nil
}

// probeChannels asks every configured channel for its current version of the
// package. The probes are independent reads, so they fan out concurrently;
// output stays in channel order.
func (a *App) probeChannels(ctx context.Context, pkg string) error {
	results := make([]string, len(a.policy.Channels))

	g, gctx := errgroup.WithContext(ctx)
	for i, channel := range a.policy.Channels {
		g.Go(func() error {
			version, err := a.oracle.QueryVersion(gctx, channel, pkg)
			if err != nil {
				a.logger.Warn(fmt.Sprintf("channel %s reported no version for %s: %v", channel, pkg, err))
				return nil
			}
			results[i] = version
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, channel := range a.policy.Channels {
		if results[i] == "" {
			continue
		}
		fmt.Fprintf(a.out, "  %s: %s\n", channel, results[i])
	}
	return nil
}
