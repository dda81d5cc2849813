// Package domain contains the core types for the nixbrew package registry.
package domain

import "time"

// PackageInfo records a single install, pin or rollback event.
type PackageInfo struct {
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	Reference   string    `json:"reference"`
	InstalledAt time.Time `json:"installed_at"`
	// Lock holds a flake.lock snapshot for the event. Currently never
	// populated; kept so existing registry files round-trip.
	Lock *string `json:"lock,omitempty"`
}

// NewPackageInfo creates a PackageInfo stamped with the current UTC time.
func NewPackageInfo(name, version, reference string) PackageInfo {
	return PackageInfo{
		Name:        name,
		Version:     version,
		Reference:   reference,
		InstalledAt: time.Now().UTC(),
	}
}

// Registry is the persisted per-user state: the install history per package
// and the memoization cache for resolved semantic versions.
//
// A Registry is loaded at the start of a command, mutated through the methods
// below and saved at most once at the end. It is never shared across
// goroutines.
type Registry struct {
	History       map[string][]PackageInfo     `json:"history"`
	ResolvedCache map[string]map[string]string `json:"resolved_cache"`

	dirty bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		History:       make(map[string][]PackageInfo),
		ResolvedCache: make(map[string]map[string]string),
	}
}

// Record appends an event to the package's history. History is append-only:
// recording the same version twice yields two entries.
func (r *Registry) Record(info PackageInfo) {
	if r.History == nil {
		r.History = make(map[string][]PackageInfo)
	}
	r.History[info.Name] = append(r.History[info.Name], info)
	r.dirty = true
}

// HistoryOf returns the recorded events for a package in chronological order,
// or nil if the package was never recorded.
func (r *Registry) HistoryOf(name string) []PackageInfo {
	return r.History[name]
}

// CacheGet looks up a previously resolved reference for a (package, version)
// pair.
func (r *Registry) CacheGet(name, version string) (string, bool) {
	versions, ok := r.ResolvedCache[name]
	if !ok {
		return "", false
	}
	ref, ok := versions[version]
	return ref, ok
}

// CachePut stores a resolved reference for a (package, version) pair. The
// resolver only writes a key once per pair unless a cache bypass was
// requested, so cached answers are effectively immutable.
func (r *Registry) CachePut(name, version, reference string) {
	if r.ResolvedCache == nil {
		r.ResolvedCache = make(map[string]map[string]string)
	}
	versions, ok := r.ResolvedCache[name]
	if !ok {
		versions = make(map[string]string)
		r.ResolvedCache[name] = versions
	}
	versions[version] = reference
	r.dirty = true
}

// Dirty reports whether the registry was mutated since it was loaded.
// Commands only persist the registry when this is true.
func (r *Registry) Dirty() bool {
	return r.dirty
}
