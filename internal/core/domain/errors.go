package domain

import "go.trai.ch/zerr"

var (
	// ErrHomeDirNotFound is returned when the user home directory cannot be resolved.
	ErrHomeDirNotFound = zerr.New("could not find home directory")

	// ErrRegistryReadFailed is returned when the registry file cannot be read.
	ErrRegistryReadFailed = zerr.New("failed to read package registry")

	// ErrRegistryCorrupt is returned when an existing registry file fails to parse.
	// The file is never overwritten in this case.
	ErrRegistryCorrupt = zerr.New("package registry is corrupt")

	// ErrRegistryMarshalFailed is returned when the registry cannot be serialized.
	ErrRegistryMarshalFailed = zerr.New("failed to marshal package registry")

	// ErrRegistryWriteFailed is returned when the registry cannot be written.
	ErrRegistryWriteFailed = zerr.New("failed to write package registry")

	// ErrRegistryConflict is returned when the registry file changed between
	// load and save. The save is refused instead of silently dropping the
	// other writer's update.
	ErrRegistryConflict = zerr.New("package registry changed since load")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrOracleQueryFailed is returned when a channel version query fails.
	// Resolution treats this as a skipped probe, not a fatal error.
	ErrOracleQueryFailed = zerr.New("channel version query failed")

	// ErrOracleOutputInvalid is returned when the nix CLI reports success but
	// its output cannot be decoded. This is fatal for the invocation.
	ErrOracleOutputInvalid = zerr.New("unexpected output from nix eval")

	// ErrNixCommandFailed is returned when a pass-through nix command exits
	// with a non-zero status.
	ErrNixCommandFailed = zerr.New("nix command failed")

	// ErrProfileListFailed is returned when the installed profile cannot be listed.
	ErrProfileListFailed = zerr.New("failed to list nix profile")

	// ErrPackageNotInstalled is returned when a package is not present in the
	// installed profile.
	ErrPackageNotInstalled = zerr.New("package not found in profile")

	// ErrFlakeWriteFailed is returned when a generated flake cannot be written.
	ErrFlakeWriteFailed = zerr.New("failed to write flake")
)
