package domain

import "path/filepath"

const (
	// BrewDirName is the name of the per-user nixbrew directory.
	BrewDirName = ".nixbrew"

	// RegistryFileName is the name of the package registry file.
	RegistryFileName = "registry.json"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "config.yaml"

	// FlakesDirName is the name of the generated-flakes directory.
	FlakesDirName = "flakes"

	// FlakeFileName is the name of a generated flake definition.
	FlakeFileName = "flake.nix"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// RegistryPath returns the registry file path under the given home directory.
// It joins .nixbrew and registry.json.
func RegistryPath(home string) string {
	return filepath.Join(home, BrewDirName, RegistryFileName)
}

// ConfigPath returns the config file path under the given home directory.
// It joins .nixbrew and config.yaml.
func ConfigPath(home string) string {
	return filepath.Join(home, BrewDirName, ConfigFileName)
}

// FlakeDir returns the directory for a package's generated flake under the
// given home directory. It joins .nixbrew, flakes and the package name.
func FlakeDir(home, pkg string) string {
	return filepath.Join(home, BrewDirName, FlakesDirName, pkg)
}
