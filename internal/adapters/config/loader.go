// Package config loads the optional per-user resolution policy file.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/nixbrew/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// File represents the structure of the config.yaml file.
type File struct {
	// Channels is the probe order for semantic resolution.
	Channels []string `yaml:"channels"`

	// CommitHashMinLength is the minimum token length for the commit-hash
	// classification rule.
	CommitHashMinLength int `yaml:"commit_hash_min_length"`
}

// Load reads the resolution policy from the given path. A missing file is
// not an error: the built-in defaults apply. Fields left empty in the file
// also fall back to their defaults.
func Load(path string) (domain.ResolvePolicy, error) {
	policy := domain.DefaultResolvePolicy()

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the user's home directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return policy, nil
		}
		return domain.ResolvePolicy{}, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		parseErr := zerr.With(domain.ErrConfigParseFailed, "path", path)
		return domain.ResolvePolicy{}, zerr.With(parseErr, "cause", err.Error())
	}

	if len(file.Channels) > 0 {
		policy.Channels = file.Channels
	}
	if file.CommitHashMinLength > 0 {
		policy.CommitHashMinLength = file.CommitHashMinLength
	}

	return policy, nil
}

// LoadDefault reads the policy from the per-user config location.
func LoadDefault() (domain.ResolvePolicy, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return domain.ResolvePolicy{}, zerr.Wrap(err, domain.ErrHomeDirNotFound.Error())
	}
	return Load(domain.ConfigPath(home))
}
