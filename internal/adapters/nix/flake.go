package nix

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/nixbrew/internal/core/domain"
	"go.trai.ch/zerr"
)

const flakeTemplate = `{
  description = "Nix flake for %[1]s package";

  inputs = {
    nixpkgs.url = "github:NixOS/nixpkgs/nixos-unstable";
  };

  outputs = { self, nixpkgs }:
    let
      system = "x86_64-linux";
      pkgs = nixpkgs.legacyPackages.${system};
    in {
      packages.${system}.default = pkgs.%[1]s;
      defaultPackage.${system} = pkgs.%[1]s;
    };
}
`

// Flake implements ports.FlakeWriter, generating standalone flakes under the
// per-user flakes directory.
type Flake struct {
	home   string
	stream streamRunner
}

// NewFlake creates a FlakeWriter rooted in the user's home directory.
func NewFlake() (*Flake, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrHomeDirNotFound.Error())
	}
	return &Flake{
		home:   home,
		stream: newStreamRunner(os.Stdout, os.Stderr),
	}, nil
}

// newFlakeWithRunner creates a Flake with a custom home and runner (used for testing).
func newFlakeWithRunner(home string, stream streamRunner) *Flake {
	return &Flake{home: home, stream: stream}
}

// Create writes flake.nix for the package and generates its lock file via
// `nix flake update`. Returns the flake.nix path.
func (f *Flake) Create(ctx context.Context, pkg string) (string, error) {
	dir := domain.FlakeDir(f.home, pkg)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.Wrap(err, domain.ErrFlakeWriteFailed.Error())
	}

	path := filepath.Join(dir, domain.FlakeFileName)
	content := fmt.Sprintf(flakeTemplate, pkg)
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		writeErr := zerr.Wrap(err, domain.ErrFlakeWriteFailed.Error())
		return "", zerr.With(writeErr, "path", path)
	}

	if err := f.stream(ctx, "flake", "update", "--flake", dir); err != nil {
		return "", zerr.With(err, "flake_dir", dir)
	}

	return path, nil
}
