// Package nix adapts the nix CLI to the oracle, profile and flake ports.
package nix

import (
	"context"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/nixbrew/internal/core/domain"
	"go.trai.ch/zerr"
)

// experimentalArgs enables the nix features this tool depends on regardless
// of the user's nix.conf.
var experimentalArgs = []string{
	"--extra-experimental-features", "nix-command",
	"--extra-experimental-features", "flakes",
}

// captureRunner runs a nix command and returns its stdout.
type captureRunner func(ctx context.Context, args ...string) ([]byte, error)

// streamRunner runs a nix command with its output forwarded to the user.
type streamRunner func(ctx context.Context, args ...string) error

func runCapture(ctx context.Context, args ...string) ([]byte, error) {
	full := append(append([]string{}, experimentalArgs...), args...)
	//nolint:gosec // args are constructed from validated inputs
	cmd := exec.CommandContext(ctx, "nix", full...)

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			nixErr := zerr.Wrap(exitErr, domain.ErrNixCommandFailed.Error())
			nixErr = zerr.With(nixErr, "exit_code", exitErr.ExitCode())
			return nil, zerr.With(nixErr, "stderr", stderr)
		}
		return nil, zerr.Wrap(err, domain.ErrNixCommandFailed.Error())
	}

	return output, nil
}

// newStreamRunner returns a runner that forwards nix's own output to the
// given writers, matching the interactive feel of calling nix directly.
func newStreamRunner(out, errOut io.Writer) streamRunner {
	return func(ctx context.Context, args ...string) error {
		full := append(append([]string{}, experimentalArgs...), args...)
		//nolint:gosec // args are constructed from validated inputs
		cmd := exec.CommandContext(ctx, "nix", full...)
		cmd.Stdout = out
		cmd.Stderr = errOut

		if err := cmd.Run(); err != nil {
			exitCode := -1
			if exitErr, ok := err.(*exec.ExitError); ok {
				exitCode = exitErr.ExitCode()
			}
			nixErr := zerr.Wrap(err, domain.ErrNixCommandFailed.Error())
			return zerr.With(nixErr, "exit_code", exitCode)
		}
		return nil
	}
}
