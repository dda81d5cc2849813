// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/nixbrew/internal/adapters/config"
	_ "go.trai.ch/nixbrew/internal/adapters/logger"
	_ "go.trai.ch/nixbrew/internal/adapters/nix"
	_ "go.trai.ch/nixbrew/internal/adapters/registry"
	// Register app and engine nodes.
	_ "go.trai.ch/nixbrew/internal/app"
	_ "go.trai.ch/nixbrew/internal/engine/resolver"
)
