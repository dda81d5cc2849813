package nix

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nixbrew/internal/core/ports"
)

const (
	OracleNodeID  graft.ID = "adapter.nix.oracle"
	ProfileNodeID graft.ID = "adapter.nix.profile"
	FlakeNodeID   graft.ID = "adapter.nix.flake"
)

func init() {
	// Channel Oracle Node
	graft.Register(graft.Node[ports.ChannelOracle]{
		ID:        OracleNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ChannelOracle, error) {
			return NewOracle(), nil
		},
	})

	// Profile Manager Node
	graft.Register(graft.Node[ports.ProfileManager]{
		ID:        ProfileNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ProfileManager, error) {
			return NewProfile(), nil
		},
	})

	// Flake Writer Node
	graft.Register(graft.Node[ports.FlakeWriter]{
		ID:        FlakeNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FlakeWriter, error) {
			return NewFlake()
		},
	})
}
