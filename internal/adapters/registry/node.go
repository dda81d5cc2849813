package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nixbrew/internal/core/ports"
)

// NodeID is the unique identifier for the RegistryStore Graft node.
const NodeID graft.ID = "adapter.registry.store"

func init() {
	graft.Register(graft.Node[ports.RegistryStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RegistryStore, error) {
			return NewStore()
		},
	})
}
