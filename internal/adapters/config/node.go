package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nixbrew/internal/core/domain"
)

// NodeID is the unique identifier for the resolve policy Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[domain.ResolvePolicy]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (domain.ResolvePolicy, error) {
			return LoadDefault()
		},
	})
}
