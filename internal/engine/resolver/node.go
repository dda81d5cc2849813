package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nixbrew/internal/adapters/config"
	"go.trai.ch/nixbrew/internal/adapters/logger"
	"go.trai.ch/nixbrew/internal/adapters/nix"
	"go.trai.ch/nixbrew/internal/core/domain"
	"go.trai.ch/nixbrew/internal/core/ports"
)

// NodeID is the unique identifier for the Resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			nix.OracleNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			oracle, err := graft.Dep[ports.ChannelOracle](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			policy, err := graft.Dep[domain.ResolvePolicy](ctx)
			if err != nil {
				return nil, err
			}

			return New(oracle, log, policy), nil
		},
	})
}
