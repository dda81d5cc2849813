package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nixbrew/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/nixbrew/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/nixbrew/internal/adapters/nix"      //nolint:depguard // Wired in app layer
	"go.trai.ch/nixbrew/internal/adapters/registry" //nolint:depguard // Wired in app layer
	"go.trai.ch/nixbrew/internal/core/domain"
	"go.trai.ch/nixbrew/internal/core/ports"
	"go.trai.ch/nixbrew/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			registry.NodeID,
			resolver.NodeID,
			nix.OracleNodeID,
			nix.ProfileNodeID,
			nix.FlakeNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	store, err := graft.Dep[ports.RegistryStore](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	profile, err := graft.Dep[ports.ProfileManager](ctx)
	if err != nil {
		return nil, err
	}

	oracle, err := graft.Dep[ports.ChannelOracle](ctx)
	if err != nil {
		return nil, err
	}

	flakes, err := graft.Dep[ports.FlakeWriter](ctx)
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

	return New(store, res, profile, oracle, flakes, log, policy), nil
}
