package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shortstr/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/shortstr/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/shortstr/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/shortstr/internal/adapters/render"             //nolint:depguard // Wired in app layer
	"go.trai.ch/shortstr/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/shortstr/internal/core/ports"
	"go.trai.ch/shortstr/internal/engine/scanner"
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
			config.NodeID,
			fs.ResolverNodeID,
			scanner.NodeID,
			render.NodeID,
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
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.InputResolver](ctx)
	if err != nil {
		return nil, err
	}

	sc, err := graft.Dep[*scanner.Scanner](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolver, sc, renderer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
