package scanner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shortstr/internal/adapters/cas"                //nolint:depguard // Wired in engine layer
	"go.trai.ch/shortstr/internal/adapters/fs"                 //nolint:depguard // Wired in engine layer
	"go.trai.ch/shortstr/internal/adapters/logger"             //nolint:depguard // Wired in engine layer
	"go.trai.ch/shortstr/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine layer
	"go.trai.ch/shortstr/internal/core/ports"
)

// NodeID is the unique identifier for the scanner Graft node.
const NodeID graft.ID = "engine.scanner"

func init() {
	graft.Register(graft.Node[*Scanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ReaderNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scanner, error) {
			reader, err := graft.Dep[ports.TokenReader](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.StatsStore](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(reader, hasher, store, telemetry, log), nil
		},
	})
}
