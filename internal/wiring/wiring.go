// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/shortstr/internal/adapters/cas"
	_ "go.trai.ch/shortstr/internal/adapters/config"
	_ "go.trai.ch/shortstr/internal/adapters/fs"
	_ "go.trai.ch/shortstr/internal/adapters/logger"
	_ "go.trai.ch/shortstr/internal/adapters/render"
	_ "go.trai.ch/shortstr/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/shortstr/internal/app"
	_ "go.trai.ch/shortstr/internal/engine/scanner"
)
