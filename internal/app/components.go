package app

import "go.trai.ch/shortstr/internal/core/ports"

// Components holds everything the command line needs from the dependency graph.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}
