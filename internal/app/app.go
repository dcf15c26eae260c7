// Package app implements the application layer for shortstr.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/shortstr/internal/core/domain"
	"go.trai.ch/shortstr/internal/core/ports"
	"go.trai.ch/shortstr/internal/engine/scanner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.InputResolver
	scanner      *scanner.Scanner
	renderer     ports.Renderer
	stdout       io.Writer
	getwd        func() (string, error)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.InputResolver,
	sc *scanner.Scanner,
	renderer ports.Renderer,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		scanner:      sc,
		renderer:     renderer,
		stdout:       os.Stdout,
		getwd:        os.Getwd,
	}
}

// WithOutput redirects rendered results to w.
// This is primarily used for testing to capture output.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithWorkDir fixes the directory config files and inputs are resolved against.
func (a *App) WithWorkDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// InspectOptions configuration for the Inspect method.
type InspectOptions struct {
	Format domain.Format
}

// Inspect reports how each text is stored as a ShortString.
func (a *App) Inspect(_ context.Context, texts []string, opts InspectOptions) error {
	if opts.Format == "" {
		opts.Format = domain.FormatText
	}

	items := make([]domain.Inspection, 0, len(texts))
	for i, text := range texts {
		s, err := domain.FromString(text)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "cannot inspect argument"), "index", i)
		}
		items = append(items, domain.NewInspection(&s))
	}

	if err := a.renderer.RenderInspections(a.stdout, items, opts.Format); err != nil {
		return zerr.Wrap(err, "failed to render inspection")
	}
	return nil
}

// ScanOptions configuration for the Scan method. Zero values fall back to the
// loaded configuration.
type ScanOptions struct {
	ConfigPath string
	Split      domain.SplitMode
	Workers    int
	Format     domain.Format
	NoCache    bool
}

// Scan tokenizes the files named by inputs and renders a storage report.
func (a *App) Scan(ctx context.Context, inputs []string, opts ScanOptions) error {
	// 1. Load the configuration
	cwd, err := a.getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to get working directory")
	}
	cfg, err := a.configLoader.Load(cwd, opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	cfg = applyOverrides(cfg, opts)

	// 2. Resolve inputs
	files, err := a.resolver.ResolveInputs(inputs, cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve inputs")
	}

	// 3. Run the scanner
	report, err := a.scanner.Run(ctx, files, scanner.Options{
		Split:     cfg.Split,
		Workers:   cfg.Workers,
		NoCache:   opts.NoCache,
		CachePath: cfg.Cache,
	})
	if err != nil {
		return err
	}
	relativize(report, cwd)

	// 4. Render the report
	if err := a.renderer.RenderReport(a.stdout, report, cfg.Format); err != nil {
		return zerr.Wrap(err, "failed to render report")
	}
	return nil
}

func applyOverrides(cfg domain.Config, opts ScanOptions) domain.Config {
	if opts.Split != "" {
		cfg.Split = opts.Split
	}
	if opts.Workers > 0 {
		cfg.Workers = opts.Workers
	}
	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	return cfg
}

// relativize shortens paths under cwd for display.
func relativize(report *domain.Report, cwd string) {
	for i := range report.Files {
		if rel, err := filepath.Rel(cwd, report.Files[i].Path); err == nil && filepath.IsLocal(rel) {
			report.Files[i].Path = rel
		}
	}
}
