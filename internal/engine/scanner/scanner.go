// Package scanner implements the concurrent token scanner.
package scanner

import (
	"context"
	"fmt"

	"go.trai.ch/shortstr/internal/core/domain"
	"go.trai.ch/shortstr/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// rootVertex names the vertex every file vertex hangs off.
const rootVertex = "scan"

// Options controls a single scan.
type Options struct {
	// Split selects how files are cut into tokens.
	Split domain.SplitMode
	// Workers bounds how many files are scanned at once. Values below 1 mean 1.
	Workers int
	// NoCache ignores stored stats. Fresh results are still recorded.
	NoCache bool
	// CachePath is the stats store file.
	CachePath string
}

// Scanner tokenizes files into ShortStrings and reports how they were stored.
type Scanner struct {
	reader    ports.TokenReader
	hasher    ports.Hasher
	store     ports.StatsStore
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewScanner creates a new Scanner.
func NewScanner(
	reader ports.TokenReader,
	hasher ports.Hasher,
	store ports.StatsStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Scanner {
	return &Scanner{
		reader:    reader,
		hasher:    hasher,
		store:     store,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Run scans files with up to opts.Workers goroutines. The report lists files in
// input order. The first failure cancels the files not yet started and is returned.
func (s *Scanner) Run(ctx context.Context, files []string, opts Options) (*domain.Report, error) {
	if len(files) == 0 {
		return nil, domain.ErrNoInputs
	}
	if opts.Split == "" {
		opts.Split = domain.SplitLines
	}

	// The cache is an optimization; an unreadable one is treated as empty.
	if err := s.store.Open(opts.CachePath); err != nil {
		s.logger.Warn("ignoring unreadable scan cache: " + err.Error())
	}

	ctx, root := s.telemetry.Record(ctx, rootVertex)

	results := make([]domain.FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, opts.Workers))

	for i, path := range files {
		g.Go(func() error {
			res, err := s.scanFile(gctx, path, opts)
			results[i] = res
			return err
		})
	}

	err := g.Wait()
	if ferr := s.store.Flush(); ferr != nil {
		s.logger.Warn("failed to save scan cache: " + ferr.Error())
	}
	root.Complete(err)
	if err != nil {
		return nil, zerr.Wrap(err, "scan failed")
	}

	report := &domain.Report{}
	for _, res := range results {
		report.Add(res)
	}
	return report, nil
}

// scanFile records one vertex per file around scan.
func (s *Scanner) scanFile(ctx context.Context, path string, opts Options) (domain.FileResult, error) {
	failed := domain.FileResult{
		FileStats: domain.FileStats{Path: path, Split: opts.Split},
		Status:    domain.VertexStatusFailed,
	}
	if err := ctx.Err(); err != nil {
		return failed, err
	}

	ctx, vertex := s.telemetry.Record(ctx, rootVertex+" "+path, ports.WithInputs(rootVertex))
	res, err := s.scan(ctx, vertex, path, opts)
	vertex.Complete(err)
	if err != nil {
		return failed, err
	}
	return res, nil
}

func (s *Scanner) scan(ctx context.Context, vertex ports.Vertex, path string, opts Options) (domain.FileResult, error) {
	sum, err := s.hasher.ComputeFileHash(path)
	if err != nil {
		return domain.FileResult{}, err
	}
	digest := fmt.Sprintf("%016x", sum)

	if !opts.NoCache {
		cached, err := s.store.Get(path)
		if err != nil {
			return domain.FileResult{}, zerr.With(zerr.Wrap(err, "failed to read scan cache"), "path", path)
		}
		if cached != nil && cached.Digest == digest && cached.Split == opts.Split {
			vertex.Cached()
			return domain.FileResult{FileStats: *cached, Status: domain.VertexStatusCached}, nil
		}
	}

	stats := domain.FileStats{Path: path, Digest: digest, Split: opts.Split}
	seen := domain.NewTokenSet()
	err = s.reader.ReadTokens(ctx, path, opts.Split, func(tok *domain.ShortString) error {
		stats.Observe(tok)
		seen.Add(tok)
		return nil
	})
	if err != nil {
		return domain.FileResult{}, err
	}
	stats.Unique = seen.Len()

	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("%d tokens, %d inline, %d heap, %d unique",
		stats.Tokens, stats.Inline, stats.Heap, stats.Unique))

	if err := s.store.Put(stats); err != nil {
		return domain.FileResult{}, zerr.With(zerr.Wrap(err, "failed to record scan result"), "path", path)
	}
	return domain.FileResult{FileStats: stats, Status: domain.VertexStatusCompleted}, nil
}
