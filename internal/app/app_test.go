package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shortstr/internal/adapters/telemetry"
	"go.trai.ch/shortstr/internal/app"
	"go.trai.ch/shortstr/internal/core/domain"
	"go.trai.ch/shortstr/internal/core/ports/mocks"
	"go.trai.ch/shortstr/internal/engine/scanner"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	loader   *mocks.MockConfigLoader
	resolver *mocks.MockInputResolver
	reader   *mocks.MockTokenReader
	hasher   *mocks.MockHasher
	store    *mocks.MockStatsStore
	renderer *mocks.MockRenderer
	logger   *mocks.MockLogger
	out      *bytes.Buffer
	app      *app.App
}

func setup(t *testing.T) *testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := &testDeps{
		loader:   mocks.NewMockConfigLoader(ctrl),
		resolver: mocks.NewMockInputResolver(ctrl),
		reader:   mocks.NewMockTokenReader(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		store:    mocks.NewMockStatsStore(ctrl),
		renderer: mocks.NewMockRenderer(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		out:      new(bytes.Buffer),
	}
	sc := scanner.NewScanner(d.reader, d.hasher, d.store, telemetry.NewNoOp(), d.logger)
	d.app = app.New(d.loader, d.resolver, sc, d.renderer).
		WithOutput(d.out).
		WithWorkDir(workDir)
	return d
}

var workDir = filepath.FromSlash("/work")

func TestApp_Inspect(t *testing.T) {
	d := setup(t)

	d.renderer.EXPECT().
		RenderInspections(d.out, gomock.Any(), domain.FormatJSON).
		DoAndReturn(func(_ io.Writer, items []domain.Inspection, _ domain.Format) error {
			require.Len(t, items, 2)
			assert.Equal(t, "short", items[0].Text.String())
			assert.Equal(t, "inline", items[0].Repr)
			assert.Equal(t, domain.InlineCapacity, items[0].Cap)
			assert.Equal(t, "heap", items[1].Repr)
			assert.Equal(t, 27, items[1].Len)
			return nil
		})

	err := d.app.Inspect(context.Background(), []string{"short", "definitely not inline text!"}, app.InspectOptions{Format: domain.FormatJSON})
	require.NoError(t, err)
}

func TestApp_Inspect_DefaultsToText(t *testing.T) {
	d := setup(t)

	d.renderer.EXPECT().RenderInspections(gomock.Any(), gomock.Any(), domain.FormatText).Return(nil)

	require.NoError(t, d.app.Inspect(context.Background(), []string{"x"}, app.InspectOptions{}))
}

func TestApp_Inspect_RenderError(t *testing.T) {
	d := setup(t)

	d.renderer.EXPECT().RenderInspections(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broken pipe"))

	err := d.app.Inspect(context.Background(), []string{"x"}, app.InspectOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to render inspection")
}

func TestApp_Scan(t *testing.T) {
	d := setup(t)

	file := filepath.Join(workDir, "docs", "a.txt")
	cfg := domain.Config{Split: domain.SplitLines, Workers: 4, Format: domain.FormatText, Cache: "/work/.shortstr/cache.json"}

	d.loader.EXPECT().Load(workDir, "").Return(cfg, nil)
	d.resolver.EXPECT().ResolveInputs([]string{"docs"}, workDir).Return([]string{file}, nil)
	d.store.EXPECT().Open(cfg.Cache).Return(nil)
	d.hasher.EXPECT().ComputeFileHash(file).Return(uint64(1), nil)
	d.reader.EXPECT().ReadTokens(gomock.Any(), file, domain.SplitWords, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ domain.SplitMode, fn func(*domain.ShortString) error) error {
			tok := domain.MustFromString("hello")
			return fn(&tok)
		})
	d.store.EXPECT().Put(gomock.Any()).Return(nil)
	d.store.EXPECT().Flush().Return(nil)
	d.renderer.EXPECT().
		RenderReport(d.out, gomock.Any(), domain.FormatYAML).
		DoAndReturn(func(_ io.Writer, report *domain.Report, _ domain.Format) error {
			require.Len(t, report.Files, 1)
			assert.Equal(t, filepath.Join("docs", "a.txt"), report.Files[0].Path)
			assert.Equal(t, 1, report.Totals.Inline)
			return nil
		})

	err := d.app.Scan(context.Background(), []string{"docs"}, app.ScanOptions{
		Split:   domain.SplitWords,
		Format:  domain.FormatYAML,
		NoCache: true,
	})
	require.NoError(t, err)
}

func TestApp_Scan_ConfigError(t *testing.T) {
	d := setup(t)

	d.loader.EXPECT().Load(workDir, "missing.yaml").Return(domain.Config{}, errors.New("no such file"))

	err := d.app.Scan(context.Background(), []string{"a.txt"}, app.ScanOptions{ConfigPath: "missing.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Scan_ResolveError(t *testing.T) {
	d := setup(t)

	d.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(domain.DefaultConfig(), nil)
	d.resolver.EXPECT().ResolveInputs(gomock.Any(), gomock.Any()).Return(nil, domain.ErrNoInputs)

	err := d.app.Scan(context.Background(), nil, app.ScanOptions{})
	require.ErrorIs(t, err, domain.ErrNoInputs)
}

func TestApp_Scan_Failure(t *testing.T) {
	d := setup(t)

	file := filepath.Join(workDir, "bad.txt")
	d.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(domain.DefaultConfig(), nil)
	d.resolver.EXPECT().ResolveInputs(gomock.Any(), gomock.Any()).Return([]string{file}, nil)
	d.store.EXPECT().Open(gomock.Any()).Return(nil)
	d.store.EXPECT().Get(file).Return(nil, nil)
	d.store.EXPECT().Flush().Return(nil)
	d.hasher.EXPECT().ComputeFileHash(file).Return(uint64(0), nil)
	d.reader.EXPECT().ReadTokens(gomock.Any(), file, gomock.Any(), gomock.Any()).Return(domain.ErrInvalidUTF8)

	err := d.app.Scan(context.Background(), []string{"bad.txt"}, app.ScanOptions{})
	require.ErrorIs(t, err, domain.ErrInvalidUTF8)
	assert.Empty(t, d.out.String())
}
