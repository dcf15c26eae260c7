package scanner_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shortstr/internal/adapters/telemetry"
	"go.trai.ch/shortstr/internal/core/domain"
	"go.trai.ch/shortstr/internal/core/ports/mocks"
	"go.trai.ch/shortstr/internal/engine/scanner"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	reader *mocks.MockTokenReader
	hasher *mocks.MockHasher
	store  *mocks.MockStatsStore
	logger *mocks.MockLogger
	scan   *scanner.Scanner
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		reader: mocks.NewMockTokenReader(ctrl),
		hasher: mocks.NewMockHasher(ctrl),
		store:  mocks.NewMockStatsStore(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	f.scan = scanner.NewScanner(f.reader, f.hasher, f.store, telemetry.NewNoOp(), f.logger)
	return f
}

// emit returns a ReadTokens implementation that yields words in order.
func emit(words ...string) func(context.Context, string, domain.SplitMode, func(*domain.ShortString) error) error {
	return func(_ context.Context, _ string, _ domain.SplitMode, fn func(*domain.ShortString) error) error {
		for _, w := range words {
			tok := domain.MustFromString(w)
			if err := fn(&tok); err != nil {
				return err
			}
		}
		return nil
	}
}

func TestScanner_Run(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().Open("cache.json").Return(nil)
	f.hasher.EXPECT().ComputeFileHash("a.txt").Return(uint64(0xa), nil)
	f.hasher.EXPECT().ComputeFileHash("b.txt").Return(uint64(0xb), nil)
	f.store.EXPECT().Get("a.txt").Return(nil, nil)
	f.store.EXPECT().Get("b.txt").Return(nil, nil)
	f.reader.EXPECT().ReadTokens(gomock.Any(), "a.txt", domain.SplitWords, gomock.Any()).
		DoAndReturn(emit("id", "id", "a-token-longer-than-inline"))
	f.reader.EXPECT().ReadTokens(gomock.Any(), "b.txt", domain.SplitWords, gomock.Any()).
		DoAndReturn(emit("x"))
	f.store.EXPECT().Put(gomock.Any()).Return(nil).Times(2)
	f.store.EXPECT().Flush().Return(nil)

	report, err := f.scan.Run(context.Background(), []string{"a.txt", "b.txt"}, scanner.Options{
		Split:     domain.SplitWords,
		Workers:   2,
		CachePath: "cache.json",
	})
	require.NoError(t, err)
	require.Len(t, report.Files, 2)

	a := report.Files[0]
	assert.Equal(t, "a.txt", a.Path)
	assert.Equal(t, "000000000000000a", a.Digest)
	assert.Equal(t, domain.SplitWords, a.Split)
	assert.Equal(t, domain.VertexStatusCompleted, a.Status)
	assert.Equal(t, 3, a.Tokens)
	assert.Equal(t, 2, a.Inline)
	assert.Equal(t, 1, a.Heap)
	assert.Equal(t, 2, a.Unique)
	assert.Equal(t, 26, a.Longest)

	assert.Equal(t, "b.txt", report.Files[1].Path)
	assert.Equal(t, 4, report.Totals.Tokens)
	assert.Equal(t, 3, report.Totals.Unique)
}

func TestScanner_Run_CacheHit(t *testing.T) {
	f := newFixture(t)

	cached := &domain.FileStats{Path: "a.txt", Digest: "00000000000000ff", Split: domain.SplitLines, Tokens: 9, Inline: 9}

	f.store.EXPECT().Open(gomock.Any()).Return(nil)
	f.hasher.EXPECT().ComputeFileHash("a.txt").Return(uint64(0xff), nil)
	f.store.EXPECT().Get("a.txt").Return(cached, nil)
	f.store.EXPECT().Flush().Return(nil)

	report, err := f.scan.Run(context.Background(), []string{"a.txt"}, scanner.Options{Workers: 1})
	require.NoError(t, err)
	require.Len(t, report.Files, 1)
	assert.Equal(t, domain.VertexStatusCached, report.Files[0].Status)
	assert.Equal(t, 9, report.Totals.Tokens)
}

func TestScanner_Run_StaleCache(t *testing.T) {
	tests := []struct {
		name   string
		cached domain.FileStats
	}{
		{name: "digest changed", cached: domain.FileStats{Path: "a.txt", Digest: "0000000000000001", Split: domain.SplitLines}},
		{name: "split changed", cached: domain.FileStats{Path: "a.txt", Digest: "00000000000000ff", Split: domain.SplitWords}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.store.EXPECT().Open(gomock.Any()).Return(nil)
			f.hasher.EXPECT().ComputeFileHash("a.txt").Return(uint64(0xff), nil)
			f.store.EXPECT().Get("a.txt").Return(&tt.cached, nil)
			f.reader.EXPECT().ReadTokens(gomock.Any(), "a.txt", domain.SplitLines, gomock.Any()).DoAndReturn(emit("line"))
			f.store.EXPECT().Put(gomock.Any()).DoAndReturn(func(stats domain.FileStats) error {
				assert.Equal(t, "00000000000000ff", stats.Digest)
				assert.Equal(t, domain.SplitLines, stats.Split)
				return nil
			})
			f.store.EXPECT().Flush().Return(nil)

			report, err := f.scan.Run(context.Background(), []string{"a.txt"}, scanner.Options{})
			require.NoError(t, err)
			assert.Equal(t, domain.VertexStatusCompleted, report.Files[0].Status)
		})
	}
}

func TestScanner_Run_NoCache(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().Open(gomock.Any()).Return(nil)
	f.hasher.EXPECT().ComputeFileHash("a.txt").Return(uint64(1), nil)
	f.reader.EXPECT().ReadTokens(gomock.Any(), "a.txt", gomock.Any(), gomock.Any()).DoAndReturn(emit("fresh"))
	f.store.EXPECT().Put(gomock.Any()).Return(nil)
	f.store.EXPECT().Flush().Return(nil)

	report, err := f.scan.Run(context.Background(), []string{"a.txt"}, scanner.Options{NoCache: true})
	require.NoError(t, err)
	assert.Equal(t, domain.VertexStatusCompleted, report.Files[0].Status)
}

func TestScanner_Run_Failure(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().Open(gomock.Any()).Return(nil)
	f.hasher.EXPECT().ComputeFileHash("bad.txt").Return(uint64(0), nil)
	f.store.EXPECT().Get("bad.txt").Return(nil, nil)
	f.reader.EXPECT().ReadTokens(gomock.Any(), "bad.txt", gomock.Any(), gomock.Any()).Return(domain.ErrInvalidUTF8)
	f.store.EXPECT().Flush().Return(nil)

	report, err := f.scan.Run(context.Background(), []string{"bad.txt"}, scanner.Options{})
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrInvalidUTF8)
}

func TestScanner_Run_FailureCancelsPending(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().Open(gomock.Any()).Return(nil)
	f.hasher.EXPECT().ComputeFileHash("first.txt").Return(uint64(0), errors.New("unreadable"))
	f.store.EXPECT().Flush().Return(nil)

	// With a single worker the remaining files start after the failure and
	// see a cancelled context, so nothing else is touched.
	files := []string{"first.txt", "second.txt", "third.txt"}
	_, err := f.scan.Run(context.Background(), files, scanner.Options{Workers: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreadable")
}

func TestScanner_Run_CacheProblemsAreWarnings(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().Open(gomock.Any()).Return(errors.New("corrupt"))
	f.logger.EXPECT().Warn(gomock.Any()).Times(2)
	f.hasher.EXPECT().ComputeFileHash("a.txt").Return(uint64(1), nil)
	f.store.EXPECT().Get("a.txt").Return(nil, nil)
	f.reader.EXPECT().ReadTokens(gomock.Any(), "a.txt", gomock.Any(), gomock.Any()).DoAndReturn(emit("ok"))
	f.store.EXPECT().Put(gomock.Any()).Return(nil)
	f.store.EXPECT().Flush().Return(errors.New("read-only"))

	report, err := f.scan.Run(context.Background(), []string{"a.txt"}, scanner.Options{})
	require.NoError(t, err)
	assert.Len(t, report.Files, 1)
}

func TestScanner_Run_NoInputs(t *testing.T) {
	f := newFixture(t)
	_, err := f.scan.Run(context.Background(), nil, scanner.Options{})
	assert.ErrorIs(t, err, domain.ErrNoInputs)
}

func TestScanner_Run_KeepsInputOrder(t *testing.T) {
	f := newFixture(t)

	const n = 16
	files := make([]string, n)
	for i := range files {
		files[i] = fmt.Sprintf("file-%02d.txt", i)
	}

	var active, peak atomic.Int32
	f.store.EXPECT().Open(gomock.Any()).Return(nil)
	f.store.EXPECT().Flush().Return(nil)
	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(n)
	f.store.EXPECT().Put(gomock.Any()).Return(nil).Times(n)
	f.hasher.EXPECT().ComputeFileHash(gomock.Any()).Return(uint64(7), nil).Times(n)
	f.reader.EXPECT().ReadTokens(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, path string, mode domain.SplitMode, fn func(*domain.ShortString) error) error {
			cur := active.Add(1)
			defer active.Add(-1)
			for {
				old := peak.Load()
				if cur <= old || peak.CompareAndSwap(old, cur) {
					break
				}
			}
			return emit(path)(ctx, path, mode, fn)
		}).Times(n)

	report, err := f.scan.Run(context.Background(), files, scanner.Options{Workers: 3})
	require.NoError(t, err)
	require.Len(t, report.Files, n)
	for i, res := range report.Files {
		assert.Equal(t, files[i], res.Path)
	}
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestScanner_Run_Telemetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockTokenReader(ctrl)
	hasher := mocks.NewMockHasher(ctrl)
	store := mocks.NewMockStatsStore(ctrl)
	tel := mocks.NewMockTelemetry(ctrl)
	root := mocks.NewMockVertex(ctrl)
	file := mocks.NewMockVertex(ctrl)

	store.EXPECT().Open(gomock.Any()).Return(nil)
	store.EXPECT().Get("a.txt").Return(&domain.FileStats{Path: "a.txt", Digest: "0000000000000002", Split: domain.SplitLines}, nil)
	store.EXPECT().Flush().Return(nil)
	hasher.EXPECT().ComputeFileHash("a.txt").Return(uint64(2), nil)

	gomock.InOrder(
		tel.EXPECT().Record(gomock.Any(), "scan").Return(context.Background(), root),
		tel.EXPECT().Record(gomock.Any(), "scan a.txt", gomock.Any()).Return(context.Background(), file),
	)
	file.EXPECT().Cached()
	file.EXPECT().Complete(nil)
	root.EXPECT().Complete(nil)

	s := scanner.NewScanner(reader, hasher, store, tel, mocks.NewMockLogger(ctrl))
	report, err := s.Run(context.Background(), []string{"a.txt"}, scanner.Options{})
	require.NoError(t, err)
	assert.Equal(t, domain.VertexStatusCached, report.Files[0].Status)
}
