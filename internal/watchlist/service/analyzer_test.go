package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"golang-stock-watchlist/internal/entity"
	"golang-stock-watchlist/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAIRepository scripts per-item behavior and records attempt counts.
type fakeAIRepository struct {
	mu       sync.Mutex
	attempts map[string]int
	analyze  func(ctx context.Context, item *entity.NewsItem, attempt int) (*entity.AnalysisResult, error)
}

func (f *fakeAIRepository) AnalyzeNews(ctx context.Context, item *entity.NewsItem) (*entity.AnalysisResult, error) {
	f.mu.Lock()
	if f.attempts == nil {
		f.attempts = make(map[string]int)
	}
	f.attempts[item.Title]++
	attempt := f.attempts[item.Title]
	f.mu.Unlock()
	return f.analyze(ctx, item, attempt)
}

func (f *fakeAIRepository) Provider() string { return "fake" }

func (f *fakeAIRepository) attemptsFor(title string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attempts[title]
}

func newsItems(titles ...string) []*entity.NewsItem {
	items := make([]*entity.NewsItem, 0, len(titles))
	for _, title := range titles {
		items = append(items, entity.NewNewsItem(title, "content for "+title, "https://example.com", nil))
	}
	return items
}

// resultFor builds a valid analysis using the item title as the symbol.
func resultFor(item *entity.NewsItem) *entity.AnalysisResult {
	symbol := item.Title
	return &entity.AnalysisResult{
		StockSymbol:    &symbol,
		EventType:      entity.EventTypeOther,
		Direction:      entity.DirectionBullish,
		ImpactStrength: 3,
		Confidence:     0.9,
		Rationale:      "scripted",
		SourceItem:     item,
	}
}

func newTestAnalyzer(repo *fakeAIRepository) *analyzerService {
	svc := NewAnalyzerService(repo, logger.NewNop()).(*analyzerService)
	svc.retryBaseDelay = time.Millisecond
	return svc
}

func TestAnalyzeBatchEmpty(t *testing.T) {
	repo := &fakeAIRepository{analyze: func(ctx context.Context, item *entity.NewsItem, attempt int) (*entity.AnalysisResult, error) {
		t.Fatal("analyze should not be called")
		return nil, nil
	}}
	svc := newTestAnalyzer(repo)

	results, failed := svc.AnalyzeBatch(context.Background(), nil, 5, time.Second)
	assert.Empty(t, results)
	assert.Zero(t, failed)
}

func TestAnalyzeBatchIsolatesFailures(t *testing.T) {
	repo := &fakeAIRepository{analyze: func(ctx context.Context, item *entity.NewsItem, attempt int) (*entity.AnalysisResult, error) {
		if item.Title == "BAD" {
			return nil, errors.New("model returned garbage")
		}
		return resultFor(item), nil
	}}
	svc := newTestAnalyzer(repo)

	items := newsItems("AAA", "BBB", "BAD", "CCC", "DDD")
	results, failed := svc.AnalyzeBatch(context.Background(), items, 3, time.Second)

	assert.Equal(t, 1, failed)
	require.Len(t, results, 4)

	// The surviving results belong to the other items, untouched.
	for i, want := range []string{"AAA", "BBB", "CCC", "DDD"} {
		require.NotNil(t, results[i].StockSymbol)
		assert.Equal(t, want, *results[i].StockSymbol)
		assert.Equal(t, 3, results[i].ImpactStrength)
	}

	// Every item was attempted before the batch resolved.
	for _, item := range items {
		assert.GreaterOrEqual(t, repo.attemptsFor(item.Title), 1, item.Title)
	}
}

func TestAnalyzeBatchRespectsConcurrencyLimit(t *testing.T) {
	var inFlight, maxInFlight int64
	repo := &fakeAIRepository{analyze: func(ctx context.Context, item *entity.NewsItem, attempt int) (*entity.AnalysisResult, error) {
		current := atomic.AddInt64(&inFlight, 1)
		for {
			observed := atomic.LoadInt64(&maxInFlight)
			if current <= observed || atomic.CompareAndSwapInt64(&maxInFlight, observed, current) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt64(&inFlight, -1)
		return resultFor(item), nil
	}}
	svc := newTestAnalyzer(repo)

	items := newsItems("S1", "S2", "S3", "S4", "S5", "S6", "S7", "S8")
	results, failed := svc.AnalyzeBatch(context.Background(), items, 2, time.Second)

	assert.Zero(t, failed)
	assert.Len(t, results, 8)
	assert.LessOrEqual(t, atomic.LoadInt64(&maxInFlight), int64(2))
}

func TestAnalyzeBatchOrdersResultsByArrival(t *testing.T) {
	delays := map[string]time.Duration{
		"FIRST":  15 * time.Millisecond,
		"SECOND": 10 * time.Millisecond,
		"THIRD":  5 * time.Millisecond,
		"FOURTH": 0,
	}
	repo := &fakeAIRepository{analyze: func(ctx context.Context, item *entity.NewsItem, attempt int) (*entity.AnalysisResult, error) {
		time.Sleep(delays[item.Title])
		return resultFor(item), nil
	}}
	svc := newTestAnalyzer(repo)

	items := newsItems("FIRST", "SECOND", "THIRD", "FOURTH")
	results, failed := svc.AnalyzeBatch(context.Background(), items, 4, time.Second)

	assert.Zero(t, failed)
	require.Len(t, results, 4)
	// Completion order is reversed by the delays; output stays in batch order.
	for i, want := range []string{"FIRST", "SECOND", "THIRD", "FOURTH"} {
		assert.Equal(t, want, *results[i].StockSymbol)
	}
}

func TestAnalyzeBatchRetriesTransientErrors(t *testing.T) {
	repo := &fakeAIRepository{analyze: func(ctx context.Context, item *entity.NewsItem, attempt int) (*entity.AnalysisResult, error) {
		if item.Title == "FLAKY" && attempt == 1 {
			return nil, errors.New("temporary upstream hiccup")
		}
		return resultFor(item), nil
	}}
	svc := newTestAnalyzer(repo)

	results, failed := svc.AnalyzeBatch(context.Background(), newsItems("FLAKY"), 1, time.Second)

	assert.Zero(t, failed)
	require.Len(t, results, 1)
	assert.Equal(t, 2, repo.attemptsFor("FLAKY"))
}

func TestAnalyzeBatchGivesUpAfterMaxRetries(t *testing.T) {
	repo := &fakeAIRepository{analyze: func(ctx context.Context, item *entity.NewsItem, attempt int) (*entity.AnalysisResult, error) {
		return nil, errors.New("always broken")
	}}
	svc := newTestAnalyzer(repo)

	results, failed := svc.AnalyzeBatch(context.Background(), newsItems("DOOMED"), 1, time.Second)

	assert.Empty(t, results)
	assert.Equal(t, 1, failed)
	assert.Equal(t, svc.maxRetries, repo.attemptsFor("DOOMED"))
}

func TestAnalyzeBatchDoesNotRetryDeadlineErrors(t *testing.T) {
	repo := &fakeAIRepository{analyze: func(ctx context.Context, item *entity.NewsItem, attempt int) (*entity.AnalysisResult, error) {
		return nil, fmt.Errorf("call failed: %w", context.DeadlineExceeded)
	}}
	svc := newTestAnalyzer(repo)

	results, failed := svc.AnalyzeBatch(context.Background(), newsItems("SLOW"), 1, time.Second)

	assert.Empty(t, results)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 1, repo.attemptsFor("SLOW"))
}

func TestAnalyzeBatchItemTimeout(t *testing.T) {
	repo := &fakeAIRepository{analyze: func(ctx context.Context, item *entity.NewsItem, attempt int) (*entity.AnalysisResult, error) {
		if item.Title == "HANGS" {
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return resultFor(item), nil
	}}
	svc := newTestAnalyzer(repo)

	items := newsItems("HANGS", "QUICK")
	results, failed := svc.AnalyzeBatch(context.Background(), items, 2, 20*time.Millisecond)

	// The stuck item times out on its own; the other one is unaffected.
	assert.Equal(t, 1, failed)
	require.Len(t, results, 1)
	assert.Equal(t, "QUICK", *results[0].StockSymbol)
}

func TestAnalyzeBatchGracefulDegradationOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := &fakeAIRepository{analyze: func(ctx context.Context, item *entity.NewsItem, attempt int) (*entity.AnalysisResult, error) {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		cancel()
		return resultFor(item), nil
	}}
	svc := newTestAnalyzer(repo)

	// maxConcurrent=1 serializes the workers: the first call succeeds and
	// cancels the batch, every later one fails fast.
	results, failed := svc.AnalyzeBatch(ctx, newsItems("ONE", "TWO", "THREE"), 1, time.Second)

	assert.Len(t, results, 1)
	assert.Equal(t, 2, failed)
}

func TestAnalyzeBatchKeepsNonActionableResults(t *testing.T) {
	repo := &fakeAIRepository{analyze: func(ctx context.Context, item *entity.NewsItem, attempt int) (*entity.AnalysisResult, error) {
		result := resultFor(item)
		if item.Title == "MACRO" {
			result.StockSymbol = nil
		}
		return result, nil
	}}
	svc := newTestAnalyzer(repo)

	results, failed := svc.AnalyzeBatch(context.Background(), newsItems("MACRO", "TCS"), 2, time.Second)

	assert.Zero(t, failed)
	require.Len(t, results, 2)
	assert.Equal(t, 1, CountNonActionable(results))
}
