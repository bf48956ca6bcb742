package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"golang-stock-watchlist/internal/entity"
	"golang-stock-watchlist/internal/watchlist/repository"
	"golang-stock-watchlist/pkg/common"
	"golang-stock-watchlist/pkg/logger"
	"golang-stock-watchlist/pkg/utils"
)

// AnalyzerService fans analysis calls out to the AI provider with bounded
// concurrency and per-item failure isolation.
type AnalyzerService interface {
	AnalyzeBatch(ctx context.Context, items []*entity.NewsItem, maxConcurrent int, timeout time.Duration) (results []*entity.AnalysisResult, failed int)
}

// NewAnalyzerService creates a new analyzer service.
func NewAnalyzerService(aiRepo repository.AIRepository, logger *logger.Logger) AnalyzerService {
	return &analyzerService{
		aiRepo:         aiRepo,
		logger:         logger,
		maxRetries:     common.MaxAnalysisRetries,
		retryBaseDelay: common.AnalysisRetryBaseDelay,
	}
}

type analyzerService struct {
	aiRepo repository.AIRepository
	logger *logger.Logger

	maxRetries     int
	retryBaseDelay time.Duration
}

// indexedResult ties a result to its item's position in the batch so the
// joined output is ordered independently of completion order.
type indexedResult struct {
	index  int
	result *entity.AnalysisResult
}

// AnalyzeBatch analyzes every item and returns the valid results in batch
// order plus the number of items that produced none. It returns only after
// every submitted item has completed or failed. A cancelled context stops
// submitting new work and fails the in-flight calls fast; the results
// gathered so far are still returned.
func (s *analyzerService) AnalyzeBatch(ctx context.Context, items []*entity.NewsItem, maxConcurrent int, timeout time.Duration) ([]*entity.AnalysisResult, int) {
	if len(items) == 0 {
		return []*entity.AnalysisResult{}, 0
	}
	if maxConcurrent <= 0 {
		maxConcurrent = common.DefaultMaxConcurrent
	}
	if timeout <= 0 {
		timeout = common.DefaultAnalysisTimeout
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []indexedResult
	)

	semaphore := make(chan struct{}, maxConcurrent)

	for i, item := range items {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}
		index, newsItem := i, item
		wg.Add(1)
		utils.GoSafe(func() {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			result, err := s.analyzeItem(ctx, newsItem, timeout)
			if err != nil {
				s.logger.Error("Failed to analyze news item",
					logger.ErrorField(err),
					logger.StringField("title", newsItem.Title),
					logger.StringField("provider", s.aiRepo.Provider()),
				)
				return
			}

			mu.Lock()
			results = append(results, indexedResult{index: index, result: result})
			mu.Unlock()
		})
	}

	wg.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].index < results[j].index
	})

	ordered := make([]*entity.AnalysisResult, 0, len(results))
	for _, r := range results {
		ordered = append(ordered, r.result)
	}

	failed := len(items) - len(ordered)
	s.logger.Info("Analyzed news batch",
		logger.IntField("total", len(items)),
		logger.IntField("analyzed", len(ordered)),
		logger.IntField("failed", failed),
	)

	return ordered, failed
}

// analyzeItem runs one analysis call with retries under a single per-item
// deadline. Context errors are not retried.
func (s *analyzerService) analyzeItem(ctx context.Context, item *entity.NewsItem, timeout time.Duration) (*entity.AnalysisResult, error) {
	itemCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var lastErr error
	delay := s.retryBaseDelay
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		result, err := s.aiRepo.AnalyzeNews(itemCtx, item)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if itemCtx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			break
		}
		if attempt == s.maxRetries {
			break
		}

		s.logger.Warn("Retrying news analysis",
			logger.IntField("attempt", attempt),
			logger.DurationField("backoff", delay),
			logger.StringField("title", item.Title),
		)

		select {
		case <-itemCtx.Done():
			return nil, itemCtx.Err()
		case <-time.After(delay):
		}
		delay *= common.RetryBackoffMultiplier
	}

	return nil, lastErr
}
