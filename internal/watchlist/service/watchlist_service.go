package service

import (
	"context"
	"time"

	"golang-stock-watchlist/internal/watchlist/config"
	"golang-stock-watchlist/internal/watchlist/dto"
	"golang-stock-watchlist/pkg/common"
	"golang-stock-watchlist/pkg/logger"
	"golang-stock-watchlist/pkg/utils"
)

// WatchlistService runs the full news-to-watchlist pipeline: ingest,
// concurrent analysis, aggregation and ranking.
type WatchlistService interface {
	GenerateWatchlist(ctx context.Context, req *dto.GenerateWatchlistRequest) (*dto.WatchlistData, error)
}

// NewWatchlistService creates a new watchlist service.
func NewWatchlistService(cfg *config.Config, ingestService NewsIngestService, analyzerService AnalyzerService, logger *logger.Logger) WatchlistService {
	return &watchlistService{
		cfg:             cfg,
		ingestService:   ingestService,
		analyzerService: analyzerService,
		logger:          logger,
	}
}

type watchlistService struct {
	cfg             *config.Config
	ingestService   NewsIngestService
	analyzerService AnalyzerService
	logger          *logger.Logger
}

// GenerateWatchlist performs one synchronous end-to-end run. It always
// returns a valid payload: empty feeds, failed analyses and a cancelled
// caller all degrade to a (possibly empty) watchlist whose metadata counts
// show what happened.
func (s *watchlistService) GenerateWatchlist(ctx context.Context, req *dto.GenerateWatchlistRequest) (*dto.WatchlistData, error) {
	opts := s.resolveOptions(req)
	startedAt := time.Now()

	items, fetched := s.ingestService.Ingest(ctx, opts.minContentLength)
	results, failed := s.analyzerService.AnalyzeBatch(ctx, items, opts.maxConcurrent, opts.analysisTimeout)

	watchlist := BuildWatchlist(results, opts.maxWatchlistSize)
	bullish, bearish := SplitByDirection(watchlist)

	// Valid results without a symbol are "analyzed but non-actionable"; they
	// are counted apart from both the analyzed and the failed items.
	nonActionable := CountNonActionable(results)

	now := utils.TimeNowIST()
	data := &dto.WatchlistData{
		Watchlist: watchlist,
		Bullish:   bullish,
		Bearish:   bearish,
		Metadata: dto.WatchlistMetadata{
			GeneratedAt:        utils.ISTDate(now),
			MarketOpen:         utils.IsMarketHours(now),
			TotalNewsFetched:   fetched,
			TotalNewsUnique:    len(items),
			TotalAnalyzed:      len(results) - nonActionable,
			TotalNonActionable: nonActionable,
			TotalFailed:        failed,
			WatchlistSize:      len(watchlist),
			BullishCount:       len(bullish),
			BearishCount:       len(bearish),
		},
	}

	s.logger.Info("Generated watchlist",
		logger.IntField("watchlist_size", len(watchlist)),
		logger.IntField("bullish", len(bullish)),
		logger.IntField("bearish", len(bearish)),
		logger.IntField("failed", failed),
		logger.DurationField("duration", time.Since(startedAt)),
	)

	return data, nil
}

// pipelineOptions are the effective settings for one run after request
// overrides and configured defaults are merged.
type pipelineOptions struct {
	maxWatchlistSize int
	maxConcurrent    int
	analysisTimeout  time.Duration
	minContentLength int
}

func (s *watchlistService) resolveOptions(req *dto.GenerateWatchlistRequest) pipelineOptions {
	opts := pipelineOptions{
		maxWatchlistSize: s.cfg.Watchlist.MaxSize,
		maxConcurrent:    s.cfg.Watchlist.MaxConcurrent,
		analysisTimeout:  s.cfg.Watchlist.AnalysisTimeout,
		minContentLength: s.cfg.News.MinContentLength,
	}
	if req != nil {
		if req.MaxWatchlistSize > 0 {
			opts.maxWatchlistSize = req.MaxWatchlistSize
		}
		if req.MaxConcurrent > 0 {
			opts.maxConcurrent = req.MaxConcurrent
		}
		if req.AnalysisTimeoutSeconds > 0 {
			opts.analysisTimeout = time.Duration(req.AnalysisTimeoutSeconds) * time.Second
		}
		if req.MinContentLength > 0 {
			opts.minContentLength = req.MinContentLength
		}
	}

	if opts.maxWatchlistSize <= 0 {
		opts.maxWatchlistSize = common.DefaultMaxWatchlistSize
	}
	if opts.maxConcurrent <= 0 {
		opts.maxConcurrent = common.DefaultMaxConcurrent
	}
	if opts.analysisTimeout <= 0 {
		opts.analysisTimeout = common.DefaultAnalysisTimeout
	}
	if opts.minContentLength <= 0 {
		opts.minContentLength = common.DefaultMinContentLength
	}
	return opts
}
