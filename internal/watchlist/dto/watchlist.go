package dto

import (
	"golang-stock-watchlist/internal/entity"
)

// GenerateWatchlistRequest carries the per-request pipeline options. Zero
// values fall back to the configured defaults.
type GenerateWatchlistRequest struct {
	MaxWatchlistSize       int `json:"max_watchlist_size,omitempty"`
	MaxConcurrent          int `json:"max_concurrent,omitempty"`
	AnalysisTimeoutSeconds int `json:"analysis_timeout_seconds,omitempty"`
	MinContentLength       int `json:"min_content_length,omitempty"`
}

// WatchlistMetadata reports derived pipeline statistics. The counts let a
// caller tell "no news today" apart from a degraded run.
type WatchlistMetadata struct {
	GeneratedAt        string `json:"generated_at"`
	MarketOpen         bool   `json:"market_open"`
	TotalNewsFetched   int    `json:"total_news_fetched"`
	TotalNewsUnique    int    `json:"total_news_unique"`
	TotalAnalyzed      int    `json:"total_analyzed"`
	TotalNonActionable int    `json:"total_non_actionable"`
	TotalFailed        int    `json:"total_failed"`
	WatchlistSize      int    `json:"watchlist_size"`
	BullishCount       int    `json:"bullish_count"`
	BearishCount       int    `json:"bearish_count"`
}

// WatchlistData is the complete result of one pipeline run. Bullish and
// bearish are filtered views of the ranked watchlist; NEUTRAL entries appear
// in the main list only.
type WatchlistData struct {
	Watchlist []entity.SymbolAggregate `json:"watchlist"`
	Bullish   []entity.SymbolAggregate `json:"bullish"`
	Bearish   []entity.SymbolAggregate `json:"bearish"`
	Metadata  WatchlistMetadata        `json:"metadata"`
}

// GenerateWatchlistResponse is the success envelope returned by the API.
type GenerateWatchlistResponse struct {
	Success bool           `json:"success"`
	Data    *WatchlistData `json:"data"`
}
