package repository

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"golang-stock-watchlist/internal/entity"
	"golang-stock-watchlist/internal/watchlist/dto"
)

// NewsRepository fetches raw news records from an external source.
type NewsRepository interface {
	Fetch(ctx context.Context) ([]dto.RawNews, error)
}

// AIRepository analyzes a single news item with an LLM provider. Every
// implementation normalizes its provider's response to the one
// AnalysisResult schema.
type AIRepository interface {
	AnalyzeNews(ctx context.Context, item *entity.NewsItem) (*entity.AnalysisResult, error)
	Provider() string
}

// newRequestLimiter builds a per-minute request limiter. A zero or negative
// budget disables limiting.
func newRequestLimiter(maxPerMinute int) *rate.Limiter {
	if maxPerMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	secondsPerRequest := time.Minute / time.Duration(maxPerMinute)
	return rate.NewLimiter(rate.Every(secondsPerRequest), 1)
}
