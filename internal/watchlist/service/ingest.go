package service

import (
	"context"
	"strings"

	"golang-stock-watchlist/internal/entity"
	"golang-stock-watchlist/internal/watchlist/repository"
	"golang-stock-watchlist/pkg/common"
	"golang-stock-watchlist/pkg/logger"
)

// NewsIngestService normalizes raw feed records into an ordered, deduplicated
// batch of news items.
type NewsIngestService interface {
	Ingest(ctx context.Context, minContentLength int) (items []*entity.NewsItem, fetched int)
}

// NewNewsIngestService creates a new news ingest service.
func NewNewsIngestService(newsRepo repository.NewsRepository, logger *logger.Logger) NewsIngestService {
	return &newsIngestService{
		newsRepo: newsRepo,
		logger:   logger,
	}
}

type newsIngestService struct {
	newsRepo repository.NewsRepository
	logger   *logger.Logger
}

// Ingest fetches the feed and deduplicates by normalized title, first seen
// wins. Items with content shorter than minContentLength analyze the title
// instead. Source failures degrade to an empty batch, never an error.
func (s *newsIngestService) Ingest(ctx context.Context, minContentLength int) ([]*entity.NewsItem, int) {
	rawItems, err := s.newsRepo.Fetch(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch news, continuing with empty batch", logger.ErrorField(err))
		return []*entity.NewsItem{}, 0
	}

	if minContentLength <= 0 {
		minContentLength = common.DefaultMinContentLength
	}

	seen := make(map[string]struct{}, len(rawItems))
	items := make([]*entity.NewsItem, 0, len(rawItems))
	for _, raw := range rawItems {
		title := strings.TrimSpace(raw.Title)
		if title == "" {
			continue
		}

		item := entity.NewNewsItem(title, raw.Description, raw.Link, raw.PublishedAt)
		if _, ok := seen[item.DedupHash]; ok {
			s.logger.Debug("Skipping duplicate news item", logger.StringField("title", title))
			continue
		}
		seen[item.DedupHash] = struct{}{}

		if len(strings.TrimSpace(item.Content)) < minContentLength {
			item.Content = item.Title
		}
		items = append(items, item)
	}

	s.logger.Info("Ingested news batch",
		logger.IntField("fetched", len(rawItems)),
		logger.IntField("unique", len(items)),
	)

	return items, len(rawItems)
}
