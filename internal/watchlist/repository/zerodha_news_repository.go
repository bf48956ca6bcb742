package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang-stock-watchlist/internal/watchlist/config"
	"golang-stock-watchlist/internal/watchlist/dto"
	"golang-stock-watchlist/pkg/common"
	"golang-stock-watchlist/pkg/logger"
	"golang-stock-watchlist/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/mauidude/go-readability"
	"github.com/mmcdole/gofeed"
)

// zerodhaNewsRepository reads pre-market headlines from the Zerodha Pulse
// RSS feed.
type zerodhaNewsRepository struct {
	cfg    *config.Config
	logger *logger.Logger
	client *http.Client
}

// NewZerodhaNewsRepository creates a new instance of zerodhaNewsRepository.
func NewZerodhaNewsRepository(cfg *config.Config, log *logger.Logger) NewsRepository {
	return &zerodhaNewsRepository{
		cfg:    cfg,
		logger: log,
		client: &http.Client{},
	}
}

// Fetch retrieves feed entries in feed order, capped at the configured
// maximum.
func (r *zerodhaNewsRepository) Fetch(ctx context.Context) ([]dto.RawNews, error) {
	feedURL := r.cfg.News.FeedURL
	if feedURL == "" {
		feedURL = common.ZerodhaPulseFeedURL
	}

	fetchTimeout := r.cfg.News.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = common.DefaultFetchTimeout
	}
	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	r.logger.Info("Fetching news feed", logger.StringField("url", feedURL))

	fp := gofeed.NewParser()
	feed, err := fp.ParseURLWithContext(feedURL, fetchCtx)
	if err != nil {
		r.logger.Error("Failed to parse news feed", logger.ErrorField(err), logger.StringField("url", feedURL))
		return nil, fmt.Errorf("failed to parse news feed: %w", err)
	}

	maxItems := r.cfg.News.MaxItems
	if maxItems <= 0 {
		maxItems = common.DefaultMaxNewsItems
	}

	items := make([]dto.RawNews, 0, maxItems)
	for _, item := range feed.Items {
		if len(items) >= maxItems {
			break
		}
		if item == nil || strings.TrimSpace(item.Title) == "" {
			continue
		}

		description := stripHTML(item.Description)
		if r.cfg.News.FetchFullContent && item.Link != "" {
			content, err := r.fetchArticleContent(fetchCtx, item.Link)
			if err != nil {
				r.logger.Warn("Failed to fetch full article, using feed description",
					logger.ErrorField(err), logger.StringField("url", item.Link))
			} else if content != "" {
				description = content
			}
		}

		items = append(items, dto.RawNews{
			Title:       utils.CleanToValidUTF8(item.Title),
			Description: description,
			Link:        item.Link,
			PublishedAt: item.PublishedParsed,
		})
	}

	r.logger.Info("Fetched news feed",
		logger.IntField("feed_count", len(feed.Items)),
		logger.IntField("item_count", len(items)),
		logger.StringField("url", feedURL),
	)

	return items, nil
}

// fetchArticleContent downloads the linked article and extracts its readable
// body text.
func (r *zerodhaNewsRepository) fetchArticleContent(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for news item: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch news content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch news content, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	doc, err := readability.NewDocument(string(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse news content: %w", err)
	}
	content := doc.Content()
	docHTML, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(content)))
	if err != nil {
		return "", fmt.Errorf("failed to parse news content: %w", err)
	}
	return utils.SafeText(docHTML.Text()), nil
}

// stripHTML reduces an RSS description to plain text.
func stripHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return utils.SafeText(s)
	}
	return utils.SafeText(doc.Text())
}
