package entity

import (
	"crypto/md5"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"golang-stock-watchlist/pkg/utils"
)

// NewsItem represents a single ingested news article. Items are immutable
// once built and live only for the duration of one pipeline run.
type NewsItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	URL         string     `json:"url"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	DedupHash   string     `json:"dedup_hash"`
}

// NewNewsItem builds a NewsItem with a fresh ID and the title-derived
// deduplication hash. The raw title is kept as-is; only the hash uses the
// normalized form.
func NewNewsItem(title, content, url string, publishedAt *time.Time) *NewsItem {
	return &NewsItem{
		ID:          uuid.NewString(),
		Title:       title,
		Content:     content,
		URL:         url,
		PublishedAt: publishedAt,
		DedupHash:   TitleDedupHash(title),
	}
}

// TitleDedupHash returns the md5 hex digest of the normalized title.
func TitleDedupHash(title string) string {
	sum := md5.Sum([]byte(utils.NormalizeTitle(title)))
	return hex.EncodeToString(sum[:])
}
