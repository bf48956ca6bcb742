package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// RawNews is one record as fetched from the news source, before
// deduplication.
type RawNews struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Link        string     `json:"link"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// NewsAnalysisResult is the strict JSON payload every provider must return.
// Numeric fields are pointers so a missing field fails validation instead of
// passing as zero.
type NewsAnalysisResult struct {
	StockSymbol    *string  `json:"stock_symbol" validate:"omitempty,max=20"`
	EventType      string   `json:"event_type" validate:"required"`
	Direction      string   `json:"direction" validate:"required"`
	ImpactStrength *int     `json:"impact_strength" validate:"required,min=1,max=5"`
	Confidence     *float64 `json:"confidence" validate:"required,gte=0,lte=1"`
	Rationale      string   `json:"rationale" validate:"required,max=200"`
}

// Validate checks the payload using go-playground/validator. Enum values are
// parsed separately when converting to the entity form.
func (r *NewsAnalysisResult) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
