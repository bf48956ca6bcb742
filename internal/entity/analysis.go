package entity

import (
	"fmt"
	"strings"
)

// Direction indicates the expected price direction for a stock.
type Direction string

const (
	DirectionBullish Direction = "BULLISH"
	DirectionBearish Direction = "BEARISH"
	DirectionNeutral Direction = "NEUTRAL"
)

// ParseDirection parses a direction value case-insensitively. Unknown values
// are an error so malformed model output drops the result instead of being
// silently coerced.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BULLISH":
		return DirectionBullish, nil
	case "BEARISH":
		return DirectionBearish, nil
	case "NEUTRAL":
		return DirectionNeutral, nil
	}
	return "", fmt.Errorf("unknown direction: %q", s)
}

// EventType classifies the news event driving an analysis.
type EventType string

const (
	EventTypeEarnings   EventType = "Earnings"
	EventTypeOrder      EventType = "Order"
	EventTypeRegulatory EventType = "Regulatory"
	EventTypeMacro      EventType = "Macro"
	EventTypeOther      EventType = "Other"
)

// ParseEventType parses an event type value case-insensitively.
func ParseEventType(s string) (EventType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EARNINGS":
		return EventTypeEarnings, nil
	case "ORDER":
		return EventTypeOrder, nil
	case "REGULATORY":
		return EventTypeRegulatory, nil
	case "MACRO":
		return EventTypeMacro, nil
	case "OTHER":
		return EventTypeOther, nil
	}
	return "", fmt.Errorf("unknown event type: %q", s)
}

// AnalysisResult is the structured output of analyzing exactly one NewsItem.
// A nil StockSymbol means the model found no actionable symbol; such results
// are dropped before aggregation but still counted as analyzed.
type AnalysisResult struct {
	StockSymbol    *string   `json:"stock_symbol"`
	EventType      EventType `json:"event_type"`
	Direction      Direction `json:"direction"`
	ImpactStrength int       `json:"impact_strength"`
	Confidence     float64   `json:"confidence"`
	Rationale      string    `json:"rationale"`
	SourceItem     *NewsItem `json:"-"`
}

// BiasScore returns impact strength weighted by model confidence. It is the
// single numeric ranking signal for a symbol.
func (r *AnalysisResult) BiasScore() float64 {
	return float64(r.ImpactStrength) * r.Confidence
}

// HasSymbol reports whether the analysis identified an actionable symbol.
func (r *AnalysisResult) HasSymbol() bool {
	return r.StockSymbol != nil && strings.TrimSpace(*r.StockSymbol) != ""
}

// NormalizedSymbol returns the symbol in canonical uppercase-trimmed form,
// or an empty string when no symbol was identified.
func (r *AnalysisResult) NormalizedSymbol() string {
	if r.StockSymbol == nil {
		return ""
	}
	return strings.ToUpper(strings.TrimSpace(*r.StockSymbol))
}
