package entity

import "time"

// Fixed bias score thresholds. These are policy, not configuration: a
// symbol's priority must be a pure function of its score.
const (
	BiasScoreHighThreshold   = 2.5
	BiasScoreMediumThreshold = 1.5
)

// Priority classifies a watchlist entry by its bias score.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// PriorityForScore maps a bias score to a priority. PriorityLow marks scores
// below the medium threshold; such symbols never reach the watchlist.
func PriorityForScore(score float64) Priority {
	switch {
	case score >= BiasScoreHighThreshold:
		return PriorityHigh
	case score >= BiasScoreMediumThreshold:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// SymbolAggregate is one row of the final watchlist, keyed by stock symbol.
// Direction, BiasScore and Reason come from the best-scoring contributing
// analysis; NewsCount and LatestNewsAt summarize the whole group.
type SymbolAggregate struct {
	StockSymbol  string     `json:"stock_symbol"`
	Direction    Direction  `json:"direction"`
	BiasScore    float64    `json:"bias_score"`
	Priority     Priority   `json:"priority"`
	Reason       string     `json:"reason"`
	NewsCount    int        `json:"news_count"`
	LatestNewsAt *time.Time `json:"latest_news_at,omitempty"`
}
