package service

import (
	"sort"
	"time"

	"golang-stock-watchlist/internal/entity"
	"golang-stock-watchlist/pkg/common"
)

// symbolGroup accumulates the analyses that share a stock symbol.
type symbolGroup struct {
	best   *entity.AnalysisResult
	count  int
	latest *time.Time
}

// BuildWatchlist groups actionable results by symbol, reduces each group to
// its strongest analysis, applies the priority thresholds and returns the
// ranked list truncated to maxSize. Results without a symbol are ignored.
// Deterministic for a fixed input order: group representatives prefer the
// higher bias score, then the more recent publish time, then the earlier
// arrival.
func BuildWatchlist(results []*entity.AnalysisResult, maxSize int) []entity.SymbolAggregate {
	if maxSize <= 0 {
		maxSize = common.DefaultMaxWatchlistSize
	}

	groups := make(map[string]*symbolGroup)
	for _, result := range results {
		if result == nil || !result.HasSymbol() {
			continue
		}
		symbol := result.NormalizedSymbol()

		group, ok := groups[symbol]
		if !ok {
			group = &symbolGroup{best: result}
			groups[symbol] = group
		} else if betterRepresentative(result, group.best) {
			group.best = result
		}
		group.count++

		if published := resultPublishedAt(result); published != nil {
			if group.latest == nil || published.After(*group.latest) {
				group.latest = published
			}
		}
	}

	watchlist := make([]entity.SymbolAggregate, 0, len(groups))
	for symbol, group := range groups {
		score := group.best.BiasScore()
		priority := entity.PriorityForScore(score)
		if priority == entity.PriorityLow {
			continue
		}
		watchlist = append(watchlist, entity.SymbolAggregate{
			StockSymbol:  symbol,
			Direction:    group.best.Direction,
			BiasScore:    score,
			Priority:     priority,
			Reason:       group.best.Rationale,
			NewsCount:    group.count,
			LatestNewsAt: group.latest,
		})
	}

	sort.Slice(watchlist, func(i, j int) bool {
		if watchlist[i].BiasScore != watchlist[j].BiasScore {
			return watchlist[i].BiasScore > watchlist[j].BiasScore
		}
		if watchlist[i].NewsCount != watchlist[j].NewsCount {
			return watchlist[i].NewsCount > watchlist[j].NewsCount
		}
		return watchlist[i].StockSymbol < watchlist[j].StockSymbol
	})

	if len(watchlist) > maxSize {
		watchlist = watchlist[:maxSize]
	}
	return watchlist
}

// SplitByDirection filters the ranked watchlist into bullish and bearish
// views, preserving rank order. Neutral entries appear in neither view.
func SplitByDirection(watchlist []entity.SymbolAggregate) (bullish, bearish []entity.SymbolAggregate) {
	bullish = make([]entity.SymbolAggregate, 0, len(watchlist))
	bearish = make([]entity.SymbolAggregate, 0, len(watchlist))
	for _, aggregate := range watchlist {
		switch aggregate.Direction {
		case entity.DirectionBullish:
			bullish = append(bullish, aggregate)
		case entity.DirectionBearish:
			bearish = append(bearish, aggregate)
		}
	}
	return bullish, bearish
}

// CountNonActionable reports how many valid results carried no stock symbol.
func CountNonActionable(results []*entity.AnalysisResult) int {
	count := 0
	for _, result := range results {
		if result != nil && !result.HasSymbol() {
			count++
		}
	}
	return count
}

// betterRepresentative reports whether candidate should replace current as a
// group's representative.
func betterRepresentative(candidate, current *entity.AnalysisResult) bool {
	candidateScore, currentScore := candidate.BiasScore(), current.BiasScore()
	if candidateScore != currentScore {
		return candidateScore > currentScore
	}

	candidateAt, currentAt := resultPublishedAt(candidate), resultPublishedAt(current)
	switch {
	case candidateAt == nil:
		return false
	case currentAt == nil:
		return true
	default:
		return candidateAt.After(*currentAt)
	}
}

func resultPublishedAt(result *entity.AnalysisResult) *time.Time {
	if result.SourceItem == nil {
		return nil
	}
	return result.SourceItem.PublishedAt
}
