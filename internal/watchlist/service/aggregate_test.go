package service

import (
	"testing"
	"time"

	"golang-stock-watchlist/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalysis(symbol string, direction entity.Direction, impact int, confidence float64, publishedAt *time.Time, rationale string) *entity.AnalysisResult {
	result := &entity.AnalysisResult{
		EventType:      entity.EventTypeOther,
		Direction:      direction,
		ImpactStrength: impact,
		Confidence:     confidence,
		Rationale:      rationale,
		SourceItem:     &entity.NewsItem{PublishedAt: publishedAt},
	}
	if symbol != "" {
		result.StockSymbol = &symbol
	}
	return result
}

func timePtr(t time.Time) *time.Time { return &t }

func TestBuildWatchlistAggregatesSymbol(t *testing.T) {
	results := []*entity.AnalysisResult{
		newAnalysis("TATASTEEL", entity.DirectionBullish, 3, 1.0, nil, "record quarterly output"),
		newAnalysis("TATASTEEL", entity.DirectionBullish, 2, 1.0, nil, "minor capacity update"),
	}

	watchlist := BuildWatchlist(results, 10)
	require.Len(t, watchlist, 1)

	aggregate := watchlist[0]
	assert.Equal(t, "TATASTEEL", aggregate.StockSymbol)
	assert.InDelta(t, 3.0, aggregate.BiasScore, 1e-9)
	assert.Equal(t, entity.PriorityHigh, aggregate.Priority)
	assert.Equal(t, 2, aggregate.NewsCount)
	assert.Equal(t, "record quarterly output", aggregate.Reason)
	assert.Equal(t, entity.DirectionBullish, aggregate.Direction)
}

func TestBuildWatchlistThresholds(t *testing.T) {
	results := []*entity.AnalysisResult{
		newAnalysis("HIGHSYM", entity.DirectionBullish, 5, 0.5, nil, ""),  // exactly 2.5
		newAnalysis("MEDSYM", entity.DirectionBearish, 3, 0.5, nil, ""),   // exactly 1.5
		newAnalysis("LOWSYM", entity.DirectionBullish, 2, 0.7, nil, ""),   // 1.4, excluded
		newAnalysis("ZEROSYM", entity.DirectionNeutral, 3, 0.0, nil, ""),  // 0.0, excluded
	}

	watchlist := BuildWatchlist(results, 10)
	require.Len(t, watchlist, 2)
	assert.Equal(t, "HIGHSYM", watchlist[0].StockSymbol)
	assert.Equal(t, entity.PriorityHigh, watchlist[0].Priority)
	assert.Equal(t, "MEDSYM", watchlist[1].StockSymbol)
	assert.Equal(t, entity.PriorityMedium, watchlist[1].Priority)
}

func TestBuildWatchlistRepresentativeTieBreaks(t *testing.T) {
	older := timePtr(time.Date(2025, 3, 14, 7, 0, 0, 0, time.UTC))
	newer := timePtr(time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC))

	t.Run("higher score wins regardless of order", func(t *testing.T) {
		results := []*entity.AnalysisResult{
			newAnalysis("INFY", entity.DirectionBearish, 2, 1.0, newer, "weak guidance"),
			newAnalysis("INFY", entity.DirectionBullish, 3, 1.0, older, "large deal win"),
		}
		watchlist := BuildWatchlist(results, 10)
		require.Len(t, watchlist, 1)
		assert.Equal(t, "large deal win", watchlist[0].Reason)
		assert.Equal(t, entity.DirectionBullish, watchlist[0].Direction)
	})

	t.Run("score tie prefers newer publish time", func(t *testing.T) {
		results := []*entity.AnalysisResult{
			newAnalysis("INFY", entity.DirectionBullish, 3, 1.0, older, "first"),
			newAnalysis("INFY", entity.DirectionBearish, 3, 1.0, newer, "second"),
		}
		watchlist := BuildWatchlist(results, 10)
		require.Len(t, watchlist, 1)
		assert.Equal(t, "second", watchlist[0].Reason)
	})

	t.Run("missing publish time loses the tie", func(t *testing.T) {
		results := []*entity.AnalysisResult{
			newAnalysis("INFY", entity.DirectionBullish, 3, 1.0, nil, "undated"),
			newAnalysis("INFY", entity.DirectionBearish, 3, 1.0, older, "dated"),
		}
		watchlist := BuildWatchlist(results, 10)
		require.Len(t, watchlist, 1)
		assert.Equal(t, "dated", watchlist[0].Reason)
	})

	t.Run("full tie keeps the earlier arrival", func(t *testing.T) {
		results := []*entity.AnalysisResult{
			newAnalysis("INFY", entity.DirectionBullish, 3, 1.0, nil, "first"),
			newAnalysis("INFY", entity.DirectionBearish, 3, 1.0, nil, "second"),
		}
		watchlist := BuildWatchlist(results, 10)
		require.Len(t, watchlist, 1)
		assert.Equal(t, "first", watchlist[0].Reason)
	})
}

func TestBuildWatchlistLatestNewsAt(t *testing.T) {
	older := timePtr(time.Date(2025, 3, 14, 7, 0, 0, 0, time.UTC))
	newer := timePtr(time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC))

	results := []*entity.AnalysisResult{
		newAnalysis("SBIN", entity.DirectionBullish, 4, 1.0, newer, "strongest"),
		newAnalysis("SBIN", entity.DirectionBullish, 2, 1.0, nil, ""),
		newAnalysis("SBIN", entity.DirectionBullish, 3, 1.0, older, ""),
	}

	watchlist := BuildWatchlist(results, 10)
	require.Len(t, watchlist, 1)
	require.NotNil(t, watchlist[0].LatestNewsAt)
	assert.True(t, watchlist[0].LatestNewsAt.Equal(*newer))
	assert.Equal(t, 3, watchlist[0].NewsCount)
}

func TestBuildWatchlistRanking(t *testing.T) {
	results := []*entity.AnalysisResult{
		newAnalysis("ZEE", entity.DirectionBullish, 3, 0.9, nil, ""), // 2.7
		newAnalysis("ONENEWS", entity.DirectionBullish, 3, 1.0, nil, ""),
		newAnalysis("TWONEWS", entity.DirectionBearish, 3, 1.0, nil, ""),
		newAnalysis("TWONEWS", entity.DirectionBearish, 2, 1.0, nil, ""),
		newAnalysis("AAA", entity.DirectionBullish, 2, 1.0, nil, ""),
		newAnalysis("BBB", entity.DirectionBearish, 2, 1.0, nil, ""),
	}

	watchlist := BuildWatchlist(results, 10)
	require.Len(t, watchlist, 5)

	// Equal scores rank by news count, then symbol.
	assert.Equal(t, "TWONEWS", watchlist[0].StockSymbol)
	assert.Equal(t, "ONENEWS", watchlist[1].StockSymbol)
	assert.Equal(t, "ZEE", watchlist[2].StockSymbol)
	assert.Equal(t, "AAA", watchlist[3].StockSymbol)
	assert.Equal(t, "BBB", watchlist[4].StockSymbol)
}

func TestBuildWatchlistTruncation(t *testing.T) {
	results := []*entity.AnalysisResult{
		newAnalysis("S1", entity.DirectionBullish, 5, 1.0, nil, ""), // 5.0
		newAnalysis("S2", entity.DirectionBullish, 5, 0.9, nil, ""), // 4.5
		newAnalysis("S3", entity.DirectionBullish, 5, 0.8, nil, ""), // 4.0
		newAnalysis("S4", entity.DirectionBullish, 5, 0.7, nil, ""), // 3.5
		newAnalysis("S5", entity.DirectionBullish, 5, 0.6, nil, ""), // 3.0
	}

	watchlist := BuildWatchlist(results, 3)
	require.Len(t, watchlist, 3)
	assert.Equal(t, "S1", watchlist[0].StockSymbol)
	assert.Equal(t, "S2", watchlist[1].StockSymbol)
	assert.Equal(t, "S3", watchlist[2].StockSymbol)
}

func TestBuildWatchlistIgnoresNonActionable(t *testing.T) {
	results := []*entity.AnalysisResult{
		newAnalysis("", entity.DirectionBullish, 5, 1.0, nil, "no symbol"),
		newAnalysis("WIPRO", entity.DirectionBullish, 4, 1.0, nil, ""),
	}

	watchlist := BuildWatchlist(results, 10)
	require.Len(t, watchlist, 1)
	assert.Equal(t, "WIPRO", watchlist[0].StockSymbol)

	assert.Empty(t, BuildWatchlist(nil, 10))
	assert.Equal(t, 1, CountNonActionable(results))
}

func TestBuildWatchlistNormalizesSymbols(t *testing.T) {
	results := []*entity.AnalysisResult{
		newAnalysis(" hdfcbank ", entity.DirectionBullish, 3, 1.0, nil, ""),
		newAnalysis("HDFCBANK", entity.DirectionBullish, 2, 1.0, nil, ""),
	}

	watchlist := BuildWatchlist(results, 10)
	require.Len(t, watchlist, 1)
	assert.Equal(t, "HDFCBANK", watchlist[0].StockSymbol)
	assert.Equal(t, 2, watchlist[0].NewsCount)
}

func TestBuildWatchlistDeterministicAcrossOrder(t *testing.T) {
	forward := []*entity.AnalysisResult{
		newAnalysis("A1", entity.DirectionBullish, 5, 1.0, nil, ""),
		newAnalysis("B2", entity.DirectionBearish, 4, 1.0, nil, ""),
		newAnalysis("C3", entity.DirectionBullish, 3, 1.0, nil, ""),
	}
	reversed := []*entity.AnalysisResult{forward[2], forward[1], forward[0]}

	assert.Equal(t, BuildWatchlist(forward, 10), BuildWatchlist(reversed, 10))
}

func TestSplitByDirection(t *testing.T) {
	watchlist := []entity.SymbolAggregate{
		{StockSymbol: "UP1", Direction: entity.DirectionBullish},
		{StockSymbol: "FLAT", Direction: entity.DirectionNeutral},
		{StockSymbol: "DOWN1", Direction: entity.DirectionBearish},
		{StockSymbol: "UP2", Direction: entity.DirectionBullish},
	}

	bullish, bearish := SplitByDirection(watchlist)

	require.Len(t, bullish, 2)
	assert.Equal(t, "UP1", bullish[0].StockSymbol)
	assert.Equal(t, "UP2", bullish[1].StockSymbol)

	require.Len(t, bearish, 1)
	assert.Equal(t, "DOWN1", bearish[0].StockSymbol)
}
