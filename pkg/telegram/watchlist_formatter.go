package telegram

import (
	"fmt"
	"strings"

	"golang-stock-watchlist/internal/entity"
	"golang-stock-watchlist/internal/watchlist/dto"
	"golang-stock-watchlist/pkg/utils"
)

// FormatWatchlistForTelegram formats one pipeline run into a Markdown string
// for Telegram.
func FormatWatchlistForTelegram(data *dto.WatchlistData) string {
	var builder strings.Builder

	builder.WriteString("📋 *Pre-Market Stock Watchlist* 📋\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n\n", utils.PrettyDate(utils.TimeNowIST())))

	if len(data.Watchlist) == 0 {
		builder.WriteString("No actionable stocks identified from today's news.\n")
	}

	for i, item := range data.Watchlist {
		var directionIcon string
		switch item.Direction {
		case entity.DirectionBullish:
			directionIcon = "📈"
		case entity.DirectionBearish:
			directionIcon = "📉"
		default:
			directionIcon = "➖"
		}

		priorityIcon := "⭐"
		if item.Priority == entity.PriorityHigh {
			priorityIcon = "🔥"
		}

		builder.WriteString(fmt.Sprintf("%d. %s *%s* (%s) %s\n", i+1, directionIcon, item.StockSymbol, item.Direction, priorityIcon))
		builder.WriteString(fmt.Sprintf("   🎯 *Score:* %.2f | 📰 %d news\n", item.BiasScore, item.NewsCount))
		if item.Reason != "" {
			builder.WriteString(fmt.Sprintf("   💬 %s\n", item.Reason))
		}
		builder.WriteString("\n")
	}

	meta := data.Metadata
	builder.WriteString(fmt.Sprintf("📊 *Analyzed:* %d of %d unique news", meta.TotalAnalyzed, meta.TotalNewsUnique))
	if meta.TotalFailed > 0 {
		builder.WriteString(fmt.Sprintf(" (%d failed)", meta.TotalFailed))
	}
	builder.WriteString(fmt.Sprintf("\n🐂 Bullish: %d | 🐻 Bearish: %d\n", meta.BullishCount, meta.BearishCount))

	return builder.String()
}
