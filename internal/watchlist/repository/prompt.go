package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang-stock-watchlist/internal/entity"
	"golang-stock-watchlist/internal/watchlist/dto"
	"golang-stock-watchlist/pkg/common"
	"golang-stock-watchlist/pkg/utils"
)

// NewsAnalysisSystemPrompt frames every provider call. Providers with a
// native system channel pass it there; the others prepend it to the user
// prompt.
const NewsAnalysisSystemPrompt = `You are a financial news analyst specializing in intraday trading for Indian stock markets (NSE/BSE).

Your role is to:
1. Extract relevant NSE/BSE stock symbols from news articles
2. Analyze the news for immediate intraday trading impact

Key Guidelines:
- Focus ONLY on same-day trading impact, not long-term fundamentals
- Consider immediate market reaction potential
- Be objective and avoid speculative language
- Ignore news that's already priced in or old
- Consider news timing relative to market hours
- Extract only valid NSE/BSE-listed stock symbols

You must respond with ONLY valid JSON, no additional text.`

// BuildNewsAnalysisPrompt formats the combined extraction and analysis
// prompt for one news item. Title and content are truncated to keep token
// usage bounded.
func BuildNewsAnalysisPrompt(item *entity.NewsItem) string {
	promptTemplate := `Analyze the following news article for intraday trading:

News Title: %s
News Content: %s

Provide your analysis in the following JSON format:
{
  "stock_symbol": "<NSE/BSE stock symbol or null if not applicable>",
  "event_type": "Earnings|Order|Regulatory|Macro|Other",
  "direction": "BULLISH|BEARISH|NEUTRAL",
  "impact_strength": <integer 1-5, where 1=minimal, 5=major>,
  "confidence": <float 0.0-1.0, your confidence in this analysis>,
  "rationale": "<one-line explanation, max 200 characters>"
}

Stock Symbol Extraction Rules:
- Extract the PRIMARY NSE/BSE-listed stock symbol most relevant to this news
- If a company name is mentioned, return its correct NSE/BSE stock symbol (e.g., "Reliance Industries" -> "RELIANCE")
- If no specific company is mentioned but sector impact is clear, return the most affected major stock
- Return null if no relevant Indian stock can be identified
- Ignore indices (NIFTY, SENSEX), commodities, or non-NSE/BSE stocks

Analysis Rules:
1. event_type: Classify the news type
   - Earnings: Quarterly results, profit announcements
   - Order: New contracts, orders won/lost
   - Regulatory: Compliance, legal, regulatory changes
   - Macro: Market-wide events, economic indicators
   - Other: Everything else

2. direction: Expected intraday price movement
   - BULLISH: Likely to push price up today
   - BEARISH: Likely to push price down today
   - NEUTRAL: Minimal/unclear impact

3. impact_strength: Magnitude of expected impact (1-5)
   - 5: Major catalyst (>3%% expected move)
   - 4: Strong catalyst (2-3%% expected move)
   - 3: Moderate catalyst (1-2%% expected move)
   - 2: Minor catalyst (<1%% expected move)
   - 1: Negligible catalyst

4. confidence: Your confidence level (0.0-1.0)
   - 0.9-1.0: Very confident
   - 0.7-0.89: Confident
   - 0.5-0.69: Moderate confidence
   - <0.5: Low confidence

5. rationale: Concise explanation (max 200 characters)

Respond with ONLY the JSON object, no additional text.`

	return fmt.Sprintf(promptTemplate,
		utils.Truncate(item.Title, common.MaxPromptTitleLength),
		utils.Truncate(item.Content, common.MaxPromptContentLength),
	)
}

// CleanModelJSON strips the markdown code fences models wrap around JSON
// replies.
func CleanModelJSON(s string) string {
	cleaned := strings.TrimSpace(s)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}

// DecodeAnalysisResult parses, validates and converts a raw model reply into
// an AnalysisResult bound to the originating item. Any schema violation is
// an error so the orchestrator drops the item.
func DecodeAnalysisResult(raw string, item *entity.NewsItem) (*entity.AnalysisResult, error) {
	cleaned := CleanModelJSON(raw)

	var payload dto.NewsAnalysisResult
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
	}

	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis result: %w", err)
	}

	eventType, err := entity.ParseEventType(payload.EventType)
	if err != nil {
		return nil, fmt.Errorf("invalid analysis result: %w", err)
	}

	direction, err := entity.ParseDirection(payload.Direction)
	if err != nil {
		return nil, fmt.Errorf("invalid analysis result: %w", err)
	}

	return &entity.AnalysisResult{
		StockSymbol:    normalizeSymbol(payload.StockSymbol),
		EventType:      eventType,
		Direction:      direction,
		ImpactStrength: *payload.ImpactStrength,
		Confidence:     *payload.Confidence,
		Rationale:      payload.Rationale,
		SourceItem:     item,
	}, nil
}

// normalizeSymbol maps the model's null markers to a missing symbol.
func normalizeSymbol(symbol *string) *string {
	if symbol == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*symbol)
	switch strings.ToLower(trimmed) {
	case "", "null", "none", "n/a":
		return nil
	}
	return &trimmed
}
