package common

import "time"

// Pipeline defaults. Request options and configuration may override them.
const (
	DefaultMaxWatchlistSize = 10
	DefaultMaxConcurrent    = 5
	DefaultMinContentLength = 20
	DefaultMaxNewsItems     = 10
	DefaultAnalysisTimeout  = 60 * time.Second
	DefaultFetchTimeout     = 30 * time.Second
)

// LLM request settings shared by all providers.
const (
	DefaultLLMTemperature = 0.3
	DefaultLLMMaxTokens   = 1000

	MaxPromptTitleLength   = 500
	MaxPromptContentLength = 2000
	MaxRationaleLength     = 200
)

// Per-item analysis retry policy. Backoff doubles between attempts.
const (
	MaxAnalysisRetries     = 3
	AnalysisRetryBaseDelay = 1 * time.Second
	RetryBackoffMultiplier = 2
)

// ZerodhaPulseFeedURL is the default pre-market news source.
const ZerodhaPulseFeedURL = "https://pulse.zerodha.com/feed.php"
