package config

import (
	"time"

	"golang-stock-watchlist/pkg/config"
)

// News holds the news source configuration.
type News struct {
	FeedURL          string        `mapstructure:"feed_url"`
	MaxItems         int           `mapstructure:"max_items"`
	MinContentLength int           `mapstructure:"min_content_length"`
	FetchTimeout     time.Duration `mapstructure:"fetch_timeout"`
	FetchFullContent bool          `mapstructure:"fetch_full_content"`
}

// Watchlist holds pipeline output configuration.
type Watchlist struct {
	MaxSize         int           `mapstructure:"max_size"`
	MaxConcurrent   int           `mapstructure:"max_concurrent"`
	AnalysisTimeout time.Duration `mapstructure:"analysis_timeout"`
}

// AI selects the active analysis provider.
type AI struct {
	Provider string `mapstructure:"provider"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	BaseURL             string `mapstructure:"base_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int    `mapstructure:"max_token_per_minute"`
}

// Anthropic holds the configuration for the Anthropic API.
type Anthropic struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// OpenAI holds the configuration for the OpenAI API.
type OpenAI struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	BaseURL             string `mapstructure:"base_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int    `mapstructure:"max_token_per_minute"`
}

// OpenRouter holds the configuration for the OpenRouter API.
type OpenRouter struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Config holds the full configuration for the watchlist service.
type Config struct {
	App        config.App    `mapstructure:"app"`
	Logger     config.Logger `mapstructure:"logger"`
	API        config.API    `mapstructure:"api"`
	News       News          `mapstructure:"news"`
	Watchlist  Watchlist     `mapstructure:"watchlist"`
	AI         AI            `mapstructure:"ai"`
	Gemini     Gemini        `mapstructure:"gemini"`
	Anthropic  Anthropic     `mapstructure:"anthropic"`
	OpenAI     OpenAI        `mapstructure:"openai"`
	OpenRouter OpenRouter    `mapstructure:"openrouter"`
	Telegram   Telegram      `mapstructure:"telegram"`
}

// Load loads the watchlist service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
