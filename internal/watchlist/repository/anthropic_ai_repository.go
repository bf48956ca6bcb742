package repository

import (
	"context"
	"fmt"
	"strings"

	"golang-stock-watchlist/internal/entity"
	"golang-stock-watchlist/internal/watchlist/config"
	"golang-stock-watchlist/pkg/common"
	"golang-stock-watchlist/pkg/logger"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/time/rate"
)

// anthropicAIRepository is an implementation of AIRepository that uses the
// Anthropic Messages API.
type anthropicAIRepository struct {
	client         anthropic.Client
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewAnthropicAIRepository creates a new instance of anthropicAIRepository.
func NewAnthropicAIRepository(cfg *config.Config, log *logger.Logger) (AIRepository, error) {
	if cfg.Anthropic.APIKey == "" {
		return nil, fmt.Errorf("anthropic api key is required")
	}

	client := anthropic.NewClient(
		option.WithAPIKey(cfg.Anthropic.APIKey),
	)

	return &anthropicAIRepository{
		client:         client,
		cfg:            cfg,
		logger:         log,
		requestLimiter: newRequestLimiter(cfg.Anthropic.MaxRequestPerMinute),
	}, nil
}

// Provider returns the provider name.
func (r *anthropicAIRepository) Provider() string {
	return "anthropic"
}

// AnalyzeNews performs news analysis using the Anthropic Messages API.
func (r *anthropicAIRepository) AnalyzeNews(ctx context.Context, item *entity.NewsItem) (*entity.AnalysisResult, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(r.cfg.Anthropic.Model),
		MaxTokens:   int64(common.DefaultLLMMaxTokens),
		Temperature: anthropic.Float(common.DefaultLLMTemperature),
		System: []anthropic.TextBlockParam{
			{Text: NewsAnalysisSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(BuildNewsAnalysisPrompt(item))),
		},
	}

	resp, err := r.client.Messages.New(ctx, params)
	if err != nil {
		r.logger.Error("Failed to send request to Anthropic API", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to send request to Anthropic API: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("empty response from Anthropic API")
	}

	return DecodeAnalysisResult(text.String(), item)
}
