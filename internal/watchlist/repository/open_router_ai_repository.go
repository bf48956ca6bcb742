package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang-stock-watchlist/internal/entity"
	"golang-stock-watchlist/internal/watchlist/config"
	"golang-stock-watchlist/pkg/common"
	"golang-stock-watchlist/pkg/logger"
)

// openRouterAIRepository is an implementation of AIRepository that uses the
// OpenRouter API.
type openRouterAIRepository struct {
	client *http.Client
	cfg    *config.Config
	logger *logger.Logger
}

// NewOpenRouterAIRepository creates a new instance of openRouterAIRepository.
func NewOpenRouterAIRepository(cfg *config.Config, logger *logger.Logger) AIRepository {
	return &openRouterAIRepository{
		client: &http.Client{
			Timeout: 90 * time.Second,
		},
		cfg:    cfg,
		logger: logger,
	}
}

// Provider returns the provider name.
func (r *openRouterAIRepository) Provider() string {
	return "openrouter"
}

// AnalyzeNews performs news analysis using the OpenRouter API.
func (r *openRouterAIRepository) AnalyzeNews(ctx context.Context, item *entity.NewsItem) (*entity.AnalysisResult, error) {
	requestBody := map[string]interface{}{
		"model": r.cfg.OpenRouter.Model,
		"messages": []map[string]string{
			{"role": "system", "content": NewsAnalysisSystemPrompt},
			{"role": "user", "content": BuildNewsAnalysisPrompt(item)},
		},
		"temperature": common.DefaultLLMTemperature,
		"max_tokens":  common.DefaultLLMMaxTokens,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		r.logger.Error("Failed to marshal request body", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", "https://openrouter.ai/api/v1/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		r.logger.Error("Failed to create new HTTP request", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+r.cfg.OpenRouter.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Error("Failed to send request to OpenRouter", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to send request to OpenRouter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.logger.Error("Received non-OK response from OpenRouter", logger.IntField("status_code", resp.StatusCode))
		return nil, fmt.Errorf("received non-OK response from OpenRouter: %d", resp.StatusCode)
	}

	var openRouterResponse struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&openRouterResponse); err != nil {
		r.logger.Error("Failed to decode OpenRouter response", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to decode OpenRouter response: %w", err)
	}

	if len(openRouterResponse.Choices) == 0 {
		r.logger.Warn("Received empty choices from OpenRouter")
		return nil, fmt.Errorf("received empty choices from OpenRouter")
	}

	analysisContent := openRouterResponse.Choices[0].Message.Content
	r.logger.Debug("Received analysis from OpenRouter", logger.StringField("content", analysisContent))

	return DecodeAnalysisResult(analysisContent, item)
}
