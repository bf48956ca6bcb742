package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"golang-stock-watchlist/internal/entity"
	"golang-stock-watchlist/internal/watchlist/config"
	"golang-stock-watchlist/internal/watchlist/dto"
	"golang-stock-watchlist/pkg/common"
	"golang-stock-watchlist/pkg/logger"
	"golang-stock-watchlist/pkg/ratelimit"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

type openaiAIRepository struct {
	client         *http.Client
	cfg            *config.Config
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
}

// NewOpenAIRepository creates a new instance of openaiAIRepository.
func NewOpenAIRepository(cfg *config.Config, logger *logger.Logger) AIRepository {
	return &openaiAIRepository{
		client: &http.Client{
			Timeout: 90 * time.Second,
		},
		cfg:            cfg,
		logger:         logger,
		requestLimiter: newRequestLimiter(cfg.OpenAI.MaxRequestPerMinute),
		tokenLimiter:   ratelimit.NewTokenLimiter(cfg.OpenAI.MaxTokenPerMinute),
	}
}

// Provider returns the provider name.
func (r *openaiAIRepository) Provider() string {
	return "openai"
}

// AnalyzeNews performs news analysis using the OpenAI chat completions API.
func (r *openaiAIRepository) AnalyzeNews(ctx context.Context, item *entity.NewsItem) (*entity.AnalysisResult, error) {
	resp, err := r.sendRequest(ctx, BuildNewsAnalysisPrompt(item))
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 || len(resp.Choices[0].Message.Content) == 0 {
		return nil, fmt.Errorf("no content found in OpenAI response")
	}

	return DecodeAnalysisResult(resp.Choices[0].Message.Content, item)
}

func (r *openaiAIRepository) sendRequest(ctx context.Context, prompt string) (*dto.OpenAPIRes, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		r.logger.Error("failed to wait for request limit", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	payload := dto.OpenAPIReq{
		Model: r.cfg.OpenAI.Model,
		Messages: []dto.Message{
			{
				Role:    "system",
				Content: NewsAnalysisSystemPrompt,
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		Temperature: common.DefaultLLMTemperature,
		MaxTokens:   common.DefaultLLMMaxTokens,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	r.logger.Debug("Sending request to OpenAI API", logger.StringField("url", r.cfg.OpenAI.BaseURL), logger.StringField("model", r.cfg.OpenAI.Model))

	req, err := http.NewRequestWithContext(ctx, "POST", r.cfg.OpenAI.BaseURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.cfg.OpenAI.APIKey))

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to OpenAI API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.logger.Error("Received non-OK response from OpenAI API", logger.IntField("status_code", resp.StatusCode), logger.StringField("model", r.cfg.OpenAI.Model))
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("received non-OK response from OpenAI API: %d - %s", resp.StatusCode, string(body))
	}

	var openaiResp dto.OpenAPIRes
	if err := json.NewDecoder(resp.Body).Decode(&openaiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	if r.cfg.OpenAI.MaxTokenPerMinute > 0 && openaiResp.Usage.TotalTokens > r.cfg.OpenAI.MaxTokenPerMinute/2 {
		r.logger.Warn("Token has exceeded 50% of the limit", logger.IntField("remaining", r.tokenLimiter.GetRemaining()))
	}

	if err := r.tokenLimiter.Wait(ctx, openaiResp.Usage.TotalTokens); err != nil {
		r.logger.Error("failed to wait for token limit", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to wait for token limit: %w", err)
	}

	return &openaiResp, nil
}
