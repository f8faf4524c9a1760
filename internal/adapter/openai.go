// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/aion/internal/config"
	"github.com/MKhiriev/aion/internal/logger"
	"github.com/go-resty/resty/v2"
)

const (
	systemPrompt = "You are an AI life assistant that provides helpful insights and suggestions based on user data. Your goal is to help users optimize their life and achieve balance."

	userPromptTemplate = "Based on this user data, provide one specific, actionable insight or suggestion that would help the user optimize their life or achieve better balance:\n\n%s"

	completionMaxTokens = 150
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type openAIClient struct {
	client *resty.Client
	model  string

	logger *logger.Logger
}

// NewOpenAIClient constructs a [SuggestionClient] talking to an
// OpenAI-compatible chat-completion API. An empty API key yields a client
// whose calls fail with ErrNotConfigured, which the service layer converts
// into a local fallback suggestion.
//
// Returns an error if cfg.BaseURL cannot be parsed as a valid URL.
func NewOpenAIClient(cfg config.AI, logger *logger.Logger) (SuggestionClient, error) {
	if cfg.APIKey == "" {
		logger.Warn().Msg("no AI API key configured, suggestions will use local fallbacks only")
		return &openAIClient{logger: logger}, nil
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid AI base url: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(1).
		SetAuthToken(cfg.APIKey)

	return &openAIClient{client: client, model: cfg.Model, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GenerateInsight implements [SuggestionClient]. It POSTs a two-message chat
// completion (fixed system prompt plus the serialized user data) and returns
// the first choice's content.
func (c *openAIClient) GenerateInsight(ctx context.Context, data json.RawMessage) (string, error) {
	if c.client == nil {
		return "", ErrNotConfigured
	}

	request := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(userPromptTemplate, data)},
		},
		MaxTokens: completionMaxTokens,
	}

	var reply chatCompletionResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&reply).
		Post("/chat/completions")
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
			return "", fmt.Errorf("%w: %w", ErrCompletionTimeout, err)
		}
		return "", fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}

	if resp.IsError() {
		c.logger.Error().
			Int("status", resp.StatusCode()).
			Str("body", resp.String()).
			Msg("completion endpoint returned error")
		return "", fmt.Errorf("%w: status %d", ErrCompletionFailed, resp.StatusCode())
	}

	if len(reply.Choices) == 0 || strings.TrimSpace(reply.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}

	return strings.TrimSpace(reply.Choices[0].Message.Content), nil
}
