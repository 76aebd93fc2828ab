// Package genai proxies the AI chat assistant to a hosted completion API.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	commonerrors "dealership-api/internal/common/errors"
	"dealership-api/internal/common/httpclient"
	"dealership-api/internal/common/logger"
)

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *httpclient.Client
	logger     logger.Logger
}

// Message is one turn of a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func NewClient(baseURL, apiKey, model string, timeout time.Duration, log logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: httpclient.NewClient(timeout),
		logger:     log,
	}
}

// Complete sends the conversation to the completion API and returns the
// assistant's reply.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	payload, err := json.Marshal(completionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", commonerrors.NewChatUpstreamError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", commonerrors.NewChatUpstreamError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", commonerrors.NewChatUpstreamError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", commonerrors.NewChatUpstreamError(err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("chat completion failed", map[string]interface{}{
			"status": resp.StatusCode,
			"body":   string(body),
		})
		return "", commonerrors.NewChatUpstreamError(fmt.Errorf("status %d", resp.StatusCode))
	}

	var completion completionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", commonerrors.NewChatUpstreamError(err)
	}
	if len(completion.Choices) == 0 {
		return "", commonerrors.NewChatUpstreamError(fmt.Errorf("empty completion"))
	}

	return completion.Choices[0].Message.Content, nil
}
