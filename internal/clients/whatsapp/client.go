// Package whatsapp sends messages through a bulk-messaging gateway's
// WhatsApp route.
package whatsapp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dealership-api/internal/common/httpclient"
	"dealership-api/internal/common/logger"
)

type Client struct {
	gatewayURL string
	apiKey     string
	senderID   string
	httpClient *httpclient.Client
	logger     logger.Logger
}

// gatewayResponse is the gateway's delivery acknowledgement.
type gatewayResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		MessageID string `json:"message_id"`
	} `json:"data"`
}

func NewClient(gatewayURL, apiKey, senderID string, log logger.Logger) *Client {
	return &Client{
		gatewayURL: gatewayURL,
		apiKey:     apiKey,
		senderID:   senderID,
		httpClient: httpclient.NewClient(30 * time.Second),
		logger:     log,
	}
}

// Send delivers one message to a phone number over the gateway's WhatsApp
// route. The gateway expects an international number, so a bare 10-digit
// number is prefixed with "+91".
func (c *Client) Send(ctx context.Context, to, message string) error {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("senderid", c.senderID)
	params.Set("destination", normalizeNumber(to))
	params.Set("message", message)
	params.Set("route", "wp")

	fullURL := fmt.Sprintf("%s?%s", c.gatewayURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create whatsapp request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read whatsapp gateway response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("whatsapp gateway returned status %d: %s", resp.StatusCode, string(body))
	}

	var ack gatewayResponse
	if err := json.Unmarshal(body, &ack); err != nil {
		// Some gateway deployments answer with a bare text body.
		text := strings.ToLower(strings.TrimSpace(string(body)))
		if strings.Contains(text, "success") || strings.Contains(text, "sent") {
			return nil
		}
		return fmt.Errorf("failed to parse whatsapp gateway response: %w", err)
	}

	if ack.Status != "success" && ack.Status != "sent" {
		return fmt.Errorf("whatsapp delivery failed: %s", ack.Message)
	}

	c.logger.Debug("whatsapp message accepted", map[string]interface{}{
		"messageId": ack.Data.MessageID,
	})
	return nil
}

func normalizeNumber(phone string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	if len(phone) == 10 {
		return "+91" + phone
	}
	return "+" + phone
}
