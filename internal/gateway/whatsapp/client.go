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

	"orderdesk/internal/apperr"
	"orderdesk/internal/logx"
)

// Client calls the WhatsApp-sending gateway: a GET-style HTTP API taking a
// device identifier, a normalized phone number and a message body.
type Client struct {
	httpc       *http.Client
	baseURL     string
	countryCode string
	logger      logx.Logger
}

// NewClient creates a WhatsApp gateway client.
func NewClient(httpc *http.Client, baseURL, countryCode string, logger logx.Logger) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Client{
		httpc:       httpc,
		baseURL:     strings.TrimRight(baseURL, "/"),
		countryCode: countryCode,
		logger:      logger,
	}
}

type sendResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Send delivers one message through the given device. The gateway reports a
// business-level failure with a success flag rather than an HTTP error.
func (c *Client) Send(ctx context.Context, deviceID, phone, message string) error {
	q := url.Values{
		"device_id": {deviceID},
		"phone":     {NormalizePhone(phone, c.countryCode)},
		"message":   {message},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/send?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build whatsapp request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp send: %w: %w", apperr.ErrTransient, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read whatsapp response: %w: %w", apperr.ErrTransient, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("whatsapp send: unexpected status %d: %s", resp.StatusCode, body)
	}

	var sr sendResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return fmt.Errorf("decode whatsapp response: %w", err)
	}
	if !sr.Success {
		return fmt.Errorf("whatsapp send rejected: %s", sr.Message)
	}
	return nil
}
