package courier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"orderdesk/internal/apperr"
	"orderdesk/internal/domain"
	"orderdesk/internal/logx"

	"github.com/prometheus/client_golang/prometheus"
)

// Client wraps the courier's REST endpoints: order creation, cancellation
// and waybill retrieval. Submission and cancellation use the cached token
// source; waybill retrieval always re-authenticates.
type Client struct {
	httpc    *http.Client
	baseURL  string
	tokens   TokenSource
	fresh    TokenSource
	sender   configSource
	opts     ShipmentOptions
	logger   logx.Logger
	requests *prometheus.CounterVec
	now      func() time.Time
}

// NewClient creates a courier Client.
func NewClient(
	httpc *http.Client,
	baseURL string,
	tokens TokenSource,
	fresh TokenSource,
	sender configSource,
	opts ShipmentOptions,
	logger logx.Logger,
	requests *prometheus.CounterVec,
) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Client{
		httpc:    httpc,
		baseURL:  strings.TrimRight(baseURL, "/"),
		tokens:   tokens,
		fresh:    fresh,
		sender:   sender,
		opts:     opts,
		logger:   logger,
		requests: requests,
		now:      time.Now,
	}
}

func (c *Client) count(op string, code int) {
	if c.requests != nil {
		c.requests.WithLabelValues(op, strconv.Itoa(code)).Inc()
	}
}

func (c *Client) senderConfig(ctx context.Context) (*domain.CourierConfig, error) {
	cfg, err := c.sender.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("courier sender config: %w", apperr.ErrConfigMissing)
	}
	return cfg, nil
}

func (c *Client) doJSON(ctx context.Context, op, method, path, token string, payload any) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("%s: encode payload: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.count(op, 0)
		return 0, nil, fmt.Errorf("%s: %w: %w", op, apperr.ErrTransient, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		c.count(op, resp.StatusCode)
		return resp.StatusCode, nil, fmt.Errorf("%s: read response: %w: %w", op, apperr.ErrTransient, err)
	}
	c.count(op, resp.StatusCode)
	return resp.StatusCode, raw, nil
}

type submitResponse struct {
	TrackingNo string `json:"tracking_no"`
}

// SubmitOrder submits an order for pickup and returns the courier-assigned
// tracking number. A business-rule rejection surfaces as RejectedError; the
// caller does not retry automatically.
func (c *Client) SubmitOrder(ctx context.Context, o *domain.Order) (string, error) {
	sender, err := c.senderConfig(ctx)
	if err != nil {
		return "", err
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return "", err
	}

	payload := buildShipment(o, sender, c.now(), c.opts)
	status, raw, err := c.doJSON(ctx, "submit", http.MethodPost, "/api/orders", token, payload)
	if err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		return "", &RejectedError{Op: "submit", Status: status, Body: string(raw)}
	}

	var sr submitResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		return "", fmt.Errorf("submit: decode response: %w", err)
	}
	if sr.TrackingNo == "" {
		return "", &RejectedError{Op: "submit", Status: status, Body: string(raw)}
	}

	c.logger.Info("courier order submitted",
		logx.String("order_id", o.ID),
		logx.String("tracking_no", sr.TrackingNo),
	)
	return sr.TrackingNo, nil
}

type cancelResponse struct {
	Status string `json:"status"`
}

// CancelOrder issues a cancellation for the given tracking number and
// returns the courier's immediate acknowledgment status.
func (c *Client) CancelOrder(ctx context.Context, trackingNo string) (string, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return "", err
	}

	status, raw, err := c.doJSON(ctx, "cancel", http.MethodPost,
		"/api/orders/"+trackingNo+"/cancel", token, nil)
	if err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		return "", &RejectedError{Op: "cancel", Status: status, Body: string(raw)}
	}

	var cr cancelResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return "", fmt.Errorf("cancel: decode response: %w", err)
	}

	c.logger.Info("courier order cancelled",
		logx.String("tracking_no", trackingNo),
		logx.String("status", cr.Status),
	)
	return cr.Status, nil
}

// FetchWaybill retrieves the printable waybill for one tracking number.
// It exchanges a fresh token on every call instead of reusing the cache.
func (c *Client) FetchWaybill(ctx context.Context, trackingNo string) ([]byte, error) {
	token, err := c.fresh.Token(ctx)
	if err != nil {
		return nil, &WaybillError{TrackingNo: trackingNo, Err: err}
	}

	status, raw, err := c.doJSON(ctx, "waybill", http.MethodGet,
		"/api/waybills/"+trackingNo, token, nil)
	if err != nil {
		return nil, &WaybillError{TrackingNo: trackingNo, Err: err}
	}
	if status < 200 || status > 299 {
		return nil, &WaybillError{
			TrackingNo: trackingNo,
			Err:        fmt.Errorf("unexpected status %d: %s", status, raw),
		}
	}
	if len(raw) == 0 {
		return nil, &WaybillError{TrackingNo: trackingNo, Err: fmt.Errorf("empty document")}
	}
	return raw, nil
}
