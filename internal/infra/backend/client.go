package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"rentaldesk/internal/pkg/config"
	"rentaldesk/internal/pkg/errs"
)

const (
	maxErrorBody    = 64 << 10
	maxResponseBody = 8 << 20
)

// Client talks to the external booking backend's REST API. Every call is
// bound to the caller's context and is never retried.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.BackendConfig, logger *slog.Logger) *Client {
	return NewClientWithHTTP(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout}, logger)
}

func NewClientWithHTTP(baseURL string, hc *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		logger:  logger,
	}
}

func (c *Client) do(ctx context.Context, method, path, token string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errs.Wrap(err, "failed to encode backend request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build backend request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, errs.Mark(&APIError{Message: "booking service unavailable", cause: err}, errs.ErrTransport)
	}
	defer resp.Body.Close()

	failed := resp.StatusCode < 200 || resp.StatusCode >= 300
	limit := int64(maxResponseBody)
	if failed {
		limit = maxErrorBody
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, errs.Mark(&APIError{Status: resp.StatusCode, Message: "failed to read booking service response", cause: err}, errs.ErrTransport)
	}
	oversized := int64(len(raw)) > limit

	c.logger.Debug("backend request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if failed {
		if oversized {
			raw = nil
		}
		return nil, errs.Mark(newAPIError(resp.StatusCode, raw), errs.ErrTransport)
	}
	if oversized {
		return nil, errs.Mark(&APIError{Status: http.StatusBadGateway, Message: "booking service response too large"}, errs.ErrTransport)
	}
	return raw, nil
}
