// Package commerce is the HTTP gateway to the remote commerce backend.
// The backend owns cart, pricing and order truth; this package only maps
// its wire shapes onto domain types and normalizes its error bodies.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"storefront-checkout/internal/pkg/config"

	"github.com/google/uuid"
)

const unknownServerError = "unknown server error"

type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.CommerceConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		logger:  logger,
	}
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

// do issues a request with the customer's bearer token forwarded verbatim
// and decodes the envelope into out (out may be nil for empty responses).
func (c *Client) do(ctx context.Context, token, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return wrapGatewayErr(KindBadResponse, "failed to encode request body", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return wrapGatewayErr(KindUnavailable, "failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return wrapGatewayErr(KindUnavailable, "commerce backend unreachable", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close response body", "error", closeErr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return wrapGatewayErr(KindUnavailable, "failed to read response body", err)
	}

	if resp.StatusCode >= 400 {
		return c.rejectionError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return wrapGatewayErr(KindBadResponse, "malformed response envelope", err)
	}
	if len(env.Data) == 0 {
		return wrapGatewayErr(KindBadResponse, "response envelope missing data", nil)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return wrapGatewayErr(KindBadResponse, "malformed response data", err)
	}
	return nil
}

// rejectionError surfaces the backend's structured message when one exists
// and falls back to a generic message when the body carries none.
func (c *Client) rejectionError(status int, raw []byte) error {
	kind := KindRejected
	if status == http.StatusNotFound {
		kind = KindNotFound
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Message == "" {
		if status >= 500 {
			return wrapGatewayErr(KindUnavailable, unknownServerError, nil)
		}
		return wrapGatewayErr(kind, unknownServerError, nil)
	}
	return wrapGatewayErr(kind, env.Message, nil)
}
