package tokenizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"receipt-recovery-service/config"
	"receipt-recovery-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the external PII tokenization service. Transport errors,
// timeouts, 429 and 5xx responses are transient; any other 4xx is a
// definitive rejection the caller must not retry.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	apiKey     string
	log        zerolog.Logger
}

// NewClient creates a tokenizer client.
func NewClient(httpClient HTTPClient, cfg config.TokenizerConfig, log zerolog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		log:        log,
	}
}

type tokenRequest struct {
	PII string `json:"pii"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Tokenize exchanges a PII value for an opaque token.
func (c *Client) Tokenize(ctx context.Context, pii string) (string, error) {
	body, err := json.Marshal(tokenRequest{PII: pii})
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("marshal token request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/tokens", bytes.NewReader(body))
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("build token request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperror.ErrTokenizationTransient(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var tr tokenResponse
		if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
			return "", apperror.ErrTokenizationTransient(fmt.Errorf("decode token response: %w", err))
		}
		if tr.Token == "" {
			return "", apperror.ErrTokenizationTransient(fmt.Errorf("empty token in response"))
		}
		return tr.Token, nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", apperror.ErrTokenizationTransient(fmt.Errorf("tokenizer returned %d", resp.StatusCode))
	default:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warn().Int("status", resp.StatusCode).Msg("tokenizer definitively rejected PII")
		return "", apperror.ErrTokenizationRejected(fmt.Errorf("tokenizer returned %d: %s", resp.StatusCode, detail))
	}
}
