package sms

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cheechan-golf/backend/internal/config"
	"github.com/cheechan-golf/backend/pkg/logger"
)

const (
	requestPath = "/v2/otp/request"
	verifyPath  = "/v2/otp/verify"
)

// Client talks to the ThaiBulkSMS OTP API. The provider owns the whole OTP
// lifecycle: it issues a bearer token on request and validates (token, pin)
// pairs on verify. Nothing is stored on our side.
type Client struct {
	apiKey     string
	apiSecret  string
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.SMSConfig) *Client {
	return &Client{
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Result carries the provider response through to the caller untouched.
// Handlers relay Body verbatim, so its shape is whatever the provider
// returns for the given API version.
type Result struct {
	StatusCode int
	Body       json.RawMessage
}

// Token extracts the OTP session token from a request response, if present.
func (r *Result) Token() string {
	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(r.Body, &payload); err != nil {
		return ""
	}
	return payload.Token
}

// Request asks the provider to send an OTP SMS to msisdn and returns the
// provider response containing the session token.
func (c *Client) Request(ctx context.Context, msisdn string) (*Result, error) {
	form := url.Values{}
	form.Set("key", c.apiKey)
	form.Set("secret", c.apiSecret)
	form.Set("msisdn", msisdn)

	return c.post(ctx, requestPath, form)
}

// Verify checks the (token, pin) pair entered by the customer.
func (c *Client) Verify(ctx context.Context, token, pin string) (*Result, error) {
	form := url.Values{}
	form.Set("key", c.apiKey)
	form.Set("secret", c.apiSecret)
	form.Set("token", token)
	form.Set("pin", pin)

	return c.post(ctx, verifyPath, form)
}

func (c *Client) post(ctx context.Context, path string, form url.Values) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "create otp request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send otp request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read otp response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Debug("otp provider returned error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	return &Result{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
