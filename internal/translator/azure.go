// Package translator calls the Azure Translator service as the last stage
// of the word lookup fallback chain.
package translator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"resty.dev/v3"
)

var (
	// ErrMissingText is returned when Translate is called with empty text.
	ErrMissingText = errors.New("text is required")
	// ErrNotConfigured is returned when the endpoint, key, or region is
	// missing. It is distinct from provider failures so operators can tell
	// a deployment problem from an outage.
	ErrNotConfigured = errors.New("translator endpoint, key, and region must be configured")
)

// ProviderError reports a failed call to the translation provider. The
// upstream status and body are preserved for diagnostics. Timeout marks
// deadline expiry on the request.
type ProviderError struct {
	StatusCode int
	Body       string
	Timeout    bool
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("translation request timed out: %v", e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("translation request failed: %v", e.Err)
	}
	return fmt.Sprintf("translation provider returned status %d: %s", e.StatusCode, e.Body)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// FormatError reports a provider response whose shape did not match the
// documented contract. It is distinct from ProviderError so operators can
// tell contract drift from an outage.
type FormatError struct {
	Body string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unexpected translation response format: %s", e.Body)
}

// Result is one translation returned by the provider.
type Result struct {
	Text string `json:"text"`
	To   string `json:"to"`
}

// Config holds the provider settings. Endpoint, Key, and Region are all
// required; Timeout bounds each request and defaults to 10 seconds.
type Config struct {
	Endpoint string
	Key      string
	Region   string
	Timeout  time.Duration
}

func (c Config) complete() bool {
	return c.Endpoint != "" && c.Key != "" && c.Region != ""
}

// Client translates Tongan text to English with auto-detected source
// language. One Client may be shared across requests.
type Client struct {
	config     Config
	httpClient *resty.Client
}

// NewClient creates a Client for the given provider configuration.
func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	client := resty.New()
	client.SetBaseURL(config.Endpoint)
	client.SetHeader("Ocp-Apim-Subscription-Key", config.Key)
	client.SetHeader("Ocp-Apim-Subscription-Region", config.Region)
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(config.Timeout)

	return &Client{
		config:     config,
		httpClient: client,
	}
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

type translateRequest struct {
	Text string `json:"text"`
}

type translateResponse struct {
	Translations []Result `json:"translations"`
}

// Translate sends a single-item batch translation request and returns the
// first translation. The call is not retried; the orchestrator treats any
// failure here as a miss.
func (c *Client) Translate(ctx context.Context, text string) (Result, error) {
	if text == "" {
		return Result{}, ErrMissingText
	}
	if !c.config.complete() {
		return Result{}, ErrNotConfigured
	}

	response, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api-version": "3.0",
			"from":        "to",
			"to":          "en",
		}).
		SetBody([]translateRequest{{Text: text}}).
		Post("/translate")
	if err != nil {
		return Result{}, &ProviderError{Err: err, Timeout: isTimeout(err)}
	}
	if response.IsError() {
		return Result{}, &ProviderError{
			StatusCode: response.StatusCode(),
			Body:       response.String(),
		}
	}

	var decoded []translateResponse
	if err := json.Unmarshal(response.Bytes(), &decoded); err != nil {
		return Result{}, &FormatError{Body: response.String()}
	}
	if len(decoded) == 0 || len(decoded[0].Translations) == 0 {
		return Result{}, &FormatError{Body: response.String()}
	}
	return decoded[0].Translations[0], nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
