package dune

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/duneview/duneview/pkg/version"
)

const (
	apiKeyHeader = "X-DUNE-API-KEY"

	connectTimeout = 5 * time.Second

	resultsPathFormat = "%s/api/v1/query/%d/results"
)

// StatusError is a non-2xx answer from the Dune API. Status keeps the full
// status line, e.g. "404 Not Found".
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Dune API responded with HTTP %s", e.Status)
}

// TransportError covers connection, DNS and timeout failures, anything
// where no HTTP response was received at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("unable to reach the Dune API: %s", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type Client struct {
	baseURL string

	client *http.Client
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.SetHTTPClient(client)
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

func NewClient(baseURL string, options ...Option) *Client {
	c := &Client{baseURL: baseURL}

	c.client = &http.Client{
		Timeout: time.Minute,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: connectTimeout,
			}).DialContext,
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

func (c *Client) SetHTTPClient(client *http.Client) {
	c.client = client
}

// FetchResults reads the latest stored results of a saved query. The
// credential is forwarded verbatim in the API key header and never kept.
// Any 2xx response returns the body as-is; decoding is the caller's job.
func (c *Client) FetchResults(ctx context.Context, apiKey string, queryID int) ([]byte, error) {
	url := fmt.Sprintf(resultsPathFormat, c.baseURL, queryID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create request to the Dune API: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, apiKey)
	req.Header.Set("User-Agent", fmt.Sprintf("duneview/%s", version.Version()))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read Dune API response body: %w", err)
	}

	return body, nil
}

// Ping reports whether the upstream host answers at all. Any HTTP
// response, an authentication error included, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("unable to create request to the Dune API: %w", err)
	}
	req.Header.Set("User-Agent", fmt.Sprintf("duneview/%s", version.Version()))

	resp, err := c.client.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	_ = resp.Body.Close()

	return nil
}
