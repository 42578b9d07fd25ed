// internal/fetch/fetch.go

// Package fetch retrieves raw source documents over HTTP.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fetches documents with the headers the target site expects and a
// fixed timeout. No retries: a failed fetch is the caller's per-location
// failure to report.
type Client struct {
	http           *http.Client
	userAgent      string
	acceptLanguage string
}

func New(timeout time.Duration, userAgent, acceptLanguage string) *Client {
	return &Client{
		http:           &http.Client{Timeout: timeout},
		userAgent:      userAgent,
		acceptLanguage: acceptLanguage,
	}
}

// Fetch retrieves one document and returns its body as text.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", c.acceptLanguage)

	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status code error: %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
