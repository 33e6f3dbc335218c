package bundle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HTTPLoader fetches bundles over HTTP by naming convention:
// GET {baseURL}/{code}.json.
type HTTPLoader struct {
	baseURL string
	client  *http.Client
}

// HTTPOption configures the HTTPLoader.
type HTTPOption func(*HTTPLoader)

// WithHTTPClient sets a custom HTTP client. Timeout and retry policy belong
// to the client; the loader imposes neither beyond its default client's
// 10 second timeout.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(l *HTTPLoader) {
		if client != nil {
			l.client = client
		}
	}
}

// NewHTTPLoader creates a Loader that fetches {code}.json under baseURL.
func NewHTTPLoader(baseURL string, opts ...HTTPOption) *HTTPLoader {
	l := &HTTPLoader{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches and parses the bundle for code.
func (l *HTTPLoader) Load(ctx context.Context, code string) (Bundle, error) {
	url := l.baseURL + "/" + code + ".json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %q: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %q: %s", ErrLoadFailed, url, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %q returned status %d", ErrLoadFailed, url, resp.StatusCode)
	}

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidBundle, url, err)
	}

	return Bundle(raw), nil
}
