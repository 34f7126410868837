package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/thomad99/lab007-scraper/internal/logging"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultMaxAttempts = 3
	backoffBase        = 500 * time.Millisecond
	maxBodyBytes       = 10 << 20
)

// Scraper fetches web pages and reduces them to their visible text.
type Scraper struct {
	client      *http.Client
	userAgent   string
	maxAttempts uint64
}

// NewScraper creates a Scraper with the given per-request timeout.
// A zero timeout uses the default of 10 seconds.
func NewScraper(timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Scraper{
		client:      &http.Client{Timeout: timeout},
		userAgent:   "lab007-scraper/1.0",
		maxAttempts: defaultMaxAttempts,
	}
}

// Scrape fetches the URL and returns the extracted text content. Transient
// failures (network errors, 5xx, 429) are retried with capped exponential
// backoff; any other non-200 status fails immediately.
func (s *Scraper) Scrape(ctx context.Context, url string) (string, error) {
	logger := logging.FromContext(ctx).With(slog.String("component", "scraper"))

	backoff := retry.WithMaxRetries(s.maxAttempts-1, retry.NewExponential(backoffBase))

	var text string
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var fetchErr error
		text, fetchErr = s.fetch(ctx, url)
		if fetchErr != nil {
			if isTransient(fetchErr) {
				logging.LogError(logger, "transient scrape failure, will retry", fetchErr,
					slog.String("url", url))
				return retry.RetryableError(fetchErr)
			}
			return fetchErr
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scraping %s: %w", url, err)
	}

	logging.LogOperation(logger, "website_scraped",
		slog.String("url", url),
		slog.Int("content_length", len(text)))

	return text, nil
}

// statusError reports a non-200 response.
type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.status)
}

func isTransient(err error) bool {
	if se, ok := err.(*statusError); ok {
		return se.status == http.StatusTooManyRequests || se.status >= 500
	}
	// Network-level failures are worth one more try.
	return true
}

func (s *Scraper) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer logging.SafeCloseWithLogging(resp.Body,
		logging.FromContext(ctx).With(slog.String("component", "scraper")),
		"http_response_body")

	if resp.StatusCode != http.StatusOK {
		return "", &statusError{status: resp.StatusCode}
	}

	return ExtractText(resp.Body, resp.Header.Get("Content-Type"), maxBodyBytes)
}
