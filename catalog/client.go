package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/thaisring/ticket-show-world/model"
)

const (
	defaultUserAgent   = "ticket-show-world/1.0"
	defaultMaxAttempts = 3
	defaultRetryBase   = 200 * time.Millisecond
	defaultRetryCap    = 1200 * time.Millisecond
)

// Client wraps HTTP access to a catalog data service.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	maxAttempts int
	retryBase   time.Duration
	retryCap    time.Duration
}

// APIError is returned when the catalog service responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	if e == nil {
		return "catalog api error"
	}
	return fmt.Sprintf("catalog api error: %s: %s", e.Status, e.Body)
}

// IsNotFound reports whether the error represents a 404 from the service.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// NewClient creates a catalog client for the given base URL. If httpClient
// is nil, a default client is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		userAgent:   defaultUserAgent,
		maxAttempts: defaultMaxAttempts,
		retryBase:   defaultRetryBase,
		retryCap:    defaultRetryCap,
	}
}

// GetEvents fetches the catalog events.
func (c *Client) GetEvents(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := c.getJSON(ctx, c.baseURL+"/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetApprovedShows fetches community shows that passed approval.
func (c *Client) GetApprovedShows(ctx context.Context) ([]model.UserShow, error) {
	var shows []model.UserShow
	if err := c.getJSON(ctx, c.baseURL+"/shows?status=approved", &shows); err != nil {
		return nil, err
	}
	return shows, nil
}

// GetPremieres fetches the premiere entries.
func (c *Client) GetPremieres(ctx context.Context) ([]model.Premiere, error) {
	var premieres []model.Premiere
	if err := c.getJSON(ctx, c.baseURL+"/premieres", &premieres); err != nil {
		return nil, err
	}
	return premieres, nil
}

// GetLiveCategories fetches the live event categories.
func (c *Client) GetLiveCategories(ctx context.Context) ([]model.LiveCategory, error) {
	var categories []model.LiveCategory
	if err := c.getJSON(ctx, c.baseURL+"/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// FetchStore pulls the full catalog and assembles a validated Store. A 404
// on shows or premieres is tolerated; those surfaces are optional.
func (c *Client) FetchStore(ctx context.Context) (*Store, error) {
	events, err := c.GetEvents(ctx)
	if err != nil {
		return nil, err
	}
	shows, err := c.GetApprovedShows(ctx)
	if err != nil && !IsNotFound(err) {
		return nil, err
	}
	premieres, err := c.GetPremieres(ctx)
	if err != nil && !IsNotFound(err) {
		return nil, err
	}
	categories, err := c.GetLiveCategories(ctx)
	if err != nil && !IsNotFound(err) {
		return nil, err
	}
	return New(events, shows, premieres, categories)
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	maxAttempts := c.maxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")

		res, err := c.httpClient.Do(req)
		if err != nil {
			if c.shouldRetryNetworkError(err) && attempt < maxAttempts {
				if waitErr := c.waitRetry(ctx, attempt); waitErr != nil {
					return waitErr
				}
				continue
			}
			return fmt.Errorf("request failed: %w", err)
		}

		if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
			snippet, _ := io.ReadAll(io.LimitReader(res.Body, 8<<10))
			_ = res.Body.Close()

			apiErr := &APIError{
				StatusCode: res.StatusCode,
				Status:     res.Status,
				Endpoint:   endpoint,
				Body:       strings.TrimSpace(string(snippet)),
			}
			if c.shouldRetryStatus(res.StatusCode) && attempt < maxAttempts {
				if waitErr := c.waitRetry(ctx, attempt); waitErr != nil {
					return waitErr
				}
				continue
			}
			return apiErr
		}

		dec := json.NewDecoder(res.Body)
		err = dec.Decode(out)
		_ = res.Body.Close()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decode response from %s: %w", endpoint, err)
		}
		return nil
	}

	return errors.New("request failed after retries")
}

func (c *Client) shouldRetryStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func (c *Client) shouldRetryNetworkError(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (c *Client) waitRetry(ctx context.Context, attempt int) error {
	delay := c.retryDelay(attempt)
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) retryDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	base := c.retryBase
	if base <= 0 {
		base = defaultRetryBase
	}
	cap := c.retryCap
	if cap <= 0 {
		cap = defaultRetryCap
	}

	delay := base
	for i := 1; i < attempt; i++ {
		if delay >= cap/2 {
			return cap
		}
		delay *= 2
	}
	if delay > cap {
		return cap
	}
	return delay
}
