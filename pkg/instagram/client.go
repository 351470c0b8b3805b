package instagram

import (
	"context"
	"fmt"
	"time"

	"igosint/pkg/httpclient"
	"igosint/pkg/logger"
)

// Getter is the subset of httpclient.Client used to fetch pages
type Getter interface {
	GetOK(ctx context.Context, url string, timeout time.Duration) (*httpclient.Response, error)
}

// Client fetches public profile pages and extracts a ProfileRecord from them
type Client struct {
	http      Getter
	extractor *Extractor
	timeout   time.Duration
	baseURL   string
	logger    logger.Logger
	now       func() time.Time
}

// NewClient creates a profile client. timeout bounds the page request.
func NewClient(http Getter, timeout time.Duration, log logger.Logger) *Client {
	if log == nil {
		log = logger.GetLogger()
	}

	return &Client{
		http:      http,
		extractor: NewExtractor(nil),
		timeout:   timeout,
		baseURL:   BaseURL,
		logger:    log,
		now:       time.Now,
	}
}

// SetBaseURL points the client at a different host
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// FetchProfile downloads https://www.instagram.com/{username}/ and extracts
// the profile fields. Transport failures and non-2xx statuses are returned
// as errors.
func (c *Client) FetchProfile(ctx context.Context, username string) (*ProfileRecord, error) {
	url := ProfilePageURL(c.baseURL, username)

	c.logger.DebugWithFields("fetching profile page", map[string]interface{}{
		"username": username,
		"url":      url,
	})

	resp, err := c.http.GetOK(ctx, url, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("fetch profile %s: %w", username, err)
	}

	record := NewProfileRecord(username, url, c.now().Format(time.RFC3339))
	c.extractor.Apply(record, resp.Text())

	c.logger.DebugWithFields("extracted profile fields", map[string]interface{}{
		"username": username,
		"fields":   record.Len(),
	})

	return record, nil
}
