package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"igosint/pkg/config"
	"igosint/pkg/errors"
	"igosint/pkg/logger"
)

// MaxBodySize caps how much of a response body is read into memory
const MaxBodySize = 20 << 20

// Response is a fully read HTTP response
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	URL        string
}

// Text returns the body as a string
func (r *Response) Text() string {
	return string(r.Body)
}

// Client issues GET requests with a static set of browser-like headers.
// Each call carries its own timeout; the client holds no per-request state.
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	logger     logger.Logger
}

// DefaultHeaders returns the browser-mimicking header set for cfg
func DefaultHeaders(cfg config.HTTPConfig) map[string]string {
	return map[string]string{
		"User-Agent":                cfg.UserAgent,
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,image/apng,*/*;q=0.8",
		"Accept-Language":           cfg.AcceptLanguage,
		"Accept-Encoding":           "gzip, deflate, br",
		"DNT":                       "1",
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
		"Sec-Fetch-Dest":            "document",
		"Sec-Fetch-Mode":            "navigate",
		"Sec-Fetch-Site":            "none",
		"Cache-Control":             "max-age=0",
	}
}

// New creates a Client from the HTTP section of the configuration
func New(cfg config.HTTPConfig, log logger.Logger) *Client {
	if log == nil {
		log = logger.GetLogger()
	}

	return &Client{
		httpClient: &http.Client{},
		headers:    DefaultHeaders(cfg),
		logger:     log,
	}
}

// SetHTTPClient replaces the underlying transport client
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

// SetHeader sets a custom header for the client
func (c *Client) SetHeader(key, value string) {
	c.headers[key] = value
}

// Headers returns a copy of the configured headers
func (c *Client) Headers() map[string]string {
	out := make(map[string]string, len(c.headers))
	for k, v := range c.headers {
		out[k] = v
	}
	return out
}

// Get performs a GET request bounded by timeout and returns the decoded body.
// Any status code is returned as a Response; only transport failures are errors.
func (c *Client) Get(ctx context.Context, url string, timeout time.Duration) (*Response, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.New(errors.ErrorTypeUnknown, fmt.Sprintf("failed to create request: %v", err), err)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	c.logger.DebugWithFields("sending HTTP request", map[string]interface{}{
		"method": req.Method,
		"url":    url,
	})

	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.DebugWithFields("HTTP request failed", map[string]interface{}{
			"url":      url,
			"error":    err.Error(),
			"duration": duration,
		})
		return nil, errors.New(errors.ErrorTypeNetwork, fmt.Sprintf("request to %s failed: %v", url, err), err)
	}
	defer resp.Body.Close()

	reader, err := decodeBody(resp)
	if err != nil {
		return nil, errors.New(errors.ErrorTypeParsing, fmt.Sprintf("failed to decode %s body: %v", resp.Header.Get("Content-Encoding"), err), err)
	}
	defer reader.Close()

	body, err := io.ReadAll(io.LimitReader(reader, MaxBodySize))
	if err != nil {
		return nil, errors.New(errors.ErrorTypeNetwork, fmt.Sprintf("failed to read response body: %v", err), err)
	}

	logger.LogRequest(c.logger, req.Method, url, resp.StatusCode, float64(duration.Microseconds())/1000)

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		URL:        finalURL,
	}, nil
}

// GetOK is Get but treats any non-2xx status as an error
func (c *Client) GetOK(ctx context.Context, url string, timeout time.Duration) (*Response, error) {
	resp, err := c.Get(ctx, url, timeout)
	if err != nil {
		return nil, err
	}
	if !errors.IsSuccessStatus(resp.StatusCode) {
		return nil, errors.NewStatus(resp.StatusCode, url)
	}
	return resp, nil
}
