package httputil

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultUserAgent   = "kopeck/0.0.0"
	DefaultMaxBodySize = 16 << 20
)

var (
	ErrStatusCode   = errors.New("unexpected http status")
	ErrBodyTooLarge = errors.New("response body exceeds the size limit")
)

// ClientOption configures a Client
type ClientOption func(*Client)

// WithUserAgent overrides DefaultUserAgent
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithMaxBodySize limits the decoded body, larger documents fail with ErrBodyTooLarge
func WithMaxBodySize(n int64) ClientOption {
	return func(c *Client) {
		c.maxBodySize = n
	}
}

// DefaultClient returns a Client over a transport tuned for a few large downloads
func DefaultClient(opts ...ClientOption) Client {
	return NewClient(&http.Client{
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   2,
			DisableCompression:    true,
			IdleConnTimeout:       time.Minute,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: time.Second,
			ResponseHeaderTimeout: 15 * time.Second,
		},
	}, opts...)
}

// NewClient wraps client with the default user agent and body size limit
func NewClient(client *http.Client, opts ...ClientOption) Client {
	c := Client{
		client:      client,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Client downloads asset documents, it satisfies assets.Fetcher
type Client struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
}

func (c Client) UserAgent() string {
	return c.userAgent
}

// Get requests u and returns the body, gzip encoded responses are decoded
func (c Client) Get(ctx context.Context, u url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s %s", ErrStatusCode, u.Redacted(), resp.Status)
	}

	body, err := decode(resp)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return readLimited(body, c.maxBodySize)
}

func decode(resp *http.Response) (io.ReadCloser, error) {
	if !strings.Contains(resp.Header.Get("Content-Encoding"), "gzip") &&
		!strings.Contains(resp.Header.Get("Content-Type"), "application/x-gzip") {
		return io.NopCloser(resp.Body), nil
	}

	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gzip reader: %w", err)
	}

	return gz, nil
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if int64(len(b)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, limit)
	}

	return b, nil
}
