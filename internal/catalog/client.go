package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Client talks to the book catalogue REST API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	log       *zap.Logger
}

const (
	defaultBaseURL   = "http://localhost:8000/api"
	defaultUserAgent = "shelf/0.1"
	requestIDHeader  = "X-Request-Id"
	maxErrorBody     = 64 * 1024
)

// Option customises a Client.
type Option func(*Client)

// WithLogger sets the logger used for request tracing.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log.Named("catalog")
		}
	}
}

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a Client rooted at baseURL, e.g. http://localhost:8000/api.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalised API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Search queries the external book source through the backend.
func (c *Client) Search(ctx context.Context, query string) ([]Book, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}
	values := url.Values{}
	values.Set("query", query)
	var results []Book
	if err := c.do(ctx, http.MethodGet, "/books/search", values, nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Save persists a book and returns the stored record.
func (c *Client) Save(ctx context.Context, req SaveRequest) (Book, error) {
	if c == nil {
		return Book{}, errors.New("client is nil")
	}
	var book Book
	if err := c.do(ctx, http.MethodPost, "/books/save", nil, req, &book); err != nil {
		return Book{}, err
	}
	return book, nil
}

// List fetches the full saved collection in backend order.
func (c *Client) List(ctx context.Context) ([]Book, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}
	var books []Book
	if err := c.do(ctx, http.MethodGet, "/books", nil, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// MarkRead asks the backend to move the book to Read. The request has no body.
func (c *Client) MarkRead(ctx context.Context, id int64) (Book, error) {
	if c == nil {
		return Book{}, errors.New("client is nil")
	}
	if id <= 0 {
		return Book{}, errors.Errorf("invalid book id %d", id)
	}
	var book Book
	if err := c.do(ctx, http.MethodPut, bookPath(id), nil, nil, &book); err != nil {
		return Book{}, err
	}
	return book, nil
}

// Delete removes a book permanently.
func (c *Client) Delete(ctx context.Context, id int64) error {
	if c == nil {
		return errors.New("client is nil")
	}
	if id <= 0 {
		return errors.Errorf("invalid book id %d", id)
	}
	return c.do(ctx, http.MethodDelete, bookPath(id), nil, nil, nil)
}

func bookPath(id int64) string {
	return "/books/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, dest any) error {
	reqURL := c.resolve(path, query)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.log.With(
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", path),
	)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("catalog request failed", zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		return errors.Wrap(err, "execute request")
	}
	defer func() { _ = resp.Body.Close() }()

	log.Debug("catalog request",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return newAPIError(method, path, resp, raw)
	}
	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

func (c *Client) resolve(path string, query url.Values) *url.URL {
	u := *c.baseURL
	u.Path = strings.TrimRight(c.baseURL.Path, "/") + path
	u.RawPath = ""
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return &u
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, errors.Wrapf(err, "parse api url %q", raw)
	}
	if u.Host == "" {
		return nil, errors.Errorf("parse api url %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
