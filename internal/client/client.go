package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"auction-storefront/internal/auctionerrors"
	"auction-storefront/internal/models"
	"auction-storefront/internal/session"
	"auction-storefront/utils"

	"github.com/c2h5oh/datasize"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultMaxUpload = 10 * datasize.MB

	headerRequestID = "X-Request-ID"
)

// Client wraps the auction marketplace REST API
type Client struct {
	baseURL   string
	session   *session.Session
	http      *http.Client
	maxUpload datasize.ByteSize
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient uses a copy of hc for requests. A nil hc is ignored and a
// copy without a cookie jar gets the default one.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc == nil {
			return
		}
		clone := *hc
		if clone.Jar == nil {
			clone.Jar = c.http.Jar
		}
		c.http = &clone
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithMaxUploadSize limits CSV uploads
func WithMaxUploadSize(size datasize.ByteSize) Option {
	return func(c *Client) {
		c.maxUpload = size
	}
}

// New creates a Client for baseURL, e.g. http://localhost:8080/api
func New(baseURL string, sess *session.Session, opts ...Option) *Client {
	// backend session cookies ride along with the bearer token
	jar, _ := cookiejar.New(nil)
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		session:   sess,
		http:      &http.Client{Timeout: defaultTimeout, Jar: jar},
		maxUpload: defaultMaxUpload,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the session the client authenticates with
func (c *Client) Session() *session.Session {
	return c.session
}

// newRequest builds a request carrying the bearer token when one is held
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("client: failed to create request: %w", err)
	}

	token, err := c.session.Token()
	if err != nil {
		return nil, fmt.Errorf("client: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, utils.NewRequestID())
	return req, nil
}

// send issues the request and returns the body of a 2xx response.
// Non-2xx responses become *auctionerrors.APIError.
func (c *Client) send(req *http.Request) ([]byte, error) {
	start := time.Now()
	fields := map[string]any{
		"method":     req.Method,
		"path":       req.URL.Path,
		"request_id": req.Header.Get(headerRequestID),
	}

	resp, err := c.http.Do(req)
	if err != nil {
		fields["error"] = err.Error()
		utils.Warn("client: request failed", fields)
		return nil, fmt.Errorf("client: %s %s: %w: %v", req.Method, req.URL.Path, auctionerrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("client: read response body: %w: %v", auctionerrors.ErrTransport, err)
	}

	fields["status"] = resp.StatusCode
	fields["latency"] = time.Since(start).String()
	utils.Debug("client: request completed", fields)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseError(resp.StatusCode, body)
		fields["error"] = apiErr.Message
		utils.Warn("client: request rejected", fields)
		return nil, apiErr
	}
	return body, nil
}

// parseError surfaces the backend message when the body is JSON carrying one
func parseError(status int, body []byte) *auctionerrors.APIError {
	var payload models.ErrorBody
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return auctionerrors.NewAPIError(status, payload.Message)
		}
		if payload.Error != "" {
			return auctionerrors.NewAPIError(status, payload.Error)
		}
		// import endpoints reject a whole file with a summary body
		if len(payload.Errors) > 0 {
			return auctionerrors.NewAPIError(status, strings.Join(payload.Errors, "; "))
		}
	}
	return auctionerrors.NewAPIError(status, "")
}

// doJSON sends an optional JSON payload and decodes the response into out when out is non-nil
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("client: failed to marshal request data: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := c.newRequest(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}

	data, err := c.send(req)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("client: failed to parse response JSON: %w", err)
	}
	return nil
}

// doRaw returns the raw body of a GET, used for CSV downloads
func (c *Client) doRaw(ctx context.Context, path string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv, application/json")
	return c.send(req)
}

// IsNotFound reports whether err came from a 404 response
func IsNotFound(err error) bool {
	return errors.Is(err, auctionerrors.ErrNotFound)
}
