package wordpress

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Credentials identify a WordPress site and the user that calls it.
type Credentials struct {
	BaseURL  string
	Username string
	Password string
}

// Request describes a single REST call relative to the site base URL.
type Request struct {
	Method string // defaults to GET
	Path   string
	Header http.Header
	Body   any // JSON-encoded when non-nil
}

// Response is the raw result of a REST call.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client is an HTTP client for one WordPress site.
type Client struct {
	creds Credentials
	http  *http.Client
}

// NewClient returns a client for creds. If httpClient is nil a client without
// an explicit timeout is used.
func NewClient(creds Credentials, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{creds: creds, http: httpClient}
}

// NewHTTPClient returns an *http.Client with the given overall timeout.
// Zero leaves requests bounded only by the transport defaults.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// BaseURL returns the configured site URL without a trailing slash.
func (c *Client) BaseURL() string {
	return strings.TrimRight(c.creds.BaseURL, "/")
}

// authorization builds the HTTP Basic header value.
func (c *Client) authorization() string {
	raw := c.creds.Username + ":" + c.creds.Password
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(raw))
}

// Do issues req and returns the response unmodified. Any status code is
// returned as a Response; only failures to obtain a response are errors.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.BaseURL()+req.Path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	httpReq.Header.Set("Authorization", c.authorization())
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for key, values := range req.Header {
		httpReq.Header.Del(key)
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", ErrTransport, err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

// call performs req and turns non-2xx responses into *APIError.
func (c *Client) call(ctx context.Context, req Request) ([]byte, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}
	return resp.Body, nil
}
