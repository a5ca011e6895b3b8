package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/hit/packages/request"
)

// ErrNetwork marks failures raised while sending the request or receiving
// the response. Callers match with errors.Is to choose an exit code.
var ErrNetwork = errors.New("network error")

const (
	// DefaultTimeout bounds the exchange when no --timeout is given
	DefaultTimeout = 30 * time.Second
)

type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	transport  http.RoundTripper
}

type ClientOption func(*Client)

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		c.transport = &http.Transport{}
	}

	c.httpClient = &http.Client{
		Transport: c.transport,
		// One exchange per invocation; redirects are never followed.
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return c
}

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *Client) {
		c.transport = rt
	}
}

// Do issues the single exchange described by spec and buffers the full
// response before returning. The spec timeout, when set, overrides the
// client default and bounds the whole exchange.
func (c *Client) Do(ctx context.Context, spec *request.Spec) (*Response, error) {
	timeout := c.timeout
	if spec.Timeout > 0 {
		timeout = spec.Timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	httpReq, err := c.buildRequest(ctx, spec)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	duration := time.Since(start)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", ErrNetwork, err)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     statusMessage(httpResp),
		Headers:    captureHeaders(httpResp.Header),
		Body:       respBody,
		Duration:   duration,
	}, nil
}

func (c *Client) buildRequest(ctx context.Context, spec *request.Spec) (*http.Request, error) {
	bodyBytes := spec.Body.Bytes()
	var bodyReader io.Reader
	if spec.Body.Type != request.BodyNone {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := http.NewRequestWithContext(ctx, spec.Method, requestTarget(spec), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	userContentLength := false
	spec.Headers.Each(func(key, value string) {
		// net/http takes the length from the request field, not the
		// header map, so an explicit content-length is rerouted there.
		if key == "content-length" {
			if n, perr := strconv.ParseInt(value, 10, 64); perr == nil {
				httpReq.ContentLength = n
				userContentLength = true
			}
			return
		}
		httpReq.Header.Set(key, value)
	})

	if spec.Body.Type != request.BodyNone && !spec.Headers.Has("content-type") {
		httpReq.Header.Set("Content-Type", spec.Body.ContentType())
	}

	// content-length defaults to the body byte length, but only for
	// non-GET methods. Clearing the field makes the transport treat the
	// length as unknown, so no content-length header goes out for GET.
	if spec.Method == "GET" && !userContentLength {
		httpReq.ContentLength = 0
	}

	if spec.TraceID != "" && !spec.Headers.Has("x-request-id") {
		httpReq.Header.Set("X-Request-Id", spec.TraceID)
	}

	return httpReq, nil
}

// requestTarget rebuilds the URL to hit: the given URL with its query
// replaced by the resolved query parameters, joined in insertion order.
func requestTarget(spec *request.Spec) string {
	u := *spec.URL
	if spec.Query.Len() > 0 {
		var pairs []string
		spec.Query.Each(func(key, value string) {
			pairs = append(pairs, key+"="+value)
		})
		u.RawQuery = strings.Join(pairs, "&")
	}
	return u.String()
}
