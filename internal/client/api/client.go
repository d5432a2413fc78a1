package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/payrollview/internal/logging"
)

const (
	DefaultBaseURL = "https://app-a-p-p-adqaj.ondigitalocean.app/api"
	DefaultTimeout = 30 * time.Second
)

// RequestInterceptor may mutate the request before it is sent. A non-nil
// error aborts the call.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseErrorInterceptor sees every failed call. resp is nil when no
// response was received. It returns the error to hand to the next
// interceptor and finally to the caller.
type ResponseErrorInterceptor func(ctx context.Context, req *Request, resp *Response, err error) error

type Client struct {
	baseURL     string
	http        *http.Client
	logger      logging.Logger
	onRequest   []RequestInterceptor
	onRespError []ResponseErrorInterceptor
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func WithRequestInterceptor(i RequestInterceptor) Option {
	return func(c *Client) { c.onRequest = append(c.onRequest, i) }
}

func WithResponseErrorInterceptor(i ResponseErrorInterceptor) Option {
	return func(c *Client) { c.onRespError = append(c.onRespError, i) }
}

// New returns a client without interceptors. An empty baseURL selects
// DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  logging.Discard(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// NewDefault returns a client wired with the standard interceptors: token
// injection, content type, network error normalisation and the 401 handler.
func NewDefault(baseURL string, creds Credentials, nav Navigator, opts ...Option) *Client {
	c := New(baseURL, opts...)
	c.onRequest = append([]RequestInterceptor{
		TokenInterceptor(creds, c.logger),
		ContentTypeInterceptor(),
	}, c.onRequest...)
	c.onRespError = append([]ResponseErrorInterceptor{
		NetworkErrorInterceptor(c.logger),
		UnauthorizedInterceptor(creds, nav, c.logger),
	}, c.onRespError...)
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path})
}

func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// Do runs req through the interceptor chains and returns the response of a
// 2xx exchange. Every other outcome is an error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req.Method == "" {
		req.Method = http.MethodGet
	}
	if req.Header == nil {
		req.Header = http.Header{}
	}

	for _, i := range c.onRequest {
		if err := i(ctx, req); err != nil {
			return nil, err
		}
	}

	body, multipartType, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	hreq, err := http.NewRequestWithContext(ctx, req.Method, c.url(req.Path), body)
	if err != nil {
		return nil, err
	}
	hreq.Header = req.Header.Clone()
	hreq.Header.Set("Accept", "application/json")
	if multipartType != "" {
		hreq.Header.Set("Content-Type", multipartType)
	}

	c.logger.Debug(ctx, "api request", "method", req.Method, "path", req.Path)

	hresp, err := c.http.Do(hreq)
	if err != nil {
		return nil, c.fail(ctx, req, nil, err)
	}
	defer hresp.Body.Close()

	raw, err := io.ReadAll(hresp.Body)
	if err != nil {
		return nil, c.fail(ctx, req, nil, err)
	}

	resp := &Response{
		Status:  hresp.StatusCode,
		Header:  hresp.Header,
		Data:    decodeData(raw),
		Request: req,
	}
	c.logger.Debug(ctx, "api response", "method", req.Method, "path", req.Path, "status", resp.Status)

	if resp.Status < 200 || resp.Status > 299 {
		return nil, c.fail(ctx, req, resp, &ResponseError{Response: resp})
	}
	return resp, nil
}

func (c *Client) fail(ctx context.Context, req *Request, resp *Response, err error) error {
	c.logger.Debug(ctx, "api failure", "method", req.Method, "path", req.Path, "error", err)
	out := err
	for _, i := range c.onRespError {
		if next := i(ctx, req, resp, out); next != nil {
			out = next
		}
	}
	return out
}

func (c *Client) url(path string) string {
	if path == "" {
		return c.baseURL
	}
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}
