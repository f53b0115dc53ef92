package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/wepub/internal/client/credstore"
	"github.com/dmitrijs2005/wepub/internal/logging"
	"github.com/google/uuid"
)

const (
	// DefaultTimeout bounds every call that does not override it.
	DefaultTimeout = 60 * time.Second

	ContentTypeJSON = "application/json"

	RequestIDHeaderName = "X-Request-ID"
)

// UnauthorizedFunc is called after the credential store has been cleared in
// response to a 401.
type UnauthorizedFunc func(ctx context.Context)

type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	store      credstore.Store
	logger     logging.Logger

	mu           sync.Mutex
	nextID       int
	unauthorized map[int]UnauthorizedFunc
}

type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client. Its own Timeout, if
// any, still applies on top of the per-call timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithDefaultTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New builds a Client for the API rooted at baseURL, e.g.
// "http://127.0.0.1:8000/api/v1".
func New(baseURL string, store credstore.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{},
		timeout:      DefaultTimeout,
		store:        store,
		logger:       logging.Nop(),
		unauthorized: make(map[int]UnauthorizedFunc),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the address prefix every path is resolved against.
func (c *Client) BaseURL() string { return c.baseURL }

// OnUnauthorized subscribes fn to authorization failures. Subscribers run in
// registration order. The returned func removes the subscription.
func (c *Client) OnUnauthorized(fn UnauthorizedFunc) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.unauthorized[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.unauthorized, id)
		c.mu.Unlock()
	}
}

type call struct {
	timeout time.Duration
	query   url.Values
	header  http.Header
}

// CallOption adjusts a single request.
type CallOption func(*call)

// WithTimeout overrides the default timeout for one call.
func WithTimeout(d time.Duration) CallOption {
	return func(c *call) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithQuery appends query parameters to the request URL.
func WithQuery(q url.Values) CallOption {
	return func(c *call) {
		for k, vs := range q {
			for _, v := range vs {
				c.query.Add(k, v)
			}
		}
	}
}

// WithHeader sets an extra request header.
func WithHeader(key, value string) CallOption {
	return func(c *call) { c.header.Set(key, value) }
}

func (c *Client) Get(ctx context.Context, path string, out any, opts ...CallOption) error {
	return c.Do(ctx, http.MethodGet, path, nil, out, opts...)
}

func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return c.Do(ctx, http.MethodPost, path, body, out, opts...)
}

func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return c.Do(ctx, http.MethodPut, path, body, out, opts...)
}

func (c *Client) Delete(ctx context.Context, path string, out any, opts ...CallOption) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out, opts...)
}

// Do sends one request. body, when non-nil, is JSON-encoded; a 2xx payload is
// JSON-decoded into out unless out is nil or the body is empty.
func (c *Client) Do(ctx context.Context, method, path string, body, out any, opts ...CallOption) error {
	cl := &call{timeout: c.timeout, query: url.Values{}, header: http.Header{}}
	for _, o := range opts {
		o(cl)
	}

	req, err := c.newRequest(ctx, method, path, body, cl)
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(ctx, cl.timeout)
	defer cancel()
	req = req.WithContext(reqCtx)

	requestID := req.Header.Get(RequestIDHeaderName)
	log := c.logger.With("method", method, "path", path, "request_id", requestID)
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug(ctx, "request failed", "error", err, "elapsed", time.Since(started))
		return &Error{Kind: ErrTransport, Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: ErrTransport, Status: resp.StatusCode, Method: method, Path: path, Err: err}
	}

	log.Debug(ctx, "request finished", "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(bytes.TrimSpace(payload)) == 0 {
			return nil
		}
		if err := json.Unmarshal(payload, out); err != nil {
			return &Error{Kind: ErrTransport, Status: resp.StatusCode, Method: method, Path: path,
				Detail: "malformed response", Err: err}
		}
		return nil
	}

	apiErr := &Error{
		Kind:   Classify(resp.StatusCode),
		Status: resp.StatusCode,
		Method: method,
		Path:   path,
		Detail: parseDetail(payload),
	}

	if errors.Is(apiErr.Kind, ErrUnauthorized) {
		log.Warn(ctx, "credential rejected, clearing session")
		if clearErr := c.handleUnauthorized(context.WithoutCancel(ctx)); clearErr != nil {
			return errors.Join(apiErr, clearErr)
		}
	}
	return apiErr
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any, cl *call) (*http.Request, error) {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", ContentTypeJSON)
	if body != nil {
		req.Header.Set("Content-Type", ContentTypeJSON)
	}
	req.Header.Set(RequestIDHeaderName, uuid.NewString())
	for k, vs := range cl.header {
		req.Header[k] = vs
	}

	token, ok, err := c.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load credential: %w", err)
	}
	if ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) handleUnauthorized(ctx context.Context) error {
	err := c.store.Clear(ctx)
	if err != nil {
		c.logger.Error(ctx, "failed to clear credential", "error", err)
	}

	c.mu.Lock()
	subs := make([]UnauthorizedFunc, 0, len(c.unauthorized))
	for _, id := range slices.Sorted(maps.Keys(c.unauthorized)) {
		subs = append(subs, c.unauthorized[id])
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(ctx)
	}
	return err
}
