package deepl

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

const (
	defaultEndpoint      = "https://www2.deepl.com/jsonrpc"
	defaultStateEndpoint = "https://w.deepl.com/web"

	// defaultPacing spaces out requests so the endpoint does not block
	// the client's address.
	defaultPacing = 5 * time.Second
)

// Client sends JSONRPC 2.0 requests to the DeepL web endpoint.
type Client struct {
	endpoint      string
	stateEndpoint string
	pacing        time.Duration
	http          *resty.Client
	breaker       *gobreaker.CircuitBreaker

	mu       sync.Mutex
	id       int64
	lastCall time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the JSONRPC endpoint, mainly for tests.
func WithEndpoint(url string) Option {
	return func(c *Client) { c.endpoint = url }
}

// WithStateEndpoint overrides the client-state bootstrap endpoint.
func WithStateEndpoint(url string) Option {
	return func(c *Client) { c.stateEndpoint = url }
}

// WithPacing overrides the minimum interval between requests.
func WithPacing(d time.Duration) Option {
	return func(c *Client) { c.pacing = d }
}

// NewClient creates a Client. The request id sequence is seeded from the
// endpoint's getClientState call; if that fails the client falls back to
// a random seed rather than failing construction.
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint:      defaultEndpoint,
		stateEndpoint: defaultStateEndpoint,
		pacing:        defaultPacing,
		http:          resty.New().SetTimeout(20 * time.Second),
		breaker:       gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: "deepl"}),
		id:            int64(rand.Intn(9000)+1000) * 10000,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.bootstrapClientState()
	return c
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      int64  `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	ID     int64           `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// bootstrapClientState asks the endpoint for a fresh client-state id.
func (c *Client) bootstrapClientState() {
	body := rpcRequest{
		JSONRPC: "2.0",
		Method:  "getClientState",
		Params: map[string]any{
			"v":          "20180814",
			"clientVars": map[string]any{},
		},
		ID: c.id,
	}

	var parsed rpcResponse
	resp, err := c.http.R().
		SetQueryParams(map[string]string{
			"request_type": "jsonrpc",
			"il":           "E",
			"method":       "getClientState",
		}).
		SetBody(body).
		SetResult(&parsed).
		ForceContentType("application/json").
		Post(c.stateEndpoint)
	if err != nil || resp.IsError() || parsed.ID == 0 {
		// Keep the random seed; a failed bootstrap must not take the
		// whole client down.
		c.id++
		return
	}
	c.id = parsed.ID
}

func (c *Client) nextID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.id++
	return c.id
}

// pace blocks until the minimum interval since the previous request has
// passed. Requests are serialized on purpose.
func (c *Client) pace() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if wait := c.pacing - time.Since(c.lastCall); wait > 0 && !c.lastCall.IsZero() {
		time.Sleep(wait)
	}
	c.lastCall = time.Now()
}

// call sends one JSONRPC request through the circuit breaker and
// returns the raw result.
func (c *Client) call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	c.pace()

	body := rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      c.nextID(),
	}

	result, err := c.breaker.Execute(func() (any, error) {
		var parsed rpcResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetBody(body).
			SetResult(&parsed).
			SetError(&parsed).
			ForceContentType("application/json").
			Post(c.endpoint)
		if err != nil {
			return nil, fmt.Errorf("deepl: %s request failed: %w", method, err)
		}
		if parsed.Error != nil {
			return nil, &APIError{Code: parsed.Error.Code}
		}
		if resp.IsError() {
			return nil, fmt.Errorf("deepl: %s returned %s", method, resp.Status())
		}
		return parsed.Result, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(json.RawMessage), nil
}
