package rpcclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/topl/brambl-go/pkg/bifrostrpc"
	"github.com/topl/brambl-go/pkg/config"
	"go.uber.org/zap"
)

const (
	defaultDialTimeout    = 4 * time.Second
	defaultRequestTimeout = 4 * time.Second
)

const (
	// DefaultEndpoint is the node address used when none is given to New.
	DefaultEndpoint = "http://localhost:9085/"
	// DefaultAPIKey is the well-known key a freshly installed node accepts.
	DefaultAPIKey = "topl_the_world!"
)

// Client represents the middleman for executing JSON RPC calls to remote
// Bifrost nodes. Operations from multiple goroutines are independent, but
// the endpoint/API key setters are not synchronized with in-flight calls,
// serializing reconfiguration is up to the caller.
type Client struct {
	cli      *http.Client
	endpoint string
	apiKey   string
	ctx      context.Context
	opts     Options
	logger   *zap.Logger
	requestF func(route string, r *bifrostrpc.Request) (*bifrostrpc.Response, error)
}

// Options defines options for the RPC client. All values are optional. If
// any duration is not specified, a default of 4 seconds will be used. Note
// that the timeouts belong to the underlying HTTP transport; the dispatch
// layer itself never retries and applies no backoff.
type Options struct {
	// APIKey is sent as the x-api-key header with every request.
	// DefaultAPIKey is used when empty.
	APIKey         string
	DialTimeout    time.Duration
	RequestTimeout time.Duration
	// Limit total number of connections per host. No limit by default.
	MaxConnsPerHost int
	// Logger receives debug output for every dispatched request. Requests
	// are not logged when it's nil.
	Logger *zap.Logger
}

// CallOption customizes a single operation call.
type CallOption func(*callOptions)

type callOptions struct {
	id string
}

// WithRequestID overrides the JSON-RPC request identifier for one call. The
// identifier defaults to bifrostrpc.DefaultRequestID.
func WithRequestID(id string) CallOption {
	return func(co *callOptions) {
		co.id = id
	}
}

// New returns a new Client ready to use. An empty endpoint is replaced with
// DefaultEndpoint.
func New(ctx context.Context, endpoint string, opts Options) (*Client, error) {
	cl := new(Client)
	err := initClient(ctx, cl, endpoint, opts)
	if err != nil {
		return nil, err
	}
	return cl, nil
}

// NewFromConfig returns a new Client set up from the given configuration.
func NewFromConfig(ctx context.Context, cfg config.Config) (*Client, error) {
	return New(ctx, cfg.Endpoint, Options{
		APIKey:         cfg.APIKey,
		DialTimeout:    cfg.DialTimeout,
		RequestTimeout: cfg.RequestTimeout,
	})
}

func initClient(ctx context.Context, cl *Client, endpoint string, opts Options) error {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if _, err := url.Parse(endpoint); err != nil {
		return err
	}

	if opts.APIKey == "" {
		opts.APIKey = DefaultAPIKey
	}
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = defaultDialTimeout
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	httpClient := &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.DialTimeout,
			}).DialContext,
			MaxConnsPerHost: opts.MaxConnsPerHost,
		},
		Timeout: opts.RequestTimeout,
	}

	cl.ctx = ctx
	cl.cli = httpClient
	cl.endpoint = endpoint
	cl.apiKey = opts.APIKey
	cl.logger = opts.Logger
	cl.opts = opts
	cl.requestF = cl.makeHTTPRequest
	return nil
}

// Endpoint returns the node address the client currently targets.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// SetEndpoint retargets the client at the given node address. It performs no
// format validation; subsequent operations observe the new value immediately
// while in-flight requests keep the address they started with.
func (c *Client) SetEndpoint(endpoint string) {
	c.endpoint = endpoint
}

// SetAPIKey replaces the x-api-key header value used by subsequent requests.
func (c *Client) SetAPIKey(key string) {
	c.apiKey = key
}

// Close closes unused underlying networks connections.
func (c *Client) Close() {
	c.cli.CloseIdleConnections()
}

func (c *Client) performRequest(route, method string, params any, opts ...CallOption) (json.RawMessage, error) {
	co := callOptions{id: bifrostrpc.DefaultRequestID}
	for _, o := range opts {
		o(&co)
	}
	if params == nil {
		params = struct{}{} // parameterless methods still send [{}]
	}
	var r = bifrostrpc.Request{
		JSONRPC: bifrostrpc.JSONRPCVersion,
		ID:      co.id,
		Method:  method,
		Params:  []any{params},
	}

	c.logger.Debug("performing request",
		zap.String("route", route),
		zap.String("method", method),
		zap.String("id", co.id))
	rpcCalled.WithLabelValues(route, method).Inc()

	raw, err := c.requestF(route, &r)

	if raw != nil && raw.Error != nil {
		rpcFailed.WithLabelValues(route, method).Inc()
		return nil, raw.Error
	} else if err != nil {
		rpcFailed.WithLabelValues(route, method).Inc()
		return nil, err
	} else if raw == nil || raw.Result == nil {
		rpcFailed.WithLabelValues(route, method).Inc()
		return nil, errors.New("no result returned")
	}
	return raw.Result, nil
}

func (c *Client) makeHTTPRequest(route string, r *bifrostrpc.Request) (*bifrostrpc.Response, error) {
	var (
		buf = new(bytes.Buffer)
		raw = new(bifrostrpc.Response)
	)

	if err := json.NewEncoder(buf).Encode(r); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(c.ctx, "POST", c.endpoint+route, buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// The node might send us a proper JSON anyway, so look there first and if
	// it parses, it has more relevant data than HTTP error code.
	err = json.NewDecoder(resp.Body).Decode(raw)
	if err != nil {
		if resp.StatusCode != http.StatusOK {
			err = fmt.Errorf("HTTP %d/%s", resp.StatusCode, http.StatusText(resp.StatusCode))
		} else {
			err = fmt.Errorf("JSON decoding: %w", err)
		}
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// Ping attempts to create a connection to the endpoint
// and returns an error if there is any.
func (c *Client) Ping() error {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return err
	}
	conn, err := net.DialTimeout("tcp", u.Host, defaultDialTimeout)
	if err != nil {
		return err
	}
	_ = conn.Close()
	return nil
}
