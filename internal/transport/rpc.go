package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/rpc"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/kolo/xmlrpc"
)

// DefaultRPCURL is the endpoint of the legacy XML-RPC API.
const DefaultRPCURL = "https://rpc.gandi.net/xmlrpc/"

// RPCClient performs XML-RPC method calls against the legacy API. The API
// key is passed as the first parameter of every call.
type RPCClient struct {
	key       string
	url       string
	transport http.RoundTripper
	logger    *slog.Logger
}

// RPCOption is a functional option for configuring an RPCClient.
type RPCOption func(*RPCClient)

// WithRPCURL overrides the XML-RPC endpoint.
func WithRPCURL(u string) RPCOption {
	return func(c *RPCClient) {
		if u != "" {
			c.url = u
		}
	}
}

// WithRoundTripper sets the HTTP transport used for calls.
func WithRoundTripper(rt http.RoundTripper) RPCOption {
	return func(c *RPCClient) {
		if rt != nil {
			c.transport = rt
		}
	}
}

// WithRPCLogger sets a custom logger.
func WithRPCLogger(logger *slog.Logger) RPCOption {
	return func(c *RPCClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewRPCClient creates an RPCClient authenticating with the given API key.
// The endpoint URL is validated eagerly.
func NewRPCClient(key string, opts ...RPCOption) (*RPCClient, error) {
	c := &RPCClient{
		key:       key,
		url:       DefaultRPCURL,
		transport: http.DefaultTransport,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if _, err := url.ParseRequestURI(c.url); err != nil {
		return nil, fmt.Errorf("rpc: invalid endpoint %q: %w", c.url, err)
	}
	return c, nil
}

// URL returns the endpoint calls are sent to.
func (c *RPCClient) URL() string { return c.url }

// Call invokes method with the API key followed by params and returns the
// decoded reply: structs decode to map[string]any, arrays to []any, ints to
// int64 and dates to time.Time.
func (c *RPCClient) Call(ctx context.Context, method string, params ...any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// xmlrpc.Client has no context support, so every call gets a client
	// whose transport binds requests to ctx.
	client, err := xmlrpc.NewClient(c.url, contextTransport{ctx: ctx, base: c.transport})
	if err != nil {
		return nil, fmt.Errorf("rpc: failed to create client for %s: %w", c.url, err)
	}
	defer client.Close()

	args := make([]any, 0, len(params)+1)
	args = append(args, c.key)
	args = append(args, params...)

	var reply any
	start := time.Now()
	err = client.Call(method, args, &reply)

	c.logger.Debug("rpc call",
		slog.String("rpc_method", method),
		slog.Duration("duration", time.Since(start)),
		slog.Bool("ok", err == nil),
	)

	if err != nil {
		return nil, wrapFault(method, err)
	}
	return reply, nil
}

// contextTransport attaches a context to every outgoing request.
type contextTransport struct {
	ctx  context.Context
	base http.RoundTripper
}

func (t contextTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(req.WithContext(t.ctx))
}

// faultPattern matches a fault as it surfaces through net/rpc, where the
// codec flattens xmlrpc.FaultError into an rpc.ServerError string.
var faultPattern = regexp.MustCompile(`(?s)^Fault\((-?\d+)\): (.*)$`)

func wrapFault(method string, err error) error {
	code, message, ok := faultOf(err)
	if !ok {
		return fmt.Errorf("rpc %s: %w", method, err)
	}
	return &Error{
		Transport: Legacy,
		Op:        method,
		FaultCode: code,
		Message:   message,
		Err:       classifyMessage(message),
	}
}

func faultOf(err error) (int, string, bool) {
	var fault xmlrpc.FaultError
	if errors.As(err, &fault) {
		return fault.Code, fault.String, true
	}

	var serverErr rpc.ServerError
	if errors.As(err, &serverErr) {
		if m := faultPattern.FindStringSubmatch(string(serverErr)); m != nil {
			code, _ := strconv.Atoi(m[1])
			return code, m[2], true
		}
		return 0, string(serverErr), true
	}

	return 0, "", false
}
