// Package fetch implements the demo data producer for the fault library.
//
// The client validates its input, delegates to a pluggable transport, and
// applies the propagation rule at the one boundary it owns: failures of a
// known kind pass through unchanged, anything else is normalized into an
// Application failure.
package fetch

import (
	"context"
	"net/url"

	"github.com/msto63/fault/core/failure"
	"github.com/msto63/fault/core/log"
	"github.com/msto63/fault/core/validate"
)

// Result is the success value of a fetch
type Result struct {
	Status string            `json:"status"`
	Data   map[string]string `json:"data,omitempty"`
}

// Transport performs the actual retrieval. Implementations raise taxonomy
// failures for conditions they recognize and plain errors otherwise.
type Transport interface {
	Get(ctx context.Context, u *url.URL) (*Result, error)
}

// Client fetches data from a URL through a transport
type Client struct {
	transport Transport
	logger    *log.Logger
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithTransport replaces the default simulated transport
func WithTransport(t Transport) ClientOption {
	return func(c *Client) { c.transport = t }
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *log.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a client. Without options it uses the simulated
// transport and a default logger.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		transport: NewSimTransport(),
		logger:    log.New().WithName("fetch"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchData retrieves the resource at rawURL.
//
// Failure paths:
//   - empty URL           -> Validation "URL cannot be empty"
//   - non-HTTPS URL       -> Validation "URL must use HTTPS protocol"
//   - transport failures  -> passed through unchanged if of a known kind,
//     normalized into Application otherwise
func (c *Client) FetchData(ctx context.Context, rawURL string) (*Result, error) {
	chain := validate.NewChain("fetch_url").
		StopOnFirstError(true).
		Add(validate.NonEmpty("url", "URL cannot be empty")).
		Add(validate.HTTPS("url"))

	if f := chain.Validate(map[string]string{"url": rawURL}); f != nil {
		return nil, f
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		// Unreachable after chain validation, but the parse result is needed
		return nil, failure.NewValidation("URL is not valid")
	}

	c.logger.Debug("fetching", log.Fields{"url": u.String()})

	res, err := c.transport.Get(ctx, u)
	if err != nil {
		return nil, failure.Ensure(err)
	}

	return res, nil
}
