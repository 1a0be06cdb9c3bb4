package fetch

import (
	"context"
	"fmt"
	"net/url"

	"github.com/msto63/fault/core/failure"
)

// SimTransport simulates a remote endpoint by routing on the request path.
// Real networking is out of scope for this library; the simulation exists so
// every kind of the taxonomy has a producer.
type SimTransport struct{}

// NewSimTransport creates the simulated transport
func NewSimTransport() *SimTransport {
	return &SimTransport{}
}

// Get routes on the URL path:
//
//	/ok       -> success
//	/offline  -> Connection failure
//	/private  -> Auth failure
//	/error    -> Server failure with status 500
//	/slow     -> Timeout failure
//	other     -> a plain error outside the taxonomy
func (t *SimTransport) Get(ctx context.Context, u *url.URL) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, failure.NewTimeout("request timed out", failure.WithCause(err))
	}

	switch u.Path {
	case "/ok":
		return &Result{
			Status: "success",
			Data:   map[string]string{"url": u.String()},
		}, nil
	case "/offline":
		return nil, failure.NewConnection("connection refused: host is offline")
	case "/private":
		return nil, failure.NewAuth("not authorized to access this resource")
	case "/error":
		return nil, failure.NewServer("internal server error", 500)
	case "/slow":
		return nil, failure.NewTimeout("request timed out")
	default:
		// Deliberately outside the taxonomy; the client normalizes it
		return nil, fmt.Errorf("no route for %s", u.Path)
	}
}
