package proxy

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/avast/retry-go/v4"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// FetchProcedure is the connect procedure served by NewOriginHandler.
const FetchProcedure = "/patterns.proxy.v1.OriginService/Fetch"

const (
	defaultAttempts = 3
	defaultDelay    = 100 * time.Millisecond
)

// NewOriginHandler exposes origin over connect. Mount the handler at the
// returned path. ErrNotFound maps to CodeNotFound, ErrEmptyPath to
// CodeInvalidArgument, and anything else to CodeUnavailable.
func NewOriginHandler(origin Origin, opts ...connect.HandlerOption) (string, http.Handler) {
	handler := connect.NewUnaryHandler(
		FetchProcedure,
		func(ctx context.Context, req *connect.Request[wrapperspb.StringValue]) (*connect.Response[wrapperspb.BytesValue], error) {
			path := req.Msg.GetValue()
			if path == "" {
				return nil, connect.NewError(connect.CodeInvalidArgument, ErrEmptyPath)
			}

			c, err := origin.Fetch(ctx, path)
			if err != nil {
				switch {
				case errors.Is(err, ErrNotFound):
					return nil, connect.NewError(connect.CodeNotFound, err)
				case errors.Is(err, context.Canceled):
					return nil, connect.NewError(connect.CodeCanceled, err)
				default:
					return nil, connect.NewError(connect.CodeUnavailable, err)
				}
			}
			return connect.NewResponse(wrapperspb.Bytes(c.Body)), nil
		},
		opts...,
	)
	return FetchProcedure, handler
}

// RemoteOriginOption configures a RemoteOrigin.
type RemoteOriginOption func(*RemoteOrigin)

// WithRetry sets how many attempts a fetch makes and the delay between them.
func WithRetry(attempts uint, delay time.Duration) RemoteOriginOption {
	return func(r *RemoteOrigin) {
		r.attempts = attempts
		r.delay = delay
	}
}

// RemoteOrigin is an Origin reached over connect RPC. Fetches that fail
// with CodeUnavailable are retried; other failures return immediately.
type RemoteOrigin struct {
	client   *connect.Client[wrapperspb.StringValue, wrapperspb.BytesValue]
	attempts uint
	delay    time.Duration
}

// NewRemoteOrigin dials baseURL (for example "http://localhost:8080").
func NewRemoteOrigin(httpClient connect.HTTPClient, baseURL string, opts ...RemoteOriginOption) *RemoteOrigin {
	r := &RemoteOrigin{
		client: connect.NewClient[wrapperspb.StringValue, wrapperspb.BytesValue](
			httpClient,
			strings.TrimRight(baseURL, "/")+FetchProcedure,
		),
		attempts: defaultAttempts,
		delay:    defaultDelay,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.attempts == 0 {
		r.attempts = 1
	}
	return r
}

func (r *RemoteOrigin) Fetch(ctx context.Context, path string) (Content, error) {
	if path == "" {
		return Content{}, ErrEmptyPath
	}

	body, err := retry.DoWithData(
		func() ([]byte, error) {
			res, err := r.client.CallUnary(ctx, connect.NewRequest(wrapperspb.String(path)))
			if err != nil {
				return nil, err
			}
			return res.Msg.GetValue(), nil
		},
		retry.Context(ctx),
		retry.Attempts(r.attempts),
		retry.Delay(r.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return connect.CodeOf(err) == connect.CodeUnavailable
		}),
	)
	if err != nil {
		if connect.CodeOf(err) == connect.CodeNotFound {
			return Content{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Content{}, fmt.Errorf("fetch %s: %w", path, err)
	}
	return Content{Path: path, Body: body}, nil
}
