package http

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/http.go -package=mocks . IClient
type IClient interface {
	DoHTTPRequest(ctx context.Context, requestParam *RequestParam) error
}

// RequestParam describes a single outbound call.
//
// Body may be nil, an io.Reader (sent as is) or any other value (sent as JSON).
// Response may be nil, a *[]byte or io.Writer (raw body), or a pointer to decode JSON into.
type RequestParam struct {
	RequestURI string
	Method     string
	Header     map[string]string
	Body       interface{}
	Response   interface{}

	// Timeout overrides the client timeout for this request when > 0.
	Timeout time.Duration
}
