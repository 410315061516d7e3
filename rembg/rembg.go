// Package rembg strips the background from product images.
//
// The extraction itself is a black box behind Remover: the default backend
// delegates to a rembg server, the colorkey backend is a dependency-free
// fallback for flat studio backgrounds.
package rembg

import (
	"context"
	"errors"
	"fmt"
	"time"

	nhttp "github.com/chaos-io/peptide-catalog/util/http"
)

const (
	BackendHTTP     = "http"
	BackendColorKey = "colorkey"

	DefaultURL = "http://127.0.0.1:7000"
)

var ErrNoForeground = errors.New("rembg: no foreground detected")

// Remover takes encoded image bytes and returns encoded image bytes with the
// background made transparent.
type Remover interface {
	Remove(ctx context.Context, data []byte) ([]byte, error)
}

// New builds the Remover for backend. url is only used by the http backend.
func New(backend, url string, timeout time.Duration) (Remover, error) {
	switch backend {
	case "", BackendHTTP:
		if url == "" {
			url = DefaultURL
		}
		return NewHTTPRemover(url, nhttp.NewHTTPClientWithTimeout(timeout)), nil
	case BackendColorKey:
		return NewColorKeyRemover(), nil
	default:
		return nil, fmt.Errorf("rembg: unknown backend %q", backend)
	}
}
