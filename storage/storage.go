package storage

import (
	"context"
	"errors"
	"io"
	"net/url"
	"path/filepath"
	"strings"
)

var ErrInvalidFilename = errors.New("invalid filename")

// ImageStore persists an uploaded image and returns the URL it is served from.
type ImageStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// CleanFilename reduces name to its base component. Empty, "." and ".." are rejected.
func CleanFilename(name string) (string, error) {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	switch base {
	case "", ".", "..", "/":
		return "", ErrInvalidFilename
	}
	return base, nil
}

// ImageURL is the public path of a locally stored image. The name is path-escaped
// so '#', '?' and '%' survive the round trip through the static mount.
func ImageURL(name string) string {
	return ImageURLPrefix + url.PathEscape(name)
}
