package util

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	nhttp "github.com/chaos-io/peptide-catalog/util/http"
)

// IsURL reports whether src should be fetched over http(s) instead of read from disk.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// ReadSource 读取本地文件或远程图片的全部内容
func ReadSource(ctx context.Context, src string) ([]byte, error) {
	if IsURL(src) {
		return download(ctx, src)
	}
	return os.ReadFile(src)
}

// Exists reports whether src is readable. URLs are always assumed to exist.
func Exists(src string) bool {
	if IsURL(src) {
		return true
	}
	_, err := os.Stat(src)
	return err == nil
}

// BaseName returns the file name part of a local path or URL.
func BaseName(src string) string {
	if IsURL(src) {
		if i := strings.IndexAny(src, "?#"); i >= 0 {
			src = src[:i]
		}
		return path.Base(src)
	}
	return filepath.Base(src)
}

// IsNotExist unwraps both os and fs not-exist errors.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// Client fetches URL sources. Its default timeout bounds a stalled server.
var Client = nhttp.NewHTTPClient()

func download(ctx context.Context, url string) ([]byte, error) {
	var data []byte
	err := Client.DoHTTPRequest(ctx, &nhttp.RequestParam{
		RequestURI: url,
		Method:     http.MethodGet,
		Response:   &data,
	})

	var statusErr *nhttp.StatusError
	if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
		return nil, fmt.Errorf("download %s: %w", url, fs.ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	return data, nil
}
