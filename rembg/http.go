package rembg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"go.uber.org/zap"

	nhttp "github.com/chaos-io/peptide-catalog/util/http"
)

const removePath = "/api/remove"

// HTTPRemover calls a rembg server ("rembg s").
/*
	curl -X POST "$BASE_URL/api/remove" \
	  -F "file=@molecule-ruby.png" -o molecule-ruby_nobg.png
*/
type HTTPRemover struct {
	baseURL string
	cli     nhttp.IClient
}

func NewHTTPRemover(baseURL string, cli nhttp.IClient) *HTTPRemover {
	if cli == nil {
		cli = nhttp.NewHTTPClient()
	}
	return &HTTPRemover{
		baseURL: strings.TrimRight(baseURL, "/"),
		cli:     cli,
	}
}

func (h *HTTPRemover) Remove(ctx context.Context, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("rembg: empty input")
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", "image"+extensionFor(data))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	var out []byte
	reqParam := &nhttp.RequestParam{
		RequestURI: h.baseURL + removePath,
		Method:     http.MethodPost,
		Header:     map[string]string{"Content-Type": writer.FormDataContentType()},
		Body:       body,
		Response:   &out,
	}
	if err := h.cli.DoHTTPRequest(ctx, reqParam); err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	if len(out) == 0 {
		return nil, errors.New("rembg: empty response from server")
	}

	zap.L().Debug("background removed",
		zap.String("backend", BackendHTTP),
		zap.Int("in_bytes", len(data)),
		zap.Int("out_bytes", len(out)),
	)
	return out, nil
}

func extensionFor(data []byte) string {
	switch http.DetectContentType(data) {
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
