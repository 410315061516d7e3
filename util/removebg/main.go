// Command removebg strips the background from product artwork.
//
//	removebg [flags] [image ...]
//
// With no arguments it processes the storefront molecule renders under -dir.
// Results are written next to the input as <name>_nobg.png unless -inplace is set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/chaos-io/peptide-catalog/logger"
	"github.com/chaos-io/peptide-catalog/rembg"
	"github.com/chaos-io/peptide-catalog/util"
	nhttp "github.com/chaos-io/peptide-catalog/util/http"
)

const outputSuffix = "_nobg.png"

var defaultFiles = []string{"molecule-chrome.png", "molecule-ruby.png", "molecule-sapphire.png"}

type options struct {
	dir     string
	out     string
	inplace bool
}

func main() {
	var (
		opts    options
		backend string
		url     string
		timeout time.Duration
		env     string
	)
	flag.StringVar(&opts.dir, "dir", "public", "directory holding the default images")
	flag.StringVar(&opts.out, "out", "", "output directory (default: beside each input)")
	flag.BoolVar(&opts.inplace, "inplace", false, "overwrite local inputs instead of writing "+outputSuffix+" files")
	flag.StringVar(&backend, "backend", rembg.BackendHTTP, "extraction backend: http or colorkey")
	flag.StringVar(&url, "url", rembg.DefaultURL, "rembg server base url for the http backend")
	flag.DurationVar(&timeout, "timeout", 2*time.Minute, "per-request timeout for the http backend and URL inputs")
	flag.StringVar(&env, "env", os.Getenv("APP_ENV"), "log environment")
	flag.Parse()

	zl, err := logger.Initialize(env)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = zl.Sync()
	}()

	util.Client = nhttp.NewHTTPClientWithTimeout(timeout)
	remover, err := rembg.New(backend, url, timeout)
	if err != nil {
		zap.L().Fatal("invalid backend", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, remover, opts, flag.Args()); err != nil {
		zap.L().Fatal("background removal failed", zap.Error(err))
	}
}

// run processes inputs one at a time. A missing input is skipped; any other failure stops the run.
func run(ctx context.Context, remover rembg.Remover, opts options, inputs []string) error {
	if len(inputs) == 0 {
		for _, name := range defaultFiles {
			inputs = append(inputs, filepath.Join(opts.dir, name))
		}
	}

	for _, src := range inputs {
		name := util.BaseName(src)
		if !util.Exists(src) {
			zap.S().Infof("Skipping %s, not found.", name)
			continue
		}

		data, err := util.ReadSource(ctx, src)
		if util.IsNotExist(err) {
			zap.S().Infof("Skipping %s, not found.", name)
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", src, err)
		}

		zap.S().Infof("Processing %s...", name)
		out, err := remover.Remove(ctx, data)
		if err != nil {
			return fmt.Errorf("remove background from %s: %w", src, err)
		}

		dst := outputPath(src, opts)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(dst, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", dst, err)
		}
		zap.S().Infof("Saved %s", dst)
	}
	return nil
}

func outputPath(src string, opts options) string {
	if opts.inplace && !util.IsURL(src) {
		return src
	}

	name := util.BaseName(src)
	name = strings.TrimSuffix(name, filepath.Ext(name)) + outputSuffix

	dir := opts.out
	if dir == "" {
		dir = "."
		if !util.IsURL(src) {
			dir = filepath.Dir(src)
		}
	}
	return filepath.Join(dir, name)
}
