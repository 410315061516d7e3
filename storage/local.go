package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

const (
	ImagesDir       = "images"
	ImageURLPrefix  = "/api/static/images/"
	defaultDirPerm  = 0o755
	defaultFilePerm = 0o644
)

// LocalStore writes images under <root>/images. Files with the same name are overwritten.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

func (s *LocalStore) Dir() string {
	return filepath.Join(s.root, ImagesDir)
}

func (s *LocalStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	name, err := CleanFilename(filename)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.Dir(), defaultDirPerm); err != nil {
		return "", fmt.Errorf("failed to create image dir: %w", err)
	}

	path := filepath.Join(s.Dir(), name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, defaultFilePerm)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	zap.L().Debug("image saved", zap.String("path", path), zap.Int64("bytes", n))
	return ImageURL(name), nil
}

// List returns the names of the stored images, sorted. A missing directory yields none.
func (s *LocalStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *LocalStore) Remove(name string) error {
	name, err := CleanFilename(name)
	if err != nil {
		return err
	}
	return os.Remove(filepath.Join(s.Dir(), name))
}
