// Package storage provides the blob backends finished decks are published
// to: a local directory for development and MinIO/S3 for deployments.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sentivora/mlr-automation/internal/core/port"
)

// Local stores decks as files under a base directory.
type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Local{dir: dir}, nil
}

func (l *Local) Save(_ context.Context, name string, data []byte, _ string) error {
	target, err := l.resolve(name)
	if err != nil {
		return err
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("publish %s: %w", name, err)
	}
	return nil
}

func (l *Local) Fetch(_ context.Context, name string) ([]byte, string, error) {
	target, err := l.resolve(name)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(target)
	if os.IsNotExist(err) {
		return nil, "", port.ErrBlobNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", name, err)
	}
	return data, contentTypeFor(name), nil
}

// resolve confines the blob name to the base directory.
func (l *Local) resolve(name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid blob name %q", name)
	}
	return filepath.Join(l.dir, clean), nil
}

func contentTypeFor(name string) string {
	if strings.HasSuffix(name, ".json") {
		return "application/json"
	}
	return "application/octet-stream"
}
