package loader

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

func readFile(ctx context.Context, path string, limit int64) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return readLimited(func() ([]byte, error) { return os.ReadFile(abs) }, limit)
}

func readFS(ctx context.Context, fsys fs.FS, name string, limit int64) ([]byte, error) {
	name = strings.TrimPrefix(name, "./")
	if name == "" {
		return nil, errors.New("fs path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return readLimited(func() ([]byte, error) { return fs.ReadFile(fsys, name) }, limit)
}
