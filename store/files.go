package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	libcsd "github.com/bellrise/libcsd"
)

// files maps document IDs to paths under one directory.
type files struct {
	dir string
	options
}

func openDir(dir string, o options) (files, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return files{}, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return files{dir: dir, options: o}, nil
}

func (f files) path(id string) (string, error) {
	if id == "" {
		return "", &libcsd.InvalidArgumentError{Msg: "store: empty document id"}
	}
	if id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", &libcsd.InvalidArgumentError{Msg: fmt.Sprintf("store: document id %q is not a plain file name", id)}
	}
	return filepath.Join(f.dir, id+f.ext), nil
}

func (f files) read(ctx context.Context, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fn, err := f.path(id)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("document %q: %w", id, os.ErrNotExist)
		}
		return nil, fmt.Errorf("read %s: %w", fn, err)
	}
	return data, nil
}

func (f files) write(ctx context.Context, id string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fn, err := f.path(id)
	if err != nil {
		return err
	}
	if err := os.WriteFile(fn, data, f.perm); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func (f files) remove(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fn, err := f.path(id)
	if err != nil {
		return err
	}
	if err := os.Remove(fn); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("document %q: %w", id, os.ErrNotExist)
		}
		return fmt.Errorf("remove %s: %w", fn, err)
	}
	return nil
}

// ids lists stored document IDs in file name order.
func (f files) ids(ctx context.Context) (*libcsd.List[string], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", f.dir, err)
	}
	ids := libcsd.NewListWith[string](libcsd.WithCapacity(len(entries)))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, f.ext) {
			continue
		}
		ids.Append(strings.TrimSuffix(name, f.ext))
	}
	return ids, nil
}
