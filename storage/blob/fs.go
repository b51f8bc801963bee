package blob

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type fsSink struct {
	dir string
}

func NewFSSink(dir string) Sink {
	return &fsSink{dir: dir}
}

func (s *fsSink) Put(_ context.Context, name string, payload []byte) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", errors.Errorf("invalid document name %q", name)
	}
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return "", errors.Wrap(err, "creating export directory")
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return "", errors.Wrap(err, "writing document")
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", errors.Wrap(err, "writing document")
	}
	return path, nil
}
