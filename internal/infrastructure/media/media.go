package media

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store ingests an uploaded file and returns a stable reference path for it.
// Stored names are collision-resistant; callers persist only the reference.
type Store interface {
	Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

// objectName builds a random stored name preserving the original extension.
func objectName(filename string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(filename))
}

// DiskStore writes uploads to a local directory and references them by a
// public URL path, e.g. /uploads/<name>.
type DiskStore struct {
	Dir        string
	PublicPath string
}

func NewDiskStore(dir, publicPath string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{Dir: dir, PublicPath: strings.TrimRight(publicPath, "/")}, nil
}

func (s *DiskStore) Save(_ context.Context, filename, _ string, r io.Reader) (string, error) {
	name := objectName(filename)
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, r); err != nil {
		_ = dst.Close()
		return "", err
	}
	if err := dst.Close(); err != nil {
		return "", err
	}
	return s.PublicPath + "/" + name, nil
}
