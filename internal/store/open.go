package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Backend names a KV implementation.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendFile   Backend = "file"
	BackendMemory Backend = "memory"
)

// Open returns the KV for backend rooted at path. For sqlite path is the
// database file, for file it is a directory; memory ignores it.
func Open(backend Backend, path string) (KV, error) {
	switch backend {
	case BackendSQLite, "":
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
		return OpenSQLite(path)
	case BackendFile:
		return NewFile(path), nil
	case BackendMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", backend)
}

// Close releases kv if it holds resources.
func Close(kv KV) error {
	if c, ok := kv.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
