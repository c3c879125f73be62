package fitbit

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// Source yields one Fitbit sleep export. Resolution of the bytes (disk,
// upload, fixture) is the caller's concern.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// FileSource reads an export from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string {
	return filepath.Base(s.Path)
}

func (s FileSource) Open() (io.ReadCloser, error) {
	return os.Open(s.Path)
}

// BytesSource serves an export that is already in memory.
type BytesSource struct {
	Label string
	Data  []byte
}

func (s BytesSource) Name() string {
	return s.Label
}

func (s BytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.Data)), nil
}

// FileSources wraps paths as sources, preserving their order.
func FileSources(paths ...string) []Source {
	sources := make([]Source, 0, len(paths))
	for _, p := range paths {
		sources = append(sources, FileSource{Path: p})
	}
	return sources
}
