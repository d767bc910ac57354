package view

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/joshuapare/viewkit/internal/buf"
	"github.com/joshuapare/viewkit/internal/logging"
	"github.com/joshuapare/viewkit/internal/mmfile"
)

// MapOptions controls how Map opens a file.
type MapOptions struct {
	// Logger receives lifecycle records (map, unmap). If nil, nothing is logged.
	Logger *slog.Logger

	// Sequential advises the kernel that the mapping will be read front to back.
	// It is a hint only and is ignored where files are not memory-mapped.
	Sequential bool
}

// Mapping is a read-only file held in memory for Views to reference.
//
// Every View obtained from a Mapping, and every View derived from those, is
// valid only until Close. Close is safe to call more than once and from
// multiple goroutines.
type Mapping struct {
	path   string
	data   []byte
	unmap  func() error
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

// Map opens the file at path for zero-copy viewing. On Linux, macOS and the
// BSDs the file is memory-mapped; elsewhere it is read into memory.
func Map(path string, opts MapOptions) (*Mapping, error) {
	logger := logging.Default(opts.Logger).With("component", "mapping", "path", path)

	data, unmap, err := mmfile.Map(path, opts.Sequential)
	if err != nil {
		return nil, fmt.Errorf("view: map %s: %w", path, err)
	}
	logger.Debug("mapped file", "bytes", len(data), "mmap", mmfile.Mapped)
	return &Mapping{path: path, data: data, unmap: unmap, logger: logger}, nil
}

// View returns a View over the whole file. After Close it returns the empty View.
func (m *Mapping) View() View {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return View{}
	}
	return FromBytes(m.data)
}

// Window returns a View over bytes [off, off+n) of the file. Unlike Substr it
// validates its arguments: it fails with ErrRange when the window does not fit
// and with ErrClosed after Close.
func (m *Mapping) Window(off, n int) (View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return View{}, ErrClosed
	}
	b, ok := buf.Slice(m.data, off, n)
	if !ok {
		return View{}, ErrRange
	}
	return View{b: b}, nil
}

// Len returns the file size in bytes as of Map.
func (m *Mapping) Len() int {
	return len(m.data)
}

// Path returns the path the Mapping was opened from.
func (m *Mapping) Path() string {
	return m.path
}

// Close releases the mapping. Views obtained from m must not be used afterwards.
func (m *Mapping) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	if err := m.unmap(); err != nil {
		return fmt.Errorf("view: unmap %s: %w", m.path, err)
	}
	m.logger.Debug("unmapped file", "bytes", len(m.data))
	return nil
}
