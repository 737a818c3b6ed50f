package sink

import (
	"bytes"
	"errors"
	"io"
	"sync"
)

// MemContext is an in-memory Context that records every open in order. It
// backs tests and callers that post-process generated output before
// persisting it.
type MemContext struct {
	mu    sync.Mutex
	order []string
	files map[string]*memFile
}

// Mem returns an empty in-memory sink context.
func Mem() *MemContext {
	return &MemContext{files: make(map[string]*memFile)}
}

func (m *MemContext) Open(path string) (io.WriteCloser, error) {
	if path == "" {
		return nil, errors.New("sink: path is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	file := &memFile{}
	if _, exists := m.files[path]; !exists {
		m.order = append(m.order, path)
	}
	m.files[path] = file
	return file, nil
}

// Paths returns every opened path in first-open order.
func (m *MemContext) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.order...)
}

// OpenCount reports how many distinct paths were opened.
func (m *MemContext) OpenCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.order)
}

// Content returns the bytes written to path.
func (m *MemContext) Content(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	file, ok := m.files[path]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), file.buf.Bytes()...), true
}

// Closed reports whether the sink opened for path was closed.
func (m *MemContext) Closed(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	file, ok := m.files[path]
	return ok && file.closed
}

type memFile struct {
	buf    bytes.Buffer
	closed bool
}

func (f *memFile) Write(p []byte) (int, error) {
	if f.closed {
		return 0, errors.New("sink: write after close")
	}
	return f.buf.Write(p)
}

func (f *memFile) Close() error {
	f.closed = true
	return nil
}
