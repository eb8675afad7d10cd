package yuv

import (
	"bytes"
	"io"
	"io/fs"
	"sync"
)

// memFS keeps streams in memory and records the order they are opened and
// created in.
type memFS struct {
	mu      sync.Mutex
	files   map[string][]byte
	opens   []string
	creates []string
}

func newMemFS() *memFS {
	return &memFS{files: map[string][]byte{}}
}

func (m *memFS) Open(name string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	m.opens = append(m.opens, name)
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memFS) Create(name string) (io.WriteCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates = append(m.creates, name)
	return &memFile{fs: m, name: name}, nil
}

type memFile struct {
	fs   *memFS
	name string
	buf  bytes.Buffer
}

func (f *memFile) Write(p []byte) (int, error) { return f.buf.Write(p) }

func (f *memFile) Close() error {
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()
	f.fs.files[f.name] = f.buf.Bytes()
	return nil
}
