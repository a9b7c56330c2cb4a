package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// KV is the persistence boundary: one durable slot holding the serialized
// trip collection. Implementations must treat a missing slot as (nil, nil).
// The store treats every Load error as an empty collection and swallows
// Save errors.
type KV interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// FileKV keeps the collection in a single JSON file.
type FileKV struct {
	path string
}

// NewFileKV creates a file-backed slot at path. The parent directory is
// created on first save.
func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

func (f *FileKV) Load() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func (f *FileKV) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0644)
}

// MemoryKV is an in-memory slot: the no-environment fallback and the
// test double.
type MemoryKV struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryKV creates an empty in-memory slot.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{}
}

func (m *MemoryKV) Load() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, nil
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

func (m *MemoryKV) Save(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make([]byte, len(data))
	copy(m.data, data)
	return nil
}
