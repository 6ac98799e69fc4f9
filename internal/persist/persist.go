// Package persist is the snapshot persistence port for the catalog and the
// order ledger. Each collection is one independently-keyed JSON document;
// writes are fire-and-forget from the caller's perspective.
package persist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned by Load when no snapshot exists for the key.
var ErrNotFound = errors.New("snapshot not found")

// Port loads and saves raw JSON snapshots by key.
type Port interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// FilePort stores each snapshot as <dir>/<key>.json.
type FilePort struct {
	dir string
}

// NewFilePort creates the data directory if needed.
func NewFilePort(dir string) (*FilePort, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FilePort{dir: dir}, nil
}

func (p *FilePort) path(key string) string {
	return filepath.Join(p.dir, key+".json")
}

func (p *FilePort) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(p.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read snapshot %q: %w", key, err)
	}
	return data, nil
}

func (p *FilePort) Save(key string, data []byte) error {
	tmp := p.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %q: %w", key, err)
	}
	if err := os.Rename(tmp, p.path(key)); err != nil {
		return fmt.Errorf("replace snapshot %q: %w", key, err)
	}
	return nil
}

// MemPort is an in-memory Port for tests.
type MemPort struct {
	mu      sync.Mutex
	data    map[string][]byte
	SaveErr error // returned by Save when set
	LoadErr error // returned by Load when set
}

func NewMemPort() *MemPort {
	return &MemPort{data: make(map[string][]byte)}
}

func (p *MemPort) Load(key string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.LoadErr != nil {
		return nil, p.LoadErr
	}
	data, ok := p.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

func (p *MemPort) Save(key string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.SaveErr != nil {
		return p.SaveErr
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	p.data[key] = cp
	return nil
}

// Stored returns the last saved snapshot for key, or nil.
func (p *MemPort) Stored(key string) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data[key]
}

// Seed pre-loads a snapshot, bypassing SaveErr.
func (p *MemPort) Seed(key string, data []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data[key] = data
}
