package memory

import (
	"context"
	"sync"

	"github.com/mwantia/fsattr/data"
	"github.com/tidwall/btree"
)

// MemoryBackend keeps status records in process memory.
// Keys are indexed in a B-tree mapping path to record ID.
type MemoryBackend struct {
	mu sync.RWMutex

	keys     *btree.Map[string, string]
	statuses map[string]*data.FileStatus
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		keys:     btree.NewMap[string, string](0),
		statuses: make(map[string]*data.FileStatus),
	}
}

// Name returns the identifier name defined for this backend
func (*MemoryBackend) Name() string {
	return "memory"
}

// Open is part of the lifecycle behaviour and gets called before first use.
func (mb *MemoryBackend) Open(ctx context.Context) error {
	return nil
}

// Close is part of the lifecycle behaviour and drops every stored record.
func (mb *MemoryBackend) Close(ctx context.Context) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	mb.keys.Clear()
	clear(mb.statuses)

	return nil
}
