package memory

import (
	"context"
	"time"

	"github.com/mwantia/fsattr/data"
	"github.com/mwantia/fsattr/data/errors"
)

func (mb *MemoryBackend) CreateStatus(ctx context.Context, status *data.FileStatus) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	if _, exists := mb.keys.Get(status.Path); exists {
		return errors.Exist(status.Path)
	}

	stored := status.Clone()
	// Populate unique ID if not already defined
	if stored.ID == "" {
		stored.ID = data.NewStatusID()
	}
	if stored.CreateTime.IsZero() {
		stored.CreateTime = time.Now()
	}

	mb.keys.Set(stored.Path, stored.ID)
	mb.statuses[stored.ID] = stored

	return nil
}

func (mb *MemoryBackend) ReadStatus(ctx context.Context, key string) (*data.FileStatus, error) {
	mb.mu.RLock()
	defer mb.mu.RUnlock()

	status, err := mb.lookup(key)
	if err != nil {
		return nil, err
	}

	return status.Clone(), nil
}

func (mb *MemoryBackend) UpdateTimes(ctx context.Context, key string, update *data.TimesUpdate) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	status, err := mb.lookup(key)
	if err != nil {
		return err
	}

	update.Apply(status)
	return nil
}

func (mb *MemoryBackend) DeleteStatus(ctx context.Context, key string) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	id, exists := mb.keys.Delete(key)
	if !exists {
		return errors.NotExist(key)
	}

	delete(mb.statuses, id)
	return nil
}

// lookup MUST be called while holding at least a read lock.
func (mb *MemoryBackend) lookup(key string) (*data.FileStatus, error) {
	id, exists := mb.keys.Get(key)
	if !exists {
		return nil, errors.NotExist(key)
	}

	status, exists := mb.statuses[id]
	if !exists {
		return nil, errors.NotExist(key)
	}

	return status, nil
}
