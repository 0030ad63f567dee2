package data

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultReplication is the replication factor given to new files.
	DefaultReplication int16 = 3
	// DefaultBlockSize is the block size given to new files (128 MiB).
	DefaultBlockSize int64 = 128 * 1024 * 1024
)

func NewStatus(path string, mode FileMode, length int64) *FileStatus {
	now := time.Now()

	return &FileStatus{
		ID:         NewStatusID(),
		Path:       path,
		Mode:       mode,
		Length:     length,
		ModifyTime: now,
		AccessTime: now,
		CreateTime: now,
	}
}

// NewFileStatus creates a status record for a regular file.
func NewFileStatus(path string, length int64, perm FileMode) *FileStatus {
	status := NewStatus(path, perm.Perm(), length)
	status.Replication = DefaultReplication
	status.BlockSize = DefaultBlockSize

	return status
}

// NewDirectoryStatus creates a status record for a directory.
func NewDirectoryStatus(path string, perm FileMode) *FileStatus {
	return NewStatus(path, perm.Perm()|ModeDir, 0)
}

// NewSymlinkStatus creates a status record for a symbolic link.
func NewSymlinkStatus(path string, target string) *FileStatus {
	status := NewStatus(path, ModeSymlink|0777, int64(len(target)))
	status.Symlink = target

	return status
}

// NewStatusID returns a new time-ordered identifier for a status record.
func NewStatusID() string {
	return uuid.Must(uuid.NewV7()).String()
}
