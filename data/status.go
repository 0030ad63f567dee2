package data

import (
	"encoding/json"
	"time"
)

// FileStatus is the native status record of a single filesystem entry,
// shaped after a namenode file status: length, block layout and times.
type FileStatus struct {
	// Unique identifier assigned by the backend (empty if unsupported)
	ID string `json:"id"`

	// Absolute path of the entry
	Path string `json:"path"`

	// Logical length in bytes (0 for directories)
	Length int64 `json:"length"`

	// Unix-style type and permission bits
	Mode FileMode `json:"mode"`

	// Link target, only set for symbolic links
	Symlink string `json:"symlink,omitempty"`

	// Block replication factor (0 for directories)
	Replication int16 `json:"replication"`

	// Block size in bytes (0 for directories)
	BlockSize int64 `json:"block_size"`

	ModifyTime time.Time `json:"modify_time"`
	AccessTime time.Time `json:"access_time"`
	CreateTime time.Time `json:"create_time"`

	Owner string `json:"owner,omitempty"`
	Group string `json:"group,omitempty"`
}

// IsDir returns true if this status describes a directory.
func (fs *FileStatus) IsDir() bool {
	return fs.Mode.IsDir()
}

// IsSymlink returns true if this status describes a symbolic link.
func (fs *FileStatus) IsSymlink() bool {
	return fs.Mode.IsSymlink()
}

// Type returns the file type described by the mode bits.
func (fs *FileStatus) Type() FileType {
	return fs.Mode.Type()
}

// Clone creates a copy of the status record.
func (fs *FileStatus) Clone() *FileStatus {
	clone := *fs
	return &clone
}

// Marshal provides JSON serialization for FileStatus.
func (fs *FileStatus) Marshal() ([]byte, error) {
	return json.Marshal(fs)
}

// Unmarshal provides JSON deserialization for FileStatus.
func (fs *FileStatus) Unmarshal(data []byte) error {
	return json.Unmarshal(data, fs)
}
