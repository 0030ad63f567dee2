package fsattr

import (
	"time"

	"github.com/mwantia/fsattr/data"
)

// FileKey is an opaque, comparable identity of a filesystem entry.
type FileKey struct {
	id string
}

func (k FileKey) String() string {
	return k.id
}

// FileAttributes is an immutable snapshot of one native status record.
// Every accessor is a pure projection of that record.
type FileAttributes struct {
	status *data.FileStatus
}

func newFileAttributes(status *data.FileStatus) *FileAttributes {
	return &FileAttributes{
		status: status.Clone(),
	}
}

// Size returns the size in bytes; directories always report 0.
func (a *FileAttributes) Size() int64 {
	if a.status.IsDir() {
		return 0
	}
	return a.status.Length
}

func (a *FileAttributes) CreationTime() time.Time {
	return a.status.CreateTime
}

func (a *FileAttributes) LastAccessTime() time.Time {
	return a.status.AccessTime
}

func (a *FileAttributes) LastModifiedTime() time.Time {
	return a.status.ModifyTime
}

// Exactly one of the four type predicates is true for every snapshot.

func (a *FileAttributes) IsDirectory() bool {
	return a.status.Type() == data.FileTypeDirectory
}

func (a *FileAttributes) IsRegularFile() bool {
	return a.status.Type() == data.FileTypeFile
}

func (a *FileAttributes) IsSymbolicLink() bool {
	return a.status.Type() == data.FileTypeSymlink
}

func (a *FileAttributes) IsOther() bool {
	return a.status.Type() == data.FileTypeOther
}

// FileKey returns the backend assigned ID, or the path when there is none.
func (a *FileAttributes) FileKey() FileKey {
	if a.status.ID != "" {
		return FileKey{id: a.status.ID}
	}
	return FileKey{id: a.status.Path}
}

// BlockSize returns the native block size.
func (a *FileAttributes) BlockSize() int64 {
	return a.status.BlockSize
}

// Len returns the native logical length, reported verbatim.
func (a *FileAttributes) Len() int64 {
	return a.status.Length
}

// Replication returns the native block replication factor.
func (a *FileAttributes) Replication() int16 {
	return a.status.Replication
}

// FileStatus returns a copy of the wrapped native record.
func (a *FileAttributes) FileStatus() *data.FileStatus {
	return a.status.Clone()
}
