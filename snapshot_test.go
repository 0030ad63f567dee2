package fsattr

import (
	"testing"
	"time"

	"github.com/mwantia/fsattr/data"
)

func TestFileAttributes_ExactlyOneType(t *testing.T) {
	tests := map[string]*data.FileStatus{
		"file":      data.NewFileStatus("/a", 10, 0644),
		"directory": data.NewDirectoryStatus("/b", 0755),
		"symlink":   data.NewSymlinkStatus("/c", "/a"),
		"socket":    data.NewStatus("/d", data.ModeSocket|0600, 0),
		"device":    data.NewStatus("/e", data.ModeDevice|data.ModeCharDevice|0600, 0),
		"pipe":      data.NewStatus("/f", data.ModeNamedPipe|0600, 0),
	}

	for name, status := range tests {
		attrs := newFileAttributes(status)
		flags := []bool{attrs.IsDirectory(), attrs.IsRegularFile(), attrs.IsSymbolicLink(), attrs.IsOther()}

		count := 0
		for _, flag := range flags {
			if flag {
				count++
			}
		}

		if count != 1 {
			t.Errorf("%s: expected exactly one type flag, got %v", name, flags)
		}
	}
}

func TestFileAttributes_Projection(t *testing.T) {
	status := data.NewFileStatus("/data/file.bin", 42, 0644)
	status.ModifyTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	status.AccessTime = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	status.CreateTime = time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	attrs := newFileAttributes(status)

	if attrs.Size() != 42 || attrs.Len() != 42 {
		t.Errorf("Expected size and len 42, got %d and %d", attrs.Size(), attrs.Len())
	}
	if !attrs.LastModifiedTime().Equal(status.ModifyTime) {
		t.Errorf("Unexpected modified time %v", attrs.LastModifiedTime())
	}
	if !attrs.LastAccessTime().Equal(status.AccessTime) {
		t.Errorf("Unexpected access time %v", attrs.LastAccessTime())
	}
	if !attrs.CreationTime().Equal(status.CreateTime) {
		t.Errorf("Unexpected creation time %v", attrs.CreationTime())
	}
	if attrs.BlockSize() != data.DefaultBlockSize || attrs.Replication() != data.DefaultReplication {
		t.Errorf("Unexpected block layout %d/%d", attrs.BlockSize(), attrs.Replication())
	}
	if attrs.FileKey().String() != status.ID {
		t.Errorf("Expected file key %q, got %q", status.ID, attrs.FileKey())
	}
}

func TestFileAttributes_SizeAndLenAreIndependent(t *testing.T) {
	status := data.NewDirectoryStatus("/dir", 0755)
	// Some namenodes report a non-zero length for directories
	status.Length = 4096

	attrs := newFileAttributes(status)
	if attrs.Size() != 0 {
		t.Errorf("Expected directory size 0, got %d", attrs.Size())
	}
	if attrs.Len() != 4096 {
		t.Errorf("Expected native len 4096, got %d", attrs.Len())
	}
}

func TestFileAttributes_Immutable(t *testing.T) {
	status := data.NewFileStatus("/a", 1, 0644)
	attrs := newFileAttributes(status)

	status.Length = 99
	attrs.FileStatus().Length = 100

	if attrs.Size() != 1 {
		t.Errorf("Expected snapshot to keep size 1, got %d", attrs.Size())
	}
}

func TestFileAttributes_FileKeyFallsBackToPath(t *testing.T) {
	status := data.NewFileStatus("/a", 1, 0644)
	status.ID = ""

	first := newFileAttributes(status)
	second := newFileAttributes(status)

	if first.FileKey() != second.FileKey() {
		t.Error("Expected equal file keys for the same path")
	}
	if first.FileKey().String() != "/a" {
		t.Errorf("Expected path as file key, got %q", first.FileKey())
	}
}

func TestAttributeID_Table(t *testing.T) {
	ids := AttributeIDs()
	if len(ids) != 12 {
		t.Fatalf("Expected 12 attribute IDs, got %d", len(ids))
	}

	for _, id := range ids {
		parsed, ok := ParseAttributeID(id.String())
		if !ok || parsed != id {
			t.Errorf("Expected %q to resolve to itself", id)
		}
	}

	for _, id := range []AttributeID{AttributeBlockSize, AttributeLen, AttributeReplication} {
		if id.Namespace() != NamespaceHadoop {
			t.Errorf("Expected %s to be gated by hadoop namespace", id)
		}
		if _, ok := id.project(NamespaceBasic, newFileAttributes(data.NewFileStatus("/a", 1, 0644))); ok {
			t.Errorf("Expected %s to be hidden in basic namespace", id)
		}
	}

	if _, ok := ParseAttributeID("Size"); ok {
		t.Error("Expected attribute names to be case-sensitive")
	}
}
