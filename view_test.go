package fsattr_test

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/mwantia/fsattr"
	"github.com/mwantia/fsattr/data"
)

// stubClient returns a fresh status on every call so that values taken from
// different calls can be told apart: Length equals the call number.
type stubClient struct {
	status *data.FileStatus
	err    error

	statCalls int
	linkCalls int
}

func (c *stubClient) next() (*data.FileStatus, error) {
	if c.err != nil {
		return nil, c.err
	}

	status := c.status.Clone()
	status.Length = int64(c.statCalls + c.linkCalls)
	return status, nil
}

func (c *stubClient) GetFileStatus(ctx context.Context, path string) (*data.FileStatus, error) {
	c.statCalls++
	return c.next()
}

func (c *stubClient) GetFileLinkStatus(ctx context.Context, path string) (*data.FileStatus, error) {
	c.linkCalls++
	return c.next()
}

type setTimesCall struct {
	modified, accessed, created *time.Time
}

type stubPath struct {
	client *stubClient
	calls  []setTimesCall
	err    error
}

func (p *stubPath) Client() fsattr.Client {
	return p.client
}

func (p *stubPath) ResolvedPath() string {
	return "/data/file.bin"
}

func (p *stubPath) SetTimes(ctx context.Context, modified, accessed, created *time.Time) error {
	p.calls = append(p.calls, setTimesCall{modified, accessed, created})
	return p.err
}

func newStubPath() *stubPath {
	status := data.NewFileStatus("/data/file.bin", 0, 0644)
	status.ID = "file-1"
	status.BlockSize = 64 * 1024 * 1024
	status.Replication = 2

	return &stubPath{client: &stubClient{status: status}}
}

var (
	basicNames  = []string{"size", "creationTime", "lastAccessTime", "lastModifiedTime", "isDirectory", "isRegularFile", "isSymbolicLink", "isOther", "fileKey"}
	hadoopNames = []string{"blockSize", "len", "replication"}
)

func TestGetAttributeView_Names(t *testing.T) {
	path := newStubPath()

	for _, name := range []string{"basic", "hadoop"} {
		view, ok := fsattr.GetAttributeView(path, name)
		if !ok {
			t.Fatalf("Expected view for %q", name)
		}
		if view.Name() != name {
			t.Errorf("Expected name %q, got %q", name, view.Name())
		}
	}

	for _, name := range []string{"posix", "Basic", "dos"} {
		if view, ok := fsattr.GetAttributeView(path, name); ok || view != nil {
			t.Errorf("Expected no view for %q", name)
		}
	}
}

func TestGetAttributeView_EmptyNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for empty namespace name")
		}
	}()

	fsattr.GetAttributeView(newStubPath(), "")
}

func TestGetAttributeView_NilPathPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for nil path")
		}
	}()

	fsattr.GetAttributeView(nil, "basic")
}

func TestNewAttributeView_UnknownNamespacePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for unknown namespace value")
		}
	}()

	fsattr.NewAttributeView(newStubPath(), fsattr.Namespace(7))
}

func TestReadAttributeMap_WildcardBasic(t *testing.T) {
	ctx := t.Context()
	view := fsattr.NewAttributeView(newStubPath(), fsattr.NamespaceBasic)

	attrs, err := view.ReadAttributeMap(ctx, "*")
	if err != nil {
		t.Fatalf("ReadAttributeMap failed: %v", err)
	}

	if !slices.Equal(attrs.Keys(), basicNames) {
		t.Errorf("Expected keys %v, got %v", basicNames, attrs.Keys())
	}
	for _, name := range hadoopNames {
		if attrs.Has(name) {
			t.Errorf("Expected %q to be hidden in basic namespace", name)
		}
	}
}

func TestReadAttributeMap_WildcardHadoop(t *testing.T) {
	ctx := t.Context()
	view := fsattr.NewAttributeView(newStubPath(), fsattr.NamespaceHadoop)

	attrs, err := view.ReadAttributeMap(ctx, "*")
	if err != nil {
		t.Fatalf("ReadAttributeMap failed: %v", err)
	}

	expected := append(slices.Clone(basicNames), hadoopNames...)
	if attrs.Len() != 12 {
		t.Errorf("Expected 12 attributes, got %d", attrs.Len())
	}
	if !slices.Equal(attrs.Keys(), expected) {
		t.Errorf("Expected keys %v, got %v", expected, attrs.Keys())
	}

	if value, _ := attrs.Get("blockSize"); value != int64(64*1024*1024) {
		t.Errorf("Expected blockSize 64MiB, got %v", value)
	}
	if value, _ := attrs.Get("replication"); value != int16(2) {
		t.Errorf("Expected replication 2, got %v", value)
	}
}

func TestReadAttributeMap_SingleStatPerCall(t *testing.T) {
	ctx := t.Context()
	path := newStubPath()
	view := fsattr.NewAttributeView(path, fsattr.NamespaceHadoop)

	for call := 1; call <= 3; call++ {
		attrs, err := view.ReadAttributeMap(ctx, "size,len,lastModifiedTime,fileKey")
		if err != nil {
			t.Fatalf("ReadAttributeMap failed: %v", err)
		}

		if path.client.statCalls != call {
			t.Fatalf("Expected %d stat calls, got %d", call, path.client.statCalls)
		}

		size, _ := attrs.Get("size")
		length, _ := attrs.Get("len")
		if size != int64(call) || length != int64(call) {
			t.Errorf("Expected size and len from snapshot %d, got %v and %v", call, size, length)
		}
	}
}

func TestReadAttributeMap_Lenient(t *testing.T) {
	ctx := t.Context()
	view := fsattr.NewAttributeView(newStubPath(), fsattr.NamespaceBasic)

	tests := map[string][]string{
		"bogusName,size":       {"size"},
		"blockSize,size,len":   {"size"},
		"":                     {},
		"size,,isDirectory":    {"size", "isDirectory"},
		"fileKey,size,fileKey": {"fileKey", "size"},
		" size":                {},
	}

	for selector, expected := range tests {
		attrs, err := view.ReadAttributeMap(ctx, selector)
		if err != nil {
			t.Fatalf("ReadAttributeMap(%q) failed: %v", selector, err)
		}

		if !slices.Equal(attrs.Keys(), expected) {
			t.Errorf("ReadAttributeMap(%q): expected %v, got %v", selector, expected, attrs.Keys())
		}
	}
}

func TestReadAttributeMap_StatFailure(t *testing.T) {
	ctx := t.Context()
	path := newStubPath()
	path.client.err = data.ErrNotExist
	view := fsattr.NewAttributeView(path, fsattr.NamespaceHadoop)

	attrs, err := view.ReadAttributeMap(ctx, "*")
	if !errors.Is(err, data.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
	if attrs != nil {
		t.Error("Expected no partial result")
	}
}

func TestReadAttributeMap_NoFollowLinks(t *testing.T) {
	ctx := t.Context()
	path := newStubPath()
	view := fsattr.NewAttributeView(path, fsattr.NamespaceBasic)

	if _, err := view.ReadAttributeMap(ctx, "size", fsattr.NoFollowLinks); err != nil {
		t.Fatalf("ReadAttributeMap failed: %v", err)
	}

	if path.client.linkCalls != 1 || path.client.statCalls != 0 {
		t.Errorf("Expected one link stat and no stat, got %d and %d", path.client.linkCalls, path.client.statCalls)
	}
}

func TestReadAttributes_RoundTrip(t *testing.T) {
	ctx := t.Context()
	path := newStubPath()
	view := fsattr.NewAttributeView(path, fsattr.NamespaceBasic)

	// The stub reports the call number as length; skip to the 42nd call
	path.client.statCalls = 41

	attrs, err := view.ReadAttributes(ctx)
	if err != nil {
		t.Fatalf("ReadAttributes failed: %v", err)
	}

	if attrs.Size() != 42 {
		t.Errorf("Expected size 42, got %d", attrs.Size())
	}
	if attrs.IsDirectory() {
		t.Error("Expected no directory")
	}
	if attrs.FileKey().String() != "file-1" {
		t.Errorf("Expected file key 'file-1', got %q", attrs.FileKey())
	}

	bag, err := view.ReadAttributeMap(ctx, "fileKey")
	if err != nil {
		t.Fatalf("ReadAttributeMap failed: %v", err)
	}
	if key, _ := bag.Get("fileKey"); key != attrs.FileKey() {
		t.Errorf("Expected equal file keys, got %v and %v", key, attrs.FileKey())
	}
}

func TestSetAttribute_Strict(t *testing.T) {
	ctx := t.Context()
	now := time.Now()

	for _, ns := range []fsattr.Namespace{fsattr.NamespaceBasic, fsattr.NamespaceHadoop} {
		path := newStubPath()
		view := fsattr.NewAttributeView(path, ns)

		for _, name := range []string{"size", "blockSize", "len", "replication", "isDirectory", "fileKey", "bogus", ""} {
			err := view.SetAttribute(ctx, name, now)
			if !errors.Is(err, data.ErrUnsupported) {
				t.Errorf("%s: expected ErrUnsupported for %q, got %v", ns, name, err)
				continue
			}
			if !strings.Contains(err.Error(), "'"+name+"'") {
				t.Errorf("%s: expected error to name %q, got %v", ns, name, err)
			}
		}

		if len(path.calls) != 0 {
			t.Errorf("%s: expected no SetTimes calls, got %d", ns, len(path.calls))
		}
	}
}

func TestSetAttribute_Routing(t *testing.T) {
	ctx := t.Context()
	value := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		check func(call setTimesCall) bool
	}{
		{"lastModifiedTime", func(c setTimesCall) bool {
			return c.modified != nil && c.modified.Equal(value) && c.accessed == nil && c.created == nil
		}},
		{"lastAccessTime", func(c setTimesCall) bool {
			return c.modified == nil && c.accessed != nil && c.accessed.Equal(value) && c.created == nil
		}},
		{"creationTime", func(c setTimesCall) bool {
			return c.modified == nil && c.accessed == nil && c.created != nil && c.created.Equal(value)
		}},
	}

	for _, test := range tests {
		path := newStubPath()
		view := fsattr.NewAttributeView(path, fsattr.NamespaceBasic)

		if err := view.SetAttribute(ctx, test.name, value); err != nil {
			t.Fatalf("SetAttribute(%q) failed: %v", test.name, err)
		}

		if len(path.calls) != 1 {
			t.Fatalf("SetAttribute(%q): expected 1 SetTimes call, got %d", test.name, len(path.calls))
		}
		if !test.check(path.calls[0]) {
			t.Errorf("SetAttribute(%q): unexpected delegation %+v", test.name, path.calls[0])
		}
	}
}

func TestSetTimeAttribute(t *testing.T) {
	ctx := t.Context()
	value := time.Now()
	path := newStubPath()
	view := fsattr.NewAttributeView(path, fsattr.NamespaceHadoop)

	for _, attr := range []fsattr.TimeAttribute{fsattr.ModifiedTime(value), fsattr.AccessedTime(value), fsattr.CreatedTime(value)} {
		if !attr.ID().Writable() {
			t.Errorf("Expected %s to be writable", attr.ID())
		}
		if err := view.SetTimeAttribute(ctx, attr); err != nil {
			t.Fatalf("SetTimeAttribute(%s) failed: %v", attr.ID(), err)
		}
	}

	if len(path.calls) != 3 {
		t.Errorf("Expected 3 SetTimes calls, got %d", len(path.calls))
	}

	if err := view.SetTimeAttribute(ctx, fsattr.TimeAttribute{}); !errors.Is(err, data.ErrUnsupported) {
		t.Errorf("Expected ErrUnsupported for zero TimeAttribute, got %v", err)
	}
}

func TestSetTimes_PropagatesFailure(t *testing.T) {
	ctx := t.Context()
	path := newStubPath()
	path.err = data.ErrNotExist
	view := fsattr.NewAttributeView(path, fsattr.NamespaceBasic)

	now := time.Now()
	if err := view.SetTimes(ctx, &now, nil, nil); !errors.Is(err, data.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
	if err := view.SetAttribute(ctx, "lastAccessTime", now); !errors.Is(err, data.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}
