package fsattr

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mwantia/fsattr/data"
	"github.com/mwantia/fsattr/data/errors"
	"github.com/mwantia/fsattr/log"
)

// Client is the native filesystem client a view reads status records from.
type Client interface {
	// GetFileStatus returns the status of path, following symbolic links.
	GetFileStatus(ctx context.Context, path string) (*data.FileStatus, error)
	// GetFileLinkStatus returns the status of path itself.
	GetFileLinkStatus(ctx context.Context, path string) (*data.FileStatus, error)
}

// Path is a caller-owned handle of a single filesystem entry.
type Path interface {
	Client() Client
	ResolvedPath() string
	// SetTimes updates the given timestamps; nil leaves a timestamp unchanged.
	SetTimes(ctx context.Context, modified, accessed, created *time.Time) error
}

// AttributeView exposes the metadata of one path through the attribute
// vocabulary of one namespace. It holds no mutable state.
type AttributeView struct {
	path      Path
	namespace Namespace
	logger    *log.Logger
}

// NewAttributeView creates a view of path in namespace.
// It panics if path is nil or namespace is not one of the defined constants.
func NewAttributeView(path Path, namespace Namespace, opts ...ViewOption) *AttributeView {
	if path == nil {
		panic("fsattr: attribute view requires a path")
	}
	if !namespace.valid() {
		panic(fmt.Sprintf("fsattr: unknown attribute namespace %d", int(namespace)))
	}

	options := &ViewOptions{}
	for _, opt := range opts {
		opt(options)
	}

	logger := options.Logger
	if logger == nil {
		logger = log.Discard()
	}

	return &AttributeView{
		path:      path,
		namespace: namespace,
		logger:    logger,
	}
}

// GetAttributeView creates a view for the namespace called name.
// Unknown names yield no view; an empty name or nil path is a caller error
// and panics.
func GetAttributeView(path Path, name string, opts ...ViewOption) (*AttributeView, bool) {
	if name == "" {
		panic("fsattr: attribute view requires a namespace name")
	}

	namespace, ok := ParseNamespace(name)
	if !ok {
		return nil, false
	}

	return NewAttributeView(path, namespace, opts...), true
}

// Name returns "basic" or "hadoop".
func (v *AttributeView) Name() string {
	return v.namespace.String()
}

func (v *AttributeView) Namespace() Namespace {
	return v.namespace
}

// ReadAttributes fetches a fresh snapshot of the path's native status.
func (v *AttributeView) ReadAttributes(ctx context.Context, opts ...LinkOption) (*FileAttributes, error) {
	client := v.path.Client()
	resolved := v.path.ResolvedPath()

	var status *data.FileStatus
	var err error
	if followLinks(opts) {
		status, err = client.GetFileStatus(ctx, resolved)
	} else {
		status, err = client.GetFileLinkStatus(ctx, resolved)
	}
	if err != nil {
		return nil, err
	}

	return newFileAttributes(status), nil
}

// ReadAttributeMap reads the attributes named by selector from one snapshot.
// The selector is "*" or a comma-separated list of names. Names that are
// unknown or not visible in the view's namespace are left out.
func (v *AttributeView) ReadAttributeMap(ctx context.Context, selector string, opts ...LinkOption) (*Attributes, error) {
	attrs, err := v.ReadAttributes(ctx, opts...)
	if err != nil {
		return nil, err
	}

	if selector == "*" {
		result := newAttributes(len(attributeTable))
		for _, id := range AttributeIDs() {
			if value, ok := id.project(v.namespace, attrs); ok {
				result.set(id.String(), value)
			}
		}

		v.logger.Debug("read %d attributes of '%s' in namespace %s", result.Len(), v.path.ResolvedPath(), v.namespace)
		return result, nil
	}

	names := strings.Split(selector, ",")
	result := newAttributes(len(names))
	for _, name := range names {
		id, ok := ParseAttributeID(name)
		if !ok {
			continue
		}

		if value, ok := id.project(v.namespace, attrs); ok {
			result.set(name, value)
		}
	}

	v.logger.Debug("read %d of %d requested attributes of '%s'", result.Len(), len(names), v.path.ResolvedPath())
	return result, nil
}

// SetTimes updates the path's timestamps; nil leaves a timestamp unchanged.
func (v *AttributeView) SetTimes(ctx context.Context, modified, accessed, created *time.Time) error {
	if err := v.path.SetTimes(ctx, modified, accessed, created); err != nil {
		return err
	}

	v.logger.Debug("updated times of '%s'", v.path.ResolvedPath())
	return nil
}

// SetAttribute sets the timestamp attribute called name to value.
// Every other name, known or not, fails with data.ErrUnsupported.
func (v *AttributeView) SetAttribute(ctx context.Context, name string, value time.Time) error {
	id, ok := ParseAttributeID(name)
	if !ok || !id.Writable() {
		return errors.UnsupportedAttribute(name)
	}

	return v.SetTimeAttribute(ctx, TimeAttribute{id: id, value: value})
}

// SetTimeAttribute sets a single timestamp.
func (v *AttributeView) SetTimeAttribute(ctx context.Context, attr TimeAttribute) error {
	value := attr.value

	switch attr.id {
	case AttributeLastModifiedTime:
		return v.SetTimes(ctx, &value, nil, nil)
	case AttributeLastAccessTime:
		return v.SetTimes(ctx, nil, &value, nil)
	case AttributeCreationTime:
		return v.SetTimes(ctx, nil, nil, &value)
	default:
		return errors.UnsupportedAttribute(attr.id.String())
	}
}

// TimeAttribute pairs one writable timestamp attribute with its new value.
// Build it with ModifiedTime, AccessedTime or CreatedTime.
type TimeAttribute struct {
	id    AttributeID
	value time.Time
}

func ModifiedTime(t time.Time) TimeAttribute {
	return TimeAttribute{id: AttributeLastModifiedTime, value: t}
}

func AccessedTime(t time.Time) TimeAttribute {
	return TimeAttribute{id: AttributeLastAccessTime, value: t}
}

func CreatedTime(t time.Time) TimeAttribute {
	return TimeAttribute{id: AttributeCreationTime, value: t}
}

// ID returns the attribute being set.
func (ta TimeAttribute) ID() AttributeID {
	return ta.id
}

func (ta TimeAttribute) Value() time.Time {
	return ta.value
}
