package fsattr

import (
	"context"
	"time"

	"github.com/mwantia/fsattr/backend"
	"github.com/mwantia/fsattr/data"
	"github.com/mwantia/fsattr/data/errors"
	"github.com/mwantia/fsattr/log"
)

// FileSystem is a Client backed by a StatusBackend.
type FileSystem struct {
	backend      backend.StatusBackend
	logger       *log.Logger
	maxLinkDepth int
}

func NewFileSystem(b backend.StatusBackend, opts ...FileSystemOption) (*FileSystem, error) {
	options := newDefaultFileSystemOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	logger := options.Logger
	if logger == nil {
		var err error
		logger, err = log.NewLogger("fsattr", log.LoggerConfig{
			Level:      options.LogLevel,
			File:       options.LogFile,
			NoTerminal: options.NoTerminalLog,
		})
		if err != nil {
			return nil, err
		}
	}

	return &FileSystem{
		backend:      b,
		logger:       logger.Named(b.Name()),
		maxLinkDepth: options.MaxLinkDepth,
	}, nil
}

// Open opens the underlying backend.
func (fs *FileSystem) Open(ctx context.Context) error {
	if err := fs.backend.Open(ctx); err != nil {
		return err
	}

	fs.logger.Debug("opened backend")
	return nil
}

// Close closes the underlying backend.
func (fs *FileSystem) Close(ctx context.Context) error {
	fs.logger.Debug("closing backend")
	return fs.backend.Close(ctx)
}

// Path returns a handle for name after normalizing it to an absolute path.
func (fs *FileSystem) Path(name string) (*FilePath, error) {
	resolved, err := data.ToAbsolutePath(name)
	if err != nil {
		return nil, err
	}

	return &FilePath{
		fs:   fs,
		path: resolved,
	}, nil
}

// GetFileStatus returns the status of path, following symbolic links.
func (fs *FileSystem) GetFileStatus(ctx context.Context, path string) (*data.FileStatus, error) {
	current := path
	for depth := 0; ; depth++ {
		status, err := fs.backend.ReadStatus(ctx, current)
		if err != nil {
			return nil, err
		}

		if !status.IsSymlink() {
			return status, nil
		}

		if depth >= fs.maxLinkDepth {
			return nil, errors.TooManyLinks(path, depth)
		}

		target, err := data.ResolveLink(current, status.Symlink)
		if err != nil {
			return nil, err
		}

		fs.logger.Debug("following link '%s' -> '%s'", current, target)
		current = target
	}
}

// GetFileLinkStatus returns the status of path without following links.
func (fs *FileSystem) GetFileLinkStatus(ctx context.Context, path string) (*data.FileStatus, error) {
	return fs.backend.ReadStatus(ctx, path)
}

// CreateStatus registers a new status record with the backend.
func (fs *FileSystem) CreateStatus(ctx context.Context, status *data.FileStatus) error {
	path, err := data.ToAbsolutePath(status.Path)
	if err != nil {
		return err
	}

	record := status.Clone()
	record.Path = path

	return fs.backend.CreateStatus(ctx, record)
}

// DeleteStatus removes the status record of path.
func (fs *FileSystem) DeleteStatus(ctx context.Context, path string) error {
	return fs.backend.DeleteStatus(ctx, path)
}

// SetTimes applies a partial timestamp update to path.
func (fs *FileSystem) SetTimes(ctx context.Context, path string, update *data.TimesUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	if err := fs.backend.UpdateTimes(ctx, path, update); err != nil {
		return err
	}

	fs.logger.Debug("set times of '%s' (mask %d)", path, update.Mask)
	return nil
}

// FilePath is the Path handle of an entry of a FileSystem.
type FilePath struct {
	fs   *FileSystem
	path string
}

func (p *FilePath) Client() Client {
	return p.fs
}

func (p *FilePath) ResolvedPath() string {
	return p.path
}

func (p *FilePath) String() string {
	return p.path
}

func (p *FilePath) SetTimes(ctx context.Context, modified, accessed, created *time.Time) error {
	return p.fs.SetTimes(ctx, p.path, data.NewTimesUpdate(modified, accessed, created))
}

// View returns an attribute view of this path in namespace.
func (p *FilePath) View(namespace Namespace, opts ...ViewOption) *AttributeView {
	if len(opts) == 0 {
		opts = []ViewOption{WithViewLogger(p.fs.logger)}
	}

	return NewAttributeView(p, namespace, opts...)
}
