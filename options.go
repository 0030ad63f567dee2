package fsattr

import "github.com/mwantia/fsattr/log"

// LinkOption changes how symbolic links are handled by a read.
type LinkOption int

const (
	// NoFollowLinks reads the link itself instead of its target.
	NoFollowLinks LinkOption = iota + 1
)

func followLinks(opts []LinkOption) bool {
	for _, opt := range opts {
		if opt == NoFollowLinks {
			return false
		}
	}

	return true
}

type FileSystemOptions struct {
	Logger        *log.Logger
	LogLevel      string
	LogFile       string
	NoTerminalLog bool
	MaxLinkDepth  int
}

type FileSystemOption func(*FileSystemOptions) error

func newDefaultFileSystemOptions() *FileSystemOptions {
	return &FileSystemOptions{
		LogLevel:     "info",
		MaxLinkDepth: 8,
	}
}

// WithLogger makes the filesystem log through an existing logger.
func WithLogger(logger *log.Logger) FileSystemOption {
	return func(opts *FileSystemOptions) error {
		opts.Logger = logger
		return nil
	}
}

func WithLogLevel(level string) FileSystemOption {
	return func(opts *FileSystemOptions) error {
		if _, err := log.Parse(level); err != nil {
			return err
		}

		opts.LogLevel = level
		return nil
	}
}

func WithLogFile(logFile string) FileSystemOption {
	return func(opts *FileSystemOptions) error {
		opts.LogFile = logFile
		return nil
	}
}

func WithoutTerminalLog() FileSystemOption {
	return func(opts *FileSystemOptions) error {
		opts.NoTerminalLog = true
		return nil
	}
}

// WithMaxLinkDepth limits how many symbolic links a single lookup follows.
func WithMaxLinkDepth(depth int) FileSystemOption {
	return func(opts *FileSystemOptions) error {
		opts.MaxLinkDepth = max(depth, 0)
		return nil
	}
}

type ViewOptions struct {
	Logger *log.Logger
}

type ViewOption func(*ViewOptions)

// WithViewLogger makes an attribute view log its reads and writes.
func WithViewLogger(logger *log.Logger) ViewOption {
	return func(opts *ViewOptions) {
		opts.Logger = logger
	}
}
