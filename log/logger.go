package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a small leveled logger shared by attribute views and backends.
// Children created through Named share the parent's writer.
type Logger struct {
	mu     *sync.Mutex
	writer io.Writer

	Name  string
	Level LogLevel

	TimeFormat string
	NoColor    bool
	JSON       bool
}

// LoggerConfig describes where and how log output is written.
type LoggerConfig struct {
	Level string
	// Path of a rotated log file; empty disables file output
	File string
	// Suppresses stdout output
	NoTerminal bool
	NoColor    bool
	JSON       bool

	Rotation *LoggerRotation
}

type LoggerRotation struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

type logEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Service   string `json:"service,omitempty"`
	Message   string `json:"message"`
}

// NewLogger creates a logger from config, writing to stdout and/or a rotated file.
func NewLogger(name string, config LoggerConfig) (*Logger, error) {
	level, err := Parse(config.Level)
	if err != nil {
		return nil, err
	}

	var writers []io.Writer
	if !config.NoTerminal {
		writers = append(writers, os.Stdout)
	}

	if config.File != "" {
		rotation := config.Rotation
		if rotation == nil {
			rotation = &LoggerRotation{
				MaxSize:    128,
				MaxBackups: 5,
				MaxAge:     16,
			}
		}

		writers = append(writers, &lumberjack.Logger{
			Filename:   config.File,
			MaxSize:    rotation.MaxSize,
			MaxBackups: rotation.MaxBackups,
			MaxAge:     rotation.MaxAge,
			Compress:   rotation.Compress,
		})
	}

	if len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}

	return &Logger{
		mu:         &sync.Mutex{},
		writer:     io.MultiWriter(writers...),
		Name:       name,
		Level:      level,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    config.NoColor || config.NoTerminal,
		JSON:       config.JSON,
	}, nil
}

// NewWriterLogger creates an uncolored logger writing to w.
func NewWriterLogger(name string, level LogLevel, w io.Writer) *Logger {
	return &Logger{
		mu:         &sync.Mutex{},
		writer:     w,
		Name:       name,
		Level:      level,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
}

// Discard returns a logger that drops every message.
func Discard() *Logger {
	return NewWriterLogger("", Off, io.Discard)
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level LogLevel) bool {
	return l != nil && l.Level != Off && level >= l.Level
}

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	if !l.Enabled(level) {
		return
	}

	timestamp := time.Now().Format(l.TimeFormat)
	formatted := fmt.Sprintf(msg, args...)

	var line string
	if l.JSON {
		entry := logEntry{
			Timestamp: timestamp,
			Level:     level.String(),
			Service:   l.Name,
			Message:   formatted,
		}

		bytes, _ := json.Marshal(entry)
		line = string(bytes)
	} else {
		var sb strings.Builder
		fmt.Fprintf(&sb, "[%s] %-5s", timestamp, level)
		if l.Name != "" {
			fmt.Fprintf(&sb, " [%s]", l.Name)
		}
		sb.WriteString(" ")
		sb.WriteString(formatted)

		line = sb.String()
		if !l.NoColor {
			line = Color(level) + line + colorReset
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.writer, line)
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(Debug, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(Info, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(Warn, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(Error, msg, args...)
}

// Named returns a child logger whose name is appended to the parent's.
func (l *Logger) Named(name string) *Logger {
	child := *l
	if l.Name != "" {
		child.Name = l.Name + "/" + name
	} else {
		child.Name = name
	}

	return &child
}
