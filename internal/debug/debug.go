package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "GUI_DEBUG"

var (
	logFile *os.File
	logger  *log.Logger
	mu      sync.Mutex
)

// Logger returns the process debug logger, creating it on first use.
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		logger = newLogger(os.Getenv(EnvVar))
	}
	return logger
}

// SetLogger replaces the process debug logger. Passing nil restores the
// environment-driven default on next use.
func SetLogger(l *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Open returns a logger writing to the file at path on its own file handle,
// leaving the process logger alone. The caller closes the returned Closer.
func Open(path string, level log.Level) (*log.Logger, io.Closer, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, nil, err
	}
	l := log.NewWithOptions(f, options())
	l.SetLevel(level)
	return l, f, nil
}

// Close closes the debug log file, if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// newLogger builds the default logger. Caller must hold mu.
func newLogger(path string) *log.Logger {
	if path == "" {
		return log.New(io.Discard)
	}
	w, err := openLocked(path)
	if err != nil {
		l := log.New(os.Stderr)
		l.Warn("debug log unavailable", "path", path, "err", err)
		return log.New(io.Discard)
	}
	return log.NewWithOptions(w, options())
}

// openLocked opens the process log file, replacing any previous one.
// Caller must hold mu.
func openLocked(path string) (io.Writer, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return f, nil
}

// openFile opens path for appending, creating its directory.
func openFile(path string) (*os.File, error) {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return f, nil
}

func options() log.Options {
	return log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           log.DebugLevel,
		Prefix:          "gui",
	}
}
