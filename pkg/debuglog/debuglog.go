package debuglog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultDir is where log files go when file logging is enabled
const DefaultDir = "/tmp/arpaint-debug"

// Logger provides component-tagged debug output for console and, optionally, a log file
type Logger struct {
	verbose bool
	out     io.Writer
	file    *os.File
	mu      sync.Mutex
}

// New creates a console logger. When toFile is set a session log file is also opened under
// DefaultDir; failure to open it only disables file logging.
func New(toFile, verbose bool) *Logger {
	l := &Logger{
		verbose: verbose,
		out:     os.Stdout,
	}

	if toFile {
		if err := os.MkdirAll(DefaultDir, 0755); err != nil {
			fmt.Printf("[DEBUG_LOGGER] Failed to create debug directory: %v\n", err)
			return l
		}
		name := fmt.Sprintf("arpaint_%s.log", time.Now().Format("2006-01-02_15-04-05"))
		f, err := os.OpenFile(filepath.Join(DefaultDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Printf("[DEBUG_LOGGER] Failed to open debug log: %v\n", err)
			return l
		}
		l.file = f
	}

	return l
}

// NewWithWriter creates a logger that writes only to w
func NewWithWriter(w io.Writer, verbose bool) *Logger {
	return &Logger{verbose: verbose, out: w}
}

// Msg writes a message tagged with its component
func (l *Logger) Msg(component, message string) {
	line := fmt.Sprintf("[%s][%s] %s\n", time.Now().Format("15:04:05.000"), component, message)

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprint(l.out, line)
	if l.file != nil {
		l.file.WriteString(line)
	}
}

// Verbose only outputs if verbose logging was requested
func (l *Logger) Verbose(component, message string) {
	if !l.verbose {
		return
	}
	l.Msg(component, message)
}

// Close flushes and closes the log file, if any
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		l.file.Sync()
		l.file.Close()
		l.file = nil
	}
}
