package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogFile = "tower-picker.log"
	maxLogSizeMB   = 5
	maxLogBackups  = 3
)

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	sink         io.WriteCloser
)

// writer lazily opens the rotating log file. Callers must hold mu.
func writer() io.Writer {
	if sink == nil {
		sink = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
		}
	}
	return sink
}

// Error appends err to the log file. Nil errors are ignored.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(writer(), "", log.LstdFlags)
	logger.Println(err)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the log when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !traceEnabled {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}

	if err := json.NewEncoder(writer()).Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	closeSink()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// Close releases the log file handle.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeSink()
}

func closeSink() error {
	if sink == nil {
		return nil
	}
	err := sink.Close()
	sink = nil
	return err
}
