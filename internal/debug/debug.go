// Package debug is the library's internal leveled logger. It prints nothing
// unless ATOMICS_LOG_LEVEL lowers the threshold or ATOMICS_DEBUG_MODE is set.
package debug

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"
)

const (
	LevelTrace = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	levelNoPrint
)

var (
	out       io.Writer = os.Stdout
	level               = LevelWarn
	debugMode           = false

	magenta = string([]byte{27, 91, 57, 53, 109}) // Trace
	green   = string([]byte{27, 91, 57, 50, 109}) // Debug
	blue    = string([]byte{27, 91, 57, 52, 109}) // Info
	yellow  = string([]byte{27, 91, 57, 51, 109}) // Warn
	red     = string([]byte{27, 91, 57, 49, 109}) // Error
	reset   = string([]byte{27, 91, 48, 109})

	colors = []string{magenta, green, blue, yellow, red}

	levelName = []string{"Trace", "Debug", "Info", "Warn", "Error"}
)

func init() {
	if s := os.Getenv("ATOMICS_LOG_LEVEL"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n <= levelNoPrint {
			level = n
		}
	}
	if os.Getenv("ATOMICS_DEBUG_MODE") != "" {
		debugMode = true
		if level > LevelDebug {
			level = LevelDebug
		}
	}
}

// SetLogLevel changes the logger's threshold; the default is Warn.
// The process env ATOMICS_LOG_LEVEL could also set it.
func SetLogLevel(l int) {
	if l <= levelNoPrint {
		level = l
	}
}

// Enabled reports whether ATOMICS_DEBUG_MODE was set for this process.
func Enabled() bool {
	return debugMode
}

func Tracef(format string, a ...interface{}) { printf(LevelTrace, format, a...) }
func Debugf(format string, a ...interface{}) { printf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { printf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { printf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { printf(LevelError, format, a...) }

func printf(l int, format string, a ...interface{}) {
	if level > l {
		return
	}
	if _, err := fmt.Fprintf(out, prefix(l)+format+reset+"\n", a...); err != nil {
		fmt.Fprintf(os.Stderr, "debug logger write failed: %v\n", err)
	}
}

func prefix(l int) string {
	var buffer [64]byte
	buf := bytes.NewBuffer(buffer[:0])
	_, _ = buf.WriteString(colors[l])
	_, _ = buf.WriteString(levelName[l])
	_ = buf.WriteByte(' ')
	_, _ = buf.WriteString(time.Now().Format("2006-01-02 15:04:05.999999"))
	_ = buf.WriteByte(' ')
	_, _ = buf.WriteString(location())
	_ = buf.WriteByte(' ')
	return buf.String()
}

func location() string {
	_, file, line, ok := runtime.Caller(4)
	if !ok {
		file = "???"
		line = 0
	}
	return filepath.Base(file) + ":" + strconv.Itoa(line)
}
