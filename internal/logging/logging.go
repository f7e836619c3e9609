// Package logging prints leveled, styled messages to the console.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// Level selects which messages are displayed.
type Level int

// Enumeration of the different log levels
const (
	LevelSilent  Level = iota // no output at all
	LevelError                // only errors
	LevelWarning              // errors and warnings
	LevelVerbose              // errors, warnings and informational messages (DEFAULT)
)

// ParseLevel converts a level name. Unknown names are verbose.
func ParseLevel(name string) Level {
	switch strings.ToLower(name) {
	case "silent":
		return LevelSilent
	case "error":
		return LevelError
	case "warning":
		return LevelWarning
	// everything else (including invalid log levels) should default to verbose
	default:
		return LevelVerbose
	}
}

// Logger writes tagged messages. It is safe for concurrent use.
type Logger struct {
	m          sync.Mutex
	out        io.Writer
	level      Level
	errorCount int
}

// New creates a logger writing to out.
func New(out io.Writer, level Level) *Logger {
	return &Logger{out: out, level: level}
}

// SetLevel changes the level of l.
func (l *Logger) SetLevel(level Level) {
	l.m.Lock()
	l.level = level
	l.m.Unlock()
}

// ErrorCount returns the number of errors logged, displayed or not.
func (l *Logger) ErrorCount() int {
	l.m.Lock()
	defer l.m.Unlock()
	return l.errorCount
}

// Error prints a standard Go error.
func (l *Logger) Error(tag string, err error) {
	l.m.Lock()
	defer l.m.Unlock()

	l.errorCount++
	if l.level >= LevelError {
		l.print(ErrorStyleBG, ErrorColorFG, tag, err.Error())
	}
}

// Warn prints a warning message.
func (l *Logger) Warn(tag, msg string) {
	l.m.Lock()
	defer l.m.Unlock()

	if l.level >= LevelWarning {
		l.print(WarnStyleBG, WarnColorFG, tag, msg)
	}
}

// Info prints an informational message to the user.
func (l *Logger) Info(tag, msg string) {
	l.m.Lock()
	defer l.m.Unlock()

	if l.level >= LevelVerbose {
		l.print(InfoStyleBG, InfoColorFG, tag, msg)
	}
}

func (l *Logger) print(bg *pterm.Style, fg pterm.Color, tag, msg string) {
	fmt.Fprintln(l.out, bg.Sprint(tag)+fg.Sprint(" "+msg))
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New(os.Stderr, LevelVerbose)
)

// Default returns the shared logger used when no other is configured.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the shared logger.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// PrintErrorMessage prints a standard Go error with the shared logger.
func PrintErrorMessage(tag string, err error) {
	Default().Error(tag, err)
}

// PrintWarningMessage prints a warning message with the shared logger.
func PrintWarningMessage(tag, msg string) {
	Default().Warn(tag, msg)
}

// PrintInfoMessage prints an informational message with the shared logger.
func PrintInfoMessage(tag, msg string) {
	Default().Info(tag, msg)
}
