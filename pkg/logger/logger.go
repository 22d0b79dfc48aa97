package logger

import (
	"log"
	"sync"

	"github.com/fatih/color"
)

// Level represents the severity level of a log message.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	NoticeLevel
	ErrorLevel
)

type chain int

const (
	none chain = iota
	eth
	pol
	arb
	base
)

var chainIDMap = map[int]chain{
	1:     eth,
	137:   pol,
	42161: arb,
	8453:  base,
}

var chainPrefixes = map[chain]string{
	none: "",
	eth:  "[ETH]  ",
	pol:  "[POL]  ",
	arb:  "[ARB]  ",
	base: "[BASE] ",
}

var chainColors = map[chain]color.Attribute{
	none: color.FgWhite,
	eth:  color.FgHiGreen,
	pol:  color.FgMagenta,
	arb:  color.FgHiBlue,
	base: color.FgBlue,
}

var levelPrefixes = map[Level]string{
	DebugLevel:  "[DEBUG]  ",
	InfoLevel:   "[INFO]   ",
	NoticeLevel: "[NOTICE] ",
	ErrorLevel:  "[ERROR]  ",
}

// Logger is a simple interface for logging messages.
type Logger interface {
	// Info logs an informational message.
	Info(format string, args ...interface{})
	InfoWithChain(chainID int, format string, args ...interface{})

	// Error logs an error message.
	Error(format string, args ...interface{})
	ErrorWithChain(chainID int, format string, args ...interface{})

	// Debug logs a debug message.
	Debug(format string, args ...interface{})
	DebugWithChain(chainID int, format string, args ...interface{})

	// Notice logs a notice message.
	Notice(format string, args ...interface{})
	NoticeWithChain(chainID int, format string, args ...interface{})
}

// EmptyLogger is an implementation of the Logger interface that does nothing.
type EmptyLogger struct{}

var _ Logger = (*EmptyLogger)(nil)

func (l *EmptyLogger) Info(_ string, _ ...interface{})                   {}
func (l *EmptyLogger) InfoWithChain(_ int, _ string, _ ...interface{})   {}
func (l *EmptyLogger) Error(_ string, _ ...interface{})                  {}
func (l *EmptyLogger) ErrorWithChain(_ int, _ string, _ ...interface{})  {}
func (l *EmptyLogger) Debug(_ string, _ ...interface{})                  {}
func (l *EmptyLogger) DebugWithChain(_ int, _ string, _ ...interface{})  {}
func (l *EmptyLogger) Notice(_ string, _ ...interface{})                 {}
func (l *EmptyLogger) NoticeWithChain(_ int, _ string, _ ...interface{}) {}

// StdLogger logs messages to the console through the standard log package.
type StdLogger struct {
	enableColoring bool
	level          Level
	mu             sync.Mutex
}

var _ Logger = (*StdLogger)(nil)

func NewStdLogger(enableColoring bool, level Level) *StdLogger {
	return &StdLogger{
		enableColoring: enableColoring,
		level:          level,
	}
}

// write formats and emits a single log line if the level is enabled.
func (l *StdLogger) write(level Level, chainID int, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.level > level {
		return
	}

	ch := chainIDMap[chainID]
	chainPrefix := chainPrefixes[ch]
	if l.enableColoring && chainPrefix != "" {
		chainPrefix = color.New(chainColors[ch]).Sprint(chainPrefix)
	}

	log.Printf(levelPrefixes[level]+chainPrefix+format, args...)
}

func (l *StdLogger) Info(format string, args ...interface{}) {
	l.write(InfoLevel, 0, format, args)
}

func (l *StdLogger) InfoWithChain(chainID int, format string, args ...interface{}) {
	l.write(InfoLevel, chainID, format, args)
}

func (l *StdLogger) Error(format string, args ...interface{}) {
	l.write(ErrorLevel, 0, format, args)
}

func (l *StdLogger) ErrorWithChain(chainID int, format string, args ...interface{}) {
	l.write(ErrorLevel, chainID, format, args)
}

func (l *StdLogger) Debug(format string, args ...interface{}) {
	l.write(DebugLevel, 0, format, args)
}

func (l *StdLogger) DebugWithChain(chainID int, format string, args ...interface{}) {
	l.write(DebugLevel, chainID, format, args)
}

func (l *StdLogger) Notice(format string, args ...interface{}) {
	l.write(NoticeLevel, 0, format, args)
}

func (l *StdLogger) NoticeWithChain(chainID int, format string, args ...interface{}) {
	l.write(NoticeLevel, chainID, format, args)
}
