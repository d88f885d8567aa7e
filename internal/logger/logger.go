package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
)

type implLogger struct {
	logger *log.Logger
	level  string
}

// New creates a Logger that writes to stderr. Stdout is reserved for the
// final output paths, so all narration goes to the diagnostic channel.
func New(level string) Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a Logger targeting an arbitrary writer.
func NewWithWriter(w io.Writer, level string) Logger {
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  strings.ToLower(level),
	}
}

func (l *implLogger) shouldLog(level string) bool {
	levels := map[string]int{
		"debug": 0,
		"info":  1,
		"warn":  2,
		"error": 3,
	}

	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.logger.Printf("[DEBUG] "+msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.logger.Printf("[INFO] "+msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.logger.Printf("[WARN] "+msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.logger.Printf("[ERROR] "+msg, args...)
	}
}
