package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"pdf-chat-server/internal/domain"
)

// LogLevel represents different logging levels
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// AppLogger implements the domain.Logger interface
type AppLogger struct {
	level LogLevel
	out   *log.Logger
}

// NewLogger creates a new logger instance with the given level string.
func NewLogger(levelStr string) domain.Logger {
	return &AppLogger{
		level: parseLogLevel(levelStr),
		out:   log.New(os.Stdout, "", 0),
	}
}

// Debug logs a debug message
func (l *AppLogger) Debug(msg string, fields ...interface{}) {
	if l.level <= DEBUG {
		l.write("DEBUG", msg, fields)
	}
}

// Info logs an info message
func (l *AppLogger) Info(msg string, fields ...interface{}) {
	if l.level <= INFO {
		l.write("INFO", msg, fields)
	}
}

// Warn logs a warning message
func (l *AppLogger) Warn(msg string, fields ...interface{}) {
	if l.level <= WARN {
		l.write("WARN", msg, fields)
	}
}

// Error logs an error message with its cause as the first field.
func (l *AppLogger) Error(msg string, err error, fields ...interface{}) {
	if l.level <= ERROR {
		l.write("ERROR", msg, append([]interface{}{"error", err}, fields...))
	}
}

func (l *AppLogger) write(level, msg string, fields []interface{}) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] %s: %s", time.Now().Format("2006-01-02 15:04:05"), level, msg))
	for i := 0; i+1 < len(fields); i += 2 {
		sb.WriteString(fmt.Sprintf(" %v=%v", fields[i], fields[i+1]))
	}
	l.out.Println(sb.String())
}

// parseLogLevel converts a string log level to a LogLevel enum
func parseLogLevel(levelStr string) LogLevel {
	switch strings.ToLower(levelStr) {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}
