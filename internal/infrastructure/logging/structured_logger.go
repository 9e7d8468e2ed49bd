package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// StructuredLogger provides JSON structured logging.
//
// Design Principles:
// - JSON structured output for easy parsing
// - Standard fields (@timestamp, level, message, etc.)
// - Thread-safe logging
// - Context fields (request_id, workflow, category)
type StructuredLogger struct {
	mu       sync.Mutex
	writer   io.Writer
	minLevel LogLevel
	fields   map[string]interface{} // Global fields for all logs
}

// LogLevel represents logging severity levels.
type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a configuration string to a LogLevel. Unknown values
// fall back to InfoLevel.
func ParseLevel(s string) LogLevel {
	switch s {
	case "debug", "DEBUG":
		return DebugLevel
	case "warn", "WARN", "warning":
		return WarnLevel
	case "error", "ERROR":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// LogEntry represents a single log entry.
type LogEntry struct {
	Timestamp string                 `json:"@timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Logger    string                 `json:"logger,omitempty"`
	Host      string                 `json:"host,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`

	// Application-specific fields
	RequestID string `json:"request_id,omitempty"`
	Workflow  string `json:"workflow,omitempty"`
	Category  string `json:"category,omitempty"`

	// Error tracking
	Error     string `json:"error,omitempty"`
	ErrorType string `json:"error_type,omitempty"`
}

// NewStructuredLogger creates a new structured logger.
func NewStructuredLogger(writer io.Writer, minLevel LogLevel) *StructuredLogger {
	if writer == nil {
		writer = os.Stdout
	}

	hostname, _ := os.Hostname()

	return &StructuredLogger{
		writer:   writer,
		minLevel: minLevel,
		fields: map[string]interface{}{
			"service": "ai_backend",
			"host":    hostname,
		},
	}
}

// NewDefaultLogger creates a logger with INFO level to stdout.
func NewDefaultLogger() *StructuredLogger {
	return NewStructuredLogger(os.Stdout, InfoLevel)
}

// SetMinLevel sets the minimum log level.
func (l *StructuredLogger) SetMinLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// WithField adds a global field to all log entries.
func (l *StructuredLogger) WithField(key string, value interface{}) *StructuredLogger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fields[key] = value
	return l
}

// Debug logs a debug-level message.
func (l *StructuredLogger) Debug(message string, fields ...map[string]interface{}) {
	l.log(DebugLevel, message, nil, fields...)
}

// Info logs an info-level message.
func (l *StructuredLogger) Info(message string, fields ...map[string]interface{}) {
	l.log(InfoLevel, message, nil, fields...)
}

// Warn logs a warning-level message.
func (l *StructuredLogger) Warn(message string, fields ...map[string]interface{}) {
	l.log(WarnLevel, message, nil, fields...)
}

// Error logs an error-level message.
func (l *StructuredLogger) Error(message string, err error, fields ...map[string]interface{}) {
	l.log(ErrorLevel, message, err, fields...)
}

// log is the internal logging function.
func (l *StructuredLogger) log(level LogLevel, message string, err error, fields ...map[string]interface{}) {
	l.mu.Lock()
	if level < l.minLevel {
		l.mu.Unlock()
		return
	}

	entry := &LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level.String(),
		Message:   message,
		Logger:    "ai_backend",
		Fields:    make(map[string]interface{}, len(l.fields)),
	}

	// Copy global fields
	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	l.mu.Unlock()

	// Merge provided fields, routing known keys to their dedicated columns
	for _, fieldMap := range fields {
		for k, v := range fieldMap {
			switch k {
			case "request_id":
				if requestID, ok := v.(string); ok {
					entry.RequestID = requestID
				}
			case "workflow":
				if workflow, ok := v.(string); ok {
					entry.Workflow = workflow
				}
			case "category":
				if category, ok := v.(string); ok {
					entry.Category = category
				}
			default:
				entry.Fields[k] = v
			}
		}
	}

	if err != nil {
		entry.Error = err.Error()
		entry.ErrorType = fmt.Sprintf("%T", err)
	}

	data, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		// Fallback to simple logging if JSON encoding fails
		fmt.Fprintf(l.writer, "{\"error\":\"failed to encode log entry\",\"original_message\":%q}\n", message)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer.Write(data)
	l.writer.Write([]byte("\n"))
}

// Global default logger
var defaultLogger = NewDefaultLogger()

// SetDefaultLogger sets the global default logger.
func SetDefaultLogger(logger *StructuredLogger) {
	defaultLogger = logger
}

// GetDefaultLogger returns the global default logger.
func GetDefaultLogger() *StructuredLogger {
	return defaultLogger
}

// Debug logs to the default logger.
func Debug(message string, fields ...map[string]interface{}) {
	defaultLogger.Debug(message, fields...)
}

// Info logs to the default logger.
func Info(message string, fields ...map[string]interface{}) {
	defaultLogger.Info(message, fields...)
}

// Warn logs to the default logger.
func Warn(message string, fields ...map[string]interface{}) {
	defaultLogger.Warn(message, fields...)
}

// Error logs to the default logger.
func Error(message string, err error, fields ...map[string]interface{}) {
	defaultLogger.Error(message, err, fields...)
}
