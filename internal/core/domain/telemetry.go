package domain

import "strings"

// VertexStatus is the final state of one scanned file as reported to telemetry and in reports.
type VertexStatus string

const (
	// VertexStatusCompleted indicates the file was read and tokenized.
	VertexStatusCompleted VertexStatus = "completed"
	// VertexStatusCached indicates stored stats were reused because the file digest was unchanged.
	VertexStatusCached VertexStatus = "cached"
	// VertexStatusFailed indicates the file could not be scanned.
	VertexStatusFailed VertexStatus = "failed"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// NormalizeVertexStatus converts a string to a VertexStatus, defaulting to failed if unknown.
func NormalizeVertexStatus(s string) VertexStatus {
	switch strings.ToLower(s) {
	case string(VertexStatusCompleted):
		return VertexStatusCompleted
	case string(VertexStatusCached):
		return VertexStatusCached
	default:
		return VertexStatusFailed
	}
}
