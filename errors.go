package sq3

import (
	"errors"
	"fmt"
	"strings"
)

// Standard error messages and error creation functions for consistency
var (
	// ErrUsage indicates malformed dot-command arguments
	ErrUsage = errors.New("sq3: usage error")

	// ErrIncompleteStatement indicates a statement that fails the completeness check
	ErrIncompleteStatement = errors.New("sq3: SQL syntax incorrect")

	// ErrAliasDepth indicates alias expansion nested deeper than maxAliasDepth
	ErrAliasDepth = errors.New("sq3: alias expansion too deep")

	// ErrEmptyDatabasePath indicates that no database file was given
	ErrEmptyDatabasePath = errors.New("sq3: database path is empty")

	// ErrNoInput indicates that Run was called without a line reader
	ErrNoInput = errors.New("sq3: no input line reader configured")

	// ErrInterrupted indicates that the operator cancelled the current input line
	ErrInterrupted = errors.New("sq3: interrupted")

	// ErrUnsupportedCompression indicates a compression type that cannot be written
	ErrUnsupportedCompression = errors.New("sq3: unsupported compression for writing")
)

// FormatError is returned when an alias template cannot be expanded with the
// arguments it was invoked with.
type FormatError struct {
	// Template is the alias definition being expanded
	Template string
	// Reason describes what went wrong
	Reason string
}

// Error implements the error interface
func (e *FormatError) Error() string {
	return fmt.Sprintf("sq3: cannot expand %q: %s", e.Template, e.Reason)
}

// OperationalError is returned when the engine rejects a well-formed statement.
type OperationalError struct {
	Statement string
	// Code is the SQLite result code, or 0 when the failure did not come from the engine
	Code int
	Err  error
}

// Error implements the error interface
func (e *OperationalError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the engine error
func (e *OperationalError) Unwrap() error {
	return e.Err
}

// FileAccessError is returned when the output file cannot be opened or written.
type FileAccessError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *FileAccessError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// ErrorContext provides context for where an error occurred
type ErrorContext struct {
	Operation string
	FilePath  string
	TableName string
	Details   string
}

// NewErrorContext creates a new error context
func NewErrorContext(operation, filePath string) *ErrorContext {
	return &ErrorContext{
		Operation: operation,
		FilePath:  filePath,
	}
}

// WithTable adds table context to the error
func (ec *ErrorContext) WithTable(tableName string) *ErrorContext {
	ec.TableName = tableName
	return ec
}

// WithDetails adds details to the error context
func (ec *ErrorContext) WithDetails(details string) *ErrorContext {
	ec.Details = details
	return ec
}

// Error creates a formatted error with context
func (ec *ErrorContext) Error(baseErr error) error {
	var parts []string
	parts = append(parts, fmt.Sprintf("%s failed", ec.Operation))

	if ec.FilePath != "" {
		parts = append(parts, "file: "+ec.FilePath)
	}

	if ec.TableName != "" {
		parts = append(parts, "table: "+ec.TableName)
	}

	if ec.Details != "" {
		parts = append(parts, "details: "+ec.Details)
	}

	context := strings.Join(parts, ", ")
	if baseErr != nil {
		return fmt.Errorf("%s: %w", context, baseErr)
	}
	return fmt.Errorf("%s", context)
}
