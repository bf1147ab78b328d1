package core

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned when an output format name is not one of the supported Formats
var ErrUnknownFormat = errors.New("unknown output format")

// FileAccessError is returned when a file cannot be opened, read or written
type FileAccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// ParseError is returned when an input file is not valid JSON
type ParseError struct {
	Path string
	// Offset is the byte offset of the syntax error, or 0 if it is not known
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("failed to parse %s at offset %d: %v", e.Path, e.Offset, e.Err)
	}
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError is returned when a required key is absent or holds a value of the wrong type.
// Key is the path of the offending value, e.g. files[3].fileID
type SchemaError struct {
	Path   string
	Key    string
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("invalid %s: %s %s", e.Path, e.Key, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Reasons used by SchemaError
const (
	ReasonMissing   = "is missing"
	ReasonWrongType = "has the wrong type"
)
