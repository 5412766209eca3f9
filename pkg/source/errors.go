package source

import (
	"errors"
	"fmt"
)

// ErrRead is matched by every error Reader.Read returns.
var ErrRead = errors.New("read failed")

// NotFoundError is returned when the file does not exist
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() []error { return []error{ErrRead, e.Err} }

// PermissionError is returned when the file cannot be opened for reading
type PermissionError struct {
	Path string
	Err  error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: %s", e.Path)
}

func (e *PermissionError) Unwrap() []error { return []error{ErrRead, e.Err} }

// EncodingError is returned when the file is not valid UTF-8 text
type EncodingError struct {
	Path   string
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 in %s at byte %d", e.Path, e.Offset)
}

func (e *EncodingError) Unwrap() error { return ErrRead }

// IOError covers any other failure while opening or reading the file
type IOError struct {
	Path string
	Op   string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() []error { return []error{ErrRead, e.Err} }
