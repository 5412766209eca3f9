package config

import (
	"errors"
	"fmt"
)

// Environment variables read by Load
const (
	// CaseInsensitiveEnv enables case-insensitive matching when present,
	// whatever its value
	CaseInsensitiveEnv = "CASE_INSENSITIVE"

	// EnvPrefix is prepended to the remaining variables (MINIGREP_VERBOSE, MINIGREP_NO_COLOR)
	EnvPrefix = "MINIGREP"
)

// Positional argument names, in order
const (
	ArgQuery    = "query"
	ArgFilePath = "file path"
)

// ErrMissingArgument is matched by every MissingArgumentError
var ErrMissingArgument = errors.New("not enough arguments")

// MissingArgumentError is returned when a required positional argument is absent
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("not enough arguments: missing %s", e.Name)
}

func (e *MissingArgumentError) Unwrap() error { return ErrMissingArgument }
