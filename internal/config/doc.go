// Package config resolves the minigrep run configuration from positional
// arguments and the environment.
//
// # Configuration Loading
//
//	cfg, err := config.Load(os.Args[1:])
//	if errors.Is(err, config.ErrMissingArgument) {
//	    // fewer than two positional arguments
//	}
//
// The first argument is the query, the second the file path. Anything after
// them is ignored. No other validation happens here: an empty query is legal
// and matches every line, and a missing file is reported when it is read.
//
// # Environment Variables
//
//	CASE_INSENSITIVE    Presence (any value, including empty) enables case-insensitive matching
//	MINIGREP_VERBOSE    Verbosity level, a number or a run of 'v's
//	MINIGREP_NO_COLOR   Disable colored diagnostics (true/false)
//
// Command-line flags for verbosity and color override the environment.
//
// # Thread Safety
//
// Config is a plain value, built once at startup and never mutated.
package config
