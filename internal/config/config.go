package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything a single search run needs
type Config struct {
	// Query is the substring searched for
	Query string

	// FilePath is the file whose lines are searched
	FilePath string

	// CaseSensitive selects exact-case matching; false when CASE_INSENSITIVE is set
	CaseSensitive bool

	// Verbose sets the verbosity level
	Verbose int

	// NoColor disables colored diagnostics
	NoColor bool
}

// Load resolves the configuration from the positional arguments (program
// name excluded) and the environment. The first two arguments are the query
// and the file path; any further arguments are ignored.
func Load(args []string) (Config, error) {
	if len(args) < 1 {
		return Config{}, &MissingArgumentError{Name: ArgQuery}
	}
	if len(args) < 2 {
		return Config{}, &MissingArgumentError{Name: ArgFilePath}
	}

	v := viper.New()

	v.SetDefault("verbose", 0)
	v.SetDefault("no_color", false)

	// Presence is the signal, so an empty value has to count as set.
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix(EnvPrefix)

	v.BindEnv("verbose")
	v.BindEnv("no_color")
	v.BindEnv("case_insensitive", CaseInsensitiveEnv)

	cfg := Config{
		Query:         args[0],
		FilePath:      args[1],
		CaseSensitive: !v.IsSet("case_insensitive"),
		Verbose:       parseVerbosity(v.GetString("verbose")),
		NoColor:       v.GetBool("no_color"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// parseVerbosity accepts either a number ("2") or a run of v's ("vv").
// Negative numbers count as 0.
func parseVerbosity(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return max(n, 0)
	}
	return strings.Count(s, "v")
}

// Validate checks the ambient settings. Query and file path are not
// validated here; an empty query is legal and the file is checked on read.
func (c Config) Validate() error {
	if c.Verbose < 0 {
		return fmt.Errorf("verbosity must be non-negative")
	}
	return nil
}

// String returns a string representation of the configuration
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{Query: %q, FilePath: %s, CaseSensitive: %v, Verbose: %d, NoColor: %v}",
		c.Query, c.FilePath, c.CaseSensitive, c.Verbose, c.NoColor,
	)
}
