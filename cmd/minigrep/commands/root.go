/*
Package commands implements the minigrep command line: one root command that
takes a query and a file path, plus flags for logging, colour and build
information.
*/
package commands

import (
	"fmt"
	"io"

	"github.com/sonemaro/minigrep/cmd/minigrep/app"
	"github.com/sonemaro/minigrep/internal/config"
	"github.com/sonemaro/minigrep/internal/version"
	"github.com/sonemaro/minigrep/pkg/logger"
	"github.com/sonemaro/minigrep/pkg/output"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Options holds command-line options and the collaborators the command runs with
type Options struct {
	// Fs is the filesystem the searched file is read from (OS filesystem when nil)
	Fs afero.Fs

	Verbose     int
	NoColor     bool
	ShowVersion bool
	BuildInfo   string

	// Config is set once the run configuration has been resolved
	Config *config.Config
}

// colorDisabled reports whether diagnostics should be printed without colour
func (o *Options) colorDisabled() bool {
	if o.Config != nil {
		return o.Config.NoColor
	}
	return o.NoColor
}

// NewRootCommand creates the root command for the application
func NewRootCommand(opts *Options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "minigrep [flags] <query> <file_path>",
		Short: "Print the lines of a file that contain a query",
		Long: `minigrep reads a file and prints every line containing the query, in
order and exactly as written.

Matching is case-sensitive unless the CASE_INSENSITIVE environment variable
is set (to any value, including an empty one). Arguments after the file path
are ignored.`,
		Example: `  minigrep duct poem.txt
  CASE_INSENSITIVE=1 minigrep rUsT poem.txt
  minigrep -- -v notes.txt`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	// Flags end at the first positional argument; everything after the
	// file path is ignored, even if it looks like a flag.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.Flags().CountVarP(&opts.Verbose, "verbose", "v",
		"verbose logging on stderr (can be used multiple times)")
	rootCmd.Flags().BoolVar(&opts.NoColor, "no-color", false,
		"disable colored diagnostics")
	rootCmd.Flags().BoolVar(&opts.ShowVersion, "version", false,
		"print version information")
	rootCmd.Flags().StringVar(&opts.BuildInfo, "build-info", "",
		"print build information: text|json|yaml")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, opts *Options) error {
	if opts.ShowVersion {
		fmt.Fprintln(cmd.OutOrStdout(), version.Version)
		return nil
	}
	if cmd.Flags().Changed("build-info") {
		return version.Render(cmd.OutOrStdout(), version.GetBuildInfo(), version.Format(opts.BuildInfo))
	}

	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	// Flags override the environment
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = opts.Verbose
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = opts.NoColor
	}
	opts.Config = &cfg

	log := logger.NewLogger(logger.Config{
		Verbosity: cfg.Verbose,
		Output:    cmd.ErrOrStderr(),
	})

	log.WithFields(logger.Fields{
		"verbosity": cfg.Verbose,
		"command":   cmd.Name(),
		"ignored":   len(args) - 2,
	}).Debug("Configuration resolved")

	application := app.New(&cfg, app.Options{
		Fs:     opts.Fs,
		Stdout: cmd.OutOrStdout(),
		Logger: log,
	})

	return application.Run()
}

// Execute runs the root command with args (program name excluded) and
// returns the process exit status. Failures are reported once on stderr.
func Execute(args []string, stdout, stderr io.Writer, fs afero.Fs) int {
	opts := &Options{Fs: fs}

	cmd := NewRootCommand(opts)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		output.NewDiagnostics(stderr, opts.colorDisabled()).Report(err)
		return 1
	}

	return 0
}
