// Package version reports build information for the minigrep binary.
package version

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// These variables are set during build time
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Format selects how build information is rendered
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// BuildInfo contains build and toolchain information
type BuildInfo struct {
	Version   string `json:"version" yaml:"version"`
	SemVer    string `json:"semver" yaml:"semver"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`

	GoVersion string `json:"go_version" yaml:"go_version"`
	Compiler  string `json:"compiler" yaml:"compiler"`
	Platform  string `json:"platform" yaml:"platform"`

	Module string   `json:"module,omitempty" yaml:"module,omitempty"`
	Deps   []Module `json:"deps,omitempty" yaml:"deps,omitempty"`
}

// Module represents a Go module dependency
type Module struct {
	Path    string `json:"path" yaml:"path"`
	Version string `json:"version" yaml:"version"`
}

// GetBuildInfo returns the build information of the running binary
func GetBuildInfo() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		SemVer:    strings.TrimPrefix(strings.Split(Version, "-")[0], "v"),
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Compiler:  runtime.Compiler,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.Module = bi.Main.Path
		for _, dep := range bi.Deps {
			info.Deps = append(info.Deps, Module{
				Path:    dep.Path,
				Version: dep.Version,
			})
		}
	}

	return info
}

// Render writes info to w in the given format
func Render(w io.Writer, info BuildInfo, format Format) error {
	switch format {
	case FormatText, "":
		_, err := io.WriteString(w, text(info))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(info); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("invalid build info format %q: must be one of [text json yaml]", format)
	}
}

func text(info BuildInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "minigrep %s\n", info.Version)
	fmt.Fprintf(&b, "  Build Date:   %s\n", info.BuildDate)
	fmt.Fprintf(&b, "  Commit:       %s\n", info.GitCommit)
	fmt.Fprintf(&b, "  Go Version:   %s\n", info.GoVersion)
	fmt.Fprintf(&b, "  Compiler:     %s\n", info.Compiler)
	fmt.Fprintf(&b, "  Platform:     %s\n", info.Platform)

	if len(info.Deps) > 0 {
		b.WriteString("  Dependencies:\n")
		for _, dep := range info.Deps {
			fmt.Fprintf(&b, "    - %s@%s\n", dep.Path, dep.Version)
		}
	}

	return b.String()
}
