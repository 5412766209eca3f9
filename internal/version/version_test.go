package version

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testInfo() BuildInfo {
	return BuildInfo{
		Version:   "v1.2.0-rc1",
		SemVer:    "1.2.0",
		BuildDate: "2024-01-20",
		GitCommit: "abc1234",
		GoVersion: "go1.22.0",
		Compiler:  "gc",
		Platform:  "linux/amd64",
		Deps: []Module{
			{Path: "github.com/spf13/cobra", Version: "v1.8.1"},
		},
	}
}

func TestGetBuildInfo(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })
	Version = "v0.3.1-4-gdeadbee"

	info := GetBuildInfo()

	assert.Equal(t, "v0.3.1-4-gdeadbee", info.Version)
	assert.Equal(t, "0.3.1", info.SemVer)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		verify func(*testing.T, []byte)
	}{
		{
			name:   "text",
			format: FormatText,
			verify: func(t *testing.T, out []byte) {
				assert.Contains(t, string(out), "minigrep v1.2.0-rc1\n")
				assert.Contains(t, string(out), "Commit:       abc1234")
				assert.Contains(t, string(out), "- github.com/spf13/cobra@v1.8.1")
			},
		},
		{
			name:   "empty format defaults to text",
			format: "",
			verify: func(t *testing.T, out []byte) {
				assert.Contains(t, string(out), "minigrep v1.2.0-rc1\n")
			},
		},
		{
			name:   "json",
			format: FormatJSON,
			verify: func(t *testing.T, out []byte) {
				var got BuildInfo
				require.NoError(t, json.Unmarshal(out, &got))
				assert.Equal(t, testInfo(), got)
			},
		},
		{
			name:   "yaml",
			format: FormatYAML,
			verify: func(t *testing.T, out []byte) {
				var got BuildInfo
				require.NoError(t, yaml.Unmarshal(out, &got))
				assert.Equal(t, testInfo(), got)
				assert.Contains(t, string(out), "git_commit: abc1234")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, testInfo(), tt.format))
			tt.verify(t, buf.Bytes())
		})
	}
}

func TestRenderInvalidFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, testInfo(), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of [text json yaml]")
	assert.Empty(t, buf.String())
}
