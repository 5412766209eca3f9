package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/sonemaro/minigrep/pkg/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements logger.Logger interface for testing
type mockLogger struct {
	logs []string
}

func (m *mockLogger) Info(msg string)                               { m.logs = append(m.logs, "INFO: "+msg) }
func (m *mockLogger) Debug(msg string)                              { m.logs = append(m.logs, "DEBUG: "+msg) }
func (m *mockLogger) Error(msg string)                              { m.logs = append(m.logs, "ERROR: "+msg) }
func (m *mockLogger) Warn(msg string)                               { m.logs = append(m.logs, "WARN: "+msg) }
func (m *mockLogger) Trace(msg string)                              { m.logs = append(m.logs, "TRACE: "+msg) }
func (m *mockLogger) WithFields(fields logger.Fields) logger.Logger { return m }

// denyFs refuses to open any file for reading.
type denyFs struct {
	afero.Fs
}

func (d denyFs) Open(name string) (afero.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
}

// brokenFs fails every stat with an error that is neither not-found nor permission.
type brokenFs struct {
	afero.Fs
}

func (b brokenFs) Stat(name string) (os.FileInfo, error) {
	return nil, &fs.PathError{Op: "stat", Path: name, Err: errors.New("device not ready")}
}

func setupTestFS(t *testing.T) afero.Fs {
	t.Helper()

	memFs := afero.NewMemMapFs()
	files := map[string][]byte{
		"/data/poem.txt":  []byte("Rust:\nsafe, fast, productive.\nPick three.\n"),
		"/data/empty.txt": {},
		"/data/crlf.txt":  []byte("one\r\ntwo\r\n"),
		"/data/bin.dat":   {'o', 'k', '\n', 0xff, 0xfe, '\n'},
	}
	for path, content := range files {
		require.NoError(t, memFs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(memFs, path, content, 0644))
	}

	return memFs
}

func TestReader(t *testing.T) {
	tests := []struct {
		name    string
		fs      func(afero.Fs) afero.Fs
		path    string
		want    string
		wantErr interface{}
		errMsg  string
	}{
		{
			name: "reads whole file",
			path: "/data/poem.txt",
			want: "Rust:\nsafe, fast, productive.\nPick three.\n",
		},
		{
			name: "empty file",
			path: "/data/empty.txt",
			want: "",
		},
		{
			name: "keeps line terminators untouched",
			path: "/data/crlf.txt",
			want: "one\r\ntwo\r\n",
		},
		{
			name:    "missing file",
			path:    "/data/missing.txt",
			wantErr: &NotFoundError{},
			errMsg:  "file not found: /data/missing.txt",
		},
		{
			name:    "permission denied",
			fs:      func(base afero.Fs) afero.Fs { return denyFs{base} },
			path:    "/data/poem.txt",
			wantErr: &PermissionError{},
			errMsg:  "permission denied: /data/poem.txt",
		},
		{
			name:    "invalid utf-8",
			path:    "/data/bin.dat",
			wantErr: &EncodingError{},
			errMsg:  "invalid UTF-8 in /data/bin.dat at byte 3",
		},
		{
			name:    "directory",
			path:    "/data",
			wantErr: &IOError{},
			errMsg:  "read /data: is a directory",
		},
		{
			name:    "other stat failure",
			fs:      func(base afero.Fs) afero.Fs { return brokenFs{base} },
			path:    "/data/poem.txt",
			wantErr: &IOError{},
			errMsg:  "device not ready",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := setupTestFS(t)
			if tt.fs != nil {
				fsys = tt.fs(fsys)
			}
			log := &mockLogger{}

			got, err := NewReader(fsys, log).Read(tt.path)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrRead)
				assert.IsType(t, tt.wantErr, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Empty(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, log.logs, "DEBUG: File read")
		})
	}
}

func TestReaderErrorsUnwrapCause(t *testing.T) {
	_, err := NewReader(setupTestFS(t), &mockLogger{}).Read("/nope")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = NewReader(denyFs{setupTestFS(t)}, &mockLogger{}).Read("/data/poem.txt")
	assert.ErrorIs(t, err, fs.ErrPermission)

	var perr *PermissionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "/data/poem.txt", perr.Path)
}

func TestInvalidUTF8Offset(t *testing.T) {
	assert.Equal(t, -1, invalidUTF8Offset([]byte("plain ascii")))
	assert.Equal(t, -1, invalidUTF8Offset([]byte("Äpfel �")))
	assert.Equal(t, 0, invalidUTF8Offset([]byte{0x80}))
	assert.Equal(t, 2, invalidUTF8Offset([]byte{'a', 'b', 0xc3}))
}
