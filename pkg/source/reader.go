/*
Package source loads the file being searched.

The whole file is read into memory in one call and must be valid UTF-8.
Reads go through an afero.Fs so tests can use an in-memory filesystem.

Basic usage:

	r := source.NewReader(afero.NewOsFs(), log)
	contents, err := r.Read("poem.txt")
	if errors.Is(err, source.ErrRead) {
		// not found, permission denied, not text, or another I/O failure
	}
*/
package source

import (
	"errors"
	"io/fs"
	"unicode/utf8"

	"github.com/sonemaro/minigrep/pkg/logger"
	"github.com/spf13/afero"
)

// Reader defines the interface for loading a file's full contents
type Reader interface {
	// Read returns the entire contents of the file at path as text
	Read(path string) (string, error)
}

type reader struct {
	fs  afero.Fs
	log logger.Logger
}

// NewReader creates a Reader backed by the given filesystem
func NewReader(fs afero.Fs, log logger.Logger) Reader {
	return &reader{
		fs:  fs,
		log: log,
	}
}

// Read performs the single full read of path
func (r *reader) Read(path string) (string, error) {
	r.log.WithFields(logger.Fields{
		"path": path,
	}).Debug("Reading file")

	info, err := r.fs.Stat(path)
	if err != nil {
		return "", r.classify(path, "stat", err)
	}
	if info.IsDir() {
		return "", r.fail(&IOError{Path: path, Op: "read", Err: errors.New("is a directory")})
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return "", r.classify(path, "read", err)
	}

	if off := invalidUTF8Offset(data); off >= 0 {
		return "", r.fail(&EncodingError{Path: path, Offset: off})
	}

	r.log.WithFields(logger.Fields{
		"path":  path,
		"bytes": len(data),
	}).Debug("File read")

	return string(data), nil
}

func (r *reader) classify(path, op string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return r.fail(&NotFoundError{Path: path, Err: err})
	case errors.Is(err, fs.ErrPermission):
		return r.fail(&PermissionError{Path: path, Err: err})
	default:
		return r.fail(&IOError{Path: path, Op: op, Err: err})
	}
}

func (r *reader) fail(err error) error {
	r.log.WithFields(logger.Fields{
		"error": err.Error(),
	}).Debug("File read failed")
	return err
}

// invalidUTF8Offset returns the byte offset of the first invalid UTF-8
// sequence in data, or -1 if data is valid.
func invalidUTF8Offset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
