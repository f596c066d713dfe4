// Package osfs backs peripheral.FileStore with the host filesystem,
// the one concrete collaborator implementation this module ships
// (every other peripheral.* interface is left to the embedder, per
// design note: hardware drivers are out of scope). Grounded on
// original_source/forthduino.cpp's TFILE/SD usage, generalised from an
// SD card to any directory on the host.
package osfs

import (
	"io"
	"os"
	"path/filepath"
)

// Store opens files under Dir for `file:run` and the UDP file-load
// mechanism. A zero Dir means the process's working directory.
type Store struct {
	Dir string
}

func (s Store) path(name string) string {
	if s.Dir == "" {
		return name
	}
	return filepath.Join(s.Dir, name)
}

// Open implements peripheral.FileStore. write chooses os.Create
// (truncate, write-only... but still read-writable, so it satisfies
// io.ReadWriteCloser) over os.Open. The returned *os.File is closed by
// the caller once done.
func (s Store) Open(name string, write bool) (io.ReadWriteCloser, error) {
	if write {
		return os.Create(s.path(name))
	}
	return os.Open(s.path(name))
}
