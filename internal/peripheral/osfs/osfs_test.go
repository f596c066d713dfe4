package osfs_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wmalkin/rgbforth/internal/peripheral"
	"github.com/wmalkin/rgbforth/internal/peripheral/osfs"
)

func TestStoreWriteThenRead(t *testing.T) {
	dir := t.TempDir()
	s := osfs.Store{Dir: dir}
	var _ peripheral.FileStore = s

	w, err := s.Open("prog.fs", true)
	require.NoError(t, err)
	_, err = io.WriteString(w, "1 2 + .\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	require.FileExists(t, filepath.Join(dir, "prog.fs"))

	r, err := s.Open("prog.fs", false)
	require.NoError(t, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "1 2 + .\n", string(data))
}

func TestStoreOpenMissingForReadErrors(t *testing.T) {
	s := osfs.Store{Dir: t.TempDir()}
	_, err := s.Open("nope.fs", false)
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}

func TestStoreEmptyDirUsesNameDirectly(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	s := osfs.Store{}
	w, err := s.Open("rel.fs", true)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.FileExists(t, filepath.Join(dir, "rel.fs"))
}
