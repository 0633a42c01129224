package commandline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourcesExclusive(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.xsd")
	require.NoError(t, os.WriteFile(file, []byte("<schema/>"), 0666))

	_, err := Sources(file, dir)
	assert.ErrorIs(t, err, ErrBothSources)

	_, err = Sources("", "")
	assert.ErrorIs(t, err, ErrNoSource)
}

func TestSourcesFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.xsd")
	require.NoError(t, os.WriteFile(file, []byte("<schema/>"), 0666))

	files, err := Sources(file, "")
	require.NoError(t, err)
	assert.Equal(t, []string{file}, files)

	_, err = Sources(filepath.Join(dir, "missing.xsd"), "")
	assert.Error(t, err)

	_, err = Sources(dir, "")
	assert.Error(t, err, "a directory passed as a file")
}

func TestSourcesDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.xsd", "a.xsd", "notes.txt", "c.xsd.bak"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0666))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.xsd"), 0777))

	files, err := Sources("", dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.xsd"),
		filepath.Join(dir, "b.xsd"),
	}, files)

	empty := t.TempDir()
	files, err = Sources("", empty)
	require.NoError(t, err)
	assert.Empty(t, files)

	_, err = Sources("", filepath.Join(dir, "a.xsd"))
	assert.Error(t, err, "a file passed as a directory")
}
