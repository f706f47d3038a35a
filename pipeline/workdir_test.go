package pipeline

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcquireWorkdir_UniqueNames(t *testing.T) {
	root := t.TempDir()

	first, err := AcquireWorkdir(root)
	assert.Nil(t, err)
	second, err := AcquireWorkdir(root)
	assert.Nil(t, err)

	assert.NotEqual(t, first.Path, second.Path)
	first.Release()
	second.Release()
}

func TestWorkdir_ReleaseRemovesDirectory(t *testing.T) {
	workdir, err := AcquireWorkdir(t.TempDir())
	assert.Nil(t, err)
	_, statErr := os.Stat(workdir.Path)
	assert.Nil(t, statErr)

	assert.Nil(t, workdir.Release())

	_, statErr = os.Stat(workdir.Path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWorkdir_ReleaseIsIdempotent(t *testing.T) {
	workdir, err := AcquireWorkdir(t.TempDir())
	assert.Nil(t, err)

	assert.Nil(t, workdir.Release())

	// recreate the path; a second Release must not remove it again
	assert.Nil(t, os.MkdirAll(workdir.Path, 0755))
	assert.Nil(t, workdir.Release())
	_, statErr := os.Stat(workdir.Path)
	assert.Nil(t, statErr, "release must remove the directory exactly once")
	os.RemoveAll(workdir.Path)
}
