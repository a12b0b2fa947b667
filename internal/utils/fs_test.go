package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirWritable(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, DirWritable(dir))

	// missing directories are created on the way
	nested := filepath.Join(dir, "a", "b")
	assert.True(t, DirWritable(nested))
	assert.True(t, FileExists(nested))
}

func TestGetAbsolutePath(t *testing.T) {
	assert.Equal(t, "unknown", GetAbsolutePath(""))
	assert.True(t, filepath.IsAbs(GetAbsolutePath("config.toml")))
}
