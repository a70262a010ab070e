package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateFile writes content to dir/name, creating parent directories, and
// returns the path
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "creating parent of %s", path)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "writing %s", path)
	return path
}

// FileExists reports whether path is a regular file
func FileExists(t *testing.T, path string) bool {
	t.Helper()

	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadFile returns the content of path, failing the test if it cannot be read
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err, "reading %s", path)
	return string(data)
}

// AssertFileContent fails the test unless path holds exactly expected
func AssertFileContent(t *testing.T, path, expected string) {
	t.Helper()

	require.True(t, FileExists(t, path), "%s does not exist", path)
	assert.Equal(t, expected, ReadFile(t, path), "content of %s", path)
}

// AssertNoFile fails the test if anything exists at path
func AssertNoFile(t *testing.T, path string) {
	t.Helper()
	assert.NoFileExists(t, path)
}
