package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalPath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		path     string
		basePath string
		expected string
	}{
		{"", "/foo", "/foo"},
		{".", "/foo", "/foo"},
		{"bar", "/foo", "/foo/bar"},
		{"bar/baz/blah", "/foo", "/foo/bar/baz/blah"},
		{"bar/../blah", "/foo", "/foo/blah"},
		{"bar/../..", "/foo", "/"},
		{"bar/.././../baz", "/foo", "/baz"},
		{"/other", "/foo", "/other"},
		{"/other/bar/blah", "/foo", "/other/bar/blah"},
		{"/other/../blah", "/foo", "/blah"},
	}

	for _, testCase := range testCases {
		actual, err := CanonicalPath(testCase.path, testCase.basePath)
		assert.NoError(t, err, "Unexpected error for path %s and basePath %s: %v", testCase.path, testCase.basePath, err)
		assert.Equal(t, testCase.expected, actual, "For path %s and basePath %s", testCase.path, testCase.basePath)
	}
}

func TestJoinPath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		elem     []string
		expected string
	}{
		{[]string{"foo", "bar"}, "foo/bar"},
		{[]string{"/foo", "bar", "baz.md"}, "/foo/bar/baz.md"},
		{[]string{"/foo", ""}, "/foo"},
		{[]string{"foo", "..", "bar"}, "bar"},
	}

	for _, testCase := range testCases {
		actual := JoinPath(testCase.elem...)
		assert.Equal(t, testCase.expected, actual, "For elements %v", testCase.elem)
	}
}

func TestFileExistsAndKind(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "some-file.md")
	require.NoError(t, os.WriteFile(tmpFile, []byte("# AWS::Some::Resource"), 0644))

	assert.True(t, FileExists(tmpDir))
	assert.True(t, FileExists(tmpFile))
	assert.False(t, FileExists(filepath.Join(tmpDir, "does-not-exist.md")))

	assert.True(t, IsDir(tmpDir))
	assert.False(t, IsDir(tmpFile))

	assert.True(t, IsFile(tmpFile))
	assert.False(t, IsFile(tmpDir))
}

func TestReadFileAsString(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "page.md")
	require.NoError(t, os.WriteFile(tmpFile, []byte("# AWS::SQS::Queue <a></a>\nbody"), 0644))

	contents, err := ReadFileAsString(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, "# AWS::SQS::Queue <a></a>\nbody", contents)
}

func TestReadFileAsStringMissingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.md")

	_, err := ReadFileAsString(missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
