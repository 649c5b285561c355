package util

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/gruntwork-io/cfn-docgen/errors"
)

// FileExists returns true if the given path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir returns true if the path points to a directory.
func IsDir(path string) bool {
	fileInfo, err := os.Stat(path)
	return err == nil && fileInfo.IsDir()
}

// IsFile returns true if the path points to a file.
func IsFile(path string) bool {
	fileInfo, err := os.Stat(path)
	return err == nil && !fileInfo.IsDir()
}

// ReadFileAsString returns the contents of the file at the given path as a string.
func ReadFileAsString(path string) (string, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WithStackTraceAndPrefix(err, "Error reading file at path %s", path)
	}

	return string(bytes), nil
}

// ExpandPath expands a leading ~ in the given path to the current user's home directory.
func ExpandPath(path string) (string, error) {
	expandedPath, err := homedir.Expand(path)
	if err != nil {
		return "", errors.WithStackTrace(err)
	}

	return expandedPath, nil
}

// CanonicalPath returns the canonical version of the given path, relative to the given base path. That is, if the
// given path is a relative path, assume it is relative to the given base path. A canonical path is an absolute path
// with all relative components (e.g. "../") fully resolved, which makes it safe to compare paths as strings. A
// leading ~ is expanded to the current user's home directory.
func CanonicalPath(path string, basePath string) (string, error) {
	expandedPath, err := ExpandPath(path)
	if err != nil {
		return "", err
	}

	if !filepath.IsAbs(expandedPath) {
		expandedPath = JoinPath(basePath, expandedPath)
	}

	absPath, err := filepath.Abs(expandedPath)
	if err != nil {
		return "", errors.WithStackTrace(err)
	}

	return CleanPath(absPath), nil
}

// JoinPath joins paths with / as the path separator, regardless of platform, to improve cross-platform compatibility.
func JoinPath(elem ...string) string {
	return filepath.ToSlash(filepath.Join(elem...))
}

// CleanPath cleans the given path and forces / as the path separator to improve cross-platform compatibility.
func CleanPath(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// PathIsNotDirectory is returned when the given path is unexpectedly not a directory.
type PathIsNotDirectory struct {
	path string
}

func (err PathIsNotDirectory) Error() string {
	return fmt.Sprintf("%s is not a directory", err.path)
}

// NewPathIsNotDirectory creates a PathIsNotDirectory error for the given path.
func NewPathIsNotDirectory(path string) PathIsNotDirectory {
	return PathIsNotDirectory{path: path}
}
