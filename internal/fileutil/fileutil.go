// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrInvalidExtension indicates a file is not a markdown file.
var ErrInvalidExtension = errors.New("file must have .md or .markdown extension")

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsMarkdownFile returns true if the path has a markdown extension.
func IsMarkdownFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".md" || ext == ".markdown"
}

// ValidateMarkdownExtension checks that the file has a .md or .markdown extension.
func ValidateMarkdownExtension(path string) error {
	if !IsMarkdownFile(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}
