package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdmath/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrNoInput     = errors.New("no input specified")
	ErrNoOutputDir = errors.New("directory input requires --output")
)

// FileToProcess represents a single file to preprocess.
// An empty OutputPath means the result goes to stdout.
type FileToProcess struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all markdown files to preprocess. render selects the
// .html output extension instead of .md.
func discoverFiles(inputPath, output string, render bool) ([]FileToProcess, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := fileutil.ValidateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := ""
		if output != "" {
			outPath = resolveOutputPath(inputPath, output, "", render)
		}
		return []FileToProcess{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	if output == "" {
		return nil, fmt.Errorf("%w: %q is a directory", ErrNoOutputDir, inputPath)
	}

	var files []FileToProcess
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdownFile(path) {
			return nil
		}
		outPath := resolveOutputPath(path, output, inputPath, render)
		files = append(files, FileToProcess{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the output path for a markdown file.
// When baseInputDir is set, the input's directory structure is mirrored
// under the output directory.
func resolveOutputPath(inputPath, output, baseInputDir string, render bool) string {
	outExt := ".md"
	if render {
		outExt = ".html"
	}

	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	// Explicit file target for single-file input
	if baseInputDir == "" && filepath.Ext(output) != "" {
		return output
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(output, relDir, base+outExt)
		}
	}

	return filepath.Join(output, base+outExt)
}
