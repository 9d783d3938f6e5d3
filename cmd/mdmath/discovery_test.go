package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		inputPath    string
		output       string
		baseInputDir string
		render       bool
		want         string
	}{
		{
			name:      "single file into directory",
			inputPath: "docs/chapter.md",
			output:    "out",
			want:      filepath.Join("out", "chapter.md"),
		},
		{
			name:      "single file explicit target",
			inputPath: "docs/chapter.md",
			output:    "result.md",
			want:      "result.md",
		},
		{
			name:      "render switches extension",
			inputPath: "docs/chapter.md",
			output:    "out",
			render:    true,
			want:      filepath.Join("out", "chapter.html"),
		},
		{
			name:         "directory structure mirrored",
			inputPath:    filepath.Join("docs", "part1", "intro.md"),
			output:       "out",
			baseInputDir: "docs",
			want:         filepath.Join("out", "part1", "intro.md"),
		},
		{
			name:         "markdown extension normalized",
			inputPath:    filepath.Join("docs", "notes.markdown"),
			output:       "out",
			baseInputDir: "docs",
			want:         filepath.Join("out", "notes.md"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveOutputPath(tt.inputPath, tt.output, tt.baseInputDir, tt.render)
			if got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiscoverFilesSingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "chapter.md")
	if err := os.WriteFile(path, []byte("$a$"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := discoverFiles(path, "", false)
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("found %d files, want 1", len(files))
	}
	if files[0].OutputPath != "" {
		t.Errorf("OutputPath = %q, want empty (stdout)", files[0].OutputPath)
	}
}

func TestDiscoverFilesRejectsNonMarkdown(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "style.css")
	if err := os.WriteFile(path, []byte("body{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := discoverFiles(path, "", false); err == nil {
		t.Error("discoverFiles() with non-markdown file returned nil error")
	}
}

func TestDiscoverFilesDirectoryNeedsOutput(t *testing.T) {
	t.Parallel()

	_, err := discoverFiles(t.TempDir(), "", false)
	if !errors.Is(err, ErrNoOutputDir) {
		t.Errorf("discoverFiles() error = %v, want ErrNoOutputDir", err)
	}
}

func TestDiscoverFilesWalksTree(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "part1"), 0o750); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"intro.md", filepath.Join("part1", "theory.md"), "skip.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := discoverFiles(dir, "out", false)
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("found %d files, want 2", len(files))
	}
	for _, f := range files {
		if f.OutputPath == "" {
			t.Errorf("file %q has empty output path", f.InputPath)
		}
	}
}
