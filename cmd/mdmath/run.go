package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	mdmath "github.com/alnah/go-mdmath"
	"github.com/alnah/go-mdmath/internal/config"
	"github.com/alnah/go-mdmath/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for CLI operations.
var (
	ErrReadMarkdown    = errors.New("failed to read markdown file")
	ErrWriteOutput     = errors.New("failed to write output file")
	ErrTransformerInit = errors.New("failed to initialize transformer")
)

// processParams groups parameters shared across batch processing.
type processParams struct {
	render bool
	style  string
}

// ProcessResult holds the outcome of a single file.
type ProcessResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// run orchestrates the preprocessing of one file or a directory tree.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.help {
		fmt.Fprint(stdout, usageText)
		return nil
	}
	if flags.version {
		fmt.Fprintln(stdout, "mdmath "+Version)
		return nil
	}

	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}

	// Flags override config
	params := processParams{
		render: flags.render || cfg.Render.Enabled,
		style:  cfg.Render.Style,
	}
	if flags.style != "" {
		params.style = flags.style
	}

	input := cfg.Input.DefaultDir
	if len(positional) > 0 {
		input = positional[0]
	}
	if input == "" {
		return fmt.Errorf("%w\n\n%s", ErrNoInput, usageText)
	}

	output := flags.output
	if output == "" {
		output = cfg.Output.DefaultDir
	}

	files, err := discoverFiles(input, output, params.render)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(stderr, "no markdown files found")
		return nil
	}

	// Single-file stdout mode bypasses the batch machinery.
	if len(files) == 1 && files[0].OutputPath == "" {
		tr, err := newTransformer(params)
		if err != nil {
			return err
		}
		content, err := processFile(ctx, tr, files[0].InputPath, params)
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, content)
		return err
	}

	workers := flags.workers
	if workers == 0 {
		workers = cfg.Workers
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	results := processBatch(ctx, files, workers, params)
	return reportResults(results, flags.quiet, stderr)
}

// loadConfig loads the config from an explicit path, the default location,
// or falls back to built-in defaults when no file exists.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if fileutil.FileExists(config.DefaultConfigName) {
		return config.Load(config.DefaultConfigName)
	}
	return config.Default(), nil
}

// newTransformer builds a transformer for the given parameters.
func newTransformer(params processParams) (*mdmath.Transformer, error) {
	var opts []mdmath.Option
	if params.style != "" {
		opts = append(opts, mdmath.WithStyleName(params.style))
	}
	tr, err := mdmath.NewTransformer(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransformerInit, err)
	}
	return tr, nil
}

// processBatch preprocesses files concurrently with a bounded worker fan-out.
// Each worker builds its own transformer; transformers are stateless but
// cheap enough that sharing buys nothing.
func processBatch(ctx context.Context, files []FileToProcess, workers int, params processParams) []ProcessResult {
	if workers > len(files) {
		workers = len(files)
	}

	results := make([]ProcessResult, len(files))
	jobs := make(chan int, len(files))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			tr, err := newTransformer(params)
			if err != nil {
				for idx := range jobs {
					results[idx] = ProcessResult{InputPath: files[idx].InputPath, Err: err}
				}
				return
			}

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ProcessResult{InputPath: files[idx].InputPath, Err: ctx.Err()}
					continue
				}
				results[idx] = processAndWrite(ctx, tr, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// processFile reads and transforms a single file, returning the new content.
func processFile(ctx context.Context, tr *mdmath.Transformer, inputPath string, params processParams) (string, error) {
	data, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	if params.render {
		html, err := tr.RenderHTML(ctx, string(data))
		if err != nil {
			return "", err
		}
		return html, nil
	}
	return tr.Transform(ctx, string(data)), nil
}

// processAndWrite processes one file and writes the result to its output path.
func processAndWrite(ctx context.Context, tr *mdmath.Transformer, f FileToProcess, params processParams) ProcessResult {
	start := time.Now()
	result := ProcessResult{InputPath: f.InputPath, OutputPath: f.OutputPath}

	content, err := processFile(ctx, tr, f.InputPath, params)
	if err != nil {
		result.Err = err
		return result
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return result
	}
	if err := os.WriteFile(f.OutputPath, []byte(content), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// reportResults prints per-file outcomes and returns an error if any failed.
func reportResults(results []ProcessResult, quiet bool, stderr io.Writer) error {
	var failed int
	var firstErr error

	for _, r := range results {
		if r.Err != nil {
			failed++
			if firstErr == nil {
				firstErr = r.Err
			}
			fmt.Fprintf(stderr, "error: %s: %v\n", r.InputPath, r.Err)
			continue
		}
		if !quiet {
			fmt.Fprintf(stderr, "%s -> %s (%s)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed: %w", failed, len(results), firstErr)
	}
	return nil
}
