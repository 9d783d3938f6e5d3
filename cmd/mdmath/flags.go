package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

const usageText = `mdmath - rewrite $-delimited mathematics in markdown for MathJax

Usage:
  mdmath [flags] <file-or-directory>

Input may be a single markdown file or a directory tree. Single-file output
goes to stdout unless --output is given; directory input requires --output.

Flags:
      --config string    config file (default "mdmath.yaml" if present)
  -o, --output string    output file or directory
      --render           render preprocessed markdown to HTML
      --style string     stylesheet name for rendered HTML
  -w, --workers int      number of parallel workers (0 = one per CPU)
  -q, --quiet            suppress per-file progress output
  -v, --verbose          verbose diagnostics
      --version          print version and exit
  -h, --help             show this help
`

// cliFlags holds parsed command-line flags.
type cliFlags struct {
	config  string
	output  string
	render  bool
	style   string
	workers int
	quiet   bool
	verbose bool
	version bool
	help    bool
}

// parseFlags parses args (without the program name) and returns the flags
// and remaining positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("mdmath", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // usage printed by run, not by pflag

	fs.StringVar(&flags.config, "config", "", "config file")
	fs.StringVarP(&flags.output, "output", "o", "", "output file or directory")
	fs.BoolVar(&flags.render, "render", false, "render preprocessed markdown to HTML")
	fs.StringVar(&flags.style, "style", "", "stylesheet name for rendered HTML")
	fs.IntVarP(&flags.workers, "workers", "w", 0, "number of parallel workers")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress per-file progress output")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose diagnostics")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")
	fs.BoolVarP(&flags.help, "help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("parsing flags: %w", err)
	}

	return flags, fs.Args(), nil
}
