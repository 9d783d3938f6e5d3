// Package pipeline implements the mathematics preprocessing pipeline.
//
// This package handles the two core stages and the optional rendering stage:
//   - Scanning markdown content for delimited mathematics spans
//     ($..$, $$..$$, \\(..\\), \\[..\\])
//   - Rewriting matched spans into wrapper markup that survives a
//     markdown renderer
//   - Markdown to HTML conversion via Goldmark
//
// Orchestration (book walking, batch processing, configuration) is handled
// by the root mdmath package and the CLI. This separation keeps the pipeline
// focused on pure content transformation: every function here maps one
// string to another with no I/O and no shared mutable state.
package pipeline
