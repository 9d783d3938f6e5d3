package mdmath

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyContent   = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrStyleNotFound  = errors.New("style not found")
)
