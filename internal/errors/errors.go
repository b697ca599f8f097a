// Package errors provides sentinel errors and custom error types for reroot.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for each failure kind
var (
	// ErrParse indicates malformed Newick input
	ErrParse = errors.New("parse error")

	// ErrOutgroupNotFound indicates that no clade carries the outgroup label
	ErrOutgroupNotFound = errors.New("outgroup not found")

	// ErrInvalidOutgroup indicates that the outgroup resolves to the current root
	ErrInvalidOutgroup = errors.New("invalid outgroup")

	// ErrIO indicates a file read or write failure
	ErrIO = errors.New("i/o error")
)

// ParseError reports malformed Newick text. Pos is a 0-based byte offset;
// Line and Column are 1-based and only used for display.
type ParseError struct {
	Pos    int
	Line   int
	Column int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at offset %d (line %d, column %d): %s", e.Pos, e.Line, e.Column, e.Reason)
	}
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Reason)
}

// Is returns true if the target error is ErrParse
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a new ParseError
func NewParseError(pos, line, column int, reason string) *ParseError {
	return &ParseError{Pos: pos, Line: line, Column: column, Reason: reason}
}

// OutgroupNotFoundError represents a lookup for a label no clade carries
type OutgroupNotFoundError struct {
	Label string
}

func (e *OutgroupNotFoundError) Error() string {
	return fmt.Sprintf("outgroup not found: no clade labeled %q", e.Label)
}

// Is returns true if the target error is ErrOutgroupNotFound
func (e *OutgroupNotFoundError) Is(target error) bool {
	return target == ErrOutgroupNotFound
}

// NewOutgroupNotFoundError creates a new OutgroupNotFoundError
func NewOutgroupNotFoundError(label string) *OutgroupNotFoundError {
	return &OutgroupNotFoundError{Label: label}
}

// InvalidOutgroupError represents an outgroup that is already the root
type InvalidOutgroupError struct {
	Label string
}

func (e *InvalidOutgroupError) Error() string {
	return fmt.Sprintf("invalid outgroup: clade %q is the current root", e.Label)
}

// Is returns true if the target error is ErrInvalidOutgroup
func (e *InvalidOutgroupError) Is(target error) bool {
	return target == ErrInvalidOutgroup
}

// NewInvalidOutgroupError creates a new InvalidOutgroupError
func NewInvalidOutgroupError(label string) *InvalidOutgroupError {
	return &InvalidOutgroupError{Label: label}
}

// IOError represents a failed file operation in the command shell
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("i/o error: %s %s: %v", e.Op, e.Path, e.Err)
}

// Is returns true if the target error is ErrIO
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(op, path string, err error) *IOError {
	return &IOError{Op: op, Path: path, Err: err}
}
