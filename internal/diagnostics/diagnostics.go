// Package diagnostics defines the structured error/warning type every
// pipeline stage produces instead of bare errors, and the rendering rules
// from spec.md §6.5.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/vynijales/ufersa-compilador-tonto/internal/token"
)

// Severity distinguishes hard errors from advisory warnings.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "Warning"
	}
	return "Error"
}

// Stage names the pipeline stage that raised a diagnostic.
type Stage int

const (
	Lexical Stage = iota
	Syntactic
	Semantic
)

func (s Stage) String() string {
	switch s {
	case Lexical:
		return "Lexical"
	case Syntactic:
		return "Syntactic"
	default:
		return "Semantic"
	}
}

// ErrorCode is a short stable identifier for a diagnostic's rule or cause,
// e.g. "L001" (illegal character) or "P4" (Relator pattern).
type ErrorCode string

// DiagnosticError is the structured diagnostic every stage returns.
// It implements the error interface so callers that only want an
// `error` can still use it directly.
type DiagnosticError struct {
	Code       ErrorCode
	Severity   Severity
	Stage      Stage
	Position   token.Position
	Message    string
	Suggestion string
}

func New(code ErrorCode, stage Stage, severity Severity, pos token.Position, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Stage: stage, Severity: severity, Position: pos, Message: message}
}

// WithSuggestion attaches a hint string and returns the receiver for chaining.
func (d *DiagnosticError) WithSuggestion(hint string) *DiagnosticError {
	d.Suggestion = hint
	return d
}

// Error renders the spec §6.5 format:
//
//	[STAGE - line L, column C] message
//	  suggestion: …
func (d *DiagnosticError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s - line %d, column %d] %s", d.Stage, d.Position.Line, d.Position.Column, d.Message)
	if d.Suggestion != "" {
		fmt.Fprintf(&b, "\n  suggestion: %s", d.Suggestion)
	}
	return b.String()
}

// HasErrors reports whether any diagnostic in the slice has Severity == Error.
func HasErrors(diags []*DiagnosticError) bool {
	for _, d := range diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Sort orders diagnostics for stable rendering: errors before warnings,
// source-position order within each group. Sorting is stable so that
// diagnostics emitted in the same position keep their emission order.
func Sort(diags []*DiagnosticError) {
	// Insertion sort: the slices involved are small (lint output, not
	// data), and stability matters more than asymptotic complexity here.
	for i := 1; i < len(diags); i++ {
		j := i
		for j > 0 && less(diags[j], diags[j-1]) {
			diags[j], diags[j-1] = diags[j-1], diags[j]
			j--
		}
	}
}

func less(a, b *DiagnosticError) bool {
	if a.Severity != b.Severity {
		return a.Severity < b.Severity // Error (0) before Warning (1)
	}
	if a.Position.Line != b.Position.Line {
		return a.Position.Line < b.Position.Line
	}
	return a.Position.Column < b.Position.Column
}
