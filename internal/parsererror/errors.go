// Package parsererror defines the error kinds shared by ingestion, the cell store
// and the ledger passes.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched with errors.Is for a missing workbook, sheet or file.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a missing workbook file or sheet
type NotFoundError struct {
	Kind string // "workbook", "sheet" or "file"
	Name string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.Kind, e.Name, e.Err)
	}
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.Name)
}

// Is lets errors.Is(err, ErrNotFound) succeed for every NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ParseError represents an unparsable date or numeric field. Ingestion aborts the
// whole batch on the first one.
type ParseError struct {
	Source string // "bank", "bank-csv" or "ledger"
	Field  string
	Row    int
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s' on row %d: %v",
		e.Source, e.Field, e.Value, e.Row, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a batch whose columns disagree on length, or a
// configuration value outside its allowed set.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// CategorizationError represents a failure of an external categorization service.
// Rule matching never produces one: no match is an empty label.
type CategorizationError struct {
	Transaction string
	Strategy    string
	Err         error
}

func (e *CategorizationError) Error() string {
	return fmt.Sprintf("categorization failed for %s using %s: %v",
		e.Transaction, e.Strategy, e.Err)
}

func (e *CategorizationError) Unwrap() error {
	return e.Err
}
