package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"typekit/internal/common"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic represents a single construction problem.
type Diagnostic struct {
	Severity Severity
	// Code is a short identifier for this kind of problem, e.g. "duplicate-name".
	Code string
	// Owner names the type whose table was being built.
	Owner string
	// Member names the registration entry concerned, if any.
	Member string
	// Err is the wrapped cause.
	Err error
	// Suggestions are nearby names worth trying instead.
	Suggestions []string
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Owner != "" {
		b.WriteString("[" + d.Owner + "] ")
	}

	if d.Member != "" {
		b.WriteString(d.Member + ": ")
	}

	if d.Code != "" {
		fmt.Fprintf(&b, "[%s] ", d.Code)
	}

	if d.Err != nil {
		b.WriteString(d.Err.Error())
	}

	if len(d.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	return b.String()
}

// Diagnostics holds everything reported while building one table.
type Diagnostics struct {
	Owner    string
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// New creates Diagnostics for the given owner type name.
func New(owner string) *Diagnostics {
	return &Diagnostics{Owner: owner}
}

// AddError records err against member.
func (d *Diagnostics) AddError(code, member string, err error, suggestions ...string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:    SeverityError,
		Code:        code,
		Owner:       d.Owner,
		Member:      member,
		Err:         err,
		Suggestions: suggestions,
	})
}

// AddWarning records a non-fatal problem.
func (d *Diagnostics) AddWarning(code, member string, err error) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Owner:    d.Owner,
		Member:   member,
		Err:      err,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge appends the reports of other.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// Err returns nil when there are no errors, otherwise an error matching every
// recorded cause with errors.Is.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	errs := make([]error, 0, len(d.Errors))
	for _, e := range d.Errors {
		errs = append(errs, &wrapped{text: e.String(), cause: e.Err})
	}

	return errors.Join(errs...)
}

type wrapped struct {
	text  string
	cause error
}

func (w *wrapped) Error() string { return w.text }

func (w *wrapped) Unwrap() error { return w.cause }
