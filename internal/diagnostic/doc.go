// Package diagnostic collects the problems found while constructing a
// reflection table, so that one failed construction reports every duplicate
// name and unresolved overload at once instead of only the first.
//
// Every Diagnostic wraps a sentinel error; Diagnostics.Err joins them so
// callers can still match with errors.Is.
package diagnostic
