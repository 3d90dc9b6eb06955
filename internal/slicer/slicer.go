// Package slicer extracts bare identifiers from descriptions synthesized by a
// name-producing facility (fmt verbs, String methods, runtime function names).
//
// A facility is probed once with a sentinel whose written form is known. The
// bytes before and after that written form are the facility's fixed framing,
// and the same amounts are cut from the description of any real input.
//
// This only works when the facility frames every same-shaped input with
// textually identical context. Slicer does not check that; a facility that
// violates it produces garbage slices, not errors.
package slicer

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// ErrSentinelNotFound is returned by Measure when the sentinel's written form
// does not occur in its own description.
var ErrSentinelNotFound = errors.New("sentinel not found in description")

// Slicer holds the framing measured around a sentinel.
type Slicer struct {
	Prefix int
	Suffix int
}

// Measure locates sentinel inside description and records the framing around
// its first occurrence.
func Measure(description, sentinel string) (Slicer, error) {
	if sentinel == "" {
		return Slicer{}, fmt.Errorf("empty sentinel: %w", ErrSentinelNotFound)
	}

	idx := strings.Index(description, sentinel)
	if idx < 0 {
		return Slicer{}, fmt.Errorf("%q in %q: %w", sentinel, description, ErrSentinelNotFound)
	}

	return Slicer{
		Prefix: idx,
		Suffix: len(description) - idx - len(sentinel),
	}, nil
}

// Cut removes the measured framing from description.
// A description too short to carry the framing yields "".
func (s Slicer) Cut(description string) string {
	if len(description) < s.Prefix+s.Suffix {
		return ""
	}

	return description[s.Prefix : len(description)-s.Suffix]
}

// Unqualify keeps the part of name after the last sep.
func Unqualify(name, sep string) string {
	if sep == "" {
		return name
	}

	if idx := strings.LastIndex(name, sep); idx >= 0 {
		return name[idx+len(sep):]
	}

	return name
}

type sentinel struct{}

func (sentinel) Void() {}

// methodValueSuffix is the framing the runtime appends after the name in the
// symbol of a method value, e.g. "-fm" in "pkg.T.Name-fm".
var methodValueSuffix = func() string {
	desc := runtime.FuncForPC(reflect.ValueOf(sentinel{}.Void).Pointer()).Name()

	s, err := Measure(desc, "Void")
	if err != nil {
		return ""
	}

	return desc[len(desc)-s.Suffix:]
}()

// FuncName returns the bare identifier of a function, method value or method
// expression, e.g. "Reset" for (*bytes.Buffer).Reset.
// It returns "" when fn is not a non-nil func.
func FuncName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}

	name := f.Name()
	if methodValueSuffix != "" && strings.HasSuffix(name, methodValueSuffix) {
		name = Slicer{Suffix: len(methodValueSuffix)}.Cut(name)
	}

	return Unqualify(name, ".")
}
