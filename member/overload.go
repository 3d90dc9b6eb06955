package member

import (
	"fmt"
	"reflect"
	"strings"

	"typekit/internal/common"
	"typekit/internal/slicer"
)

// Overload registers the one method among candidates whose method expression
// type is exactly F, written with a pointer receiver: func(*Y, int) selects
// the method of Y taking an int and returning nothing.
//
// Go has no overloading, so an overload family is a set of differently named
// methods. Candidates are method names or method expressions; with no
// candidates every method of *owner competes. The entry is named after the
// selected method unless renamed with As.
func Overload[F any](candidates ...any) Entry {
	sig := reflect.TypeFor[F]()

	return Entry{
		symbol: sig.String(),
		build: func(owner reflect.Type) (Descriptor, error) {
			m, err := Select(owner, sig, candidates...)
			if err != nil {
				return Descriptor{}, err
			}

			return methodDescriptor(m), nil
		},
	}
}

// Select returns the single method of *owner among candidates whose method
// expression type equals signature. A signature whose first parameter is owner
// rather than *owner is accepted and read as its pointer form.
//
// Matching is exact, never best fit. Zero or several matches fail with
// ErrNoMatchingOverload; a candidate naming no method fails with
// ErrUnknownMember.
func Select(owner, signature reflect.Type, candidates ...any) (reflect.Method, error) {
	sig, err := pointerForm(owner, signature)
	if err != nil {
		return reflect.Method{}, err
	}

	methods, err := candidateMethods(reflect.PointerTo(owner), candidates)
	if err != nil {
		return reflect.Method{}, err
	}

	matches := common.Filter(methods, func(m reflect.Method) bool {
		return m.Type == sig
	})

	m, ok := common.Single(matches)
	if !ok {
		names := common.Map(matches, func(m reflect.Method) string { return m.Name })

		return reflect.Method{}, fmt.Errorf("%s among %d candidates, %d match [%s]: %w",
			sig, len(methods), len(matches), strings.Join(names, ", "), ErrNoMatchingOverload)
	}

	return m, nil
}

func pointerForm(owner, signature reflect.Type) (reflect.Type, error) {
	if signature == nil || signature.Kind() != reflect.Func || signature.NumIn() == 0 {
		return nil, fmt.Errorf("signature %v needs a receiver parameter: %w", signature, ErrInvalidEntry)
	}

	switch signature.In(0) {
	case reflect.PointerTo(owner):
		return signature, nil
	case owner:
		in := make([]reflect.Type, signature.NumIn())
		in[0] = reflect.PointerTo(owner)
		for i := 1; i < signature.NumIn(); i++ {
			in[i] = signature.In(i)
		}

		out := make([]reflect.Type, signature.NumOut())
		for i := range out {
			out[i] = signature.Out(i)
		}

		return reflect.FuncOf(in, out, signature.IsVariadic()), nil
	default:
		return nil, fmt.Errorf("signature %s has receiver %s, want %s: %w",
			signature, signature.In(0), owner, ErrInvalidEntry)
	}
}

func candidateMethods(ptr reflect.Type, candidates []any) ([]reflect.Method, error) {
	if len(candidates) == 0 {
		methods := make([]reflect.Method, 0, ptr.NumMethod())
		for i := 0; i < ptr.NumMethod(); i++ {
			methods = append(methods, ptr.Method(i))
		}

		return methods, nil
	}

	seen := make(map[string]struct{}, len(candidates))
	methods := make([]reflect.Method, 0, len(candidates))

	for _, c := range candidates {
		var name string

		switch c := c.(type) {
		case string:
			name = c
		default:
			name = slicer.FuncName(c)
			if name == "" {
				return nil, fmt.Errorf("candidate %T is neither a name nor a method expression: %w", c, ErrInvalidEntry)
			}
		}

		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		m, ok := ptr.MethodByName(name)
		if !ok {
			return nil, fmt.Errorf("overload candidate %s of %s: %w", name, ptr.Elem(), ErrUnknownMember)
		}

		methods = append(methods, m)
	}

	return methods, nil
}
