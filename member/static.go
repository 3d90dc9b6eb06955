package member

import (
	"fmt"
	"reflect"

	"typekit/internal/diagnostic"
	"typekit/internal/match"
)

// Handle is a member of T resolved ahead of use, with its reference type R
// checked. Create handles with Bind, typically once at package initialization.
type Handle[T, R any] struct {
	desc Descriptor
	rt   reflect.Type
}

// Bind resolves the member called name of T. Unlike Visit, a missing name is
// an error (ErrStaticMemberNotFound, with close names suggested), and so is a
// reference type not assignable to R (ErrVisitorMismatch).
func Bind[T, R any](name string) (*Handle[T, R], error) {
	t, err := TableOf[T]()
	if err != nil {
		return nil, err
	}

	d, ok := t.Lookup(name)
	if !ok {
		diags := diagnostic.New(t.OwnerName())
		diags.AddError("static-member-not-found", name,
			fmt.Errorf("no member %q: %w", name, ErrStaticMemberNotFound),
			match.Suggest(name, t.Names(), suggestionLimit)...)

		return nil, diags.Err()
	}

	rt := reflect.TypeFor[R]()
	if !d.ref.AssignableTo(rt) {
		return nil, fmt.Errorf("%s.%s is %s, not %s: %w", t.owner, name, d.ref, rt, ErrVisitorMismatch)
	}

	return &Handle[T, R]{desc: d, rt: rt}, nil
}

// MustBind is like Bind but panics on error.
func MustBind[T, R any](name string) *Handle[T, R] {
	h, err := Bind[T, R](name)
	if err != nil {
		panic(err)
	}

	return h
}

// Name returns the bound member's name.
func (h *Handle[T, R]) Name() string { return h.desc.name }

// Descriptor returns the bound member's descriptor.
func (h *Handle[T, R]) Descriptor() Descriptor { return h.desc }

// Get returns the member reference of obj, which must not be nil.
func (h *Handle[T, R]) Get(obj *T) R {
	return as[R](h.desc.access(reflect.ValueOf(obj)), h.rt)
}

// Visit calls fn with the member reference of obj, which must not be nil.
func (h *Handle[T, R]) Visit(obj *T, fn func(owner *T, name string, ref R)) {
	fn(obj, h.desc.name, h.Get(obj))
}
