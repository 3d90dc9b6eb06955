package member

import (
	"fmt"
	"reflect"
)

// ForEach calls fn once per member of *obj, in declaration order, with the
// member's name and reference.
//
// fn must accept every member: if any reference is not assignable to R the
// call fails with ErrVisitorMismatch before visiting anything. Use R = any and
// switch on the reference inside fn to visit heterogeneous members.
func ForEach[T, R any](obj *T, fn func(owner *T, name string, ref R)) error {
	t, ptr, err := prepare(obj)
	if err != nil {
		return err
	}

	rt := reflect.TypeFor[R]()
	if err := t.accepts(rt); err != nil {
		return err
	}

	for _, d := range t.descriptors {
		fn(obj, d.name, as[R](d.access(ptr), rt))
	}

	return nil
}

// Visit calls fn for the member called name if its reference is assignable to
// R. Members fn cannot accept are not considered at all, so a typed visitor
// only ever sees members of its type. An unknown name is not an error: Visit
// reports false.
func Visit[T, R any](obj *T, name string, fn func(owner *T, name string, ref R)) (bool, error) {
	t, ptr, err := prepare(obj)
	if err != nil {
		return false, err
	}

	d, ok := t.Lookup(name)
	if !ok {
		return false, nil
	}

	rt := reflect.TypeFor[R]()
	if !d.ref.AssignableTo(rt) {
		return false, nil
	}

	fn(obj, d.name, as[R](d.access(ptr), rt))

	return true, nil
}

// Walk is the untyped form of ForEach, for recursing into member references
// whose static type the visitor does not know. ptr must be a non-nil pointer
// to a reflectable type.
func Walk(ptr any, fn func(owner any, name string, ref any)) error {
	t := reflect.TypeOf(ptr)
	if t == nil || t.Kind() != reflect.Pointer {
		return fmt.Errorf("%T is not a pointer: %w", ptr, ErrInvalidInstance)
	}

	table, err := TableFor(t.Elem())
	if err != nil {
		return err
	}

	return table.Each(ptr, fn)
}

// Names returns the member names of T in declaration order.
func Names[T any]() ([]string, error) {
	return NamesAs[T, []string]()
}

// NamesAs returns the member names of T as the caller's slice type.
func NamesAs[T any, S ~[]string]() (S, error) {
	t, err := TableOf[T]()
	if err != nil {
		var zero S
		return zero, err
	}

	return S(t.Names()), nil
}

func prepare[T any](obj *T) (*Table, reflect.Value, error) {
	t, err := TableOf[T]()
	if err != nil {
		return nil, reflect.Value{}, err
	}

	if obj == nil {
		return nil, reflect.Value{}, fmt.Errorf("nil *%s: %w", t.owner, ErrInvalidInstance)
	}

	return t, reflect.ValueOf(obj), nil
}

// as converts a member reference to the visitor's parameter type.
// Assignability was checked by the caller.
func as[R any](v reflect.Value, rt reflect.Type) R {
	if !v.IsValid() {
		var zero R
		return zero
	}

	if rt.Kind() != reflect.Interface && v.Type() != rt {
		v = v.Convert(rt)
	}

	return v.Interface().(R)
}
