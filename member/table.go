package member

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"typekit/internal/diagnostic"
	"typekit/internal/match"
)

// suggestionLimit caps "did you mean" hints per diagnostic.
const suggestionLimit = 3

// Table is the ordered, immutable set of descriptors of one owner type.
type Table struct {
	owner       reflect.Type
	descriptors []Descriptor
	index       map[string]int
}

// newTable resolves entries against owner, in order. Every failing entry is
// reported, not only the first.
func newTable(owner reflect.Type, entries []Entry) (*Table, error) {
	diags := diagnostic.New(owner.String())

	t := &Table{
		owner:       owner,
		descriptors: make([]Descriptor, 0, len(entries)),
		index:       make(map[string]int, len(entries)),
	}

	for _, e := range entries {
		d, err := e.resolve(owner)
		if err != nil {
			diags.AddError(diagnosticCode(err), e.symbol, err, suggest(owner, e.symbol, err)...)
			continue
		}

		if _, dup := t.index[d.name]; dup {
			diags.AddError("duplicate-name", d.name,
				fmt.Errorf("%q registered twice: %w", d.name, ErrDuplicateMemberName))

			continue
		}

		t.index[d.name] = len(t.descriptors)
		t.descriptors = append(t.descriptors, d)
	}

	if err := diags.Err(); err != nil {
		return nil, err
	}

	return t, nil
}

func diagnosticCode(err error) string {
	switch {
	case errors.Is(err, ErrUnknownMember):
		return "unknown-member"
	case errors.Is(err, ErrNoMatchingOverload):
		return "no-matching-overload"
	default:
		return "invalid-entry"
	}
}

// suggest lists fields and methods of owner close to an unknown symbol.
func suggest(owner reflect.Type, symbol string, err error) []string {
	if !errors.Is(err, ErrUnknownMember) {
		return nil
	}

	var names []string
	if owner.Kind() == reflect.Struct {
		for i := 0; i < owner.NumField(); i++ {
			names = append(names, owner.Field(i).Name)
		}
	}

	ptr := reflect.PointerTo(owner)
	for i := 0; i < ptr.NumMethod(); i++ {
		names = append(names, ptr.Method(i).Name)
	}

	return match.Suggest(symbol, names, suggestionLimit)
}

// Owner returns the type the table describes.
func (t *Table) Owner() reflect.Type { return t.owner }

// OwnerName returns the package-qualified name of the owner, e.g. "shapes.Point".
func (t *Table) OwnerName() string { return t.owner.String() }

// TypeName returns the package-qualified name of T without building a table.
func TypeName[T any]() string { return reflect.TypeFor[T]().String() }

// Len returns the number of descriptors.
func (t *Table) Len() int { return len(t.descriptors) }

// At returns the i-th descriptor in declaration order.
func (t *Table) At(i int) Descriptor { return t.descriptors[i] }

// Descriptors returns a copy of all descriptors in declaration order.
func (t *Table) Descriptors() []Descriptor { return slices.Clone(t.descriptors) }

// Lookup finds a descriptor by exact, case-sensitive name.
func (t *Table) Lookup(name string) (Descriptor, bool) {
	i, ok := t.index[name]
	if !ok {
		return Descriptor{}, false
	}

	return t.descriptors[i], true
}

// Names returns all registered names in declaration order.
func (t *Table) Names() []string {
	names := make([]string, len(t.descriptors))
	for i, d := range t.descriptors {
		names[i] = d.name
	}

	return names
}

// Each calls fn for every descriptor in declaration order. ptr must be a
// non-nil pointer to the owner type.
func (t *Table) Each(ptr any, fn func(owner any, name string, ref any)) error {
	v, err := t.instance(ptr)
	if err != nil {
		return err
	}

	for _, d := range t.descriptors {
		fn(ptr, d.name, d.access(v).Interface())
	}

	return nil
}

// Visit calls fn for the descriptor called name. It reports false, without
// error, when there is no such descriptor.
func (t *Table) Visit(ptr any, name string, fn func(owner any, name string, ref any)) (bool, error) {
	v, err := t.instance(ptr)
	if err != nil {
		return false, err
	}

	d, ok := t.Lookup(name)
	if !ok {
		return false, nil
	}

	fn(ptr, d.name, d.access(v).Interface())

	return true, nil
}

func (t *Table) instance(ptr any) (reflect.Value, error) {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, fmt.Errorf("%T, want non-nil *%s: %w", ptr, t.owner, ErrInvalidInstance)
	}

	if v.Type().Elem() != t.owner {
		return reflect.Value{}, fmt.Errorf("%T, want *%s: %w", ptr, t.owner, ErrInvalidInstance)
	}

	return v, nil
}

// accepts checks that every member reference is assignable to rt.
func (t *Table) accepts(rt reflect.Type) error {
	for _, d := range t.descriptors {
		if !d.ref.AssignableTo(rt) {
			return fmt.Errorf("%s.%s is %s, visitor takes %s: %w", t.owner, d.name, d.ref, rt, ErrVisitorMismatch)
		}
	}

	return nil
}
