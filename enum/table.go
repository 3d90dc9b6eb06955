package enum

import (
	"cmp"
	"reflect"
	"slices"

	"typekit/utils"
)

// Entry is one named enumerator.
type Entry[E utils.Integer] struct {
	Name  string
	Value E
}

// Table holds the named values of one enum type, ascending by value.
type Table[E utils.Integer] struct {
	owner   reflect.Type
	rng     ScanRange
	entries []Entry[E]
	byName  map[string]E
}

// Owner returns the enum type.
func (t *Table[E]) Owner() reflect.Type { return t.owner }

// OwnerName returns the package-qualified name of the enum type.
func (t *Table[E]) OwnerName() string { return t.owner.String() }

// Range returns the range the table was probed over.
func (t *Table[E]) Range() ScanRange { return t.rng }

// Len returns the number of named values.
func (t *Table[E]) Len() int { return len(t.entries) }

// Entries returns a copy of the entries.
func (t *Table[E]) Entries() []Entry[E] { return slices.Clone(t.entries) }

// Values returns the named values, ascending.
func (t *Table[E]) Values() []E {
	values := make([]E, len(t.entries))
	for i, e := range t.entries {
		values[i] = e.Value
	}

	return values
}

// Names returns the names, in value order.
func (t *Table[E]) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}

	return names
}

// Lookup returns the name of v.
func (t *Table[E]) Lookup(v E) (string, bool) {
	i, ok := slices.BinarySearchFunc(t.entries, v, func(e Entry[E], v E) int {
		return cmp.Compare(e.Value, v)
	})
	if !ok {
		return "", false
	}

	return t.entries[i].Name, true
}

// ToString returns the name of v, or "" when v is not in the table.
func (t *Table[E]) ToString(v E) string {
	name, _ := t.Lookup(v)
	return name
}

// Parse returns the value named name. Names are case-sensitive.
func (t *Table[E]) Parse(name string) (E, bool) {
	v, ok := t.byName[name]
	return v, ok
}

// Contains reports whether v is a named value.
func (t *Table[E]) Contains(v E) bool {
	_, ok := t.Lookup(v)
	return ok
}
