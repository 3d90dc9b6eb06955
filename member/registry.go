package member

import (
	"fmt"
	"reflect"
	"sync"

	"typekit/logger"
)

// Reflector is implemented by types that register their own members.
// ReflectMembers is called once, on a pointer to a zero value, so it must not
// depend on the receiver's state.
type Reflector interface {
	ReflectMembers() []Entry
}

var reflectorType = reflect.TypeFor[Reflector]()

// slot memoizes the table of one type.
type slot struct {
	entries []Entry
	once    sync.Once
	table   *Table
	err     error
}

func (s *slot) build(owner reflect.Type) (*Table, error) {
	s.once.Do(func() {
		s.table, s.err = newTable(owner, s.entries)
		s.entries = nil

		if s.err != nil {
			logger.Default().Error("member: table for %s: %v", owner, s.err)
			return
		}

		logger.Default().Debug("member: built table for %s with %d members", owner, s.table.Len())
	})

	return s.table, s.err
}

// registry maps reflect.Type to *slot.
var registry sync.Map

// Define registers the members of T, in order. It must run before the first
// use of T's table; a second definition fails with ErrAlreadyDefined.
func Define[T any](entries ...Entry) error {
	return DefineType(reflect.TypeFor[T](), entries...)
}

// MustDefine is like Define but panics on error. It returns true so it can
// initialize a package-level blank variable.
func MustDefine[T any](entries ...Entry) bool {
	if err := Define[T](entries...); err != nil {
		panic(err)
	}

	return true
}

// DefineType is Define for a type known only at run time.
func DefineType(owner reflect.Type, entries ...Entry) error {
	if err := checkOwner(owner); err != nil {
		return err
	}

	if _, loaded := registry.LoadOrStore(owner, &slot{entries: entries}); loaded {
		return fmt.Errorf("%s: %w", owner, ErrAlreadyDefined)
	}

	logger.Default().Debug("member: defined %s with %d entries", owner, len(entries))

	return nil
}

func checkOwner(owner reflect.Type) error {
	if owner == nil {
		return fmt.Errorf("nil type: %w", ErrNotReflectable)
	}

	switch owner.Kind() {
	case reflect.Pointer, reflect.Interface:
		return fmt.Errorf("%s: %s types have no members of their own: %w", owner, owner.Kind(), ErrNotReflectable)
	default:
		return nil
	}
}

// lookup returns the slot of owner, creating it from Reflector if needed.
func lookup(owner reflect.Type) (*slot, bool) {
	if checkOwner(owner) != nil {
		return nil, false
	}

	if s, ok := registry.Load(owner); ok {
		return s.(*slot), true
	}

	if !reflect.PointerTo(owner).Implements(reflectorType) {
		return nil, false
	}

	entries := reflect.New(owner).Interface().(Reflector).ReflectMembers()
	s, _ := registry.LoadOrStore(owner, &slot{entries: entries})

	return s.(*slot), true
}

// TableOf returns the table of T, building it on first use.
func TableOf[T any]() (*Table, error) {
	return TableFor(reflect.TypeFor[T]())
}

// TableFor returns the table of owner, building it on first use.
// Construction errors are permanent: every later call returns the same error.
func TableFor(owner reflect.Type) (*Table, error) {
	s, ok := lookup(owner)
	if !ok {
		return nil, fmt.Errorf("%v: %w", owner, ErrNotReflectable)
	}

	return s.build(owner)
}

// IsReflectable reports whether T has a usable table.
func IsReflectable[T any]() bool {
	return IsReflectableType(reflect.TypeFor[T]())
}

// IsReflectableType reports whether owner has a usable table, building it if
// it was not built yet.
func IsReflectableType(owner reflect.Type) bool {
	_, err := TableFor(owner)
	return err == nil
}

// IsReflectableValue reports whether v, or what v points to, has a usable table.
// It is the check visitors use before recursing into a member reference.
func IsReflectableValue(v any) bool {
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t != nil && IsReflectableType(t)
}
