package member

import (
	"fmt"
	"reflect"
	"unsafe"

	"typekit/internal/slicer"
)

// Descriptor is one registered field or method of an owner type.
type Descriptor struct {
	name string
	kind Kind
	// typ is the field type, or the method type without its receiver.
	typ reflect.Type
	// ref is what visitors receive: *typ for fields, typ for methods.
	ref reflect.Type
	// access maps a non-nil *owner to the member reference.
	access func(owner reflect.Value) reflect.Value
}

// Name returns the registered name.
func (d Descriptor) Name() string { return d.name }

// Kind reports whether the descriptor is a field or a method.
func (d Descriptor) Kind() Kind { return d.kind }

// Type returns the field type, or the method's func type without the receiver.
func (d Descriptor) Type() reflect.Type { return d.typ }

// RefType returns the type of the reference handed to visitors.
func (d Descriptor) RefType() reflect.Type { return d.ref }

// Ref returns the member reference for owner, which must be a non-nil pointer
// to the descriptor's owner type.
func (d Descriptor) Ref(owner reflect.Value) reflect.Value {
	return d.access(owner)
}

// Entry is one registration item. Entries are resolved against the owner
// type when its table is built.
type Entry struct {
	// name overrides the derived name when set.
	name string
	// symbol is what the entry refers to, for diagnostics.
	symbol string
	build  func(owner reflect.Type) (Descriptor, error)
}

// As registers the entry under name instead of the symbol's own identifier.
func (e Entry) As(name string) Entry {
	e.name = name
	return e
}

// Symbol returns the field, method or signature the entry refers to.
func (e Entry) Symbol() string { return e.symbol }

func (e Entry) resolve(owner reflect.Type) (Descriptor, error) {
	if e.build == nil {
		return Descriptor{}, fmt.Errorf("zero Entry: %w", ErrInvalidEntry)
	}

	d, err := e.build(owner)
	if err != nil {
		return Descriptor{}, err
	}

	if e.name != "" {
		d.name = e.name
	}

	if d.name == "" {
		return Descriptor{}, fmt.Errorf("%s: empty name: %w", e.symbol, ErrInvalidEntry)
	}

	return d, nil
}

// Field registers the struct field called symbol under the same name.
// Fields promoted from embedded structs resolve too, unless the embedding goes
// through a pointer. Unexported fields are supported.
func Field(symbol string) Entry {
	return Entry{
		symbol: symbol,
		build: func(owner reflect.Type) (Descriptor, error) {
			if owner.Kind() != reflect.Struct {
				return Descriptor{}, fmt.Errorf("field %s of non-struct %s: %w", symbol, owner, ErrInvalidEntry)
			}

			sf, ok := owner.FieldByName(symbol)
			if !ok {
				return Descriptor{}, fmt.Errorf("field %s: %w", symbol, ErrUnknownMember)
			}

			if err := checkEmbedding(owner, sf.Index); err != nil {
				return Descriptor{}, fmt.Errorf("field %s: %w", symbol, err)
			}

			index := sf.Index

			return Descriptor{
				name: symbol,
				kind: KindField,
				typ:  sf.Type,
				ref:  reflect.PointerTo(sf.Type),
				access: func(ptr reflect.Value) reflect.Value {
					f := ptr.Elem().FieldByIndex(index)
					// NewAt instead of Addr keeps unexported fields settable.
					return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr()))
				},
			}, nil
		},
	}
}

// checkEmbedding rejects promoted fields reached through embedded pointers.
func checkEmbedding(owner reflect.Type, index []int) error {
	t := owner
	for _, i := range index[:len(index)-1] {
		t = t.Field(i).Type
		if t.Kind() == reflect.Pointer {
			return fmt.Errorf("promoted through embedded pointer %s: %w", t, ErrInvalidEntry)
		}
	}

	return nil
}

// Ref registers a typed field accessor. Go cannot recover a name from a
// closure, so name is required.
func Ref[T, M any](name string, get func(*T) *M) Entry {
	return Entry{
		name:   name,
		symbol: name,
		build: func(owner reflect.Type) (Descriptor, error) {
			if want := reflect.TypeFor[T](); owner != want {
				return Descriptor{}, fmt.Errorf("accessor %s belongs to %s, not %s: %w", name, want, owner, ErrInvalidEntry)
			}

			if get == nil {
				return Descriptor{}, fmt.Errorf("accessor %s is nil: %w", name, ErrInvalidEntry)
			}

			typ := reflect.TypeFor[M]()

			return Descriptor{
				name: name,
				kind: KindField,
				typ:  typ,
				ref:  reflect.PointerTo(typ),
				access: func(ptr reflect.Value) reflect.Value {
					return reflect.ValueOf(get(ptr.Interface().(*T)))
				},
			}, nil
		},
	}
}

// Method registers the method called symbol from the method set of *owner.
// Only exported methods are visible to reflection.
func Method(symbol string) Entry {
	return Entry{
		symbol: symbol,
		build: func(owner reflect.Type) (Descriptor, error) {
			m, ok := reflect.PointerTo(owner).MethodByName(symbol)
			if !ok {
				return Descriptor{}, fmt.Errorf("method %s: %w", symbol, ErrUnknownMember)
			}

			return methodDescriptor(m), nil
		},
	}
}

// Func registers a method given as a method expression, such as (*Y).Reset
// or Y.String. The name is the method's own identifier.
func Func(expr any) Entry {
	name := slicer.FuncName(expr)

	return Entry{
		symbol: name,
		build: func(owner reflect.Type) (Descriptor, error) {
			if name == "" {
				return Descriptor{}, fmt.Errorf("%T is not a method expression: %w", expr, ErrInvalidEntry)
			}

			m, err := Select(owner, reflect.TypeOf(expr), name)
			if err != nil {
				return Descriptor{}, err
			}

			return methodDescriptor(m), nil
		},
	}
}

// methodDescriptor binds m, a method of *owner, by index.
func methodDescriptor(m reflect.Method) Descriptor {
	typ := unbound(m.Type)
	index := m.Index

	return Descriptor{
		name: m.Name,
		kind: KindMethod,
		typ:  typ,
		ref:  typ,
		access: func(ptr reflect.Value) reflect.Value {
			return ptr.Method(index)
		},
	}
}

// unbound drops the receiver from a method expression type.
func unbound(expr reflect.Type) reflect.Type {
	in := make([]reflect.Type, 0, expr.NumIn()-1)
	for i := 1; i < expr.NumIn(); i++ {
		in = append(in, expr.In(i))
	}

	out := make([]reflect.Type, 0, expr.NumOut())
	for i := 0; i < expr.NumOut(); i++ {
		out = append(out, expr.Out(i))
	}

	return reflect.FuncOf(in, out, expr.IsVariadic())
}
