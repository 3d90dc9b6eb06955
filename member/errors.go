package member

import "errors"

var (
	// ErrDuplicateMemberName is reported when two entries of one type register the same name.
	ErrDuplicateMemberName = errors.New("duplicate member name")
	// ErrNoMatchingOverload is reported when an explicit signature matches zero or several methods.
	ErrNoMatchingOverload = errors.New("no matching overload")
	// ErrUnknownMember is reported when an entry names a field or method the type does not have.
	ErrUnknownMember = errors.New("unknown member")
	// ErrInvalidEntry is reported for malformed registration entries.
	ErrInvalidEntry = errors.New("invalid registration entry")
	// ErrStaticMemberNotFound is returned by Bind when the table has no member of that name.
	ErrStaticMemberNotFound = errors.New("static member not found")
	// ErrNotReflectable is returned for types that were neither defined nor implement Reflector.
	ErrNotReflectable = errors.New("type is not reflectable")
	// ErrAlreadyDefined is returned by Define for a type that already has a table or a definition.
	ErrAlreadyDefined = errors.New("type already defined")
	// ErrVisitorMismatch is returned when a visitor cannot accept a member reference.
	ErrVisitorMismatch = errors.New("visitor does not accept member")
	// ErrInvalidInstance is returned for nil instances or instances of another type.
	ErrInvalidInstance = errors.New("invalid instance")
)
