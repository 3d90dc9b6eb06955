package enum

import "errors"

var (
	// ErrEnumProbeUnsupported is returned when no value of the scan range has a
	// valid name, or when the describer cannot be measured.
	ErrEnumProbeUnsupported = errors.New("enum probe found no named values")
	// ErrDuplicateEnumName is returned when two values describe to the same name.
	ErrDuplicateEnumName = errors.New("duplicate enum name")
	// ErrInvalidRange is returned for a scan range that is empty or does not
	// fit the enum's underlying type.
	ErrInvalidRange = errors.New("invalid scan range")
	// ErrConfigFrozen is returned by Configure once the table has been built.
	ErrConfigFrozen = errors.New("enum table already built")
)
