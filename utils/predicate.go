package utils

// Integer is satisfied by every integer type and every type defined over one,
// which is what Go enums are.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type number interface {
	Integer | ~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// Fits reports whether v converts to E and back without loss.
func Fits[E Integer](v int64) bool {
	e := E(v)
	if int64(e) != v {
		return false
	}

	// unsigned E turns negative v into a large value that may still round-trip through int64
	return (v < 0) == (e < 0)
}
