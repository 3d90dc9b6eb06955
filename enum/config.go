package enum

import (
	"fmt"
	"math"

	"typekit/utils"
)

// ScanRange is the inclusive interval of integers probed for enumerators.
type ScanRange struct {
	Min int64
	Max int64
}

// DefaultRange is used for enums that were never configured.
var DefaultRange = ScanRange{Min: 0, Max: 64}

// Len returns the number of integers in the range. The full int64 range holds
// one more than math.MaxUint64, so Len saturates there.
func (r ScanRange) Len() uint64 {
	n := uint64(r.Max) - uint64(r.Min)
	if n == math.MaxUint64 {
		return n
	}

	return n + 1
}

func (r ScanRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

func validRange[E utils.Integer](r ScanRange) error {
	if r.Min > r.Max {
		return fmt.Errorf("%s: min above max: %w", r, ErrInvalidRange)
	}

	if !utils.Fits[E](r.Min) || !utils.Fits[E](r.Max) {
		var zero E
		return fmt.Errorf("%s does not fit %T: %w", r, zero, ErrInvalidRange)
	}

	return nil
}

// Describer is the name-producing facility. It must describe values of any
// type with the same framing, since the framing is measured on a sentinel
// value of a private type.
type Describer func(v any) string

// Describe is the default Describer: String for fmt.Stringer values, a
// conversion expression such as "pkg.Color(7)" for everything else.
func Describe(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%T(%v)", v, v)
}

// Literal describes the values of E with the given names and every other
// value of E as a conversion, which makes enums without a String method
// probe-able.
func Literal[E utils.Integer](names map[E]string) Describer {
	return func(v any) string {
		e, ok := v.(E)
		if !ok {
			return Describe(v)
		}

		if name, ok := names[e]; ok {
			return name
		}

		return fmt.Sprintf("%T(%d)", e, e)
	}
}

// Config is the per-enum probe configuration. Zero fields take defaults.
type Config struct {
	// Range replaces DefaultRange when set.
	Range *ScanRange
	// Describe replaces the default Describer.
	Describe Describer
}

func (c Config) withDefaults() Config {
	if c.Range == nil {
		rng := DefaultRange
		c.Range = &rng
	}

	if c.Describe == nil {
		c.Describe = Describe
	}

	return c
}

// Configure sets the probe configuration of E. It may be called again to
// replace the configuration until the table of E is first used; after that it
// fails with ErrConfigFrozen.
func Configure[E utils.Integer](cfg Config) error {
	if cfg.Range != nil {
		if err := validRange[E](*cfg.Range); err != nil {
			return err
		}

		rng := *cfg.Range
		cfg.Range = &rng
	}

	return slotOf[E]().configure(cfg)
}

// MustConfigure is like Configure but panics on error. It returns true so it
// can initialize a package-level blank variable.
func MustConfigure[E utils.Integer](cfg Config) bool {
	if err := Configure[E](cfg); err != nil {
		panic(err)
	}

	return true
}

// Between is shorthand for a Config probing [lo, hi].
func Between(lo, hi int64) Config {
	return Config{Range: &ScanRange{Min: lo, Max: hi}}
}
