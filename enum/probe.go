package enum

import (
	"fmt"
	"reflect"
	"strings"

	"typekit/internal/diagnostic"
	"typekit/internal/slicer"
	"typekit/logger"
	"typekit/utils"
)

// sentinel is described once per probe to measure the describer's framing.
type sentinel struct{}

const sentinelName = "VOID"

func (sentinel) String() string { return sentinelName }

// valid reports whether name belongs to a declared enumerator.
func valid(name string) bool {
	return name != "" && !strings.ContainsAny(name, "()")
}

// probe scans the configured range and names every value of E the describer accepts.
func probe[E utils.Integer](cfg Config) (*Table[E], error) {
	owner := reflect.TypeFor[E]()
	rng := *cfg.Range

	if err := validRange[E](rng); err != nil {
		return nil, fmt.Errorf("%s: %w", owner, err)
	}

	cut, err := slicer.Measure(cfg.Describe(sentinel{}), sentinelName)
	if err != nil {
		return nil, fmt.Errorf("%s: describer: %w: %w", owner, ErrEnumProbeUnsupported, err)
	}

	diags := diagnostic.New(owner.String())
	t := &Table[E]{
		owner:  owner,
		rng:    rng,
		byName: make(map[string]E),
	}

	for v := rng.Min; ; v++ {
		e := E(v)

		if name := slicer.Unqualify(cut.Cut(cfg.Describe(e)), "."); valid(name) {
			if prev, dup := t.byName[name]; dup {
				diags.AddError("duplicate-name", name,
					fmt.Errorf("%d and %d are both named %q: %w", prev, e, name, ErrDuplicateEnumName))
			} else {
				t.byName[name] = e
				t.entries = append(t.entries, Entry[E]{Name: name, Value: e})
			}
		}

		if v == rng.Max {
			break
		}
	}

	if err := diags.Err(); err != nil {
		return nil, err
	}

	if len(t.entries) == 0 {
		return nil, fmt.Errorf("%s over %s: %w", owner, rng, ErrEnumProbeUnsupported)
	}

	logger.Default().Debug("enum: probed %s over %s, %d of %d values named",
		owner, rng, len(t.entries), rng.Len())

	return t, nil
}
