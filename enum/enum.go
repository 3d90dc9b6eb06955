package enum

import (
	"fmt"
	"reflect"
	"sync"

	"typekit/logger"
	"typekit/utils"
)

type slot[E utils.Integer] struct {
	mu     sync.Mutex
	cfg    Config
	frozen bool

	once  sync.Once
	table *Table[E]
	err   error
}

func (s *slot[E]) configure(cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		var zero E
		return fmt.Errorf("%T: %w", zero, ErrConfigFrozen)
	}

	s.cfg = cfg

	return nil
}

func (s *slot[E]) build() (*Table[E], error) {
	s.once.Do(func() {
		s.mu.Lock()
		s.frozen = true
		cfg := s.cfg.withDefaults()
		s.mu.Unlock()

		s.table, s.err = probe[E](cfg)
		if s.err != nil {
			logger.Default().Error("enum: %v", s.err)
		}
	})

	return s.table, s.err
}

// registry maps reflect.Type to *slot[E] of that type.
var registry sync.Map

func slotOf[E utils.Integer]() *slot[E] {
	key := reflect.TypeFor[E]()

	if s, ok := registry.Load(key); ok {
		return s.(*slot[E])
	}

	s, _ := registry.LoadOrStore(key, &slot[E]{})

	return s.(*slot[E])
}

// TableOf returns the table of E, probing it on first use. A failed probe is
// permanent: every later call returns the same error.
func TableOf[E utils.Integer]() (*Table[E], error) {
	return slotOf[E]().build()
}

// MustTable is like TableOf but panics if E is unsupported.
func MustTable[E utils.Integer]() *Table[E] {
	t, err := TableOf[E]()
	if err != nil {
		panic(err)
	}

	return t
}

// The functions below panic, like MustTable, when E is unsupported.

// Entries returns the named values of E with their names, ascending.
func Entries[E utils.Integer]() []Entry[E] { return MustTable[E]().Entries() }

// Values returns the named values of E, ascending.
func Values[E utils.Integer]() []E { return MustTable[E]().Values() }

// Names returns the names of E in value order.
func Names[E utils.Integer]() []string { return MustTable[E]().Names() }

// Count returns the number of named values of E.
func Count[E utils.Integer]() int { return MustTable[E]().Len() }

// ToString returns the name of v, or "" when v is not a named value.
func ToString[E utils.Integer](v E) string { return MustTable[E]().ToString(v) }

// Lookup returns the name of v.
func Lookup[E utils.Integer](v E) (string, bool) { return MustTable[E]().Lookup(v) }

// Parse returns the value of E called name.
func Parse[E utils.Integer](name string) (E, bool) { return MustTable[E]().Parse(name) }

// Contains reports whether v is a named value.
func Contains[E utils.Integer](v E) bool { return MustTable[E]().Contains(v) }
