package member_test

import (
	"fmt"
	"os"
	"reflect"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typekit/logger"
	"typekit/member"
)

func TestMain(m *testing.M) {
	logger.SetDefault(logger.NilLogger{})
	os.Exit(m.Run())
}

// A registers itself.
type A struct {
	AF    float64
	AName string
}

func (*A) ReflectMembers() []member.Entry {
	return []member.Entry{
		member.Field("AF").As("A_f"),
		member.Field("AName").As("A_name"),
	}
}

type X struct {
	a int
	b float64
	s string
}

var _ = member.MustDefine[X](
	member.Field("a"),
	member.Field("b"),
	member.Field("s"),
)

type Outer struct {
	N     int
	Inner A
	Tag   string
}

var _ = member.MustDefine[Outer](
	member.Field("N"),
	member.Field("Inner"),
	member.Field("Tag"),
)

type Y struct {
	A     int
	B     float64
	calls []string
}

func (y *Y) Func() { y.calls = append(y.calls, "func()") }

func (y *Y) FuncInt(v int) { y.calls = append(y.calls, fmt.Sprintf("func(%d)", v)) }

var _ = member.MustDefine[Y](
	member.Field("A").As("a"),
	member.Field("B").As("b"),
	member.Overload[func(*Y)]("Func", "FuncInt").As("func"),
	member.Overload[func(*Y, int)]("Func", (*Y).FuncInt).As("func_int"),
)

func TestNames(t *testing.T) {
	t.Parallel()

	names, err := member.Names[X]()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "s"}, names)

	type list []string

	typed, err := member.NamesAs[Y, list]()
	require.NoError(t, err)
	assert.Equal(t, list{"a", "b", "func", "func_int"}, typed)

	t.Log(spew.Sdump(typed))
}

func TestForEachOrder(t *testing.T) {
	t.Parallel()

	x := X{a: 42, b: 3.14, s: "a string"}

	var visited []string

	err := member.ForEach(&x, func(owner *X, name string, ref any) {
		assert.Same(t, &x, owner)
		visited = append(visited, fmt.Sprintf("%s=%v", name, reflect.ValueOf(ref).Elem().Interface()))
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a=42", "b=3.14", "s=a string"}, visited)
}

func TestForEachWritesThroughReference(t *testing.T) {
	t.Parallel()

	x := X{}

	err := member.ForEach(&x, func(_ *X, name string, ref any) {
		switch p := ref.(type) {
		case *int:
			*p = 7
		case *float64:
			*p = 1.5
		case *string:
			*p = name
		}
	})
	require.NoError(t, err)
	assert.Equal(t, X{a: 7, b: 1.5, s: "s"}, x)
}

func TestForEachRejectsNarrowVisitor(t *testing.T) {
	t.Parallel()

	x := X{}
	calls := 0

	err := member.ForEach(&x, func(*X, string, *int) { calls++ })
	require.ErrorIs(t, err, member.ErrVisitorMismatch)
	assert.Zero(t, calls)
}

func TestForEachNilInstance(t *testing.T) {
	t.Parallel()

	err := member.ForEach((*X)(nil), func(*X, string, any) {})
	require.ErrorIs(t, err, member.ErrInvalidInstance)
}

func TestVisit(t *testing.T) {
	t.Parallel()

	t.Run("typed visitor skips other member types", func(t *testing.T) {
		x := X{}

		ok, err := member.Visit(&x, "b", func(*X, string, *int) { t.Fatal("visited a float as int") })
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = member.Visit(&x, "a", func(_ *X, name string, ref *int) {
			assert.Equal(t, "a", name)
			*ref = 11
		})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 11, x.a)
	})

	t.Run("missing name is a no-op", func(t *testing.T) {
		x := X{}
		calls := 0

		ok, err := member.Visit(&x, "missing_name", func(*X, string, any) { calls++ })
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, calls)
	})

	t.Run("names are case-sensitive", func(t *testing.T) {
		x := X{}

		ok, err := member.Visit(&x, "A", func(*X, string, any) {})
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestVisitSelectsOverload(t *testing.T) {
	t.Parallel()

	y := Y{}

	ok, err := member.Visit(&y, "func_int", func(_ *Y, _ string, fn func(int)) { fn(255) })
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"func(255)"}, y.calls)

	ok, err = member.Visit(&y, "func", func(_ *Y, _ string, ref any) {
		fn, isFunc := ref.(func())
		require.True(t, isFunc)
		fn()
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"func(255)", "func()"}, y.calls)
}

type shifter struct{ v int }

func (s *shifter) Left(n int)  { s.v <<= n }
func (s *shifter) Right(n int) { s.v >>= n }
func (s *shifter) Reset()      { s.v = 0 }

func TestSelectOverload(t *testing.T) {
	t.Parallel()

	owner := reflect.TypeFor[shifter]()

	tests := []struct {
		name       string
		signature  reflect.Type
		candidates []any
		want       string
		wantErr    string
	}{
		{
			name:       "single match",
			signature:  reflect.TypeFor[func(*shifter, int)](),
			candidates: []any{"Left", "Reset"},
			want:       "Left",
		},
		{
			name:       "value receiver form",
			signature:  reflect.TypeFor[func(shifter, int)](),
			candidates: []any{(*shifter).Right, "Reset"},
			want:       "Right",
		},
		{
			name:      "no match",
			signature: reflect.TypeFor[func(*shifter, string)](),
			wantErr:   "0 match []",
		},
		{
			name:      "ambiguous",
			signature: reflect.TypeFor[func(*shifter, int)](),
			wantErr:   "2 match [Left, Right]",
		},
		{
			name:      "ambiguous value receiver form",
			signature: reflect.TypeFor[func(shifter, int)](),
			wantErr:   "2 match [Left, Right]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := member.Select(owner, tt.signature, tt.candidates...)
			if tt.wantErr != "" {
				require.ErrorIs(t, err, member.ErrNoMatchingOverload)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Name)
		})
	}
}

type ambiguous struct{ v int }

func (a *ambiguous) Inc(n int) { a.v += n }
func (a *ambiguous) Dec(n int) { a.v -= n }

var _ = member.MustDefine[ambiguous](
	member.Field("v"),
	member.Overload[func(*ambiguous, int)](),
)

func TestAmbiguousOverloadFailsConstruction(t *testing.T) {
	t.Parallel()

	_, err := member.TableOf[ambiguous]()
	require.ErrorIs(t, err, member.ErrNoMatchingOverload)
	assert.Contains(t, err.Error(), "[Dec, Inc]")

	_, again := member.TableOf[ambiguous]()
	assert.Equal(t, err, again)
}

func TestRecursiveWalk(t *testing.T) {
	t.Parallel()

	o := Outer{N: 1, Inner: A{AF: 5.5, AName: "struct A"}, Tag: "t"}

	var paths []string

	var visit func(prefix string) func(owner any, name string, ref any)
	visit = func(prefix string) func(owner any, name string, ref any) {
		return func(_ any, name string, ref any) {
			paths = append(paths, prefix+name)

			if member.IsReflectableValue(ref) {
				require.NoError(t, member.Walk(ref, visit(prefix+name+".")))
			}
		}
	}

	require.NoError(t, member.Walk(&o, visit("")))
	assert.Equal(t, []string{"N", "Inner", "Inner.A_f", "Inner.A_name", "Tag"}, paths)
}

func TestIsReflectable(t *testing.T) {
	t.Parallel()

	assert.True(t, member.IsReflectable[X]())
	assert.True(t, member.IsReflectable[A]())
	assert.False(t, member.IsReflectable[int]())
	assert.False(t, member.IsReflectable[*X]())

	assert.True(t, member.IsReflectableValue(&A{}))
	assert.True(t, member.IsReflectableValue(A{}))
	assert.False(t, member.IsReflectableValue(new(int)))
	assert.False(t, member.IsReflectableValue(nil))
}

func TestNotReflectable(t *testing.T) {
	t.Parallel()

	_, err := member.TableOf[int]()
	require.ErrorIs(t, err, member.ErrNotReflectable)

	n := 3
	require.ErrorIs(t, member.Walk(&n, func(any, string, any) {}), member.ErrNotReflectable)
	require.ErrorIs(t, member.Walk(nil, func(any, string, any) {}), member.ErrInvalidInstance)
}

type dup struct {
	P, Q int
}

func TestDuplicateNameFailsConstruction(t *testing.T) {
	t.Parallel()

	require.NoError(t, member.Define[dup](
		member.Field("P"),
		member.Field("Q").As("P"),
	))

	_, err := member.TableOf[dup]()
	require.ErrorIs(t, err, member.ErrDuplicateMemberName)

	// permanent
	_, again := member.TableOf[dup]()
	assert.Equal(t, err, again)
	assert.False(t, member.IsReflectable[dup]())

	_, err = member.Visit(&dup{}, "P", func(*dup, string, any) {})
	require.ErrorIs(t, err, member.ErrDuplicateMemberName)
}

type typo struct {
	Name  string
	Count int
}

func TestUnknownFieldIsReportedWithSuggestions(t *testing.T) {
	t.Parallel()

	require.NoError(t, member.Define[typo](
		member.Field("Nmae"),
		member.Field("Count"),
		member.Method("Missing"),
	))

	_, err := member.TableOf[typo]()
	require.ErrorIs(t, err, member.ErrUnknownMember)
	assert.Contains(t, err.Error(), "did you mean Name")
	assert.Contains(t, err.Error(), "Missing")
}

type defined struct{ V int }

func TestDefineTwice(t *testing.T) {
	t.Parallel()

	require.NoError(t, member.Define[defined](member.Field("V")))
	require.ErrorIs(t, member.Define[defined](member.Field("V")), member.ErrAlreadyDefined)
	require.ErrorIs(t, member.Define[*defined](), member.ErrNotReflectable)

	assert.Panics(t, func() { member.MustDefine[defined]() })
}

type point struct {
	X, Y int
}

func TestRefAccessor(t *testing.T) {
	t.Parallel()

	require.NoError(t, member.Define[point](
		member.Ref("x", func(p *point) *int { return &p.X }),
		member.Field("Y").As("y"),
	))

	p := point{X: 1, Y: 2}

	ok, err := member.Visit(&p, "x", func(_ *point, _ string, ref *int) { *ref = 10 })
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, point{X: 10, Y: 2}, p)

	table, err := member.TableOf[point]()
	require.NoError(t, err)

	d, ok := table.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, member.KindField, d.Kind())
	assert.Equal(t, reflect.TypeFor[int](), d.Type())
	assert.Equal(t, reflect.TypeFor[*int](), d.RefType())
}

type wrongRef struct{ V int }

func TestRefForeignOwner(t *testing.T) {
	t.Parallel()

	require.NoError(t, member.Define[wrongRef](
		member.Ref("x", func(p *point) *int { return &p.X }),
	))

	_, err := member.TableOf[wrongRef]()
	require.ErrorIs(t, err, member.ErrInvalidEntry)
}

type counter struct{ n int }

func (c *counter) Inc()      { c.n++ }
func (c counter) Value() int { return c.n }

func TestFuncDerivesName(t *testing.T) {
	t.Parallel()

	require.NoError(t, member.Define[counter](
		member.Func((*counter).Inc),
		member.Func(counter.Value),
		member.Method("Value").As("value"),
	))

	names, err := member.Names[counter]()
	require.NoError(t, err)
	assert.Equal(t, []string{"Inc", "Value", "value"}, names)

	c := counter{}
	for range 3 {
		_, err := member.Visit(&c, "Inc", func(_ *counter, _ string, inc func()) { inc() })
		require.NoError(t, err)
	}

	var got int
	_, err = member.Visit(&c, "value", func(_ *counter, _ string, value func() int) { got = value() })
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	table, err := member.TableOf[counter]()
	require.NoError(t, err)
	assert.Equal(t, member.KindMethod, table.At(0).Kind())
	assert.Equal(t, "Method", table.At(0).Kind().String())
}

type embedBase struct{ ID int }

type embedder struct {
	embedBase
	Label string
}

type ptrEmbedder struct {
	*embedBase
}

func TestPromotedField(t *testing.T) {
	t.Parallel()

	require.NoError(t, member.Define[embedder](
		member.Field("ID"),
		member.Field("Label"),
	))

	e := embedder{embedBase: embedBase{ID: 4}, Label: "l"}

	var seen []any
	require.NoError(t, member.ForEach(&e, func(_ *embedder, _ string, ref any) {
		seen = append(seen, reflect.ValueOf(ref).Elem().Interface())
	}))
	assert.Equal(t, []any{4, "l"}, seen)

	require.NoError(t, member.Define[ptrEmbedder](member.Field("ID")))

	_, err := member.TableOf[ptrEmbedder]()
	require.ErrorIs(t, err, member.ErrInvalidEntry)
}

func TestBind(t *testing.T) {
	t.Parallel()

	h, err := member.Bind[Y, func(int)]("func_int")
	require.NoError(t, err)
	assert.Equal(t, "func_int", h.Name())
	assert.Equal(t, member.KindMethod, h.Descriptor().Kind())

	y := Y{}
	h.Get(&y)(3)
	h.Visit(&y, func(_ *Y, name string, fn func(int)) {
		assert.Equal(t, "func_int", name)
		fn(4)
	})
	assert.Equal(t, []string{"func(3)", "func(4)"}, y.calls)

	_, err = member.Bind[Y, any]("func_itn")
	require.ErrorIs(t, err, member.ErrStaticMemberNotFound)
	assert.Contains(t, err.Error(), "func_int")

	_, err = member.Bind[Y, *string]("a")
	require.ErrorIs(t, err, member.ErrVisitorMismatch)

	assert.Panics(t, func() { member.MustBind[Y, any]("nope") })
}

func TestTableEachValidatesInstance(t *testing.T) {
	t.Parallel()

	table, err := member.TableOf[X]()
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, "member_test.X", table.OwnerName())
	assert.Equal(t, table.OwnerName(), member.TypeName[X]())
	assert.Equal(t, reflect.TypeFor[X](), table.Owner())
	assert.Len(t, table.Descriptors(), 3)

	require.ErrorIs(t, table.Each(X{}, func(any, string, any) {}), member.ErrInvalidInstance)
	require.ErrorIs(t, table.Each(&Y{}, func(any, string, any) {}), member.ErrInvalidInstance)

	x := X{s: "v"}
	ok, err := table.Visit(&x, "s", func(owner any, name string, ref any) {
		assert.Equal(t, "v", *ref.(*string))
	})
	require.NoError(t, err)
	assert.True(t, ok)
}

type raced struct{ V int }

func (*raced) ReflectMembers() []member.Entry {
	return []member.Entry{member.Field("V")}
}

func TestConcurrentFirstUse(t *testing.T) {
	t.Parallel()

	const workers = 16

	tables := make([]*member.Table, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			tbl, err := member.TableOf[raced]()
			assert.NoError(t, err)
			tables[i] = tbl
		}()
	}
	wg.Wait()

	for _, tbl := range tables {
		assert.Same(t, tables[0], tbl)
	}
}
