// Package fixture declares the enums and structs the typekit tests introspect,
// at run time through reflection and at generation time through go/packages.
package fixture

//go:generate go tool stringer -type=Color,HTTPStatus,Level,Weekday -output=fixture_string.go

// Color is a dense enum starting at zero.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

// HTTPStatus is a sparse enum beyond the default scan range.
type HTTPStatus int

const (
	OK       HTTPStatus = 200
	Accept HTTPStatus = 202
	NotFound HTTPStatus = 404
)

// Level has negative values.
type Level int8

const (
	Trace Level = iota - 2
	Debug
	Info
	Warn
	Error
)

// Weekday spans its whole underlying type when configured with [0, 255].
type Weekday uint8

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Opaque has no String method.
type Opaque int

const (
	OpaqueA Opaque = iota + 1
	OpaqueB
)

// Point is registered member by member.
type Point struct {
	X, Y  int
	label string `typekit:"name"`
}

// Scale multiplies both coordinates.
func (p *Point) Scale(k int) {
	p.X *= k
	p.Y *= k
}

// Label returns the point's label.
func (p Point) Label() string { return p.label }

// Order nests a reflectable Point.
type Order struct {
	ID     int    `typekit:"id"`
	Origin Point  `typekit:"origin"`
	Status HTTPStatus
	Tint   Color
	secret string `typekit:"-"`
}

// Reset clears the order.
func (o *Order) Reset() { *o = Order{} }

// Secret returns the hidden value.
func (o *Order) Secret() string { return o.secret }
