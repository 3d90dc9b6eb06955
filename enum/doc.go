// Package enum derives the names of enumerator values without the author
// listing them.
//
// Every integer of a scan range (by default [0, 64]) is converted to the enum
// type and described by a name-producing facility, the type's String method
// unless configured otherwise. Code generated by stringer describes an
// undeclared value as a conversion, e.g. "Color(7)", so a description that is
// empty or contains a parenthesis marks an integer that is not an enumerator.
// The remaining values, with their names, form the enum's table:
//
//	//go:generate go tool stringer -type=Color
//	type Color int
//
//	const (
//		Red Color = iota
//		Green
//		Blue
//	)
//
//	enum.ToString(Green)           // "Green"
//	enum.Parse[Color]("Blue")      // Blue, true
//	enum.Entries[Color]()          // [{Red 0} {Green 1} {Blue 2}]
//
// Enums whose values lie outside [0, 64] need Configure before first use.
// Tables are built once per type and never change; a type for which no value
// could be named stays unsupported for the life of the process.
package enum
