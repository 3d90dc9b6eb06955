// Package member builds per-type tables of named fields and methods and
// drives generic traversal over them.
//
// A type becomes reflectable in one of two ways. Out of the type, with Define,
// usually from a package-level var; this is how types from other packages are
// made reflectable:
//
//	var _ = member.MustDefine[Y](
//		member.Field("A").As("a"),
//		member.Field("B"),
//		member.Overload[func(*Y)]("Func", "FuncInt").As("func"),
//		member.Overload[func(*Y, int)]("Func", "FuncInt").As("func_int"),
//	)
//
// Or in the type, by implementing Reflector.
//
// Tables are built lazily on first use, once per type, and never change
// afterwards. A table that fails to build stays failed for the life of the
// process.
//
// Visitors receive a reference to each member: a pointer to the field for
// fields, the method bound to the instance for methods.
package member
