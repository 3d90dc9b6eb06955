// Package analyze provides package loading and type graph extraction for the
// registration generator.
//
// It uses golang.org/x/tools/go/packages with go/types to build an in-memory
// model of the named types of a package.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: kind (struct/enum/basic), fields, methods, enum constants
//   - FieldInfo: field name, type, typekit tag, embedding
package analyze
