package analyze

import (
	"go/types"
	"reflect"
	"strings"

	"typekit/internal/common"
)

// TagKey is the struct tag read by MemberName.
const TagKey = "typekit"

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "typekit/internal/fixture"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindStruct           // struct type
	TypeKindEnum             // integer type with constants declared next to it
	TypeKindBasic            // any other named basic type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindStruct:
		return "struct"
	case TypeKindEnum:
		return "enum"
	case TypeKindBasic:
		return "basic"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a named type of a loaded package.
type TypeInfo struct {
	ID        TypeID       // Unique identifier
	Kind      TypeKind     // Kind of type
	Fields    []FieldInfo  // For structs, every field in declaration order
	Methods   []MethodInfo // Exported methods of *T, sorted by name
	Constants []ConstInfo  // For enums, the declared constants ascending by value
	HasString bool         // T itself has String() string
	GoType    types.Type   // The original go/types.Type
}

// Range returns the smallest and largest constant of an enum.
func (t *TypeInfo) Range() (lo, hi int64, ok bool) {
	if len(t.Constants) == 0 {
		return 0, 0, false
	}

	return t.Constants[0].Value, t.Constants[len(t.Constants)-1].Value, true
}

// Field returns the field called name.
func (t *TypeInfo) Field(name string) (*FieldInfo, bool) {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i], true
		}
	}

	return nil, false
}

// Method returns the method called name.
func (t *TypeInfo) Method(name string) (*MethodInfo, bool) {
	for i := range t.Methods {
		if t.Methods[i].Name == name {
			return &t.Methods[i], true
		}
	}

	return nil, false
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     types.Type        // Field type
	TypeID   TypeID            // Set when the field type is named
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// MemberName returns the name the field registers under: the typekit tag
// when present, otherwise the field name. A "-" tag skips the field.
func (f *FieldInfo) MemberName() (string, bool) {
	tag, ok := f.Tag.Lookup(TagKey)
	if !ok {
		return f.Name, true
	}

	name, _, _ := strings.Cut(tag, ",")

	switch name {
	case "-":
		return "", false
	case "":
		return f.Name, true
	default:
		return name, true
	}
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	_, ok := f.Tag.Lookup(key)
	return ok
}

// MethodInfo describes a method of the pointer method set.
type MethodInfo struct {
	Name            string
	Signature       string // without receiver, e.g. "func(k int)"
	PointerReceiver bool
}

// ConstInfo is one declared enum constant.
type ConstInfo struct {
	Name  string
	Value int64
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Directory of the first Go file
	Types []TypeID // Named types defined in this package, sorted by name
}
