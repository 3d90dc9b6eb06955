package analyze

import (
	"cmp"
	"errors"
	"fmt"
	"go/constant"
	"go/types"
	"path/filepath"
	"reflect"
	"slices"

	"golang.org/x/tools/go/packages"

	"typekit/logger"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	// Dir is the directory patterns are resolved in; empty means the current one.
	Dir   string
	graph *TypeGraph
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph: NewTypeGraph(),
	}
}

// LoadPackages loads the specified packages and adds their named types to the
// graph. Patterns are standard Go package patterns (e.g., "./model",
// "typekit/internal/fixture").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		pkgInfo.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	scope := pkg.Types.Scope()
	byType := make(map[*types.TypeName]*TypeInfo)

	// scope.Names is sorted
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok || named.TypeParams().Len() > 0 {
			continue
		}

		info := a.analyzeNamedType(named)
		byType[typeName] = info

		a.graph.Types[info.ID] = info
		pkgInfo.Types = append(pkgInfo.Types, info.ID)
	}

	a.collectConstants(scope, byType)

	a.graph.Packages[pkg.PkgPath] = pkgInfo

	logger.Default().Debug("analyze: %s: %d named types", pkg.PkgPath, len(pkgInfo.Types))
}

// analyzeNamedType analyzes a named type declared at package level.
func (a *Analyzer) analyzeNamedType(named *types.Named) *TypeInfo {
	obj := named.Obj()
	info := &TypeInfo{
		ID: TypeID{
			PkgPath: obj.Pkg().Path(),
			Name:    obj.Name(),
		},
		GoType:    named,
		HasString: hasStringMethod(named),
	}

	switch ut := named.Underlying().(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct
		info.Fields = analyzeStructFields(ut)
		info.Methods = analyzeMethods(named)

	case *types.Basic:
		info.Kind = TypeKindBasic

	default:
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeStructFields extracts every field, exported or not, since members
// may be unexported.
func analyzeStructFields(st *types.Struct) []FieldInfo {
	fields := make([]FieldInfo, 0, st.NumFields())

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		fieldInfo := FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     field.Type(),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
		}

		if named, ok := field.Type().(*types.Named); ok && named.Obj().Pkg() != nil {
			fieldInfo.TypeID = TypeID{PkgPath: named.Obj().Pkg().Path(), Name: named.Obj().Name()}
		}

		fields = append(fields, fieldInfo)
	}

	return fields
}

// analyzeMethods lists the exported methods of *named, the only ones
// reflection can see.
func analyzeMethods(named *types.Named) []MethodInfo {
	mset := types.NewMethodSet(types.NewPointer(named))
	methods := make([]MethodInfo, 0, mset.Len())
	qualifier := types.RelativeTo(named.Obj().Pkg())

	for i := 0; i < mset.Len(); i++ {
		fn, ok := mset.At(i).Obj().(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}

		sig := fn.Type().(*types.Signature)
		_, ptr := sig.Recv().Type().(*types.Pointer)

		methods = append(methods, MethodInfo{
			Name:            fn.Name(),
			Signature:       types.TypeString(sig, qualifier),
			PointerReceiver: ptr,
		})
	}

	return methods
}

// hasStringMethod reports whether T, not only *T, has String() string.
func hasStringMethod(named *types.Named) bool {
	obj, _, _ := types.LookupFieldOrMethod(named, false, named.Obj().Pkg(), "String")

	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}

	sig := fn.Type().(*types.Signature)
	if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}

	basic, ok := sig.Results().At(0).Type().(*types.Basic)

	return ok && basic.Kind() == types.String
}

// collectConstants turns integer types with typed constants into enums.
func (a *Analyzer) collectConstants(scope *types.Scope, byType map[*types.TypeName]*TypeInfo) {
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok {
			continue
		}

		named, ok := c.Type().(*types.Named)
		if !ok {
			continue
		}

		info, ok := byType[named.Obj()]
		if !ok || !isInteger(named) {
			continue
		}

		v, exact := constant.Int64Val(constant.ToInt(c.Val()))
		if !exact {
			logger.Default().Warn("analyze: %s.%s does not fit int64, skipped", info.ID, name)
			continue
		}

		info.Kind = TypeKindEnum
		info.Constants = append(info.Constants, ConstInfo{Name: name, Value: v})
	}

	for _, info := range byType {
		slices.SortStableFunc(info.Constants, func(x, y ConstInfo) int {
			return cmp.Compare(x.Value, y.Value)
		})
	}
}

func isInteger(t types.Type) bool {
	basic, ok := t.Underlying().(*types.Basic)
	return ok && basic.Info()&types.IsInteger != 0
}

// GetStruct returns the TypeInfo of a named struct.
func (a *Analyzer) GetStruct(pkgPath, typeName string) (*TypeInfo, error) {
	return a.graph.lookup(TypeID{PkgPath: pkgPath, Name: typeName}, TypeKindStruct)
}

// GetEnum returns the TypeInfo of a named integer type with constants.
func (a *Analyzer) GetEnum(pkgPath, typeName string) (*TypeInfo, error) {
	return a.graph.lookup(TypeID{PkgPath: pkgPath, Name: typeName}, TypeKindEnum)
}

func (g *TypeGraph) lookup(id TypeID, kind TypeKind) (*TypeInfo, error) {
	info := g.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("type %s not found", id)
	}

	if info.Kind != kind {
		return nil, fmt.Errorf("type %s is not a %s (kind: %s)", id, kind, info.Kind)
	}

	return info, nil
}
