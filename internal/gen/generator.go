package gen

import (
	"bytes"
	"cmp"
	"fmt"
	"go/format"
	"maps"
	"slices"
	"strconv"

	"typekit/internal/analyze"
	"typekit/internal/common"
	"typekit/internal/config"
	"typekit/internal/diagnostic"
	"typekit/internal/match"
	"typekit/logger"
	"typekit/utils"
)

// suggestionLimit caps "did you mean" hints per diagnostic.
const suggestionLimit = 3

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// LibraryPath is the import path of the typekit module.
	LibraryPath string
	// DebugDir receives the unformatted source when formatting fails.
	DebugDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		LibraryPath: "typekit",
	}
}

// Generator renders registration code for one configured package.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "typekit_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
	// Warnings are the non-fatal problems met while resolving the config.
	Warnings []diagnostic.Diagnostic
}

// Generate validates cfg, resolves it against the package pkgPath of graph and
// renders an init function registering the configured types.
func (g *Generator) Generate(cfg *config.File, graph *analyze.TypeGraph, pkgPath string) (*GeneratedFile, error) {
	pkg, ok := graph.Packages[pkgPath]
	if !ok {
		return nil, fmt.Errorf("package %s was not loaded", pkgPath)
	}

	r := newResolver(graph, pkg)
	r.diags.Merge(config.Validate(cfg))
	data := &templateData{
		PackageName: pkg.Name,
		Filename:    cfg.Output,
	}

	for i := range cfg.Structs {
		if s, ok := r.resolveStruct(&cfg.Structs[i]); ok {
			data.Structs = append(data.Structs, s)
		}
	}

	for i := range cfg.Enums {
		if e, ok := r.resolveEnum(&cfg.Enums[i]); ok {
			data.Enums = append(data.Enums, e)
		}
	}

	if err := r.diags.Err(); err != nil {
		return nil, err
	}

	g.qualify(data)

	content, err := g.render(data)
	if err != nil {
		return nil, err
	}

	logger.Default().Info("gen: %s: %d structs, %d enums", pkgPath, len(data.Structs), len(data.Enums))

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  content,
		Warnings: r.diags.Warnings,
	}, nil
}

// qualify fills in imports and the package-qualified library identifiers.
func (g *Generator) qualify(data *templateData) {
	if len(data.Structs) > 0 {
		path := g.config.LibraryPath + "/member"
		data.Imports = append(data.Imports, importSpec{Path: path})
		data.Member = common.Qualify(common.PkgAlias(path), data.PackageName, "")
	}

	if len(data.Enums) > 0 {
		path := g.config.LibraryPath + "/enum"
		data.Imports = append(data.Imports, importSpec{Path: path})
		data.Enum = common.Qualify(common.PkgAlias(path), data.PackageName, "")
	}

	slices.SortFunc(data.Imports, func(a, b importSpec) int {
		return cmp.Compare(a.Path, b.Path)
	})
}

func (g *Generator) render(data *templateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := registrationTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.DebugDir != "" {
			_ = writeDebugUnformatted(g.config.DebugDir, data.Filename, buf.Bytes())
		}

		return buf.Bytes(), fmt.Errorf("formatting code: %w", err)
	}

	return formatted, nil
}

// resolver checks config entries against the analyzed package.
type resolver struct {
	graph *analyze.TypeGraph
	pkg   *analyze.PackageInfo
	diags *diagnostic.Diagnostics
}

func newResolver(graph *analyze.TypeGraph, pkg *analyze.PackageInfo) *resolver {
	return &resolver{
		graph: graph,
		pkg:   pkg,
		diags: diagnostic.New(pkg.Path),
	}
}

func (r *resolver) lookup(name string, kind analyze.TypeKind) (*analyze.TypeInfo, bool) {
	info := r.graph.GetType(analyze.TypeID{PkgPath: r.pkg.Path, Name: name})
	if info == nil {
		names := common.Map(r.pkg.Types, func(id analyze.TypeID) string { return id.Name })
		r.diags.AddError("unknown-type", name, fmt.Errorf("no type %s in %s", name, r.pkg.Path),
			match.Suggest(name, names, suggestionLimit)...)

		return nil, false
	}

	if info.Kind != kind {
		r.diags.AddError("wrong-kind", name, fmt.Errorf("%s is a %s type, want %s", name, info.Kind, kind))
		return nil, false
	}

	return info, true
}

func (r *resolver) resolveStruct(s *config.Struct) (structData, bool) {
	info, ok := r.lookup(s.Type, analyze.TypeKindStruct)
	if !ok {
		return structData{}, false
	}

	fieldNames := common.Map(info.Fields, func(f analyze.FieldInfo) string { return f.Name })

	for _, name := range append(slices.Clone(s.Skip), slices.Sorted(maps.Keys(s.Rename))...) {
		if _, ok := info.Field(name); !ok {
			r.diags.AddError("unknown-field", s.Type+"."+name, fmt.Errorf("no field %s", name),
				match.Suggest(name, fieldNames, suggestionLimit)...)
		}
	}

	data := structData{Type: s.Type}

	for _, f := range info.Fields {
		if f.Name == "_" || s.Skips(f.Name) {
			continue
		}

		name, ok := f.MemberName()
		if !ok {
			continue
		}

		if rename, ok := s.Rename[f.Name]; ok {
			name = rename
		}

		data.Fields = append(data.Fields, fieldData{Symbol: f.Name, Name: name})
	}

	methodNames := common.Map(info.Methods, func(m analyze.MethodInfo) string { return m.Name })

	for _, m := range s.Methods {
		if _, ok := info.Method(m); !ok {
			r.diags.AddError("unknown-method", s.Type+"."+m, fmt.Errorf("no exported method %s", m),
				match.Suggest(m, methodNames, suggestionLimit)...)

			continue
		}

		data.Methods = append(data.Methods, m)
	}

	if common.IsEmpty(data.Fields) && common.IsEmpty(data.Methods) {
		r.diags.AddWarning("no-members", s.Type, fmt.Errorf("%s registers no members", s.Type))
	}

	return data, true
}

func (r *resolver) resolveEnum(e *config.Enum) (enumData, bool) {
	info, ok := r.lookup(e.Type, analyze.TypeKindEnum)
	if !ok {
		return enumData{}, false
	}

	lo, hi, _ := info.Range()
	if e.Min != nil {
		lo = *e.Min
	}
	if e.Max != nil {
		hi = *e.Max
	}

	if lo > hi {
		r.diags.AddError("invalid-range", e.Type, fmt.Errorf("range [%d, %d] is empty", lo, hi))
		return enumData{}, false
	}

	data := enumData{
		Type: e.Type,
		Min:  strconv.FormatInt(lo, 10),
		Max:  strconv.FormatInt(hi, 10),
	}

	for _, c := range info.Constants {
		if !utils.IsInRange(lo, c.Value, hi) {
			r.diags.AddWarning("outside-range", e.Type+"."+c.Name,
				fmt.Errorf("%s = %d is outside the scan range [%d, %d]", c.Name, c.Value, lo, hi))
		}
	}

	if info.HasString {
		return data, true
	}

	// no String method: name the constants explicitly
	seen := make(map[int64]string)
	for _, c := range info.Constants {
		if !utils.IsInRange(lo, c.Value, hi) {
			continue
		}

		if prev, dup := seen[c.Value]; dup {
			r.diags.AddWarning("aliased-value", e.Type+"."+c.Name,
				fmt.Errorf("%s has the value of %s and is not registered", c.Name, prev))

			continue
		}

		seen[c.Value] = c.Name
		data.Literals = append(data.Literals, c.Name)
	}

	return data, true
}
