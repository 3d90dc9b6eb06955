package gen

import "text/template"

// templateData holds all data needed for the registration template.
type templateData struct {
	PackageName string
	Filename    string
	Imports     []importSpec
	// Member and Enum qualify library identifiers, e.g. "member.".
	Member  string
	Enum    string
	Structs []structData
	Enums   []enumData
}

type importSpec struct {
	Alias string
	Path  string
}

// structData is one member.MustDefine call.
type structData struct {
	Type    string
	Fields  []fieldData
	Methods []string
}

type fieldData struct {
	Symbol string
	Name   string
}

// Renamed reports whether the field registers under another name.
func (f fieldData) Renamed() bool { return f.Symbol != f.Name }

// enumData is one enum.MustConfigure call.
type enumData struct {
	Type string
	Min  string
	Max  string
	// Literals names the constants of an enum without a String method.
	Literals []string
}

var registrationTemplate = template.Must(template.New("registration").Parse(`// Code generated by typekit-gen. DO NOT EDIT.

package {{.PackageName}}

{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}

func init() {
{{- $member := .Member}}{{$enum := .Enum}}
{{range .Structs}}
	{{$member}}MustDefine[{{.Type}}](
{{- $type := .Type}}
{{range .Fields}}		{{$member}}Field({{printf "%q" .Symbol}}){{if .Renamed}}.As({{printf "%q" .Name}}){{end}},
{{end}}{{range .Methods}}		{{$member}}Func((*{{$type}}).{{.}}),
{{end}}	)
{{end}}
{{range .Enums}}
{{- if .Literals}}
	{{$enum}}MustConfigure[{{.Type}}]({{$enum}}Config{
		Range: &{{$enum}}ScanRange{Min: {{.Min}}, Max: {{.Max}}},
		Describe: {{$enum}}Literal(map[{{.Type}}]string{
{{range .Literals}}			{{.}}: {{printf "%q" .}},
{{end}}		}),
	})
{{- else}}
	{{$enum}}MustConfigure[{{.Type}}]({{$enum}}Between({{.Min}}, {{.Max}}))
{{- end}}
{{end}}
}
`))
