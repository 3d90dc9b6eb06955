package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// DefaultOutput is the generated file name when File.Output is empty.
const DefaultOutput = "typekit_gen.go"

// ErrUnknownFormat is returned for a config file that is neither YAML nor HCL.
var ErrUnknownFormat = errors.New("unknown config format")

// File is the generator configuration of one package.
type File struct {
	// Package is the pattern of the package to register types of, e.g. "./model".
	Package string `yaml:"package" hcl:"package"`
	// Output is the generated file, relative to the package directory.
	Output  string   `yaml:"output,omitempty" hcl:"output,optional"`
	Structs []Struct `yaml:"structs,omitempty" hcl:"struct,block"`
	Enums   []Enum   `yaml:"enums,omitempty" hcl:"enum,block"`
}

// Struct selects the members registered for a struct type. Every field is
// registered unless skipped; methods only when listed.
type Struct struct {
	Type    string            `yaml:"type" hcl:"type,label"`
	Methods []string          `yaml:"methods,omitempty" hcl:"methods,optional"`
	Skip    []string          `yaml:"skip,omitempty" hcl:"skip,optional"`
	Rename  map[string]string `yaml:"rename,omitempty" hcl:"rename,optional"`
}

// Enum selects an enum type. Min and Max default to the smallest and largest
// declared constant.
type Enum struct {
	Type string `yaml:"type" hcl:"type,label"`
	Min  *int64 `yaml:"min,omitempty" hcl:"min,optional"`
	Max  *int64 `yaml:"max,omitempty" hcl:"max,optional"`
}

// LoadFile loads a configuration file, choosing the format by extension.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".hcl":
		return ParseHCL(data, path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// ParseYAML parses YAML data into a File.
func ParseYAML(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// ParseHCL parses HCL data into a File. filename is used in diagnostics only.
func ParseHCL(data []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()

	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var f File
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Output == "" {
		f.Output = DefaultOutput
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// Skips reports whether field is listed in Skip.
func (s *Struct) Skips(field string) bool {
	for _, name := range s.Skip {
		if name == field {
			return true
		}
	}

	return false
}
