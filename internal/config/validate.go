package config

import (
	"errors"
	"fmt"
	"go/token"
	"path/filepath"

	"typekit/internal/diagnostic"
)

// ErrInvalidConfig wraps every validation problem.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the file for problems that do not need the package loaded.
func Validate(f *File) *diagnostic.Diagnostics {
	diags := diagnostic.New(f.Package)

	if f.Package == "" {
		diags.AddError("missing-package", "", fmt.Errorf("package is required: %w", ErrInvalidConfig))
	}

	if filepath.Ext(f.Output) != ".go" || filepath.Base(f.Output) != f.Output {
		diags.AddError("invalid-output", f.Output,
			fmt.Errorf("output must be a .go file name: %w", ErrInvalidConfig))
	}

	seen := make(map[string]string)
	claim := func(typ, section string) {
		if !token.IsIdentifier(typ) {
			diags.AddError("invalid-type", typ, fmt.Errorf("%s type %q is not an identifier: %w", section, typ, ErrInvalidConfig))
			return
		}

		if prev, dup := seen[typ]; dup {
			diags.AddError("duplicate-type", typ, fmt.Errorf("listed as %s and %s: %w", prev, section, ErrInvalidConfig))
			return
		}

		seen[typ] = section
	}

	for i := range f.Structs {
		s := &f.Structs[i]
		claim(s.Type, "struct")

		names := make(map[string]bool)
		for _, m := range s.Methods {
			if !token.IsExported(m) {
				diags.AddError("unexported-method", s.Type+"."+m,
					fmt.Errorf("only exported methods are reflectable: %w", ErrInvalidConfig))
			}
		}

		for field, name := range s.Rename {
			if name == "" {
				diags.AddError("empty-rename", s.Type+"."+field, fmt.Errorf("empty name: %w", ErrInvalidConfig))
			}

			if names[name] {
				diags.AddError("duplicate-rename", s.Type+"."+field,
					fmt.Errorf("name %q used twice: %w", name, ErrInvalidConfig))
			}
			names[name] = true

			if s.Skips(field) {
				diags.AddWarning("renamed-skipped", s.Type+"."+field, errors.New("renamed field is skipped"))
			}
		}
	}

	for i := range f.Enums {
		e := &f.Enums[i]
		claim(e.Type, "enum")

		if e.Min != nil && e.Max != nil && *e.Min > *e.Max {
			diags.AddError("invalid-range", e.Type,
				fmt.Errorf("min %d above max %d: %w", *e.Min, *e.Max, ErrInvalidConfig))
		}
	}

	return diags
}
