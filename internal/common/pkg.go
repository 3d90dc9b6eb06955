package common

import "path"

// UnknownStr is printed for enum values that have no name.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// Qualify joins a package alias and an identifier, leaving the identifier
// bare when alias is empty or equals the local package.
func Qualify(alias, local, ident string) string {
	if alias == "" || alias == local {
		return ident
	}

	return alias + "." + ident
}
