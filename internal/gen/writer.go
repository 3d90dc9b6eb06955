package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes a generated file into the package directory.
func WriteFile(file *GeneratedFile, pkgDir string) (string, error) {
	if err := os.MkdirAll(pkgDir, dirPerm); err != nil {
		return "", fmt.Errorf("creating package directory: %w", err)
	}

	outputPath := filepath.Join(pkgDir, file.Filename)

	if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
		return "", fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	return outputPath, nil
}
