package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted saves source that go/format rejected, so the template
// bug can be inspected. The ".unformatted.go" name keeps it out of the way of
// the real output.
func writeDebugUnformatted(dir, filename string, content []byte) error {
	if dir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	name := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(dir, name), content, filePerm)
}
