package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typekit/internal/config"
)

const fixtureConfig = `
package: typekit/internal/fixture
structs:
  - type: Order
    methods: [Reset]
  - type: Point
enums:
  - type: HTTPStatus
  - type: Opaque
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := run(append([]string{"--quiet"}, args...), &stdout, &stderr)

	return stdout.String(), err
}

func TestRunDryRun(t *testing.T) {
	out, err := runCLI(t, "--config", writeConfig(t, "typekit.yaml", fixtureConfig), "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "package fixture")
	assert.Contains(t, out, "member.MustDefine[Order](")
	assert.Contains(t, out, "member.MustDefine[Point](")
	assert.Contains(t, out, "enum.MustConfigure[HTTPStatus](enum.Between(200, 404))")
	assert.Contains(t, out, "enum.Literal(map[Opaque]string{")
}

func TestRunHCL(t *testing.T) {
	const hcl = `
package = "typekit/internal/fixture"
output  = "registry_gen.go"

enum "Color" {}
`

	out, err := runCLI(t, "--config", writeConfig(t, "typekit.hcl", hcl), "--dry-run", "--lib", "example.com/typekit")
	require.NoError(t, err)
	assert.Contains(t, out, `"example.com/typekit/enum"`)
	assert.Contains(t, out, "enum.MustConfigure[Color](enum.Between(0, 2))")
}

func TestRunList(t *testing.T) {
	out, err := runCLI(t, "--config", writeConfig(t, "typekit.yaml", fixtureConfig), "--list")
	require.NoError(t, err)

	assert.Equal(t, `Order.id
Order.origin
Order.origin.X
Order.origin.Y
Order.origin.name
Order.Status
Order.Tint
Point.X
Point.Y
Point.name
`, out)
}

func TestRunDump(t *testing.T) {
	out, err := runCLI(t, "--config", writeConfig(t, "typekit.yaml", fixtureConfig), "--dump")
	require.NoError(t, err)

	assert.Contains(t, out, `Name: (string) (len=5) "Order"`)
	assert.Contains(t, out, `"NotFound"`)
}

func TestRunErrors(t *testing.T) {
	t.Run("missing config", func(t *testing.T) {
		_, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "none.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := runCLI(t, "--config", writeConfig(t, "typekit.yaml", "structs: [{type: Order}]\n"))
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("unknown type", func(t *testing.T) {
		cfg := "package: typekit/internal/fixture\nstructs: [{type: Ordr}]\n"

		_, err := runCLI(t, "--config", writeConfig(t, "typekit.yaml", cfg), "--dry-run")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "did you mean Order")
	})

	t.Run("bad flag", func(t *testing.T) {
		_, err := runCLI(t, "--nope")
		require.Error(t, err)
	})

	t.Run("help", func(t *testing.T) {
		_, err := runCLI(t, "-h")
		require.ErrorIs(t, err, flag.ErrHelp)
	})

	t.Run("shorthand", func(t *testing.T) {
		out, err := runCLI(t, "-c", writeConfig(t, "typekit.yaml", fixtureConfig), "-n")
		require.NoError(t, err)
		assert.Contains(t, out, "package fixture")
	})

	t.Run("extra arguments", func(t *testing.T) {
		_, err := runCLI(t, "extra")
		require.ErrorIs(t, err, errUsage)
	})
}
