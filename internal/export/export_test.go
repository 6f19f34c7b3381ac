package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteProject(t *testing.T) {
	exporter := NewExporter(t.TempDir())
	require.True(t, exporter.Enabled())

	dir, err := exporter.WriteProject("req-123", map[string]string{
		"package.json":             `{"name":"figma-to-react"}`,
		"src/components/Button.js": "export const Button = () => null;",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"name":"figma-to-react"}`, string(data))

	data, err = os.ReadFile(filepath.Join(dir, "src", "components", "Button.js"))
	require.NoError(t, err)
	assert.Equal(t, "export const Button = () => null;", string(data))
}

func TestWriteProject_SkipsPathsOutsideProjectDir(t *testing.T) {
	baseDir := t.TempDir()
	exporter := NewExporter(filepath.Join(baseDir, "exports"))

	dir, err := exporter.WriteProject("req-123", map[string]string{
		"../../escaped.txt": "outside",
		"/etc/escaped.txt":  "outside",
		"src/App.js":        "inside",
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(baseDir, "escaped.txt"))
	assert.True(t, os.IsNotExist(err), "file must not land outside the export base")
	_, err = os.Stat(filepath.Join(baseDir, "exports", "escaped.txt"))
	assert.True(t, os.IsNotExist(err), "file must not land outside the project dir")

	data, err := os.ReadFile(filepath.Join(dir, "src", "App.js"))
	require.NoError(t, err)
	assert.Equal(t, "inside", string(data))
}

func TestWriteProject_Disabled(t *testing.T) {
	exporter := NewExporter("")
	assert.False(t, exporter.Enabled())

	_, err := exporter.WriteProject("req-123", map[string]string{"a.txt": "a"})
	assert.Error(t, err)
}
