package tabloid

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	// Keep config discovery away from the developer's real files.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCSVFromStdin(t *testing.T) {
	out, err := execute(t, "name,value\na,1\nb,2\n", "--no-color")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "name")
	assert.Contains(t, lines[0], "value")
	assert.Contains(t, lines[1], "a")
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("n\n1\n"), 0644))

	out, err := execute(t, "", "--no-color", path)
	require.NoError(t, err)
	assert.Contains(t, out, "n")
	assert.Contains(t, out, "1")
}

func TestRenderJSONWithFormatting(t *testing.T) {
	stdin := `[{"name":"a","value":1.5},{"name":"b","value":-2.0}]`
	out, err := execute(t, stdin,
		"--input", "json",
		"--format", "value=%.2f",
		"--colorize", "value=red",
		"--title", "Numbers",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Numbers")
	assert.Contains(t, out, "1.50")
	assert.Contains(t, out, "\x1b[31m-2.00\x1b[0m")
}

func TestRenderVertical(t *testing.T) {
	out, err := execute(t, "name,value\na,1\n", "--no-color", "--layout", "vertical")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "name"))
	assert.True(t, strings.HasPrefix(lines[1], "value"))
}

func TestRenderBoxed(t *testing.T) {
	out, err := execute(t, "n\n1\n", "--no-color", "--box", "--box-border", "rounded")
	require.NoError(t, err)
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╰")
}

func TestRenderUnsupportedLayout(t *testing.T) {
	_, err := execute(t, "n\n1\n", "--layout", "diagonal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported layout")
}

func TestRenderUndefinedAlignColumn(t *testing.T) {
	_, err := execute(t, "name\na\n", "--align", "ghost=left")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined column")
}

func TestRenderUnknownInputFormat(t *testing.T) {
	_, err := execute(t, "", "--input", "parquet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported input format")
}

func TestRenderWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colspan: 4\n"), 0644))

	out, err := execute(t, "a,b\nx,y\n", "--no-color", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "a    b")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tabloid version")
}
