package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tabloid/pkg/align"
	"github.com/arthur-debert/tabloid/pkg/color"
	"github.com/arthur-debert/tabloid/pkg/errors"
	"github.com/arthur-debert/tabloid/pkg/table"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
styles:
  title: cyan
  header: green
colspan: 3
layout: vertical
alignment: left
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cyan", cfg.Styles["title"])
	assert.Equal(t, "green", cfg.Styles["header"])
	require.NotNil(t, cfg.Colspan)
	assert.Equal(t, 3, *cfg.Colspan)
	assert.Equal(t, "vertical", cfg.Layout)
	assert.Equal(t, "left", cfg.Alignment)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
colspan = 1
layout = "horizontal"

[styles]
value = "yellow"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yellow", cfg.Styles["value"])
	require.NotNil(t, cfg.Colspan)
	assert.Equal(t, 1, *cfg.Colspan)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))

	path := writeFile(t, "config.yaml", "styles: [not, a, map]")
	_, err = Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))

	path = writeFile(t, "config.ini", "colspan=1")
	_, err = Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestApply(t *testing.T) {
	colspan := 4
	cfg := &Config{
		Styles:    map[string]string{"title": "cyan", "value": "red"},
		Colspan:   &colspan,
		Layout:    "vertical",
		Alignment: "right",
	}

	tbl := table.New()
	require.NoError(t, cfg.Apply(tbl))

	assert.Equal(t, color.Cyan, tbl.Styles().Title)
	assert.Equal(t, color.Red, tbl.Styles().Value)
	assert.Equal(t, 4, tbl.Colspan())
	assert.Equal(t, table.Vertical, tbl.Layout())
	// Explicit alignment from config survives the layout switch.
	assert.Equal(t, align.Right, tbl.DefaultAlignment())
}

func TestApplyErrors(t *testing.T) {
	tbl := table.New()

	err := (&Config{Styles: map[string]string{"title": "chartreuse"}}).Apply(tbl)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))

	err = (&Config{Styles: map[string]string{"banner": "red"}}).Apply(tbl)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))

	err = (&Config{Layout: "diagonal"}).Apply(tbl)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedLayout))

	err = (&Config{Alignment: "center"}).Apply(tbl)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestApplyNilConfig(t *testing.T) {
	var cfg *Config
	assert.NoError(t, cfg.Apply(table.New()))
}

func TestApplyNoColor(t *testing.T) {
	cfg := &Config{NoColor: true, Styles: map[string]string{"title": "cyan"}}
	tbl := table.New()
	require.NoError(t, cfg.Apply(tbl))

	tbl.SetTitle("Report")
	tbl.Add([]interface{}{1})
	assert.NotContains(t, tbl.Render(), "\x1b[")
}
