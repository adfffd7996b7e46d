package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksonloper/gridsat/grid"
)

func TestParseCell(t *testing.T) {
	cases := []struct {
		field string
		want  grid.Color
	}{
		{"", grid.Blank()},
		{"0", grid.Regular(0)},
		{"3", grid.Regular(3)},
		{"-4", grid.Unconstrained(1)},
		{"-2", grid.OriginMarker(0)},
		{"-3", grid.FarMarker(0)},
	}
	for _, tc := range cases {
		got, err := parseCell(tc.field)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseCell_Invalid(t *testing.T) {
	_, err := parseCell("notanumber")
	assert.Error(t, err)
}

func TestLoadGrid(t *testing.T) {
	g, err := loadGrid(strings.NewReader("0,1\n0,1\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, grid.Regular(1), g.At(grid.Point{Row: 0, Col: 1}))
}

func TestRun_SolvesAndPrintsJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,1\n0,1\n"), 0o644))

	var buf bytes.Buffer
	err := run([]string{"-grid", path, "-tiling", "square"}, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"kept"`)
	assert.NotContains(t, buf.String(), `"unsat":true`)
}

func TestRun_DumpDimacs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,1\n0,1\n"), 0o644))

	var buf bytes.Buffer
	err := run([]string{"-grid", path, "-tiling", "square", "-dump-dimacs"}, &buf)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "p cnf "))
}

func TestRun_MissingGridFlag(t *testing.T) {
	var buf bytes.Buffer
	err := run([]string{}, &buf)
	assert.Error(t, err)
}

func TestRun_UnknownTiling(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,1\n0,1\n"), 0o644))

	var buf bytes.Buffer
	err := run([]string{"-grid", path, "-tiling", "nonsense"}, &buf)
	assert.ErrorIs(t, err, grid.ErrUnknownTiling)
}
