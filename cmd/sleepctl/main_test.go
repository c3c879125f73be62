package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func seeded(t *testing.T) (dir string, files []string) {
	t.Helper()
	dir = t.TempDir()
	out, err := run(t, "seed", "--out", dir, "--days", "14", "--count", "2")
	require.NoError(t, err)

	files = strings.Fields(out)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "sleep-2020-03-09.json"), files[0])
	assert.Equal(t, filepath.Join(dir, "sleep-2020-03-23.json"), files[1])
	return dir, files
}

func TestTableCmd(t *testing.T) {
	_, files := seeded(t)

	out, err := run(t, "table", "--files", strings.Join(files, ","), "--columns", "duration,dayOfWeek", "-n", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"dateOfSleep", "duration", "dayOfWeek"}, strings.Fields(lines[0]))
	assert.Equal(t, "2020-03-09", strings.Fields(lines[1])[0])
	assert.Equal(t, "Monday", strings.Fields(lines[1])[2])
}

func TestTableCmd_UnknownColumn(t *testing.T) {
	_, files := seeded(t)

	_, err := run(t, "table", "--files", files[0], "--columns", "nope")
	assert.ErrorContains(t, err, "nope")
}

func TestTableCmd_NoFiles(t *testing.T) {
	_, err := run(t, "table")
	assert.ErrorContains(t, err, "no sleep exports given")
}

func TestPlotCmds(t *testing.T) {
	dir, files := seeded(t)
	list := strings.Join(files, ",")

	out, err := run(t, "plot", "line", "--files", list, "--out", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sleep-rem.%-deep.%.png"), strings.TrimSpace(out))

	out, err = run(t, "plot", "scatter", "--files", list, "--out", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sleep-scatter-startMin-deep.%.png"), strings.TrimSpace(out))

	out, err = run(t, "plot", "corr", "--files", list, "--out", dir, "--labels", "duration,startMin,deep.%")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sleep-correlation.png"), strings.TrimSpace(out))

	for _, name := range []string{"sleep-rem.%-deep.%.png", "sleep-scatter-startMin-deep.%.png", "sleep-correlation.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}

	_, err = run(t, "plot", "line", "--files", list, "--out", dir, "--weekday", "Funday")
	assert.Error(t, err)
}

func TestPlotCmd_ConfigPresets(t *testing.T) {
	dir, files := seeded(t)

	cfg := filepath.Join(dir, "dashboard.yaml")
	yaml := "title: Test\nsources:\n  - " + files[0] + "\nline_columns: [duration]\nscatter: {x: duration, y: efficiency}\nweekday: Friday\n"
	require.NoError(t, os.WriteFile(cfg, []byte(yaml), 0o644))

	out, err := run(t, "plot", "line", "--config", cfg, "--out", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sleep-duration.png"), strings.TrimSpace(out))
}

func TestExportCmd(t *testing.T) {
	dir, files := seeded(t)
	path := filepath.Join(dir, "out.xlsx")

	out, err := run(t, "export", "--files", files[0], "--out", path)
	require.NoError(t, err)
	assert.Equal(t, path, strings.TrimSpace(out))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSeedCmd_InvalidStart(t *testing.T) {
	_, err := run(t, "seed", "--start", "09/03/2020", "--out", t.TempDir())
	assert.Error(t, err)
}
