package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var townFile = filepath.Join("..", "..", "roadmodel", "testdata", "town.yaml")

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRoute_Text(t *testing.T) {
	out, err := execute(t, "route", "--network", townFile,
		"--start-x", "10", "--start-y", "10", "--end-x", "90", "--end-y", "10")
	require.NoError(t, err)

	assert.Contains(t, out, "status: found\n")
	assert.Contains(t, out, "distance: 800.0 m\n")
	assert.Contains(t, out, "node 0 ")
	assert.Contains(t, out, "node 3 ")
}

func TestRoute_YAML(t *testing.T) {
	out, err := execute(t, "route", "--network", townFile, "-o", "yaml",
		"--start-x", "10", "--start-y", "90", "--end-x", "70", "--end-y", "10")
	require.NoError(t, err)

	var doc routeDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "found", doc.Status)

	var ids []int64
	for _, s := range doc.Path {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int64{6, 7, 8, 2}, ids)
}

func TestRoute_Environment(t *testing.T) {
	t.Setenv("ROUTEPLANNER_NETWORK", townFile)
	t.Setenv("ROUTEPLANNER_END_Y", "10")
	t.Setenv("ROUTEPLANNER_MAX_ITERATIONS", "1")

	out, err := execute(t, "route")
	require.NoError(t, err)
	assert.Contains(t, out, "status: iteration-limit\n")
	assert.Contains(t, out, "distance: 0.0 m\n")
}

func TestRoute_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "routeplanner.yaml")
	abs, err := filepath.Abs(townFile)
	require.NoError(t, err)
	content := "network: " + abs + "\nmetric-scale: 2\nend-y: 10\n"
	require.NoError(t, os.WriteFile(cfg, []byte(content), 0o600))

	out, err := execute(t, "route", "--config", cfg, "--start-x", "10", "--start-y", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "distance: 1.6 m\n")
}

func TestRoute_Errors(t *testing.T) {
	_, err := execute(t, "route")
	require.ErrorIs(t, err, errNoNetwork)

	_, err = execute(t, "route", "--network", townFile, "-o", "xml")
	require.ErrorContains(t, err, `unknown output format "xml"`)

	_, err = execute(t, "route", "--network", townFile, "--log-level", "chatty")
	require.Error(t, err)

	_, err = execute(t, "route", "--network", "nowhere.yaml")
	require.Error(t, err)

	_, err = execute(t, "route", "--config", "nowhere.toml")
	require.ErrorContains(t, err, "read config")
}

func TestInspect(t *testing.T) {
	out, err := execute(t, "inspect", "--network", townFile)
	require.NoError(t, err)

	assert.Contains(t, out, "nodes:        9\n")
	assert.Contains(t, out, "roads:        4\n")
	assert.Contains(t, out, "segments:     11\n")
	assert.Contains(t, out, "isolated:     0\n")
	assert.Contains(t, out, "metric scale: 1000 m/unit\n")
}
