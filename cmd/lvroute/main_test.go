package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/visual"
)

var (
	sampleNodes = filepath.Join("..", "..", "data", "nodes.csv")
	sampleEdges = filepath.Join("..", "..", "data", "edges.csv")
)

// run executes the CLI on the sample map and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(t.TempDir(), "none.yaml"),
		"--nodes", sampleNodes,
		"--edges", sampleEdges,
		"--log-level", "error",
	}, args...))
	err := cmd.Execute()

	return out.String(), err
}

func TestRoute(t *testing.T) {
	out, err := run(t, "", "route", "home", "Harbour")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Home -> Park -> Library -> Market -> Harbour (total 30.80)\n"))
	assert.Contains(t, out, visual.Legend)
	assert.Equal(t, 5, strings.Count(out, "O")-strings.Count(visual.Legend, "O"))
}

func TestRoute_AStarByID(t *testing.T) {
	out, err := run(t, "", "--astar", "route", "1", "10", "--no-map")
	require.NoError(t, err)
	assert.Equal(t, "Home -> Park -> Library -> Market -> Harbour (total 30.80)\n", out)
}

func TestRoute_Errors(t *testing.T) {
	_, err := run(t, "", "route", "Home", "Atlantis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "location not found")

	_, err = run(t, "", "route", "Home")
	assert.Error(t, err, "two arguments required")

	_, err = run(t, "", "--nodes", "missing.csv", "route", "1", "2")
	assert.Error(t, err)
}

func TestRoute_YAMLMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
nodes:
  - {id: 1, name: A, x: 0, y: 0}
  - {id: 2, name: B, x: 1, y: 0}
edges:
  - {from: 1, to: 2, distance: 1, oneway: true}
`), 0o600))

	out, err := run(t, "", "--map", path, "route", "A", "B", "--no-map")
	require.NoError(t, err)
	assert.Equal(t, "A -> B (total 1.00)\n", out)

	out, err = run(t, "", "--map", path, "route", "B", "A")
	require.NoError(t, err)
	assert.Equal(t, "No route found.\n", out)
}

func TestRepl(t *testing.T) {
	script := "Home\nharbour\n\nAtlantis\nHome\nSchool\nSCHOOL\nquit\nHome\n"
	out, err := run(t, script, "repl")
	require.NoError(t, err)

	assert.Contains(t, out, "10 locations loaded.")
	assert.Contains(t, out, "Home -> Park -> Library -> Market -> Harbour (total 30.80)")
	assert.Contains(t, out, "Error: location not found.")
	assert.Contains(t, out, "School (total 0.00)", "start equals end")
	assert.Equal(t, 2, strings.Count(out, visual.Legend))
}

func TestRepl_EOF(t *testing.T) {
	out, err := run(t, "Home\n", "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "End location: ")
	assert.NotContains(t, out, "total")
}

func TestMap(t *testing.T) {
	out, err := run(t, "", "map")
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(out, "X")-strings.Count(visual.Legend, "X"))
}

func TestInfo(t *testing.T) {
	out, err := run(t, "", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "nodes:            10\n")
	assert.Contains(t, out, "edges:            28\n")
	assert.Contains(t, out, "reachable from Home: 10/10\n")
	assert.NotContains(t, out, "warning:")

	out, err = run(t, "", "--demo", "25", "--seed", "3", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "nodes:            25\n")
}

func TestInfo_Warnings(t *testing.T) {
	dir := t.TempDir()
	nodes := filepath.Join(dir, "nodes.csv")
	edges := filepath.Join(dir, "edges.csv")
	require.NoError(t, os.WriteFile(nodes, []byte("1,A,0,0\n2,B,1,1\n"), 0o600))
	require.NoError(t, os.WriteFile(edges, []byte("1,2,-3\n2,9,1\n"), 0o600))

	out, err := run(t, "", "--nodes", nodes, "--edges", edges, "--directed", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "dangling edges:   1\n")
	assert.Contains(t, out, "negative weights: 1\n")
	assert.Equal(t, 2, strings.Count(out, "warning: "))
	assert.Contains(t, out, "reachable from A: 2/2\n")

	require.NoError(t, os.WriteFile(edges, []byte("2,1,1\n"), 0o600))
	out, err = run(t, "", "--nodes", nodes, "--edges", edges, "--directed", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "reachable from A: 1/2\n", "one-way road points away")
	assert.NotContains(t, out, "warning:")
}

func TestBadConfig(t *testing.T) {
	_, err := run(t, "", "--log-level", "loud", "info")
	assert.Error(t, err)
}

func TestFindings(t *testing.T) {
	assert.Nil(t, findings(nil))
	assert.Equal(t, []string{"x"}, findings(plainErr("x")))
}

type plainErr string

func (e plainErr) Error() string { return string(e) }
