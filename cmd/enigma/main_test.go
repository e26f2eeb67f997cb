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

const hiawatha = "* B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)\nFROM HIS SHOULDER HIAWATHA\n"

// execute runs the CLI with args and stdin; tests are serial because
// the root command installs the process-wide logger.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRun_Stdin(t *testing.T) {
	out, _, err := execute(t, hiawatha, "run", "default")
	require.NoError(t, err)
	assert.Equal(t, "QVPQS OKOIL PUBKJ ZPISF XDW\n", out)
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "msg.in")
	outPath := filepath.Join(dir, "msg.out")
	require.NoError(t, os.WriteFile(in, []byte(hiawatha), 0o644))

	_, _, err := execute(t, "", "run", "default", in, outPath)
	require.NoError(t, err)
	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "QVPQS OKOIL PUBKJ ZPISF XDW\n", string(got))
}

func TestRun_Verbose(t *testing.T) {
	out, errOut, err := execute(t, "* B Beta III IV I AXLE\nAB\n", "run", "--verbose", "default", "-")
	require.NoError(t, err)
	assert.Equal(t, "YP\n", out)
	assert.Contains(t, errOut, "[AXLF] A -> ")
	assert.Contains(t, errOut, "[AXLG] B -> ")
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "HELLO\n", "run", "default")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")

	_, _, err = execute(t, "", "run", filepath.Join(t.TempDir(), "missing.conf"))
	assert.Error(t, err)

	_, _, err = execute(t, "", "run")
	assert.Error(t, err)

	_, _, err = execute(t, "", "--log-level", "loud", "run", "default")
	assert.Error(t, err)
}

func TestInventory(t *testing.T) {
	out, _, err := execute(t, "", "inventory", "default", "--markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "slots: 5\npawls: 3\n")
	assert.Contains(t, out, "| Beta | fixed |")
	assert.Contains(t, out, "| VI | moving | ZM |")
}

func TestInventory_ExportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, ext := range []string{"conf", "yaml"} {
		out, _, err := execute(t, "", "inventory", "default", "--export", ext)
		require.NoError(t, err)
		path := filepath.Join(dir, "naval."+ext)
		require.NoError(t, os.WriteFile(path, []byte(out), 0o644))

		got, _, err := execute(t, hiawatha, "run", path)
		require.NoError(t, err, ext)
		assert.Equal(t, "QVPQS OKOIL PUBKJ ZPISF XDW\n", got, ext)
	}

	_, _, err := execute(t, "", "inventory", "default", "--export", "xml")
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	var inputs []string
	for _, name := range []string{"a.in", "b.in", "c"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(hiawatha), 0o644))
		inputs = append(inputs, path)
	}

	args := append([]string{"batch", "default", "--out-dir", outDir, "--parallel", "2"}, inputs...)
	_, _, err := execute(t, "", args...)
	require.NoError(t, err)
	for _, name := range []string{"a.out", "b.out", "c.out"} {
		got, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err, name)
		assert.Equal(t, "QVPQS OKOIL PUBKJ ZPISF XDW\n", string(got), name)
	}
}

func TestBatch_Error(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.in")
	require.NoError(t, os.WriteFile(bad, []byte("NOSETUP\n"), 0o644))

	_, _, err := execute(t, "", "batch", "default", "--out-dir", dir, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.in: line 1")
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("o", "msg.out"), outputPath("o", filepath.Join("x", "msg.in")))
	assert.Equal(t, filepath.Join("o", "msg.out"), outputPath("o", "msg.txt"))
	assert.Equal(t, filepath.Join("o", "msg.conf.out"), outputPath("o", "msg.conf"))
}
