package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jptrs93/protoclass/internal/generate"
)

const shapesProto = `
syntax = "proto2";

package shapes;

message Point {
  required int32 x = 1;
  optional int32 y = 2;
}
`

func writeProto(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shapes.proto"), []byte(shapesProto), 0o644))
	return dir
}

func TestRunGenerates(t *testing.T) {
	src := writeProto(t)
	out := filepath.Join(t.TempDir(), "gen")
	list := filepath.Join(out, "files.txt")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"-proto_path", src,
		"-out", out,
		"-output_list_file", list,
		"shapes.proto",
	}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	header, err := os.ReadFile(filepath.Join(out, "shapes.pc.go"))
	require.NoError(t, err)
	assert.Contains(t, string(header), "package shapes")
	assert.Contains(t, string(header), "type Point struct {")
	_, err = os.Stat(filepath.Join(out, "shapes.pc.impl.go"))
	require.NoError(t, err)

	manifest, err := os.ReadFile(list)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(out, "shapes.pc.go"),
		filepath.Join(out, "shapes.pc.impl.go"),
	}, strings.Fields(string(manifest)))
	assert.Contains(t, stderr.String(), "generated")
}

func TestRunConfigAndFlagOverride(t *testing.T) {
	src := writeProto(t)
	out := t.TempDir()
	config := filepath.Join(t.TempDir(), "protoclass.yaml")
	require.NoError(t, os.WriteFile(config, []byte("go_package: fromconfig\nsplit_headers: true\nout: /nonexistent\n"), 0o644))

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"-config", config,
		"-proto_path", src,
		"-out", out,
		"shapes.proto",
	}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	for _, name := range []string{"shapes.pc.go", "shapes.enums.pc.go", "shapes.Point.pc.go", "shapes.pc.impl.go"} {
		_, err := os.Stat(filepath.Join(out, name))
		require.NoError(t, err, name)
	}
	aggregate, err := os.ReadFile(filepath.Join(out, "shapes.pc.go"))
	require.NoError(t, err)
	assert.Contains(t, string(aggregate), "package fromconfig")
}

func TestRunUnknownConfigKey(t *testing.T) {
	config := filepath.Join(t.TempDir(), "protoclass.yaml")
	require.NoError(t, os.WriteFile(config, []byte("paths: source_relative\n"), 0o644))

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-config", config, "shapes.proto"}, &stdout, &stderr)
	var unknown *generate.UnknownOptionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "paths", unknown.Key)
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-version"}, &stdout, &stderr))
	assert.Equal(t, "protoclass "+generate.Version+"\n", stdout.String())
}

func TestRunNoInputs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), nil, &stdout, &stderr)
	require.EqualError(t, err, "no proto files provided")
}
