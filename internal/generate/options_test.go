package generate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParameter(t *testing.T) {
	tests := []struct {
		param string
		want  Options
	}{
		{param: "", want: Options{}},
		{param: "split_headers", want: Options{SplitHeaders: true}},
		{param: "split_headers=false", want: Options{}},
		{
			param: "go_package=model, output_list_file=gen.txt,split_headers=true",
			want:  Options{GoPackage: "model", OutputListFile: "gen.txt", SplitHeaders: true},
		},
		{param: "out=gen/model", want: Options{OutDir: "gen/model"}},
	}
	for _, tc := range tests {
		got, err := ParseParameter(tc.param)
		require.NoError(t, err, tc.param)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("ParseParameter(%q) mismatch (-want +got):\n%s", tc.param, diff)
		}
	}
}

func TestParseParameterUnknownKey(t *testing.T) {
	_, err := ParseParameter("split_headers,paths=source_relative")
	var unknown *UnknownOptionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "paths", unknown.Key)
}

func TestParseParameterBadBool(t *testing.T) {
	_, err := ParseParameter("split_headers=maybe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeySplitHeaders)
}

func TestApplyParameterKeepsUnnamedKeys(t *testing.T) {
	o := Options{SplitHeaders: true, GoPackage: "model"}
	require.NoError(t, o.ApplyParameter("out=gen"))
	assert.Equal(t, Options{SplitHeaders: true, GoPackage: "model", OutDir: "gen"}, o)

	require.NoError(t, o.ApplyParameter("split_headers=false"))
	assert.False(t, o.SplitHeaders)
}

func TestDecodeOptions(t *testing.T) {
	got, err := DecodeOptions([]byte("go_package: model\nsplit_headers: true\nout: gen\n"))
	require.NoError(t, err)
	assert.Equal(t, Options{GoPackage: "model", SplitHeaders: true, OutDir: "gen"}, got)

	empty, err := DecodeOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, Options{}, empty)
}

func TestDecodeOptionsUnknownKey(t *testing.T) {
	_, err := DecodeOptions([]byte("go_package: model\nheaders: split\n"))
	var unknown *UnknownOptionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "headers", unknown.Key)
}

func TestLoadOptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "protoclass.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_list_file: files.txt\n"), 0o644))
	got, err := LoadOptionsFile(path)
	require.NoError(t, err)
	assert.Equal(t, "files.txt", got.OutputListFile)

	_, err = LoadOptionsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsTarget(t *testing.T) {
	assert.True(t, Options{}.IsTarget("a.proto"))
	o := Options{Targets: []string{"a.proto"}}
	assert.True(t, o.IsTarget("a.proto"))
	assert.False(t, o.IsTarget("dep.proto"))
}

func TestWithManifest(t *testing.T) {
	outputs := []OutputFile{
		{Name: ArtifactHeader, Path: "gen/a.pc.go"},
		{Name: ArtifactSource, Path: "gen/a.pc.impl.go"},
	}
	assert.Len(t, WithManifest(outputs, Options{}), 2)

	got := WithManifest(outputs, Options{OutputListFile: "gen/files.txt"})
	require.Len(t, got, 3)
	assert.Equal(t, ArtifactManifest, got[2].Name)
	assert.Equal(t, "gen/a.pc.go\ngen/a.pc.impl.go\n", string(got[2].Content))
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "a.pc.go")
	other := filepath.Join(dir, "b.pc.go")
	require.NoError(t, WriteFiles(context.Background(), []OutputFile{
		{Path: path, Content: []byte("package a\n")},
		{Path: other, Content: []byte("package b\n")},
	}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package a\n", string(data))
	data, err = os.ReadFile(other)
	require.NoError(t, err)
	assert.Equal(t, "package b\n", string(data))
}

func TestWriteFilesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := filepath.Join(t.TempDir(), "a.pc.go")
	err := WriteFiles(ctx, []OutputFile{{Path: path, Content: []byte("package a\n")}})
	assert.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}
