package parser

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/bufbuild/protocompile"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jptrs93/protoclass/internal/ir"
)

const commonProto = `
syntax = "proto2";

package demo;

option go_package = "example.com/demo/model;model";

enum Color {
  RED = 0;
  GREEN = 1;
}
`

const personProto = `
syntax = "proto2";

package demo;

import "common.proto";

message Person {
  required int32 id = 1;
  optional string name = 2 [default = "anon"];
  optional Color color = 3 [default = GREEN];
  repeated int32 scores = 4 [packed = true];
  optional double ratio = 5 [default = inf];
  optional string nickname = 6; // [required=true]
  repeated group Phone = 7 {
    optional string number = 8;
  }
  map<string, int32> tags = 9;
  optional bytes blob = 10 [default = "a\x01"];

  enum Kind {
    HUMAN = 1;
  }

  extensions 100 to 199;

  extend Person {
    optional int32 age = 100;
  }
}

extend Person {
  repeated string aliases = 101;
}
`

func parseSources(t *testing.T, names ...string) []ir.File {
	t.Helper()
	p := Parser{
		Accessor: protocompile.SourceAccessorFromMap(map[string]string{
			"common.proto": commonProto,
			"person.proto": personProto,
		}),
	}
	files, err := p.Parse(context.Background(), names)
	require.NoError(t, err)
	return files
}

func TestParseIncludesDependenciesFirst(t *testing.T) {
	files := parseSources(t, "person.proto")
	var paths []string
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"common.proto", "person.proto"}, paths)
	assert.Equal(t, "model", files[0].GoPackage)
	assert.Equal(t, "", files[1].GoPackage)
	assert.Equal(t, []ir.EnumValue{{Name: "RED"}, {Name: "GREEN", Number: 1}}, files[0].Enums[0].Values)
}

func TestParseFields(t *testing.T) {
	files := parseSources(t, "person.proto")
	person := files[1].Messages[0]
	require.Equal(t, "demo.Person", person.FullName)

	byName := make(map[string]ir.Field)
	for _, f := range person.Fields {
		byName[f.Name] = f
	}
	want := map[string]ir.Field{
		"id":     {Name: "id", Number: 1, Kind: ir.KindInt32, Label: ir.LabelRequired},
		"name":   {Name: "name", Number: 2, Kind: ir.KindString, HasDefault: true, Default: "anon"},
		"color":  {Name: "color", Number: 3, Kind: ir.KindEnum, EnumFullName: "demo.Color", HasDefault: true, Default: "GREEN"},
		"scores": {Name: "scores", Number: 4, Kind: ir.KindInt32, Label: ir.LabelRepeated, IsPacked: true},
		"ratio":  {Name: "ratio", Number: 5, Kind: ir.KindDouble, HasDefault: true, Default: "inf"},
		"phone":  {Name: "phone", Number: 7, Kind: ir.KindGroup, Label: ir.LabelRepeated, MessageFullName: "demo.Person.Phone"},
		"tags":   {Name: "tags", Number: 9, Kind: ir.KindMessage, Label: ir.LabelRepeated, MessageFullName: "demo.Person.TagsEntry"},
		"blob":   {Name: "blob", Number: 10, Kind: ir.KindBytes, HasDefault: true, Default: "a\x01"},
	}
	for name, w := range want {
		if diff := cmp.Diff(w, byName[name]); diff != "" {
			t.Fatalf("field %s mismatch (-want +got):\n%s", name, diff)
		}
	}
	assert.True(t, strings.Contains(byName["nickname"].TrailingComment, "[required=true]"))
}

func TestParseNestedTypesAndExtensions(t *testing.T) {
	files := parseSources(t, "person.proto")
	person := files[1].Messages[0]

	assert.Equal(t, []ir.ExtensionRange{{Start: 100, End: 200}}, person.ExtensionRanges)
	require.Len(t, person.Enums, 1)
	assert.Equal(t, "demo.Person.Kind", person.Enums[0].FullName)

	var nested []string
	for _, m := range person.Messages {
		nested = append(nested, m.FullName)
	}
	assert.Equal(t, []string{"demo.Person.Phone", "demo.Person.TagsEntry"}, nested)
	assert.True(t, person.Messages[1].IsMapEntry)

	require.Len(t, person.Extensions, 1)
	assert.Equal(t, ir.Field{Name: "age", Number: 100, Kind: ir.KindInt32, Extendee: "demo.Person"}, person.Extensions[0])
	require.Len(t, files[1].Extensions, 1)
	assert.Equal(t, ir.LabelRepeated, files[1].Extensions[0].Label)
	assert.Equal(t, "demo.Person", files[1].Extensions[0].Extendee)
}

func TestParseError(t *testing.T) {
	p := Parser{Accessor: protocompile.SourceAccessorFromMap(map[string]string{
		"bad.proto": `syntax = "proto2"; message M { optional Missing m = 1; }`,
	})}
	_, err := p.Parse(context.Background(), []string{"bad.proto"})
	require.Error(t, err)
}

func TestGoPackageName(t *testing.T) {
	tests := map[string]string{
		"":                          "",
		"model":                     "model",
		"example.com/demo/model":    "model",
		"example.com/demo/model/":   "model",
		"example.com/demo/v1;model": "model",
	}
	for in, want := range tests {
		assert.Equal(t, want, goPackageName(in), in)
	}
}

func TestFloatString(t *testing.T) {
	assert.Equal(t, "0.1", floatString(float64(float32(0.1)), 32))
	assert.Equal(t, "-inf", floatString(math.Inf(-1), 64))
	assert.Equal(t, "2.5", floatString(2.5, 64))
}
