package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/bufbuild/protocompile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"
)

var sources = map[string]string{
	"common.proto": `
syntax = "proto2";
package shapes;
enum Color {
  RED = 0;
  BLUE = 1;
}
`,
	"shapes.proto": `
syntax = "proto2";
package shapes;
import "common.proto";
message Point {
  required int32 x = 1;
  optional Color color = 2;
}
`,
}

func request(t *testing.T, param string) *pluginpb.CodeGeneratorRequest {
	t.Helper()
	compiler := protocompile.Compiler{
		Resolver:       &protocompile.SourceResolver{Accessor: protocompile.SourceAccessorFromMap(sources)},
		SourceInfoMode: protocompile.SourceInfoStandard,
	}
	files, err := compiler.Compile(context.Background(), "common.proto", "shapes.proto")
	require.NoError(t, err)
	req := &pluginpb.CodeGeneratorRequest{
		FileToGenerate: []string{"shapes.proto"},
		Parameter:      proto.String(param),
	}
	for _, f := range files {
		req.ProtoFile = append(req.ProtoFile, protodesc.ToFileDescriptorProto(f))
	}
	return req
}

func fileNames(resp *pluginpb.CodeGeneratorResponse) []string {
	var names []string
	for _, f := range resp.GetFile() {
		names = append(names, f.GetName())
	}
	return names
}

var discard = slog.New(slog.DiscardHandler)

func TestRespondGeneratesTargetsOnly(t *testing.T) {
	resp := respond(request(t, ""), "", discard)
	require.Empty(t, resp.GetError())
	assert.Equal(t, []string{"shapes.pc.go", "shapes.pc.impl.go"}, fileNames(resp))
	assert.Equal(t, uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL), resp.GetSupportedFeatures())

	header := resp.GetFile()[0].GetContent()
	assert.Contains(t, header, "package shapes")
	assert.Contains(t, header, "Color_RED")
	assert.NotContains(t, header, "type Color int32")
}

func TestRespondParameters(t *testing.T) {
	resp := respond(request(t, "split_headers,output_list_file=files.txt,go_package=model"), "", discard)
	require.Empty(t, resp.GetError())
	assert.Equal(t, []string{
		"shapes.pc.go",
		"shapes.enums.pc.go",
		"shapes.Point.pc.go",
		"shapes.pc.impl.go",
		"files.txt",
	}, fileNames(resp))
	assert.Contains(t, resp.GetFile()[0].GetContent(), "package model")
	assert.Equal(t, "shapes.pc.go\nshapes.enums.pc.go\nshapes.Point.pc.go\nshapes.pc.impl.go\n", resp.GetFile()[4].GetContent())
}

func TestRespondSplitHeadersEnv(t *testing.T) {
	resp := respond(request(t, ""), "true", discard)
	require.Empty(t, resp.GetError())
	assert.Len(t, resp.GetFile(), 4)

	resp = respond(request(t, "split_headers=false"), "true", discard)
	require.Empty(t, resp.GetError())
	assert.Len(t, resp.GetFile(), 2)

	resp = respond(request(t, ""), "maybe", discard)
	assert.Contains(t, resp.GetError(), splitHeadersEnv)
}

func TestRespondUnknownOption(t *testing.T) {
	resp := respond(request(t, "paths=source_relative"), "", discard)
	assert.Contains(t, resp.GetError(), `unknown option "paths"`)
	assert.Empty(t, resp.GetFile())
}

func TestRunRoundTrip(t *testing.T) {
	data, err := proto.Marshal(request(t, ""))
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, run(bytes.NewReader(data), &out, "", discard))

	resp := &pluginpb.CodeGeneratorResponse{}
	require.NoError(t, proto.Unmarshal(out.Bytes(), resp))
	assert.Equal(t, []string{"shapes.pc.go", "shapes.pc.impl.go"}, fileNames(resp))
}

func TestRespondBadDescriptors(t *testing.T) {
	req := &pluginpb.CodeGeneratorRequest{
		FileToGenerate: []string{"a.proto"},
		ProtoFile: []*descriptorpb.FileDescriptorProto{{
			Name:       proto.String("a.proto"),
			Dependency: []string{"missing.proto"},
		}},
	}
	resp := respond(req, "", discard)
	assert.Contains(t, resp.GetError(), "build descriptors")
}
