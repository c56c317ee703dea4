// Command protoc-gen-protoclass is the protoc plugin host of the class generator.
//
// Parameters are passed as --protoclass_opt=key=value (split_headers, output_list_file,
// go_package, out). Setting PROTOCLASS_SPLIT_HEADERS in the environment enables split headers.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/jptrs93/protoclass/internal/generate"
	"github.com/jptrs93/protoclass/internal/generate/classgen"
	"github.com/jptrs93/protoclass/internal/parser"
)

const splitHeadersEnv = "PROTOCLASS_SPLIT_HEADERS"

func main() {
	if len(os.Args) == 2 && os.Args[1] == "-version" {
		fmt.Printf("protoc-gen-protoclass %s\n", generate.Version)
		return
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if err := run(os.Stdin, os.Stdout, os.Getenv(splitHeadersEnv), logger); err != nil {
		fmt.Fprintf(os.Stderr, "protoc-gen-protoclass: %v\n", err)
		os.Exit(1)
	}
}

func run(stdin io.Reader, stdout io.Writer, splitEnv string, logger *slog.Logger) error {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	req := &pluginpb.CodeGeneratorRequest{}
	if err := proto.Unmarshal(data, req); err != nil {
		return fmt.Errorf("parse request: %w", err)
	}
	resp := respond(req, splitEnv, logger)
	out, err := proto.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	_, err = stdout.Write(out)
	return err
}

// respond generates the files named in req. Failures are reported in the response's error
// field, which protoc prints and turns into a failed run.
func respond(req *pluginpb.CodeGeneratorRequest, splitEnv string, logger *slog.Logger) *pluginpb.CodeGeneratorResponse {
	resp := &pluginpb.CodeGeneratorResponse{
		SupportedFeatures: proto.Uint64(uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)),
	}
	files, err := generateFiles(req, splitEnv, logger)
	if err != nil {
		resp.Error = proto.String(err.Error())
		return resp
	}
	for _, f := range files {
		resp.File = append(resp.File, &pluginpb.CodeGeneratorResponse_File{
			Name:    proto.String(f.Path),
			Content: proto.String(string(f.Content)),
		})
	}
	return resp
}

func generateFiles(req *pluginpb.CodeGeneratorRequest, splitEnv string, logger *slog.Logger) ([]generate.OutputFile, error) {
	var options generate.Options
	if splitEnv != "" {
		split, err := strconv.ParseBool(splitEnv)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", splitHeadersEnv, err)
		}
		options.SplitHeaders = split
	}
	if err := options.ApplyParameter(req.GetParameter()); err != nil {
		return nil, err
	}
	options.Targets = req.GetFileToGenerate()

	registry, err := protodesc.NewFiles(&descriptorpb.FileDescriptorSet{File: req.GetProtoFile()})
	if err != nil {
		return nil, fmt.Errorf("build descriptors: %w", err)
	}
	fds := make([]protoreflect.FileDescriptor, 0, len(req.GetProtoFile()))
	for _, fdp := range req.GetProtoFile() {
		fd, err := registry.FindFileByPath(fdp.GetName())
		if err != nil {
			return nil, err
		}
		fds = append(fds, fd)
	}
	files, err := parser.Files(fds)
	if err != nil {
		return nil, err
	}
	logger.Debug("request", "files", len(files), "targets", len(options.Targets), "split", options.SplitHeaders)

	outputs, err := classgen.Generator{Logger: logger}.Generate(files, options)
	if err != nil {
		return nil, err
	}
	return generate.WithManifest(outputs, options), nil
}
