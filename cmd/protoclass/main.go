package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"

	"github.com/jptrs93/protoclass/internal/generate"
	"github.com/jptrs93/protoclass/internal/generate/classgen"
	"github.com/jptrs93/protoclass/internal/parser"
)

type stringList []string

func (s *stringList) String() string {
	return fmt.Sprint([]string(*s))
}

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// flagKeys maps command line flags onto option keys. Flags override the config file.
var flagKeys = map[string]string{
	"out":              generate.KeyOutDir,
	"go_pkg":           generate.KeyGoPackage,
	"split_headers":    generate.KeySplitHeaders,
	"output_list_file": generate.KeyOutputListFile,
}

var errUsage = errors.New("usage")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("protoclass", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var importPaths stringList
	fs.Var(&importPaths, "proto_path", "proto import path (repeatable)")
	fs.String("out", "", "output directory for generated code")
	fs.String("go_pkg", "", "Go package name for generated code")
	fs.Bool("split_headers", false, "emit one declaration file per class")
	fs.String("output_list_file", "", "write the list of generated files to this path")
	configPath := fs.String("config", "", "YAML options file")
	verbose := fs.Bool("v", false, "debug logging")
	dump := fs.Bool("dump", false, "dump the parsed schema model to stderr")
	showVersion := fs.Bool("version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if *showVersion {
		fmt.Fprintf(stdout, "protoclass %s\n", generate.Version)
		return nil
	}
	if fs.NArg() == 0 {
		return errors.New("no proto files provided")
	}
	if len(importPaths) == 0 {
		importPaths = append(importPaths, ".")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var options generate.Options
	if *configPath != "" {
		var err error
		options, err = generate.LoadOptionsFile(*configPath)
		if err != nil {
			return err
		}
	}
	var setErr error
	fs.Visit(func(f *flag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || setErr != nil {
			return
		}
		setErr = options.Set(key, f.Value.String())
	})
	if setErr != nil {
		return setErr
	}
	options.OutDir = cleanPath(options.OutDir)
	options.Targets = fs.Args()

	p := parser.Parser{ImportPaths: importPaths}
	files, err := p.Parse(ctx, fs.Args())
	if err != nil {
		return err
	}
	logger.Debug("parsed schema", "files", len(files), "targets", len(options.Targets))
	if *dump {
		spew.Fdump(stderr, files)
	}

	gen := classgen.Generator{Logger: logger}
	outputs, err := gen.Generate(files, options)
	if err != nil {
		return err
	}
	outputs = generate.WithManifest(outputs, options)
	if err := generate.WriteFiles(ctx, outputs); err != nil {
		return err
	}
	var total uint64
	for _, out := range outputs {
		size := uint64(len(out.Content))
		total += size
		logger.Debug("wrote", "artifact", out.Name, "path", out.Path, "size", humanize.Bytes(size))
	}
	logger.Info("generated", "generator", gen.Name(), "files", len(outputs), "size", humanize.Bytes(total))
	return nil
}

func cleanPath(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}
