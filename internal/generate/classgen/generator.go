// Package classgen generates immutable message classes with builders and a binary codec
// from the schema model.
package classgen

import (
	"fmt"
	"log/slog"
	"path"
	"strings"
	"text/template"

	"github.com/jptrs93/protoclass/internal/generate"
	"github.com/jptrs93/protoclass/internal/generate/templates"
	"github.com/jptrs93/protoclass/internal/ir"
)

// Namer derives target identifiers from schema names. ir.Names is the default.
type Namer interface {
	// TypeName names the class or enum type for fullName declared in proto package pkg.
	TypeName(pkg, fullName string) string
	// FieldName is the exported accessor stem of a field.
	FieldName(protoName string) string
	// StorageName is the unexported struct member holding a field.
	StorageName(protoName string) string
	EnumValueName(enumType, valueName string) string
	// ExtensionName names the descriptor variable of an extension declared in scope, the
	// enclosing class name or "" at file level.
	ExtensionName(scope, name string) string
}

// Generator emits one set of artifacts per target file. Its zero value uses ir.Names and
// discards logs.
type Generator struct {
	Names  Namer
	Logger *slog.Logger
}

func (g Generator) Name() string {
	return "classgen"
}

// run holds the state of one Generate call.
type run struct {
	index  *ir.Index
	names  Namer
	logger *slog.Logger
	tmpl   *template.Template
}

func (g Generator) Generate(files []ir.File, options generate.Options) ([]generate.OutputFile, error) {
	tmpl, err := template.ParseFS(templates.FS, "go_file.tmpl")
	if err != nil {
		return nil, err
	}
	r := &run{
		index:  ir.NewIndex(files),
		names:  g.Names,
		logger: g.Logger,
		tmpl:   tmpl,
	}
	if r.names == nil {
		r.names = ir.Names{}
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}

	var outputs []generate.OutputFile
	bases := make(map[string]string)
	for i := range files {
		file := &files[i]
		if !options.IsTarget(file.Path) {
			continue
		}
		base := baseName(file.Path)
		if prev, ok := bases[base]; ok {
			return nil, fmt.Errorf("%s and %s both generate %s.pc.go", prev, file.Path, base)
		}
		bases[base] = file.Path

		pkg, err := packageName(file, options)
		if err != nil {
			return nil, err
		}
		r.logger.Debug("generating file", "path", file.Path, "package", pkg)
		out, err := r.generateFile(file, pkg, base, options)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file.Path, err)
		}
		outputs = append(outputs, out...)
	}
	return outputs, nil
}

// baseName is the file name of a schema path without its extension. Every target is
// generated into one directory, so directories are dropped.
func baseName(filePath string) string {
	return strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
}

// packageName picks the package clause: the option, then the file's go_package, then the
// last element of the proto package.
func packageName(file *ir.File, options generate.Options) (string, error) {
	switch {
	case options.GoPackage != "":
		return options.GoPackage, nil
	case file.GoPackage != "":
		return file.GoPackage, nil
	case file.Package != "":
		parts := strings.Split(file.Package, ".")
		return parts[len(parts)-1], nil
	default:
		return "", fmt.Errorf("%s: go package name is required (set go_package)", file.Path)
	}
}

func (r *run) typeName(fullName string) string {
	return r.names.TypeName(r.index.Packages[fullName], fullName)
}

func (r *run) className(fullName string) (string, error) {
	if _, err := r.index.Message(fullName); err != nil {
		return "", err
	}
	return r.typeName(fullName), nil
}

func (r *run) enumName(fullName string) (string, error) {
	if _, err := r.index.Enum(fullName); err != nil {
		return "", err
	}
	return r.typeName(fullName), nil
}
