package parser

import (
	"context"
	"fmt"
	"io"

	"github.com/bufbuild/protocompile"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/jptrs93/protoclass/internal/ir"
)

type Parser struct {
	ImportPaths []string
	// Accessor opens source files. Nil reads from disk.
	Accessor func(path string) (io.ReadCloser, error)
}

// Parse compiles the named files and returns them, preceded by every file they import.
func (p *Parser) Parse(ctx context.Context, filePaths []string) ([]ir.File, error) {
	resolver := &protocompile.SourceResolver{
		ImportPaths: p.ImportPaths,
		Accessor:    p.Accessor,
	}
	compiler := protocompile.Compiler{
		Resolver:       protocompile.WithStandardImports(resolver),
		SourceInfoMode: protocompile.SourceInfoStandard,
	}
	files, err := compiler.Compile(ctx, filePaths...)
	if err != nil {
		return nil, err
	}
	fds := make([]protoreflect.FileDescriptor, len(files))
	for i, f := range files {
		fds[i] = f
	}
	return Files(fds)
}

// Files converts fds and their transitive imports, dependencies first, each file once.
func Files(fds []protoreflect.FileDescriptor) ([]ir.File, error) {
	seen := make(map[string]bool)
	var result []ir.File
	var visit func(fd protoreflect.FileDescriptor) error
	visit = func(fd protoreflect.FileDescriptor) error {
		if fd.IsPlaceholder() || seen[fd.Path()] {
			return nil
		}
		seen[fd.Path()] = true
		imports := fd.Imports()
		for i := 0; i < imports.Len(); i++ {
			if err := visit(imports.Get(i).FileDescriptor); err != nil {
				return err
			}
		}
		file, err := FileFromDescriptor(fd)
		if err != nil {
			return err
		}
		result = append(result, file)
		return nil
	}
	for _, fd := range fds {
		if err := visit(fd); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// FileFromDescriptor converts one file. Oneof members become plain optional fields.
func FileFromDescriptor(file protoreflect.FileDescriptor) (ir.File, error) {
	out := ir.File{
		Path:      file.Path(),
		Package:   string(file.Package()),
		GoPackage: goPackageFromOptions(file),
	}
	enums := collectEnums(file.Enums())
	out.Enums = enums
	msgs, err := collectMessages(file.Messages())
	if err != nil {
		return ir.File{}, err
	}
	out.Messages = msgs
	exts, err := collectFields(file.Extensions())
	if err != nil {
		return ir.File{}, err
	}
	out.Extensions = exts
	return out, nil
}

func collectEnums(enums protoreflect.EnumDescriptors) []ir.Enum {
	var result []ir.Enum
	for i := 0; i < enums.Len(); i++ {
		enum := enums.Get(i)
		irEnum := ir.Enum{
			Name:     string(enum.Name()),
			FullName: string(enum.FullName()),
		}
		values := enum.Values()
		for j := 0; j < values.Len(); j++ {
			v := values.Get(j)
			irEnum.Values = append(irEnum.Values, ir.EnumValue{Name: string(v.Name()), Number: int32(v.Number())})
		}
		result = append(result, irEnum)
	}
	return result
}

func collectMessages(messages protoreflect.MessageDescriptors) ([]ir.Message, error) {
	var result []ir.Message
	for i := 0; i < messages.Len(); i++ {
		msg := messages.Get(i)
		irMsg := ir.Message{
			Name:       string(msg.Name()),
			FullName:   string(msg.FullName()),
			IsMapEntry: msg.IsMapEntry(),
		}
		fields, err := collectFields(msg.Fields())
		if err != nil {
			return nil, err
		}
		irMsg.Fields = fields
		ranges := msg.ExtensionRanges()
		for j := 0; j < ranges.Len(); j++ {
			r := ranges.Get(j)
			irMsg.ExtensionRanges = append(irMsg.ExtensionRanges, ir.ExtensionRange{Start: int(r[0]), End: int(r[1])})
		}
		exts, err := collectFields(msg.Extensions())
		if err != nil {
			return nil, err
		}
		irMsg.Extensions = exts
		irMsg.Enums = collectEnums(msg.Enums())
		nested, err := collectMessages(msg.Messages())
		if err != nil {
			return nil, err
		}
		irMsg.Messages = nested
		result = append(result, irMsg)
	}
	return result, nil
}

// fieldList is satisfied by both protoreflect.FieldDescriptors and
// protoreflect.ExtensionDescriptors.
type fieldList interface {
	Len() int
	Get(i int) protoreflect.FieldDescriptor
}

// collectFields converts fields or extensions.
func collectFields(fields fieldList) ([]ir.Field, error) {
	var result []ir.Field
	for i := 0; i < fields.Len(); i++ {
		field := fields.Get(i)
		kind, err := kindFromField(field)
		if err != nil {
			return nil, err
		}
		irField := ir.Field{
			Name:            string(field.Name()),
			Number:          int(field.Number()),
			Kind:            kind,
			Label:           labelFromField(field),
			IsPacked:        field.IsPacked(),
			TrailingComment: trailingComment(field),
		}
		switch kind {
		case ir.KindMessage, ir.KindGroup:
			irField.MessageFullName = string(field.Message().FullName())
		case ir.KindEnum:
			irField.EnumFullName = string(field.Enum().FullName())
		}
		if field.HasDefault() {
			irField.HasDefault = true
			irField.Default, err = defaultString(field)
			if err != nil {
				return nil, err
			}
		}
		if field.IsExtension() {
			irField.Extendee = string(field.ContainingMessage().FullName())
		}
		result = append(result, irField)
	}
	return result, nil
}

func labelFromField(field protoreflect.FieldDescriptor) ir.Label {
	switch field.Cardinality() {
	case protoreflect.Required:
		return ir.LabelRequired
	case protoreflect.Repeated:
		return ir.LabelRepeated
	default:
		return ir.LabelOptional
	}
}

func kindFromField(field protoreflect.FieldDescriptor) (ir.Kind, error) {
	switch field.Kind() {
	case protoreflect.BoolKind:
		return ir.KindBool, nil
	case protoreflect.Int32Kind:
		return ir.KindInt32, nil
	case protoreflect.Int64Kind:
		return ir.KindInt64, nil
	case protoreflect.Uint32Kind:
		return ir.KindUint32, nil
	case protoreflect.Uint64Kind:
		return ir.KindUint64, nil
	case protoreflect.Sint32Kind:
		return ir.KindSint32, nil
	case protoreflect.Sint64Kind:
		return ir.KindSint64, nil
	case protoreflect.Fixed32Kind:
		return ir.KindFixed32, nil
	case protoreflect.Fixed64Kind:
		return ir.KindFixed64, nil
	case protoreflect.Sfixed32Kind:
		return ir.KindSfixed32, nil
	case protoreflect.Sfixed64Kind:
		return ir.KindSfixed64, nil
	case protoreflect.FloatKind:
		return ir.KindFloat, nil
	case protoreflect.DoubleKind:
		return ir.KindDouble, nil
	case protoreflect.StringKind:
		return ir.KindString, nil
	case protoreflect.BytesKind:
		return ir.KindBytes, nil
	case protoreflect.MessageKind:
		return ir.KindMessage, nil
	case protoreflect.GroupKind:
		return ir.KindGroup, nil
	case protoreflect.EnumKind:
		return ir.KindEnum, nil
	default:
		return 0, fmt.Errorf("unsupported field kind: %s", field.Kind())
	}
}
