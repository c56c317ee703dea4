package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

func goPackageFromOptions(file protoreflect.FileDescriptor) string {
	opts, ok := file.Options().(*descriptorpb.FileOptions)
	if !ok || opts == nil {
		return ""
	}
	return goPackageName(opts.GetGoPackage())
}

// goPackageName extracts the package name from a go_package value such as
// "example.com/foo/bar;baz" or "example.com/foo/bar".
func goPackageName(goPkg string) string {
	if goPkg == "" {
		return ""
	}
	if strings.Contains(goPkg, ";") {
		parts := strings.Split(goPkg, ";")
		return parts[len(parts)-1]
	}
	goPkg = strings.TrimSuffix(goPkg, "/")
	if idx := strings.LastIndex(goPkg, "/"); idx != -1 {
		return goPkg[idx+1:]
	}
	return goPkg
}

func trailingComment(desc protoreflect.Descriptor) string {
	file := desc.ParentFile()
	if file == nil {
		return ""
	}
	return file.SourceLocations().ByDescriptor(desc).TrailingComments
}

// defaultString renders a declared default in schema syntax: enum value names, raw bytes
// as a string, and inf, -inf or nan for special floats.
func defaultString(field protoreflect.FieldDescriptor) (string, error) {
	v := field.Default()
	switch field.Kind() {
	case protoreflect.EnumKind:
		ev := field.DefaultEnumValue()
		if ev == nil {
			return "", fmt.Errorf("default of %s names no enum value", field.FullName())
		}
		return string(ev.Name()), nil
	case protoreflect.BoolKind:
		return strconv.FormatBool(v.Bool()), nil
	case protoreflect.StringKind:
		return v.String(), nil
	case protoreflect.BytesKind:
		return string(v.Bytes()), nil
	case protoreflect.FloatKind:
		return floatString(v.Float(), 32), nil
	case protoreflect.DoubleKind:
		return floatString(v.Float(), 64), nil
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind,
		protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return strconv.FormatInt(v.Int(), 10), nil
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind, protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return strconv.FormatUint(v.Uint(), 10), nil
	default:
		return "", fmt.Errorf("default not supported on %s field %s", field.Kind(), field.FullName())
	}
}

func floatString(f float64, bits int) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	default:
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
}
