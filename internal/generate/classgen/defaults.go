package classgen

import (
	"fmt"
	"strconv"

	"github.com/jptrs93/protoclass/internal/ir"
)

// DefaultValue returns the Go expression of a field's default: the declared default when
// present, otherwise the zero value of its kind, the first declared value of its enum, or
// the default instance of its message type.
func DefaultValue(field ir.Field, index *ir.Index, names Namer) (string, error) {
	switch field.Kind {
	case ir.KindMessage, ir.KindGroup:
		if _, err := index.Message(field.MessageFullName); err != nil {
			return "", err
		}
		return "Default" + names.TypeName(index.Packages[field.MessageFullName], field.MessageFullName) + "()", nil
	case ir.KindEnum:
		enum, err := index.Enum(field.EnumFullName)
		if err != nil {
			return "", err
		}
		if len(enum.Values) == 0 {
			return "", &ir.SchemaError{Element: enum.FullName, Reason: "enum declares no values"}
		}
		typeName := names.TypeName(index.Packages[enum.FullName], enum.FullName)
		value := enum.Values[0].Name
		if field.HasDefault {
			value = field.Default
			if !hasEnumValue(enum, value) {
				return "", &ir.SchemaError{Element: field.Name, Reason: fmt.Sprintf("default %q is not a value of %s", value, enum.FullName)}
			}
		}
		return names.EnumValueName(typeName, value), nil
	}
	if !field.HasDefault {
		return zeroValue(field.Kind)
	}
	return literalDefault(field)
}

func hasEnumValue(enum *ir.Enum, name string) bool {
	for _, v := range enum.Values {
		if v.Name == name {
			return true
		}
	}
	return false
}

func zeroValue(kind ir.Kind) (string, error) {
	switch kind {
	case ir.KindBool:
		return "false", nil
	case ir.KindString:
		return `""`, nil
	case ir.KindBytes:
		return "nil", nil
	case ir.KindInt32, ir.KindInt64, ir.KindUint32, ir.KindUint64, ir.KindSint32, ir.KindSint64,
		ir.KindFixed32, ir.KindFixed64, ir.KindSfixed32, ir.KindSfixed64, ir.KindFloat, ir.KindDouble:
		return "0", nil
	default:
		return "", &ir.SchemaError{Element: kind.String(), Reason: "no zero value"}
	}
}

func literalDefault(field ir.Field) (string, error) {
	invalid := func() error {
		return &ir.SchemaError{Element: field.Name, Reason: fmt.Sprintf("invalid %s default %q", field.Kind, field.Default)}
	}
	switch field.Kind {
	case ir.KindBool:
		v, err := strconv.ParseBool(field.Default)
		if err != nil {
			return "", invalid()
		}
		return strconv.FormatBool(v), nil
	case ir.KindString:
		return strconv.Quote(field.Default), nil
	case ir.KindBytes:
		return "[]byte(" + strconv.Quote(field.Default) + ")", nil
	case ir.KindInt32, ir.KindSint32, ir.KindSfixed32:
		if _, err := strconv.ParseInt(field.Default, 0, 32); err != nil {
			return "", invalid()
		}
	case ir.KindInt64, ir.KindSint64, ir.KindSfixed64:
		if _, err := strconv.ParseInt(field.Default, 0, 64); err != nil {
			return "", invalid()
		}
	case ir.KindUint32, ir.KindFixed32:
		if _, err := strconv.ParseUint(field.Default, 0, 32); err != nil {
			return "", invalid()
		}
	case ir.KindUint64, ir.KindFixed64:
		if _, err := strconv.ParseUint(field.Default, 0, 64); err != nil {
			return "", invalid()
		}
	case ir.KindFloat, ir.KindDouble:
		return floatDefault(field, invalid)
	default:
		return "", invalid()
	}
	return field.Default, nil
}

func floatDefault(field ir.Field, invalid func() error) (string, error) {
	wrap := func(expr string) string {
		if field.Kind == ir.KindFloat {
			return "float32(" + expr + ")"
		}
		return expr
	}
	switch field.Default {
	case "inf":
		return wrap("math.Inf(1)"), nil
	case "-inf":
		return wrap("math.Inf(-1)"), nil
	case "nan":
		return wrap("math.NaN()"), nil
	}
	bits := 64
	if field.Kind == ir.KindFloat {
		bits = 32
	}
	if _, err := strconv.ParseFloat(field.Default, bits); err != nil {
		return "", invalid()
	}
	return field.Default, nil
}
