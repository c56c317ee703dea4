package ir

import (
	"go/token"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// reservedMethods are method names every generated class or builder already defines.
// Field accessors that would collide get a trailing underscore.
// Stems such as "From" are reserved because Merge<Stem> would collide with MergeFrom.
var reservedMethods = map[string]bool{
	"AppendTo":              true,
	"Build":                 true,
	"BuildPartial":          true,
	"Clear":                 true,
	"Equal":                 true,
	"Extensions":            true,
	"FieldsFrom":            true,
	"From":                  true,
	"FromBytes":             true,
	"FromBytesWithRegistry": true,
	"Hash":                  true,
	"IsInitialized":         true,
	"Marshal":               true,
	"MergeFieldsFrom":       true,
	"MergeFrom":             true,
	"MergeFromBytes":        true,
	"SerializedSize":        true,
	"String":                true,
	"ToBuilder":             true,
	"UnknownFields":         true,
	"WriteDescription":      true,
}

// reservedStorage are struct members every generated class declares.
var reservedStorage = map[string]bool{
	"extensions":    true,
	"memoizedSize":  true,
	"unknownFields": true,
}

// Names is the default naming service.
type Names struct{}

// TypeName returns the Go identifier for a message or enum. Nested types are joined
// with an underscore: pkg.Outer.Inner becomes Outer_Inner.
func (Names) TypeName(pkg, fullName string) string {
	local := strings.TrimPrefix(fullName, pkg+".")
	if pkg == "" {
		local = fullName
	}
	parts := strings.Split(local, ".")
	for i := range parts {
		parts[i] = title(parts[i])
	}
	return strings.Join(parts, "_")
}

func (Names) FieldName(protoName string) string {
	name := GoName(protoName)
	if reservedMethods[name] {
		return name + "_"
	}
	return name
}

func (Names) StorageName(protoName string) string {
	name := lowerFirst(GoName(protoName))
	if token.IsKeyword(name) || reservedStorage[name] {
		return name + "_"
	}
	return name
}

func (Names) EnumValueName(enumType, valueName string) string {
	return enumType + "_" + valueName
}

func (Names) ExtensionName(scope, name string) string {
	if scope == "" {
		return "E_" + GoName(name)
	}
	return "E_" + scope + "_" + GoName(name)
}

// GoName turns a proto identifier into an exported Go identifier. A trailing "id"
// part becomes "ID".
func GoName(protoName string) string {
	parts := splitParts(protoName)
	if len(parts) == 0 {
		return ""
	}
	for i := range parts {
		if i == len(parts)-1 && i > 0 && parts[i] == "id" {
			parts[i] = "ID"
			continue
		}
		parts[i] = title(parts[i])
	}
	name := strings.Join(parts, "")
	if strings.HasSuffix(name, "Id") && len(parts) == 1 && len(name) > 2 {
		name = strings.TrimSuffix(name, "Id") + "ID"
	}
	if name == "Id" {
		return "ID"
	}
	return name
}

func splitParts(name string) []string {
	if name == "" {
		return nil
	}
	if strings.ContainsAny(name, "_-") {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '_' || r == '-'
		})
		for i := range parts {
			parts[i] = strings.ToLower(parts[i])
		}
		return parts
	}
	return []string{name}
}

func title(s string) string {
	if s == "" {
		return ""
	}
	// Casers carry state, so each call gets its own.
	return cases.Title(language.Und, cases.NoLower).String(s)
}

func lowerFirst(s string) string {
	if s == "" {
		return ""
	}
	if s == "ID" {
		return "id"
	}
	return strings.ToLower(s[:1]) + s[1:]
}
