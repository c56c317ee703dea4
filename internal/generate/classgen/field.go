package classgen

import (
	"fmt"
	"strings"

	"github.com/jptrs93/protoclass/internal/ir"
	"github.com/jptrs93/protoclass/internal/wire"
)

// fieldGenerator emits every code fragment for one field. Implementations are the six
// leaf variants; each fragment is a slice of unindented lines, formatted later.
//
// Fragments run with fixed receiver names: m (*Class) and other (*Class) on the value,
// b (*ClassBuilder) and r (its working *Class) on the builder, b ([]byte) in AppendTo,
// size in SerializedSize, h in Hash, w and indent in WriteDescription, data and err in
// the decode loop.
type fieldGenerator interface {
	vars() *fieldVars
	declaration() []string
	initialization() []string
	accessors() []string
	builderMembers() []string
	merge() []string
	partialMerge() []string
	parse() []decodeCase
	serialize() []string
	size() []string
	equal() []string
	hash() []string
	description() []string
}

type decodeCase struct {
	tag   uint32
	lines []string
}

// fieldVars is the naming and wire metadata shared by every variant.
type fieldVars struct {
	field   ir.Field
	variant Variant
	class   string
	builder string
	// name is the exported stem of accessors: Name, HasName, SetName.
	name    string
	storage string
	has     string
	memo    string
	// goType is the element type: the value type for singular fields.
	goType      string
	typeName    string
	defaultExpr string
	category    wire.Category
	tag         uint32
	tagSize     int
	// packedTag is the length-delimited tag of a packable repeated field.
	packedTag     uint32
	packedTagSize int
	packable      bool
}

func (v *fieldVars) vars() *fieldVars {
	return v
}

func newFieldGenerator(r *run, class string, field ir.Field) (fieldGenerator, error) {
	variant, err := Classify(field)
	if err != nil {
		return nil, err
	}
	category, err := wire.CategoryOf(field.Kind)
	if err != nil {
		return nil, err
	}
	tag, err := wire.Tag(field.Number, category)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", field.Name, err)
	}
	v := &fieldVars{
		field:    field,
		variant:  variant,
		class:    class,
		builder:  class + "Builder",
		name:     r.names.FieldName(field.Name),
		storage:  r.names.StorageName(field.Name),
		category: category,
		tag:      tag,
		tagSize:  wire.TagSize(tag),
	}
	v.has = "has" + strings.TrimSuffix(v.name, "_")
	v.memo = v.storage + "MemoizedSize"
	if field.IsRepeated() && wire.Packable(field.Kind) {
		v.packable = true
		v.packedTag, err = wire.Tag(field.Number, wire.LengthDelimited)
		if err != nil {
			return nil, err
		}
		v.packedTagSize = wire.TagSize(v.packedTag)
	}
	v.defaultExpr, err = DefaultValue(field, r.index, r.names)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", field.Name, err)
	}

	switch variant {
	case ScalarSingular, ScalarRepeated:
		v.goType, err = goScalarType(field.Kind)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
	case EnumSingular, EnumRepeated:
		v.typeName, err = r.enumName(field.EnumFullName)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		v.goType = v.typeName
	case MessageSingular, MessageRepeated:
		v.typeName, err = r.className(field.MessageFullName)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		v.goType = "*" + v.typeName
	}

	switch variant {
	case ScalarSingular:
		return &scalarSingular{fieldVars: v}, nil
	case ScalarRepeated:
		return &scalarRepeated{fieldVars: v}, nil
	case EnumSingular:
		return &enumSingular{fieldVars: v}, nil
	case EnumRepeated:
		return &enumRepeated{fieldVars: v}, nil
	case MessageSingular:
		return &messageSingular{fieldVars: v}, nil
	default:
		return &messageRepeated{fieldVars: v}, nil
	}
}

// The helpers below build fragments shared by several variants.

func (v *fieldVars) protoName() string {
	return v.field.Name
}

func (v *fieldVars) hasAccessors(recv, typ, target string) []string {
	return []string{
		fmt.Sprintf("func (%s *%s) Has%s() bool {", recv, typ, v.name),
		fmt.Sprintf("return %s.%s", target, v.has),
		"}",
		"",
	}
}

func (v *fieldVars) singularDeclaration() []string {
	return []string{
		fmt.Sprintf("%s %s", v.storage, v.goType),
		fmt.Sprintf("%s bool", v.has),
	}
}

func (v *fieldVars) singularMerge() []string {
	return []string{
		fmt.Sprintf("if other.%s {", v.has),
		fmt.Sprintf("r.%s = other.%s", v.storage, v.storage),
		fmt.Sprintf("r.%s = true", v.has),
		"}",
	}
}

func (v *fieldVars) singularPartialMerge(clearValue string) []string {
	return []string{
		fmt.Sprintf("if other.%s {", v.has),
		fmt.Sprintf("r.%s = other.%s", v.storage, v.storage),
		fmt.Sprintf("r.%s = true", v.has),
		"} else {",
		fmt.Sprintf("r.%s = %s", v.storage, clearValue),
		fmt.Sprintf("r.%s = false", v.has),
		"}",
	}
}

func (v *fieldVars) singularHash(value string) []string {
	return []string{
		fmt.Sprintf("if m.%s {", v.has),
		fmt.Sprintf("h = h*31 + %s", hashExpr(v.field.Kind, value)),
		"}",
	}
}

func (v *fieldVars) singularEqual(notEqual string) []string {
	return []string{
		fmt.Sprintf("if m.%s != other.%s {", v.has, v.has),
		"return false",
		"}",
		fmt.Sprintf("if m.%s && %s {", v.has, notEqual),
		"return false",
		"}",
	}
}

func (v *fieldVars) repeatedDeclaration() []string {
	return []string{fmt.Sprintf("%s []%s", v.storage, v.goType)}
}

func (v *fieldVars) repeatedAccessors() []string {
	return []string{
		fmt.Sprintf("// %s returns a copy of the list.", v.name),
		fmt.Sprintf("func (m *%s) %s() []%s {", v.class, v.name, v.goType),
		fmt.Sprintf("return slices.Clone(m.%s)", v.storage),
		"}",
		"",
		fmt.Sprintf("func (m *%s) %sCount() int {", v.class, v.name),
		fmt.Sprintf("return len(m.%s)", v.storage),
		"}",
		"",
		fmt.Sprintf("func (m *%s) %sAt(i int) %s {", v.class, v.name, v.goType),
		fmt.Sprintf("return m.%s[i]", v.storage),
		"}",
		"",
	}
}

func (v *fieldVars) repeatedBuilderMembers() []string {
	return []string{
		fmt.Sprintf("func (b *%s) %s() []%s {", v.builder, v.name, v.goType),
		fmt.Sprintf("return slices.Clone(b.instance().%s)", v.storage),
		"}",
		"",
		fmt.Sprintf("func (b *%s) Add%s(v ...%s) *%s {", v.builder, v.name, v.goType, v.builder),
		"r := b.instance()",
		fmt.Sprintf("r.%s = append(r.%s, v...)", v.storage, v.storage),
		"return b",
		"}",
		"",
		fmt.Sprintf("func (b *%s) Set%s(v []%s) *%s {", v.builder, v.name, v.goType, v.builder),
		"r := b.instance()",
		fmt.Sprintf("r.%s = slices.Clone(v)", v.storage),
		"return b",
		"}",
		"",
		fmt.Sprintf("func (b *%s) Clear%s() *%s {", v.builder, v.name, v.builder),
		"r := b.instance()",
		fmt.Sprintf("r.%s = nil", v.storage),
		"return b",
		"}",
		"",
	}
}

func (v *fieldVars) repeatedMerge() []string {
	return []string{
		fmt.Sprintf("if len(other.%s) > 0 {", v.storage),
		fmt.Sprintf("r.%s = slices.Clone(other.%s)", v.storage, v.storage),
		"}",
	}
}

func (v *fieldVars) repeatedPartialMerge() []string {
	return []string{fmt.Sprintf("r.%s = slices.Clone(other.%s)", v.storage, v.storage)}
}

func (v *fieldVars) repeatedHash(value string) []string {
	return []string{
		fmt.Sprintf("for _, v := range m.%s {", v.storage),
		fmt.Sprintf("h = h*31 + %s", hashExpr(v.field.Kind, value)),
		"}",
	}
}

func (v *fieldVars) repeatedDescription() []string {
	return []string{
		fmt.Sprintf("for _, v := range m.%s {", v.storage),
		fmt.Sprintf("fmt.Fprintf(w, \"%%s%s: %s\\n\", indent, v)", v.protoName(), describeVerb(v.field.Kind)),
		"}",
	}
}

func appendTagLine(tag uint32) string {
	return fmt.Sprintf("b = protowire.AppendVarint(b, %d)", tag)
}

func errCheck() []string {
	return []string{"if err != nil {", "return nil, err", "}"}
}
