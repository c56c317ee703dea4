package classgen

import (
	"fmt"

	"github.com/jptrs93/protoclass/internal/ir"
	"github.com/jptrs93/protoclass/internal/wire"
)

// messageSingular is an embedded message or group. Merging into a present value merges
// field-wise instead of replacing it.
type messageSingular struct {
	*fieldVars
}

func (g *messageSingular) declaration() []string {
	return g.singularDeclaration()
}

func (g *messageSingular) initialization() []string {
	return nil
}

// value is the nil-safe read of the stored message.
func (g *messageSingular) value(recv string) string {
	return fmt.Sprintf("%s.%s()", recv, g.name)
}

func (g *messageSingular) accessors() []string {
	lines := g.hasAccessors("m", g.class, "m")
	return append(lines,
		fmt.Sprintf("func (m *%s) %s() %s {", g.class, g.name, g.goType),
		fmt.Sprintf("if m.%s == nil {", g.storage),
		fmt.Sprintf("return %s", g.defaultExpr),
		"}",
		fmt.Sprintf("return m.%s", g.storage),
		"}",
		"",
	)
}

func (g *messageSingular) builderMembers() []string {
	lines := g.hasAccessors("b", g.builder, "b.instance()")
	return append(lines,
		fmt.Sprintf("func (b *%s) %s() %s {", g.builder, g.name, g.goType),
		fmt.Sprintf("return b.instance().%s()", g.name),
		"}",
		"",
		fmt.Sprintf("func (b *%s) Set%s(v %s) *%s {", g.builder, g.name, g.goType, g.builder),
		"r := b.instance()",
		fmt.Sprintf("r.%s = v", g.storage),
		fmt.Sprintf("r.%s = v != nil", g.has),
		"return b",
		"}",
		"",
		fmt.Sprintf("// Merge%s merges v into the current value, or sets it when none is present.", g.name),
		fmt.Sprintf("func (b *%s) Merge%s(v %s) *%s {", g.builder, g.name, g.goType, g.builder),
		"r := b.instance()",
		fmt.Sprintf("if r.%s && r.%s != nil && r.%s != %s {", g.has, g.storage, g.storage, g.defaultExpr),
		fmt.Sprintf("r.%s = r.%s.ToBuilder().MergeFrom(v).BuildPartial()", g.storage, g.storage),
		"} else {",
		fmt.Sprintf("r.%s = v", g.storage),
		"}",
		fmt.Sprintf("r.%s = true", g.has),
		"return b",
		"}",
		"",
		fmt.Sprintf("func (b *%s) Clear%s() *%s {", g.builder, g.name, g.builder),
		"r := b.instance()",
		fmt.Sprintf("r.%s = nil", g.storage),
		fmt.Sprintf("r.%s = false", g.has),
		"return b",
		"}",
		"",
	)
}

func (g *messageSingular) merge() []string {
	return []string{
		fmt.Sprintf("if other.%s {", g.has),
		fmt.Sprintf("b.Merge%s(other.%s)", g.name, g.storage),
		"}",
	}
}

func (g *messageSingular) partialMerge() []string {
	return g.singularPartialMerge("nil")
}

func (g *messageSingular) parse() []decodeCase {
	lines := []string{fmt.Sprintf("sub := New%sBuilder()", g.typeName)}
	lines = append(lines,
		fmt.Sprintf("if r.%s {", g.has),
		fmt.Sprintf("sub.MergeFrom(r.%s)", g.storage),
		"}",
	)
	lines = append(lines, subMessageDecode(g.fieldVars)...)
	lines = append(lines,
		fmt.Sprintf("r.%s = sub.BuildPartial()", g.storage),
		fmt.Sprintf("r.%s = true", g.has),
	)
	return []decodeCase{{tag: g.tag, lines: lines}}
}

// subMessageDecode decodes into the builder sub: a length-delimited payload for messages,
// the group body up to its end tag for groups.
func subMessageDecode(v *fieldVars) []string {
	if v.field.Kind == ir.KindGroup {
		lines := []string{fmt.Sprintf("data, err = sub.mergeFrom(data, %d)", v.field.Number)}
		return append(lines, errCheck()...)
	}
	lines := []string{
		"var payload []byte",
		"data, payload, err = pcrt.ConsumeBytes(data)",
	}
	lines = append(lines, errCheck()...)
	return append(lines,
		"if _, err = sub.mergeFrom(payload, 0); err != nil {",
		"return nil, err",
		"}",
	)
}

func (g *messageSingular) serialize() []string {
	lines := []string{fmt.Sprintf("if m.%s {", g.has)}
	lines = append(lines, messageAppend(g.fieldVars, g.value("m"))...)
	return append(lines, "}")
}

func messageAppend(v *fieldVars, value string) []string {
	if v.field.Kind == ir.KindGroup {
		endTag := v.tag&^7 | uint32(wire.EndGroup)
		return []string{
			appendTagLine(v.tag),
			fmt.Sprintf("b = %s.AppendTo(b)", value),
			appendTagLine(endTag),
		}
	}
	return []string{
		appendTagLine(v.tag),
		fmt.Sprintf("b = protowire.AppendVarint(b, uint64(%s.SerializedSize()))", value),
		fmt.Sprintf("b = %s.AppendTo(b)", value),
	}
}

func messageSizeExpr(v *fieldVars, value string) string {
	if v.field.Kind == ir.KindGroup {
		return fmt.Sprintf("%d + %s.SerializedSize()", 2*v.tagSize, value)
	}
	return fmt.Sprintf("%d + protowire.SizeBytes(%s.SerializedSize())", v.tagSize, value)
}

func (g *messageSingular) size() []string {
	return []string{
		fmt.Sprintf("if m.%s {", g.has),
		"size += " + messageSizeExpr(g.fieldVars, g.value("m")),
		"}",
	}
}

func (g *messageSingular) equal() []string {
	return g.singularEqual(fmt.Sprintf("!%s.Equal(%s)", g.value("m"), g.value("other")))
}

func (g *messageSingular) hash() []string {
	return g.singularHash(g.value("m"))
}

func (g *messageSingular) description() []string {
	return []string{
		fmt.Sprintf("if m.%s {", g.has),
		fmt.Sprintf("fmt.Fprintf(w, \"%%s%s {\\n\", indent)", g.protoName()),
		fmt.Sprintf("%s.WriteDescription(w, indent+\"  \")", g.value("m")),
		"fmt.Fprintf(w, \"%s}\\n\", indent)",
		"}",
	}
}

// messageRepeated is a repeated message or group field. Each decoded occurrence gets a
// fresh builder; merging replaces the list.
type messageRepeated struct {
	*fieldVars
}

func (g *messageRepeated) declaration() []string {
	return g.repeatedDeclaration()
}

func (g *messageRepeated) initialization() []string {
	return nil
}

func (g *messageRepeated) accessors() []string {
	return g.repeatedAccessors()
}

func (g *messageRepeated) builderMembers() []string {
	return g.repeatedBuilderMembers()
}

func (g *messageRepeated) merge() []string {
	return g.repeatedMerge()
}

func (g *messageRepeated) partialMerge() []string {
	return g.repeatedPartialMerge()
}

func (g *messageRepeated) parse() []decodeCase {
	lines := []string{fmt.Sprintf("sub := New%sBuilder()", g.typeName)}
	lines = append(lines, subMessageDecode(g.fieldVars)...)
	lines = append(lines, fmt.Sprintf("r.%s = append(r.%s, sub.BuildPartial())", g.storage, g.storage))
	return []decodeCase{{tag: g.tag, lines: lines}}
}

func (g *messageRepeated) serialize() []string {
	lines := []string{fmt.Sprintf("for _, v := range m.%s {", g.storage)}
	lines = append(lines, messageAppend(g.fieldVars, "v")...)
	return append(lines, "}")
}

func (g *messageRepeated) size() []string {
	return []string{
		fmt.Sprintf("for _, v := range m.%s {", g.storage),
		"size += " + messageSizeExpr(g.fieldVars, "v"),
		"}",
	}
}

func (g *messageRepeated) equal() []string {
	return []string{
		fmt.Sprintf("if !slices.EqualFunc(m.%s, other.%s, (*%s).Equal) {", g.storage, g.storage, g.typeName),
		"return false",
		"}",
	}
}

func (g *messageRepeated) hash() []string {
	return g.repeatedHash("v")
}

func (g *messageRepeated) description() []string {
	return []string{
		fmt.Sprintf("for _, v := range m.%s {", g.storage),
		fmt.Sprintf("fmt.Fprintf(w, \"%%s%s {\\n\", indent)", g.protoName()),
		"v.WriteDescription(w, indent+\"  \")",
		"fmt.Fprintf(w, \"%s}\\n\", indent)",
		"}",
	}
}
