package classgen

import (
	"fmt"
)

// enumSingular is a singular enum field. Values outside the declared set are kept as
// unknown varint fields when decoded.
type enumSingular struct {
	*fieldVars
}

func (g *enumSingular) declaration() []string {
	return g.singularDeclaration()
}

func (g *enumSingular) initialization() []string {
	return []string{fmt.Sprintf("%s: %s,", g.storage, g.defaultExpr)}
}

func (g *enumSingular) accessors() []string {
	lines := g.hasAccessors("m", g.class, "m")
	return append(lines,
		fmt.Sprintf("func (m *%s) %s() %s {", g.class, g.name, g.goType),
		fmt.Sprintf("return m.%s", g.storage),
		"}",
		"",
	)
}

func (g *enumSingular) builderMembers() []string {
	return singularBuilderMembers(g.fieldVars)
}

func (g *enumSingular) merge() []string {
	return g.singularMerge()
}

func (g *enumSingular) partialMerge() []string {
	return g.singularPartialMerge(g.defaultExpr)
}

func (g *enumSingular) parse() []decodeCase {
	lines := enumElement(g.fieldVars, "data", []string{
		fmt.Sprintf("r.%s = %s(int32(v))", g.storage, g.typeName),
		fmt.Sprintf("r.%s = true", g.has),
	})
	return []decodeCase{{tag: g.tag, lines: lines}}
}

// enumElement reads one varint from buf and runs store when it names a declared value.
func enumElement(v *fieldVars, buf string, store []string) []string {
	lines := mustLines(consumeLines(v.field.Kind, buf, "v"))
	lines = append(lines, fmt.Sprintf("if IsValid%s(%s(int32(v))) {", v.typeName, v.typeName))
	lines = append(lines, store...)
	return append(lines,
		"} else {",
		fmt.Sprintf("r.unknownFields = pcrt.AppendVarintField(r.unknownFields, %d, v)", v.field.Number),
		"}",
	)
}

func (g *enumSingular) serialize() []string {
	return []string{
		fmt.Sprintf("if m.%s {", g.has),
		appendTagLine(g.tag),
		"b = " + mustExpr(appendValueExpr(g.field.Kind, "b", "m."+g.storage)),
		"}",
	}
}

func (g *enumSingular) size() []string {
	return []string{
		fmt.Sprintf("if m.%s {", g.has),
		fmt.Sprintf("size += %s", taggedSizeExpr(g.field.Kind, g.tagSize, "m."+g.storage)),
		"}",
	}
}

func (g *enumSingular) equal() []string {
	return g.singularEqual(notEqualExpr(g.field.Kind, "m."+g.storage, "other."+g.storage))
}

func (g *enumSingular) hash() []string {
	return g.singularHash("m." + g.storage)
}

func (g *enumSingular) description() []string {
	return []string{
		fmt.Sprintf("if m.%s {", g.has),
		fmt.Sprintf("fmt.Fprintf(w, \"%%s%s: %%v\\n\", indent, m.%s)", g.protoName(), g.storage),
		"}",
	}
}

// enumRepeated is a repeated enum field, packed or not.
type enumRepeated struct {
	*fieldVars
}

func (g *enumRepeated) declaration() []string {
	return repeatedDeclaration(g.fieldVars)
}

func (g *enumRepeated) initialization() []string {
	return nil
}

func (g *enumRepeated) accessors() []string {
	return g.repeatedAccessors()
}

func (g *enumRepeated) builderMembers() []string {
	return g.repeatedBuilderMembers()
}

func (g *enumRepeated) merge() []string {
	return g.repeatedMerge()
}

func (g *enumRepeated) partialMerge() []string {
	return g.repeatedPartialMerge()
}

func (g *enumRepeated) parse() []decodeCase {
	store := []string{fmt.Sprintf("r.%s = append(r.%s, %s(int32(v)))", g.storage, g.storage, g.typeName)}
	return repeatedDecodeCases(g.fieldVars, func(buf string) []string {
		return enumElement(g.fieldVars, buf, store)
	})
}

func (g *enumRepeated) serialize() []string {
	return repeatedSerialize(g.fieldVars)
}

func (g *enumRepeated) size() []string {
	return repeatedSize(g.fieldVars)
}

func (g *enumRepeated) equal() []string {
	return []string{
		fmt.Sprintf("if !slices.Equal(m.%s, other.%s) {", g.storage, g.storage),
		"return false",
		"}",
	}
}

func (g *enumRepeated) hash() []string {
	return g.repeatedHash("v")
}

func (g *enumRepeated) description() []string {
	return g.repeatedDescription()
}
