package classgen

import (
	"fmt"

	"github.com/jptrs93/protoclass/internal/ir"
	"github.com/jptrs93/protoclass/internal/wire"
)

// scalarSingular covers numeric, bool, string and bytes fields with a presence flag.
type scalarSingular struct {
	*fieldVars
}

func (g *scalarSingular) declaration() []string {
	return g.singularDeclaration()
}

func (g *scalarSingular) initialization() []string {
	if !g.field.HasDefault {
		return nil
	}
	return []string{fmt.Sprintf("%s: %s,", g.storage, g.defaultExpr)}
}

func (g *scalarSingular) accessors() []string {
	lines := g.hasAccessors("m", g.class, "m")
	return append(lines,
		fmt.Sprintf("func (m *%s) %s() %s {", g.class, g.name, g.goType),
		fmt.Sprintf("return m.%s", g.storage),
		"}",
		"",
	)
}

func (g *scalarSingular) builderMembers() []string {
	return singularBuilderMembers(g.fieldVars)
}

func singularBuilderMembers(v *fieldVars) []string {
	value := "v"
	if v.field.Kind == ir.KindBytes {
		value = "append([]byte(nil), v...)"
	}
	lines := v.hasAccessors("b", v.builder, "b.instance()")
	return append(lines,
		fmt.Sprintf("func (b *%s) %s() %s {", v.builder, v.name, v.goType),
		fmt.Sprintf("return b.instance().%s", v.storage),
		"}",
		"",
		fmt.Sprintf("func (b *%s) Set%s(v %s) *%s {", v.builder, v.name, v.goType, v.builder),
		"r := b.instance()",
		fmt.Sprintf("r.%s = %s", v.storage, value),
		fmt.Sprintf("r.%s = true", v.has),
		"return b",
		"}",
		"",
		fmt.Sprintf("func (b *%s) Clear%s() *%s {", v.builder, v.name, v.builder),
		"r := b.instance()",
		fmt.Sprintf("r.%s = %s", v.storage, v.defaultExpr),
		fmt.Sprintf("r.%s = false", v.has),
		"return b",
		"}",
		"",
	)
}

func (g *scalarSingular) merge() []string {
	return g.singularMerge()
}

func (g *scalarSingular) partialMerge() []string {
	return g.singularPartialMerge(g.defaultExpr)
}

func (g *scalarSingular) parse() []decodeCase {
	lines := mustLines(consumeLines(g.field.Kind, "data", "v"))
	lines = append(lines,
		fmt.Sprintf("r.%s = %s", g.storage, mustExpr(convertExpr(g.field.Kind, "v", ""))),
		fmt.Sprintf("r.%s = true", g.has),
	)
	return []decodeCase{{tag: g.tag, lines: lines}}
}

func (g *scalarSingular) serialize() []string {
	return []string{
		fmt.Sprintf("if m.%s {", g.has),
		appendTagLine(g.tag),
		"b = " + mustExpr(appendValueExpr(g.field.Kind, "b", "m."+g.storage)),
		"}",
	}
}

func (g *scalarSingular) size() []string {
	return []string{
		fmt.Sprintf("if m.%s {", g.has),
		fmt.Sprintf("size += %s", taggedSizeExpr(g.field.Kind, g.tagSize, "m."+g.storage)),
		"}",
	}
}

func (g *scalarSingular) equal() []string {
	return g.singularEqual(notEqualExpr(g.field.Kind, "m."+g.storage, "other."+g.storage))
}

func (g *scalarSingular) hash() []string {
	return g.singularHash("m." + g.storage)
}

func (g *scalarSingular) description() []string {
	return []string{
		fmt.Sprintf("if m.%s {", g.has),
		fmt.Sprintf("fmt.Fprintf(w, \"%%s%s: %s\\n\", indent, m.%s)", g.protoName(), describeVerb(g.field.Kind), g.storage),
		"}",
	}
}

// scalarRepeated covers repeated numeric, bool, string and bytes fields. Packed fields are
// written as one length-delimited run whose length SerializedSize memoizes. The memo is
// stored before the message size, so a reader that sees the message size sees the memo.
type scalarRepeated struct {
	*fieldVars
}

func (g *scalarRepeated) declaration() []string {
	return repeatedDeclaration(g.fieldVars)
}

func repeatedDeclaration(v *fieldVars) []string {
	lines := v.repeatedDeclaration()
	if v.isPacked() {
		lines = append(lines, fmt.Sprintf("%s atomic.Int64", v.memo))
	}
	return lines
}

func (v *fieldVars) isPacked() bool {
	return v.packable && v.field.IsPacked
}

func (g *scalarRepeated) initialization() []string {
	return nil
}

func (g *scalarRepeated) accessors() []string {
	return g.repeatedAccessors()
}

func (g *scalarRepeated) builderMembers() []string {
	return g.repeatedBuilderMembers()
}

func (g *scalarRepeated) merge() []string {
	return g.repeatedMerge()
}

func (g *scalarRepeated) partialMerge() []string {
	return g.repeatedPartialMerge()
}

func (g *scalarRepeated) parse() []decodeCase {
	conv := mustExpr(convertExpr(g.field.Kind, "v", ""))
	appendLine := fmt.Sprintf("r.%s = append(r.%s, %s)", g.storage, g.storage, conv)
	return repeatedDecodeCases(g.fieldVars, func(buf string) []string {
		return append(mustLines(consumeLines(g.field.Kind, buf, "v")), appendLine)
	})
}

// repeatedDecodeCases returns the per-element case and, for packable kinds, the packed
// case. Both forms are accepted whatever the declared encoding.
func repeatedDecodeCases(v *fieldVars, element func(buf string) []string) []decodeCase {
	cases := []decodeCase{{tag: v.tag, lines: element("data")}}
	if !v.packable {
		return cases
	}
	packed := []string{
		"var payload []byte",
		"data, payload, err = pcrt.ConsumeBytes(data)",
	}
	packed = append(packed, errCheck()...)
	packed = append(packed, "for len(payload) > 0 {")
	packed = append(packed, element("payload")...)
	packed = append(packed, "}")
	return append(cases, decodeCase{tag: v.packedTag, lines: packed})
}

func (g *scalarRepeated) serialize() []string {
	return repeatedSerialize(g.fieldVars)
}

func repeatedSerialize(v *fieldVars) []string {
	value := mustExpr(appendValueExpr(v.field.Kind, "b", "v"))
	if v.isPacked() {
		return []string{
			fmt.Sprintf("if len(m.%s) > 0 {", v.storage),
			appendTagLine(v.packedTag),
			fmt.Sprintf("b = protowire.AppendVarint(b, uint64(m.%s.Load()))", v.memo),
			fmt.Sprintf("for _, v := range m.%s {", v.storage),
			"b = " + value,
			"}",
			"}",
		}
	}
	return []string{
		fmt.Sprintf("for _, v := range m.%s {", v.storage),
		appendTagLine(v.tag),
		"b = " + value,
		"}",
	}
}

func (g *scalarRepeated) size() []string {
	return repeatedSize(g.fieldVars)
}

func repeatedSize(v *fieldVars) []string {
	var lines []string
	if width := wire.FixedWidth(v.field.Kind); width != wire.Variable {
		lines = append(lines, fmt.Sprintf("dataSize := %d * len(m.%s)", width, v.storage))
	} else {
		lines = append(lines,
			"dataSize := 0",
			fmt.Sprintf("for _, v := range m.%s {", v.storage),
			fmt.Sprintf("dataSize += %s", mustExpr(sizeValueExpr(v.field.Kind, "v"))),
			"}",
		)
	}
	lines = append(lines, "size += dataSize")
	if v.isPacked() {
		lines = append(lines,
			fmt.Sprintf("if len(m.%s) > 0 {", v.storage),
			fmt.Sprintf("size += %d + protowire.SizeVarint(uint64(dataSize))", v.packedTagSize),
			"}",
			fmt.Sprintf("m.%s.Store(int64(dataSize))", v.memo),
		)
	} else {
		lines = append(lines, fmt.Sprintf("size += %d * len(m.%s)", v.tagSize, v.storage))
	}
	return append(append([]string{"{"}, lines...), "}")
}

func (g *scalarRepeated) equal() []string {
	cmp := fmt.Sprintf("slices.Equal(m.%s, other.%s)", g.storage, g.storage)
	if g.field.Kind == ir.KindBytes {
		cmp = fmt.Sprintf("slices.EqualFunc(m.%s, other.%s, bytes.Equal)", g.storage, g.storage)
	}
	return []string{"if !" + cmp + " {", "return false", "}"}
}

func (g *scalarRepeated) hash() []string {
	return g.repeatedHash("v")
}

func (g *scalarRepeated) description() []string {
	return g.repeatedDescription()
}

// taggedSizeExpr is the size of one tagged occurrence of v, folded to a constant for
// fixed-width kinds.
func taggedSizeExpr(kind ir.Kind, tagSize int, v string) string {
	if width := wire.FixedWidth(kind); width != wire.Variable {
		return fmt.Sprint(tagSize + width)
	}
	return fmt.Sprintf("%d + %s", tagSize, mustExpr(sizeValueExpr(kind, v)))
}

func notEqualExpr(kind ir.Kind, a, b string) string {
	switch kind {
	case ir.KindBytes, ir.KindMessage, ir.KindGroup:
		return "!" + equalExpr(kind, a, b)
	default:
		return a + " != " + b
	}
}

// mustExpr and mustLines unwrap kind helpers whose kind was validated when the generator
// was constructed.
func mustExpr(expr string, err error) string {
	if err != nil {
		panic(err)
	}
	return expr
}

func mustLines(lines []string, err error) []string {
	if err != nil {
		panic(err)
	}
	return lines
}
