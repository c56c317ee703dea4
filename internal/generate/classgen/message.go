package classgen

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/jptrs93/protoclass/internal/ir"
)

// messagePlan is computed once per message and reused by every emission pass.
type messagePlan struct {
	msg   *ir.Message
	class string
	// declared keeps declaration order; fields is sorted by number.
	declared []fieldGenerator
	fields   []fieldGenerator
	ranges   []ir.ExtensionRange
	// initChecks holds the numbers of message fields whose type is transitively required.
	initChecks map[int]bool
}

func (r *run) planMessage(msg *ir.Message) (*messagePlan, error) {
	class, err := r.className(msg.FullName)
	if err != nil {
		return nil, err
	}
	plan := &messagePlan{msg: msg, class: class, initChecks: make(map[int]bool)}
	seen := make(map[int]string)
	for _, field := range msg.Fields {
		if prev, ok := seen[field.Number]; ok {
			return nil, &ir.SchemaError{
				Element: msg.FullName,
				Reason:  fmt.Sprintf("fields %s and %s share number %d", prev, field.Name, field.Number),
			}
		}
		seen[field.Number] = field.Name
		gen, err := newFieldGenerator(r, class, field)
		if err != nil {
			return nil, fmt.Errorf("message %s: %w", msg.FullName, err)
		}
		plan.declared = append(plan.declared, gen)
		if field.Kind.IsMessage() {
			required, err := needsInitCheck(r.index, field)
			if err != nil {
				return nil, fmt.Errorf("message %s: %w", msg.FullName, err)
			}
			plan.initChecks[field.Number] = required
		}
	}
	plan.fields = slices.Clone(plan.declared)
	slices.SortFunc(plan.fields, func(a, b fieldGenerator) int {
		return cmp.Compare(a.vars().field.Number, b.vars().field.Number)
	})
	plan.ranges = slices.Clone(msg.ExtensionRanges)
	slices.SortFunc(plan.ranges, func(a, b ir.ExtensionRange) int {
		return cmp.Compare(a.Start, b.Start)
	})
	return plan, nil
}

// interleave visits fields and extension ranges in ascending order of field number and
// range start. Every emission pass that writes per-field code in wire order goes through
// it so they all agree.
func (p *messagePlan) interleave(field func(fieldGenerator), extRange func(ir.ExtensionRange)) {
	i, j := 0, 0
	for i < len(p.fields) || j < len(p.ranges) {
		switch {
		case i == len(p.fields):
			extRange(p.ranges[j])
			j++
		case j == len(p.ranges):
			field(p.fields[i])
			i++
		case p.fields[i].vars().field.Number < p.ranges[j].Start:
			field(p.fields[i])
			i++
		default:
			extRange(p.ranges[j])
			j++
		}
	}
}

// order lists the interleaved sequence, one entry per field or range.
func (p *messagePlan) order() []string {
	var out []string
	p.interleave(func(g fieldGenerator) {
		out = append(out, fmt.Sprintf("field %d %s", g.vars().field.Number, g.vars().field.Name))
	}, func(er ir.ExtensionRange) {
		out = append(out, fmt.Sprintf("extensions [%d, %d)", er.Start, er.End))
	})
	return out
}

func (p *messagePlan) hasExtensions() bool {
	return len(p.ranges) > 0
}

func (p *messagePlan) defaultVar() string {
	return "default" + p.class
}

// classCode is the generated code of one message, split into declarations (header) and
// implementation (source) blocks.
type classCode struct {
	name   string
	header []string
	source []string
}

func (p *messagePlan) generate() classCode {
	code := classCode{name: p.class}
	code.header = append(code.header,
		block(p.structDecl()),
		block(p.constructor()),
		block(p.accessors()),
		block(p.builderDecl()),
	)
	code.source = append(code.source,
		block(p.builderCore()),
		block(p.builderMembers()),
		block(p.mergeFrom()),
		block(p.mergeFieldsFrom()),
		block(p.decode()),
		block(p.serializedSize()),
		block(p.appendTo()),
		block(p.isInitialized()),
		block(p.equal()),
		block(p.hash()),
		block(p.description()),
	)
	return code
}

func block(lines []string) string {
	return strings.Join(lines, "\n")
}

func (p *messagePlan) structDecl() []string {
	lines := []string{
		fmt.Sprintf("// %s is an immutable %s value. Use %sBuilder to create or modify one.", p.class, p.msg.FullName, p.class),
		"//",
		fmt.Sprintf("// A %s is safe for concurrent use. Its serialized size is computed once and memoized.", p.class),
		fmt.Sprintf("type %s struct {", p.class),
	}
	for _, g := range p.declared {
		lines = append(lines, g.declaration()...)
	}
	lines = append(lines, "unknownFields pcrt.UnknownFields")
	if p.hasExtensions() {
		lines = append(lines, "extensions pcrt.Extensions")
	}
	lines = append(lines, "memoizedSize atomic.Int64", "}")
	return lines
}

func (p *messagePlan) constructor() []string {
	lines := []string{
		fmt.Sprintf("var %s = new%s()", p.defaultVar(), p.class),
		"",
		fmt.Sprintf("func new%s() *%s {", p.class, p.class),
		fmt.Sprintf("m := &%s{", p.class),
	}
	for _, g := range p.declared {
		lines = append(lines, g.initialization()...)
	}
	lines = append(lines,
		"}",
		"m.memoizedSize.Store(-1)",
		"return m",
		"}",
		"",
		fmt.Sprintf("// Default%s returns the shared instance with every field unset.", p.class),
		fmt.Sprintf("func Default%s() *%s {", p.class, p.class),
		fmt.Sprintf("return %s", p.defaultVar()),
		"}",
	)
	return lines
}

func (p *messagePlan) accessors() []string {
	var lines []string
	for _, g := range p.declared {
		lines = append(lines, g.accessors()...)
	}
	lines = append(lines,
		fmt.Sprintf("func (m *%s) UnknownFields() pcrt.UnknownFields {", p.class),
		"return m.unknownFields",
		"}",
	)
	if p.hasExtensions() {
		lines = append(lines,
			"",
			"// Extensions returns a copy of the extension fields.",
			fmt.Sprintf("func (m *%s) Extensions() *pcrt.Extensions {", p.class),
			"return m.extensions.Clone()",
			"}",
		)
	}
	return lines
}

func (p *messagePlan) builderDecl() []string {
	return []string{
		fmt.Sprintf("// %sBuilder builds a %s. A builder hands its value over on Build or", p.class, p.class),
		"// BuildPartial and panics with pcrt.ErrBuilderReused if used afterwards.",
		fmt.Sprintf("type %sBuilder struct {", p.class),
		fmt.Sprintf("result *%s", p.class),
		"}",
	}
}

func (p *messagePlan) builderCore() []string {
	c := p.class
	lines := []string{
		fmt.Sprintf("func New%sBuilder() *%sBuilder {", c, c),
		fmt.Sprintf("return &%sBuilder{result: new%s()}", c, c),
		"}",
		"",
		fmt.Sprintf("func (m *%s) ToBuilder() *%sBuilder {", c, c),
		fmt.Sprintf("return New%sBuilder().MergeFrom(m)", c),
		"}",
		"",
		fmt.Sprintf("func (b *%sBuilder) instance() *%s {", c, c),
		"if b.result == nil {",
		"panic(pcrt.ErrBuilderReused)",
		"}",
		"return b.result",
		"}",
		"",
		fmt.Sprintf("func (b *%sBuilder) Clear() *%sBuilder {", c, c),
		"b.instance()",
		fmt.Sprintf("b.result = new%s()", c),
		"return b",
		"}",
		"",
		fmt.Sprintf("func (b *%sBuilder) IsInitialized() bool {", c),
		"return b.instance().IsInitialized()",
		"}",
		"",
		"// Build returns the value if all required fields are set. On failure the builder",
		"// keeps its value.",
		fmt.Sprintf("func (b *%sBuilder) Build() (*%s, error) {", c, c),
		"if !b.instance().IsInitialized() {",
		fmt.Sprintf("return nil, &pcrt.NotInitializedError{Message: %q}", p.msg.FullName),
		"}",
		"return b.BuildPartial(), nil",
		"}",
		"",
		"// BuildPartial returns the value without checking required fields.",
		fmt.Sprintf("func (b *%sBuilder) BuildPartial() *%s {", c, c),
		"r := b.instance()",
		"b.result = nil",
		"return r",
		"}",
	}
	if p.hasExtensions() {
		lines = append(lines,
			"",
			"// Extensions returns an editor over the builder's extension fields.",
			fmt.Sprintf("func (b *%sBuilder) Extensions() pcrt.ExtensionsEditor {", c),
			"return pcrt.NewExtensionsEditor(func() *pcrt.Extensions {",
			"return &b.instance().extensions",
			"})",
			"}",
		)
	}
	return lines
}

func (p *messagePlan) builderMembers() []string {
	var lines []string
	for _, g := range p.declared {
		lines = append(lines, g.builderMembers()...)
	}
	return lines
}

func (p *messagePlan) mergeFrom() []string {
	c := p.class
	lines := []string{
		"// MergeFrom copies the fields set in other. Set singular fields overwrite, embedded",
		"// messages merge recursively and non-empty repeated fields replace the current list.",
		fmt.Sprintf("func (b *%sBuilder) MergeFrom(other *%s) *%sBuilder {", c, c, c),
		"r := b.instance()",
		fmt.Sprintf("if other == nil || other == %s {", p.defaultVar()),
		"return b",
		"}",
	}
	for _, g := range p.fields {
		lines = append(lines, g.merge()...)
	}
	if p.hasExtensions() {
		lines = append(lines, "r.extensions.Merge(&other.extensions)")
	}
	lines = append(lines,
		"r.unknownFields = append(r.unknownFields, other.unknownFields...)",
		"return b",
		"}",
	)
	return lines
}

func (p *messagePlan) mergeFieldsFrom() []string {
	c := p.class
	lines := []string{
		"// MergeFieldsFrom copies the listed fields from other, clearing those other does not set.",
		fmt.Sprintf("func (b *%sBuilder) MergeFieldsFrom(other *%s, numbers ...int32) *%sBuilder {", c, c, c),
	}
	if len(p.fields) == 0 {
		return append(lines, "b.instance()", "return b", "}")
	}
	lines = append(lines,
		"r := b.instance()",
		"if other == nil {",
		fmt.Sprintf("other = %s", p.defaultVar()),
		"}",
		"for _, num := range numbers {",
		"switch num {",
	)
	for _, g := range p.fields {
		lines = append(lines, fmt.Sprintf("case %d:", g.vars().field.Number))
		lines = append(lines, g.partialMerge()...)
	}
	return append(lines, "}", "}", "return b", "}")
}

func (p *messagePlan) decode() []string {
	c := p.class
	lines := []string{
		"// MergeFromBytes decodes data and merges the result into the builder's value.",
		fmt.Sprintf("func (b *%sBuilder) MergeFromBytes(data []byte) error {", c),
		"_, err := b.mergeFrom(data, 0)",
		"return err",
		"}",
		"",
	}
	if p.hasExtensions() {
		lines = append(lines,
			"// MergeFromBytesWithRegistry is MergeFromBytes followed by resolving extension fields",
			"// against reg.",
			fmt.Sprintf("func (b *%sBuilder) MergeFromBytesWithRegistry(data []byte, reg *pcrt.ExtensionRegistry) error {", c),
			"if _, err := b.mergeFrom(data, 0); err != nil {",
			"return err",
			"}",
			fmt.Sprintf("b.instance().extensions.Resolve(reg, %q)", p.msg.FullName),
			"return nil",
			"}",
			"",
		)
	}
	lines = append(lines,
		"// mergeFrom decodes fields until data is exhausted, a zero tag, or the end tag of group.",
		fmt.Sprintf("func (b *%sBuilder) mergeFrom(data []byte, group protowire.Number) ([]byte, error) {", c),
		"r := b.instance()",
		"var err error",
		"for len(data) > 0 {",
		"field := data",
		"var tag uint64",
		"data, tag, err = pcrt.ConsumeVarint(data)",
	)
	lines = append(lines, errCheck()...)
	lines = append(lines,
		"switch tag {",
		"case 0:",
		"if group != 0 {",
		"return nil, pcrt.ErrTruncatedGroup",
		"}",
		"return data, nil",
	)
	for _, g := range p.fields {
		for _, dc := range g.parse() {
			lines = append(lines, fmt.Sprintf("case %d:", dc.tag))
			lines = append(lines, dc.lines...)
		}
	}
	lines = append(lines,
		"default:",
		"num, typ := protowire.DecodeTag(tag)",
		"if typ == protowire.EndGroupType {",
		"return pcrt.EndGroup(data, num, group)",
		"}",
		"var raw []byte",
		"data, raw, err = pcrt.ConsumeUnknown(field, data, num, typ)",
	)
	lines = append(lines, errCheck()...)
	if p.hasExtensions() {
		var conds []string
		for _, er := range p.ranges {
			conds = append(conds, fmt.Sprintf("num >= %d && num < %d", er.Start, er.End))
		}
		if len(conds) > 1 {
			for i, c := range conds {
				conds[i] = "(" + c + ")"
			}
		}
		lines = append(lines,
			fmt.Sprintf("if %s {", strings.Join(conds, " || ")),
			"r.extensions.Add(num, raw)",
			"} else {",
			"r.unknownFields = append(r.unknownFields, raw...)",
			"}",
		)
	} else {
		lines = append(lines, "r.unknownFields = append(r.unknownFields, raw...)")
	}
	lines = append(lines,
		"}",
		"}",
		"if group != 0 {",
		"return nil, pcrt.ErrTruncatedGroup",
		"}",
		"return data, nil",
		"}",
		"",
		fmt.Sprintf("// Parse%s decodes data into a new %s. Missing required fields are an error.", c, c),
		fmt.Sprintf("func Parse%s(data []byte) (*%s, error) {", c, c),
		fmt.Sprintf("b := New%sBuilder()", c),
		"if err := b.MergeFromBytes(data); err != nil {",
		"return nil, err",
		"}",
		"return b.Build()",
		"}",
	)
	return lines
}

func (p *messagePlan) serializedSize() []string {
	lines := []string{
		"// SerializedSize returns the encoded length of m. The result is memoized.",
		fmt.Sprintf("func (m *%s) SerializedSize() int {", p.class),
		"if size := m.memoizedSize.Load(); size != -1 {",
		"return int(size)",
		"}",
		"size := 0",
	}
	p.interleave(func(g fieldGenerator) {
		lines = append(lines, g.size()...)
	}, func(er ir.ExtensionRange) {
		lines = append(lines, fmt.Sprintf("size += m.extensions.SizeRange(%d, %d)", er.Start, er.End))
	})
	return append(lines,
		"size += len(m.unknownFields)",
		"m.memoizedSize.Store(int64(size))",
		"return size",
		"}",
	)
}

func (p *messagePlan) appendTo() []string {
	lines := []string{
		"// AppendTo appends the encoding of m to b.",
		fmt.Sprintf("func (m *%s) AppendTo(b []byte) []byte {", p.class),
		"m.SerializedSize()",
	}
	p.interleave(func(g fieldGenerator) {
		lines = append(lines, g.serialize()...)
	}, func(er ir.ExtensionRange) {
		lines = append(lines, fmt.Sprintf("b = m.extensions.AppendRange(b, %d, %d)", er.Start, er.End))
	})
	return append(lines,
		"return append(b, m.unknownFields...)",
		"}",
		"",
		fmt.Sprintf("func (m *%s) Marshal() []byte {", p.class),
		"return m.AppendTo(make([]byte, 0, m.SerializedSize()))",
		"}",
	)
}

func (p *messagePlan) isInitialized() []string {
	lines := []string{fmt.Sprintf("func (m *%s) IsInitialized() bool {", p.class)}
	for _, g := range p.declared {
		v := g.vars()
		switch {
		case v.field.IsRequired(), hasRequiredTag(v.field) && !v.field.IsRepeated():
			lines = append(lines, fmt.Sprintf("if !m.%s {", v.has), "return false", "}")
		case hasRequiredTag(v.field):
			lines = append(lines, fmt.Sprintf("if len(m.%s) == 0 {", v.storage), "return false", "}")
		}
	}
	for _, g := range p.declared {
		v := g.vars()
		if !p.initChecks[v.field.Number] {
			continue
		}
		switch {
		case v.field.IsRepeated():
			lines = append(lines,
				fmt.Sprintf("for _, v := range m.%s {", v.storage),
				"if !v.IsInitialized() {",
				"return false",
				"}",
				"}",
			)
		case v.field.IsRequired(), hasRequiredTag(v.field):
			lines = append(lines, fmt.Sprintf("if !m.%s().IsInitialized() {", v.name), "return false", "}")
		default:
			lines = append(lines, fmt.Sprintf("if m.%s && !m.%s().IsInitialized() {", v.has, v.name), "return false", "}")
		}
	}
	if p.hasExtensions() {
		return append(lines, "return m.extensions.IsInitialized()", "}")
	}
	return append(lines, "return true", "}")
}

func (p *messagePlan) equal() []string {
	c := p.class
	lines := []string{
		"// Equal reports whether m and other have the same fields, presence, extensions and",
		"// unknown fields.",
		fmt.Sprintf("func (m *%s) Equal(other *%s) bool {", c, c),
		"if m == other {",
		"return true",
		"}",
		"if m == nil || other == nil {",
		"return false",
		"}",
	}
	p.interleave(func(g fieldGenerator) {
		lines = append(lines, g.equal()...)
	}, func(er ir.ExtensionRange) {
		lines = append(lines,
			fmt.Sprintf("if !m.extensions.EqualRange(&other.extensions, %d, %d) {", er.Start, er.End),
			"return false",
			"}",
		)
	})
	return append(lines, "return bytes.Equal(m.unknownFields, other.unknownFields)", "}")
}

func (p *messagePlan) hash() []string {
	lines := []string{
		fmt.Sprintf("func (m *%s) Hash() uint64 {", p.class),
		"h := uint64(7)",
	}
	p.interleave(func(g fieldGenerator) {
		lines = append(lines, g.hash()...)
	}, func(er ir.ExtensionRange) {
		lines = append(lines, fmt.Sprintf("h = h*31 + m.extensions.HashRange(%d, %d)", er.Start, er.End))
	})
	return append(lines,
		"h = h*31 + pcrt.HashBytes(m.unknownFields)",
		"return h",
		"}",
	)
}

func (p *messagePlan) description() []string {
	lines := []string{
		"// WriteDescription writes a text rendering of m, one field per line.",
		fmt.Sprintf("func (m *%s) WriteDescription(w io.Writer, indent string) {", p.class),
	}
	p.interleave(func(g fieldGenerator) {
		lines = append(lines, g.description()...)
	}, func(er ir.ExtensionRange) {
		lines = append(lines, fmt.Sprintf("m.extensions.WriteDescriptionRange(w, indent, %d, %d)", er.Start, er.End))
	})
	return append(lines,
		"m.unknownFields.WriteDescription(w, indent)",
		"}",
		"",
		fmt.Sprintf("func (m *%s) String() string {", p.class),
		"var sb strings.Builder",
		"m.WriteDescription(&sb, \"\")",
		"return sb.String()",
		"}",
	)
}
