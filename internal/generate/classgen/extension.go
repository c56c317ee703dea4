package classgen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jptrs93/protoclass/internal/ir"
	"github.com/jptrs93/protoclass/internal/wire"
)

// scopedExtension is an extension field with the class that declares it, if any.
type scopedExtension struct {
	field ir.Field
	// scope is the declaring class name, empty at file level.
	scope     string
	scopeName string
}

// extensionDesc emits the descriptor variable of one extension.
func (r *run) extensionDesc(ext scopedExtension) (string, string, error) {
	field := ext.field
	category, err := wire.CategoryOf(field.Kind)
	if err != nil {
		return "", "", fmt.Errorf("extension %s: %w", field.Name, err)
	}
	if _, err := wire.Tag(field.Number, category); err != nil {
		return "", "", fmt.Errorf("extension %s: %w", field.Name, err)
	}
	if field.IsRequired() {
		return "", "", &ir.SchemaError{Element: field.Name, Reason: "extensions cannot be required"}
	}
	name := r.names.ExtensionName(ext.scope, field.Name)
	fullName := field.Name
	if ext.scopeName != "" {
		fullName = ext.scopeName + "." + field.Name
	}
	typ := category.GoConst()
	if field.IsRepeated() && field.IsPacked && wire.Packable(field.Kind) {
		typ = "protowire.BytesType"
	}
	lines := []string{
		fmt.Sprintf("var %s = &pcrt.ExtensionDesc{", name),
		fmt.Sprintf("Extendee: %q,", field.Extendee),
		fmt.Sprintf("Number: %d,", field.Number),
		fmt.Sprintf("Name: %q,", fullName),
		fmt.Sprintf("Type: %s,", typ),
	}
	if field.IsRepeated() {
		lines = append(lines, "Repeated: true,")
	}
	if field.Kind.IsMessage() {
		class, err := r.className(field.MessageFullName)
		if err != nil {
			return "", "", fmt.Errorf("extension %s: %w", field.Name, err)
		}
		required, err := needsInitCheck(r.index, field)
		if err != nil {
			return "", "", fmt.Errorf("extension %s: %w", field.Name, err)
		}
		if required {
			lines = append(lines, fmt.Sprintf("Validate: func(p []byte) bool { _, err := Parse%s(p); return err == nil },", class))
		}
	}
	lines = append(lines, "}")
	return name, block(lines), nil
}

// extensionRegistration emits Register<File>Extensions for the descriptor variables.
func extensionRegistration(base string, vars []string) string {
	fn := "Register" + identifier(base) + "Extensions"
	return block([]string{
		fmt.Sprintf("// %s adds the extensions declared in %s to reg.", fn, base),
		fmt.Sprintf("func %s(reg *pcrt.ExtensionRegistry) error {", fn),
		fmt.Sprintf("for _, d := range []*pcrt.ExtensionDesc{%s} {", strings.Join(vars, ", ")),
		"if err := reg.Register(d); err != nil {",
		"return err",
		"}",
		"}",
		"return nil",
		"}",
	})
}

// identifier turns a file base name such as "unit-test.v2" into "UnitTestV2".
func identifier(base string) string {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, base)
	return ir.GoName(clean)
}
