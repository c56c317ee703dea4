package classgen

import (
	"fmt"
	"strings"

	"github.com/jptrs93/protoclass/internal/ir"
)

// generateEnum emits the enum type, its constants, IsValid<Enum> and String. Aliases
// share a number; only the first name of each number appears in switches.
func (r *run) generateEnum(enum *ir.Enum) (string, error) {
	if len(enum.Values) == 0 {
		return "", &ir.SchemaError{Element: enum.FullName, Reason: "enum declares no values"}
	}
	name, err := r.enumName(enum.FullName)
	if err != nil {
		return "", err
	}
	lines := []string{
		fmt.Sprintf("// %s is the enum %s.", name, enum.FullName),
		fmt.Sprintf("type %s int32", name),
		"",
		"const (",
	}
	seen := make(map[int32]bool)
	var first []ir.EnumValue
	for _, v := range enum.Values {
		lines = append(lines, fmt.Sprintf("%s %s = %d", r.names.EnumValueName(name, v.Name), name, v.Number))
		if !seen[v.Number] {
			seen[v.Number] = true
			first = append(first, v)
		}
	}
	lines = append(lines, ")", "")

	cases := make([]string, len(first))
	for i, v := range first {
		cases[i] = r.names.EnumValueName(name, v.Name)
	}
	lines = append(lines,
		fmt.Sprintf("// IsValid%s reports whether v is a declared value of %s.", name, name),
		fmt.Sprintf("func IsValid%s(v %s) bool {", name, name),
		"switch v {",
		fmt.Sprintf("case %s:", strings.Join(cases, ", ")),
		"return true",
		"default:",
		"return false",
		"}",
		"}",
		"",
		fmt.Sprintf("func (v %s) String() string {", name),
		"switch v {",
	)
	for i, v := range first {
		lines = append(lines, fmt.Sprintf("case %s:", cases[i]), fmt.Sprintf("return %q", v.Name))
	}
	lines = append(lines,
		"default:",
		fmt.Sprintf("return fmt.Sprintf(\"%s(%%d)\", int32(v))", name),
		"}",
		"}",
	)
	return block(lines), nil
}
