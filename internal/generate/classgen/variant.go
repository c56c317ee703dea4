package classgen

import (
	"fmt"

	"github.com/jptrs93/protoclass/internal/ir"
	"github.com/jptrs93/protoclass/internal/wire"
)

// Variant selects the field generator for a field.
type Variant int

const (
	ScalarSingular Variant = iota
	ScalarRepeated
	EnumSingular
	EnumRepeated
	MessageSingular
	MessageRepeated
)

func (v Variant) String() string {
	switch v {
	case ScalarSingular:
		return "ScalarSingular"
	case ScalarRepeated:
		return "ScalarRepeated"
	case EnumSingular:
		return "EnumSingular"
	case EnumRepeated:
		return "EnumRepeated"
	case MessageSingular:
		return "MessageSingular"
	case MessageRepeated:
		return "MessageRepeated"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Classify maps a field's kind and cardinality to its generator variant. Groups are
// message variants; strings and bytes are scalars.
func Classify(field ir.Field) (Variant, error) {
	if _, err := wire.CategoryOf(field.Kind); err != nil {
		return 0, fmt.Errorf("field %s: %w", field.Name, err)
	}
	repeated := field.IsRepeated()
	switch {
	case field.Kind.IsMessage() && repeated:
		return MessageRepeated, nil
	case field.Kind.IsMessage():
		return MessageSingular, nil
	case field.Kind == ir.KindEnum && repeated:
		return EnumRepeated, nil
	case field.Kind == ir.KindEnum:
		return EnumSingular, nil
	case repeated:
		return ScalarRepeated, nil
	default:
		return ScalarSingular, nil
	}
}
