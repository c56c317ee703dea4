// Package wire holds the pure wire-format arithmetic the field generators rely on:
// wire categories per declared kind, tag values, tag sizes and fixed encoded widths.
package wire

import (
	"fmt"

	"github.com/jptrs93/protoclass/internal/ir"

	"google.golang.org/protobuf/encoding/protowire"
)

// Category is a wire type. The numeric values are the on-the-wire codes.
type Category int

const (
	Varint          Category = 0
	Fixed64         Category = 1
	LengthDelimited Category = 2
	StartGroup      Category = 3
	EndGroup        Category = 4
	Fixed32         Category = 5
)

func (c Category) String() string {
	switch c {
	case Varint:
		return "varint"
	case Fixed64:
		return "fixed64"
	case LengthDelimited:
		return "length-delimited"
	case StartGroup:
		return "start-group"
	case EndGroup:
		return "end-group"
	case Fixed32:
		return "fixed32"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Type returns the protowire constant generated code uses for the category.
func (c Category) Type() protowire.Type {
	return protowire.Type(c)
}

// GoConst is the protowire identifier for the category as it appears in generated source.
func (c Category) GoConst() string {
	switch c {
	case Varint:
		return "protowire.VarintType"
	case Fixed64:
		return "protowire.Fixed64Type"
	case LengthDelimited:
		return "protowire.BytesType"
	case StartGroup:
		return "protowire.StartGroupType"
	case EndGroup:
		return "protowire.EndGroupType"
	case Fixed32:
		return "protowire.Fixed32Type"
	default:
		return fmt.Sprintf("protowire.Type(%d)", int(c))
	}
}

// Variable is the FixedWidth result for kinds whose encoded length depends on the value.
const Variable = -1

// CategoryOf maps a declared kind to its wire category. Groups map to StartGroup.
func CategoryOf(kind ir.Kind) (Category, error) {
	switch kind {
	case ir.KindBool, ir.KindInt32, ir.KindInt64, ir.KindUint32, ir.KindUint64,
		ir.KindSint32, ir.KindSint64, ir.KindEnum:
		return Varint, nil
	case ir.KindFixed64, ir.KindSfixed64, ir.KindDouble:
		return Fixed64, nil
	case ir.KindFixed32, ir.KindSfixed32, ir.KindFloat:
		return Fixed32, nil
	case ir.KindString, ir.KindBytes, ir.KindMessage:
		return LengthDelimited, nil
	case ir.KindGroup:
		return StartGroup, nil
	default:
		return 0, &ir.SchemaError{Element: kind.String(), Reason: "unrecognized field kind"}
	}
}

// Tag combines a field number and wire category into a tag value.
func Tag(number int, category Category) (uint32, error) {
	if number < int(protowire.MinValidNumber) || number > int(protowire.MaxValidNumber) {
		return 0, &ir.SchemaError{Element: fmt.Sprintf("field %d", number), Reason: "field number out of range"}
	}
	if category < Varint || category > Fixed32 {
		return 0, &ir.SchemaError{Element: fmt.Sprintf("field %d", number), Reason: "invalid wire category " + category.String()}
	}
	return uint32(number)<<3 | uint32(category), nil
}

// TagSize is the number of bytes the varint encoding of tag occupies.
func TagSize(tag uint32) int {
	return protowire.SizeVarint(uint64(tag))
}

// FixedWidth returns the constant encoded width of a kind, or Variable.
func FixedWidth(kind ir.Kind) int {
	switch kind {
	case ir.KindFixed32, ir.KindSfixed32, ir.KindFloat:
		return 4
	case ir.KindFixed64, ir.KindSfixed64, ir.KindDouble:
		return 8
	case ir.KindBool:
		return 1
	default:
		return Variable
	}
}

// Packable reports whether repeated fields of the kind may use the packed encoding.
func Packable(kind ir.Kind) bool {
	switch kind {
	case ir.KindString, ir.KindBytes, ir.KindMessage, ir.KindGroup:
		return false
	default:
		return true
	}
}
