package classgen

import (
	"fmt"
	"strconv"

	"github.com/jptrs93/protoclass/internal/ir"
	"github.com/jptrs93/protoclass/internal/wire"
)

func goScalarType(kind ir.Kind) (string, error) {
	switch kind {
	case ir.KindBool:
		return "bool", nil
	case ir.KindInt32, ir.KindSint32, ir.KindSfixed32:
		return "int32", nil
	case ir.KindInt64, ir.KindSint64, ir.KindSfixed64:
		return "int64", nil
	case ir.KindUint32, ir.KindFixed32:
		return "uint32", nil
	case ir.KindUint64, ir.KindFixed64:
		return "uint64", nil
	case ir.KindFloat:
		return "float32", nil
	case ir.KindDouble:
		return "float64", nil
	case ir.KindString:
		return "string", nil
	case ir.KindBytes:
		return "[]byte", nil
	default:
		return "", &ir.SchemaError{Element: kind.String(), Reason: "not a scalar kind"}
	}
}

// appendValueExpr appends the untagged encoding of value v to buffer b.
func appendValueExpr(kind ir.Kind, b, v string) (string, error) {
	switch kind {
	case ir.KindBool:
		return fmt.Sprintf("protowire.AppendVarint(%s, protowire.EncodeBool(%s))", b, v), nil
	case ir.KindInt32, ir.KindInt64, ir.KindUint32, ir.KindUint64, ir.KindEnum:
		return fmt.Sprintf("protowire.AppendVarint(%s, uint64(%s))", b, v), nil
	case ir.KindSint32:
		return fmt.Sprintf("protowire.AppendVarint(%s, protowire.EncodeZigZag(int64(%s)))", b, v), nil
	case ir.KindSint64:
		return fmt.Sprintf("protowire.AppendVarint(%s, protowire.EncodeZigZag(%s))", b, v), nil
	case ir.KindFixed32:
		return fmt.Sprintf("protowire.AppendFixed32(%s, %s)", b, v), nil
	case ir.KindSfixed32:
		return fmt.Sprintf("protowire.AppendFixed32(%s, uint32(%s))", b, v), nil
	case ir.KindFloat:
		return fmt.Sprintf("protowire.AppendFixed32(%s, math.Float32bits(%s))", b, v), nil
	case ir.KindFixed64:
		return fmt.Sprintf("protowire.AppendFixed64(%s, %s)", b, v), nil
	case ir.KindSfixed64:
		return fmt.Sprintf("protowire.AppendFixed64(%s, uint64(%s))", b, v), nil
	case ir.KindDouble:
		return fmt.Sprintf("protowire.AppendFixed64(%s, math.Float64bits(%s))", b, v), nil
	case ir.KindString:
		return fmt.Sprintf("protowire.AppendString(%s, %s)", b, v), nil
	case ir.KindBytes:
		return fmt.Sprintf("protowire.AppendBytes(%s, %s)", b, v), nil
	default:
		return "", &ir.SchemaError{Element: kind.String(), Reason: "no value encoding"}
	}
}

// sizeValueExpr is the untagged encoded size of v. Fixed-width kinds yield a constant.
func sizeValueExpr(kind ir.Kind, v string) (string, error) {
	if width := wire.FixedWidth(kind); width != wire.Variable {
		return strconv.Itoa(width), nil
	}
	switch kind {
	case ir.KindInt32, ir.KindInt64, ir.KindUint32, ir.KindUint64, ir.KindEnum:
		return fmt.Sprintf("protowire.SizeVarint(uint64(%s))", v), nil
	case ir.KindSint32:
		return fmt.Sprintf("protowire.SizeVarint(protowire.EncodeZigZag(int64(%s)))", v), nil
	case ir.KindSint64:
		return fmt.Sprintf("protowire.SizeVarint(protowire.EncodeZigZag(%s))", v), nil
	case ir.KindString, ir.KindBytes:
		return fmt.Sprintf("protowire.SizeBytes(len(%s))", v), nil
	default:
		return "", &ir.SchemaError{Element: kind.String(), Reason: "no value size"}
	}
}

// consumeLines reads one untagged value from buf into a new variable named raw. The
// enclosing function declares err and returns ([]byte, error).
func consumeLines(kind ir.Kind, buf, raw string) ([]string, error) {
	var rawType, consume string
	switch cat, err := wire.CategoryOf(kind); {
	case err != nil:
		return nil, err
	case kind == ir.KindString:
		rawType, consume = "string", "pcrt.ConsumeString"
	case kind == ir.KindBytes:
		rawType, consume = "[]byte", "pcrt.ConsumeBytesCopy"
	case cat == wire.Varint:
		rawType, consume = "uint64", "pcrt.ConsumeVarint"
	case cat == wire.Fixed32:
		rawType, consume = "uint32", "pcrt.ConsumeFixed32"
	case cat == wire.Fixed64:
		rawType, consume = "uint64", "pcrt.ConsumeFixed64"
	default:
		return nil, &ir.SchemaError{Element: kind.String(), Reason: "no value decoding"}
	}
	return []string{
		fmt.Sprintf("var %s %s", raw, rawType),
		fmt.Sprintf("%s, %s, err = %s(%s)", buf, raw, consume, buf),
		"if err != nil {",
		"return nil, err",
		"}",
	}, nil
}

// convertExpr turns the raw value read by consumeLines into the field's Go type.
// enumType is used for enum kinds only.
func convertExpr(kind ir.Kind, raw, enumType string) (string, error) {
	switch kind {
	case ir.KindBool:
		return fmt.Sprintf("protowire.DecodeBool(%s)", raw), nil
	case ir.KindInt32, ir.KindSfixed32:
		return fmt.Sprintf("int32(%s)", raw), nil
	case ir.KindInt64, ir.KindSfixed64:
		return fmt.Sprintf("int64(%s)", raw), nil
	case ir.KindUint32:
		return fmt.Sprintf("uint32(%s)", raw), nil
	case ir.KindUint64, ir.KindFixed32, ir.KindFixed64, ir.KindString, ir.KindBytes:
		return raw, nil
	case ir.KindSint32:
		return fmt.Sprintf("int32(protowire.DecodeZigZag(%s & math.MaxUint32))", raw), nil
	case ir.KindSint64:
		return fmt.Sprintf("protowire.DecodeZigZag(%s)", raw), nil
	case ir.KindFloat:
		return fmt.Sprintf("math.Float32frombits(%s)", raw), nil
	case ir.KindDouble:
		return fmt.Sprintf("math.Float64frombits(%s)", raw), nil
	case ir.KindEnum:
		return fmt.Sprintf("%s(int32(%s))", enumType, raw), nil
	default:
		return "", &ir.SchemaError{Element: kind.String(), Reason: "no value conversion"}
	}
}

func equalExpr(kind ir.Kind, a, b string) string {
	switch kind {
	case ir.KindBytes:
		return fmt.Sprintf("bytes.Equal(%s, %s)", a, b)
	case ir.KindMessage, ir.KindGroup:
		return fmt.Sprintf("%s.Equal(%s)", a, b)
	default:
		return a + " == " + b
	}
}

func hashExpr(kind ir.Kind, v string) string {
	switch kind {
	case ir.KindBool:
		return fmt.Sprintf("pcrt.HashBool(%s)", v)
	case ir.KindString:
		return fmt.Sprintf("pcrt.HashString(%s)", v)
	case ir.KindBytes:
		return fmt.Sprintf("pcrt.HashBytes(%s)", v)
	case ir.KindFloat:
		return fmt.Sprintf("pcrt.HashFloat32(%s)", v)
	case ir.KindDouble:
		return fmt.Sprintf("pcrt.HashFloat64(%s)", v)
	case ir.KindMessage, ir.KindGroup:
		return v + ".Hash()"
	default:
		return fmt.Sprintf("uint64(%s)", v)
	}
}

// describeVerb is the fmt verb used for a value in WriteDescription output.
func describeVerb(kind ir.Kind) string {
	switch kind {
	case ir.KindString, ir.KindBytes:
		return "%q"
	default:
		return "%v"
	}
}
