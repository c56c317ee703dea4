package pcrt

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

// UnknownFields holds the raw encoding (tags included) of fields a decoder did not
// recognize, in the order they were read. Re-encoding appends it verbatim.
type UnknownFields []byte

// AppendVarintField records a varint field, as decoders do for enum values outside the
// declared set.
func AppendVarintField(u UnknownFields, num protowire.Number, v uint64) UnknownFields {
	u = protowire.AppendTag(u, num, protowire.VarintType)
	return protowire.AppendVarint(u, v)
}

func (u UnknownFields) WriteDescription(w io.Writer, indent string) {
	writeRawFields(w, indent, []byte(u), func(num protowire.Number) string {
		return fmt.Sprint(int32(num))
	})
}

// writeRawFields prints each encoded field in b on its own line. Output stops at the first
// malformed field, which is printed as hex.
func writeRawFields(w io.Writer, indent string, b []byte, label func(protowire.Number) string) {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			fmt.Fprintf(w, "%s<malformed %x>\n", indent, b)
			return
		}
		b = b[n:]
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				fmt.Fprintf(w, "%s<malformed %x>\n", indent, b)
				return
			}
			fmt.Fprintf(w, "%s%s: %d\n", indent, label(num), v)
			b = b[n:]
		case protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(b)
			if n < 0 {
				fmt.Fprintf(w, "%s<malformed %x>\n", indent, b)
				return
			}
			fmt.Fprintf(w, "%s%s: 0x%08x\n", indent, label(num), v)
			b = b[n:]
		case protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				fmt.Fprintf(w, "%s<malformed %x>\n", indent, b)
				return
			}
			fmt.Fprintf(w, "%s%s: 0x%016x\n", indent, label(num), v)
			b = b[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				fmt.Fprintf(w, "%s<malformed %x>\n", indent, b)
				return
			}
			fmt.Fprintf(w, "%s%s: %q\n", indent, label(num), v)
			b = b[n:]
		case protowire.StartGroupType:
			v, n := protowire.ConsumeGroup(num, b)
			if n < 0 {
				fmt.Fprintf(w, "%s<malformed %x>\n", indent, b)
				return
			}
			fmt.Fprintf(w, "%s%s {\n", indent, label(num))
			writeRawFields(w, indent+"  ", v, func(num protowire.Number) string {
				return fmt.Sprint(int32(num))
			})
			fmt.Fprintf(w, "%s}\n", indent)
			b = b[n:]
		default:
			fmt.Fprintf(w, "%s<malformed %x>\n", indent, b)
			return
		}
	}
}
