package pcrt

import (
	"google.golang.org/protobuf/encoding/protowire"
)

func ConsumeVarint(b []byte) ([]byte, uint64, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	return b[n:], v, nil
}

func ConsumeFixed32(b []byte) ([]byte, uint32, error) {
	v, n := protowire.ConsumeFixed32(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	return b[n:], v, nil
}

func ConsumeFixed64(b []byte) ([]byte, uint64, error) {
	v, n := protowire.ConsumeFixed64(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	return b[n:], v, nil
}

// ConsumeBytes reads a length-delimited value. The result aliases b.
func ConsumeBytes(b []byte) ([]byte, []byte, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, nil, protowire.ParseError(n)
	}
	return b[n:], v, nil
}

// ConsumeBytesCopy reads a length-delimited value into a fresh slice.
func ConsumeBytesCopy(b []byte) ([]byte, []byte, error) {
	rest, v, err := ConsumeBytes(b)
	if err != nil {
		return nil, nil, err
	}
	return rest, append([]byte{}, v...), nil
}

func ConsumeString(b []byte) ([]byte, string, error) {
	rest, v, err := ConsumeBytes(b)
	if err != nil {
		return nil, "", err
	}
	return rest, string(v), nil
}

// ConsumeUnknown consumes the value of a field the decoder has no case for. field starts at
// the field's tag and data right after it. The returned raw bytes cover tag and value and
// alias field.
func ConsumeUnknown(field, data []byte, num protowire.Number, typ protowire.Type) ([]byte, []byte, error) {
	if num < protowire.MinValidNumber {
		return nil, nil, ErrInvalidFieldNumber
	}
	n := protowire.ConsumeFieldValue(num, typ, data)
	if n < 0 {
		return nil, nil, protowire.ParseError(n)
	}
	tagLen := len(field) - len(data)
	return data[n:], field[:tagLen+n], nil
}

// EndGroup validates an end-group tag for field num against the group being decoded.
func EndGroup(data []byte, num, group protowire.Number) ([]byte, error) {
	if group == 0 || num != group {
		return nil, ErrUnexpectedEndGroup
	}
	return data, nil
}
