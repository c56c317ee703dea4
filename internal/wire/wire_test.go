package wire

import (
	"errors"
	"testing"

	"github.com/jptrs93/protoclass/internal/ir"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestTagRoundTripEveryKind(t *testing.T) {
	numbers := []int{1, 15, 16, 2047, 2048, 262143, 262144, 1<<29 - 1}
	for _, kind := range ir.Kinds {
		category, err := CategoryOf(kind)
		require.NoError(t, err, kind.String())
		for _, number := range numbers {
			tag, err := Tag(number, category)
			require.NoError(t, err)

			encoded := protowire.AppendVarint(nil, uint64(tag))
			assert.Equal(t, len(encoded), TagSize(tag), "kind %s number %d", kind, number)

			gotNum, gotType, n := protowire.ConsumeTag(encoded)
			require.Equal(t, len(encoded), n)
			assert.Equal(t, protowire.Number(number), gotNum)
			assert.Equal(t, category.Type(), gotType, "kind %s", kind)
		}
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		kind ir.Kind
		want Category
	}{
		{ir.KindBool, Varint},
		{ir.KindInt32, Varint},
		{ir.KindInt64, Varint},
		{ir.KindUint32, Varint},
		{ir.KindUint64, Varint},
		{ir.KindSint32, Varint},
		{ir.KindSint64, Varint},
		{ir.KindEnum, Varint},
		{ir.KindFixed32, Fixed32},
		{ir.KindSfixed32, Fixed32},
		{ir.KindFloat, Fixed32},
		{ir.KindFixed64, Fixed64},
		{ir.KindSfixed64, Fixed64},
		{ir.KindDouble, Fixed64},
		{ir.KindString, LengthDelimited},
		{ir.KindBytes, LengthDelimited},
		{ir.KindMessage, LengthDelimited},
		{ir.KindGroup, StartGroup},
	}
	require.Len(t, tests, len(ir.Kinds))
	for _, tc := range tests {
		got, err := CategoryOf(tc.kind)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.kind.String())
	}
}

func TestCategoryOfUnknownKind(t *testing.T) {
	_, err := CategoryOf(ir.Kind(99))
	var schemaErr *ir.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "Kind(99)", schemaErr.Element)
}

func TestTagRejectsOutOfRangeNumbers(t *testing.T) {
	for _, number := range []int{0, -1, 1 << 29} {
		_, err := Tag(number, Varint)
		var schemaErr *ir.SchemaError
		assert.True(t, errors.As(err, &schemaErr), "number %d", number)
	}
	_, err := Tag(1, Category(6))
	assert.Error(t, err)
}

func TestTagValues(t *testing.T) {
	tag, err := Tag(1, Varint)
	require.NoError(t, err)
	assert.Equal(t, uint32(8), tag)

	tag, err = Tag(4, LengthDelimited)
	require.NoError(t, err)
	assert.Equal(t, uint32(34), tag)

	tag, err = Tag(16, StartGroup)
	require.NoError(t, err)
	assert.Equal(t, uint32(131), tag)
	assert.Equal(t, 2, TagSize(tag))

	tag, err = Tag(1<<29-1, Fixed32)
	require.NoError(t, err)
	assert.Equal(t, 5, TagSize(tag))
}

func TestFixedWidth(t *testing.T) {
	want := map[ir.Kind]int{
		ir.KindFixed32:  4,
		ir.KindSfixed32: 4,
		ir.KindFloat:    4,
		ir.KindFixed64:  8,
		ir.KindSfixed64: 8,
		ir.KindDouble:   8,
		ir.KindBool:     1,
	}
	for _, kind := range ir.Kinds {
		width, ok := want[kind]
		if !ok {
			width = Variable
		}
		assert.Equal(t, width, FixedWidth(kind), kind.String())
	}
}

func TestFixedWidthMatchesEncoding(t *testing.T) {
	assert.Equal(t, FixedWidth(ir.KindFixed32), protowire.SizeFixed32())
	assert.Equal(t, FixedWidth(ir.KindDouble), protowire.SizeFixed64())
	assert.Equal(t, FixedWidth(ir.KindBool), protowire.SizeVarint(protowire.EncodeBool(true)))
}
