package sample

import (
	"io"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/jptrs93/protoclass/pcrt"
)

func TestDefaults(t *testing.T) {
	s := DefaultShape()
	assert.False(t, s.HasName())
	assert.Equal(t, "shape", s.Name())
	assert.Equal(t, Color_RED, s.Color())
	assert.Same(t, DefaultPoint(), s.Origin())
	assert.Same(t, DefaultShape_Meta(), s.Meta())
	assert.Empty(t, s.Marshal())
	assert.True(t, s.IsInitialized())

	b := NewShapeBuilder().SetName("x")
	b.ClearName()
	assert.Equal(t, "shape", b.Name())
	assert.False(t, b.HasName())
}

func TestEnumString(t *testing.T) {
	assert.Equal(t, "BLUE", Color_BLUE.String())
	assert.Equal(t, "Color(7)", Color(7).String())
	assert.True(t, IsValidColor(Color_GREEN))
	assert.False(t, IsValidColor(Color(-1)))
}

func TestPackedEncoding(t *testing.T) {
	s := NewShapeBuilder().
		AddSamples(1, 150, 3).
		AddPalette(Color_GREEN, Color_BLUE).
		BuildPartial()

	var want []byte
	want = protowire.AppendTag(want, 3, protowire.BytesType)
	want = protowire.AppendVarint(want, 4)
	want = protowire.AppendVarint(want, 1)
	want = protowire.AppendVarint(want, 150)
	want = protowire.AppendVarint(want, 3)
	want = protowire.AppendTag(want, 4, protowire.BytesType)
	want = protowire.AppendVarint(want, 2)
	want = protowire.AppendVarint(want, 1)
	want = protowire.AppendVarint(want, 2)

	assert.Equal(t, len(want), s.SerializedSize())
	assert.Equal(t, want, s.Marshal())
	// memoized: a second encoding reuses the stored payload sizes
	assert.Equal(t, want, s.Marshal())

	parsed, err := ParseShape(want)
	require.NoError(t, err)
	assert.True(t, s.Equal(parsed))
	assert.Equal(t, s.Hash(), parsed.Hash())
}

func TestPackedOmittedWhenEmpty(t *testing.T) {
	s := NewShapeBuilder().SetName("n").BuildPartial()
	want := protowire.AppendTag(nil, 1, protowire.BytesType)
	want = protowire.AppendString(want, "n")
	assert.Equal(t, want, s.Marshal())
}

func TestUnpackedInputAccepted(t *testing.T) {
	var data []byte
	for _, v := range []uint64{5, 6} {
		data = protowire.AppendTag(data, 3, protowire.VarintType)
		data = protowire.AppendVarint(data, v)
	}
	s, err := ParseShape(data)
	require.NoError(t, err)
	assert.Equal(t, []int32{5, 6}, s.Samples())
}

func TestRequiredFields(t *testing.T) {
	b := NewPointBuilder().SetX(1)
	_, err := b.Build()
	var notInit *pcrt.NotInitializedError
	require.ErrorAs(t, err, &notInit)
	assert.Equal(t, "sample.Point", notInit.Message)

	// the builder keeps its value after a failed Build
	p, err := b.SetY(2).Build()
	require.NoError(t, err)
	assert.Equal(t, int32(1), p.X())
	assert.Equal(t, int32(2), p.Y())

	partial := NewPointBuilder().SetX(1).BuildPartial()
	s := NewShapeBuilder().SetOrigin(partial).BuildPartial()
	assert.False(t, s.IsInitialized())
	_, err = ParseShape(s.Marshal())
	require.ErrorAs(t, err, &notInit)
	assert.Equal(t, "sample.Shape", notInit.Message)

	s = NewShapeBuilder().AddCorners(p, partial).BuildPartial()
	assert.False(t, s.IsInitialized())
}

func TestUnknownEnumValuesPreserved(t *testing.T) {
	var data []byte
	data = protowire.AppendTag(data, 2, protowire.VarintType)
	data = protowire.AppendVarint(data, 7)
	data = protowire.AppendTag(data, 4, protowire.BytesType)
	data = protowire.AppendVarint(data, 3)
	data = protowire.AppendVarint(data, 1)
	data = protowire.AppendVarint(data, 9)
	data = protowire.AppendVarint(data, 2)

	s, err := ParseShape(data)
	require.NoError(t, err)
	assert.False(t, s.HasColor())
	assert.Equal(t, []Color{Color_GREEN, Color_BLUE}, s.Palette())

	unknown := pcrt.AppendVarintField(nil, 2, 7)
	unknown = pcrt.AppendVarintField(unknown, 4, 9)
	assert.Equal(t, unknown, s.UnknownFields())

	var want []byte
	want = protowire.AppendTag(want, 4, protowire.BytesType)
	want = protowire.AppendVarint(want, 2)
	want = protowire.AppendVarint(want, 1)
	want = protowire.AppendVarint(want, 2)
	want = append(want, unknown...)
	assert.Equal(t, want, s.Marshal())
}

func TestUnknownFieldsRoundTrip(t *testing.T) {
	var data []byte
	data = protowire.AppendTag(data, 50, protowire.BytesType)
	data = protowire.AppendString(data, "x")
	data = protowire.AppendTag(data, 51, protowire.Fixed64Type)
	data = protowire.AppendFixed64(data, 1)

	s, err := ParseShape(data)
	require.NoError(t, err)
	assert.Equal(t, data, s.Marshal())
	assert.Equal(t, "50: \"x\"\n51: 0x0000000000000001\n", s.String())
}

func TestGroupAndZigZag(t *testing.T) {
	s := NewShapeBuilder().
		SetMeta(NewShape_MetaBuilder().SetStamp(42).BuildPartial()).
		SetDelta(-3).
		BuildPartial()

	var want []byte
	want = protowire.AppendTag(want, 8, protowire.VarintType)
	want = protowire.AppendVarint(want, protowire.EncodeZigZag(-3))
	want = protowire.AppendTag(want, 9, protowire.StartGroupType)
	want = protowire.AppendTag(want, 1, protowire.VarintType)
	want = protowire.AppendVarint(want, 42)
	want = protowire.AppendTag(want, 9, protowire.EndGroupType)
	assert.Equal(t, want, s.Marshal())

	parsed, err := ParseShape(want)
	require.NoError(t, err)
	assert.Equal(t, int32(-3), parsed.Delta())
	assert.Equal(t, int64(42), parsed.Meta().Stamp())
	assert.True(t, s.Equal(parsed))
}

func TestMalformedGroups(t *testing.T) {
	var data []byte
	data = protowire.AppendTag(data, 9, protowire.StartGroupType)
	data = protowire.AppendTag(data, 1, protowire.VarintType)
	data = protowire.AppendVarint(data, 1)
	_, err := ParseShape(data)
	assert.ErrorIs(t, err, pcrt.ErrTruncatedGroup)

	_, err = ParseShape(protowire.AppendTag(nil, 9, protowire.EndGroupType))
	assert.ErrorIs(t, err, pcrt.ErrUnexpectedEndGroup)
}

func TestExtensions(t *testing.T) {
	b := NewShapeBuilder().SetName("n")
	b.Extensions().SetBytes(E_Note, []byte("hi"))
	s := b.BuildPartial()

	var want []byte
	want = protowire.AppendTag(want, 1, protowire.BytesType)
	want = protowire.AppendString(want, "n")
	want = protowire.AppendTag(want, 100, protowire.BytesType)
	want = protowire.AppendString(want, "hi")
	assert.Equal(t, want, s.Marshal())

	plain, err := ParseShape(want)
	require.NoError(t, err)
	assert.Empty(t, plain.UnknownFields())
	assert.Equal(t, "name: \"n\"\n[100]: \"hi\"\n", plain.String())

	reg := pcrt.NewExtensionRegistry()
	require.NoError(t, RegisterSampleExtensions(reg))
	rb := NewShapeBuilder()
	require.NoError(t, rb.MergeFromBytesWithRegistry(want, reg))
	resolved := rb.BuildPartial()
	note, ok := resolved.Extensions().Bytes(E_Note)
	require.True(t, ok)
	assert.Equal(t, "hi", string(note))
	assert.Equal(t, "name: \"n\"\n[sample.note]: \"hi\"\n", resolved.String())

	assert.True(t, s.Equal(resolved))
	assert.Equal(t, s.Hash(), resolved.Hash())
}

func TestMergeFrom(t *testing.T) {
	a := NewShapeBuilder().
		SetName("a").
		AddSamples(1).
		SetOrigin(NewPointBuilder().SetX(1).BuildPartial()).
		BuildPartial()
	other := NewShapeBuilder().
		SetColor(Color_BLUE).
		AddSamples(2, 3).
		SetOrigin(NewPointBuilder().SetY(2).BuildPartial()).
		BuildPartial()

	merged := a.ToBuilder().MergeFrom(other).BuildPartial()
	assert.Equal(t, "a", merged.Name())
	assert.Equal(t, Color_BLUE, merged.Color())
	assert.Equal(t, []int32{2, 3}, merged.Samples())
	assert.Equal(t, int32(1), merged.Origin().X())
	assert.Equal(t, int32(2), merged.Origin().Y())
	assert.True(t, merged.IsInitialized())

	// the source values are untouched
	assert.False(t, a.Origin().HasY())
	assert.Equal(t, []int32{1}, a.Samples())
}

func TestMergeFieldsFrom(t *testing.T) {
	target := NewShapeBuilder().SetName("t").SetColor(Color_GREEN).AddLabels("x")
	source := NewShapeBuilder().SetName("s").BuildPartial()

	got := target.MergeFieldsFrom(source, 1, 2).BuildPartial()
	assert.Equal(t, "s", got.Name())
	assert.False(t, got.HasColor())
	assert.Equal(t, Color_RED, got.Color())
	assert.Equal(t, []string{"x"}, got.Labels())
}

func TestBuilderReuse(t *testing.T) {
	b := NewShapeBuilder()
	b.BuildPartial()
	assert.PanicsWithValue(t, pcrt.ErrBuilderReused, func() { b.SetName("x") })
}

func TestDescription(t *testing.T) {
	s := NewShapeBuilder().
		SetName("n").
		SetOrigin(NewPointBuilder().SetX(1).SetY(2).BuildPartial()).
		AddLabels("a").
		SetColor(Color_GREEN).
		BuildPartial()
	want := "name: \"n\"\n" +
		"color: GREEN\n" +
		"origin {\n" +
		"  x: 1\n" +
		"  y: 2\n" +
		"}\n" +
		"labels: \"a\"\n"
	assert.Equal(t, want, s.String())
}

func TestEqualAndHash(t *testing.T) {
	build := func(name string) *Shape {
		return NewShapeBuilder().SetName(name).AddLabels("l").BuildPartial()
	}
	assert.True(t, build("a").Equal(build("a")))
	assert.Equal(t, build("a").Hash(), build("a").Hash())
	assert.False(t, build("a").Equal(build("b")))
	assert.NotEqual(t, build("a").Hash(), build("b").Hash())

	// presence counts even when the value equals the default
	assert.False(t, build("shape").Equal(NewShapeBuilder().AddLabels("l").BuildPartial()))
}

func TestUnknownEnumLastFieldExact(t *testing.T) {
	var data []byte
	data = protowire.AppendTag(data, 1, protowire.BytesType)
	data = protowire.AppendString(data, "n")
	data = protowire.AppendTag(data, 2, protowire.VarintType)
	data = protowire.AppendVarint(data, 7)

	s, err := ParseShape(data)
	require.NoError(t, err)
	assert.False(t, s.HasColor())
	assert.Equal(t, data, s.Marshal())
}

func TestConcurrentMarshal(t *testing.T) {
	s := NewShapeBuilder().
		SetName("n").
		AddSamples(1, 300, 70000).
		AddPalette(Color_BLUE).
		BuildPartial()
	want := s.ToBuilder().BuildPartial().Marshal()

	results := make([][]byte, 8)
	var wg sync.WaitGroup
	for i := range results {
		wg.Go(func() {
			results[i] = s.Marshal()
			assert.Empty(t, DefaultShape().Marshal())
		})
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestReadAccessorsReturnCopies(t *testing.T) {
	s := NewShapeBuilder().AddSamples(1, 2).BuildPartial()
	s.Samples()[0] = 9
	assert.Equal(t, []int32{1, 2}, s.Samples())

	b := NewShapeBuilder().AddLabels("a")
	b.Labels()[0] = "z"
	assert.Equal(t, []string{"a"}, b.Labels())
}

func TestExtensionsEditorAfterBuild(t *testing.T) {
	b := NewShapeBuilder()
	ext := b.Extensions()
	ext.SetBytes(E_Note, []byte("a"))
	s := b.BuildPartial()

	assert.PanicsWithValue(t, pcrt.ErrBuilderReused, func() { ext.SetBytes(E_Note, []byte("b")) })
	note, ok := s.Extensions().Bytes(E_Note)
	require.True(t, ok)
	assert.Equal(t, "a", string(note))
}

func TestScalarsAtLimits(t *testing.T) {
	var (
		i32 = int32(-1)
		i64 = int64(math.MinInt64)
		s32 = int32(math.MinInt32)
		s64 = int64(math.MinInt64)
		neg = int64(-2)
	)
	s := NewScalarsBuilder().
		SetI32(i32).
		SetI64(i64).
		SetU32(math.MaxUint32).
		SetU64(math.MaxUint64).
		SetS32(s32).
		SetS64(s64).
		SetFx32(math.MaxUint32).
		SetFx64(math.MaxUint64).
		SetSfx32(s32).
		SetSfx64(s64).
		SetFlt(-1.5).
		SetDbl(math.MaxFloat64).
		SetFlag(true).
		SetBlob([]byte{0, 0xff}).
		AddPackedFx32(0, math.MaxUint32).
		AddPackedSfx64(s64, -1).
		AddPackedDbl(math.Inf(-1), 0.25).
		AddPackedFlag(true, false).
		AddPackedU64(math.MaxUint64, 1).
		AddPackedS64(s64, math.MaxInt64).
		AddFlts(2.5).
		AddBlobs([]byte("a"), nil).
		AddI64s(neg).
		BuildPartial()

	var want []byte
	varint := func(num protowire.Number, v uint64) {
		want = protowire.AppendTag(want, num, protowire.VarintType)
		want = protowire.AppendVarint(want, v)
	}
	fixed32 := func(num protowire.Number, v uint32) {
		want = protowire.AppendTag(want, num, protowire.Fixed32Type)
		want = protowire.AppendFixed32(want, v)
	}
	fixed64 := func(num protowire.Number, v uint64) {
		want = protowire.AppendTag(want, num, protowire.Fixed64Type)
		want = protowire.AppendFixed64(want, v)
	}
	bytesField := func(num protowire.Number, v []byte) {
		want = protowire.AppendTag(want, num, protowire.BytesType)
		want = protowire.AppendBytes(want, v)
	}
	varint(1, uint64(i32))
	varint(2, uint64(i64))
	varint(3, math.MaxUint32)
	varint(4, math.MaxUint64)
	varint(5, protowire.EncodeZigZag(int64(s32)))
	varint(6, protowire.EncodeZigZag(s64))
	fixed32(7, math.MaxUint32)
	fixed64(8, math.MaxUint64)
	fixed32(9, uint32(s32))
	fixed64(10, uint64(s64))
	fixed32(11, math.Float32bits(-1.5))
	fixed64(12, math.Float64bits(math.MaxFloat64))
	varint(13, 1)
	bytesField(14, []byte{0, 0xff})
	bytesField(15, protowire.AppendFixed32(protowire.AppendFixed32(nil, 0), math.MaxUint32))
	bytesField(16, protowire.AppendFixed64(protowire.AppendFixed64(nil, uint64(s64)), math.MaxUint64))
	bytesField(17, protowire.AppendFixed64(protowire.AppendFixed64(nil, math.Float64bits(math.Inf(-1))), math.Float64bits(0.25)))
	bytesField(18, []byte{1, 0})
	bytesField(19, protowire.AppendVarint(protowire.AppendVarint(nil, math.MaxUint64), 1))
	bytesField(20, protowire.AppendVarint(protowire.AppendVarint(nil, protowire.EncodeZigZag(s64)), protowire.EncodeZigZag(math.MaxInt64)))
	fixed32(21, math.Float32bits(2.5))
	bytesField(22, []byte("a"))
	bytesField(22, nil)
	varint(23, uint64(neg))

	assert.Equal(t, len(want), s.SerializedSize())
	assert.Equal(t, want, s.Marshal())

	parsed, err := ParseScalars(want)
	require.NoError(t, err)
	assert.True(t, s.Equal(parsed))
	assert.Equal(t, s.Hash(), parsed.Hash())
	assert.Equal(t, want, parsed.Marshal())

	assert.Equal(t, i32, parsed.I32())
	assert.Equal(t, i64, parsed.I64())
	assert.Equal(t, uint32(math.MaxUint32), parsed.U32())
	assert.Equal(t, uint64(math.MaxUint64), parsed.U64())
	assert.Equal(t, s32, parsed.S32())
	assert.Equal(t, s64, parsed.S64())
	assert.Equal(t, uint32(math.MaxUint32), parsed.Fx32())
	assert.Equal(t, uint64(math.MaxUint64), parsed.Fx64())
	assert.Equal(t, s32, parsed.Sfx32())
	assert.Equal(t, s64, parsed.Sfx64())
	assert.Equal(t, float32(-1.5), parsed.Flt())
	assert.Equal(t, math.MaxFloat64, parsed.Dbl())
	assert.True(t, parsed.Flag())
	assert.Equal(t, []byte{0, 0xff}, parsed.Blob())
	assert.Equal(t, []uint32{0, math.MaxUint32}, parsed.PackedFx32())
	assert.Equal(t, []int64{s64, -1}, parsed.PackedSfx64())
	assert.Equal(t, []float64{math.Inf(-1), 0.25}, parsed.PackedDbl())
	assert.Equal(t, []bool{true, false}, parsed.PackedFlag())
	assert.Equal(t, []uint64{math.MaxUint64, 1}, parsed.PackedU64())
	assert.Equal(t, []int64{s64, math.MaxInt64}, parsed.PackedS64())
	assert.Equal(t, []float32{2.5}, parsed.Flts())
	require.Equal(t, 2, parsed.BlobsCount())
	assert.Equal(t, "a", string(parsed.BlobsAt(0)))
	assert.Empty(t, parsed.BlobsAt(1))
	assert.Equal(t, []int64{neg}, parsed.I64s())
}

func TestScalarsEitherRepeatedEncoding(t *testing.T) {
	var data []byte
	// a packed run for a field declared unpacked
	data = protowire.AppendTag(data, 21, protowire.BytesType)
	data = protowire.AppendBytes(data, protowire.AppendFixed32(protowire.AppendFixed32(nil, math.Float32bits(1)), math.Float32bits(2)))
	// single elements for a field declared packed
	data = protowire.AppendTag(data, 15, protowire.Fixed32Type)
	data = protowire.AppendFixed32(data, 7)
	data = protowire.AppendTag(data, 18, protowire.VarintType)
	data = protowire.AppendVarint(data, 1)

	s, err := ParseScalars(data)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, s.Flts())
	assert.Equal(t, []uint32{7}, s.PackedFx32())
	assert.Equal(t, []bool{true}, s.PackedFlag())
}

func TestScalarsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "ragged fixed32 run",
			data: protowire.AppendBytes(protowire.AppendTag(nil, 15, protowire.BytesType), []byte{1, 2, 3, 4, 5}),
		},
		{
			name: "truncated varint in packed run",
			data: protowire.AppendBytes(protowire.AppendTag(nil, 19, protowire.BytesType), []byte{0x80}),
		},
		{
			name: "packed run longer than input",
			data: append(protowire.AppendVarint(protowire.AppendTag(nil, 16, protowire.BytesType), 16), 1, 2, 3),
		},
		{
			name: "length prefix longer than input",
			data: append(protowire.AppendVarint(protowire.AppendTag(nil, 14, protowire.BytesType), 10), 'a', 'b'),
		},
		{
			name: "truncated fixed64",
			data: append(protowire.AppendTag(nil, 8, protowire.Fixed64Type), 1, 2, 3),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseScalars(tc.data)
			assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		})
	}
}
