package pcrt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestConsumeUnknownKeepsRawField(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 7, protowire.BytesType)
	b = protowire.AppendString(b, "hello")
	b = protowire.AppendTag(b, 8, protowire.VarintType)
	b = protowire.AppendVarint(b, 1)

	tag, n := protowire.ConsumeVarint(b)
	require.Greater(t, n, 0)
	num, typ := protowire.DecodeTag(tag)
	rest, raw, err := ConsumeUnknown(b, b[n:], num, typ)
	require.NoError(t, err)
	assert.Equal(t, b[:len(b)-len(rest)], raw)
	assert.Equal(t, []byte{8 << 3, 1}, rest)
}

func TestConsumeUnknownTruncated(t *testing.T) {
	b := protowire.AppendTag(nil, 7, protowire.BytesType)
	b = protowire.AppendVarint(b, 10)
	b = append(b, 'x')
	_, _, err := ConsumeUnknown(b, b[1:], 7, protowire.BytesType)
	require.Error(t, err)

	_, _, err = ConsumeUnknown(b, b[1:], 0, protowire.BytesType)
	assert.True(t, errors.Is(err, ErrInvalidFieldNumber))
}

func TestEndGroup(t *testing.T) {
	_, err := EndGroup(nil, 3, 0)
	assert.ErrorIs(t, err, ErrUnexpectedEndGroup)
	_, err = EndGroup(nil, 3, 4)
	assert.ErrorIs(t, err, ErrUnexpectedEndGroup)
	rest, err := EndGroup([]byte{1}, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, rest)
}

func TestUnknownFieldsDescription(t *testing.T) {
	var u UnknownFields
	u = AppendVarintField(u, 3, 150)
	u = protowire.AppendTag(u, 4, protowire.BytesType)
	u = protowire.AppendString(u, "abc")
	u = protowire.AppendTag(u, 5, protowire.StartGroupType)
	u = protowire.AppendTag(u, 1, protowire.Fixed32Type)
	u = protowire.AppendFixed32(u, 1)
	u = protowire.AppendTag(u, 5, protowire.EndGroupType)

	var out strings.Builder
	u.WriteDescription(&out, "")
	assert.Equal(t, "3: 150\n4: \"abc\"\n5 {\n  1: 0x00000001\n}\n", out.String())
}

func TestExtensionsRangeOperations(t *testing.T) {
	nick := &ExtensionDesc{Extendee: "demo.Person", Number: 100, Name: "demo.nick", Type: protowire.BytesType}
	level := &ExtensionDesc{Extendee: "demo.Person", Number: 3, Name: "demo.level", Type: protowire.VarintType}

	var x Extensions
	x.SetBytes(nick, []byte("bob"))
	x.SetVarint(level, 9)
	x.SetVarint(level, 10)

	v, ok := x.Varint(level)
	require.True(t, ok)
	assert.Equal(t, uint64(10), v)
	s, ok := x.Bytes(nick)
	require.True(t, ok)
	assert.Equal(t, "bob", string(s))

	all := x.AppendRange(nil, 1, 1000)
	assert.Equal(t, len(all), x.SizeRange(1, 1000))
	// ascending by number: level (3) before nick (100)
	assert.Equal(t, byte(3<<3), all[0])
	assert.Equal(t, 0, x.SizeRange(4, 100))

	y := x.Clone()
	assert.True(t, x.EqualRange(y, 1, 1000))
	assert.Equal(t, x.HashRange(1, 1000), y.HashRange(1, 1000))

	y.SetVarint(level, 11)
	assert.False(t, x.EqualRange(y, 1, 1000))
	assert.True(t, x.EqualRange(y, 50, 1000))

	var out bytes.Buffer
	x.WriteDescriptionRange(&out, "  ", 1, 1000)
	assert.Equal(t, "  [demo.level]: 10\n  [demo.nick]: \"bob\"\n", out.String())
}

func TestExtensionsIsInitialized(t *testing.T) {
	d := &ExtensionDesc{
		Extendee: "demo.Person",
		Number:   200,
		Name:     "demo.payload",
		Type:     protowire.BytesType,
		Validate: func(payload []byte) bool { return len(payload) > 0 },
	}
	var x Extensions
	assert.True(t, x.IsInitialized())
	x.SetBytes(d, nil)
	assert.False(t, x.IsInitialized())
	x.SetBytes(d, []byte{1})
	assert.True(t, x.IsInitialized())
}

func TestExtensionsResolve(t *testing.T) {
	reg := NewExtensionRegistry()
	d := &ExtensionDesc{Extendee: "demo.Person", Number: 100, Name: "demo.nick", Type: protowire.VarintType}
	require.NoError(t, reg.Register(d))
	require.NoError(t, reg.Register(d))

	dup := &ExtensionDesc{Extendee: "demo.Person", Number: 100, Name: "demo.other"}
	assert.ErrorIs(t, reg.Register(dup), ErrDuplicateExtension)

	var x Extensions
	x.Add(100, AppendVarintField(nil, 100, 5))
	x.Resolve(reg, "demo.Person")
	v, ok := x.Varint(d)
	require.True(t, ok)
	assert.Equal(t, uint64(5), v)

	var out strings.Builder
	x.WriteDescriptionRange(&out, "", 100, 101)
	assert.Equal(t, "[demo.nick]: 5\n", out.String())
	assert.Equal(t, []*ExtensionDesc{d}, reg.ExtensionsOf("demo.Person"))
}

func TestHashHelpersStable(t *testing.T) {
	assert.Equal(t, HashString("abc"), HashBytes([]byte("abc")))
	assert.NotEqual(t, HashBool(true), HashBool(false))
	assert.Equal(t, HashFloat64(1.5), HashFloat64(1.5))
}

func TestExtensionsEditor(t *testing.T) {
	level := &ExtensionDesc{Extendee: "demo.Person", Number: 3, Name: "demo.level", Type: protowire.VarintType}
	nick := &ExtensionDesc{Extendee: "demo.Person", Number: 100, Name: "demo.nick", Type: protowire.BytesType}

	store := &Extensions{}
	live := true
	e := NewExtensionsEditor(func() *Extensions {
		if !live {
			panic(ErrBuilderReused)
		}
		return store
	})
	e.SetVarint(level, 4)
	e.SetBytes(nick, []byte("bob"))
	assert.Equal(t, 2, e.Len())
	assert.True(t, e.Has(3))
	v, ok := e.Varint(level)
	require.True(t, ok)
	assert.Equal(t, uint64(4), v)

	b, ok := e.Bytes(nick)
	require.True(t, ok)
	b[0] = 'X'
	got, _ := store.Bytes(nick)
	assert.Equal(t, "bob", string(got))

	e.Clear(3)
	assert.False(t, store.Has(3))

	live = false
	assert.PanicsWithValue(t, ErrBuilderReused, func() { e.SetVarint(level, 5) })
}
