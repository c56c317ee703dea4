package pcrt

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"sync"

	"google.golang.org/protobuf/encoding/protowire"
)

// ExtensionDesc describes a field declared outside the message it extends.
type ExtensionDesc struct {
	// Extendee is the full name of the extended message.
	Extendee string
	Number   protowire.Number
	// Name is the full name of the extension field.
	Name     string
	Type     protowire.Type
	Repeated bool
	// Validate, when set, reports whether one encoded value (a length-delimited payload or a
	// group body) is an initialized message.
	Validate func(payload []byte) bool
}

// Extensions stores extension fields by number as raw encoded fields, tags included.
// The zero value is empty and ready to use.
type Extensions struct {
	fields map[protowire.Number][]byte
	descs  map[protowire.Number]*ExtensionDesc
}

// Add appends one raw encoded field. raw is copied.
func (x *Extensions) Add(num protowire.Number, raw []byte) {
	if x.fields == nil {
		x.fields = make(map[protowire.Number][]byte)
	}
	x.fields[num] = append(x.fields[num], raw...)
}

func (x *Extensions) Len() int {
	return len(x.fields)
}

func (x *Extensions) Has(num protowire.Number) bool {
	_, ok := x.fields[num]
	return ok
}

// Raw returns every encoded occurrence of field num, concatenated.
func (x *Extensions) Raw(num protowire.Number) []byte {
	return x.fields[num]
}

func (x *Extensions) Clear(num protowire.Number) {
	delete(x.fields, num)
	delete(x.descs, num)
}

// Merge appends the fields of other to x.
func (x *Extensions) Merge(other *Extensions) {
	if other == nil {
		return
	}
	for _, num := range other.numbers(protowire.MinValidNumber, protowire.MaxValidNumber+1) {
		x.Add(num, other.fields[num])
		if d, ok := other.descs[num]; ok {
			x.attach(d)
		}
	}
}

// Resolve attaches the descriptors registered for extendee to the stored fields.
func (x *Extensions) Resolve(reg *ExtensionRegistry, extendee string) {
	if reg == nil {
		return
	}
	for num := range x.fields {
		if d := reg.Lookup(extendee, num); d != nil {
			x.attach(d)
		}
	}
}

func (x *Extensions) attach(d *ExtensionDesc) {
	if x.descs == nil {
		x.descs = make(map[protowire.Number]*ExtensionDesc)
	}
	x.descs[d.Number] = d
}

func (x *Extensions) SetVarint(d *ExtensionDesc, v uint64) {
	x.set(d, protowire.VarintType, func(b []byte) []byte { return protowire.AppendVarint(b, v) })
}

func (x *Extensions) SetFixed32(d *ExtensionDesc, v uint32) {
	x.set(d, protowire.Fixed32Type, func(b []byte) []byte { return protowire.AppendFixed32(b, v) })
}

func (x *Extensions) SetFixed64(d *ExtensionDesc, v uint64) {
	x.set(d, protowire.Fixed64Type, func(b []byte) []byte { return protowire.AppendFixed64(b, v) })
}

// SetBytes stores a length-delimited value: a string, bytes or an encoded message.
func (x *Extensions) SetBytes(d *ExtensionDesc, v []byte) {
	x.set(d, protowire.BytesType, func(b []byte) []byte { return protowire.AppendBytes(b, v) })
}

func (x *Extensions) set(d *ExtensionDesc, typ protowire.Type, value func([]byte) []byte) {
	raw := protowire.AppendTag(nil, d.Number, typ)
	raw = value(raw)
	if !d.Repeated {
		delete(x.fields, d.Number)
	}
	x.Add(d.Number, raw)
	x.attach(d)
}

// Varint returns the last varint value stored for d.
func (x *Extensions) Varint(d *ExtensionDesc) (uint64, bool) {
	var out uint64
	found := x.each(d.Number, func(typ protowire.Type, value []byte) {
		if typ != protowire.VarintType {
			return
		}
		if v, n := protowire.ConsumeVarint(value); n > 0 {
			out = v
		}
	})
	return out, found
}

func (x *Extensions) Fixed32(d *ExtensionDesc) (uint32, bool) {
	var out uint32
	found := x.each(d.Number, func(typ protowire.Type, value []byte) {
		if typ != protowire.Fixed32Type {
			return
		}
		if v, n := protowire.ConsumeFixed32(value); n > 0 {
			out = v
		}
	})
	return out, found
}

func (x *Extensions) Fixed64(d *ExtensionDesc) (uint64, bool) {
	var out uint64
	found := x.each(d.Number, func(typ protowire.Type, value []byte) {
		if typ != protowire.Fixed64Type {
			return
		}
		if v, n := protowire.ConsumeFixed64(value); n > 0 {
			out = v
		}
	})
	return out, found
}

// Bytes returns the last length-delimited value stored for d. The result aliases the store.
func (x *Extensions) Bytes(d *ExtensionDesc) ([]byte, bool) {
	var out []byte
	found := x.each(d.Number, func(typ protowire.Type, value []byte) {
		if typ != protowire.BytesType {
			return
		}
		if v, n := protowire.ConsumeBytes(value); n >= 0 {
			out = v
		}
	})
	return out, found
}

// each calls fn for every occurrence of num with the occurrence's wire type and the bytes
// following its tag.
func (x *Extensions) each(num protowire.Number, fn func(protowire.Type, []byte)) bool {
	raw, ok := x.fields[num]
	if !ok {
		return false
	}
	for len(raw) > 0 {
		_, typ, n := protowire.ConsumeTag(raw)
		if n < 0 {
			return true
		}
		value := raw[n:]
		m := protowire.ConsumeFieldValue(num, typ, value)
		if m < 0 {
			return true
		}
		fn(typ, value[:m])
		raw = value[m:]
	}
	return true
}

// numbers returns the stored field numbers in [start, end), ascending.
func (x *Extensions) numbers(start, end protowire.Number) []protowire.Number {
	var out []protowire.Number
	for num := range x.fields {
		if num >= start && num < end {
			out = append(out, num)
		}
	}
	slices.Sort(out)
	return out
}

// AppendRange appends the fields numbered in [start, end) in ascending order.
func (x *Extensions) AppendRange(b []byte, start, end protowire.Number) []byte {
	for _, num := range x.numbers(start, end) {
		b = append(b, x.fields[num]...)
	}
	return b
}

func (x *Extensions) SizeRange(start, end protowire.Number) int {
	size := 0
	for _, num := range x.numbers(start, end) {
		size += len(x.fields[num])
	}
	return size
}

func (x *Extensions) EqualRange(other *Extensions, start, end protowire.Number) bool {
	mine := x.numbers(start, end)
	theirs := other.numbers(start, end)
	if !slices.Equal(mine, theirs) {
		return false
	}
	for _, num := range mine {
		if !bytes.Equal(x.fields[num], other.fields[num]) {
			return false
		}
	}
	return true
}

func (x *Extensions) HashRange(start, end protowire.Number) uint64 {
	h := uint64(0)
	for _, num := range x.numbers(start, end) {
		h = h*31 + uint64(num)
		h = h*31 + HashBytes(x.fields[num])
	}
	return h
}

func (x *Extensions) WriteDescriptionRange(w io.Writer, indent string, start, end protowire.Number) {
	for _, num := range x.numbers(start, end) {
		writeRawFields(w, indent, x.fields[num], func(n protowire.Number) string {
			if d, ok := x.descs[n]; ok {
				return "[" + d.Name + "]"
			}
			return fmt.Sprintf("[%d]", int32(n))
		})
	}
}

// IsInitialized reports whether every stored value with a validating descriptor passes it.
// Fields without a descriptor cannot be checked and count as initialized.
func (x *Extensions) IsInitialized() bool {
	for num, d := range x.descs {
		if d.Validate == nil {
			continue
		}
		ok := true
		x.each(num, func(typ protowire.Type, value []byte) {
			switch typ {
			case protowire.BytesType:
				payload, n := protowire.ConsumeBytes(value)
				ok = ok && n >= 0 && d.Validate(payload)
			case protowire.StartGroupType:
				body, n := protowire.ConsumeGroup(num, value)
				ok = ok && n >= 0 && d.Validate(body)
			}
		})
		if !ok {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of x.
func (x *Extensions) Clone() *Extensions {
	out := &Extensions{}
	out.Merge(x)
	return out
}

// ExtensionsEditor edits the extension store of a message under construction. Every call
// looks the store up again, so an editor kept past Build panics with ErrBuilderReused
// instead of modifying the built value.
type ExtensionsEditor struct {
	store func() *Extensions
}

// NewExtensionsEditor returns an editor over the store returned by store.
func NewExtensionsEditor(store func() *Extensions) ExtensionsEditor {
	return ExtensionsEditor{store: store}
}

func (e ExtensionsEditor) Add(num protowire.Number, raw []byte) { e.store().Add(num, raw) }

func (e ExtensionsEditor) Clear(num protowire.Number) { e.store().Clear(num) }

func (e ExtensionsEditor) Has(num protowire.Number) bool { return e.store().Has(num) }

func (e ExtensionsEditor) Len() int { return e.store().Len() }

func (e ExtensionsEditor) SetVarint(d *ExtensionDesc, v uint64) { e.store().SetVarint(d, v) }

func (e ExtensionsEditor) SetFixed32(d *ExtensionDesc, v uint32) { e.store().SetFixed32(d, v) }

func (e ExtensionsEditor) SetFixed64(d *ExtensionDesc, v uint64) { e.store().SetFixed64(d, v) }

func (e ExtensionsEditor) SetBytes(d *ExtensionDesc, v []byte) { e.store().SetBytes(d, v) }

func (e ExtensionsEditor) Varint(d *ExtensionDesc) (uint64, bool) { return e.store().Varint(d) }

func (e ExtensionsEditor) Fixed32(d *ExtensionDesc) (uint32, bool) { return e.store().Fixed32(d) }

func (e ExtensionsEditor) Fixed64(d *ExtensionDesc) (uint64, bool) { return e.store().Fixed64(d) }

// Bytes returns a copy of the last length-delimited value of d.
func (e ExtensionsEditor) Bytes(d *ExtensionDesc) ([]byte, bool) {
	v, ok := e.store().Bytes(d)
	return bytes.Clone(v), ok
}

// ExtensionRegistry indexes extension descriptors by extendee and number. It is safe for
// concurrent use.
type ExtensionRegistry struct {
	mu    sync.RWMutex
	byKey map[extensionKey]*ExtensionDesc
}

type extensionKey struct {
	extendee string
	number   protowire.Number
}

func NewExtensionRegistry() *ExtensionRegistry {
	return &ExtensionRegistry{byKey: make(map[extensionKey]*ExtensionDesc)}
}

func (r *ExtensionRegistry) Register(d *ExtensionDesc) error {
	key := extensionKey{extendee: d.Extendee, number: d.Number}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byKey[key]; ok && existing != d {
		return fmt.Errorf("%s field %d (%s): %w", d.Extendee, d.Number, existing.Name, ErrDuplicateExtension)
	}
	r.byKey[key] = d
	return nil
}

func (r *ExtensionRegistry) Lookup(extendee string, num protowire.Number) *ExtensionDesc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byKey[extensionKey{extendee: extendee, number: num}]
}

// ExtensionsOf returns the descriptors registered for extendee ordered by number.
func (r *ExtensionRegistry) ExtensionsOf(extendee string) []*ExtensionDesc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*ExtensionDesc
	for key, d := range r.byKey {
		if key.extendee == extendee {
			out = append(out, d)
		}
	}
	slices.SortFunc(out, func(a, b *ExtensionDesc) int {
		return int(a.Number) - int(b.Number)
	})
	return out
}
