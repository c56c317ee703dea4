package ir

import "fmt"

type File struct {
	Path       string
	Package    string
	GoPackage  string
	Enums      []Enum
	Messages   []Message
	Extensions []Field
}

type Enum struct {
	Name     string
	FullName string
	Values   []EnumValue
}

type EnumValue struct {
	Name   string
	Number int32
}

type Message struct {
	Name            string
	FullName        string
	Fields          []Field
	Messages        []Message
	Enums           []Enum
	ExtensionRanges []ExtensionRange
	Extensions      []Field
	IsMapEntry      bool
}

// ExtensionRange is the half-open band [Start, End) of field numbers reserved for extensions.
type ExtensionRange struct {
	Start int
	End   int
}

type Field struct {
	Name            string
	Number          int
	Kind            Kind
	Label           Label
	IsPacked        bool
	HasDefault      bool
	Default         string
	MessageFullName string
	EnumFullName    string
	TrailingComment string
	Extendee        string
}

func (f Field) IsRepeated() bool {
	return f.Label == LabelRepeated
}

func (f Field) IsRequired() bool {
	return f.Label == LabelRequired
}

type Label int

const (
	LabelOptional Label = iota
	LabelRequired
	LabelRepeated
)

func (l Label) String() string {
	switch l {
	case LabelOptional:
		return "optional"
	case LabelRequired:
		return "required"
	case LabelRepeated:
		return "repeated"
	default:
		return fmt.Sprintf("Label(%d)", int(l))
	}
}

type Kind int

const (
	KindBool Kind = iota
	KindInt32
	KindInt64
	KindUint32
	KindUint64
	KindSint32
	KindSint64
	KindFixed32
	KindFixed64
	KindSfixed32
	KindSfixed64
	KindFloat
	KindDouble
	KindString
	KindBytes
	KindMessage
	KindEnum
	KindGroup
)

// Kinds lists every declared kind the generator understands.
var Kinds = []Kind{
	KindBool, KindInt32, KindInt64, KindUint32, KindUint64, KindSint32, KindSint64,
	KindFixed32, KindFixed64, KindSfixed32, KindSfixed64, KindFloat, KindDouble,
	KindString, KindBytes, KindMessage, KindEnum, KindGroup,
}

var kindNames = map[Kind]string{
	KindBool:     "bool",
	KindInt32:    "int32",
	KindInt64:    "int64",
	KindUint32:   "uint32",
	KindUint64:   "uint64",
	KindSint32:   "sint32",
	KindSint64:   "sint64",
	KindFixed32:  "fixed32",
	KindFixed64:  "fixed64",
	KindSfixed32: "sfixed32",
	KindSfixed64: "sfixed64",
	KindFloat:    "float",
	KindDouble:   "double",
	KindString:   "string",
	KindBytes:    "bytes",
	KindMessage:  "message",
	KindEnum:     "enum",
	KindGroup:    "group",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsMessage reports whether values of the kind are nested messages, groups included.
func (k Kind) IsMessage() bool {
	return k == KindMessage || k == KindGroup
}

// SchemaError reports a schema model that cannot be generated. It aborts the whole unit.
type SchemaError struct {
	Element string
	Reason  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error in %s: %s", e.Element, e.Reason)
}

// Index resolves message and enum references by full name across a set of files.
type Index struct {
	Messages map[string]*Message
	Enums    map[string]*Enum
	// Packages maps a type's full name to the proto package that declares it.
	Packages map[string]string
}

func NewIndex(files []File) *Index {
	idx := &Index{
		Messages: make(map[string]*Message),
		Enums:    make(map[string]*Enum),
		Packages: make(map[string]string),
	}
	for fi := range files {
		file := &files[fi]
		for i := range file.Enums {
			idx.addEnum(&file.Enums[i], file.Package)
		}
		for i := range file.Messages {
			idx.addMessage(&file.Messages[i], file.Package)
		}
	}
	return idx
}

func (idx *Index) addMessage(msg *Message, pkg string) {
	idx.Messages[msg.FullName] = msg
	idx.Packages[msg.FullName] = pkg
	for i := range msg.Enums {
		idx.addEnum(&msg.Enums[i], pkg)
	}
	for i := range msg.Messages {
		idx.addMessage(&msg.Messages[i], pkg)
	}
}

func (idx *Index) addEnum(enum *Enum, pkg string) {
	idx.Enums[enum.FullName] = enum
	idx.Packages[enum.FullName] = pkg
}

func (idx *Index) Message(fullName string) (*Message, error) {
	msg, ok := idx.Messages[fullName]
	if !ok {
		return nil, &SchemaError{Element: fullName, Reason: "unknown message type"}
	}
	return msg, nil
}

func (idx *Index) Enum(fullName string) (*Enum, error) {
	enum, ok := idx.Enums[fullName]
	if !ok {
		return nil, &SchemaError{Element: fullName, Reason: "unknown enum type"}
	}
	return enum, nil
}
