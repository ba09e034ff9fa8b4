package protocol

import (
	"fmt"
)

// WireType is the low three bits of a tag byte.
type WireType uint8

const (
	WireVarInt WireType = iota
	WireFixed64
	WireLen
	// Deprecated group markers end decoding of the current buffer.
	WireStartGroup
	WireEndGroup
	WireFixed32
	WireUnknown
)

var wireTypeNames = [...]string{
	WireVarInt:     "VarInt",
	WireFixed64:    "Fixed64",
	WireLen:        "Len",
	WireStartGroup: "StartGroup",
	WireEndGroup:   "EndGroup",
	WireFixed32:    "Fixed32",
	WireUnknown:    "Unknown",
}

func wireTypeOf(tagByte byte) WireType {
	if w := WireType(tagByte & 0x7); w <= WireFixed32 {
		return w
	}
	return WireUnknown
}

func (w WireType) String() string {
	if int(w) < len(wireTypeNames) {
		return wireTypeNames[w]
	}
	return fmt.Sprintf("WireType(%d)", uint8(w))
}

func (w WireType) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// Tag is one decoded field header. TagByte is the first raw byte.
type Tag struct {
	TagByte  uint8    `json:"tag_byte"`
	WireType WireType `json:"wire_type"`
	Field    uint64   `json:"field"`
}

// Field pairs the first tag seen for a field number with its value. Repeated
// occurrences are folded into a KindList value.
type Field struct {
	Tag   Tag   `json:"tag"`
	Value Value `json:"value"`
}

// Fields maps field number to decoded field.
type Fields map[uint64]*Field

// Get returns the value for field number n.
func (f Fields) Get(n uint64) (Value, bool) {
	field, ok := f[n]
	if !ok {
		return Value{}, false
	}
	return field.Value, true
}

// merge folds one more occurrence of tag.Field into the map.
func (f Fields) merge(tag Tag, v Value) {
	existing, ok := f[tag.Field]
	if !ok {
		f[tag.Field] = &Field{Tag: tag, Value: v}
		return
	}
	if existing.Value.Kind == KindList {
		existing.Value.List = append(existing.Value.List, v)
		return
	}
	existing.Value = ListValue(existing.Value, v)
}
