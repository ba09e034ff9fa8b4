package protocol

import (
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Kind tags which member of Value is set.
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindString
	// KindBytes is the raw fallback. Str holds the base64 text of Raw.
	KindBytes
	KindFixed64
	KindFixed32
	KindList
	KindMessage
)

var kindNames = [...]string{
	KindNull:    "null",
	KindInt:     "int",
	KindString:  "string",
	KindBytes:   "bytes",
	KindFixed64: "fixed64",
	KindFixed32: "fixed32",
	KindList:    "list",
	KindMessage: "message",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Fixed64 holds every reading of an 8 byte value. Double is nil when the bits
// are NaN or infinite.
type Fixed64 struct {
	Signed   int64    `json:"signed"`
	Unsigned uint64   `json:"unsigned"`
	Double   *float64 `json:"double"`
}

// Fixed32 is the 4 byte counterpart of Fixed64.
type Fixed32 struct {
	Signed   int32    `json:"signed"`
	Unsigned uint32   `json:"unsigned"`
	Float    *float32 `json:"float"`
}

// Value is one decoded field value.
type Value struct {
	Kind    Kind
	Int     int64
	Str     string
	Raw     []byte
	Fixed64 Fixed64
	Fixed32 Fixed32
	List    []Value
	Message Fields
}

func IntValue(v int64) Value { return Value{Kind: KindInt, Int: v} }

func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

func BytesValue(raw []byte) Value {
	return Value{Kind: KindBytes, Str: encodeRaw(raw), Raw: raw}
}

func MessageValue(f Fields) Value { return Value{Kind: KindMessage, Message: f} }

func ListValue(vs ...Value) Value { return Value{Kind: KindList, List: vs} }

func Fixed64Value(bits uint64) Value {
	fx := Fixed64{Signed: int64(bits), Unsigned: bits}
	if d := math.Float64frombits(bits); !math.IsNaN(d) && !math.IsInf(d, 0) {
		fx.Double = &d
	}
	return Value{Kind: KindFixed64, Fixed64: fx}
}

func Fixed32Value(bits uint32) Value {
	fx := Fixed32{Signed: int32(bits), Unsigned: bits}
	if f := math.Float32frombits(bits); !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0) {
		fx.Float = &f
	}
	return Value{Kind: KindFixed32, Fixed32: fx}
}

// Interface converts the value to plain Go values: int64, string, []any,
// map[string]any, or nil.
func (v Value) Interface() any {
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindString, KindBytes:
		return v.Str
	case KindFixed64:
		m := map[string]any{"signed": v.Fixed64.Signed, "unsigned": v.Fixed64.Unsigned, "double": nil}
		if v.Fixed64.Double != nil {
			m["double"] = *v.Fixed64.Double
		}
		return m
	case KindFixed32:
		m := map[string]any{"signed": v.Fixed32.Signed, "unsigned": v.Fixed32.Unsigned, "float": nil}
		if v.Fixed32.Float != nil {
			m["float"] = *v.Fixed32.Float
		}
		return m
	case KindList:
		out := make([]any, len(v.List))
		for i, item := range v.List {
			out[i] = item.Interface()
		}
		return out
	case KindMessage:
		return v.Message.Interface()
	default:
		return nil
	}
}

// Interface converts the map to map[string]any keyed by decimal field number,
// each entry holding "tag" and "value".
func (f Fields) Interface() map[string]any {
	out := make(map[string]any, len(f))
	for n, field := range f {
		out[strconv.FormatUint(n, 10)] = map[string]any{
			"tag": map[string]any{
				"tag_byte":  field.Tag.TagByte,
				"wire_type": field.Tag.WireType.String(),
				"field":     field.Tag.Field,
			},
			"value": field.Value.Interface(),
		}
	}
	return out
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindInt:
		return json.Marshal(v.Int)
	case KindString, KindBytes:
		return json.Marshal(v.Str)
	case KindFixed64:
		return json.Marshal(v.Fixed64)
	case KindFixed32:
		return json.Marshal(v.Fixed32)
	case KindList:
		if v.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.List)
	case KindMessage:
		if v.Message == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.Message)
	default:
		return []byte("null"), nil
	}
}

// MarshalJSON renders the map with field numbers as object keys.
func (f Fields) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[uint64]*Field(f))
}
