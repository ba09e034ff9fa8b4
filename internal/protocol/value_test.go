package protocol

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"
)

func TestFieldsJSON(t *testing.T) {
	fields := decode(t, wideFieldNumbers)
	out, err := json.Marshal(fields)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	doc := string(out)

	if got := gjson.Get(doc, "128.value").Int(); got != 1 {
		t.Fatalf("128.value = %d in %s", got, doc)
	}
	if got := gjson.Get(doc, "1024.tag.wire_type").String(); got != "Fixed32" {
		t.Fatalf("1024.tag.wire_type = %q", got)
	}
	if got := gjson.Get(doc, "1024.value.float"); got.Type != gjson.Null {
		t.Fatalf("expected null float, got %s", got.Raw)
	}
	if got := gjson.Get(doc, "1024.value.signed").Int(); got != -20 {
		t.Fatalf("1024.value.signed = %d", got)
	}
	if got := gjson.Get(doc, "1024.value.unsigned").Uint(); got != 4294967276 {
		t.Fatalf("1024.value.unsigned = %d", got)
	}
	if got := gjson.Get(doc, "32768.value.2.value").String(); got != "Test1234" {
		t.Fatalf("32768.value.2.value = %q", got)
	}
	if got := gjson.Get(doc, "32768.value.2.tag.tag_byte").Int(); got != 18 {
		t.Fatalf("32768.value.2.tag.tag_byte = %d", got)
	}
	if got := gjson.Get(doc, "32768.value.3.value.double").Float(); got != 2.1 {
		t.Fatalf("32768.value.3.value.double = %v", got)
	}
	if got := gjson.Get(doc, "32768.value.3.value.signed").Int(); got != 4611911198408756429 {
		t.Fatalf("32768.value.3.value.signed = %d", got)
	}
}

func TestRepeatedJSONIsArray(t *testing.T) {
	out, err := json.Marshal(decode(t, appstoredTasks))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	doc := string(out)
	if got := gjson.Get(doc, "1.value.#").Int(); got != 3 {
		t.Fatalf("expected 3 values, got %d in %s", got, doc)
	}
	if got := gjson.Get(doc, "1.value.2").String(); got != "com.apple.appstored.MigratorArcadeTask" {
		t.Fatalf("unexpected third value %q", got)
	}
	if got := gjson.Get(doc, "1.tag.field").Int(); got != 1 {
		t.Fatalf("unexpected tag field %d", got)
	}
}

func TestNullAndEmptyJSON(t *testing.T) {
	cases := map[string]Value{
		"null": {},
		"[]":   {Kind: KindList},
		"{}":   {Kind: KindMessage},
		`""`:   BytesValue(nil),
	}
	for want, v := range cases {
		out, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal %s: %v", v.Kind, err)
		}
		if string(out) != want {
			t.Fatalf("%s: got %s want %s", v.Kind, out, want)
		}
	}
}

func TestValueInterface(t *testing.T) {
	fields := decode(t, []byte{8, 1, 8, 2, 18, 2, 0xFF, 0xFF})
	got := fields.Interface()
	want := map[string]any{
		"1": map[string]any{
			"tag":   map[string]any{"tag_byte": uint8(8), "wire_type": "VarInt", "field": uint64(1)},
			"value": []any{int64(1), int64(2)},
		},
		"2": map[string]any{
			"tag":   map[string]any{"tag_byte": uint8(18), "wire_type": "Len", "field": uint64(2)},
			"value": "//8=",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestKindAndWireTypeStrings(t *testing.T) {
	if KindFixed64.String() != "fixed64" || Kind(99).String() != "invalid" {
		t.Fatalf("unexpected kind names")
	}
	if WireEndGroup.String() != "EndGroup" || WireType(42).String() != "WireType(42)" {
		t.Fatalf("unexpected wire type names")
	}
}
