package domain

import (
	"errors"
	"testing"
)

func TestDecodeObject_Object(t *testing.T) {
	m, err := DecodeObject([]byte(`{"name":"Jane","age":41,"tags":["a","b"]}`))
	if err != nil {
		t.Fatalf("DecodeObject: %v", err)
	}
	if m.String("name") != "Jane" {
		t.Fatalf("unexpected name: %q", m.String("name"))
	}
	if _, ok := m["age"]; !ok {
		t.Fatalf("age missing: %#v", m)
	}
}

func TestDecodeObject_RejectsNonObjects(t *testing.T) {
	for _, raw := range []string{`[1,2,3]`, `"hello"`, `42`, `null`, `true`} {
		if _, err := DecodeObject([]byte(raw)); !errors.Is(err, ErrNotObject) {
			t.Fatalf("%s: expected ErrNotObject, got %v", raw, err)
		}
	}
}

func TestDecodeObject_InvalidJSON(t *testing.T) {
	if _, err := DecodeObject([]byte(`{"name":`)); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestJSONMap_ValueScanRoundTrip(t *testing.T) {
	in := JSONMap{"name": "Jane", "nested": map[string]any{"k": "v"}}
	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	var out JSONMap
	if err := out.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if out.String("name") != "Jane" {
		t.Fatalf("round-trip lost name: %#v", out)
	}
}

func TestJSONMap_NilValueIsEmptyObject(t *testing.T) {
	var m JSONMap
	v, err := m.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "{}" {
		t.Fatalf("nil map should store as empty object, got %v", v)
	}
}

func TestJSONMap_ScanNilAndEmpty(t *testing.T) {
	var m JSONMap
	if err := m.Scan(nil); err != nil || m == nil {
		t.Fatalf("Scan(nil): err=%v m=%v", err, m)
	}
	if err := m.Scan(""); err != nil {
		t.Fatalf("Scan(\"\"): %v", err)
	}
	if err := m.Scan(12345); err == nil {
		t.Fatalf("expected error for unsupported column type")
	}
}

func TestJSONMap_CloneIsIndependent(t *testing.T) {
	orig := JSONMap{"a": "1"}
	cp := orig.Clone()
	cp["a"] = "2"
	cp["b"] = "3"
	if orig.String("a") != "1" {
		t.Fatalf("clone mutated original: %#v", orig)
	}
	if _, ok := orig["b"]; ok {
		t.Fatalf("clone added key to original: %#v", orig)
	}
}

func TestJSONMap_String_NonString(t *testing.T) {
	m := JSONMap{"n": 7.0}
	if got := m.String("n"); got != "" {
		t.Fatalf("expected empty for non-string, got %q", got)
	}
	if got := m.String("missing"); got != "" {
		t.Fatalf("expected empty for missing key, got %q", got)
	}
}
