package lottiejson

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestMarshal_DeterministicAcrossKeyOrder(t *testing.T) {
	inA := []byte(`{"nm":"a","layers":[{"ty":4,"ind":0}],"w":512}`)
	inB := []byte(`{"w":512,"layers":[{"ind":0,"ty":4}],"nm":"a"}`)

	a, err := Decode(inA)
	if err != nil {
		t.Fatalf("decode a: %v", err)
	}
	b, err := Decode(inB)
	if err != nil {
		t.Fatalf("decode b: %v", err)
	}
	ca, err := Marshal(a)
	if err != nil {
		t.Fatalf("marshal a: %v", err)
	}
	cb, err := Marshal(b)
	if err != nil {
		t.Fatalf("marshal b: %v", err)
	}
	if !bytes.Equal(ca, cb) {
		t.Fatalf("expected identical output\nA: %s\nB: %s", ca, cb)
	}
	if string(ca) != `{"layers":[{"ind":0,"ty":4}],"nm":"a","w":512}` {
		t.Fatalf("unexpected output %s", ca)
	}
}

func TestDecode_PreservesNumberText(t *testing.T) {
	in := []byte(`{"fr":29.9700012207031,"ip":0,"op":90.0000036657751,"k":[1e-7,100]}`)
	v, err := Decode(in)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := v.(map[string]any)["fr"].(json.Number); !ok {
		t.Fatalf("expected json.Number, got %T", v.(map[string]any)["fr"])
	}
	out, err := Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"fr":29.9700012207031,"ip":0,"k":[1e-7,100],"op":90.0000036657751}`
	if string(out) != want {
		t.Fatalf("got %s want %s", out, want)
	}
}

func TestMarshal_GoNumbers(t *testing.T) {
	out, err := Marshal(map[string]any{"a": 100.0, "b": 0.5, "c": 3, "d": int64(-2), "e": 1e-9})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"a":100,"b":0.5,"c":3,"d":-2,"e":1e-9}` {
		t.Fatalf("unexpected output %s", out)
	}
}

func TestDecode_RejectsTrailingData(t *testing.T) {
	if _, err := Decode([]byte(`{"a":1} {"b":2}`)); err == nil {
		t.Fatalf("expected trailing data error")
	}
}

func TestDecodeObject_RejectsNonObjectRoot(t *testing.T) {
	if _, err := DecodeObject([]byte(`[1,2]`)); err == nil {
		t.Fatalf("expected error for array root")
	}
}

func TestMarshal_ControlCharEscapes(t *testing.T) {
	out, err := Marshal(map[string]any{"t": "a\tb\x01"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"t":"a\tb\u0001"}` {
		t.Fatalf("unexpected output %s", out)
	}
}

func TestMarshalIndent(t *testing.T) {
	out, err := MarshalIndent(map[string]any{"b": []any{}, "a": 1}, "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "{\n  \"a\": 1,\n  \"b\": []\n}"
	if string(out) != want {
		t.Fatalf("got %q want %q", out, want)
	}
}
