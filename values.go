package lottie

import (
	"encoding/json"
	"strconv"

	"github.com/lottiebuilder/lottie-go/structural"
)

func floatValue(v any) (float64, bool) {
	return structural.Number(v)
}

func floatOr(v any, def float64) float64 {
	if f, ok := floatValue(v); ok {
		return f
	}
	return def
}

func intValue(v any) (int, bool) {
	f, ok := floatValue(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// truthy mirrors how players read flags such as "hd" and "ddd": false, zero,
// empty strings and absent values are all off.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	default:
		if f, ok := floatValue(v); ok {
			return f != 0
		}
		return true
	}
}

func objectValue(v any) Object {
	o, _ := v.(Object)
	return o
}

func sliceValue(v any) []any {
	s, _ := v.([]any)
	return s
}

// numberSlice reads a numeric array such as a transform "k" value. A bare
// number reads as a one element slice.
func numberSlice(v any) []float64 {
	if f, ok := floatValue(v); ok {
		return []float64{f}
	}
	raw := sliceValue(v)
	out := make([]float64, 0, len(raw))
	for _, item := range raw {
		f, _ := floatValue(item)
		out = append(out, f)
	}
	return out
}

// number stores a float the way decoded documents store numbers so that
// written values compare and encode like parsed ones.
func number(f float64) json.Number {
	return json.Number(strconv.FormatFloat(f, 'f', -1, 64))
}

func numbers(fs ...float64) []any {
	out := make([]any, len(fs))
	for i, f := range fs {
		out[i] = number(f)
	}
	return out
}

func boolInt(b bool) json.Number {
	if b {
		return "1"
	}
	return "0"
}
