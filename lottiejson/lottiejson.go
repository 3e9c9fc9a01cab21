package lottiejson

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrTrailingData is returned by Decode when the input holds more than one JSON value.
	ErrTrailingData = errors.New("invalid JSON: trailing data")
	// ErrNotObject is returned by DecodeObject when the root value is not a JSON object.
	ErrNotObject = errors.New("invalid document: root is not an object")
)

// Decode parses a single JSON value into the generic tree used by the Lottie
// object model: map[string]any, []any, string, bool, nil and json.Number.
//
// Numbers are kept as json.Number so that values the model never touches are
// written back with their exact source text.
func Decode(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.WithStack(err)
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		if err == nil {
			return nil, errors.WithStack(ErrTrailingData)
		}
		return nil, errors.WithStack(err)
	}
	return v, nil
}

// DecodeObject is Decode for documents whose root must be an object.
func DecodeObject(b []byte) (map[string]any, error) {
	v, err := Decode(b)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errors.WithStack(ErrNotObject)
	}
	return obj, nil
}

// Marshal returns a compact, deterministic encoding of v: object members are
// sorted by name, arrays keep their order and json.Number values are written
// verbatim. Values outside the generic tree fall back to encoding/json.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent is Marshal followed by indentation with the given prefix and indent.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	b, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, prefix, indent); err != nil {
		return nil, errors.WithStack(err)
	}
	return out.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case nil:
		buf.WriteString("null")
		return nil
	case bool:
		if x {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil
	case string:
		writeString(buf, x)
		return nil
	case json.Number:
		if _, err := strconv.ParseFloat(string(x), 64); err != nil {
			return errors.Errorf("invalid JSON number %q: %w", string(x), err)
		}
		buf.WriteString(string(x))
		return nil
	case float64:
		s, err := formatFloat64(x)
		if err != nil {
			return err
		}
		buf.WriteString(s)
		return nil
	case float32:
		s, err := formatFloat64(float64(x))
		if err != nil {
			return err
		}
		buf.WriteString(s)
		return nil
	case int:
		buf.WriteString(strconv.Itoa(x))
		return nil
	case int64:
		buf.WriteString(strconv.FormatInt(x, 10))
		return nil
	case []any:
		buf.WriteByte('[')
		for i, item := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, k)
			buf.WriteByte(':')
			if err := writeValue(buf, x[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return errors.WithStack(err)
		}
		buf.Write(b)
		return nil
	}
}

func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '\\':
			buf.WriteString(`\\`)
		case r == '"':
			buf.WriteString(`\"`)
		case r == '\b':
			buf.WriteString(`\b`)
		case r == '\t':
			buf.WriteString(`\t`)
		case r == '\n':
			buf.WriteString(`\n`)
		case r == '\f':
			buf.WriteString(`\f`)
		case r == '\r':
			buf.WriteString(`\r`)
		case r <= 0x1F:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexDigits[r>>4])
			buf.WriteByte(hexDigits[r&0xF])
		default:
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
}

const hexDigits = "0123456789abcdef"

func formatFloat64(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", errors.New("invalid JSON number: NaN or Infinity")
	}
	if f == 0 {
		return "0", nil
	}

	abs := math.Abs(f)
	var s string
	if abs >= 1e21 || abs < 1e-6 {
		s = normalizeExponent(strconv.FormatFloat(f, 'e', -1, 64))
	} else {
		s = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return s, nil
}

// normalizeExponent drops the zero padding Go puts in exponents (1e-06 -> 1e-6).
func normalizeExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	sign := s[i+1]
	exp := strings.TrimLeft(s[i+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return s[:i+1] + string(sign) + exp
}
