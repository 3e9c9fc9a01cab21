package structural

import (
	"encoding/json"
	"math"
	"reflect"

	"gitlab.com/tozd/go/errors"
)

// DefaultMaxDepth bounds recursion for Clone and Equal. Lottie documents nest
// a few dozen levels at most, so hitting it means the input is cyclic or
// pathological.
const DefaultMaxDepth = 200

// ErrMaxDepth is returned when Clone or Equal recurse past their depth bound.
var ErrMaxDepth = errors.New("max depth reached")

// Clone returns a deep copy of v. Objects (map[string]any) and arrays ([]any)
// are copied recursively; every other value is returned as-is.
//
// A negative maxDepth fails immediately.
func Clone(v any, maxDepth int) (any, error) {
	if maxDepth < 0 {
		return nil, errors.Errorf("clone: %w", ErrMaxDepth)
	}
	maxDepth--

	switch x := v.(type) {
	case map[string]any:
		if x == nil {
			return x, nil
		}
		out := make(map[string]any, len(x))
		for k, item := range x {
			c, err := Clone(item, maxDepth)
			if err != nil {
				return nil, err
			}
			out[k] = c
		}
		return out, nil
	case []any:
		if x == nil {
			return x, nil
		}
		out := make([]any, len(x))
		for i, item := range x {
			c, err := Clone(item, maxDepth)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	default:
		return v, nil
	}
}

// CloneObject is Clone for an object root.
func CloneObject(obj map[string]any, maxDepth int) (map[string]any, error) {
	c, err := Clone(obj, maxDepth)
	if err != nil {
		return nil, err
	}
	out, _ := c.(map[string]any)
	return out, nil
}

// Verdict is the answer of a KeyComparer for a single object key.
type Verdict int

const (
	// Recurse compares the values under the key structurally.
	Recurse Verdict = iota
	// Same treats the values under the key as equal without looking at them.
	Same
	// Differ makes the whole comparison unequal.
	Differ
)

// KeyComparer lets callers special-case individual object keys during Equal.
// depth is the depth of the objects a and b that hold key; the roots passed
// to Equal are at depth 0. Any state the comparer needs is captured by the
// closure.
type KeyComparer func(key string, depth int, a, b map[string]any) (Verdict, error)

// Equal reports whether a and b are structurally equal. Objects must have the
// same key set (in any order) and equal values per key, arrays must have the
// same length and pairwise equal elements, and scalars must be equal; numbers
// are compared by value regardless of their Go representation.
//
// cmp may be nil.
func Equal(a, b any, cmp KeyComparer, maxDepth int) (bool, error) {
	return equalAt(a, b, cmp, maxDepth, 0)
}

// EqualAt is Equal starting at an explicit depth. It is meant for key
// comparers that recurse into related values and need the depth passed to
// nested comparer calls to keep counting.
func EqualAt(a, b any, cmp KeyComparer, maxDepth, depth int) (bool, error) {
	return equalAt(a, b, cmp, maxDepth, depth)
}

func equalAt(a, b any, cmp KeyComparer, maxDepth, depth int) (bool, error) {
	if maxDepth < 0 {
		return false, errors.Errorf("compare: %w", ErrMaxDepth)
	}
	maxDepth--

	switch x := a.(type) {
	case map[string]any:
		y, ok := b.(map[string]any)
		if !ok {
			return false, nil
		}
		if len(x) != len(y) {
			return false, nil
		}
		for k, av := range x {
			bv, ok := y[k]
			if !ok {
				return false, nil
			}
			if cmp != nil {
				v, err := cmp(k, depth, x, y)
				if err != nil {
					return false, err
				}
				switch v {
				case Differ:
					return false, nil
				case Same:
					continue
				}
			}
			eq, err := equalAt(av, bv, cmp, maxDepth, depth+1)
			if err != nil || !eq {
				return false, err
			}
		}
		return true, nil
	case []any:
		y, ok := b.([]any)
		if !ok {
			return false, nil
		}
		if len(x) != len(y) {
			return false, nil
		}
		for i := range x {
			eq, err := equalAt(x[i], y[i], cmp, maxDepth, depth+1)
			if err != nil || !eq {
				return false, err
			}
		}
		return true, nil
	default:
		return ScalarEqual(a, b), nil
	}
}

// ScalarEqual compares two JSON scalars. Numbers compare by value whether
// they are float64, Go integers or json.Number.
func ScalarEqual(a, b any) bool {
	if fa, ok := Number(a); ok {
		fb, ok := Number(b)
		return ok && (fa == fb || (math.IsNaN(fa) && math.IsNaN(fb)))
	}
	switch x := a.(type) {
	case nil:
		return b == nil
	case string:
		y, ok := b.(string)
		return ok && x == y
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case map[string]any, []any:
		return false
	}
	return reflect.DeepEqual(a, b)
}

// Number converts a JSON numeric value to float64.
func Number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
