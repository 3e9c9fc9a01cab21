// Package query filters composition layers with boolean expressions such as
//
//	type == "text" && !hidden
//	opacity < 50 || name startsWith "bg_"
//	refId != "" && hasKey(layer, "tm")
//
// Expressions are written in the expr language
// (https://expr-lang.org) and evaluated against the variables listed on Env.
package query

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"gitlab.com/tozd/go/errors"

	"github.com/lottiebuilder/lottie-go"
)

// Filter is a compiled layer filter. It is safe for concurrent use as long
// as the layers it is run against are not being modified.
type Filter struct {
	src     string
	program *vm.Program
}

// Env returns the variables a filter sees for l:
//
//	name, type, refId  string
//	ty, index          int
//	hidden, is3D       bool
//	x, y, rotation     float64
//	opacity, scale     float64 (percent)
//	width, height      float64
//	layer              the raw layer object
func Env(l lottie.Layer) map[string]any {
	pos := l.Position()
	return map[string]any{
		"name":     l.Name(),
		"type":     l.Type().String(),
		"ty":       int(l.Type()),
		"index":    l.Index(),
		"refId":    l.RefID(),
		"hidden":   l.IsHidden(),
		"is3D":     l.Is3D(),
		"x":        pos.X,
		"y":        pos.Y,
		"rotation": l.Rotation(),
		"opacity":  l.Opacity(),
		"scale":    l.Scale().Width,
		"width":    l.Width(),
		"height":   l.Height(),
		"layer":    l.Source(),
	}
}

var sampleEnv = map[string]any{
	"name": "", "type": "", "ty": 0, "index": 0, "refId": "",
	"hidden": false, "is3D": false,
	"x": 0.0, "y": 0.0, "rotation": 0.0, "opacity": 0.0, "scale": 0.0,
	"width": 0.0, "height": 0.0,
	"layer": map[string]any{},
}

func options() []expr.Option {
	return []expr.Option{
		expr.Env(sampleEnv),
		expr.AsBool(),
		expr.Function("hasKey", func(params ...any) (any, error) {
			obj, ok := params[0].(map[string]any)
			if !ok {
				return false, nil
			}
			key, _ := params[1].(string)
			_, found := obj[key]
			return found, nil
		}, new(func(map[string]any, string) bool)),
	}
}

// Compile parses and type-checks src.
func Compile(src string) (*Filter, error) {
	program, err := expr.Compile(src, options()...)
	if err != nil {
		return nil, errors.Errorf("compile filter %q: %w", src, err)
	}
	return &Filter{src: src, program: program}, nil
}

// MustCompile is Compile that panics on error.
func MustCompile(src string) *Filter {
	f, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Filter) String() string { return f.src }

// Match reports whether l satisfies the filter.
func (f *Filter) Match(l lottie.Layer) (bool, error) {
	out, err := expr.Run(f.program, Env(l))
	if err != nil {
		return false, errors.Errorf("run filter %q on layer %q: %w", f.src, l.Name(), err)
	}
	b, _ := out.(bool)
	return b, nil
}

// Select returns the layers that satisfy the filter, in order.
func (f *Filter) Select(layers []lottie.Layer) ([]lottie.Layer, error) {
	var out []lottie.Layer
	for _, l := range layers {
		ok, err := f.Match(l)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, l)
		}
	}
	return out, nil
}
