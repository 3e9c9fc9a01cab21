package lottie

// Point is a 2D position in composition pixels.
type Point struct {
	X, Y float64
}

// Point3D is a 3D position in composition pixels.
type Point3D struct {
	X, Y, Z float64
}

// Size is a 2D extent.
type Size struct {
	Width, Height float64
}

// Size3D is a 3D extent.
type Size3D struct {
	Width, Height, Depth float64
}

// Float returns a pointer to f, for optional fields of TransformOptions and
// TextOptions.
func Float(f float64) *float64 {
	return &f
}

// TransformOptions describes a static layer transform. Nil fields take their
// defaults: position and anchor 0, scale 1, rotation 0, opacity 1. ScaleX,
// ScaleY and ScaleZ override Scale per axis. Scale and opacity are factors;
// the document stores them multiplied by 100.
//
// Width and Height only apply to imported precomposition layers, where they
// default to the imported document's size.
type TransformOptions struct {
	X, Y, Z                   *float64
	AnchorX, AnchorY, AnchorZ *float64
	Scale                     *float64
	ScaleX, ScaleY, ScaleZ    *float64
	Rotation                  *float64
	Opacity                   *float64

	Width, Height *float64
}

func or(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// withCenter fills in a missing position with the given point.
func (o TransformOptions) withCenter(c Point) TransformOptions {
	if o.X == nil {
		o.X = Float(c.X)
	}
	if o.Y == nil {
		o.Y = Float(c.Y)
	}
	return o
}

// Transform property indexes the bodymovin exporter assigns.
const (
	transformIndexAnchor   = 1
	transformIndexPosition = 2
	transformIndexScale    = 6
	transformIndexRotation = 10
	transformIndexOpacity  = 11
)

func staticValue(k any, ix int) Object {
	return Object{"a": number(0), "k": k, "ix": number(float64(ix))}
}

// NewTransform builds a "ks" transform fragment.
func NewTransform(o TransformOptions) Object {
	scale := or(o.Scale, 1)
	return Object{
		"o": staticValue(number(or(o.Opacity, 1)*100), transformIndexOpacity),
		"r": staticValue(number(or(o.Rotation, 0)), transformIndexRotation),
		"p": staticValue(numbers(or(o.X, 0), or(o.Y, 0), or(o.Z, 0)), transformIndexPosition),
		"a": staticValue(numbers(or(o.AnchorX, 0), or(o.AnchorY, 0), or(o.AnchorZ, 0)), transformIndexAnchor),
		"s": staticValue(numbers(
			or(o.ScaleX, scale)*100,
			or(o.ScaleY, scale)*100,
			or(o.ScaleZ, scale)*100,
		), transformIndexScale),
	}
}

// currentValue reads the value of an animatable property. Animated values
// read as the start value of their first keyframe.
func currentValue(prop Object) []float64 {
	k := prop["k"]
	if truthy(prop["a"]) {
		if frames := sliceValue(k); len(frames) > 0 {
			if first := objectValue(frames[0]); first != nil {
				return numberSlice(first["s"])
			}
		}
	}
	return numberSlice(k)
}

func component(vs []float64, i int, def float64) float64 {
	if i < len(vs) {
		return vs[i]
	}
	return def
}

// setStatic replaces an animatable property with a static value, keeping the
// property's other keys such as "ix".
func setStatic(prop Object, k any) {
	prop["a"] = number(0)
	prop["k"] = k
}
