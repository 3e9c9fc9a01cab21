package lottie

import (
	"github.com/lottiebuilder/lottie-go/keypath"
)

// Layer is one entry of a composition's layer list. The set of
// implementations is closed: *GroupLayer, *ImageLayer, *PrecompositionLayer,
// *ShapeLayer, *SolidLayer, *TextLayer and *GenericLayer for every other
// type. Use a type switch to reach variant fields.
type Layer interface {
	Source() Object
	AdditionalProps() Object
	Readable() Object
	MarshalJSON() ([]byte, error)

	Type() LayerType
	Name() string
	SetName(name string)
	Index() int
	RefID() string
	IsHidden() bool
	SetHidden(hidden bool)
	Is3D() bool
	Width() float64
	Height() float64
	Transform() Object
	Position() Point
	SetPositionXY(x, y float64)
	Scale() Size
	SetScale(scale float64)
	Rotation() float64
	SetRotation(deg float64)
	Opacity() float64
	SetOpacity(opacity float64)
	SetHighlighted(enabled bool)
	Composition() *Composition

	base() *LayerBase
}

// LayerBase holds the state and accessors every layer type shares.
type LayerBase struct {
	Node
	comp *Composition
}

// newLayer wraps source in the variant its "ty" selects.
func newLayer(c *Composition, source Object) Layer {
	ty, ok := intValue(source[LayerProps.Type.Key])
	if !ok {
		ty = -1
	}
	switch LayerType(ty) {
	case LayerTypePrecomposition:
		return &PrecompositionLayer{LayerBase: newLayerBase(c, source, precompositionPropMap)}
	case LayerTypeSolid:
		return &SolidLayer{LayerBase: newLayerBase(c, source, solidPropMap)}
	case LayerTypeImage:
		return &ImageLayer{LayerBase: newLayerBase(c, source, layerPropMap)}
	case LayerTypeGroup:
		return &GroupLayer{LayerBase: newLayerBase(c, source, layerPropMap)}
	case LayerTypeShape:
		return &ShapeLayer{LayerBase: newLayerBase(c, source, shapePropMap)}
	case LayerTypeText:
		return &TextLayer{LayerBase: newLayerBase(c, source, textPropMap)}
	default:
		return &GenericLayer{LayerBase: newLayerBase(c, source, layerPropMap)}
	}
}

func newLayerBase(c *Composition, source Object, props *PropertyMap) LayerBase {
	return LayerBase{Node: newNode(source, props), comp: c}
}

func (l *LayerBase) base() *LayerBase { return l }

// Composition returns the composition that owns the layer.
func (l *LayerBase) Composition() *Composition { return l.comp }

// Type returns the "ty" discriminator, or -1 when it is missing.
func (l *LayerBase) Type() LayerType {
	ty, ok := intValue(l.Value(LayerProps.Type))
	if !ok {
		return -1
	}
	return LayerType(ty)
}

func (l *LayerBase) Name() string { return stringValue(l.Value(LayerProps.Name)) }

// SetName renames the layer. The composition's name lookup is rebuilt.
func (l *LayerBase) SetName(name string) {
	if name == "" {
		l.SetValue(LayerProps.Name, nil)
	} else {
		l.SetValue(LayerProps.Name, name)
	}
	if l.comp != nil {
		l.comp.rebuildLayerLookup()
	}
}

// Index returns the "ind" value, which the owning composition keeps equal to
// the layer's position.
func (l *LayerBase) Index() int {
	i, ok := intValue(l.Value(LayerProps.Index))
	if !ok {
		return -1
	}
	return i
}

// ID returns the layer's "ln" (HTML id) value.
func (l *LayerBase) ID() string { return stringValue(l.Value(LayerProps.ID)) }

func (l *LayerBase) SetID(id string) { l.setString(LayerProps.ID, id) }

// RefID returns the id of the asset the layer references, if any.
func (l *LayerBase) RefID() string { return stringValue(l.Value(LayerProps.RefID)) }

func (l *LayerBase) ClassNames() string { return stringValue(l.Value(LayerProps.ClassNames)) }

func (l *LayerBase) SetClassNames(cl string) { l.setString(LayerProps.ClassNames, cl) }

func (l *LayerBase) MatchName() string { return stringValue(l.Value(LayerProps.MatchName)) }

func (l *LayerBase) SetMatchName(mn string) { l.setString(LayerProps.MatchName, mn) }

func (l *LayerBase) InPoint() float64 { return floatOr(l.Value(LayerProps.InPoint), 0) }

func (l *LayerBase) SetInPoint(f float64) { l.SetValue(LayerProps.InPoint, number(f)) }

func (l *LayerBase) OutPoint() float64 { return floatOr(l.Value(LayerProps.OutPoint), 0) }

func (l *LayerBase) SetOutPoint(f float64) { l.SetValue(LayerProps.OutPoint, number(f)) }

func (l *LayerBase) StartTime() float64 { return floatOr(l.Value(LayerProps.StartTime), 0) }

func (l *LayerBase) SetStartTime(f float64) { l.SetValue(LayerProps.StartTime, number(f)) }

// TimeStretch returns "sr", defaulting to 1.
func (l *LayerBase) TimeStretch() float64 { return floatOr(l.Value(LayerProps.TimeStretch), 1) }

func (l *LayerBase) SetTimeStretch(f float64) { l.SetValue(LayerProps.TimeStretch, number(f)) }

func (l *LayerBase) Width() float64 { return floatOr(l.Value(LayerProps.Width), 0) }

func (l *LayerBase) Height() float64 { return floatOr(l.Value(LayerProps.Height), 0) }

func (l *LayerBase) SetSize(w, h float64) {
	l.SetValue(LayerProps.Width, number(w))
	l.SetValue(LayerProps.Height, number(h))
}

func (l *LayerBase) AutoOrient() bool { return truthy(l.Value(LayerProps.AutoOrient)) }

func (l *LayerBase) SetAutoOrient(b bool) { l.SetValue(LayerProps.AutoOrient, boolInt(b)) }

func (l *LayerBase) Is3D() bool { return truthy(l.Value(LayerProps.Is3D)) }

func (l *LayerBase) SetIs3D(b bool) { l.SetValue(LayerProps.Is3D, boolInt(b)) }

func (l *LayerBase) BlendMode() BlendMode {
	bm, _ := intValue(l.Value(LayerProps.BlendMode))
	return BlendMode(bm)
}

func (l *LayerBase) SetBlendMode(bm BlendMode) {
	l.SetValue(LayerProps.BlendMode, number(float64(bm)))
}

func (l *LayerBase) MatteMode() MatteMode {
	tt, _ := intValue(l.Value(LayerProps.MatteMode))
	return MatteMode(tt)
}

// SetMatteMode sets "tt". MatteModeNormal removes the key.
func (l *LayerBase) SetMatteMode(tt MatteMode) {
	if tt == MatteModeNormal {
		l.SetValue(LayerProps.MatteMode, nil)
		return
	}
	l.SetValue(LayerProps.MatteMode, number(float64(tt)))
}

// IsMatteTarget reports whether the layer is used as a track matte ("td").
func (l *LayerBase) IsMatteTarget() bool { return truthy(l.Value(LayerProps.MatteTarget)) }

// Effects returns the raw "ef" array.
func (l *LayerBase) Effects() []any { return sliceValue(l.Value(LayerProps.Effects)) }

// Parent returns the "ind" of the parent layer.
func (l *LayerBase) Parent() (int, bool) {
	return intValue(l.Value(LayerProps.Parent))
}

// SetParent parents the layer to p. A nil p clears the parent.
func (l *LayerBase) SetParent(p Layer) {
	if p == nil {
		l.SetValue(LayerProps.Parent, nil)
		return
	}
	l.SetValue(LayerProps.Parent, number(float64(p.Index())))
}

// IsHidden reports the "hd" flag.
func (l *LayerBase) IsHidden() bool { return truthy(l.Value(LayerProps.IsHidden)) }

// SetHidden sets or clears the "hd" flag and tells the renderer.
func (l *LayerBase) SetHidden(hidden bool) {
	if hidden {
		l.SetValue(LayerProps.IsHidden, true)
	} else {
		l.SetValue(LayerProps.IsHidden, nil)
	}
	if i, ok := l.position(); ok {
		l.comp.acc.SetLayerHidden(i, hidden)
	}
}

// SetHighlighted asks the renderer to outline the layer. Without renderer
// support it does nothing.
func (l *LayerBase) SetHighlighted(enabled bool) {
	i, ok := l.position()
	if !ok {
		i = -1
	}
	if l.comp != nil {
		l.comp.acc.SetLayerHighlight(i, enabled, HighlightColor, HighlightWeight)
	}
}

// Highlight style passed to the renderer.
const (
	HighlightColor  = "#00ff00"
	HighlightWeight = 5
)

// position finds the layer in its composition's layer list.
func (l *LayerBase) position() (int, bool) {
	if l.comp == nil {
		return -1, false
	}
	for i, other := range l.comp.layers {
		if other.base() == l {
			return i, true
		}
	}
	return -1, false
}

func (l *LayerBase) setString(p Prop, s string) {
	if s == "" {
		l.SetValue(p, nil)
		return
	}
	l.SetValue(p, s)
}

// Transform returns the raw "ks" fragment, or nil.
func (l *LayerBase) Transform() Object { return objectValue(l.Value(LayerProps.Transform)) }

// SetTransform replaces the "ks" fragment.
func (l *LayerBase) SetTransform(ks Object) {
	if ks == nil {
		l.SetValue(LayerProps.Transform, nil)
		return
	}
	l.SetValue(LayerProps.Transform, ks)
}

// ensureTransform returns the "ks" fragment, creating it and its scale,
// position, rotation and opacity properties with identity values when they
// are missing. Getters never call it; the first transform edit does.
func (l *LayerBase) ensureTransform() Object {
	ks := l.Transform()
	if ks == nil {
		ks = Object{}
		l.SetValue(LayerProps.Transform, ks)
	}
	ensure := func(key string, k func() any, ix int) {
		prop := objectValue(ks[key])
		if prop == nil {
			ks[key] = staticValue(k(), ix)
			return
		}
		if _, ok := prop["k"]; !ok {
			prop["k"] = k()
		}
	}
	ensure("s", func() any { return numbers(100, 100, 100) }, transformIndexScale)
	ensure("p", func() any { return numbers(0, 0, 0) }, transformIndexPosition)
	ensure("r", func() any { return number(0) }, transformIndexRotation)
	ensure("o", func() any { return number(100) }, transformIndexOpacity)
	return ks
}

// transformProp returns one property of "ks" without creating anything.
func (l *LayerBase) transformProp(key string) Object {
	return objectValue(l.Transform()[key])
}

func (l *LayerBase) transformKeyPath(property string) string {
	return keypath.Transform(l.Name(), property).String()
}

// Scale returns the X and Y scale in percent, 100 being identity.
func (l *LayerBase) Scale() Size {
	s := currentValue(l.transformProp("s"))
	return Size{Width: component(s, 0, 100), Height: component(s, 1, 100)}
}

func (l *LayerBase) Scale3D() Size3D {
	s := currentValue(l.transformProp("s"))
	return Size3D{Width: component(s, 0, 100), Height: component(s, 1, 100), Depth: component(s, 2, 100)}
}

// SetScale sets a uniform X and Y scale in percent.
func (l *LayerBase) SetScale(scale float64) { l.SetScaleXYZ(scale, scale, 100) }

func (l *LayerBase) SetScaleXY(x, y float64) { l.SetScaleXYZ(x, y, 100) }

func (l *LayerBase) SetScaleXYZ(x, y, z float64) {
	setStatic(objectValue(l.ensureTransform()["s"]), numbers(x, y, z))
	l.comp.acc.SetSize(l.transformKeyPath(keypath.Scale), x, y)
}

// Position returns the layer position in composition pixels.
func (l *LayerBase) Position() Point {
	p := currentValue(l.transformProp("p"))
	return Point{X: component(p, 0, 0), Y: component(p, 1, 0)}
}

func (l *LayerBase) Position3D() Point3D {
	p := currentValue(l.transformProp("p"))
	return Point3D{X: component(p, 0, 0), Y: component(p, 1, 0), Z: component(p, 2, 0)}
}

func (l *LayerBase) SetPosition(pt Point) { l.SetPositionXYZ(pt.X, pt.Y, 0) }

func (l *LayerBase) SetPositionXY(x, y float64) { l.SetPositionXYZ(x, y, 0) }

func (l *LayerBase) SetPositionXYZ(x, y, z float64) {
	setStatic(objectValue(l.ensureTransform()["p"]), numbers(x, y, z))
	l.comp.acc.SetPoint(l.transformKeyPath(keypath.Position), x, y)
}

// Rotation returns the rotation in degrees.
func (l *LayerBase) Rotation() float64 {
	return component(currentValue(l.transformProp("r")), 0, 0)
}

func (l *LayerBase) SetRotation(deg float64) {
	setStatic(objectValue(l.ensureTransform()["r"]), number(deg))
	l.comp.acc.SetFloat(l.transformKeyPath(keypath.Rotation), deg)
}

// Opacity returns the opacity in percent.
func (l *LayerBase) Opacity() float64 {
	return component(currentValue(l.transformProp("o")), 0, 100)
}

// SetOpacity sets the opacity in percent.
func (l *LayerBase) SetOpacity(opacity float64) {
	setStatic(objectValue(l.ensureTransform()["o"]), number(opacity))
	l.comp.acc.SetFloat(l.transformKeyPath(keypath.Opacity), opacity)
}

// GroupLayer is a null layer ("ty" 3) used to parent other layers.
type GroupLayer struct {
	LayerBase
}

// ImageLayer ("ty" 2) draws an image asset.
type ImageLayer struct {
	LayerBase
}

func (l *ImageLayer) SetRefID(id string) { l.setString(LayerProps.RefID, id) }

// PrecompositionLayer ("ty" 0) draws a precomposition asset.
type PrecompositionLayer struct {
	LayerBase
}

func (l *PrecompositionLayer) SetRefID(id string) { l.setString(LayerProps.RefID, id) }

// TimeRemap returns the raw "tm" property.
func (l *PrecompositionLayer) TimeRemap() Object {
	return objectValue(l.Value(PrecompositionProps.TimeRemap))
}

func (l *PrecompositionLayer) SetTimeRemap(tm Object) {
	if tm == nil {
		l.SetValue(PrecompositionProps.TimeRemap, nil)
		return
	}
	l.SetValue(PrecompositionProps.TimeRemap, tm)
}

// ShapeLayer ("ty" 4) holds vector shapes.
type ShapeLayer struct {
	LayerBase
}

// Shapes returns the raw "shapes" array.
func (l *ShapeLayer) Shapes() []any { return sliceValue(l.Value(ShapeProps.Shapes)) }

// SetShapeColor recolors every fill and stroke of the named shape, at any
// depth, and tells the renderer. It reports whether a shape matched.
func (l *ShapeLayer) SetShapeColor(shape, hex string) (bool, error) {
	c, err := ParseColor(hex)
	if err != nil {
		return false, err
	}
	found := false
	walkShapes(l.Shapes(), func(item Object, inNamed bool) {
		if !inNamed {
			return
		}
		switch stringValue(item["ty"]) {
		case "fl", "st", "gf", "gs":
			if prop := objectValue(item["c"]); prop != nil {
				setStatic(prop, numbers(c.R, c.G, c.B, c.A))
				found = true
			}
		}
	}, shape, false)
	if found {
		l.comp.acc.SetColor(keypath.ShapeColor(l.Name(), shape).String(), hex)
	}
	return found, nil
}

// walkShapes visits every shape item. inNamed is true for items at or below
// a shape whose "nm" equals name.
func walkShapes(items []any, visit func(item Object, inNamed bool), name string, inNamed bool) {
	for _, raw := range items {
		item := objectValue(raw)
		if item == nil {
			continue
		}
		named := inNamed || stringValue(item["nm"]) == name
		visit(item, named)
		walkShapes(sliceValue(item["it"]), visit, name, named)
	}
}

// SolidLayer ("ty" 1) fills its bounds with a color.
type SolidLayer struct {
	LayerBase
}

// SolidColor returns "sc", a hex color.
func (l *SolidLayer) SolidColor() string { return stringValue(l.Value(SolidProps.Color)) }

func (l *SolidLayer) SetSolidColor(hex string) { l.setString(SolidProps.Color, hex) }

func (l *SolidLayer) SolidSize() Size {
	return Size{
		Width:  floatOr(l.Value(SolidProps.Width), 0),
		Height: floatOr(l.Value(SolidProps.Height), 0),
	}
}

func (l *SolidLayer) SetSolidSize(s Size) {
	l.SetValue(SolidProps.Width, number(s.Width))
	l.SetValue(SolidProps.Height, number(s.Height))
}

// TextLayer ("ty" 5) renders text.
type TextLayer struct {
	LayerBase
}

// TextData returns the raw "t" fragment.
func (l *TextLayer) TextData() Object { return objectValue(l.Value(TextProps.TextData)) }

func (l *TextLayer) SetTextData(t Object) {
	if t == nil {
		l.SetValue(TextProps.TextData, nil)
		return
	}
	l.SetValue(TextProps.TextData, t)
}

// Text returns the text of the first text keyframe.
func (l *TextLayer) Text() string {
	docs := textDocuments(l.TextData())
	if len(docs) == 0 {
		return ""
	}
	return stringValue(docs[0]["t"])
}

// SetText replaces the text of every text keyframe and tells the renderer.
// Layers without text data get a default text document.
func (l *TextLayer) SetText(text string) {
	docs := textDocuments(l.TextData())
	if len(docs) == 0 {
		l.SetTextData(NewTextData(TextOptions{Text: text}))
	}
	for _, d := range docs {
		d["t"] = text
	}
	if i, ok := l.position(); ok {
		l.comp.acc.SetLayerText(i, text)
	}
}

// GenericLayer wraps layer types without dedicated fields: audio, video,
// placeholders, guides, adjustment, camera and light layers, and layers with
// a missing or unknown "ty".
type GenericLayer struct {
	LayerBase
}
