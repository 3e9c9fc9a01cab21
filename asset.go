package lottie

// Asset wraps one entry of the document's "assets" array. Precomposition
// assets carry a nested "layers" array; those layers stay raw fragments.
type Asset struct {
	Node
}

// NewAsset wraps source. source is not copied.
func NewAsset(source Object) *Asset {
	return &Asset{Node: newNode(source, assetPropMap)}
}

// ID returns the asset id.
func (a *Asset) ID() string { return stringValue(a.Value(AssetProps.ID)) }

// SetID sets the asset id. It does not rewrite references to the old id.
func (a *Asset) SetID(id string) {
	if id == "" {
		a.SetValue(AssetProps.ID, nil)
		return
	}
	a.SetValue(AssetProps.ID, id)
}

// Layers returns the nested layer fragments of a precomposition asset.
func (a *Asset) Layers() []Object {
	raw := sliceValue(a.Value(AssetProps.Layers))
	out := make([]Object, 0, len(raw))
	for _, item := range raw {
		if obj, ok := item.(Object); ok {
			out = append(out, obj)
		}
	}
	return out
}

// IsPrecomposition reports whether the asset holds nested layers.
func (a *Asset) IsPrecomposition() bool {
	_, ok := a.Value(AssetProps.Layers).([]any)
	return ok
}

// Width returns the image width, or 0.
func (a *Asset) Width() float64 { return floatOr(a.Value(AssetProps.Width), 0) }

// Height returns the image height, or 0.
func (a *Asset) Height() float64 { return floatOr(a.Value(AssetProps.Height), 0) }

// File returns the image file name or data URI.
func (a *Asset) File() string { return stringValue(a.Value(AssetProps.File)) }

// Marker wraps one entry of the document's "markers" array.
type Marker struct {
	Node
}

func NewMarker(source Object) *Marker {
	return &Marker{Node: newNode(source, markerPropMap)}
}

func (m *Marker) Comment() string { return stringValue(m.source["cm"]) }

func (m *Marker) Time() float64 { return floatOr(m.source["tm"], 0) }

func (m *Marker) Duration() float64 { return floatOr(m.source["dr"], 0) }

// Meta wraps the document's "meta" object.
type Meta struct {
	Node
}

func NewMeta(source Object) *Meta {
	return &Meta{Node: newNode(source, metaPropMap)}
}

func (m *Meta) Generator() string { return stringValue(m.source["g"]) }

func (m *Meta) Author() string { return stringValue(m.source["a"]) }
