package lottie

import (
	"context"
	"math"

	"gitlab.com/tozd/go/errors"

	"github.com/lottiebuilder/lottie-go/structural"
)

// ErrMissingLayers is returned when an imported document has no "layers"
// array.
var ErrMissingLayers = errors.New(`document has no "layers" array`)

// DefaultHitRadius is the radius LayerAtPt callers typically use.
const DefaultHitRadius = 8.0

// GetLayer returns the first layer named name, or nil.
func (c *Composition) GetLayer(name string) Layer {
	return c.layerByName[name]
}

// LayerAt returns the layer at position i, or nil when i is out of range.
func (c *Composition) LayerAt(i int) Layer {
	if i < 0 || i >= len(c.layers) {
		return nil
	}
	return c.layers[i]
}

// layerPosition returns l's position in the layer list, or -1.
func (c *Composition) layerPosition(l Layer) int {
	for i, other := range c.layers {
		if other == l {
			return i
		}
	}
	return -1
}

// AddLayer inserts source at index, clamped to [0, len(Layers())], and
// returns its typed view. source becomes part of the document and is not
// copied.
func (c *Composition) AddLayer(source Object, index int) Layer {
	return c.addLayer(source, index, true)
}

func (c *Composition) addLayer(source Object, index int, notify bool) Layer {
	if source == nil {
		source = Object{}
	}
	raw := c.sourceLayers()
	index = max(0, min(index, len(raw)))

	parents := c.indexSnapshot()
	c.setSourceLayers(insertAt(raw, index, any(source)))
	l := newLayer(c, source)
	c.layers = insertAt(c.layers, index, l)

	c.rebuildLayerLookup()
	c.reindex(parents)
	if notify {
		c.notify()
	}
	return l
}

// RemoveLayer removes l. When removeUnusedAssets is set and l referenced an
// asset that nothing else references any more, that asset is removed too,
// along with the assets only it used. It returns false if l is not in the
// composition.
func (c *Composition) RemoveLayer(l Layer, removeUnusedAssets bool) bool {
	return c.removeLayer(l, removeUnusedAssets, true)
}

func (c *Composition) removeLayer(l Layer, removeUnusedAssets, notify bool) bool {
	i := c.layerPosition(l)
	if i < 0 {
		return false
	}

	parents := c.indexSnapshot()
	c.setSourceLayers(removeAt(c.sourceLayers(), i))
	c.layers = removeAt(c.layers, i)

	if ref := l.RefID(); ref != "" && removeUnusedAssets && c.AssetRefCount(ref) == 0 {
		c.log.Debug("removing unused asset", "asset", ref, "layer", l.Name())
		c.removeAsset(ref, false)
	}

	c.rebuildLayerLookup()
	c.reindex(parents)
	if notify {
		c.notify()
	}
	return true
}

// RemoveHiddenLayers removes every hidden layer and the assets only they
// used, then notifies listeners once. It returns the number of layers
// removed.
func (c *Composition) RemoveHiddenLayers() int {
	var hidden []Layer
	for _, l := range c.layers {
		if l.IsHidden() {
			hidden = append(hidden, l)
		}
	}
	if len(hidden) == 0 {
		return 0
	}
	for _, l := range hidden {
		c.removeLayer(l, true, false)
	}
	c.notify()
	return len(hidden)
}

// SetLayerIndex moves l to index, clamped to the valid range. It returns
// false if l is not in the composition.
func (c *Composition) SetLayerIndex(l Layer, index int) bool {
	current := c.layerPosition(l)
	if current < 0 {
		return false
	}
	index = max(0, min(index, len(c.layers)-1))
	if index == current {
		return true
	}

	parents := c.indexSnapshot()
	raw := c.sourceLayers()
	item := raw[current]
	c.setSourceLayers(insertAt(removeAt(raw, current), index, item))
	c.layers = insertAt(removeAt(c.layers, current), index, l)

	c.rebuildLayerLookup()
	c.reindex(parents)
	c.notify()
	return true
}

// indexSnapshot maps the current "ind" values to their layers so that
// parent references can be carried across a reorder.
func (c *Composition) indexSnapshot() map[int]Layer {
	m := make(map[int]Layer, len(c.layers))
	for _, l := range c.layers {
		if ind := l.Index(); ind >= 0 {
			if _, taken := m[ind]; !taken {
				m[ind] = l
			}
		}
	}
	return m
}

// reindex sets every layer's "ind" to its position and rewrites "parent"
// references recorded in before. Parents that are no longer in the
// composition are dropped.
func (c *Composition) reindex(before map[int]Layer) {
	parents := make(map[*LayerBase]Layer, len(c.layers))
	for _, l := range c.layers {
		p, ok := l.base().Parent()
		if !ok {
			continue
		}
		parents[l.base()] = before[p]
	}

	for i, l := range c.layers {
		l.base().SetValue(LayerProps.Index, number(float64(i)))
	}

	for b, parent := range parents {
		if parent == nil {
			c.log.Debug("dropping dangling parent", "layer", b.Name())
			b.SetValue(LayerProps.Parent, nil)
			continue
		}
		if i := c.layerPosition(parent); i >= 0 {
			b.SetValue(LayerProps.Parent, number(float64(i)))
		} else {
			c.log.Debug("dropping removed parent", "layer", b.Name())
			b.SetValue(LayerProps.Parent, nil)
		}
	}
}

// uniqueLayerName returns name, or name with a generated suffix when a layer
// already uses it.
func (c *Composition) uniqueLayerName(name string) string {
	candidate := name
	for {
		if _, taken := c.layerByName[candidate]; !taken {
			return candidate
		}
		candidate = name + "_" + c.opts.ids.NewID()
	}
}

// baseLayer holds the fields every layer created by the composition starts
// with.
func (c *Composition) baseLayer(name string, ty LayerType, transform TransformOptions) Object {
	src := Object{
		LayerProps.Name.Key:        name,
		LayerProps.Type.Key:        number(float64(ty)),
		LayerProps.Index.Key:       number(0),
		LayerProps.Is3D.Key:        number(0),
		LayerProps.TimeStretch.Key: number(1),
		LayerProps.AutoOrient.Key:  number(0),
		LayerProps.StartTime.Key:   number(0),
		LayerProps.BlendMode.Key:   number(float64(BlendModeNormal)),
		LayerProps.Transform.Key:   NewTransform(transform.withCenter(c.Center())),
	}
	if ip, ok := c.InPoint(); ok {
		src[LayerProps.InPoint.Key] = number(ip)
	}
	if op, ok := c.OutPoint(); ok {
		src[LayerProps.OutPoint.Key] = number(op)
	}
	return src
}

// AddTextLayer inserts a new text layer at index. The layer is centered in
// the composition unless transform positions it.
func (c *Composition) AddTextLayer(name string, text TextOptions, transform TransformOptions, index int) *TextLayer {
	src := c.baseLayer(name, LayerTypeText, transform)
	src[TextProps.TextData.Key] = NewTextData(text)
	return c.addLayer(src, index, true).(*TextLayer)
}

// AddLottieLayer imports doc as a precomposition layer inserted at index.
// doc's assets are merged into the composition, reusing existing assets
// with the same content and renaming colliding ids, and its layers become a
// new precomposition asset unless an identical one already exists. doc is
// not modified.
func (c *Composition) AddLottieLayer(name string, doc Object, transform TransformOptions, index int) (*PrecompositionLayer, error) {
	if _, ok := doc[CompositionProps.Layers.Key].([]any); !ok {
		return nil, errors.WithStack(ErrMissingLayers)
	}
	doc, err := structural.CloneObject(doc, c.opts.maxDepth)
	if err != nil {
		return nil, errors.Errorf("clone imported document: %w", err)
	}

	if transform.Width == nil {
		transform.Width = Float(floatOr(doc[CompositionProps.Width.Key], 100))
	}
	if transform.Height == nil {
		transform.Height = Float(floatOr(doc[CompositionProps.Height.Key], 100))
	}

	incoming := sliceValue(doc[CompositionProps.Assets.Key])
	layers := sliceValue(doc[CompositionProps.Layers.Key])
	if err := c.mergeAssets(incoming, layers); err != nil {
		return nil, err
	}

	comp := Object{
		AssetProps.ID.Key:     c.uniqueAssetID("comp", nil),
		AssetProps.Layers.Key: layers,
	}
	match, err := c.matchingAsset(comp, incoming, len(c.assets))
	if err != nil {
		return nil, errors.Errorf("match imported layers: %w", err)
	}
	if match != nil {
		c.log.Debug("reusing precomposition asset", "asset", match.ID())
	} else {
		c.addAsset(comp, false)
	}
	refID := stringValue(comp[AssetProps.ID.Key])
	if match != nil {
		refID = match.ID()
	}

	src := c.baseLayer(c.uniqueLayerName(name), LayerTypePrecomposition, transform)
	src[LayerProps.RefID.Key] = refID
	src[LayerProps.Width.Key] = number(*transform.Width)
	src[LayerProps.Height.Key] = number(*transform.Height)

	l := c.addLayer(src, index, false).(*PrecompositionLayer)
	c.notify()
	return l, nil
}

// LayerAtPt returns the first visible layer whose position lies within
// radius of (x, y), or nil. Hidden and fully transparent layers are
// skipped. It does not look at pixels; see HitTestLayerAtPt.
func (c *Composition) LayerAtPt(x, y, radius float64) Layer {
	for _, l := range c.layers {
		if l.IsHidden() {
			continue
		}
		if l.Opacity() == 0 {
			continue
		}
		p := l.Position()
		if math.Hypot(x-p.X, y-p.Y) <= radius {
			return l
		}
	}
	return nil
}

// HitTestLayerAtPt asks the renderer for the top most layer with visible
// pixels near (x, y), falling back to LayerAtPt. The composition may change
// while the renderer answers; an index that no longer exists yields nil.
func (c *Composition) HitTestLayerAtPt(ctx context.Context, x, y, radius float64) (Layer, error) {
	i, err := c.acc.HitTestLayerAtPt(ctx, x, y, radius)
	if err != nil {
		return nil, errors.Errorf("hit test: %w", err)
	}
	return c.LayerAt(i), nil
}

func insertAt[T any](s []T, i int, v T) []T {
	s = append(s, v)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func removeAt[T any](s []T, i int) []T {
	return append(s[:i:i], s[i+1:]...)
}
