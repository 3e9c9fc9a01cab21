package lottie

import (
	"context"
	"log/slog"

	"gitlab.com/tozd/go/errors"

	"github.com/lottiebuilder/lottie-go/lottiejson"
	"github.com/lottiebuilder/lottie-go/structural"
)

type options struct {
	acc         Accelerator
	cloneSource bool
	ids         IDGenerator
	logger      *slog.Logger
	maxDepth    int
}

// Option configures a Composition.
type Option func(*options)

// WithAccelerator attaches a renderer accelerator. Without one every edit
// falls back to a change notification.
func WithAccelerator(acc Accelerator) Option {
	return func(o *options) { o.acc = acc }
}

// WithCloneSource controls whether New deep-copies the document it is given.
// It defaults to true, leaving the caller's document untouched.
func WithCloneSource(clone bool) Option {
	return func(o *options) { o.cloneSource = clone }
}

// WithIDGenerator sets the source of unique name and id suffixes. It
// defaults to UUIDGenerator.
func WithIDGenerator(ids IDGenerator) Option {
	return func(o *options) { o.ids = ids }
}

// WithLogger sets the logger merge and removal decisions are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMaxDepth bounds document recursion for clone and compare.
func WithMaxDepth(depth int) Option {
	return func(o *options) { o.maxDepth = depth }
}

func newOptions(opts []Option) options {
	o := options{
		cloneSource: true,
		ids:         UUIDGenerator,
		maxDepth:    structural.DefaultMaxDepth,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.ids == nil {
		o.ids = UUIDGenerator
	}
	return o
}

// Composition is an editable view of one Lottie document. It wraps the root
// object and keeps typed views of its layers and assets in step with the
// underlying arrays.
//
// A Composition is not safe for concurrent use.
type Composition struct {
	Node

	opts options
	log  *slog.Logger
	acc  *FallbackAccelerator

	layers      []Layer
	layerByName map[string]Layer
	assets      []*Asset
	assetByID   map[string]*Asset
	markers     []*Marker
	meta        *Meta

	listeners []*listener
}

type listener struct {
	fn func()
}

// New wraps doc. Unless WithCloneSource(false) is given, doc is deep-copied
// first and never modified.
func New(doc Object, opts ...Option) (*Composition, error) {
	o := newOptions(opts)
	if doc == nil {
		doc = Object{}
	}
	if o.cloneSource {
		cloned, err := structural.CloneObject(doc, o.maxDepth)
		if err != nil {
			return nil, errors.Errorf("clone document: %w", err)
		}
		doc = cloned
	}

	c := &Composition{
		Node: newNode(doc, compositionPropMap),
		opts: o,
		log:  o.logger,
	}
	c.acc = NewFallbackAccelerator(c, c.notify, o.acc)
	c.rebuild()
	return c, nil
}

// Parse decodes a Lottie JSON document and wraps it.
func Parse(b []byte, opts ...Option) (*Composition, error) {
	doc, err := lottiejson.DecodeObject(b)
	if err != nil {
		return nil, errors.Errorf("parse composition: %w", err)
	}
	return New(doc, append(opts, WithCloneSource(false))...)
}

// rebuild recreates every typed view from the document.
func (c *Composition) rebuild() {
	for _, p := range []Prop{CompositionProps.Layers, CompositionProps.Assets} {
		switch v := c.source[p.Key].(type) {
		case Object:
			c.source[p.Key] = []any{v}
		case []any:
			c.source[p.Key] = objectsOnly(v)
		}
	}

	c.layers = mapProp(&c.Node, CompositionProps.Layers, func(s Object) Layer { return newLayer(c, s) })
	c.assets = mapProp(&c.Node, CompositionProps.Assets, NewAsset)
	c.markers = mapProp(&c.Node, CompositionProps.Markers, NewMarker)
	c.meta = nil
	if metas := mapProp(&c.Node, CompositionProps.Meta, NewMeta); len(metas) > 0 {
		c.meta = metas[0]
	}

	c.bindChild(CompositionProps.Layers, func(readable bool) any {
		out := make([]any, len(c.layers))
		for i, l := range c.layers {
			out[i] = l.base().object(readable)
		}
		return out
	})
	c.bindChild(CompositionProps.Assets, func(readable bool) any {
		out := make([]any, len(c.assets))
		for i, a := range c.assets {
			out[i] = a.object(readable)
		}
		return out
	})
	c.bindChild(CompositionProps.Markers, func(readable bool) any {
		if _, single := c.Value(CompositionProps.Markers).(Object); single && len(c.markers) == 1 {
			return c.markers[0].object(readable)
		}
		out := make([]any, len(c.markers))
		for i, m := range c.markers {
			out[i] = m.object(readable)
		}
		return out
	})
	c.bindChild(CompositionProps.Meta, func(readable bool) any {
		if c.meta == nil {
			return c.Value(CompositionProps.Meta)
		}
		if arr, ok := c.Value(CompositionProps.Meta).([]any); ok && len(arr) > 0 {
			return []any{c.meta.object(readable)}
		}
		return c.meta.object(readable)
	})

	c.rebuildLayerLookup()
	c.rebuildAssetLookup()
}

// objectsOnly drops the entries of raw that are not objects, so positions in
// the typed lists and in the document line up.
func objectsOnly(raw []any) []any {
	for i, item := range raw {
		if obj, ok := item.(Object); ok && obj != nil {
			continue
		}
		out := append(make([]any, 0, len(raw)-1), raw[:i]...)
		for _, rest := range raw[i+1:] {
			if obj, ok := rest.(Object); ok && obj != nil {
				out = append(out, rest)
			}
		}
		return out
	}
	return raw
}

func (c *Composition) rebuildLayerLookup() {
	c.layerByName = make(map[string]Layer, len(c.layers))
	for _, l := range c.layers {
		name := l.Name()
		if name == "" {
			continue
		}
		if _, taken := c.layerByName[name]; !taken {
			c.layerByName[name] = l
		}
	}
}

func (c *Composition) rebuildAssetLookup() {
	c.assetByID = make(map[string]*Asset, len(c.assets))
	for _, a := range c.assets {
		id := a.ID()
		if id == "" {
			continue
		}
		if _, taken := c.assetByID[id]; !taken {
			c.assetByID[id] = a
		}
	}
}

func (c *Composition) sourceLayers() []any { return sliceValue(c.source[CompositionProps.Layers.Key]) }

func (c *Composition) setSourceLayers(layers []any) { c.source[CompositionProps.Layers.Key] = layers }

func (c *Composition) sourceAssets() []any { return sliceValue(c.source[CompositionProps.Assets.Key]) }

func (c *Composition) setSourceAssets(assets []any) { c.source[CompositionProps.Assets.Key] = assets }

// OnSourceChange registers fn to run after every committed change that a
// renderer cannot apply incrementally. The returned function unregisters it.
func (c *Composition) OnSourceChange(fn func()) (unsubscribe func()) {
	l := &listener{fn: fn}
	c.listeners = append(c.listeners, l)
	return func() {
		for i, other := range c.listeners {
			if other == l {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

func (c *Composition) notify() {
	for _, l := range append([]*listener(nil), c.listeners...) {
		l.fn()
	}
}

// Accelerator returns the accelerator edits are routed through.
func (c *Composition) Accelerator() *FallbackAccelerator { return c.acc }

// Document returns the live document. Changes to it bypass the typed views;
// call Reload afterwards.
func (c *Composition) Document() Object { return c.source }

// SetValue writes v under p's schema key. Writing one of the lists the
// composition wraps (layers, assets, markers, meta) replaces it wholesale and
// reloads, so earlier layer and asset values become stale.
func (c *Composition) SetValue(p Prop, v any) {
	c.Node.SetValue(p, v)
	if known, ok := c.props.ByKey(p.Key); ok && known.Wrapped {
		c.Reload()
	}
}

// Reload rebuilds every typed view from the document and notifies
// listeners. Layer and asset values obtained earlier become stale.
func (c *Composition) Reload() {
	c.rebuild()
	c.notify()
}

// Clone returns an independent composition over a deep copy of the
// document, sharing the accelerator, logger and id generator.
func (c *Composition) Clone() (*Composition, error) {
	return New(c.source,
		WithAccelerator(c.acc.Underlying()),
		WithCloneSource(true),
		WithIDGenerator(c.opts.ids),
		WithLogger(c.log),
		WithMaxDepth(c.opts.maxDepth),
	)
}

type exportOptions struct {
	pruneUnused bool
}

// ExportOption configures Export.
type ExportOption func(*exportOptions)

// WithPruneUnusedAssets also drops assets no layer references.
func WithPruneUnusedAssets() ExportOption {
	return func(o *exportOptions) { o.pruneUnused = true }
}

// Export returns a copy of the document with hidden layers removed, along
// with the assets only they used. The composition is not modified.
func (c *Composition) Export(opts ...ExportOption) (Object, error) {
	var o exportOptions
	for _, opt := range opts {
		opt(&o)
	}
	clone, err := New(c.source,
		WithCloneSource(true),
		WithIDGenerator(c.opts.ids),
		WithLogger(c.log),
		WithMaxDepth(c.opts.maxDepth),
	)
	if err != nil {
		return nil, errors.Errorf("export: %w", err)
	}
	clone.RemoveHiddenLayers()
	if o.pruneUnused {
		clone.PruneUnusedAssets()
	}
	return clone.Document(), nil
}

func (c *Composition) Name() string { return stringValue(c.Value(CompositionProps.Name)) }

func (c *Composition) SetName(name string) {
	if name == "" {
		c.SetValue(CompositionProps.Name, nil)
		return
	}
	c.SetValue(CompositionProps.Name, name)
}

func (c *Composition) Width() float64 { return floatOr(c.Value(CompositionProps.Width), 0) }

func (c *Composition) Height() float64 { return floatOr(c.Value(CompositionProps.Height), 0) }

// Center returns the middle of the composition.
func (c *Composition) Center() Point {
	return Point{X: c.Width() / 2, Y: c.Height() / 2}
}

// FrameRate returns "fr", or 0 when it is missing.
func (c *Composition) FrameRate() float64 { return floatOr(c.Value(CompositionProps.FrameRate), 0) }

func (c *Composition) SetFrameRate(fr float64) { c.SetValue(CompositionProps.FrameRate, number(fr)) }

// InPoint returns "ip" and whether it is set.
func (c *Composition) InPoint() (float64, bool) { return floatValue(c.Value(CompositionProps.InPoint)) }

func (c *Composition) SetInPoint(ip float64) { c.SetValue(CompositionProps.InPoint, number(ip)) }

// OutPoint returns "op" and whether it is set.
func (c *Composition) OutPoint() (float64, bool) {
	return floatValue(c.Value(CompositionProps.OutPoint))
}

func (c *Composition) SetOutPoint(op float64) { c.SetValue(CompositionProps.OutPoint, number(op)) }

// Version returns the bodymovin version "v".
func (c *Composition) Version() string { return stringValue(c.Value(CompositionProps.Version)) }

func (c *Composition) SetVersion(v string) {
	if v == "" {
		c.SetValue(CompositionProps.Version, nil)
		return
	}
	c.SetValue(CompositionProps.Version, v)
}

func (c *Composition) Is3D() bool { return truthy(c.Value(CompositionProps.Is3D)) }

func (c *Composition) SetIs3D(b bool) { c.SetValue(CompositionProps.Is3D, boolInt(b)) }

// Layers returns the layers in document order.
func (c *Composition) Layers() []Layer {
	return append([]Layer(nil), c.layers...)
}

// Assets returns the assets in document order.
func (c *Composition) Assets() []*Asset {
	return append([]*Asset(nil), c.assets...)
}

func (c *Composition) Markers() []*Marker {
	return append([]*Marker(nil), c.markers...)
}

// Meta returns the document metadata, or nil.
func (c *Composition) Meta() *Meta { return c.meta }

// CompositionSize asks the renderer for the composition size, falling back
// to the document's width and height.
func (c *Composition) CompositionSize(ctx context.Context) (Size, error) {
	return c.acc.CompositionSize(ctx)
}
