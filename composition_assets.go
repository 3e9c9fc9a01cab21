package lottie

import (
	"gitlab.com/tozd/go/errors"

	"github.com/lottiebuilder/lottie-go/structural"
)

// GetAsset returns the first asset with the given id, or nil.
func (c *Composition) GetAsset(id string) *Asset {
	return c.assetByID[id]
}

// AddAsset appends source to the asset list and returns its typed view.
// source becomes part of the document and is not copied.
func (c *Composition) AddAsset(source Object) *Asset {
	return c.addAsset(source, true)
}

func (c *Composition) addAsset(source Object, notify bool) *Asset {
	if source == nil {
		source = Object{}
	}
	c.setSourceAssets(append(c.sourceAssets(), any(source)))
	a := NewAsset(source)
	c.assets = append(c.assets, a)
	c.rebuildAssetLookup()
	if notify {
		c.notify()
	}
	return a
}

// RemoveAsset removes the asset with the given id, then every asset that
// was only referenced from its nested layers. It returns false if no asset
// has that id.
func (c *Composition) RemoveAsset(id string) bool {
	return c.removeAsset(id, true)
}

func (c *Composition) removeAsset(id string, notify bool) bool {
	a := c.assetByID[id]
	if a == nil {
		return false
	}
	i := c.assetPosition(a)
	c.setSourceAssets(removeAt(c.sourceAssets(), i))
	c.assets = removeAt(c.assets, i)
	c.rebuildAssetLookup()

	for _, l := range a.Layers() {
		ref := stringValue(l[LayerProps.RefID.Key])
		if ref != "" && c.AssetRefCount(ref) == 0 {
			c.log.Debug("removing unused asset", "asset", ref, "parentAsset", id)
			c.removeAsset(ref, false)
		}
	}

	if notify {
		c.notify()
	}
	return true
}

func (c *Composition) assetPosition(a *Asset) int {
	for i, other := range c.assets {
		if other == a {
			return i
		}
	}
	return -1
}

// AssetRefCount counts the layers referencing id, both top level layers and
// layers nested in assets.
func (c *Composition) AssetRefCount(id string) int {
	count := 0
	for _, l := range c.layers {
		if l.RefID() == id {
			count++
		}
	}
	for _, a := range c.assets {
		for _, l := range a.Layers() {
			if stringValue(l[LayerProps.RefID.Key]) == id {
				count++
			}
		}
	}
	return count
}

// PruneUnusedAssets removes every asset no layer references, repeating until
// none is left, and returns the number removed.
func (c *Composition) PruneUnusedAssets() int {
	removed := 0
	for {
		var unused []string
		for _, a := range c.assets {
			if id := a.ID(); id != "" && c.AssetRefCount(id) == 0 {
				unused = append(unused, id)
			}
		}
		if len(unused) == 0 {
			break
		}
		for _, id := range unused {
			before := len(c.assets)
			if c.removeAsset(id, false) {
				removed += before - len(c.assets)
			}
		}
	}
	if removed > 0 {
		c.notify()
	}
	return removed
}

// uniqueAssetID returns prefix with a generated suffix that neither an asset
// nor reserved uses.
func (c *Composition) uniqueAssetID(prefix string, reserved map[string]bool) string {
	for {
		id := prefix + "_" + c.opts.ids.NewID()
		if _, taken := c.assetByID[id]; !taken && !reserved[id] {
			return id
		}
	}
}

// mergeAssets adds the incoming assets of an imported document. An incoming
// asset whose id is free is added as is. On an id collision it is compared
// with the assets that existed before the import: a structural match is
// reused and the incoming copy dropped, otherwise the asset is added under a
// fresh id. Either way references to the old id in layers and in incoming
// assets' nested layers are rewritten.
func (c *Composition) mergeAssets(incoming, layers []any) error {
	stop := len(c.assets)
	reserved := map[string]bool{}
	for _, raw := range incoming {
		if a := objectValue(raw); a != nil {
			reserved[stringValue(a[AssetProps.ID.Key])] = true
		}
	}

	refs := newRefRemapper(layers)
	for _, raw := range incoming {
		refs.add(sliceValue(objectValue(raw)[AssetProps.Layers.Key]))
	}

	for _, raw := range incoming {
		a := objectValue(raw)
		if a == nil {
			continue
		}
		id := stringValue(a[AssetProps.ID.Key])
		add := true
		if _, taken := c.assetByID[id]; taken {
			match, err := c.matchingAsset(a, incoming, stop)
			if err != nil {
				return errors.Errorf("merge asset %q: %w", id, err)
			}
			newID := ""
			if match != nil {
				add = false
				newID = match.ID()
				c.log.Debug("reusing asset", "incoming", id, "asset", newID)
			} else {
				newID = c.uniqueAssetID(id, reserved)
				reserved[newID] = true
				c.log.Debug("renaming colliding asset", "incoming", id, "asset", newID)
			}
			if newID != id {
				a[AssetProps.ID.Key] = newID
				refs.remap(id, newID)
			}
		}
		if add {
			c.addAsset(a, false)
		}
	}
	return nil
}

// matchingAsset returns the first of the first stop assets structurally
// equal to a, or nil.
func (c *Composition) matchingAsset(a Object, incoming []any, stop int) (*Asset, error) {
	cmp := c.assetComparer(incoming)
	for _, existing := range c.assets[:min(stop, len(c.assets))] {
		eq, err := structural.Equal(a, existing.Source(), cmp, c.opts.maxDepth)
		if err != nil {
			return nil, err
		}
		if eq {
			return existing, nil
		}
	}
	return nil, nil
}

// assetComparer compares assets by content. An asset's own id is ignored.
// Differing refIds are equal when the incoming asset they point to matches
// the existing asset they point to; an unresolvable reference never matches.
func (c *Composition) assetComparer(incoming []any) structural.KeyComparer {
	return c.boundedAssetComparer(incoming, c.opts.maxDepth)
}

// boundedAssetComparer compares referenced assets with what is left of
// budget, so reference cycles end in structural.ErrMaxDepth.
func (c *Composition) boundedAssetComparer(incoming []any, budget int) structural.KeyComparer {
	return func(key string, depth int, a, b map[string]any) (structural.Verdict, error) {
		if depth == 0 {
			if key == AssetProps.ID.Key {
				return structural.Same, nil
			}
			return structural.Recurse, nil
		}
		if key != LayerProps.RefID.Key {
			return structural.Recurse, nil
		}
		inRef := stringValue(a[key])
		exRef := stringValue(b[key])
		if inRef == "" || inRef == exRef {
			return structural.Recurse, nil
		}

		inAsset := findAsset(incoming, inRef)
		exAsset := c.GetAsset(exRef)
		if inAsset == nil || exAsset == nil {
			return structural.Differ, nil
		}
		remaining := budget - depth
		eq, err := structural.Equal(inAsset, exAsset.Source(), c.boundedAssetComparer(incoming, remaining), remaining)
		if err != nil {
			return structural.Differ, err
		}
		if eq {
			return structural.Same, nil
		}
		return structural.Differ, nil
	}
}

func findAsset(assets []any, id string) Object {
	for _, raw := range assets {
		a := objectValue(raw)
		if a != nil && stringValue(a[AssetProps.ID.Key]) == id {
			return a
		}
	}
	return nil
}

// refRemapper rewrites layer refIds during a merge. Each layer is rewritten
// at most once, so a reference already redirected to its final asset is not
// picked up again when a later asset is renamed away from that id.
type refRemapper struct {
	layers []Object
	done   []bool
}

func newRefRemapper(layers []any) *refRemapper {
	r := &refRemapper{}
	r.add(layers)
	return r
}

func (r *refRemapper) add(layers []any) {
	for _, raw := range layers {
		if l := objectValue(raw); l != nil {
			r.layers = append(r.layers, l)
			r.done = append(r.done, false)
		}
	}
}

func (r *refRemapper) remap(from, to string) {
	for i, l := range r.layers {
		if !r.done[i] && stringValue(l[LayerProps.RefID.Key]) == from {
			l[LayerProps.RefID.Key] = to
			r.done[i] = true
		}
	}
}
