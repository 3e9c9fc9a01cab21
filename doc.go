// Package lottie provides an editable object model over Lottie (bodymovin)
// animation documents.
//
// A Composition wraps the decoded root object of a document. Layers, assets,
// markers and metadata are exposed as typed views that read and write the
// underlying JSON in place, so keys the model does not know about survive
// every edit unchanged.
//
// # Quick Start
//
//	comp, err := lottie.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	star := comp.GetLayer("Star")
//	star.SetPositionXY(120, 80)
//	comp.RemoveHiddenLayers()
//
//	out, err := json.Marshal(comp)
//
// # Property Names
//
// Documents use compact schema keys ("ty", "ks", "nm"). Each entity kind has a
// PropertyMap pairing those keys with logical names ("type", "transform",
// "name"). Typed accessors are declared against these tables; Readable
// returns a copy of a fragment keyed by logical names for inspection.
//
// # Importing Compositions
//
// AddLottieLayer imports another document as a precomposition layer. Its
// assets are merged: an incoming asset whose id collides with an existing
// one is compared by content, reused when an identical asset exists and
// renamed otherwise, with every refId rewritten to match.
//
// # Renderers
//
// Edits that a live renderer can apply without reloading the document go
// through an Accelerator. Operations the renderer does not support fall back
// to a source change notification (see Composition.OnSourceChange), so
// callers never check capabilities themselves.
//
// # Concurrency
//
// A Composition and the views it hands out are not safe for concurrent use.
// Mutations run to completion synchronously; only hit testing and size
// queries may wait on the renderer, and their results must be checked
// against the current layer list.
//
// # Subpackages
//
//   - structural: depth-bounded deep clone and comparison of JSON trees
//   - lottiejson: lossless decoding and deterministic encoding
//   - keypath: renderer key-path construction and parsing
//   - query: layer filter expressions
package lottie
