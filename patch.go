package lottie

import (
	jsonpatch "github.com/evanphx/json-patch"
	"gitlab.com/tozd/go/errors"

	"github.com/lottiebuilder/lottie-go/lottiejson"
)

// ApplyPatch applies an RFC 6902 JSON patch to the document, rebuilds every
// typed view and notifies listeners once. Layer and asset values obtained
// earlier become stale. On error the composition is unchanged.
func (c *Composition) ApplyPatch(patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return errors.Errorf("decode patch: %w", err)
	}
	return c.replaceDocument(func(doc []byte) ([]byte, error) {
		return ops.Apply(doc)
	})
}

// ApplyMergePatch applies an RFC 7386 merge patch, like ApplyPatch.
func (c *Composition) ApplyMergePatch(patch []byte) error {
	return c.replaceDocument(func(doc []byte) ([]byte, error) {
		return jsonpatch.MergePatch(doc, patch)
	})
}

func (c *Composition) replaceDocument(apply func([]byte) ([]byte, error)) error {
	doc, err := lottiejson.Marshal(c.source)
	if err != nil {
		return errors.Errorf("encode document: %w", err)
	}
	out, err := apply(doc)
	if err != nil {
		return errors.Errorf("apply patch: %w", err)
	}
	patched, err := lottiejson.DecodeObject(out)
	if err != nil {
		return errors.Errorf("decode patched document: %w", err)
	}

	for k := range c.source {
		delete(c.source, k)
	}
	for k, v := range patched {
		c.source[k] = v
	}
	c.Reload()
	return nil
}

// Diff returns the RFC 7386 merge patch that turns c's document into
// other's.
func (c *Composition) Diff(other *Composition) ([]byte, error) {
	a, err := lottiejson.Marshal(c.source)
	if err != nil {
		return nil, errors.Errorf("encode document: %w", err)
	}
	b, err := lottiejson.Marshal(other.source)
	if err != nil {
		return nil, errors.Errorf("encode document: %w", err)
	}
	patch, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, errors.Errorf("create merge patch: %w", err)
	}
	return patch, nil
}

// EqualDocuments reports whether two compositions hold structurally equal
// documents.
func EqualDocuments(a, b *Composition) (bool, error) {
	ab, err := lottiejson.Marshal(a.source)
	if err != nil {
		return false, errors.Errorf("encode document: %w", err)
	}
	bb, err := lottiejson.Marshal(b.source)
	if err != nil {
		return false, errors.Errorf("encode document: %w", err)
	}
	return jsonpatch.Equal(ab, bb), nil
}
