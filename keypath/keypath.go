package keypath

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Wildcard matches any number of nested containers in a key-path.
const Wildcard = "**"

// Transform property names understood by renderers.
const (
	Position = "Position"
	Scale    = "Scale"
	Rotation = "Rotation"
	Opacity  = "Opacity"
	Color    = "Color"
)

// KeyPath addresses an animatable property inside a rendered composition, for
// example "Star.Transform.Position" or "Star.**.Fill 1.Color".
type KeyPath struct {
	// Layer is the name of the layer the path starts at.
	Layer string
	// Segments are the remaining path components, wildcards included.
	Segments []string
}

func (k KeyPath) String() string {
	if k.Layer == "" {
		return ""
	}
	if len(k.Segments) == 0 {
		return k.Layer
	}
	return k.Layer + "." + strings.Join(k.Segments, ".")
}

// Transform returns the key-path of a layer transform property.
func Transform(layer, property string) KeyPath {
	return KeyPath{Layer: layer, Segments: []string{"Transform", property}}
}

// ShapeColor returns the key-path of the color of a shape nested anywhere below a layer.
func ShapeColor(layer, shape string) KeyPath {
	return KeyPath{Layer: layer, Segments: []string{Wildcard, shape, Color}}
}

// Parse splits a dotted key-path. Empty components are rejected.
func Parse(s string) (KeyPath, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return KeyPath{}, errors.New("key-path: empty")
	}
	parts := strings.Split(s, ".")
	for _, p := range parts {
		if p == "" {
			return KeyPath{}, errors.Errorf("key-path: empty component in %q", s)
		}
	}
	if parts[0] == Wildcard {
		return KeyPath{}, errors.Errorf("key-path: %q must start with a layer name", s)
	}
	return KeyPath{Layer: parts[0], Segments: parts[1:]}, nil
}

// IsTransform reports whether the key-path addresses a transform property and returns it.
func (k KeyPath) IsTransform() (string, bool) {
	if len(k.Segments) != 2 || k.Segments[0] != "Transform" {
		return "", false
	}
	return k.Segments[1], true
}

// HasWildcard reports whether any segment is a wildcard.
func (k KeyPath) HasWildcard() bool {
	for _, s := range k.Segments {
		if s == Wildcard {
			return true
		}
	}
	return false
}
