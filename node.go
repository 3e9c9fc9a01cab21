package lottie

import (
	"github.com/lottiebuilder/lottie-go/lottiejson"
)

// Object is a JSON object fragment of a Lottie document.
type Object = map[string]any

// Prop describes one property of a model entity: the logical name callers
// use and the compact schema key stored in the document.
type Prop struct {
	// Name is the logical, human readable property name.
	Name string
	// Key is the schema key the value is stored under.
	Key string
	// Wrapped marks properties whose value is materialized as typed child
	// entities (layers, assets, markers, meta) instead of a raw value.
	Wrapped bool
}

// PropertyMap is the property table of one entity kind, indexed both by
// logical name and by schema key. It is built once per kind and shared.
type PropertyMap struct {
	props  []Prop
	byName map[string]Prop
	byKey  map[string]Prop
}

// NewPropertyMap builds a property table. Later props win on duplicate names or keys.
func NewPropertyMap(props ...Prop) *PropertyMap {
	m := &PropertyMap{
		byName: make(map[string]Prop, len(props)),
		byKey:  make(map[string]Prop, len(props)),
	}
	for _, p := range props {
		m.props = append(m.props, p)
		m.byName[p.Name] = p
		m.byKey[p.Key] = p
	}
	return m
}

// Extend returns a new table holding m's props followed by props.
func (m *PropertyMap) Extend(props ...Prop) *PropertyMap {
	all := make([]Prop, 0, len(m.props)+len(props))
	all = append(all, m.props...)
	all = append(all, props...)
	return NewPropertyMap(all...)
}

// ByName looks a prop up by logical name.
func (m *PropertyMap) ByName(name string) (Prop, bool) {
	p, ok := m.byName[name]
	return p, ok
}

// ByKey looks a prop up by schema key.
func (m *PropertyMap) ByKey(key string) (Prop, bool) {
	p, ok := m.byKey[key]
	return p, ok
}

// Props returns the props in declaration order.
func (m *PropertyMap) Props() []Prop {
	out := make([]Prop, len(m.props))
	copy(out, m.props)
	return out
}

// Node wraps exactly one document fragment. It never copies the fragment:
// every write goes straight into the wrapped object.
type Node struct {
	props    *PropertyMap
	source   Object
	children map[string]func(readable bool) any
}

func newNode(source Object, props *PropertyMap) Node {
	if source == nil {
		source = Object{}
	}
	return Node{props: props, source: source}
}

// Source returns the wrapped fragment.
func (n *Node) Source() Object {
	return n.source
}

// PropertyMap returns the property table of the node's kind.
func (n *Node) PropertyMap() *PropertyMap {
	return n.props
}

// Value returns the raw value stored under p's schema key, or nil.
func (n *Node) Value(p Prop) any {
	return n.source[p.Key]
}

// SetValue writes v under p's schema key. A nil v deletes the key so the
// document never holds explicit nulls for unset properties.
func (n *Node) SetValue(p Prop, v any) {
	if v == nil {
		delete(n.source, p.Key)
		return
	}
	n.source[p.Key] = v
}

// AdditionalProps returns the fragment's keys that the node's property table
// does not know about, or nil when there are none.
func (n *Node) AdditionalProps() Object {
	var out Object
	for k, v := range n.source {
		if _, ok := n.props.ByKey(k); ok {
			continue
		}
		if out == nil {
			out = Object{}
		}
		out[k] = v
	}
	return out
}

// bindChild registers the live view used when serializing a wrapped prop.
func (n *Node) bindChild(p Prop, view func(readable bool) any) {
	if n.children == nil {
		n.children = map[string]func(bool) any{}
	}
	n.children[p.Key] = view
}

// object rebuilds the fragment: mapped keys come from the live wrapped view
// when there is one, unmapped keys are copied through untouched. With
// readable set, mapped keys are emitted under their logical names.
func (n *Node) object(readable bool) Object {
	out := make(Object, len(n.source))
	for k, v := range n.source {
		p, ok := n.props.ByKey(k)
		if !ok {
			out[k] = v
			continue
		}
		key := k
		if readable {
			key = p.Name
		}
		if view, bound := n.children[k]; p.Wrapped && bound {
			out[key] = view(readable)
			continue
		}
		out[key] = v
	}
	return out
}

// Readable returns a copy of the fragment keyed by logical property names.
// Unknown keys keep their schema names.
func (n *Node) Readable() Object {
	return n.object(true)
}

// MarshalJSON encodes the fragment with its schema keys.
func (n *Node) MarshalJSON() ([]byte, error) {
	return lottiejson.Marshal(n.object(false))
}

// mapProp materializes a wrapped prop. An absent value yields nil, a single
// object yields one element, and an array yields one element per object
// entry.
func mapProp[T any](n *Node, p Prop, mapper func(Object) T) []T {
	var raw []any
	switch v := n.Value(p).(type) {
	case nil:
		return nil
	case Object:
		raw = []any{v}
	case []any:
		raw = v
	default:
		return nil
	}
	if len(raw) == 0 {
		return nil
	}
	out := make([]T, 0, len(raw))
	for _, item := range raw {
		obj, ok := item.(Object)
		if !ok {
			continue
		}
		out = append(out, mapper(obj))
	}
	return out
}
