package lottie

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lottiebuilder/lottie-go/lottiejson"
)

const starRectJSON = `{
	"v": "5.7.4",
	"fr": 30,
	"ip": 0,
	"op": 60,
	"w": 200,
	"h": 100,
	"nm": "Stars",
	"ddd": 0,
	"x-tool": {"build": 12.50},
	"assets": [
		{"id": "img_0", "w": 10, "h": 10, "u": "images/", "p": "star.png", "e": 0},
		{"id": "comp_0", "layers": [
			{"ty": 2, "nm": "Inner", "ind": 1, "refId": "img_0", "ks": {}}
		]}
	],
	"layers": [
		{"ty": 4, "nm": "MyStar", "ind": 0, "ip": 0, "op": 60, "st": 0, "sr": 1,
		 "ks": {
			"o": {"a": 0, "k": 100, "ix": 11},
			"r": {"a": 0, "k": 0, "ix": 10},
			"p": {"a": 0, "k": [50, 50, 0], "ix": 2},
			"a": {"a": 0, "k": [0, 0, 0], "ix": 1},
			"s": {"a": 0, "k": [100, 100, 100], "ix": 6}
		 },
		 "shapes": [
			{"ty": "gr", "nm": "Star 1", "it": [
				{"ty": "sr", "nm": "Polystar"},
				{"ty": "fl", "nm": "Fill 1", "c": {"a": 0, "k": [1, 0, 0, 1]}}
			]},
			{"ty": "fl", "nm": "Other Fill", "c": {"a": 0, "k": [0, 0, 1, 1]}}
		 ],
		 "x-custom": [1, 2, 3]},
		{"ty": 1, "nm": "MyRect", "ind": 1, "sc": "#ff0000", "sw": 40, "sh": 20,
		 "ks": {"p": {"a": 0, "k": [150, 50, 0]}}},
		{"ty": 0, "nm": "Precomp", "ind": 2, "refId": "comp_0", "w": 20, "h": 20, "parent": 0,
		 "ks": {"p": {"a": 0, "k": [100, 80]}}}
	],
	"markers": [{"cm": "intro", "tm": 0, "dr": 10}],
	"meta": {"g": "LottieFiles AE", "a": "someone"}
}`

func mustDecode(t *testing.T, s string) Object {
	t.Helper()
	doc, err := lottiejson.DecodeObject([]byte(s))
	require.NoError(t, err)
	return doc
}

func mustParse(t *testing.T, s string, opts ...Option) *Composition {
	t.Helper()
	c, err := Parse([]byte(s), append([]Option{WithIDGenerator(SequenceGenerator())}, opts...)...)
	require.NoError(t, err)
	return c
}

// countChanges subscribes to c and returns a pointer to the number of
// change notifications seen so far.
func countChanges(c *Composition) *int {
	n := new(int)
	c.OnSourceChange(func() { *n++ })
	return n
}

func layerNames(c *Composition) []string {
	var out []string
	for _, l := range c.Layers() {
		out = append(out, l.Name())
	}
	return out
}

func assetIDs(c *Composition) []string {
	var out []string
	for _, a := range c.Assets() {
		out = append(out, a.ID())
	}
	return out
}

// requireIndexInvariant checks that typed views and the document agree and
// that every "ind" equals its position.
func requireIndexInvariant(t *testing.T, c *Composition) {
	t.Helper()
	raw := sliceValue(c.Document()["layers"])
	require.Len(t, raw, len(c.Layers()))
	for i, l := range c.Layers() {
		require.Equal(t, i, l.Index(), "layer %q", l.Name())
		require.True(t, sameObject(raw[i].(Object), l.Source()), "layer %q is not backed by the document", l.Name())
	}
}

func sameObject(a, b Object) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

type call struct {
	Method string
	Args   []any
}

// recordingAccelerator records every call it receives.
type recordingAccelerator struct {
	UnimplementedAccelerator
	caps  Capability
	calls []call
	hit   int
	size  Size
}

func (r *recordingAccelerator) Capabilities() Capability { return r.caps }

func (r *recordingAccelerator) record(m string, args ...any) {
	r.calls = append(r.calls, call{Method: m, Args: args})
}

func (r *recordingAccelerator) SetColor(k, hex string) { r.record("SetColor", k, hex) }
func (r *recordingAccelerator) SetFloat(k string, v float64) { r.record("SetFloat", k, v) }
func (r *recordingAccelerator) SetPoint(k string, x, y float64) {
	r.record("SetPoint", k, x, y)
}
func (r *recordingAccelerator) SetSize(k string, w, h float64) { r.record("SetSize", k, w, h) }
func (r *recordingAccelerator) SetLayerHighlight(i int, on bool, hex string, w float64) {
	r.record("SetLayerHighlight", i, on, hex, w)
}
func (r *recordingAccelerator) SetLayerHidden(i int, hidden bool) {
	r.record("SetLayerHidden", i, hidden)
}
func (r *recordingAccelerator) SetLayerText(i int, text string) { r.record("SetLayerText", i, text) }

func (r *recordingAccelerator) HitTestLayerAtPt(context.Context, float64, float64, float64) (int, error) {
	r.record("HitTestLayerAtPt")
	return r.hit, nil
}

func (r *recordingAccelerator) CompositionSize(context.Context) (Size, error) {
	r.record("CompositionSize")
	return r.size, nil
}
