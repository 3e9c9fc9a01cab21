package lottie

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapability_Has(t *testing.T) {
	c := CanSetColor | CanSetPoint
	assert.True(t, c.Has(CanSetColor))
	assert.True(t, c.Has(CanSetColor|CanSetPoint))
	assert.False(t, c.Has(CanSetFloat))
	assert.False(t, c.Has(CanSetColor|CanSetFloat))
	assert.True(t, c.Has(0))
}

func TestFallbackAccelerator_ColorOnlyReloadsForFloat(t *testing.T) {
	acc := &recordingAccelerator{caps: CanSetColor}
	reloads := 0
	f := NewFallbackAccelerator(nil, func() { reloads++ }, acc)

	f.SetFloat("Star.Transform.Rotation", 45)
	assert.Equal(t, 1, reloads)
	assert.Empty(t, acc.calls)

	f.SetColor("Star.**.Fill 1.Color", "#ff0000")
	assert.Equal(t, 1, reloads)
	assert.Equal(t, []call{{Method: "SetColor", Args: []any{"Star.**.Fill 1.Color", "#ff0000"}}}, acc.calls)
}

func TestFallbackAccelerator_NoAccelerator(t *testing.T) {
	reloads := 0
	f := NewFallbackAccelerator(nil, func() { reloads++ }, nil)
	assert.Equal(t, Capability(0), f.Capabilities())
	assert.Nil(t, f.Underlying())

	f.SetColor("a", "#fff")
	f.SetFloat("a", 1)
	f.SetPoint("a", 1, 2)
	f.SetSize("a", 1, 2)
	f.SetLayerHidden(0, true)
	f.SetLayerText(0, "x")
	assert.Equal(t, 6, reloads)

	f.SetLayerHighlight(0, true, HighlightColor, HighlightWeight)
	assert.Equal(t, 6, reloads, "highlight never reloads")

	i, err := f.HitTestLayerAtPt(context.Background(), 0, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, -1, i)
	size, err := f.CompositionSize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Size{}, size)
	assert.Equal(t, 6, reloads)
}

func TestFallbackAccelerator_NilReload(t *testing.T) {
	f := NewFallbackAccelerator(nil, nil, UnimplementedAccelerator{})
	assert.NotPanics(t, func() { f.SetFloat("a", 1) })
}

func TestLayerEdits_UseAccelerator(t *testing.T) {
	acc := &recordingAccelerator{caps: CanSetColor | CanSetFloat | CanSetPoint | CanSetSize | CanSetLayerHidden | CanSetLayerText | CanSetLayerHighlight}
	c := mustParse(t, starRectJSON, WithAccelerator(acc))
	changes := countChanges(c)

	star := c.GetLayer("MyStar").(*ShapeLayer)
	star.SetPositionXY(10, 20)
	star.SetScale(50)
	star.SetRotation(90)
	star.SetOpacity(25)
	star.SetHidden(true)
	star.SetHighlighted(true)
	ok, err := star.SetShapeColor("Star 1", "#00ff00")
	require.NoError(t, err)
	require.True(t, ok)

	c.AddTextLayer("Caption", TextOptions{Text: "a"}, TransformOptions{}, 3)
	caption := c.GetLayer("Caption").(*TextLayer)
	before := *changes
	caption.SetText("b")

	assert.Equal(t, []call{
		{Method: "SetPoint", Args: []any{"MyStar.Transform.Position", 10.0, 20.0}},
		{Method: "SetSize", Args: []any{"MyStar.Transform.Scale", 50.0, 50.0}},
		{Method: "SetFloat", Args: []any{"MyStar.Transform.Rotation", 90.0}},
		{Method: "SetFloat", Args: []any{"MyStar.Transform.Opacity", 25.0}},
		{Method: "SetLayerHidden", Args: []any{0, true}},
		{Method: "SetLayerHighlight", Args: []any{0, true, HighlightColor, float64(HighlightWeight)}},
		{Method: "SetColor", Args: []any{"MyStar.**.Star 1.Color", "#00ff00"}},
		{Method: "SetLayerText", Args: []any{3, "b"}},
	}, acc.calls)
	assert.Equal(t, before, *changes, "accelerated edits do not notify")

	assert.Equal(t, Point{X: 10, Y: 20}, star.Position())
	assert.Equal(t, Size{Width: 50, Height: 50}, star.Scale())
	assert.Equal(t, 90.0, star.Rotation())
	assert.Equal(t, 25.0, star.Opacity())
	assert.True(t, star.IsHidden())
	assert.Equal(t, "b", caption.Text())
}

func TestLayerEdits_FallBackToChangeNotification(t *testing.T) {
	c := mustParse(t, starRectJSON)
	changes := countChanges(c)

	rect := c.GetLayer("MyRect")
	rect.SetPositionXY(1, 2)
	rect.SetRotation(3)
	rect.SetHighlighted(true)
	assert.Equal(t, 2, *changes)
}

func TestHitTest_FallsBackToLayerAtPt(t *testing.T) {
	c := mustParse(t, starRectJSON)

	l, err := c.HitTestLayerAtPt(context.Background(), 152, 49, DefaultHitRadius)
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Equal(t, "MyRect", l.Name())

	l, err = c.HitTestLayerAtPt(context.Background(), 0, 0, DefaultHitRadius)
	require.NoError(t, err)
	assert.Nil(t, l)
}

func TestHitTest_RevalidatesRendererIndex(t *testing.T) {
	acc := &recordingAccelerator{caps: CanHitTest, hit: 2}
	c := mustParse(t, starRectJSON, WithAccelerator(acc))

	l, err := c.HitTestLayerAtPt(context.Background(), 0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "Precomp", l.Name())

	c.RemoveLayer(c.GetLayer("Precomp"), false)
	l, err = c.HitTestLayerAtPt(context.Background(), 0, 0, 1)
	require.NoError(t, err)
	assert.Nil(t, l, "stale index resolves to no layer")

	acc.hit = -1
	l, err = c.HitTestLayerAtPt(context.Background(), 0, 0, 1)
	require.NoError(t, err)
	assert.Nil(t, l)
}

func TestLayerAtPt_SkipsHiddenAndTransparent(t *testing.T) {
	c := mustParse(t, starRectJSON)
	assert.Equal(t, "MyStar", c.LayerAtPt(50, 50, 1).Name())

	c.GetLayer("MyStar").Source()["hd"] = true
	assert.Nil(t, c.LayerAtPt(50, 50, 1))

	c.GetLayer("MyRect").SetOpacity(0)
	assert.Nil(t, c.LayerAtPt(150, 50, 1))
	assert.Equal(t, "Precomp", c.LayerAtPt(100, 85, 5).Name())
}

func TestCompositionSize(t *testing.T) {
	c := mustParse(t, starRectJSON)
	size, err := c.CompositionSize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Size{Width: 200, Height: 100}, size)

	acc := &recordingAccelerator{caps: CanCompositionSize, size: Size{Width: 400, Height: 200}}
	c = mustParse(t, starRectJSON, WithAccelerator(acc))
	size, err = c.CompositionSize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Size{Width: 400, Height: 200}, size)
}
