package lottie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewportPointToCompPoint(t *testing.T) {
	comp := Size{Width: 200, Height: 100}
	tests := []struct {
		name     string
		x, y     float64
		viewport Size
		mode     ResizeMode
		want     Point
	}{
		{name: "contain wide view", x: 200, y: 50, viewport: Size{Width: 400, Height: 100}, mode: ResizeContain, want: Point{X: 100, Y: 50}},
		{name: "contain tall view", x: 50, y: 100, viewport: Size{Width: 100, Height: 200}, mode: ResizeContain, want: Point{X: 100, Y: 50}},
		{name: "cover wide view", x: 200, y: 50, viewport: Size{Width: 400, Height: 100}, mode: ResizeCover, want: Point{X: 100, Y: 50}},
		{name: "cover tall view", x: 50, y: 100, viewport: Size{Width: 100, Height: 200}, mode: ResizeCover, want: Point{X: 100, Y: 50}},
		{name: "center", x: 200, y: 50, viewport: Size{Width: 400, Height: 100}, mode: ResizeCenter, want: Point{X: 100, Y: 50}},
		{name: "same size", x: 10, y: 20, viewport: comp, mode: ResizeContain, want: Point{X: 10, Y: 20}},
		{name: "unknown mode", x: 10, y: 20, viewport: Size{Width: 400, Height: 100}, mode: "stretch", want: Point{X: 10, Y: 20}},
		{name: "empty viewport", x: 10, y: 20, viewport: Size{}, mode: ResizeContain, want: Point{X: 10, Y: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ViewportPointToCompPoint(tt.x, tt.y, tt.viewport, comp, tt.mode)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}
