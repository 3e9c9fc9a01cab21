package lottie

// ResizeMode is how a renderer fits a composition into its view.
type ResizeMode string

const (
	// ResizeContain scales the composition to fit inside the view.
	ResizeContain ResizeMode = "contain"
	// ResizeCover scales the composition to fill the view.
	ResizeCover ResizeMode = "cover"
	// ResizeCenter draws the composition unscaled in the middle of the view.
	ResizeCenter ResizeMode = "center"
)

// ViewportPointToCompPoint converts a point in view coordinates to
// composition coordinates. Unknown modes and empty sizes return the point
// unchanged.
func ViewportPointToCompPoint(x, y float64, viewport, comp Size, mode ResizeMode) Point {
	if viewport.Width <= 0 || viewport.Height <= 0 || comp.Width <= 0 || comp.Height <= 0 {
		return Point{X: x, Y: y}
	}
	viewAR := viewport.Width / viewport.Height
	compAR := comp.Width / comp.Height

	fitWidth := func() Point {
		scale := comp.Width / viewport.Width
		return Point{X: x * scale, Y: y*scale - (viewport.Height*scale-comp.Height)/2}
	}
	fitHeight := func() Point {
		scale := comp.Height / viewport.Height
		return Point{X: x*scale - (viewport.Width*scale-comp.Width)/2, Y: y * scale}
	}

	switch mode {
	case ResizeContain:
		if viewAR < compAR {
			return fitWidth()
		}
		return fitHeight()
	case ResizeCover:
		if viewAR < compAR {
			return fitHeight()
		}
		return fitWidth()
	case ResizeCenter:
		return Point{X: x + (comp.Width-viewport.Width)/2, Y: y + (comp.Height-viewport.Height)/2}
	}
	return Point{X: x, Y: y}
}
