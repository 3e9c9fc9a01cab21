package lottie

import (
	"context"
)

// Capability is a set of Accelerator operations a renderer supports.
type Capability uint

const (
	CanSetColor Capability = 1 << iota
	CanSetFloat
	CanSetPoint
	CanSetSize
	CanHitTest
	CanSetLayerHighlight
	CanSetLayerHidden
	CanSetLayerText
	CanCompositionSize
)

// Has reports whether every capability in o is in c.
func (c Capability) Has(o Capability) bool { return c&o == o }

// Accelerator applies composition edits directly to a live renderer so it
// does not have to reload the whole document. Renderers implement the
// operations they can and report them from Capabilities; methods outside
// that set are never called.
//
// Key paths follow "<layer>.Transform.<Property>" and
// "<layer>.**.<shape>.Color", see package keypath.
//
// Implementations should embed UnimplementedAccelerator so that new
// operations do not break them.
type Accelerator interface {
	Capabilities() Capability

	SetColor(keyPath, hex string)
	SetFloat(keyPath string, value float64)
	SetPoint(keyPath string, x, y float64)
	SetSize(keyPath string, width, height float64)
	// HitTestLayerAtPt returns the index of the top most layer with visible
	// pixels within radius of (x, y), or -1.
	HitTestLayerAtPt(ctx context.Context, x, y, radius float64) (int, error)
	SetLayerHighlight(layerIndex int, enabled bool, hex string, weight float64)
	SetLayerHidden(layerIndex int, hidden bool)
	SetLayerText(layerIndex int, text string)
	// CompositionSize returns the size the renderer resolved for the
	// composition.
	CompositionSize(ctx context.Context) (Size, error)
}

// UnimplementedAccelerator supports nothing.
type UnimplementedAccelerator struct{}

func (UnimplementedAccelerator) Capabilities() Capability { return 0 }

func (UnimplementedAccelerator) SetColor(string, string) {}
func (UnimplementedAccelerator) SetFloat(string, float64) {}
func (UnimplementedAccelerator) SetPoint(string, float64, float64) {}
func (UnimplementedAccelerator) SetSize(string, float64, float64) {}
func (UnimplementedAccelerator) SetLayerHighlight(int, bool, string, float64) {}
func (UnimplementedAccelerator) SetLayerHidden(int, bool) {}
func (UnimplementedAccelerator) SetLayerText(int, string) {}

func (UnimplementedAccelerator) HitTestLayerAtPt(context.Context, float64, float64, float64) (int, error) {
	return -1, nil
}

func (UnimplementedAccelerator) CompositionSize(context.Context) (Size, error) {
	return Size{}, nil
}

// FallbackAccelerator wraps an optional Accelerator. Supported operations are
// delegated. Unsupported edits fall back to reload, a full re-render from the
// current document, with two exceptions: highlighting does nothing, and hit
// testing and composition size are answered from the document.
type FallbackAccelerator struct {
	acc    Accelerator
	comp   *Composition
	reload func()
}

// NewFallbackAccelerator wraps acc, which may be nil. comp answers the
// hit-test and size fallbacks and may be nil, in which case they report no
// layer and a zero size.
func NewFallbackAccelerator(comp *Composition, reload func(), acc Accelerator) *FallbackAccelerator {
	if reload == nil {
		reload = func() {}
	}
	return &FallbackAccelerator{acc: acc, comp: comp, reload: reload}
}

// Underlying returns the wrapped accelerator, or nil.
func (f *FallbackAccelerator) Underlying() Accelerator { return f.acc }

// Capabilities reports the wrapped accelerator's capabilities.
func (f *FallbackAccelerator) Capabilities() Capability {
	if f.acc == nil {
		return 0
	}
	return f.acc.Capabilities()
}

func (f *FallbackAccelerator) can(c Capability) bool {
	return f.acc != nil && f.acc.Capabilities().Has(c)
}

func (f *FallbackAccelerator) SetColor(keyPath, hex string) {
	if f.can(CanSetColor) {
		f.acc.SetColor(keyPath, hex)
		return
	}
	f.reload()
}

func (f *FallbackAccelerator) SetFloat(keyPath string, value float64) {
	if f.can(CanSetFloat) {
		f.acc.SetFloat(keyPath, value)
		return
	}
	f.reload()
}

func (f *FallbackAccelerator) SetPoint(keyPath string, x, y float64) {
	if f.can(CanSetPoint) {
		f.acc.SetPoint(keyPath, x, y)
		return
	}
	f.reload()
}

func (f *FallbackAccelerator) SetSize(keyPath string, width, height float64) {
	if f.can(CanSetSize) {
		f.acc.SetSize(keyPath, width, height)
		return
	}
	f.reload()
}

func (f *FallbackAccelerator) HitTestLayerAtPt(ctx context.Context, x, y, radius float64) (int, error) {
	if f.can(CanHitTest) {
		return f.acc.HitTestLayerAtPt(ctx, x, y, radius)
	}
	if f.comp == nil {
		return -1, nil
	}
	l := f.comp.LayerAtPt(x, y, radius)
	if l == nil {
		return -1, nil
	}
	return f.comp.layerPosition(l), nil
}

func (f *FallbackAccelerator) SetLayerHighlight(layerIndex int, enabled bool, hex string, weight float64) {
	if f.can(CanSetLayerHighlight) {
		f.acc.SetLayerHighlight(layerIndex, enabled, hex, weight)
	}
}

func (f *FallbackAccelerator) SetLayerHidden(layerIndex int, hidden bool) {
	if f.can(CanSetLayerHidden) {
		f.acc.SetLayerHidden(layerIndex, hidden)
		return
	}
	f.reload()
}

func (f *FallbackAccelerator) SetLayerText(layerIndex int, text string) {
	if f.can(CanSetLayerText) {
		f.acc.SetLayerText(layerIndex, text)
		return
	}
	f.reload()
}

func (f *FallbackAccelerator) CompositionSize(ctx context.Context) (Size, error) {
	if f.can(CanCompositionSize) {
		return f.acc.CompositionSize(ctx)
	}
	if f.comp == nil {
		return Size{}, nil
	}
	return Size{Width: f.comp.Width(), Height: f.comp.Height()}, nil
}
