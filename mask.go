package bough

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// BitmapMask clips a drawable to the alpha of Source. Source is rendered in
// world space with its own state; it is not part of the scene tree.
//
// The mask only has an effect on an *ImageSink. Other sinks see no calls.
type BitmapMask struct {
	Source Drawable
	// Invert keeps the parts of the drawable outside Source instead.
	Invert bool

	active []maskFrame // one per PreRender, innermost last
}

// maskFrame records what PreRender did so PostRender can undo it.
type maskFrame struct {
	pushed bool
	blend  BlendMode // sink blend at PreRender, applied to the composite
}

// NewBitmapMask creates a mask from source.
func NewBitmapMask(source Drawable) *BitmapMask {
	return &BitmapMask{Source: source}
}

// PreRender redirects the sink into an offscreen layer. The drawable renders
// into the layer with BlendNormal; the blend mode active at this point is
// applied once, when PostRender composites the layer back.
func (m *BitmapMask) PreRender(sink RenderSink, _ Drawable, _ VisibilityOracle) {
	is, ok := sink.(*ImageSink)
	if !ok || is.target == nil || m.Source == nil {
		m.active = append(m.active, maskFrame{})
		return
	}
	m.active = append(m.active, maskFrame{pushed: true, blend: is.blend})
	is.pushLayer()
	is.blend = BlendNormal
}

// PostRender composites the layer through the mask and draws it back into the
// sink's previous target with the blend mode saved by PreRender, which is
// active again on return.
func (m *BitmapMask) PostRender(sink RenderSink, oracle VisibilityOracle) {
	n := len(m.active)
	if n == 0 {
		return
	}
	frame := m.active[n-1]
	m.active = m.active[:n-1]
	if !frame.pushed {
		return
	}

	is := sink.(*ImageSink)
	layer := is.popLayer()
	b := layer.Bounds()

	maskImg := is.pool.Acquire(b.Dx(), b.Dy())
	maskSink := ImageSink{target: maskImg}
	m.Source.Render(&maskSink, oracle, RootState(m.Source, 0))

	var op ebiten.DrawImageOptions
	if m.Invert {
		op.Blend = BlendErase.EbitenBlend()
	} else {
		op.Blend = BlendMask.EbitenBlend()
	}
	layer.DrawImage(maskImg, &op)
	is.pool.Release(maskImg)

	is.blend = frame.blend
	var out ebiten.DrawImageOptions
	out.Blend = frame.blend.EbitenBlend()
	is.target.DrawImage(layer, &out)
	is.drawCalls++
	is.pool.Release(layer)
}
