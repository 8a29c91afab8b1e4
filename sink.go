package bough

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Quad is a single textured quad submission. The image is drawn at its native
// size through Transform; Opacity scales alpha per corner.
type Quad struct {
	Image     *ebiten.Image
	Transform Transform
	Opacity   Opacity
	Tint      Color
}

var quadIndices = []uint16{0, 1, 2, 1, 3, 2}

// ImageSink is the ebiten RenderSink. It draws quads into a target image with
// the active blend mode and keeps a stack of offscreen layers for masks.
type ImageSink struct {
	target *ebiten.Image
	blend  BlendMode

	layers []*ebiten.Image // saved targets, innermost last
	pool   renderTexturePool

	verts [4]ebiten.Vertex
	opts  ebiten.DrawTrianglesOptions

	drawCalls    int
	blendChanges int
}

// NewImageSink creates a sink drawing into target.
func NewImageSink(target *ebiten.Image) *ImageSink {
	s := &ImageSink{}
	s.Reset(target)
	return s
}

// Reset retargets the sink, restores BlendNormal and zeroes the counters.
// Layers still pushed are returned to the pool.
func (s *ImageSink) Reset(target *ebiten.Image) {
	for len(s.layers) > 0 {
		s.pool.Release(s.popLayer())
	}
	s.target = target
	s.blend = BlendNormal
	s.drawCalls = 0
	s.blendChanges = 0
}

// Target returns the image currently drawn into.
func (s *ImageSink) Target() *ebiten.Image {
	return s.target
}

// BlendState returns the active blend mode.
func (s *ImageSink) BlendState() BlendMode {
	return s.blend
}

// SetBlendState makes mode active. Setting the active mode again is counted
// as a change, callers elide redundant sets.
func (s *ImageSink) SetBlendState(mode BlendMode) {
	s.blend = mode
	s.blendChanges++
}

// DrawCalls returns the number of quads drawn since the last Reset.
func (s *ImageSink) DrawCalls() int {
	return s.drawCalls
}

// BlendChanges returns the number of SetBlendState calls since the last Reset.
func (s *ImageSink) BlendChanges() int {
	return s.blendChanges
}

// DrawQuad draws q into the current target with DrawTriangles.
func (s *ImageSink) DrawQuad(q *Quad) {
	if s.target == nil || q.Image == nil {
		return
	}
	b := q.Image.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	sx, sy := float32(b.Min.X), float32(b.Min.Y)

	corners := [4][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}}
	alphas := q.Opacity.Corners()
	r, g, bl := float32(q.Tint.R), float32(q.Tint.G), float32(q.Tint.B)

	for i, c := range corners {
		dx, dy := q.Transform.Apply(c[0], c[1])
		s.verts[i] = ebiten.Vertex{
			DstX:   float32(dx),
			DstY:   float32(dy),
			SrcX:   sx + float32(c[0]),
			SrcY:   sy + float32(c[1]),
			ColorR: r,
			ColorG: g,
			ColorB: bl,
			ColorA: float32(q.Tint.A * alphas[i]),
		}
	}

	s.opts.Blend = s.blend.EbitenBlend()
	s.target.DrawTriangles(s.verts[:], quadIndices, q.Image, &s.opts)
	s.drawCalls++
}

// pushLayer redirects drawing into a fresh offscreen image covering the
// current target's bounds. Coordinates are unchanged.
func (s *ImageSink) pushLayer() {
	b := s.target.Bounds()
	layer := s.pool.Acquire(b.Max.X, b.Max.Y)
	s.layers = append(s.layers, s.target)
	s.target = layer
}

// popLayer restores the previous target and returns the layer image. The
// caller releases it to the pool.
func (s *ImageSink) popLayer() *ebiten.Image {
	layer := s.target
	n := len(s.layers)
	s.target = s.layers[n-1]
	s.layers[n-1] = nil
	s.layers = s.layers[:n-1]
	return layer
}

// Depth returns the number of pushed layers.
func (s *ImageSink) Depth() int {
	return len(s.layers)
}
