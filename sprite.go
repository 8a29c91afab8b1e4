package bough

import "github.com/hajimehoshi/ebiten/v2"

// Sprite draws an image as a single quad. Per-corner opacity maps onto the
// quad's vertices.
type Sprite struct {
	Node

	// Image is drawn at its native size. Nil draws WhitePixel.
	Image *ebiten.Image
	// Tint multiplies the image color.
	Tint Color
	// OriginX and OriginY are the normalized anchor (0..1) placed at X, Y.
	OriginX, OriginY float64
}

// NewSprite creates a sprite for img.
func NewSprite(name string, img *ebiten.Image) *Sprite {
	s := &Sprite{Image: img, Tint: ColorWhite}
	nodeDefaults(&s.Node, name)
	return s
}

// NewRect creates a solid-color w x h rectangle backed by WhitePixel.
func NewRect(name string, w, h float64, c Color) *Sprite {
	s := NewSprite(name, nil)
	s.ScaleX = w
	s.ScaleY = h
	s.Tint = c
	return s
}

// Size returns the unscaled size of the sprite's image.
func (s *Sprite) Size() (w, h float64) {
	img := s.image()
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Sprite) image() *ebiten.Image {
	if s.Image == nil {
		return WhitePixel
	}
	return s.Image
}

// Render submits the sprite's quad. The final matrix is
// view(scrollFactor) ∘ parent ∘ T ∘ R ∘ S ∘ Translate(-origin).
func (s *Sprite) Render(sink RenderSink, oracle VisibilityOracle, rs RenderState) {
	w, h := s.Size()
	world := s.localTransform(&rs)
	world.Translate(-s.OriginX*w, -s.OriginY*h)

	m := world
	if v, ok := oracle.(Viewer); ok {
		m = v.View(rs.ScrollFactor)
		m.Multiply(world)
	}

	sink.DrawQuad(&Quad{
		Image:     s.image(),
		Transform: m,
		Opacity:   rs.Opacity,
		Tint:      s.Tint,
	})
}
