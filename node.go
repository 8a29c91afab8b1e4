package bough

// RenderSink receives draw submissions and tracks the active blend state.
type RenderSink interface {
	// BlendState returns the blend mode currently in effect.
	BlendState() BlendMode
	// SetBlendState makes mode the active blend mode.
	SetBlendState(mode BlendMode)
	// DrawQuad submits a textured quad using the active blend mode.
	DrawQuad(q *Quad)
}

// VisibilityOracle decides whether a drawable should render for the current
// view. Camera is the standard implementation.
type VisibilityOracle interface {
	IsVisible(d Drawable) bool
}

// Viewer is an optional capability of a VisibilityOracle. Leaves use it to
// obtain the view matrix for their effective scroll factor.
type Viewer interface {
	View(scrollFactor Vec2) Transform
}

// Mask brackets a drawable's render call to clip its output.
type Mask interface {
	PreRender(sink RenderSink, d Drawable, oracle VisibilityOracle)
	PostRender(sink RenderSink, oracle VisibilityOracle)
}

// Drawable is anything a Container can render as a child.
type Drawable interface {
	Name() string
	Visible() bool
	Opacity() Opacity
	BlendMode() Blend
	ScrollFactor() Vec2
	// Mask returns nil when the drawable is not masked.
	Mask() Mask
	// Render draws the drawable using the composed state in rs. Implementations
	// must treat rs as the effective opacity and scroll factor, not their own
	// fields, and must not retain rs.Parent beyond the call.
	Render(sink RenderSink, oracle VisibilityOracle, rs RenderState)
}

// RenderState is the inherited state a parent hands to each child. It is
// passed by value so that a child's persistent fields are never rewritten
// during a frame.
type RenderState struct {
	// Interpolation is the frame interpolation factor from the driver.
	Interpolation float64
	// Parent is the composed parent transform. Only valid when HasParent.
	Parent    Transform
	HasParent bool
	// Opacity is the effective opacity of the drawable being rendered.
	Opacity Opacity
	// ScrollFactor is the effective scroll factor of the drawable being rendered.
	ScrollFactor Vec2
	// BlendLocked is set when an ancestor declared an explicit blend mode.
	// Descendants must then leave the sink's blend state alone.
	BlendLocked bool
}

// RootState returns the state for rendering d with no parent: its own
// opacity and scroll factor and no parent transform.
func RootState(d Drawable, interpolation float64) RenderState {
	return RenderState{
		Interpolation: interpolation,
		Opacity:       d.Opacity(),
		ScrollFactor:  d.ScrollFactor(),
	}
}

// nodeIDCounter is a plain counter (no atomic; scene construction is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node holds the render state shared by containers and leaves. Embed it to
// get the Drawable accessors; the embedding type supplies Render.
type Node struct {
	ID uint32

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64

	name         string
	visible      bool
	opacity      Opacity
	blend        Blend
	scrollFactor Vec2
	mask         Mask

	// ignoreCameras is a bitmask of camera ids that must not render this node.
	ignoreCameras uint32
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node, name string) {
	n.ID = nextNodeID()
	n.name = name
	n.ScaleX = 1
	n.ScaleY = 1
	n.visible = true
	n.opacity = OpacityOpaque
	n.scrollFactor = Vec2{1, 1}
}

// Name returns the debug name given at construction.
func (n *Node) Name() string { return n.name }

// Visible reports the node's own visibility flag.
func (n *Node) Visible() bool { return n.visible }

// Opacity returns the node's own opacity.
func (n *Node) Opacity() Opacity { return n.opacity }

// BlendMode returns the node's declared blend mode, if any.
func (n *Node) BlendMode() Blend { return n.blend }

// ScrollFactor returns the node's own scroll factor.
func (n *Node) ScrollFactor() Vec2 { return n.scrollFactor }

// Mask returns the node's mask, or nil.
func (n *Node) Mask() Mask { return n.mask }

// SetVisible sets the visibility flag.
func (n *Node) SetVisible(v bool) { n.visible = v }

// SetOpacity sets a per-corner opacity.
func (n *Node) SetOpacity(o Opacity) { n.opacity = o }

// SetAlpha sets a uniform opacity.
func (n *Node) SetAlpha(a float64) { n.opacity = UniformOpacity(a) }

// SetScrollFactor sets the parallax multiplier per axis.
func (n *Node) SetScrollFactor(x, y float64) { n.scrollFactor = Vec2{x, y} }

// SetBlendMode declares an explicit blend mode for the node.
func (n *Node) SetBlendMode(mode BlendMode) { n.blend = BlendOf(mode) }

// ClearBlendMode removes the declared blend mode.
func (n *Node) ClearBlendMode() { n.blend = NoBlend }

// SetMask attaches a mask. Pass nil to clear it.
func (n *Node) SetMask(m Mask) { n.mask = m }

// ClearMask removes the mask.
func (n *Node) ClearMask() { n.mask = nil }

// SetPosition sets the node's local X and Y.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// SetScale sets the node's ScaleX and ScaleY.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
}

// SetRotation sets the node's rotation in radians.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
}

// IgnoreCamera hides the node from cam. Cameras not created by a Scene have
// id 0 and cannot be ignored.
func (n *Node) IgnoreCamera(cam *Camera) {
	n.ignoreCameras |= cam.id
}

// CameraFilter returns the bitmask of camera ids that skip this node.
func (n *Node) CameraFilter() uint32 { return n.ignoreCameras }

// localTransform composes parent ∘ T ∘ R ∘ S from the node's own fields,
// or T ∘ R ∘ S when rs carries no parent.
func (n *Node) localTransform(rs *RenderState) Transform {
	var t Transform
	if rs.HasParent {
		t.LoadIdentity().
			Multiply(rs.Parent).
			Translate(n.X, n.Y).
			Rotate(n.Rotation).
			Scale(n.ScaleX, n.ScaleY)
	} else {
		t.ApplyITRS(n.X, n.Y, n.Rotation, n.ScaleX, n.ScaleY)
	}
	return t
}
