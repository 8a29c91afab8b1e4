package bough

// Container is a node that renders an ordered list of children with its
// transform, opacity, scroll factor and blend mode composed into theirs.
type Container struct {
	Node
	children []Drawable
}

// NewContainer creates a container holding children in render order.
func NewContainer(name string, children ...Drawable) *Container {
	c := &Container{}
	nodeDefaults(&c.Node, name)
	c.Add(children...)
	return c
}

// Add appends children in order.
// Panics if a child is nil or adding it would create a cycle.
func (c *Container) Add(children ...Drawable) {
	for _, child := range children {
		if child == nil {
			panic("bough: cannot add nil child")
		}
		if sub, ok := child.(*Container); ok && sub.contains(c) {
			panic("bough: adding child would create a cycle")
		}
		c.children = append(c.children, child)
	}
	if globalDebug {
		debugCheckChildCount(c)
	}
}

// Remove detaches the first occurrence of child. Reports whether it was found.
func (c *Container) Remove(child Drawable) bool {
	for i, d := range c.children {
		if d == child {
			copy(c.children[i:], c.children[i+1:])
			c.children[len(c.children)-1] = nil
			c.children = c.children[:len(c.children)-1]
			return true
		}
	}
	return false
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (c *Container) Children() []Drawable {
	return c.children
}

// Len returns the number of children.
func (c *Container) Len() int {
	return len(c.children)
}

// contains reports whether target is c or a descendant of c.
func (c *Container) contains(target *Container) bool {
	if c == target {
		return true
	}
	for _, d := range c.children {
		if sub, ok := d.(*Container); ok && sub.contains(target) {
			return true
		}
	}
	return false
}

// Render draws every visible child in list order. rs carries the container's
// effective opacity and scroll factor and, optionally, the parent transform.
//
// Each child receives the composed transform parent ∘ T ∘ R ∘ S, the corner-wise
// product of opacities and the per-axis product of scroll factors. When the
// container declares no blend mode (and no ancestor did) the sink is reset to
// BlendNormal first and each child may then assert its own mode; otherwise the
// sink's blend state is left untouched for the whole subtree.
//
// Faults raised by collaborators are not recovered here.
func (c *Container) Render(sink RenderSink, oracle VisibilityOracle, rs RenderState) {
	if len(c.children) == 0 {
		return
	}

	world := c.localTransform(&rs)

	locked := rs.BlendLocked || c.blend.IsSet()
	if !locked {
		sink.SetBlendState(BlendNormal)
	}

	childState := RenderState{
		Interpolation: rs.Interpolation,
		Parent:        world,
		HasParent:     true,
		BlendLocked:   locked,
	}
	sf := rs.ScrollFactor

	for _, child := range c.children {
		if !oracle.IsVisible(child) {
			continue
		}
		if !locked && !setsOwnBaseline(child) {
			if mode := child.BlendMode().Resolve(); mode != sink.BlendState() {
				sink.SetBlendState(mode)
			}
		}

		mask := child.Mask()
		if mask != nil {
			mask.PreRender(sink, child, oracle)
		}

		childSF := child.ScrollFactor()
		childState.Opacity = rs.Opacity.Mul(child.Opacity())
		childState.ScrollFactor = Vec2{childSF.X * sf.X, childSF.Y * sf.Y}
		child.Render(sink, oracle, childState)

		if mask != nil {
			mask.PostRender(sink, oracle)
		}
	}
}

// RenderRoot renders d as the top of a frame: it applies d's own blend mode,
// brackets the call with d's mask, and renders with d's own opacity and scroll
// factor and no parent transform. Does nothing if oracle rejects d.
func RenderRoot(sink RenderSink, oracle VisibilityOracle, d Drawable, interpolation float64) {
	if !oracle.IsVisible(d) {
		return
	}
	if !setsOwnBaseline(d) {
		if mode := d.BlendMode().Resolve(); mode != sink.BlendState() {
			sink.SetBlendState(mode)
		}
	}
	mask := d.Mask()
	if mask != nil {
		mask.PreRender(sink, d, oracle)
	}
	d.Render(sink, oracle, RootState(d, interpolation))
	if mask != nil {
		mask.PostRender(sink, oracle)
	}
}

// setsOwnBaseline reports whether d resets the sink to BlendNormal itself
// before drawing anything, so the caller can skip resolving its unset mode.
// A masked drawable never qualifies: its mask composites with the blend
// state active at PreRender.
func setsOwnBaseline(d Drawable) bool {
	if d.BlendMode().IsSet() || d.Mask() != nil {
		return false
	}
	_, ok := d.(*Container)
	return ok
}
