package bough

import (
	"time"
)

// FrameStats describes one camera pass of Scene.Draw.
type FrameStats struct {
	Frame        uint64
	Camera       int // index into Scene.Cameras, -1 for the implicit camera
	DrawCalls    int
	BlendChanges int
	Elapsed      time.Duration
}

// FrameObserver receives stats after every camera pass. See the ecs
// sub-package for a Donburi-backed implementation.
type FrameObserver interface {
	ObserveFrame(stats FrameStats)
}

// debugLog writes frame stats at debug level.
func (s *Scene) debugLog(stats FrameStats) {
	if !s.debug {
		return
	}
	Logger().Debug("frame",
		"frame", stats.Frame,
		"camera", stats.Camera,
		"draw_calls", stats.DrawCalls,
		"blend_changes", stats.BlendChanges,
		"elapsed", stats.Elapsed,
	)
}

// debugMaxTreeDepth is the container nesting depth that triggers a warning.
const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns when a container tree nests deeper than
// debugMaxTreeDepth. Returns the measured depth.
func debugCheckTreeDepth(root *Container) int {
	depth := containerDepth(root)
	if depth > debugMaxTreeDepth {
		Logger().Warn("container tree too deep",
			"root", root.Name(), "depth", depth, "threshold", debugMaxTreeDepth)
	}
	return depth
}

func containerDepth(c *Container) int {
	deepest := 0
	for _, d := range c.children {
		if sub, ok := d.(*Container); ok {
			deepest = max(deepest, containerDepth(sub))
		}
	}
	return deepest + 1
}

// debugMaxChildCount is the per-container child count that triggers a warning.
const debugMaxChildCount = 1000

func debugCheckChildCount(c *Container) {
	if len(c.children) > debugMaxChildCount {
		Logger().Warn("container has many children",
			"container", c.Name(), "children", len(c.children), "threshold", debugMaxChildCount)
	}
}
