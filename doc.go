// Package bough renders nested containers of 2D drawables for [Ebitengine].
//
// A [Container] holds an ordered list of [Drawable] children and renders them
// with its own transform, opacity, scroll factor and blend mode composed into
// theirs. Containers nest: a child container applies the same composition to
// its own children.
//
// # Quick start
//
//	scene := bough.NewScene()
//	layer := bough.NewContainer("far")
//	layer.SetScrollFactor(0.5, 0.5)
//	layer.SetAlpha(0.8)
//	layer.Add(bough.NewRect("hill", 200, 80, bough.Color{R: 0.2, G: 0.5, B: 0.2, A: 1}))
//	scene.Root().Add(layer)
//	bough.Run(scene, bough.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// # Composition rules
//
// For every visible child a container passes down, by value in a
// [RenderState]:
//
//   - the transform parent ∘ Translate ∘ Rotate ∘ Scale of the container,
//   - the corner-wise product of the container's and the child's [Opacity],
//   - the per-axis product of the two scroll factors.
//
// Children's own fields are never written during a frame.
//
// A container without a blend mode resets the sink to [BlendNormal] and lets
// each child assert its own mode, setting the sink only when the mode changes.
// A container that declares a mode with [Node.SetBlendMode] leaves the sink
// alone for its whole subtree.
//
// A child with a [Mask] has the mask's PreRender and PostRender called around
// its render. Children rejected by the [VisibilityOracle] are skipped
// entirely.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to receive debug-mode
// frame stats and warnings.
//
// [Ebitengine]: https://ebitengine.org
package bough
