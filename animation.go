package bough

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors and either call Update(dt)
// each frame or register it with Scene.AddTween.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	apply  func()
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if g.apply != nil {
		g.apply()
	}
	g.Done = allDone
}

// TweenPosition animates node.X and node.Y to (toX, toY).
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(node.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(node.Y), float32(toY), duration, fn)
	g.fields[0] = &node.X
	g.fields[1] = &node.Y
	return g
}

// TweenScale animates node.ScaleX and node.ScaleY.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(node.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(node.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &node.ScaleX
	g.fields[1] = &node.ScaleY
	return g
}

// TweenRotation animates node.Rotation.
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(node.Rotation), float32(to), duration, fn)
	g.fields[0] = &node.Rotation
	return g
}

// TweenAlpha animates the node's opacity from its top-left value to a uniform
// opacity of to.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	alpha := node.opacity.Alpha()
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(alpha), float32(to), duration, fn)
	g.fields[0] = &alpha
	g.apply = func() { node.SetAlpha(alpha) }
	return g
}

// TweenScrollFactor animates the node's scroll factor.
func TweenScrollFactor(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(node.scrollFactor.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(node.scrollFactor.Y), float32(toY), duration, fn)
	g.fields[0] = &node.scrollFactor.X
	g.fields[1] = &node.scrollFactor.Y
	return g
}
