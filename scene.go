package bough

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxCameras is the number of cameras a Scene can hold at once.
const maxCameras = 32

// Scene is the frame driver. It owns the root container, the cameras and the
// sink, and renders the root once per camera per frame.
type Scene struct {
	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	root     *Container
	cameras  []*Camera
	usedIDs  uint32 // bitmask of camera ids in use
	sink     ImageSink
	observer FrameObserver
	debug    bool
	frame    uint64

	interpolation float64
	tweens        []*TweenGroup
	updateFunc    func() error
}

// NewScene creates a scene with an empty root container.
func NewScene() *Scene {
	return &Scene{
		root:          NewContainer("root"),
		interpolation: 1,
	}
}

// Root returns the scene's root container.
func (s *Scene) Root() *Container {
	return s.root
}

// NewCamera creates a camera with the given viewport and adds it to the scene.
// It takes the lowest camera id not held by another camera in the scene.
// Panics when maxCameras cameras are already in the scene.
func (s *Scene) NewCamera(viewport Rect) *Camera {
	if len(s.cameras) >= maxCameras {
		panic("bough: too many cameras")
	}
	free := ^s.usedIDs
	cam := NewCamera(viewport)
	cam.id = free & -free
	s.usedIDs |= cam.id
	s.cameras = append(s.cameras, cam)
	return cam
}

// RemoveCamera removes a camera from the scene and frees its id for reuse.
// Nodes keep their camera filter bits, so a node that ignored the removed
// camera also ignores the next camera given the same id.
func (s *Scene) RemoveCamera(cam *Camera) {
	for i, c := range s.cameras {
		if c == cam {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			s.usedIDs &^= cam.id
			cam.id = 0
			return
		}
	}
}

// Cameras returns the scene's camera list. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

// SetInterpolation sets the factor passed to every Render call.
func (s *Scene) SetInterpolation(f float64) {
	s.interpolation = f
}

// SetFrameObserver sets the optional receiver of per-camera frame stats.
func (s *Scene) SetFrameObserver(o FrameObserver) {
	s.observer = o
}

// SetUpdateFunc sets a callback run at the end of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// AddTween registers a tween group that Update advances until done.
func (s *Scene) AddTween(g *TweenGroup) {
	s.tweens = append(s.tweens, g)
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame stats
// and tree-shape warnings are written to Logger.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		debugCheckTreeDepth(s.root)
	}
}

// globalDebug mirrors the most recently set Scene debug flag so that
// container operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// Update advances cameras and tweens by dt seconds, then runs the update func.
func (s *Scene) Update(dt float32) error {
	for _, cam := range s.cameras {
		cam.Update(dt)
	}
	live := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(s.tweens[len(live):])
	s.tweens = live

	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Draw renders the root once per camera into the camera's viewport. With no
// cameras, a full-screen camera at scroll (0, 0) is used.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.frame++
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	if len(s.cameras) == 0 {
		b := screen.Bounds()
		cam := NewCamera(Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), Width: float64(b.Dx()), Height: float64(b.Dy())})
		s.drawWithCamera(screen, cam, -1)
		return
	}

	for i, cam := range s.cameras {
		vp := cam.Viewport
		viewportImg := screen.SubImage(image.Rect(
			int(vp.X), int(vp.Y),
			int(vp.X+vp.Width), int(vp.Y+vp.Height),
		)).(*ebiten.Image)
		s.drawWithCamera(viewportImg, cam, i)
	}
}

func (s *Scene) drawWithCamera(target *ebiten.Image, cam *Camera, index int) {
	var t0 time.Time
	if s.debug || s.observer != nil {
		t0 = time.Now()
	}

	s.sink.Reset(target)
	RenderRoot(&s.sink, cam, s.root, s.interpolation)

	if !s.debug && s.observer == nil {
		return
	}
	stats := FrameStats{
		Frame:        s.frame,
		Camera:       index,
		DrawCalls:    s.sink.DrawCalls(),
		BlendChanges: s.sink.BlendChanges(),
		Elapsed:      time.Since(t0),
	}
	s.debugLog(stats)
	if s.observer != nil {
		s.observer.ObserveFrame(stats)
	}
}
