package bough

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// captureLog routes Logger into a buffer for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestLoggerDefaultIsSilent(t *testing.T) {
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() should never be nil")
	}
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}

func TestDebugModeLogsFrames(t *testing.T) {
	buf := captureLog(t)
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)
	s.Root().Add(NewRect("r", 4, 4, ColorWhite))

	s.Draw(ebiten.NewImage(8, 8))

	out := buf.String()
	if !strings.Contains(out, "msg=frame") || !strings.Contains(out, "draw_calls=1") {
		t.Errorf("debug output missing frame stats: %s", out)
	}
}

func TestNoFrameLogsWithoutDebug(t *testing.T) {
	buf := captureLog(t)
	s := NewScene()
	s.Root().Add(NewRect("r", 4, 4, ColorWhite))

	s.Draw(ebiten.NewImage(8, 8))

	if buf.Len() != 0 {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestDebugTreeDepthWarning(t *testing.T) {
	buf := captureLog(t)
	s := NewScene()
	parent := s.Root()
	for range debugMaxTreeDepth + 1 {
		c := NewContainer("nested")
		parent.Add(c)
		parent = c
	}

	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	if !strings.Contains(buf.String(), "container tree too deep") {
		t.Errorf("expected depth warning, got: %s", buf.String())
	}
}

func TestContainerDepth(t *testing.T) {
	leaf := NewContainer("leaf")
	mid := NewContainer("mid", leaf, NewRect("r", 1, 1, ColorWhite))
	root := NewContainer("root", mid)
	if got := debugCheckTreeDepth(root); got != 3 {
		t.Errorf("depth = %d, want 3", got)
	}
}

func TestDebugChildCountWarning(t *testing.T) {
	buf := captureLog(t)
	globalDebug = true
	defer func() { globalDebug = false }()

	c := NewContainer("wide")
	for range debugMaxChildCount + 1 {
		c.Add(NewRect("r", 1, 1, ColorWhite))
	}

	if !strings.Contains(buf.String(), "container has many children") {
		t.Errorf("expected child count warning, got: %s", buf.String())
	}
}
