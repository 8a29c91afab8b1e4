package bough

import (
	"fmt"
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// eventLog collects calls from every fake so tests can assert ordering.
type eventLog struct {
	events []string
}

func (l *eventLog) add(format string, args ...any) {
	l.events = append(l.events, fmt.Sprintf(format, args...))
}

// recordingSink is a RenderSink that records blend changes and quads.
type recordingSink struct {
	log   *eventLog
	blend BlendMode
	sets  []BlendMode
	quads []Quad
}

func newRecordingSink(log *eventLog) *recordingSink {
	return &recordingSink{log: log}
}

func (s *recordingSink) BlendState() BlendMode { return s.blend }

func (s *recordingSink) SetBlendState(mode BlendMode) {
	s.blend = mode
	s.sets = append(s.sets, mode)
	if s.log != nil {
		s.log.add("blend %s", mode)
	}
}

func (s *recordingSink) DrawQuad(q *Quad) {
	s.quads = append(s.quads, *q)
}

// allowAll accepts every drawable that reports itself visible and counts queries.
type allowAll struct {
	queries int
}

func (o *allowAll) IsVisible(d Drawable) bool {
	o.queries++
	return d.Visible()
}

// rejectNames rejects drawables by name.
type rejectNames map[string]bool

func (r rejectNames) IsVisible(d Drawable) bool {
	return !r[d.Name()]
}

// spy is a leaf that records the state it was rendered with and the
// fields it observed on itself during the call.
type spy struct {
	Node
	log      *eventLog
	renders  []RenderState
	duringOp []Opacity
}

func newSpy(name string, log *eventLog) *spy {
	p := &spy{log: log}
	nodeDefaults(&p.Node, name)
	return p
}

func (p *spy) Render(sink RenderSink, oracle VisibilityOracle, rs RenderState) {
	p.renders = append(p.renders, rs)
	p.duringOp = append(p.duringOp, p.Opacity())
	if p.log != nil {
		p.log.add("render %s %v", p.name, rs.Opacity)
	}
}

func (p *spy) last(t *testing.T) RenderState {
	t.Helper()
	if len(p.renders) == 0 {
		t.Fatalf("%s was not rendered", p.name)
	}
	return p.renders[len(p.renders)-1]
}

// recordingMask logs its hooks.
type recordingMask struct {
	log *eventLog
}

func (m *recordingMask) PreRender(_ RenderSink, d Drawable, _ VisibilityOracle) {
	m.log.add("pre %s", d.Name())
}

func (m *recordingMask) PostRender(RenderSink, VisibilityOracle) {
	m.log.add("post")
}
