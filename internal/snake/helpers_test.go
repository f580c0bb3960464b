package snake

import (
	"errors"
	"testing"

	"github.com/vovakirdan/canvas-snake/internal/core"
)

// memStore is an in-memory KeyValueStore that counts writes.
type memStore struct {
	data   map[string]string
	sets   int
	getErr error
	setErr error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (m *memStore) Get(key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Set(key, value string) error {
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

var errStore = errors.New("store unavailable")

type fillCmd struct {
	X, Y, W, H int
	Color      core.Color
}

// recordingCanvas keeps every fill command.
type recordingCanvas struct {
	w, h  int
	fills []fillCmd
}

func (c *recordingCanvas) Size() (int, int) { return c.w, c.h }

func (c *recordingCanvas) FillRect(x, y, w, h int, color core.Color) {
	c.fills = append(c.fills, fillCmd{X: x, Y: y, W: w, H: h, Color: color})
}

// lastFrame returns the fill commands since the last full-surface clear.
func (c *recordingCanvas) lastFrame() []fillCmd {
	for i := len(c.fills) - 1; i >= 0; i-- {
		f := c.fills[i]
		if f.X == 0 && f.Y == 0 && f.W == c.w && f.H == c.h {
			return c.fills[i:]
		}
	}
	return nil
}

func (c *recordingCanvas) reset() {
	c.fills = nil
}

type recordingDisplay struct {
	score, high  int
	over, paused bool
	scoreCalls   int
}

func (d *recordingDisplay) SetScore(v int) { d.score = v; d.scoreCalls++ }
func (d *recordingDisplay) SetHighScore(v int) { d.high = v }
func (d *recordingDisplay) SetGameOver(v bool) { d.over = v }
func (d *recordingDisplay) SetPaused(v bool) { d.paused = v }

type testRig struct {
	session *Session
	sched   *StepScheduler
	store   *memStore
	canvas  *recordingCanvas
	display *recordingDisplay
}

// newRig builds a started session on the default 640x640 grid.
func newRig(t *testing.T, mutate func(*Options)) *testRig {
	t.Helper()

	r := &testRig{
		sched:   NewStepScheduler(),
		store:   newMemStore(),
		canvas:  &recordingCanvas{w: 640, h: 640},
		display: &recordingDisplay{},
	}

	opts := DefaultOptions()
	opts.Seed = 42
	opts.Scheduler = r.sched
	opts.Store = r.store
	opts.Canvas = r.canvas
	opts.Display = r.display
	if mutate != nil {
		mutate(&opts)
	}

	s, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	s.Start()
	r.session = s
	return r
}

// place overrides the round layout for scenario tests.
func (r *testRig) place(snake []core.Point, dir Direction, apple core.Point, obstacles []core.Point) {
	r.session.snake = append([]core.Point(nil), snake...)
	r.session.direction = dir
	r.session.nextDir = dir
	r.session.apple = apple
	r.session.obstacles = append([]core.Point(nil), obstacles...)
}

func pt(x, y int) core.Point {
	return core.Point{X: x, Y: y}
}
