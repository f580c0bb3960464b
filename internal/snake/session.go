// Package snake implements the grid snake game engine: a tick-driven state
// machine that moves the snake, resolves collisions, scores apples and keeps
// the high score. Rendering, storage, input delivery and timing are injected.
package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/canvas-snake/internal/core"
)

// State is the lifecycle state of a session.
type State int

const (
	StateIdle State = iota // Constructed, Start not called yet
	StateRunning
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Defaults used when Options leaves a field zero.
const (
	DefaultCellSize      = 16
	DefaultCanvasSize    = 640
	DefaultFrameTimeout  = 100 * time.Millisecond
	DefaultObstacleCount = 5
	DefaultStartCell     = 10
)

var (
	ErrNoScheduler  = errors.New("snake: scheduler is required")
	ErrInvalidGrid  = errors.New("snake: grid needs a positive cell size and at least 2x2 cells")
	ErrInvalidStart = errors.New("snake: start cell is outside the grid")
)

// Observer receives session events. Used for metrics.
type Observer interface {
	TickCompleted(elapsed time.Duration)
	AppleEaten(score int)
	RoundOver(score, highScore int, newHigh bool)
}

// Options configures a Session and carries its collaborators.
type Options struct {
	Grid             core.Grid
	FrameTimeout     time.Duration
	ObstacleCount    int
	StartCol         int
	StartRow         int
	MaxSpawnAttempts int
	HighScoreKey     string
	Palette          Palette
	Seed             int64 // 0 means seed from the clock

	Scheduler Scheduler // Required
	Canvas    Canvas
	Display   Display
	Store     KeyValueStore
	Observer  Observer
	Logger    *log.Logger
}

// DefaultOptions returns options for a 640x640 canvas with 16px cells.
// Collaborators are left unset.
func DefaultOptions() Options {
	return Options{
		Grid:             core.NewGrid(DefaultCanvasSize, DefaultCanvasSize, DefaultCellSize),
		FrameTimeout:     DefaultFrameTimeout,
		ObstacleCount:    DefaultObstacleCount,
		StartCol:         DefaultStartCell,
		StartRow:         DefaultStartCell,
		MaxSpawnAttempts: DefaultMaxSpawnAttempts,
		HighScoreKey:     DefaultHighScoreKey,
		Palette:          DefaultPalette(),
	}
}

// Session owns all state of one game: snake, apple, obstacles, score and the
// repeating tick task. All methods must be called from a single goroutine.
type Session struct {
	grid             core.Grid
	frameTimeout     time.Duration
	obstacleCount    int
	start            core.Point
	maxSpawnAttempts int
	palette          Palette
	rng              *rand.Rand

	sched    Scheduler
	canvas   Canvas
	display  Display
	observer Observer
	logger   *log.Logger
	scores   *ScoreTracker

	state     State
	snake     []core.Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction, committed on the next tick
	apple     core.Point
	obstacles []core.Point
	handle    TaskHandle
	ticks     uint64 // Ticks processed this round
	roundID   string
}

// New validates opts and creates an idle session. The high score is loaded
// from opts.Store here, once.
func New(opts Options) (*Session, error) {
	if opts.Scheduler == nil {
		return nil, ErrNoScheduler
	}
	g := opts.Grid
	if g.CellSize <= 0 || g.Cols < 2 || g.Rows < 2 {
		return nil, ErrInvalidGrid
	}
	if opts.StartCol < 0 || opts.StartCol >= g.Cols || opts.StartRow < 0 || opts.StartRow >= g.Rows {
		return nil, fmt.Errorf("%w: (%d, %d) on %dx%d", ErrInvalidStart, opts.StartCol, opts.StartRow, g.Cols, g.Rows)
	}
	if opts.ObstacleCount < 0 || opts.ObstacleCount > g.Cells()/2 {
		return nil, fmt.Errorf("snake: obstacle count %d must be between 0 and %d", opts.ObstacleCount, g.Cells()/2)
	}

	if opts.FrameTimeout <= 0 {
		opts.FrameTimeout = DefaultFrameTimeout
	}
	if opts.MaxSpawnAttempts <= 0 {
		opts.MaxSpawnAttempts = DefaultMaxSpawnAttempts
	}
	if opts.Palette == (Palette{}) {
		opts.Palette = DefaultPalette()
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Canvas == nil {
		opts.Canvas = nopCanvas{}
	}
	if opts.Display == nil {
		opts.Display = nopDisplay{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Session{
		grid:             g,
		frameTimeout:     opts.FrameTimeout,
		obstacleCount:    opts.ObstacleCount,
		start:            g.CellToPixel(opts.StartCol, opts.StartRow),
		maxSpawnAttempts: opts.MaxSpawnAttempts,
		palette:          opts.Palette,
		rng:              rand.New(rand.NewSource(opts.Seed)),
		sched:            opts.Scheduler,
		canvas:           opts.Canvas,
		display:          opts.Display,
		observer:         opts.Observer,
		logger:           opts.Logger,
		scores:           NewScoreTracker(opts.Store, opts.HighScoreKey, opts.Logger),
		state:            StateIdle,
	}, nil
}

// Start begins a new round, discarding any previous one.
func (s *Session) Start() {
	s.stopTimer()
	s.handle = s.sched.Every(s.frameTimeout, s.Tick)

	s.scores.Reset()
	s.state = StateRunning
	s.ticks = 0
	s.roundID = uuid.NewString()
	s.display.SetGameOver(false)
	s.display.SetPaused(false)

	s.snake = []core.Point{s.start}
	s.direction = DirRight
	s.nextDir = DirRight

	s.display.SetScore(0)
	s.display.SetHighScore(s.scores.HighScore())

	s.obstacles = generateObstacles(s.rng, s.grid, s.obstacleCount, s.start, s.maxSpawnAttempts)
	if len(s.obstacles) < s.obstacleCount {
		s.logger.Warn("placed fewer obstacles than configured", "want", s.obstacleCount, "got", len(s.obstacles))
	}
	s.respawnApple()

	s.logger.Info("round started",
		"round", s.roundID,
		"obstacles", len(s.obstacles),
		"high_score", s.scores.HighScore(),
	)
}

// Tick advances the round by one step. It does nothing unless running.
func (s *Session) Tick() {
	if s.state != StateRunning {
		return
	}
	started := time.Now()

	// The frame shows the state left by the previous tick.
	s.DrawTo(s.canvas)

	if s.direction != s.nextDir {
		s.direction = s.nextDir
	}

	head := s.grid.Wrap(s.snake[0].Add(s.direction.Offset(s.grid.CellSize)))

	if head == s.apple {
		s.eatApple()
	} else {
		s.snake = s.snake[:len(s.snake)-1]
	}

	// Checked against the body after the tail pop, so moving into the cell
	// being vacated is allowed.
	collided := CheckCollision(head, s.snake) || CheckCollision(head, s.obstacles)

	// The head is prepended even on the losing move.
	s.snake = append(s.snake, core.Point{})
	copy(s.snake[1:], s.snake)
	s.snake[0] = head
	s.ticks++

	if collided {
		s.gameOver()
	}

	s.logger.Debug("tick", "n", s.ticks, "head", head, "len", len(s.snake), "dir", s.direction)
	if s.observer != nil {
		s.observer.TickCompleted(time.Since(started))
	}
}

func (s *Session) eatApple() {
	score := s.scores.RecordApple()
	s.display.SetScore(score)
	s.respawnApple()
	if s.observer != nil {
		s.observer.AppleEaten(score)
	}
}

func (s *Session) respawnApple() {
	res := spawnApple(s.rng, s.grid, s.obstacles, s.maxSpawnAttempts)
	if res.Fallback {
		s.logger.Warn("apple placement fell back to scan", "attempts", res.Attempts, "apple", res.Point)
	}
	s.apple = res.Point
}

func (s *Session) gameOver() {
	s.state = StateGameOver
	s.stopTimer()
	s.display.SetGameOver(true)

	newHigh := s.scores.Finalize()
	if newHigh {
		s.display.SetHighScore(s.scores.HighScore())
	}

	// Final frame: shows the head overlapping whatever it hit.
	s.DrawTo(s.canvas)

	s.logger.Info("round over",
		"round", s.roundID,
		"score", s.scores.Score(),
		"high_score", s.scores.HighScore(),
		"new_high", newHigh,
		"ticks", s.ticks,
	)
	if s.observer != nil {
		s.observer.RoundOver(s.scores.Score(), s.scores.HighScore(), newHigh)
	}
}

func (s *Session) stopTimer() {
	if s.handle != nil {
		s.handle.Stop()
		s.handle = nil
	}
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current round score.
func (s *Session) Score() int {
	return s.scores.Score()
}

// HighScore returns the best score including the persisted one.
func (s *Session) HighScore() int {
	return s.scores.HighScore()
}

// RoundID identifies the current round. Empty before Start.
func (s *Session) RoundID() string {
	return s.roundID
}

// Ticks returns how many ticks the current round has processed.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Grid returns the session grid.
func (s *Session) Grid() core.Grid {
	return s.grid
}

// FrameTimeout returns the tick period.
func (s *Session) FrameTimeout() time.Duration {
	return s.frameTimeout
}

// Direction returns the committed movement direction.
func (s *Session) Direction() Direction {
	return s.direction
}

// Snake returns a copy of the snake, head first.
func (s *Session) Snake() []core.Point {
	return append([]core.Point(nil), s.snake...)
}

// Apple returns the apple position.
func (s *Session) Apple() core.Point {
	return s.apple
}

// Obstacles returns a copy of the obstacle set.
func (s *Session) Obstacles() []core.Point {
	return append([]core.Point(nil), s.obstacles...)
}
