// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping and drawing the session.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/canvas-snake/internal/snake"
)

// TickMsg is sent when a scheduled task is due.
// ID identifies the task; ticks for stopped tasks are dropped.
type TickMsg struct {
	ID int
	At time.Time
}

// tickCmd returns a Bubble Tea command that fires a single tick after interval.
func tickCmd(id int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, At: t}
	})
}

// tickScheduler implements snake.Scheduler on top of the Bubble Tea event
// loop. Each task is re-armed with tea.Tick after it runs, so callbacks always
// execute on the program goroutine.
type tickScheduler struct {
	nextID  int
	tasks   map[int]*tickTask
	pending []tea.Cmd
}

type tickTask struct {
	sched    *tickScheduler
	id       int
	interval time.Duration
	fn       func()
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{tasks: make(map[int]*tickTask)}
}

// Every registers fn. The first run happens one interval from now.
func (s *tickScheduler) Every(interval time.Duration, fn func()) snake.TaskHandle {
	s.nextID++
	t := &tickTask{sched: s, id: s.nextID, interval: interval, fn: fn}
	s.tasks[t.id] = t
	s.pending = append(s.pending, tickCmd(t.id, interval))
	return t
}

// Stop cancels the task. A tick already in flight is ignored when it lands.
func (t *tickTask) Stop() {
	delete(t.sched.tasks, t.id)
}

// Fire runs the task addressed by msg and returns the commands needed to
// keep the active tasks ticking.
func (s *tickScheduler) Fire(msg TickMsg) tea.Cmd {
	t, ok := s.tasks[msg.ID]
	if !ok {
		return s.Drain()
	}

	t.fn()

	// fn may have stopped its own task (game over)
	if _, ok := s.tasks[msg.ID]; ok {
		s.pending = append(s.pending, tickCmd(t.id, t.interval))
	}
	return s.Drain()
}

// Drain returns the queued tick commands as a single batch.
func (s *tickScheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Active returns the number of registered tasks.
func (s *tickScheduler) Active() int {
	return len(s.tasks)
}
