package snake

import "time"

// Scheduler runs repeating tasks for the session.
//
// Implementations must re-arm a task only after its previous run returned,
// so runs of one task never overlap, and must never run a stopped task again.
type Scheduler interface {
	Every(interval time.Duration, fn func()) TaskHandle
}

// TaskHandle cancels a repeating task.
type TaskHandle interface {
	Stop()
}

// StepScheduler is a Scheduler driven by explicit Step calls instead of a
// clock. Used for headless simulation and tests.
type StepScheduler struct {
	tasks []*stepTask
}

type stepTask struct {
	interval time.Duration
	fn       func()
	stopped  bool
}

func (t *stepTask) Stop() {
	t.stopped = true
}

// NewStepScheduler creates an idle step scheduler.
func NewStepScheduler() *StepScheduler {
	return &StepScheduler{}
}

// Every registers fn. It runs once per Step until stopped.
func (s *StepScheduler) Every(interval time.Duration, fn func()) TaskHandle {
	t := &stepTask{interval: interval, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Step runs every active task once and returns how many ran.
// Tasks registered during the step first run on the next one.
func (s *StepScheduler) Step() int {
	current := s.tasks
	ran := 0
	for _, t := range current {
		if t.stopped {
			continue
		}
		t.fn()
		ran++
	}
	s.compact()
	return ran
}

// Active returns the number of tasks that have not been stopped.
func (s *StepScheduler) Active() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

// compact drops stopped tasks.
func (s *StepScheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	clear(s.tasks[len(live):])
	s.tasks = live
}
