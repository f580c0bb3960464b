package snake

import "github.com/vovakirdan/canvas-snake/internal/core"

// HandleKey applies one input event.
//
// Arrow keys buffer the next direction unless it reverses the committed one.
// Enter or Space restart a finished round; otherwise Space toggles pause.
// Unknown keys and keys before the first Start are ignored.
func (s *Session) HandleKey(k core.Key) {
	if s.state == StateIdle {
		return
	}

	if dir, ok := directionForKey(k); ok {
		if s.direction != dir.Opposite() {
			s.nextDir = dir
		}
		return
	}

	switch {
	case (k == core.KeyEnter || k == core.KeySpace) && s.state == StateGameOver:
		s.Start()
	case k == core.KeySpace:
		s.TogglePause()
	}
}

// TogglePause pauses a running round or resumes a paused one.
func (s *Session) TogglePause() {
	switch s.state {
	case StateRunning:
		s.Pause()
	case StatePaused:
		s.Resume()
	}
}

// Pause stops the tick task. Reports whether the state changed.
func (s *Session) Pause() bool {
	if s.state != StateRunning {
		return false
	}
	s.stopTimer()
	s.state = StatePaused
	s.display.SetPaused(true)
	s.logger.Debug("paused", "round", s.roundID, "ticks", s.ticks)
	return true
}

// Resume creates a fresh tick task. Missed ticks are not replayed.
// Reports whether the state changed.
func (s *Session) Resume() bool {
	if s.state != StatePaused {
		return false
	}
	s.state = StateRunning
	s.display.SetPaused(false)
	s.handle = s.sched.Every(s.frameTimeout, s.Tick)
	s.logger.Debug("resumed", "round", s.roundID, "ticks", s.ticks)
	return true
}

// Restart starts a new round if the current one is over.
func (s *Session) Restart() bool {
	if s.state != StateGameOver {
		return false
	}
	s.Start()
	return true
}
