package snake

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/vovakirdan/canvas-snake/internal/core"
)

// ScriptEvent delivers Key once Tick ticks have been stepped.
type ScriptEvent struct {
	Tick int
	Key  core.Key
}

// ParseScript parses a comma-separated key script such as "0:down,4:left,9:space".
// Events are returned ordered by tick; events on the same tick keep their order.
func ParseScript(s string) ([]ScriptEvent, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var events []ScriptEvent
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tickStr, keyStr, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("snake: script event %q: want tick:key", part)
		}
		tick, err := strconv.Atoi(strings.TrimSpace(tickStr))
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("snake: script event %q: bad tick", part)
		}
		k := core.ParseKey(keyStr)
		if k == core.KeyNone {
			return nil, fmt.Errorf("snake: script event %q: unknown key %q", part, keyStr)
		}
		events = append(events, ScriptEvent{Tick: tick, Key: k})
	}

	slices.SortStableFunc(events, func(a, b ScriptEvent) int {
		return a.Tick - b.Tick
	})
	return events, nil
}

// Replay steps sched the given number of times, feeding each scripted key to
// the session before the step whose index matches its tick. Returns how many
// steps ran a task; the count stops growing once the round is over.
func Replay(s *Session, sched *StepScheduler, steps int, events []ScriptEvent) int {
	ran := 0
	next := 0
	for i := 0; i < steps; i++ {
		for next < len(events) && events[next].Tick <= i {
			s.HandleKey(events[next].Key)
			next++
		}
		if sched.Step() > 0 {
			ran++
		}
	}
	return ran
}
