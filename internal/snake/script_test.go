package snake

import (
	"testing"

	"github.com/vovakirdan/canvas-snake/internal/core"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []ScriptEvent
		wantErr bool
	}{
		{name: "empty", in: "  "},
		{
			name: "ordered",
			in:   "0:down, 4:left,9:space",
			want: []ScriptEvent{{0, core.KeyArrowDown}, {4, core.KeyArrowLeft}, {9, core.KeySpace}},
		},
		{
			name: "sorted stable",
			in:   "5:up,2:right,5:enter",
			want: []ScriptEvent{{2, core.KeyArrowRight}, {5, core.KeyArrowUp}, {5, core.KeyEnter}},
		},
		{name: "trailing comma", in: "1:d,", want: []ScriptEvent{{1, core.KeyArrowDown}}},
		{name: "missing colon", in: "3down", wantErr: true},
		{name: "negative tick", in: "-1:up", wantErr: true},
		{name: "bad tick", in: "x:up", wantErr: true},
		{name: "unknown key", in: "1:jump", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScript(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseScript(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseScript(%q) failed: %v", tt.in, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseScript(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestReplaySteersAndCounts(t *testing.T) {
	r := newRig(t, func(o *Options) { o.ObstacleCount = 0 })
	r.place([]core.Point{pt(160, 160)}, DirRight, pt(0, 0), nil)

	events := []ScriptEvent{{Tick: 2, Key: core.KeyArrowDown}}
	ran := Replay(r.session, r.sched, 4, events)

	if ran != 4 {
		t.Errorf("Replay() ran %d steps, want 4", ran)
	}
	// Two cells right, then two down
	if head := r.session.Snake()[0]; head != pt(192, 192) {
		t.Errorf("head = %v, want (192,192)", head)
	}
}

func TestReplayPauseStopsSteps(t *testing.T) {
	r := newRig(t, func(o *Options) { o.ObstacleCount = 0 })

	events := []ScriptEvent{{Tick: 1, Key: core.KeySpace}}
	ran := Replay(r.session, r.sched, 5, events)

	if ran != 1 {
		t.Errorf("Replay() ran %d steps, want 1", ran)
	}
	if r.session.State() != StatePaused || r.session.Ticks() != 1 {
		t.Errorf("state = %v ticks = %d, want paused after 1 tick", r.session.State(), r.session.Ticks())
	}
}
