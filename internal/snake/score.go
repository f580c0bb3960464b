package snake

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultHighScoreKey is the store key holding the high score.
const DefaultHighScoreKey = "high-score"

// KeyValueStore is the persistent string store the high score lives in.
type KeyValueStore interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	// Set stores value under key.
	Set(key, value string) error
}

// ScoreTracker keeps the round score and the persisted high score.
type ScoreTracker struct {
	store  KeyValueStore
	key    string
	logger *log.Logger
	score  int
	high   int
}

// NewScoreTracker loads the high score from store once.
// A missing, malformed or negative value counts as 0.
func NewScoreTracker(store KeyValueStore, key string, logger *log.Logger) *ScoreTracker {
	if key == "" {
		key = DefaultHighScoreKey
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	t := &ScoreTracker{store: store, key: key, logger: logger}
	t.high = t.load()
	return t
}

func (t *ScoreTracker) load() int {
	if t.store == nil {
		return 0
	}
	raw, ok, err := t.store.Get(t.key)
	if err != nil {
		t.logger.Warn("could not load high score", "key", t.key, "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		t.logger.Debug("ignoring malformed high score", "key", t.key, "value", raw)
		return 0
	}
	return v
}

// Reset zeroes the round score.
func (t *ScoreTracker) Reset() {
	t.score = 0
}

// RecordApple adds one point and returns the new score.
func (t *ScoreTracker) RecordApple() int {
	t.score++
	return t.score
}

// Finalize promotes the round score to high score if it beats it.
// Reports whether the high score changed.
func (t *ScoreTracker) Finalize() bool {
	if t.score <= t.high {
		return false
	}
	t.high = t.score
	if t.store != nil {
		if err := t.store.Set(t.key, strconv.Itoa(t.high)); err != nil {
			t.logger.Warn("could not persist high score", "key", t.key, "error", err)
		}
	}
	return true
}

// Score returns the round score.
func (t *ScoreTracker) Score() int {
	return t.score
}

// HighScore returns the best score seen so far.
func (t *ScoreTracker) HighScore() int {
	return t.high
}
