// Package metrics records session activity as Prometheus collectors on a
// private registry and exports them in the text exposition format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder implements snake.Observer.
// Cardinality is fixed: no per-round labels.
type Recorder struct {
	registry *prometheus.Registry

	ticks        prometheus.Counter
	apples       prometheus.Counter
	rounds       prometheus.Counter
	newHighs     prometheus.Counter
	highScore    prometheus.Gauge
	lastScore    prometheus.Gauge
	tickDuration prometheus.Histogram
}

// NewRecorder creates a recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "snake_ticks_total",
			Help: "Ticks processed while running",
		}),
		apples: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "snake_apples_eaten_total",
			Help: "Apples eaten across all rounds",
		}),
		rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "snake_rounds_total",
			Help: "Rounds that reached game over",
		}),
		newHighs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "snake_new_high_scores_total",
			Help: "Rounds that beat the stored high score",
		}),
		highScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "snake_high_score",
			Help: "Best score seen so far",
		}),
		lastScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "snake_last_round_score",
			Help: "Score of the most recent finished round",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "snake_tick_duration_seconds",
			Help:    "Time spent in a game tick",
			Buckets: []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}

	r.registry.MustRegister(
		r.ticks,
		r.apples,
		r.rounds,
		r.newHighs,
		r.highScore,
		r.lastScore,
		r.tickDuration,
	)
	return r
}

// TickCompleted records one processed tick.
func (r *Recorder) TickCompleted(elapsed time.Duration) {
	r.ticks.Inc()
	r.tickDuration.Observe(elapsed.Seconds())
}

// AppleEaten records an eaten apple.
func (r *Recorder) AppleEaten(int) {
	r.apples.Inc()
}

// RoundOver records a finished round.
func (r *Recorder) RoundOver(score, highScore int, newHigh bool) {
	r.rounds.Inc()
	r.lastScore.Set(float64(score))
	r.highScore.Set(float64(highScore))
	if newHigh {
		r.newHighs.Inc()
	}
}

// SetHighScore seeds the high score gauge, typically with the stored value.
func (r *Recorder) SetHighScore(v int) {
	r.highScore.Set(float64(v))
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
