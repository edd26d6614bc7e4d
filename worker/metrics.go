package worker

import (
	"github.com/neonsnake/engine/rules"
	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentSink wraps all sink methods to instrument the underlying calls.
func InstrumentSink(s Sink) Sink { return &metrics{s: s} }

var (
	sinkCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "loop",
			Name:      "sink_call_duration_seconds",
			Help:      "Duration of sink calls made by the game loop.",
		},
		[]string{"method"},
	)
	ticksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "loop",
		Name:      "ticks_total",
		Help:      "Live ticks processed.",
	})
	foodEaten = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "loop",
		Name:      "food_eaten_total",
		Help:      "Food eaten across all games.",
	})
	gamesOver = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "loop",
		Name:      "games_over_total",
		Help:      "Games that ended with a self collision.",
	})
	lastScore = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "snake",
		Subsystem: "loop",
		Name:      "last_score",
		Help:      "Final score of the most recent game.",
	})
)

func instrument(method string) func() {
	t := prometheus.NewTimer(sinkCalls.WithLabelValues(method))
	return t.ObserveDuration
}

func init() {
	prometheus.MustRegister(sinkCalls, ticksTotal, foodEaten, gamesOver, lastScore)
}

type metrics struct {
	s     Sink
	score int
}

func (m *metrics) Render(frame rules.Frame) {
	defer instrument("Render")()
	m.s.Render(frame)
}

func (m *metrics) Tick(score, elapsed int) {
	defer instrument("Tick")()
	ticksTotal.Inc()
	m.countFood(score)
	m.s.Tick(score, elapsed)
}

func (m *metrics) GameOver(score, elapsed int) {
	defer instrument("GameOver")()
	gamesOver.Inc()
	m.countFood(score)
	lastScore.Set(float64(score))
	m.s.GameOver(score, elapsed)
}

func (m *metrics) countFood(score int) {
	if score > m.score {
		foodEaten.Add(float64(score - m.score))
		m.score = score
	}
}
