package worker

import (
	"testing"

	"github.com/neonsnake/engine/rules"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func gatherValue(t *testing.T, name string) float64 {
	mfs, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		var total float64
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				total += m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				total += float64(m.GetHistogram().GetSampleCount())
			}
		}
		return total
	}
	return 0
}

func TestInstrumentSink(t *testing.T) {
	ticks := gatherValue(t, "snake_loop_ticks_total")
	food := gatherValue(t, "snake_loop_food_eaten_total")
	overs := gatherValue(t, "snake_loop_games_over_total")
	calls := gatherValue(t, "snake_loop_sink_call_duration_seconds")

	inner := &recordingSink{}
	s := InstrumentSink(inner)
	s.Render(rules.Frame{})
	s.Tick(0, 0)
	s.Render(rules.Frame{})
	s.Tick(2, 1)
	s.GameOver(3, 1)

	require.Equal(t, []string{"render", "tick", "render", "tick", "over"}, inner.calls)
	require.Equal(t, ticks+2, gatherValue(t, "snake_loop_ticks_total"))
	require.Equal(t, food+3, gatherValue(t, "snake_loop_food_eaten_total"))
	require.Equal(t, overs+1, gatherValue(t, "snake_loop_games_over_total"))
	require.Equal(t, float64(3), gatherValue(t, "snake_loop_last_score"))
	require.Equal(t, calls+5, gatherValue(t, "snake_loop_sink_call_duration_seconds"))
}
