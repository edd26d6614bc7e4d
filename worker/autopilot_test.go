package worker

import (
	"context"
	"testing"

	"github.com/neonsnake/engine/rules"
	"github.com/stretchr/testify/require"
)

func TestAutopilotTowardFood(t *testing.T) {
	a := NewAutopilot(rules.DefaultConfig())
	tests := []struct {
		name  string
		frame rules.Frame
		want  rules.Move
	}{
		{
			name: "Right",
			frame: rules.Frame{
				Snake: []rules.Position{{X: 200, Y: 200}},
				Food:  rules.Position{X: 260, Y: 200},
			},
			want: rules.MoveRight,
		},
		{
			name: "WrapLeft",
			frame: rules.Frame{
				Snake: []rules.Position{{X: 20, Y: 200}},
				Food:  rules.Position{X: 360, Y: 200},
			},
			want: rules.MoveLeft,
		},
		{
			name: "WrapUp",
			frame: rules.Frame{
				Snake: []rules.Position{{X: 200, Y: 20}},
				Food:  rules.Position{X: 200, Y: 380},
			},
			want: rules.MoveUp,
		},
		{
			name: "NoReversal",
			frame: rules.Frame{
				Snake:     []rules.Position{{X: 200, Y: 200}, {X: 180, Y: 200}},
				Direction: rules.Right,
				Food:      rules.Position{X: 100, Y: 200},
			},
			want: rules.MoveUp,
		},
		{
			name: "AvoidBody",
			frame: rules.Frame{
				Snake: []rules.Position{
					{X: 200, Y: 200},
					{X: 200, Y: 220},
					{X: 220, Y: 220},
					{X: 220, Y: 200},
					{X: 220, Y: 180},
				},
				Direction: rules.Up,
				Food:      rules.Position{X: 300, Y: 200},
			},
			want: rules.MoveUp,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, a.Next(test.frame))
		})
	}
}

func TestAutopilotPlaysAGame(t *testing.T) {
	cfg := testConfig()
	state, err := rules.NewGameState(cfg, rules.NewRandomFoodSource(7))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pilot := NewAutopilot(cfg)
	var l *Loop
	l = NewLoop(state, SinkFuncs{
		RenderFunc: func(f rules.Frame) {
			if f.Turn >= 300 {
				cancel()
				return
			}
			l.RequestDirection(pilot.Next(f))
		},
	})
	res, _ := l.Run(ctx)
	require.True(t, res.Score > 0, "autopilot never ate")
}
