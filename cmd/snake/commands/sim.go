package commands

import (
	"context"

	"github.com/neonsnake/engine/rules"
	"github.com/neonsnake/engine/worker"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var maxTurns = 1000

func init() {
	simCmd.Flags().IntVarP(&maxTurns, "turns", "n", maxTurns, "stop after this many turns, 0 runs until game over")
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "runs a headless game steered toward the food by an autopilot",
	RunE: func(*cobra.Command, []string) error {
		prometheus()
		_, err := simulate(context.Background())
		return err
	},
}

func simulate(ctx context.Context) (worker.Result, error) {
	cfg := boardConfig()
	state, err := rules.NewGameState(cfg, foodSource())
	if err != nil {
		return worker.Result{}, err
	}
	hub, stop := spectate()
	defer stop()

	id := uuid.NewV4().String()
	entry := log.WithField("game", id)
	pilot := worker.NewAutopilot(cfg)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var loop *worker.Loop
	steer := worker.SinkFuncs{
		RenderFunc: func(f rules.Frame) {
			if maxTurns > 0 && f.Turn >= maxTurns {
				cancel()
				return
			}
			loop.RequestDirection(pilot.Next(f))
		},
	}
	sinks := worker.MultiSink{worker.LogSink(entry), steer}
	if hub != nil {
		hub.Reset(id)
		sinks = append(sinks, hub)
	}
	loop = worker.NewLoop(state, worker.InstrumentSink(sinks), worker.WithGameID(id))
	// the autopilot needs a first move to leave the idle state
	loop.RequestDirection(pilot.Next(state.Frame()))

	res, err := loop.Run(ctx)
	if err == context.Canceled && loop.Status() == rules.GameStatusRunning {
		entry.WithField("turns", res.Turns).Info("turn limit reached")
		err = nil
	}
	if err != nil {
		return res, err
	}
	entry.WithFields(log.Fields{
		"score":   res.Score,
		"elapsed": res.Elapsed,
		"turns":   res.Turns,
	}).Info("simulation finished")
	return res, nil
}
