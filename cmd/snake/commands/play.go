package commands

import (
	"context"

	"github.com/neonsnake/engine/api"
	"github.com/neonsnake/engine/rules"
	"github.com/neonsnake/engine/worker"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays a game in the terminal",
	RunE: func(*cobra.Command, []string) error {
		return play(context.Background())
	},
}

type outcome struct {
	result worker.Result
	err    error
}

func play(ctx context.Context) error {
	cfg := boardConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}
	prometheus()
	hub, stop := spectate()
	defer stop()

	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "termbox init")
	}
	defer termbox.Close()

	events := setupEventQueue()
	src := foodSource()
	for {
		again, err := playGame(ctx, cfg, src, events, hub)
		if err != nil || !again {
			return err
		}
	}
}

// playGame runs one game with a fresh state and reports whether the player
// asked for another one.
func playGame(ctx context.Context, cfg rules.Config, src rules.FoodSource, events <-chan termbox.Event, hub *api.Hub) (bool, error) {
	state, err := rules.NewGameState(cfg, src)
	if err != nil {
		return false, err
	}
	id := uuid.NewV4().String()
	sinks := worker.MultiSink{newScreen(cfg)}
	if hub != nil {
		hub.Reset(id)
		sinks = append(sinks, hub)
	}
	loop := worker.NewLoop(state, worker.InstrumentSink(sinks), worker.WithGameID(id))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// draw the idle board before the first tick
	frame := state.Frame()
	sinks[0].Render(frame)
	sinks[0].Tick(0, 0)

	done := make(chan outcome, 1)
	go func() {
		res, err := loop.Run(ctx)
		done <- outcome{result: res, err: err}
	}()

	for {
		select {
		case ev := <-events:
			if quitKey(ev) {
				cancel()
				<-done
				return false, nil
			}
			if m, ok := keyMove(ev); ok {
				loop.RequestDirection(m)
			}
		case o := <-done:
			if o.err != nil {
				if o.err == context.Canceled {
					return false, nil
				}
				return false, o.err
			}
			log.WithFields(log.Fields{
				"game":    id,
				"score":   o.result.Score,
				"elapsed": o.result.Elapsed,
				"turns":   o.result.Turns,
			}).Info("game finished")
			return waitForRestart(events), nil
		}
	}
}

func waitForRestart(events <-chan termbox.Event) bool {
	for ev := range events {
		switch {
		case restartKey(ev):
			return true
		case quitKey(ev):
			return false
		}
	}
	return false
}
