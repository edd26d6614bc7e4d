package commands

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/neonsnake/engine/config"
	"github.com/neonsnake/engine/rules"
	"github.com/neonsnake/engine/version"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "snake",
	Short:             "snake plays a neon snake game in the terminal",
	Version:           version.Version,
	PersistentPreRunE: setupLogging,
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

var (
	width        = config.BoardWidth
	height       = config.BoardHeight
	cellSize     = config.CellSize
	tickMS       = config.TickMS
	seed         int64
	spectateAddr string
	promListen   = config.PrometheusAddr
	logLevel     = "info"
	logFile      string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&width, "width", width, "board width in units")
	flags.IntVar(&height, "height", height, "board height in units")
	flags.IntVar(&cellSize, "cell", cellSize, "cell size in units, must divide width and height")
	flags.IntVar(&tickMS, "tick-ms", tickMS, "delay between ticks in milliseconds")
	flags.Int64Var(&seed, "seed", seed, "food placement seed, 0 picks one from the clock")
	flags.StringVar(&spectateAddr, "spectate", spectateAddr, "serve the game to spectators on this address")
	flags.StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint, empty disables it")
	flags.StringVar(&logLevel, "log-level", logLevel, "log level")
	flags.StringVar(&logFile, "log-file", logFile, "write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setupLogging(c *cobra.Command, args []string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	log.SetLevel(level)

	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return errors.Wrap(err, "log file")
		}
		log.SetOutput(f)
	case c.Name() == playCmd.Name() || !c.HasParent():
		// anything written to the terminal would corrupt the board
		log.SetOutput(ioutil.Discard)
	}
	return nil
}

func boardConfig() rules.Config {
	return rules.Config{
		Width:        width,
		Height:       height,
		CellSize:     cellSize,
		TickInterval: time.Duration(tickMS) * time.Millisecond,
	}
}

func foodSource() rules.FoodSource {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	log.WithField("seed", s).Debug("food source")
	return rules.NewRandomFoodSource(s)
}
