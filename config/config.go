package config

import (
	"os"
	"strconv"
	"time"

	"github.com/neonsnake/engine/rules"
	"golang.org/x/time/rate"
)

// Configuration variables. These are the defaults for the command line flags
// and can be tuned from the environment.
var (
	BoardWidth     = getEnvInt("SNAKE_WIDTH", 400)
	BoardHeight    = getEnvInt("SNAKE_HEIGHT", 400)
	CellSize       = getEnvInt("SNAKE_CELL", 20)
	TickMS         = getEnvInt("SNAKE_TICK_MS", 100)
	SpectateRate   = rate.Limit(getEnvInt("SNAKE_SPECTATE_RPS", 20))
	SpectateBurst  = getEnvInt("SNAKE_SPECTATE_BURST", 5)
	PrometheusAddr = getEnvString("SNAKE_PROMETHEUS_LISTEN", "")
)

// Board returns the game config described by the current variables.
func Board() rules.Config {
	return rules.Config{
		Width:        BoardWidth,
		Height:       BoardHeight,
		CellSize:     CellSize,
		TickInterval: time.Duration(TickMS) * time.Millisecond,
	}
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvString(varName string, defaults string) string {
	if val := os.Getenv(varName); val != "" {
		return val
	}
	return defaults
}
