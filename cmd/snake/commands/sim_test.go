package commands

import (
	"context"
	"testing"

	"github.com/neonsnake/engine/rules"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func withBoard(t *testing.T, w, h, c, ms int) {
	ow, oh, oc, oms, oturns, oseed := width, height, cellSize, tickMS, maxTurns, seed
	t.Cleanup(func() {
		width, height, cellSize, tickMS, maxTurns, seed = ow, oh, oc, oms, oturns, oseed
	})
	width, height, cellSize, tickMS = w, h, c, ms
}

func TestSimulate(t *testing.T) {
	withBoard(t, 200, 200, 20, 1)
	maxTurns = 30
	seed = 3

	res, err := simulate(context.Background())
	require.NoError(t, err)
	require.True(t, res.Turns > 0 && res.Turns <= 30, "turns %d", res.Turns)
}

func TestSimulateInvalidBoard(t *testing.T) {
	withBoard(t, 210, 200, 20, 1)

	_, err := simulate(context.Background())
	require.Error(t, err)
	require.Equal(t, rules.ErrInvalidConfig, errors.Cause(err))
}
