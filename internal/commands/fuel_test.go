package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvisle/herald/internal/command"
)

func fuelArgs(stint, minutes int64, seconds, consumption float64) command.Args {
	return command.Args{
		{Name: "stint", Value: command.IntegerValue(stint)},
		{Name: "minutes", Value: command.IntegerValue(minutes)},
		{Name: "seconds", Value: command.NumberValue(seconds)},
		{Name: "consumption", Value: command.NumberValue(consumption)},
	}
}

func TestFuelReply(t *testing.T) {
	// 30 min stint at 1:45 laps burning 2.4 L: 18 laps, 43.2 L, take 46.
	resp, err := fuelReply(fuelArgs(30, 1, 45, 2.4))
	require.NoError(t, err)
	assert.Equal(t, command.ResponseCreateMessage, resp.Kind)
	assert.Contains(t, resp.Text, "18 laps")
	assert.Contains(t, resp.Text, "43.2 L")
	assert.Contains(t, resp.Text, "46 L")
}

func TestFuelReplyFractionalSeconds(t *testing.T) {
	// 20 min stint at 1:42.5 laps burning 3.1 L: 12 laps, 37.2 L, take 41.
	resp, err := fuelReply(fuelArgs(20, 1, 42.5, 3.1))
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "12 laps")
	assert.Contains(t, resp.Text, "37.2 L")
	assert.Contains(t, resp.Text, "41 L")
}

func TestFuelReplyZeroLapTime(t *testing.T) {
	_, err := fuelReply(fuelArgs(30, 0, 0, 2.4))
	var parseErr *command.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestRegistryBuilds(t *testing.T) {
	cmds, err := New()
	require.NoError(t, err)

	for _, name := range []string{"ping", "help", "fuel", "quote", "alias", "prefix", "roles", "bot", "bulk-delete", "mute", "user-info", "time"} {
		_, ok := cmds.Get(name)
		assert.True(t, ok, name)
	}
}
