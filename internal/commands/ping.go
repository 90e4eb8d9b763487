package commands

import (
	"fmt"
	"time"

	"github.com/kvisle/herald/internal/command"
)

func pingCommand() *command.Builder {
	return command.New("ping", "Check whether the bot is alive").
		DM().
		Attach(command.Classic(pingClassic)).
		Attach(command.Slash(pingSlash))
}

func pingClassic(ctx *command.Context, _ *command.ClassicRequest) (command.Response, error) {
	return pingReply(ctx), nil
}

func pingSlash(ctx *command.Context, _ *command.SlashRequest) (command.Response, error) {
	return pingReply(ctx), nil
}

func pingReply(ctx *command.Context) command.Response {
	latency := ctx.Session.HeartbeatLatency().Round(time.Millisecond)
	return command.CreateMessage(fmt.Sprintf("🏓 Pong! Heartbeat `%s`.", latency))
}
