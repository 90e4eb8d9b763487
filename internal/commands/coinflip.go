package commands

import (
	"math/rand"

	"github.com/kvisle/herald/internal/command"
)

func coinflipCommand() *command.Builder {
	return command.New("coinflip", "Flip a coin").
		DM().
		Attach(command.Classic(coinflipClassic)).
		Attach(command.Slash(coinflipSlash))
}

func coinflipClassic(_ *command.Context, _ *command.ClassicRequest) (command.Response, error) {
	return coinflipReply(), nil
}

func coinflipSlash(_ *command.Context, _ *command.SlashRequest) (command.Response, error) {
	return coinflipReply(), nil
}

func coinflipReply() command.Response {
	if rand.Intn(2) == 0 {
		return command.CreateMessage("🪙 Heads!")
	}
	return command.CreateMessage("🪙 Tails!")
}
