package commands

import (
	"github.com/kvisle/herald/internal/command"
)

// New assembles and validates the full command registry.
func New() (command.Commands, error) {
	return command.NewRegistry().
		Bind(pingCommand()).
		Bind(aboutCommand()).
		Bind(helpCommand()).
		Bind(fuelCommand()).
		Bind(coinflipCommand()).
		Bind(jokeCommand()).
		Bind(timestampCommand()).
		Bind(userInfoCommand()).
		Bind(quoteCommand()).
		Bind(aliasCommand()).
		Bind(prefixCommand()).
		Bind(rolesCommand()).
		Bind(botCommand()).
		Bind(bulkDeleteCommand()).
		Bind(muteCommand()).
		Build()
}
