package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"

	"github.com/kvisle/herald/internal/command"
)

func TestGateClassicDirectMessages(t *testing.T) {
	dm := &discordgo.Message{ChannelID: "20", Author: &discordgo.User{ID: "1"}}

	guildOnly := command.New("alias", "Guild only").Build()
	assert.ErrorIs(t, gateClassic(nil, guildOnly, dm), command.ErrDisabled)

	open := command.New("ping", "Anywhere").DM().Build()
	assert.NoError(t, gateClassic(nil, open, dm))
}

func TestGateClassicGuildWithoutRequirement(t *testing.T) {
	msg := &discordgo.Message{GuildID: "30", ChannelID: "20", Author: &discordgo.User{ID: "1"}}
	cmd := command.New("ping", "Open to all").Build()
	assert.NoError(t, gateClassic(nil, cmd, msg))
}
