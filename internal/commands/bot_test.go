package commands

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvisle/herald/internal/discord"
)

func TestBotSubcommandsReachableClassically(t *testing.T) {
	cmds, err := New()
	require.NoError(t, err)

	msg := &discordgo.Message{
		Content: "!bot edit rewritten content",
		ReferencedMessage: &discordgo.Message{
			ID:        "555",
			ChannelID: "20",
		},
	}

	req, err := discord.ParseClassic(cmds, "!", msg)
	require.NoError(t, err)
	assert.Equal(t, "edit", req.Node.Name)

	ref, err := req.Args.Message("message")
	require.NoError(t, err)
	assert.Equal(t, "555", ref.ID())

	text, err := req.Args.String("text")
	require.NoError(t, err)
	assert.Equal(t, "rewritten content", text)

	msg = &discordgo.Message{Content: "!bot say \"hello there\""}
	req, err = discord.ParseClassic(cmds, "!", msg)
	require.NoError(t, err)
	assert.Equal(t, "say", req.Node.Name)
}
