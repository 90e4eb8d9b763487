package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvisle/herald/internal/command"
)

func opt(name string, typ discordgo.ApplicationCommandOptionType, value any, children ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    typ,
		Value:   value,
		Options: children,
	}
}

func TestDecodeInteractionFlatCommand(t *testing.T) {
	cmds := testRegistry(t)

	// The gateway does not guarantee option order; declaration order is
	// restored.
	data := &discordgo.ApplicationCommandInteractionData{
		Name:        "greet",
		CommandType: discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			opt("times", discordgo.ApplicationCommandOptionInteger, float64(3)),
			opt("who", discordgo.ApplicationCommandOptionString, "John"),
		},
	}

	dec, err := DecodeInteraction(cmds, data)
	require.NoError(t, err)
	assert.Equal(t, "greet", dec.Node.Name)

	require.Len(t, dec.Args, 2)
	assert.Equal(t, "who", dec.Args[0].Name)
	assert.Equal(t, "times", dec.Args[1].Name)
}

func TestDecodeInteractionGroupDescent(t *testing.T) {
	cmds := testRegistry(t)

	data := &discordgo.ApplicationCommandInteractionData{
		Name:        "bot",
		CommandType: discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			opt("message", discordgo.ApplicationCommandOptionSubCommandGroup, nil,
				opt("edit", discordgo.ApplicationCommandOptionSubCommand, nil,
					opt("text", discordgo.ApplicationCommandOptionString, "new content"),
					opt("message", discordgo.ApplicationCommandOptionString, "555"),
				)),
		},
	}

	dec, err := DecodeInteraction(cmds, data)
	require.NoError(t, err)
	assert.Equal(t, "edit", dec.Node.Name)

	ref, err := dec.Args.Message("message")
	require.NoError(t, err)
	assert.Equal(t, "555", ref.ID())

	text, err := dec.Args.String("text")
	require.NoError(t, err)
	assert.Equal(t, "new content", text)
}

func TestDecodeInteractionMessageOption(t *testing.T) {
	cmds := testRegistry(t)

	// Message arguments have no native option type; they arrive as string
	// ids and must come back as message references.
	data := &discordgo.ApplicationCommandInteractionData{
		Name:        "pin",
		CommandType: discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			opt("message", discordgo.ApplicationCommandOptionString, "9001"),
		},
	}

	dec, err := DecodeInteraction(cmds, data)
	require.NoError(t, err)

	ref, err := dec.Args.Message("message")
	require.NoError(t, err)
	assert.Equal(t, "9001", ref.ID())
}

func TestDecodeInteractionMessageOptionBadID(t *testing.T) {
	cmds := testRegistry(t)

	data := &discordgo.ApplicationCommandInteractionData{
		Name:        "pin",
		CommandType: discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			opt("message", discordgo.ApplicationCommandOptionString, "not-an-id"),
		},
	}

	_, err := DecodeInteraction(cmds, data)
	var parseErr *command.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Detail, "message")
}

func TestDecodeInteractionUnknownCommand(t *testing.T) {
	data := &discordgo.ApplicationCommandInteractionData{
		Name:        "nope",
		CommandType: discordgo.ChatApplicationCommand,
	}
	_, err := DecodeInteraction(testRegistry(t), data)
	var notFound *command.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDecodeInteractionUnknownOption(t *testing.T) {
	data := &discordgo.ApplicationCommandInteractionData{
		Name:        "greet",
		CommandType: discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			opt("who", discordgo.ApplicationCommandOptionString, "John"),
			opt("loudness", discordgo.ApplicationCommandOptionInteger, float64(9)),
		},
	}
	_, err := DecodeInteraction(testRegistry(t), data)
	var unexpected *command.UnexpectedArgsError
	require.ErrorAs(t, err, &unexpected)
	assert.Contains(t, unexpected.Detail, "loudness")
}

func TestDecodeInteractionMissingRequired(t *testing.T) {
	data := &discordgo.ApplicationCommandInteractionData{
		Name:        "greet",
		CommandType: discordgo.ChatApplicationCommand,
	}
	_, err := DecodeInteraction(testRegistry(t), data)
	assert.ErrorIs(t, err, command.ErrMissingArgs)
}

func TestDecodeInteractionTargetCommand(t *testing.T) {
	cmds, err := command.NewRegistry().
		Bind(command.New("quote", "Quote a message").
			Attach(command.MessageTarget(func(_ *command.Context, _ *command.MessageRequest) (command.Response, error) {
				return command.None(), nil
			}))).
		Build()
	require.NoError(t, err)

	data := &discordgo.ApplicationCommandInteractionData{
		Name:        "quote",
		CommandType: discordgo.MessageApplicationCommand,
		TargetID:    "777",
	}
	dec, err := DecodeInteraction(cmds, data)
	require.NoError(t, err)
	assert.Equal(t, "quote", dec.Node.Name)
	assert.Empty(t, dec.Args)
}
