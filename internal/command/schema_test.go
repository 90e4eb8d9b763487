package command

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemasPerVariant(t *testing.T) {
	cmd := New("inspect", "Inspect a user").
		DM().
		Attach(Slash(okSlash)).
		Attach(UserTarget(okUser)).
		Build()

	schemas := cmd.Schemas()
	require.Len(t, schemas, 2)

	slash, target := schemas[0], schemas[1]
	assert.Equal(t, discordgo.ChatApplicationCommand, slash.Type)
	assert.Equal(t, "Inspect a user", slash.Description)
	assert.Equal(t, discordgo.UserApplicationCommand, target.Type)
	assert.Empty(t, target.Description)

	require.NotNil(t, slash.DMPermission)
	assert.True(t, *slash.DMPermission)
}

func TestSchemasClassicOnlyCommandHasNone(t *testing.T) {
	cmd := New("local", "Classic only").Attach(Classic(okClassic)).Build()
	assert.Empty(t, cmd.Schemas())
}

func TestSchemasArgMapping(t *testing.T) {
	cmd := New("sample", "Sample").
		Option(Integer("amount", "How many").Min(0).Max(100).Required()).
		Option(Message("target", "Message id")).
		Option(Mention("whom", "Any mentionable")).
		Attach(Slash(okSlash)).
		Build()

	schemas := cmd.Schemas()
	require.Len(t, schemas, 1)
	opts := schemas[0].Options
	require.Len(t, opts, 3)

	amount := opts[0]
	assert.Equal(t, discordgo.ApplicationCommandOptionInteger, amount.Type)
	assert.True(t, amount.Required)
	require.NotNil(t, amount.MinValue)
	assert.Equal(t, float64(0), *amount.MinValue)
	assert.Equal(t, float64(100), amount.MaxValue)

	// Message arguments travel as snowflake strings.
	target := opts[1]
	assert.Equal(t, discordgo.ApplicationCommandOptionString, target.Type)
	require.NotNil(t, target.MinLength)
	assert.Equal(t, 1, *target.MinLength)
	assert.Equal(t, 32, target.MaxLength)

	assert.Equal(t, discordgo.ApplicationCommandOptionMentionable, opts[2].Type)
}

func TestSchemasGroupNesting(t *testing.T) {
	cmd := New("deploy", "Deploy things").
		Option(NewGroup("service", "Service management").
			Subs(Sub("start", "Start a service").
				Option(String("name", "Service name").Required()).
				Attach(Slash(okSlash)))).
		Build()

	schemas := cmd.Schemas()
	require.Len(t, schemas, 1)
	require.Len(t, schemas[0].Options, 1)

	group := schemas[0].Options[0]
	assert.Equal(t, discordgo.ApplicationCommandOptionSubCommandGroup, group.Type)
	require.Len(t, group.Options, 1)
	start := group.Options[0]
	assert.Equal(t, discordgo.ApplicationCommandOptionSubCommand, start.Type)
	require.Len(t, start.Options, 1)
	assert.Equal(t, "name", start.Options[0].Name)
}
