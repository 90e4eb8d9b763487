package command

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueFromTextBool(t *testing.T) {
	v, err := ValueFromText(KindBool, "TRUE")
	require.NoError(t, err)
	b, ok := v.Bool()
	assert.True(t, ok)
	assert.True(t, b)

	_, err = ValueFromText(KindBool, "yes")
	assert.Error(t, err)
}

func TestValueFromTextNumbers(t *testing.T) {
	v, err := ValueFromText(KindInteger, "-7")
	require.NoError(t, err)
	i, _ := v.Integer()
	assert.Equal(t, int64(-7), i)

	v, err = ValueFromText(KindNumber, "2.75")
	require.NoError(t, err)
	n, _ := v.Number()
	assert.Equal(t, 2.75, n)

	_, err = ValueFromText(KindInteger, "2.75")
	assert.Error(t, err)
}

func TestValueFromTextMentions(t *testing.T) {
	v, err := ValueFromText(KindUser, "<@123>")
	require.NoError(t, err)
	u, _ := v.User()
	assert.Equal(t, "123", u.ID())

	v, err = ValueFromText(KindUser, "<@!123>")
	require.NoError(t, err)
	u, _ = v.User()
	assert.Equal(t, "123", u.ID())

	v, err = ValueFromText(KindChannel, "<#456>")
	require.NoError(t, err)
	ch, _ := v.Channel()
	assert.Equal(t, "456", ch.ID())

	v, err = ValueFromText(KindRole, "<@&789>")
	require.NoError(t, err)
	r, _ := v.Role()
	assert.Equal(t, "789", r.ID())

	// Bare ids are accepted everywhere a mention is.
	v, err = ValueFromText(KindUser, "123")
	require.NoError(t, err)
	u, _ = v.User()
	assert.Equal(t, "123", u.ID())

	// Role mentions are not user mentions.
	_, err = ValueFromText(KindUser, "<@&789>")
	assert.Error(t, err)
}

func TestValueFromMessageReply(t *testing.T) {
	replied := &discordgo.Message{ID: "900", Content: "original"}
	msg := &discordgo.Message{ID: "901", ReferencedMessage: replied}

	v, bound, err := ValueFromMessage(KindMessage, msg, 0)
	require.NoError(t, err)
	require.True(t, bound)

	ref, _ := v.Message()
	assert.Equal(t, "900", ref.ID())
	obj, ok := ref.Obj()
	require.True(t, ok)
	assert.Equal(t, "original", obj.Content)

	// No reply falls through to the token path.
	_, bound, err = ValueFromMessage(KindMessage, &discordgo.Message{ID: "902"}, 0)
	require.NoError(t, err)
	assert.False(t, bound)
}

func TestValueFromMessageAttachment(t *testing.T) {
	msg := &discordgo.Message{
		ID: "903",
		Attachments: []*discordgo.MessageAttachment{
			{ID: "1", Filename: "a.png"},
			{ID: "2", Filename: "b.png"},
		},
	}

	v, bound, err := ValueFromMessage(KindAttachment, msg, 1)
	require.NoError(t, err)
	require.True(t, bound)
	ref, _ := v.Attachment()
	assert.Equal(t, "2", ref.ID())

	_, _, err = ValueFromMessage(KindAttachment, msg, 2)
	assert.ErrorIs(t, err, ErrMissingArgs)
}

func TestValueFromOption(t *testing.T) {
	// Integers arrive as JSON numbers.
	v, err := ValueFromOption(&discordgo.ApplicationCommandInteractionDataOption{
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(30),
	}, nil)
	require.NoError(t, err)
	i, _ := v.Integer()
	assert.Equal(t, int64(30), i)

	resolved := &discordgo.ApplicationCommandInteractionDataResolved{
		Users: map[string]*discordgo.User{"123": {ID: "123", Username: "someone"}},
	}
	v, err = ValueFromOption(&discordgo.ApplicationCommandInteractionDataOption{
		Type:  discordgo.ApplicationCommandOptionUser,
		Value: "123",
	}, resolved)
	require.NoError(t, err)
	ref, _ := v.User()
	user, ok := ref.Obj()
	require.True(t, ok)
	assert.Equal(t, "someone", user.Username)
}
