package command

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgsTypedAccessors(t *testing.T) {
	args := Args{
		{Name: "flag", Value: BoolValue(true)},
		{Name: "count", Value: IntegerValue(42)},
		{Name: "ratio", Value: NumberValue(0.5)},
		{Name: "label", Value: StringValue("hello")},
		{Name: "who", Value: UserValue(RefID[discordgo.User]("123"))},
	}

	flag, err := args.Bool("flag")
	require.NoError(t, err)
	assert.True(t, flag)

	count, err := args.Integer("count")
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)

	ratio, err := args.Number("ratio")
	require.NoError(t, err)
	assert.Equal(t, 0.5, ratio)

	label, err := args.String("label")
	require.NoError(t, err)
	assert.Equal(t, "hello", label)

	who, err := args.User("who")
	require.NoError(t, err)
	assert.Equal(t, "123", who.ID())
}

func TestArgsMissing(t *testing.T) {
	args := Args{{Name: "label", Value: StringValue("x")}}

	_, err := args.String("other")
	var missing *ArgMissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "other", missing.Name)
}

func TestArgsKindMismatch(t *testing.T) {
	args := Args{{Name: "count", Value: IntegerValue(3)}}

	_, err := args.String("count")
	var mismatch *ArgTypeError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "count", mismatch.Name)
}

func TestRefObjectAccess(t *testing.T) {
	bare := RefID[discordgo.User]("42")
	_, ok := bare.Obj()
	assert.False(t, ok)
	assert.Equal(t, "42", bare.ID())

	full := RefObj("42", &discordgo.User{ID: "42", Username: "someone"})
	user, ok := full.Obj()
	require.True(t, ok)
	assert.Equal(t, "someone", user.Username)
}
