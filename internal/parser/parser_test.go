package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgsOverlyUglyArguments(t *testing.T) {
	input := `    foo    bar "baz\n    ` + "`" + `.-_' thing" abc-goo'` + "`" + `" "sample text \\\"* ;    `

	args, err := ParseArgs(input)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`foo`,
		`bar`,
		`baz\n    ` + "`" + `.-_' thing`,
		`abc-goo'` + "`" + `"`,
		`sample text \\\`,
		`*`,
		`;`,
	}, args)
}

func TestParseArgsEmpty(t *testing.T) {
	args, err := ParseArgs("")
	require.NoError(t, err)
	assert.Empty(t, args)

	args, err = ParseArgs("  \t  ")
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestNextArg(t *testing.T) {
	arg, rest, err := NextArg(`    foo    bar`)
	require.NoError(t, err)
	assert.Equal(t, "foo", arg)
	assert.Equal(t, "   bar", rest)

	arg, rest, err = NextArg(`    "foo"bar `)
	require.NoError(t, err)
	assert.Equal(t, "foo", arg)
	assert.Equal(t, "bar ", rest)

	arg, rest, err = NextArg(`"foo" bar `)
	require.NoError(t, err)
	assert.Equal(t, "foo", arg)
	assert.Equal(t, " bar ", rest)

	_, _, err = NextArg("   ")
	assert.ErrorIs(t, err, ErrNoArgument)
}

func TestNextArgQuoteStyles(t *testing.T) {
	for _, q := range []string{`"`, `'`, "`"} {
		arg, rest, err := NextArg(q + "two words" + q + " tail")
		require.NoError(t, err)
		assert.Equal(t, "two words", arg)
		assert.Equal(t, " tail", rest)
	}
}

func TestNextArgUnterminated(t *testing.T) {
	_, _, err := NextArg(`"never closed`)
	var unterminated *UnterminatedError
	require.ErrorAs(t, err, &unterminated)
	assert.Contains(t, unterminated.Error(), "never closed")
}

func TestUnprefix(t *testing.T) {
	rest, ok := Unprefix("!", "!ping")
	require.True(t, ok)
	assert.Equal(t, "ping", rest)

	_, ok = Unprefix("!", "ping")
	assert.False(t, ok)
}

func TestSplitOnceWhitespace(t *testing.T) {
	head, tail := SplitOnceWhitespace("alias set hi")
	assert.Equal(t, "alias", head)
	assert.Equal(t, "set hi", tail)

	head, tail = SplitOnceWhitespace("ping")
	assert.Equal(t, "ping", head)
	assert.Empty(t, tail)
}
