package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okClassic(_ *Context, _ *ClassicRequest) (Response, error) {
	return CreateMessage("ok"), nil
}

func okSlash(_ *Context, _ *SlashRequest) (Response, error) {
	return CreateMessage("ok"), nil
}

func okUser(_ *Context, _ *UserRequest) (Response, error) {
	return CreateMessage("ok"), nil
}

func requireRule(t *testing.T, err error, rule string) {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, rule, verr.Rule)
}

func TestValidateAcceptsWellFormedTree(t *testing.T) {
	cmd := New("deploy", "Deploy things").
		Option(NewGroup("service", "Service management").
			Subs(
				Sub("start", "Start a service").
					Option(String("name", "Service name").Required()).
					Attach(Classic(okClassic)),
				Sub("stop", "Stop a service").
					Option(String("name", "Service name").Required()).
					Attach(Classic(okClassic)),
			)).
		Option(Sub("status", "Show status").Attach(Classic(okClassic))).
		Build()

	assert.NoError(t, Validate(cmd))
}

func TestValidateIdentifierShape(t *testing.T) {
	for _, name := range []string{"Ping", "has space", "way!", strings.Repeat("x", 33)} {
		err := Validate(New(name, "desc").Build())
		requireRule(t, err, RuleIdentifier)
	}
}

func TestValidateDescriptionBounds(t *testing.T) {
	err := Validate(New("ping", strings.Repeat("d", 101)).Build())
	requireRule(t, err, RuleDescription)
}

func TestValidateEmptyDescriptionGetsPlaceholder(t *testing.T) {
	cmd := New("ping", "").Build()
	assert.Equal(t, "-", cmd.Root.Description)
	assert.NoError(t, Validate(cmd))
}

func TestValidateRequiredBeforeOptional(t *testing.T) {
	err := Validate(New("greet", "Greet someone").
		Option(String("style", "Greeting style")).
		Option(String("who", "Who to greet").Required()).
		Build())
	requireRule(t, err, RuleArgOrder)
}

func TestValidateDuplicateOptionName(t *testing.T) {
	err := Validate(New("greet", "Greet someone").
		Option(String("who", "First")).
		Option(Integer("who", "Second")).
		Build())
	requireRule(t, err, RuleDuplicateName)
}

func TestValidateBranchOwnsArgs(t *testing.T) {
	err := Validate(New("mixed", "Bad tree").
		Option(Sub("child", "A subcommand").Attach(Classic(okClassic))).
		Option(String("extra", "An argument")).
		Build())
	requireRule(t, err, RuleBranchArgs)
}

func TestValidateGroupDepth(t *testing.T) {
	// A subcommand may not own further subcommands.
	err := Validate(New("deep", "Too deep").
		Option(Sub("middle", "Middle").
			Option(Sub("leaf", "Leaf").Attach(Classic(okClassic)))).
		Build())
	requireRule(t, err, RuleGroupDepth)

	// Group members may not branch either.
	err = Validate(New("deeper", "Too deep").
		Option(NewGroup("grp", "Group").
			Subs(Sub("member", "Member").
				Option(Sub("leaf", "Leaf").Attach(Classic(okClassic))))).
		Build())
	requireRule(t, err, RuleGroupDepth)
}

func TestValidateTargetCommandOptions(t *testing.T) {
	err := Validate(New("inspect", "Inspect a user").
		Option(String("detail", "Level of detail")).
		Attach(UserTarget(okUser)).
		Build())
	requireRule(t, err, RuleTargetOptions)

	ok := New("inspect", "Inspect a user").
		Attach(Slash(okSlash)).
		Attach(UserTarget(okUser)).
		Build()
	assert.NoError(t, Validate(ok))
}

func TestRegistryRejectsDuplicateCommand(t *testing.T) {
	_, err := NewRegistry().
		Bind(New("ping", "One").Attach(Classic(okClassic))).
		Bind(New("ping", "Two").Attach(Classic(okClassic))).
		Build()
	requireRule(t, err, RuleDuplicateCommand)
}

func TestRegistryLookup(t *testing.T) {
	cmds, err := NewRegistry().
		Bind(New("zulu", "Last").Attach(Classic(okClassic))).
		Bind(New("alpha", "First").Attach(Classic(okClassic))).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "zulu"}, cmds.Names())

	_, ok := cmds.Get("alpha")
	assert.True(t, ok)
	_, ok = cmds.Get("Alpha")
	assert.False(t, ok)
}
