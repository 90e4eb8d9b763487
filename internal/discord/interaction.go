package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/kvisle/herald/internal/command"
)

// Decoded is the outcome of resolving an application command interaction
// against the registry.
type Decoded struct {
	Command *command.BaseCommand
	Node    *command.Node
	Args    command.Args
}

// DecodeInteraction resolves an application command payload to a registered
// leaf and rebuilds its arguments in declaration order. Chat input payloads
// nest subcommand and group levels inside the option list; target payloads
// carry no options at all.
func DecodeInteraction(cmds command.Commands, data *discordgo.ApplicationCommandInteractionData) (*Decoded, error) {
	base, ok := cmds.Get(data.Name)
	if !ok {
		return nil, &command.NotFoundError{Name: data.Name}
	}

	if data.CommandType != discordgo.ChatApplicationCommand {
		return &Decoded{Command: base, Node: base.Root}, nil
	}

	cur := lookup{node: base.Root}
	opts := data.Options

	for len(opts) == 1 && isDescentOption(opts[0]) {
		found, ok := cur.find(opts[0].Name)
		if !ok {
			return nil, &command.UnknownResourceError{
				Resource: fmt.Sprintf("subcommand '%s'", opts[0].Name),
			}
		}
		cur = found
		opts = opts[0].Options
	}

	if cur.group != nil {
		return nil, &command.UnexpectedArgsError{
			Detail: fmt.Sprintf("expected command, found group '%s'", cur.group.Name),
		}
	}

	if cur.node.IsBranch() {
		return nil, &command.UnexpectedArgsError{
			Detail: fmt.Sprintf("expected a subcommand of '%s': %s",
				cur.node.Name, strings.Join(subcommandNames(cur.node), ", ")),
		}
	}

	args, err := restoreArgs(cur.node, opts, data.Resolved)
	if err != nil {
		return nil, err
	}

	return &Decoded{Command: base, Node: cur.node, Args: args}, nil
}

func isDescentOption(opt *discordgo.ApplicationCommandInteractionDataOption) bool {
	return opt.Type == discordgo.ApplicationCommandOptionSubCommand ||
		opt.Type == discordgo.ApplicationCommandOptionSubCommandGroup
}

// restoreArgs converts the received options and reorders them to match the
// leaf's declaration order, which the gateway does not guarantee. Conversion
// follows each descriptor's declared kind, not the wire type: kinds without
// a native option type ride the wire as string ids and are re-parsed here.
func restoreArgs(leaf *command.Node, opts []*discordgo.ApplicationCommandInteractionDataOption, resolved *discordgo.ApplicationCommandInteractionDataResolved) (command.Args, error) {
	received := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		if isDescentOption(opt) {
			return nil, &command.UnexpectedArgsError{
				Detail: fmt.Sprintf("unexpected subcommand option '%s'", opt.Name),
			}
		}
		received[opt.Name] = opt
	}

	var args command.Args
	for _, d := range leaf.Args() {
		opt, ok := received[d.Name]
		if !ok {
			if d.Required {
				return nil, command.ErrMissingArgs
			}
			continue
		}
		v, err := command.ValueFromOption(opt, resolved)
		if err != nil {
			return nil, &command.ParseError{Detail: fmt.Sprintf("option '%s'", d.Name), Err: err}
		}
		if v.Kind() != d.Kind {
			if s, ok := v.String(); ok {
				v, err = command.ValueFromText(d.Kind, s)
				if err != nil {
					return nil, &command.ParseError{Detail: fmt.Sprintf("option '%s'", d.Name), Err: err}
				}
			} else {
				return nil, &command.ParseError{
					Detail: fmt.Sprintf("option '%s' carries kind %s, want %s", d.Name, v.Kind(), d.Kind),
				}
			}
		}
		args = append(args, command.Arg{Name: d.Name, Value: v})
		delete(received, d.Name)
	}

	for name := range received {
		return nil, &command.UnexpectedArgsError{
			Detail: fmt.Sprintf("unknown option '%s'", name),
		}
	}

	return args, nil
}
