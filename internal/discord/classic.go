package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/kvisle/herald/internal/command"
	"github.com/kvisle/herald/internal/parser"
)

// lookup is a cursor for descent: either a command node or a group.
type lookup struct {
	node  *command.Node
	group *command.Group
}

func (l lookup) find(name string) (lookup, bool) {
	if l.group != nil {
		for _, sub := range l.group.Subs {
			if sub.Name == name {
				return lookup{node: sub}, true
			}
		}
		return lookup{}, false
	}

	for _, o := range l.node.Options {
		switch {
		case o.Sub != nil && o.Sub.Name == name:
			return lookup{node: o.Sub}, true
		case o.Group != nil && o.Group.Name == name:
			return lookup{group: o.Group}, true
		}
	}
	return lookup{}, false
}

// ParseClassic resolves a raw chat line against the registry: prefix strip,
// top-level lookup, descent to a leaf and argument binding against the
// leaf's descriptors. It is synchronous and touches no collaborators.
func ParseClassic(cmds command.Commands, prefix string, msg *discordgo.Message) (*command.ClassicRequest, error) {
	unprefixed, ok := parser.Unprefix(prefix, msg.Content)
	if !ok {
		return nil, command.ErrNotPrefixed
	}

	name, rest := parser.SplitOnceWhitespace(unprefixed)

	base, ok := cmds.Get(name)
	if !ok {
		return nil, &command.NotFoundError{Name: name}
	}

	cur := lookup{node: base.Root}
	for {
		next, following := parser.SplitOnceWhitespace(strings.TrimLeftFunc(rest, parser.IsSpace))
		found, ok := cur.find(next)
		if !ok {
			break
		}
		cur = found
		rest = following
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

	args, err := bindClassicArgs(cur.node, rest, msg)
	if err != nil {
		return nil, err
	}

	return &command.ClassicRequest{
		Command: base,
		Node:    cur.node,
		Args:    args,
		Message: msg,
	}, nil
}

func subcommandNames(n *command.Node) []string {
	var names []string
	for _, o := range n.Options {
		if o.Sub != nil || o.Group != nil {
			names = append(names, o.Name())
		}
	}
	return names
}

// bindClassicArgs consumes tokens from input against the leaf's descriptor
// list. Required descriptors must all bind; optional ones are attempted in
// declaration order, and an optional parse failure skips the descriptor
// while keeping the token for the next one. Message and Attachment
// descriptors bind from the origin message first (reply reference, Nth
// upload) before falling back to the token path.
func bindClassicArgs(leaf *command.Node, input string, msg *discordgo.Message) (command.Args, error) {
	descs := leaf.Args()

	var args command.Args
	attachmentIdx := 0

	i := 0

	// Required prefix.
	for ; i < len(descs) && descs[i].Required; i++ {
		d := descs[i]

		if v, bound, err := command.ValueFromMessage(d.Kind, msg, attachmentIdx); err != nil {
			return nil, command.ErrMissingArgs
		} else if bound {
			if d.Kind == command.KindAttachment {
				attachmentIdx++
			}
			args = append(args, command.Arg{Name: d.Name, Value: v})
			continue
		}

		tok, rest, err := nextToken(d, i == len(descs)-1, input)
		if errors.Is(err, parser.ErrNoArgument) {
			return nil, command.ErrMissingArgs
		}
		if err != nil {
			return nil, err
		}
		input = rest

		v, err := command.ValueFromText(d.Kind, tok)
		if err != nil {
			return nil, &command.ParseError{Detail: fmt.Sprintf("argument '%s'", d.Name), Err: err}
		}
		if err := checkBounds(d, v); err != nil {
			return nil, err
		}

		args = append(args, command.Arg{Name: d.Name, Value: v})
	}

	// Optional suffix: parse while tokens remain; a failing optional is
	// skipped and the token is retried against the next descriptor.
	var tok string
	haveTok := false

	for ; i < len(descs); i++ {
		d := descs[i]

		if v, bound, err := command.ValueFromMessage(d.Kind, msg, attachmentIdx); err != nil {
			continue // optional upload absent
		} else if bound {
			if d.Kind == command.KindAttachment {
				attachmentIdx++
			}
			args = append(args, command.Arg{Name: d.Name, Value: v})
			continue
		}

		if !haveTok {
			t, rest, err := nextToken(d, i == len(descs)-1, input)
			if errors.Is(err, parser.ErrNoArgument) {
				break
			}
			if err != nil {
				return nil, err
			}
			tok, input, haveTok = t, rest, true
		}

		v, err := command.ValueFromText(d.Kind, tok)
		if err != nil {
			continue
		}
		if err := checkBounds(d, v); err != nil {
			continue
		}

		args = append(args, command.Arg{Name: d.Name, Value: v})
		haveTok = false
	}

	return args, nil
}

// nextToken reads one argument token. A trailing unquoted string descriptor
// greedily takes the rest of the line, so free-form text does not need
// quoting.
func nextToken(d *command.ArgDesc, last bool, input string) (string, string, error) {
	if last && d.Kind == command.KindString {
		rest := strings.TrimSpace(input)
		if rest == "" {
			return "", "", parser.ErrNoArgument
		}
		if !strings.ContainsRune(parser.Delimiters, rune(rest[0])) {
			return rest, "", nil
		}
	}

	tok, rest, err := parser.NextArg(input)
	var unterminated *parser.UnterminatedError
	if errors.As(err, &unterminated) {
		return "", "", &command.ParseError{Detail: unterminated.Error()}
	}
	return tok, rest, err
}

// checkBounds applies declared numeric bounds after parsing. Bounds are
// validator policy, checked here once the token has a typed value.
func checkBounds(d *command.ArgDesc, v command.ArgValue) error {
	switch d.Kind {
	case command.KindInteger:
		if d.Integer == nil {
			return nil
		}
		i, _ := v.Integer()
		if d.Integer.Min != nil && i < *d.Integer.Min {
			return &command.ParseError{
				Detail: fmt.Sprintf("argument '%s': %d is below the minimum %d", d.Name, i, *d.Integer.Min),
			}
		}
		if d.Integer.Max != nil && i > *d.Integer.Max {
			return &command.ParseError{
				Detail: fmt.Sprintf("argument '%s': %d is above the maximum %d", d.Name, i, *d.Integer.Max),
			}
		}

	case command.KindNumber:
		if d.Number == nil {
			return nil
		}
		n, _ := v.Number()
		if d.Number.Min != nil && n < *d.Number.Min {
			return &command.ParseError{
				Detail: fmt.Sprintf("argument '%s': %v is below the minimum %v", d.Name, n, *d.Number.Min),
			}
		}
		if d.Number.Max != nil && n > *d.Number.Max {
			return &command.ParseError{
				Detail: fmt.Sprintf("argument '%s': %v is above the maximum %v", d.Name, n, *d.Number.Max),
			}
		}
	}

	return nil
}
