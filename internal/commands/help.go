package commands

import (
	"fmt"
	"strings"

	"github.com/kvisle/herald/internal/command"
)

func helpCommand() *command.Builder {
	return command.New("help", "Show the available commands").
		DM().
		Option(command.String("command", "Show details for one command")).
		Attach(command.Classic(helpClassic)).
		Attach(command.Slash(helpSlash))
}

func helpClassic(ctx *command.Context, req *command.ClassicRequest) (command.Response, error) {
	return helpReply(ctx, req.Args)
}

func helpSlash(ctx *command.Context, req *command.SlashRequest) (command.Response, error) {
	return helpReply(ctx, req.Args)
}

func helpReply(ctx *command.Context, args command.Args) (command.Response, error) {
	if name, err := args.String("command"); err == nil {
		cmd, ok := ctx.Commands.Get(name)
		if !ok {
			return command.None(), &command.NotFoundError{Name: name}
		}
		return command.CreateMessage(describeCommand(cmd)), nil
	}

	var sb strings.Builder
	sb.WriteString("📖 **Available commands**\n")
	for _, name := range ctx.Commands.Names() {
		cmd, _ := ctx.Commands.Get(name)
		sb.WriteString(fmt.Sprintf("`%s` - %s\n", name, cmd.Root.Description))
	}
	return command.CreateMessage(sb.String()), nil
}

func describeCommand(cmd *command.BaseCommand) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**%s** — %s\n", cmd.Root.Name, cmd.Root.Description))

	for _, opt := range cmd.Root.Options {
		switch {
		case opt.Arg != nil:
			sb.WriteString(describeArg(opt.Arg))
		case opt.Sub != nil:
			sb.WriteString(fmt.Sprintf("`%s %s` - %s\n", cmd.Root.Name, opt.Sub.Name, opt.Sub.Description))
		case opt.Group != nil:
			for _, sub := range opt.Group.Subs {
				sb.WriteString(fmt.Sprintf("`%s %s %s` - %s\n", cmd.Root.Name, opt.Group.Name, sub.Name, sub.Description))
			}
		}
	}
	return sb.String()
}

func describeArg(d *command.ArgDesc) string {
	if d.Required {
		return fmt.Sprintf("`<%s>` (%s) - %s\n", d.Name, d.Kind, d.Description)
	}
	return fmt.Sprintf("`[%s]` (%s) - %s\n", d.Name, d.Kind, d.Description)
}
