package commands

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/kvisle/herald/internal/command"
)

func aliasCommand() *command.Builder {
	return command.New("alias", "Manage guild command aliases").
		Permissions(discordgo.PermissionManageServer).
		Option(command.Sub("list", "List all aliases").
			Attach(command.Classic(aliasListClassic)).
			Attach(command.Slash(aliasListSlash))).
		Option(command.Sub("get", "Show what an alias expands to").
			Option(command.String("name", "Alias name").Required()).
			Attach(command.Classic(aliasGetClassic)).
			Attach(command.Slash(aliasGetSlash))).
		Option(command.Sub("set", "Create or replace an alias").
			Option(command.String("name", "Alias name").Required()).
			Option(command.String("definition", "Command line the alias expands to").Required()).
			Attach(command.Classic(aliasSetClassic)).
			Attach(command.Slash(aliasSetSlash))).
		Option(command.Sub("remove", "Delete an alias").
			Option(command.String("name", "Alias name").Required()).
			Attach(command.Classic(aliasRemoveClassic)).
			Attach(command.Slash(aliasRemoveSlash)))
}

func aliasListClassic(ctx *command.Context, req *command.ClassicRequest) (command.Response, error) {
	return aliasList(ctx, req.Message.GuildID)
}

func aliasListSlash(ctx *command.Context, req *command.SlashRequest) (command.Response, error) {
	return aliasList(ctx, req.Interaction.GuildID)
}

func aliasList(ctx *command.Context, guildID string) (command.Response, error) {
	names, err := ctx.Store.Aliases(guildID)
	if err != nil {
		return command.None(), err
	}
	if len(names) == 0 {
		return command.CreateMessage("No aliases defined."), nil
	}

	var sb strings.Builder
	sb.WriteString("🔗 **Aliases**\n")
	for _, name := range names {
		def, _ := ctx.Store.Alias(guildID, name)
		sb.WriteString(fmt.Sprintf("`%s` → `%s`\n", name, def))
	}
	return command.CreateMessage(sb.String()), nil
}

func aliasGetClassic(ctx *command.Context, req *command.ClassicRequest) (command.Response, error) {
	return aliasGet(ctx, req.Message.GuildID, req.Args)
}

func aliasGetSlash(ctx *command.Context, req *command.SlashRequest) (command.Response, error) {
	return aliasGet(ctx, req.Interaction.GuildID, req.Args)
}

func aliasGet(ctx *command.Context, guildID string, args command.Args) (command.Response, error) {
	name, err := args.String("name")
	if err != nil {
		return command.None(), err
	}
	def, ok := ctx.Store.Alias(guildID, name)
	if !ok {
		return command.None(), &command.UnknownResourceError{Resource: "alias '" + name + "'"}
	}
	return command.CreateMessage(fmt.Sprintf("`%s` → `%s`", name, def)), nil
}

func aliasSetClassic(ctx *command.Context, req *command.ClassicRequest) (command.Response, error) {
	return aliasSet(ctx, req.Message.GuildID, req.Args)
}

func aliasSetSlash(ctx *command.Context, req *command.SlashRequest) (command.Response, error) {
	return aliasSet(ctx, req.Interaction.GuildID, req.Args)
}

func aliasSet(ctx *command.Context, guildID string, args command.Args) (command.Response, error) {
	name, err := args.String("name")
	if err != nil {
		return command.None(), err
	}
	def, err := args.String("definition")
	if err != nil {
		return command.None(), err
	}

	// Aliases must not shadow real commands.
	if _, exists := ctx.Commands.Get(name); exists {
		return command.None(), &command.UnexpectedArgsError{
			Detail: fmt.Sprintf("'%s' is already a command", name),
		}
	}

	if err := ctx.Store.SetAlias(guildID, name, def); err != nil {
		return command.None(), err
	}
	return command.CreateMessage(fmt.Sprintf("Alias `%s` now runs `%s`.", name, def)), nil
}

func aliasRemoveClassic(ctx *command.Context, req *command.ClassicRequest) (command.Response, error) {
	return aliasRemove(ctx, req.Message.GuildID, req.Args)
}

func aliasRemoveSlash(ctx *command.Context, req *command.SlashRequest) (command.Response, error) {
	return aliasRemove(ctx, req.Interaction.GuildID, req.Args)
}

func aliasRemove(ctx *command.Context, guildID string, args command.Args) (command.Response, error) {
	name, err := args.String("name")
	if err != nil {
		return command.None(), err
	}
	removed, err := ctx.Store.RemoveAlias(guildID, name)
	if err != nil {
		return command.None(), err
	}
	if !removed {
		return command.None(), &command.UnknownResourceError{Resource: "alias '" + name + "'"}
	}
	return command.CreateMessage(fmt.Sprintf("Alias `%s` removed.", name)), nil
}
