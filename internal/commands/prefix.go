package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/kvisle/herald/internal/command"
)

func prefixCommand() *command.Builder {
	return command.New("prefix", "Show or change the guild command prefix").
		Permissions(discordgo.PermissionManageServer).
		Option(command.String("prefix", "New prefix, 1 to 4 characters").MinLength(1).MaxLength(4)).
		Attach(command.Classic(prefixClassic)).
		Attach(command.Slash(prefixSlash))
}

func prefixClassic(ctx *command.Context, req *command.ClassicRequest) (command.Response, error) {
	return prefixReply(ctx, req.Message.GuildID, req.Args)
}

func prefixSlash(ctx *command.Context, req *command.SlashRequest) (command.Response, error) {
	return prefixReply(ctx, req.Interaction.GuildID, req.Args)
}

func prefixReply(ctx *command.Context, guildID string, args command.Args) (command.Response, error) {
	next, err := args.String("prefix")
	if err != nil {
		return command.CreateMessage(fmt.Sprintf("Current prefix is `%s`.", ctx.Prefix(guildID))), nil
	}
	if err := ctx.Store.SetGuildPrefix(guildID, next); err != nil {
		return command.None(), err
	}
	return command.CreateMessage(fmt.Sprintf("Prefix changed to `%s`.", next)), nil
}
