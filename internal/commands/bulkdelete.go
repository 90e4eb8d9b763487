package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/kvisle/herald/internal/command"
)

func bulkDeleteCommand() *command.Builder {
	return command.New("bulk-delete", "Delete recent messages in this channel").
		Permissions(discordgo.PermissionManageMessages).
		Option(command.Integer("amount", "How many messages to delete").Min(0).Max(100).Required()).
		Attach(command.Classic(bulkDeleteClassic)).
		Attach(command.Slash(bulkDeleteSlash))
}

func bulkDeleteClassic(ctx *command.Context, req *command.ClassicRequest) (command.Response, error) {
	return bulkDelete(ctx, req.Message.ChannelID, req.Args)
}

func bulkDeleteSlash(ctx *command.Context, req *command.SlashRequest) (command.Response, error) {
	return bulkDelete(ctx, req.Interaction.ChannelID, req.Args)
}

func bulkDelete(ctx *command.Context, channelID string, args command.Args) (command.Response, error) {
	amount, err := args.Integer("amount")
	if err != nil {
		return command.None(), err
	}

	// Zero just cleans up the invocation itself.
	if amount == 0 {
		return command.Clear(), nil
	}

	msgs, err := ctx.Session.ChannelMessages(channelID, int(amount), "", "", "")
	if err != nil {
		return command.None(), err
	}
	ids := make([]string, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.ID)
	}
	if err := ctx.Session.ChannelMessagesBulkDelete(channelID, ids); err != nil {
		return command.None(), err
	}

	return command.CreateMessage(fmt.Sprintf("🧹 Deleted %d messages.", len(ids))), nil
}
