package commands

import (
	"github.com/bwmarrin/discordgo"

	"github.com/kvisle/herald/internal/command"
)

// bot speaks as the bot.
func botCommand() *command.Builder {
	return command.New("bot", "Make the bot speak").
		Permissions(discordgo.PermissionManageMessages).
		Option(command.Sub("say", "Send a message as the bot").
			Option(command.String("text", "What to say").Required()).
			Option(command.Channel("channel", "Channel to send in").
				Types(discordgo.ChannelTypeGuildText)).
			Attach(command.Classic(botSayClassic)).
			Attach(command.Slash(botSaySlash))).
		Option(command.Sub("edit", "Rewrite a message the bot sent").
			Option(command.Message("message", "Message to edit").Required()).
			Option(command.String("text", "New content").Required()).
			Attach(command.Classic(botEditClassic)).
			Attach(command.Slash(botEditSlash)))
}

func botSayClassic(ctx *command.Context, req *command.ClassicRequest) (command.Response, error) {
	return botSay(ctx, req.Message.ChannelID, req.Args)
}

func botSaySlash(ctx *command.Context, req *command.SlashRequest) (command.Response, error) {
	return botSay(ctx, req.Interaction.ChannelID, req.Args)
}

func botSay(ctx *command.Context, channelID string, args command.Args) (command.Response, error) {
	text, err := args.String("text")
	if err != nil {
		return command.None(), err
	}
	if ref, err := args.Channel("channel"); err == nil {
		channelID = ref.ID()
	}
	if _, err := ctx.Session.ChannelMessageSend(channelID, text); err != nil {
		return command.None(), err
	}
	return command.Clear(), nil
}

func botEditClassic(ctx *command.Context, req *command.ClassicRequest) (command.Response, error) {
	return botEdit(ctx, req.Message.ChannelID, req.Args)
}

func botEditSlash(ctx *command.Context, req *command.SlashRequest) (command.Response, error) {
	return botEdit(ctx, req.Interaction.ChannelID, req.Args)
}

func botEdit(ctx *command.Context, channelID string, args command.Args) (command.Response, error) {
	msgRef, err := args.Message("message")
	if err != nil {
		return command.None(), err
	}
	text, err := args.String("text")
	if err != nil {
		return command.None(), err
	}
	if msg, ok := msgRef.Obj(); ok {
		channelID = msg.ChannelID
	}
	if _, err := ctx.Session.ChannelMessageEdit(channelID, msgRef.ID(), text); err != nil {
		return command.None(), err
	}
	return command.Clear(), nil
}
