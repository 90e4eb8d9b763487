package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/kvisle/herald/internal/command"
)

func quoteCommand() *command.Builder {
	return command.New("quote", "Quote a message back into the channel").
		Attach(command.Classic(quoteClassic)).
		Attach(command.MessageTarget(quoteTarget))
}

// The classic form quotes whatever message the invocation replies to.
func quoteClassic(_ *command.Context, req *command.ClassicRequest) (command.Response, error) {
	quoted := req.Message.ReferencedMessage
	if quoted == nil {
		return command.None(), command.ErrMissingReply
	}
	return quoteReply(req.Message.GuildID, quoted), nil
}

func quoteTarget(_ *command.Context, req *command.MessageRequest) (command.Response, error) {
	quoted, ok := req.Target()
	if !ok {
		return command.None(), &command.UnknownResourceError{Resource: "message " + req.TargetID}
	}
	return quoteReply(req.Interaction.GuildID, quoted), nil
}

func quoteReply(guildID string, msg *discordgo.Message) command.Response {
	author := "someone"
	if msg.Author != nil {
		author = msg.Author.Username
	}
	text := fmt.Sprintf("💬 %s\n— **%s**", msg.Content, author)
	if guildID != "" {
		text += fmt.Sprintf(", https://discord.com/channels/%s/%s/%s", guildID, msg.ChannelID, msg.ID)
	}
	return command.CreateMessage(text)
}
