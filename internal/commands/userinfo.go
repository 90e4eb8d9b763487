package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/kvisle/herald/internal/command"
)

// user-info doubles as a context menu entry, so the root carries no
// options: the slash variant describes the invoker, the target variant the
// selected member.
func userInfoCommand() *command.Builder {
	return command.New("user-info", "Show details about a user").
		DM().
		Attach(command.Slash(userInfoSlash)).
		Attach(command.UserTarget(userInfoTarget))
}

func userInfoSlash(ctx *command.Context, req *command.SlashRequest) (command.Response, error) {
	user := req.Interaction.User
	if req.Interaction.Member != nil {
		user = req.Interaction.Member.User
	}
	if user == nil {
		return command.None(), command.ErrMissingArgs
	}
	return userInfoReply(ctx, req.Interaction.GuildID, user)
}

func userInfoTarget(ctx *command.Context, req *command.UserRequest) (command.Response, error) {
	user, ok := req.Target()
	if !ok {
		return command.None(), &command.UnknownResourceError{Resource: "user " + req.TargetID}
	}
	return userInfoReply(ctx, req.Interaction.GuildID, user)
}

func userInfoReply(ctx *command.Context, guildID string, user *discordgo.User) (command.Response, error) {
	created, err := discordgo.SnowflakeTimestamp(user.ID)
	if err != nil {
		return command.None(), fmt.Errorf("decode snowflake %s: %w", user.ID, err)
	}

	text := fmt.Sprintf(
		"👤 **%s**\nID: `%s`\nCreated: <t:%d:D>",
		user.Username, user.ID, created.Unix(),
	)

	if guildID != "" {
		if member, err := ctx.Session.GuildMember(guildID, user.ID); err == nil && !member.JoinedAt.IsZero() {
			text += fmt.Sprintf("\nJoined: <t:%d:D>", member.JoinedAt.Unix())
		}
	}

	return command.CreateMessage(text), nil
}
