package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/kvisle/herald/internal/command"
	"github.com/kvisle/herald/internal/storage"
)

// roles manages reaction-role bindings. In classic form, replying to the
// target message binds it without typing its ID.
func rolesCommand() *command.Builder {
	return command.New("roles", "Manage reaction role bindings").
		Permissions(discordgo.PermissionManageRoles).
		Option(command.Sub("bind", "Grant a role when a message gets a reaction").
			Option(command.Message("message", "Message to watch").Required()).
			Option(command.String("emoji", "Reaction emoji").Required()).
			Option(command.Role("role", "Role to grant").Required()).
			Attach(command.Classic(rolesBindClassic)).
			Attach(command.Slash(rolesBindSlash))).
		Option(command.Sub("unbind", "Remove all bindings from a message").
			Option(command.Message("message", "Message to release").Required()).
			Attach(command.Classic(rolesUnbindClassic)).
			Attach(command.Slash(rolesUnbindSlash)))
}

func rolesBindClassic(ctx *command.Context, req *command.ClassicRequest) (command.Response, error) {
	return rolesBind(ctx, req.Message.GuildID, req.Message.ChannelID, req.Args)
}

func rolesBindSlash(ctx *command.Context, req *command.SlashRequest) (command.Response, error) {
	return rolesBind(ctx, req.Interaction.GuildID, req.Interaction.ChannelID, req.Args)
}

func rolesBind(ctx *command.Context, guildID, channelID string, args command.Args) (command.Response, error) {
	msgRef, err := args.Message("message")
	if err != nil {
		return command.None(), err
	}
	emoji, err := args.String("emoji")
	if err != nil {
		return command.None(), err
	}
	roleRef, err := args.Role("role")
	if err != nil {
		return command.None(), err
	}

	// A replied-to message carries its own channel.
	if msg, ok := msgRef.Obj(); ok {
		channelID = msg.ChannelID
	}

	bindings, _ := ctx.Store.ReactionRoles(guildID, channelID, msgRef.ID())
	bindings = append(bindings, storage.ReactionRole{Emoji: emoji, Role: roleRef.ID()})
	if err := ctx.Store.SetReactionRoles(guildID, channelID, msgRef.ID(), bindings); err != nil {
		return command.None(), err
	}

	return command.CreateMessage(fmt.Sprintf(
		"Reacting with %s on message `%s` now grants <@&%s>.",
		emoji, msgRef.ID(), roleRef.ID(),
	)), nil
}

func rolesUnbindClassic(ctx *command.Context, req *command.ClassicRequest) (command.Response, error) {
	return rolesUnbind(ctx, req.Message.GuildID, req.Message.ChannelID, req.Args)
}

func rolesUnbindSlash(ctx *command.Context, req *command.SlashRequest) (command.Response, error) {
	return rolesUnbind(ctx, req.Interaction.GuildID, req.Interaction.ChannelID, req.Args)
}

func rolesUnbind(ctx *command.Context, guildID, channelID string, args command.Args) (command.Response, error) {
	msgRef, err := args.Message("message")
	if err != nil {
		return command.None(), err
	}
	if msg, ok := msgRef.Obj(); ok {
		channelID = msg.ChannelID
	}
	if err := ctx.Store.RemoveReactionRoles(guildID, channelID, msgRef.ID()); err != nil {
		return command.None(), err
	}
	return command.CreateMessage(fmt.Sprintf("Message `%s` no longer grants roles.", msgRef.ID())), nil
}
