package commands

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/kvisle/herald/internal/command"
)

func muteCommand() *command.Builder {
	return command.New("mute", "Time a member out").
		Permissions(discordgo.PermissionModerateMembers).
		Option(command.User("user", "Member to mute").Required()).
		Option(command.Integer("minutes", "Timeout length in minutes").Min(1).Max(10080)).
		Attach(command.Classic(muteClassic)).
		Attach(command.Slash(muteSlash))
}

func muteClassic(ctx *command.Context, req *command.ClassicRequest) (command.Response, error) {
	return mute(ctx, req.Message.GuildID, req.Args)
}

func muteSlash(ctx *command.Context, req *command.SlashRequest) (command.Response, error) {
	return mute(ctx, req.Interaction.GuildID, req.Args)
}

func mute(ctx *command.Context, guildID string, args command.Args) (command.Response, error) {
	userRef, err := args.User("user")
	if err != nil {
		return command.None(), err
	}

	minutes := int64(10)
	if m, err := args.Integer("minutes"); err == nil {
		minutes = m
	}

	until := time.Now().Add(time.Duration(minutes) * time.Minute)
	if err := ctx.Session.GuildMemberTimeout(guildID, userRef.ID(), &until); err != nil {
		return command.None(), err
	}

	return command.CreateMessage(fmt.Sprintf(
		"🔇 <@%s> is muted until <t:%d:t>.", userRef.ID(), until.Unix(),
	)), nil
}
