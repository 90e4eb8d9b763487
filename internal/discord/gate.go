package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/kvisle/herald/internal/command"
)

// gateClassic enforces command-level access before any handler runs. A DM
// invocation of a guild-only command is rejected without touching guild
// state; in a guild the caller must hold every declared permission bit in
// the origin channel.
func gateClassic(s *discordgo.Session, cmd *command.BaseCommand, msg *discordgo.Message) error {
	if msg.GuildID == "" {
		if !cmd.DMEnabled {
			return command.ErrDisabled
		}
		return nil
	}

	if cmd.MemberPermissions == nil {
		return nil
	}

	perms, err := s.UserChannelPermissions(msg.Author.ID, msg.ChannelID)
	if err != nil {
		return err
	}
	if perms&*cmd.MemberPermissions != *cmd.MemberPermissions {
		return command.ErrAccessDenied
	}
	return nil
}
