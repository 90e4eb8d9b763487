package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Reaction role bindings are stored per message; a matching reaction grants
// the mapped role and removing it takes the role away again.

func (b *Bot) onMessageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.GuildID == "" || r.UserID == s.State.User.ID {
		return
	}
	roleID, ok := b.reactionRole(r.GuildID, r.ChannelID, r.MessageID, r.Emoji.APIName())
	if !ok {
		return
	}
	if err := s.GuildMemberRoleAdd(r.GuildID, r.UserID, roleID); err != nil {
		b.log.Warn().Err(err).Str("role", roleID).Str("user", r.UserID).Msg("role grant failed")
	}
}

func (b *Bot) onMessageReactionRemove(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
	if r.GuildID == "" || r.UserID == s.State.User.ID {
		return
	}
	roleID, ok := b.reactionRole(r.GuildID, r.ChannelID, r.MessageID, r.Emoji.APIName())
	if !ok {
		return
	}
	if err := s.GuildMemberRoleRemove(r.GuildID, r.UserID, roleID); err != nil {
		b.log.Warn().Err(err).Str("role", roleID).Str("user", r.UserID).Msg("role removal failed")
	}
}

// onMessageDelete drops bindings attached to the deleted message so stale
// entries do not accumulate.
func (b *Bot) onMessageDelete(_ *discordgo.Session, m *discordgo.MessageDelete) {
	if m.GuildID == "" {
		return
	}
	if err := b.store.RemoveReactionRoles(m.GuildID, m.ChannelID, m.ID); err != nil {
		b.log.Warn().Err(err).Str("message", m.ID).Msg("reaction role cleanup failed")
	}
}

func (b *Bot) reactionRole(guildID, channelID, messageID, emoji string) (string, bool) {
	bindings, ok := b.store.ReactionRoles(guildID, channelID, messageID)
	if !ok {
		return "", false
	}
	for _, binding := range bindings {
		if binding.Emoji == emoji {
			return binding.Role, true
		}
	}
	return "", false
}
