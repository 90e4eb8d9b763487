package command

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/kvisle/herald/internal/config"
	"github.com/kvisle/herald/internal/storage"
)

// Context carries the shared collaborators handlers need: the platform
// session, the settings store, the static configuration, the sealed command
// registry and a logger. All fields are shared-ownership handles; the
// registry is immutable post-build.
type Context struct {
	Session  *discordgo.Session
	Store    *storage.Storage
	Config   *config.Config
	Commands Commands
	Log      zerolog.Logger
}

// Prefix returns the effective classic prefix: the guild-scoped one when the
// guild has configured it, otherwise the global default. An empty guild id
// (a DM) never touches the store.
func (c *Context) Prefix(guildID string) string {
	if guildID == "" {
		return c.Config.Prefix
	}
	if p, ok := c.Store.GuildPrefix(guildID); ok {
		return p
	}
	return c.Config.Prefix
}
