package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/kvisle/herald/internal/command"
	"github.com/kvisle/herald/internal/config"
	"github.com/kvisle/herald/internal/parser"
	"github.com/kvisle/herald/internal/storage"
)

// Bot owns the gateway session and routes every supported invocation
// surface through the shared command registry.
type Bot struct {
	session *discordgo.Session
	store   *storage.Storage
	cfg     *config.Config
	cmds    command.Commands
	limiter *userLimiter
	log     zerolog.Logger
}

// Run connects to the gateway and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, store *storage.Storage, cmds command.Commands, log zerolog.Logger) error {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	b := &Bot{
		session: session,
		store:   store,
		cfg:     cfg,
		cmds:    cmds,
		limiter: newUserLimiter(rate.Every(2*time.Second), 5),
		log:     log,
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	session.AddHandler(b.onReady)
	session.AddHandler(b.onMessageCreate)
	session.AddHandler(b.onInteractionCreate)
	session.AddHandler(b.onMessageReactionAdd)
	session.AddHandler(b.onMessageReactionRemove)
	session.AddHandler(b.onMessageDelete)

	if err := session.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	defer session.Close()

	<-ctx.Done()
	b.log.Info().Msg("shutdown signal received, closing gateway")
	return nil
}

func (b *Bot) commandContext() *command.Context {
	return &command.Context{
		Session:  b.session,
		Store:    b.store,
		Config:   b.cfg,
		Commands: b.cmds,
		Log:      b.log,
	}
}

func (b *Bot) onReady(s *discordgo.Session, _ *discordgo.Ready) {
	if _, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, "", b.cmds.Schemas()); err != nil {
		b.log.Error().Err(err).Msg("application command registration failed")
		return
	}
	b.log.Info().
		Str("user", s.State.User.Username).
		Int("commands", len(b.cmds)).
		Msg("gateway ready")
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	msg := m.Message
	ctx := b.commandContext()
	prefix := ctx.Prefix(msg.GuildID)

	req, err := ParseClassic(b.cmds, prefix, msg)

	var notFound *command.NotFoundError
	if errors.As(err, &notFound) && msg.GuildID != "" {
		if expanded, ok := b.expandAlias(msg, prefix, notFound.Name); ok {
			req, err = ParseClassic(b.cmds, prefix, expanded)
		}
	}

	if errors.Is(err, command.ErrNotPrefixed) {
		return
	}
	if err != nil {
		b.failClassic(msg, err)
		return
	}

	if !b.limiter.Allow(msg.Author.ID) {
		b.log.Debug().Str("user", msg.Author.ID).Msg("invocation rate limited")
		return
	}

	if err := gateClassic(s, req.Command, msg); err != nil {
		b.failClassic(msg, err)
		return
	}

	resp, err := execute(ctx, req.Node.Classic(), req)
	if err != nil {
		b.failClassic(msg, err)
		return
	}
	if err := applyClassic(s, resp, msg); err != nil {
		b.reportError(req.Node.Name, err)
	}
}

// expandAlias substitutes a stored alias definition back into the message
// and hands the rewritten content to the parser. Expansion happens at most
// once, so aliases cannot chain.
func (b *Bot) expandAlias(msg *discordgo.Message, prefix, name string) (*discordgo.Message, bool) {
	def, ok := b.store.Alias(msg.GuildID, name)
	if !ok {
		return nil, false
	}

	unprefixed, _ := parser.Unprefix(prefix, msg.Content)
	_, rest := parser.SplitOnceWhitespace(unprefixed)

	rewritten := *msg
	rewritten.Content = prefix + def
	if rest != "" {
		rewritten.Content += " " + rest
	}
	return &rewritten, true
}

func (b *Bot) failClassic(msg *discordgo.Message, err error) {
	line, known := userErrorLine(err)
	if !known {
		b.reportError("classic", err)
	} else {
		b.log.Debug().Err(err).Str("channel", msg.ChannelID).Msg("invocation rejected")
	}
	if _, sendErr := b.session.ChannelMessageSendReply(msg.ChannelID, line, msg.Reference()); sendErr != nil {
		b.log.Warn().Err(sendErr).Msg("error reply failed")
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()

	// Targets answer privately, chat input in the open.
	var flags discordgo.MessageFlags
	if data.CommandType != discordgo.ChatApplicationCommand {
		flags = discordgo.MessageFlagsEphemeral
	}
	ack := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: flags},
	}
	if err := s.InteractionRespond(i.Interaction, ack); err != nil {
		b.log.Error().Err(err).Str("command", data.Name).Msg("deferred ack failed")
		return
	}

	resp, err := b.runInteraction(i, &data)
	if err != nil {
		b.failInteraction(i, data.Name, err)
		return
	}
	if err := applyInteraction(s, resp, i.Interaction); err != nil {
		b.reportError(data.Name, err)
	}
}

func (b *Bot) runInteraction(i *discordgo.InteractionCreate, data *discordgo.ApplicationCommandInteractionData) (command.Response, error) {
	dec, err := DecodeInteraction(b.cmds, data)
	if err != nil {
		return command.None(), err
	}

	ctx := b.commandContext()

	switch data.CommandType {
	case discordgo.ChatApplicationCommand:
		req := &command.SlashRequest{
			Command:     dec.Command,
			Node:        dec.Node,
			Args:        dec.Args,
			Interaction: i,
			Data:        data,
		}
		return execute(ctx, dec.Node.Slash(), req)

	case discordgo.MessageApplicationCommand:
		if data.TargetID == "" {
			return command.None(), command.ErrMissingArgs
		}
		req := &command.MessageRequest{
			Command:     dec.Command,
			Interaction: i,
			Data:        data,
			TargetID:    data.TargetID,
		}
		return execute(ctx, dec.Node.Message(), req)

	case discordgo.UserApplicationCommand:
		if data.TargetID == "" {
			return command.None(), command.ErrMissingArgs
		}
		req := &command.UserRequest{
			Command:     dec.Command,
			Interaction: i,
			Data:        data,
			TargetID:    data.TargetID,
		}
		return execute(ctx, dec.Node.User(), req)
	}

	return command.None(), fmt.Errorf("unsupported application command type %d", data.CommandType)
}

// failInteraction clears the pending ack and reports the failure as an
// ephemeral followup so only the invoking user sees it.
func (b *Bot) failInteraction(i *discordgo.InteractionCreate, name string, err error) {
	line, known := userErrorLine(err)
	if !known {
		b.reportError(name, err)
	} else {
		b.log.Debug().Err(err).Str("command", name).Msg("interaction rejected")
	}

	if delErr := b.session.InteractionResponseDelete(i.Interaction); delErr != nil {
		b.log.Warn().Err(delErr).Msg("deferred ack cleanup failed")
	}
	_, sendErr := b.session.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: line,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if sendErr != nil {
		b.log.Warn().Err(sendErr).Msg("error followup failed")
	}
}
