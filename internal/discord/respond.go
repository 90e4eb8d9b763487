package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/kvisle/herald/internal/command"
)

const genericErrorLine = "Something went wrong. Try again in a bit."

// applyClassic turns a handler response into channel traffic for a classic
// invocation.
func applyClassic(s *discordgo.Session, resp command.Response, msg *discordgo.Message) error {
	switch resp.Kind {
	case command.ResponseNone:
		return nil
	case command.ResponseClear:
		return s.ChannelMessageDelete(msg.ChannelID, msg.ID)
	case command.ResponseCreateMessage:
		_, err := s.ChannelMessageSendReply(msg.ChannelID, resp.Text, msg.Reference())
		return err
	default:
		return fmt.Errorf("unhandled response kind %d", resp.Kind)
	}
}

// applyInteraction resolves the deferred acknowledgement. None and Clear
// both remove the pending "thinking" state; CreateMessage fills it in.
func applyInteraction(s *discordgo.Session, resp command.Response, i *discordgo.Interaction) error {
	switch resp.Kind {
	case command.ResponseNone, command.ResponseClear:
		return s.InteractionResponseDelete(i)
	case command.ResponseCreateMessage:
		_, err := s.InteractionResponseEdit(i, &discordgo.WebhookEdit{Content: &resp.Text})
		return err
	default:
		return fmt.Errorf("unhandled response kind %d", resp.Kind)
	}
}

// userErrorLine picks what the invoking user gets to see. Lookup and
// argument mistakes are their own fault and worth describing; anything else
// collapses to a generic line while the detail goes to the log.
func userErrorLine(err error) (string, bool) {
	var (
		notFound   *command.NotFoundError
		unexpected *command.UnexpectedArgsError
		parseErr   *command.ParseError
	)
	switch {
	case errors.As(err, &notFound):
		return fmt.Sprintf("Unknown command '%s'.", notFound.Name), true
	case errors.As(err, &unexpected):
		return "Unexpected arguments: " + unexpected.Detail + ".", true
	case errors.As(err, &parseErr):
		return "Could not read the arguments: " + parseErr.Error() + ".", true
	case errors.Is(err, command.ErrMissingArgs):
		return "Missing required arguments.", true
	case errors.Is(err, command.ErrMissingReply):
		return "Reply to a message when using this command.", true
	case errors.Is(err, command.ErrAccessDenied):
		return "You do not have permission to do that.", true
	case errors.Is(err, command.ErrDisabled):
		return "That command is not available here.", true
	case errors.Is(err, command.ErrNotImplemented):
		return "That command is not wired up yet.", true
	}
	return genericErrorLine, false
}

// reportError mirrors the failure into the dev channel when one is
// configured, so operators see stack context without digging through logs.
func (b *Bot) reportError(scope string, err error) {
	b.log.Error().Err(err).Str("scope", scope).Msg("command failed")
	if b.cfg.DevChannelID == "" {
		return
	}
	text := fmt.Sprintf("`%s` failed: %v", scope, err)
	if _, sendErr := b.session.ChannelMessageSend(b.cfg.DevChannelID, text); sendErr != nil {
		b.log.Warn().Err(sendErr).Msg("dev channel report failed")
	}
}
