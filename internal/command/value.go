package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// ArgValue is an immutable typed argument value. Exactly one payload field
// is populated, selected by kind.
type ArgValue struct {
	kind       ArgKind
	boolean    bool
	number     float64
	integer    int64
	str        string
	channel    Ref[discordgo.Channel]
	message    Ref[discordgo.Message]
	attachment Ref[discordgo.MessageAttachment]
	user       Ref[discordgo.User]
	role       Ref[discordgo.Role]
	mention    string
}

func (v ArgValue) Kind() ArgKind { return v.kind }

// BoolValue wraps a bool.
func BoolValue(b bool) ArgValue { return ArgValue{kind: KindBool, boolean: b} }

// NumberValue wraps a float.
func NumberValue(n float64) ArgValue { return ArgValue{kind: KindNumber, number: n} }

// IntegerValue wraps an integer.
func IntegerValue(i int64) ArgValue { return ArgValue{kind: KindInteger, integer: i} }

// StringValue wraps a string.
func StringValue(s string) ArgValue { return ArgValue{kind: KindString, str: s} }

// ChannelValue wraps a channel reference.
func ChannelValue(r Ref[discordgo.Channel]) ArgValue { return ArgValue{kind: KindChannel, channel: r} }

// MessageValue wraps a message reference.
func MessageValue(r Ref[discordgo.Message]) ArgValue { return ArgValue{kind: KindMessage, message: r} }

// AttachmentValue wraps an attachment reference.
func AttachmentValue(r Ref[discordgo.MessageAttachment]) ArgValue {
	return ArgValue{kind: KindAttachment, attachment: r}
}

// UserValue wraps a user reference.
func UserValue(r Ref[discordgo.User]) ArgValue { return ArgValue{kind: KindUser, user: r} }

// RoleValue wraps a role reference.
func RoleValue(r Ref[discordgo.Role]) ArgValue { return ArgValue{kind: KindRole, role: r} }

// MentionValue wraps a generic mentionable target identifier.
func MentionValue(id string) ArgValue { return ArgValue{kind: KindMention, mention: id} }

// Per-kind accessors. The second return value reports a kind match.

func (v ArgValue) Bool() (bool, bool)      { return v.boolean, v.kind == KindBool }
func (v ArgValue) Number() (float64, bool) { return v.number, v.kind == KindNumber }
func (v ArgValue) Integer() (int64, bool)  { return v.integer, v.kind == KindInteger }
func (v ArgValue) String() (string, bool)  { return v.str, v.kind == KindString }
func (v ArgValue) Mention() (string, bool) { return v.mention, v.kind == KindMention }

func (v ArgValue) Channel() (Ref[discordgo.Channel], bool) {
	return v.channel, v.kind == KindChannel
}

func (v ArgValue) Message() (Ref[discordgo.Message], bool) {
	return v.message, v.kind == KindMessage
}

func (v ArgValue) Attachment() (Ref[discordgo.MessageAttachment], bool) {
	return v.attachment, v.kind == KindAttachment
}

func (v ArgValue) User() (Ref[discordgo.User], bool) {
	return v.user, v.kind == KindUser
}

func (v ArgValue) Role() (Ref[discordgo.Role], bool) {
	return v.role, v.kind == KindRole
}

// ValueFromText parses a raw text token into a typed value for the given
// kind. Numeric and length bounds declared on the descriptor are validator
// policy and are not enforced here.
func ValueFromText(kind ArgKind, text string) (ArgValue, error) {
	switch kind {
	case KindBool:
		switch strings.ToLower(text) {
		case "true":
			return BoolValue(true), nil
		case "false":
			return BoolValue(false), nil
		default:
			return ArgValue{}, fmt.Errorf("bool arg parse error: invalid value '%s'", text)
		}

	case KindNumber:
		n, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return ArgValue{}, fmt.Errorf("number arg parse error: %w", err)
		}
		return NumberValue(n), nil

	case KindInteger:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return ArgValue{}, fmt.Errorf("integer arg parse error: %w", err)
		}
		return IntegerValue(i), nil

	case KindString:
		return StringValue(text), nil

	case KindChannel:
		id, err := parseMentionOrID(text, "#")
		if err != nil {
			return ArgValue{}, fmt.Errorf("channel arg parse error: %w", err)
		}
		return ChannelValue(RefID[discordgo.Channel](id)), nil

	case KindMessage:
		id, err := parseID(text)
		if err != nil {
			return ArgValue{}, fmt.Errorf("message arg parse error: %w", err)
		}
		return MessageValue(RefID[discordgo.Message](id)), nil

	case KindAttachment:
		id, err := parseID(text)
		if err != nil {
			return ArgValue{}, fmt.Errorf("attachment arg parse error: %w", err)
		}
		return AttachmentValue(RefID[discordgo.MessageAttachment](id)), nil

	case KindUser:
		id, err := parseMentionOrID(text, "@", "@!")
		if err != nil {
			return ArgValue{}, fmt.Errorf("user arg parse error: %w", err)
		}
		return UserValue(RefID[discordgo.User](id)), nil

	case KindRole:
		id, err := parseMentionOrID(text, "@&")
		if err != nil {
			return ArgValue{}, fmt.Errorf("role arg parse error: %w", err)
		}
		return RoleValue(RefID[discordgo.Role](id)), nil

	case KindMention:
		id, err := parseMentionOrID(text, "@", "@!", "@&", "#")
		if err != nil {
			return ArgValue{}, fmt.Errorf("mention arg parse error: %w", err)
		}
		return MentionValue(id), nil

	default:
		return ArgValue{}, fmt.Errorf("unsupported argument kind: %s", kind)
	}
}

// ValueFromMessage binds a special argument from the origin message itself:
// a Message descriptor takes the replied-to message, an Attachment descriptor
// takes the upload at the given index. Other kinds return a zero value with
// ok=false to signal a fall-through to the token path.
func ValueFromMessage(kind ArgKind, msg *discordgo.Message, attachmentIdx int) (ArgValue, bool, error) {
	switch kind {
	case KindMessage:
		if msg.ReferencedMessage == nil {
			return ArgValue{}, false, nil
		}
		replied := msg.ReferencedMessage
		return MessageValue(RefObj(replied.ID, replied)), true, nil

	case KindAttachment:
		if attachmentIdx >= len(msg.Attachments) {
			return ArgValue{}, false, fmt.Errorf("attachment arg parse error (upload): %w", ErrMissingArgs)
		}
		a := msg.Attachments[attachmentIdx]
		return AttachmentValue(RefObj(a.ID, a)), true, nil

	default:
		return ArgValue{}, false, nil
	}
}

// ValueFromOption converts a platform option value into a typed value.
// Resolved objects are attached when the payload carries them. Subcommand
// and group options must never reach this path.
func ValueFromOption(
	opt *discordgo.ApplicationCommandInteractionDataOption,
	resolved *discordgo.ApplicationCommandInteractionDataResolved,
) (ArgValue, error) {
	switch opt.Type {
	case discordgo.ApplicationCommandOptionBoolean:
		b, _ := opt.Value.(bool)
		return BoolValue(b), nil

	case discordgo.ApplicationCommandOptionNumber:
		n, _ := opt.Value.(float64)
		return NumberValue(n), nil

	case discordgo.ApplicationCommandOptionInteger:
		// Integers arrive as JSON numbers.
		n, _ := opt.Value.(float64)
		return IntegerValue(int64(n)), nil

	case discordgo.ApplicationCommandOptionString:
		s, _ := opt.Value.(string)
		return StringValue(s), nil

	case discordgo.ApplicationCommandOptionChannel:
		id, _ := opt.Value.(string)
		if resolved != nil {
			if ch, ok := resolved.Channels[id]; ok {
				return ChannelValue(RefObj(id, ch)), nil
			}
		}
		return ChannelValue(RefID[discordgo.Channel](id)), nil

	case discordgo.ApplicationCommandOptionUser:
		id, _ := opt.Value.(string)
		if resolved != nil {
			if u, ok := resolved.Users[id]; ok {
				return UserValue(RefObj(id, u)), nil
			}
		}
		return UserValue(RefID[discordgo.User](id)), nil

	case discordgo.ApplicationCommandOptionRole:
		id, _ := opt.Value.(string)
		if resolved != nil {
			if r, ok := resolved.Roles[id]; ok {
				return RoleValue(RefObj(id, r)), nil
			}
		}
		return RoleValue(RefID[discordgo.Role](id)), nil

	case discordgo.ApplicationCommandOptionMentionable:
		id, _ := opt.Value.(string)
		return MentionValue(id), nil

	case discordgo.ApplicationCommandOptionAttachment:
		id, _ := opt.Value.(string)
		if resolved != nil {
			if a, ok := resolved.Attachments[id]; ok {
				return AttachmentValue(RefObj(id, a)), nil
			}
		}
		return AttachmentValue(RefID[discordgo.MessageAttachment](id)), nil

	default:
		return ArgValue{}, fmt.Errorf("cannot convert option of type %d to argument value", opt.Type)
	}
}

// parseID accepts a bare numeric platform identifier.
func parseID(text string) (string, error) {
	text = strings.TrimSpace(text)
	if _, err := strconv.ParseUint(text, 10, 64); err != nil {
		return "", fmt.Errorf("(as id) %w", err)
	}
	return text, nil
}

// parseMentionOrID first tries the platform mention syntax with the given
// sigils, then a bare numeric identifier. Both failures are reported.
func parseMentionOrID(text string, sigils ...string) (string, error) {
	text = strings.TrimSpace(text)

	var mentionErr error
	if strings.HasPrefix(text, "<") && strings.HasSuffix(text, ">") {
		inner := text[1 : len(text)-1]
		for _, sigil := range sigils {
			rest, ok := strings.CutPrefix(inner, sigil)
			if !ok {
				continue
			}
			if _, err := strconv.ParseUint(rest, 10, 64); err == nil {
				return rest, nil
			}
		}
		mentionErr = fmt.Errorf("(as mention) invalid mention '%s'", text)
	} else {
		mentionErr = fmt.Errorf("(as mention) no mention syntax in '%s'", text)
	}

	id, idErr := parseID(text)
	if idErr != nil {
		return "", fmt.Errorf("%w: %w", idErr, mentionErr)
	}
	return id, nil
}
