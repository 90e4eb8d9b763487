package command

import "github.com/bwmarrin/discordgo"

// ChannelType is re-exported so command declarations do not need to import
// the platform package for channel-type restrictions.
type ChannelType = discordgo.ChannelType

// ArgKind enumerates the supported parameter kinds.
type ArgKind int

const (
	KindBool ArgKind = iota + 1
	KindNumber
	KindInteger
	KindString
	KindChannel
	KindMessage
	KindAttachment
	KindUser
	KindRole
	KindMention
)

func (k ArgKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindChannel:
		return "channel"
	case KindMessage:
		return "message"
	case KindAttachment:
		return "attachment"
	case KindUser:
		return "user"
	case KindRole:
		return "role"
	case KindMention:
		return "mention"
	default:
		return "unknown"
	}
}

// Choice is a named preset value offered for a slash option.
type Choice[T any] struct {
	Name  string
	Value T
}

// NumberData constrains a KindNumber descriptor.
type NumberData struct {
	Min     *float64
	Max     *float64
	Choices []Choice[float64]
}

// IntegerData constrains a KindInteger descriptor.
type IntegerData struct {
	Min     *int64
	Max     *int64
	Choices []Choice[int64]
}

// StringData constrains a KindString descriptor.
type StringData struct {
	MinLength *int
	MaxLength *int
	Choices   []Choice[string]
}

// ChannelData constrains a KindChannel descriptor to specific channel types.
type ChannelData struct {
	Types []ChannelType
}

// ArgDesc is the declaration-time metadata of one parameter. The pointer
// fields carry per-kind constraint data and are set only for the matching
// kind.
type ArgDesc struct {
	Name        string
	Description string
	Kind        ArgKind
	Required    bool

	Number  *NumberData
	Integer *IntegerData
	String  *StringData
	Channel *ChannelData
}
