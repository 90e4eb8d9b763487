package command

import "github.com/bwmarrin/discordgo"

// ClassicRequest carries a classic invocation: the resolved leaf, parsed
// arguments and the origin chat message.
type ClassicRequest struct {
	Command *BaseCommand
	Node    *Node
	Args    Args
	Message *discordgo.Message
}

// SlashRequest carries a chat-input interaction invocation.
type SlashRequest struct {
	Command     *BaseCommand
	Node        *Node
	Args        Args
	Interaction *discordgo.InteractionCreate
	Data        *discordgo.ApplicationCommandInteractionData
}

// MessageRequest carries a message-target interaction invocation.
type MessageRequest struct {
	Command     *BaseCommand
	Interaction *discordgo.InteractionCreate
	Data        *discordgo.ApplicationCommandInteractionData
	TargetID    string
}

// Target returns the resolved target message when the payload carries it.
func (r *MessageRequest) Target() (*discordgo.Message, bool) {
	if r.Data == nil || r.Data.Resolved == nil {
		return nil, false
	}
	msg, ok := r.Data.Resolved.Messages[r.TargetID]
	return msg, ok
}

// UserRequest carries a user-target interaction invocation.
type UserRequest struct {
	Command     *BaseCommand
	Interaction *discordgo.InteractionCreate
	Data        *discordgo.ApplicationCommandInteractionData
	TargetID    string
}

// Target returns the resolved target user when the payload carries it.
func (r *UserRequest) Target() (*discordgo.User, bool) {
	if r.Data == nil || r.Data.Resolved == nil {
		return nil, false
	}
	u, ok := r.Data.Resolved.Users[r.TargetID]
	return u, ok
}
