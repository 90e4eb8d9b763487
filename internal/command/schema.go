package command

import "github.com/bwmarrin/discordgo"

// Schemas emits the platform registration schema for each interaction
// surface the command exposes: one chat-input schema if any node carries a
// slash handler, and name-only message-/user-target schemas likewise.
// Classic handlers produce no platform schema. The command must already be
// validated.
func (cmd *BaseCommand) Schemas() []*discordgo.ApplicationCommand {
	var out []*discordgo.ApplicationCommand

	dm := cmd.DMEnabled
	base := discordgo.ApplicationCommand{
		Name:                     cmd.Root.Name,
		DMPermission:             &dm,
		DefaultMemberPermissions: cmd.MemberPermissions,
	}

	if cmd.Root.HasVariant(VariantSlash) {
		slash := base
		slash.Type = discordgo.ChatApplicationCommand
		slash.Description = cmd.Root.Description
		slash.Options = optionSchemas(cmd.Root.Options)
		out = append(out, &slash)
	}

	if cmd.Root.HasVariant(VariantMessage) {
		msg := base
		msg.Type = discordgo.MessageApplicationCommand
		out = append(out, &msg)
	}

	if cmd.Root.HasVariant(VariantUser) {
		usr := base
		usr.Type = discordgo.UserApplicationCommand
		out = append(out, &usr)
	}

	return out
}

func optionSchemas(options []Option) []*discordgo.ApplicationCommandOption {
	var out []*discordgo.ApplicationCommandOption
	for _, o := range options {
		switch {
		case o.Arg != nil:
			out = append(out, argSchema(o.Arg))
		case o.Sub != nil:
			out = append(out, &discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        o.Sub.Name,
				Description: o.Sub.Description,
				Options:     optionSchemas(o.Sub.Options),
			})
		case o.Group != nil:
			group := &discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
				Name:        o.Group.Name,
				Description: o.Group.Description,
			}
			for _, sub := range o.Group.Subs {
				group.Options = append(group.Options, &discordgo.ApplicationCommandOption{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        sub.Name,
					Description: sub.Description,
					Options:     optionSchemas(sub.Options),
				})
			}
			out = append(out, group)
		}
	}
	return out
}

func argSchema(d *ArgDesc) *discordgo.ApplicationCommandOption {
	opt := &discordgo.ApplicationCommandOption{
		Name:        d.Name,
		Description: d.Description,
		Required:    d.Required,
	}

	switch d.Kind {
	case KindBool:
		opt.Type = discordgo.ApplicationCommandOptionBoolean

	case KindNumber:
		opt.Type = discordgo.ApplicationCommandOptionNumber
		if d.Number != nil {
			opt.MinValue = d.Number.Min
			if d.Number.Max != nil {
				opt.MaxValue = *d.Number.Max
			}
			for _, c := range d.Number.Choices {
				opt.Choices = append(opt.Choices, &discordgo.ApplicationCommandOptionChoice{
					Name:  c.Name,
					Value: c.Value,
				})
			}
		}

	case KindInteger:
		opt.Type = discordgo.ApplicationCommandOptionInteger
		if d.Integer != nil {
			if d.Integer.Min != nil {
				min := float64(*d.Integer.Min)
				opt.MinValue = &min
			}
			if d.Integer.Max != nil {
				opt.MaxValue = float64(*d.Integer.Max)
			}
			for _, c := range d.Integer.Choices {
				opt.Choices = append(opt.Choices, &discordgo.ApplicationCommandOptionChoice{
					Name:  c.Name,
					Value: c.Value,
				})
			}
		}

	case KindString:
		opt.Type = discordgo.ApplicationCommandOptionString
		if d.String != nil {
			opt.MinLength = d.String.MinLength
			if d.String.MaxLength != nil {
				opt.MaxLength = *d.String.MaxLength
			}
			for _, c := range d.String.Choices {
				opt.Choices = append(opt.Choices, &discordgo.ApplicationCommandOptionChoice{
					Name:  c.Name,
					Value: c.Value,
				})
			}
		}

	case KindChannel:
		opt.Type = discordgo.ApplicationCommandOptionChannel
		if d.Channel != nil {
			opt.ChannelTypes = d.Channel.Types
		}

	case KindMessage:
		// No message option type exists; the id travels as a string.
		opt.Type = discordgo.ApplicationCommandOptionString
		one := 1
		opt.MinLength = &one
		opt.MaxLength = 32

	case KindAttachment:
		opt.Type = discordgo.ApplicationCommandOptionAttachment

	case KindUser:
		opt.Type = discordgo.ApplicationCommandOptionUser

	case KindRole:
		opt.Type = discordgo.ApplicationCommandOptionRole

	case KindMention:
		opt.Type = discordgo.ApplicationCommandOptionMentionable
	}

	return opt
}
