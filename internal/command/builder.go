package command

// The builder API mirrors how commands are declared: a base command with
// cross-surface policy, subcommand and group nodes, and per-kind argument
// builders. Builders are write-once; Build finalizes into the immutable
// declarative structures.
//
//	command.New("alias", "Manage guild command aliases.").
//		Permissions(discordgo.PermissionManageGuild).
//		Option(command.Sub("set", "Set an alias.").
//			Attach(command.Classic(setClassic)).
//			Option(command.String("name", "Alias name.").Required()).
//			Option(command.String("definition", "Aliased command.").Required()))

// OptionSource is anything the Option sink accepts: argument builders,
// subcommand builders and group builders.
type OptionSource interface {
	option() Option
}

// Builder assembles a BaseCommand.
type Builder struct {
	base BaseCommand
}

// New starts a base command. An empty description is replaced with a
// placeholder so the platform's non-empty rule holds.
func New(name, description string) *Builder {
	return &Builder{base: BaseCommand{Root: newNode(name, description)}}
}

// DM makes the command available in direct messages.
func (b *Builder) DM() *Builder {
	b.base.DMEnabled = true
	return b
}

// Permissions sets the default member permission bits required to invoke.
func (b *Builder) Permissions(bits int64) *Builder {
	b.base.MemberPermissions = &bits
	return b
}

// Attach registers a handler on the root node.
func (b *Builder) Attach(h Handler) *Builder {
	b.base.Root.Handlers = append(b.base.Root.Handlers, h)
	return b
}

// Option adds a descriptor or child node to the root.
func (b *Builder) Option(src OptionSource) *Builder {
	b.base.Root.Options = append(b.base.Root.Options, src.option())
	return b
}

// Build finalizes the command without validating it. The registry builder
// validates every member before sealing.
func (b *Builder) Build() *BaseCommand {
	cmd := b.base
	return &cmd
}

// Validate builds and validates in one step.
func (b *Builder) Validate() (*BaseCommand, error) {
	cmd := b.Build()
	if err := Validate(cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

func newNode(name, description string) *Node {
	if description == "" {
		description = "-"
	}
	return &Node{Name: name, Description: description}
}

// NodeBuilder assembles a subcommand node.
type NodeBuilder struct {
	node *Node
}

// Sub starts a subcommand.
func Sub(name, description string) *NodeBuilder {
	return &NodeBuilder{node: newNode(name, description)}
}

// Attach registers a handler on this node.
func (b *NodeBuilder) Attach(h Handler) *NodeBuilder {
	b.node.Handlers = append(b.node.Handlers, h)
	return b
}

// Option adds a descriptor or child node.
func (b *NodeBuilder) Option(src OptionSource) *NodeBuilder {
	b.node.Options = append(b.node.Options, src.option())
	return b
}

// Build finalizes the node.
func (b *NodeBuilder) Build() *Node { return b.node }

func (b *NodeBuilder) option() Option { return Option{Sub: b.node} }

// GroupBuilder assembles a subcommand group.
type GroupBuilder struct {
	group *Group
}

// NewGroup starts a subcommand group.
func NewGroup(name, description string) *GroupBuilder {
	if description == "" {
		description = "-"
	}
	return &GroupBuilder{group: &Group{Name: name, Description: description}}
}

// Option adds a subcommand to the group.
func (b *GroupBuilder) Option(sub *NodeBuilder) *GroupBuilder {
	b.group.Subs = append(b.group.Subs, sub.node)
	return b
}

// Subs adds several subcommands to the group.
func (b *GroupBuilder) Subs(subs ...*NodeBuilder) *GroupBuilder {
	for _, s := range subs {
		b.group.Subs = append(b.group.Subs, s.node)
	}
	return b
}

// Build finalizes the group.
func (b *GroupBuilder) Build() *Group { return b.group }

func (b *GroupBuilder) option() Option { return Option{Group: b.group} }

func newDesc(name, description string, kind ArgKind) ArgDesc {
	if description == "" {
		description = "-"
	}
	return ArgDesc{Name: name, Description: description, Kind: kind}
}

// ArgBuilder covers argument kinds without extra constraint data.
type ArgBuilder struct {
	desc ArgDesc
}

// Bool declares a bool argument.
func Bool(name, description string) *ArgBuilder {
	return &ArgBuilder{desc: newDesc(name, description, KindBool)}
}

// Message declares a message argument. On the classic path it binds the
// origin's reply reference.
func Message(name, description string) *ArgBuilder {
	return &ArgBuilder{desc: newDesc(name, description, KindMessage)}
}

// Attachment declares an attachment argument. On the classic path it binds
// the next uploaded attachment of the origin message.
func Attachment(name, description string) *ArgBuilder {
	return &ArgBuilder{desc: newDesc(name, description, KindAttachment)}
}

// User declares a user argument.
func User(name, description string) *ArgBuilder {
	return &ArgBuilder{desc: newDesc(name, description, KindUser)}
}

// Role declares a role argument.
func Role(name, description string) *ArgBuilder {
	return &ArgBuilder{desc: newDesc(name, description, KindRole)}
}

// Mention declares an any-mentionable argument.
func Mention(name, description string) *ArgBuilder {
	return &ArgBuilder{desc: newDesc(name, description, KindMention)}
}

// Required marks the argument required. All required arguments must precede
// optional ones.
func (b *ArgBuilder) Required() *ArgBuilder {
	b.desc.Required = true
	return b
}

// Build finalizes the descriptor.
func (b *ArgBuilder) Build() ArgDesc { return b.desc }

func (b *ArgBuilder) option() Option {
	d := b.desc
	return Option{Arg: &d}
}

// NumberBuilder declares a float argument with optional bounds and choices.
type NumberBuilder struct {
	desc ArgDesc
}

// Number declares a number argument.
func Number(name, description string) *NumberBuilder {
	d := newDesc(name, description, KindNumber)
	d.Number = &NumberData{}
	return &NumberBuilder{desc: d}
}

func (b *NumberBuilder) Required() *NumberBuilder {
	b.desc.Required = true
	return b
}

func (b *NumberBuilder) Min(v float64) *NumberBuilder {
	b.desc.Number.Min = &v
	return b
}

func (b *NumberBuilder) Max(v float64) *NumberBuilder {
	b.desc.Number.Max = &v
	return b
}

func (b *NumberBuilder) Choices(choices ...Choice[float64]) *NumberBuilder {
	b.desc.Number.Choices = choices
	return b
}

func (b *NumberBuilder) Build() ArgDesc { return b.desc }

func (b *NumberBuilder) option() Option {
	d := b.desc
	return Option{Arg: &d}
}

// IntegerBuilder declares an integer argument with optional bounds and
// choices.
type IntegerBuilder struct {
	desc ArgDesc
}

// Integer declares an integer argument.
func Integer(name, description string) *IntegerBuilder {
	d := newDesc(name, description, KindInteger)
	d.Integer = &IntegerData{}
	return &IntegerBuilder{desc: d}
}

func (b *IntegerBuilder) Required() *IntegerBuilder {
	b.desc.Required = true
	return b
}

func (b *IntegerBuilder) Min(v int64) *IntegerBuilder {
	b.desc.Integer.Min = &v
	return b
}

func (b *IntegerBuilder) Max(v int64) *IntegerBuilder {
	b.desc.Integer.Max = &v
	return b
}

func (b *IntegerBuilder) Choices(choices ...Choice[int64]) *IntegerBuilder {
	b.desc.Integer.Choices = choices
	return b
}

func (b *IntegerBuilder) Build() ArgDesc { return b.desc }

func (b *IntegerBuilder) option() Option {
	d := b.desc
	return Option{Arg: &d}
}

// StringBuilder declares a string argument with optional length bounds and
// choices.
type StringBuilder struct {
	desc ArgDesc
}

// String declares a string argument.
func String(name, description string) *StringBuilder {
	d := newDesc(name, description, KindString)
	d.String = &StringData{}
	return &StringBuilder{desc: d}
}

func (b *StringBuilder) Required() *StringBuilder {
	b.desc.Required = true
	return b
}

func (b *StringBuilder) MinLength(v int) *StringBuilder {
	b.desc.String.MinLength = &v
	return b
}

func (b *StringBuilder) MaxLength(v int) *StringBuilder {
	b.desc.String.MaxLength = &v
	return b
}

func (b *StringBuilder) Choices(choices ...Choice[string]) *StringBuilder {
	b.desc.String.Choices = choices
	return b
}

func (b *StringBuilder) Build() ArgDesc { return b.desc }

func (b *StringBuilder) option() Option {
	d := b.desc
	return Option{Arg: &d}
}

// ChannelBuilder declares a channel argument with an optional allowed
// channel-type set.
type ChannelBuilder struct {
	desc ArgDesc
}

// Channel declares a channel argument.
func Channel(name, description string) *ChannelBuilder {
	d := newDesc(name, description, KindChannel)
	d.Channel = &ChannelData{}
	return &ChannelBuilder{desc: d}
}

func (b *ChannelBuilder) Required() *ChannelBuilder {
	b.desc.Required = true
	return b
}

// Types restricts the channel choice to specific types.
func (b *ChannelBuilder) Types(types ...ChannelType) *ChannelBuilder {
	b.desc.Channel.Types = types
	return b
}

func (b *ChannelBuilder) Build() ArgDesc { return b.desc }

func (b *ChannelBuilder) option() Option {
	d := b.desc
	return Option{Arg: &d}
}
