package command

// Node is one command in the tree: a leaf with argument descriptors, or a
// branch holding subcommands and groups. A branch's own handlers are never
// invoked; descent must reach a leaf.
type Node struct {
	Name        string
	Description string
	Handlers    []Handler
	Options     []Option
}

// Group is a subcommand group. Groups contain only commands, mirroring the
// platform's two-level nesting limit.
type Group struct {
	Name        string
	Description string
	Subs        []*Node
}

// Option is a tagged entry in a node's options list; exactly one field is
// set.
type Option struct {
	Arg   *ArgDesc
	Sub   *Node
	Group *Group
}

// Name of the entry, whichever variant is set.
func (o Option) Name() string {
	switch {
	case o.Arg != nil:
		return o.Arg.Name
	case o.Sub != nil:
		return o.Sub.Name
	case o.Group != nil:
		return o.Group.Name
	default:
		return ""
	}
}

// Args returns the node's argument descriptors in declaration order.
func (n *Node) Args() []*ArgDesc {
	var args []*ArgDesc
	for _, o := range n.Options {
		if o.Arg != nil {
			args = append(args, o.Arg)
		}
	}
	return args
}

// IsBranch reports whether the node owns any subcommand or group children.
func (n *Node) IsBranch() bool {
	for _, o := range n.Options {
		if o.Sub != nil || o.Group != nil {
			return true
		}
	}
	return false
}

// Classic returns the attached classic handlers.
func (n *Node) Classic() []ClassicFunc {
	var fns []ClassicFunc
	for _, h := range n.Handlers {
		if h.variant == VariantClassic {
			fns = append(fns, h.classic)
		}
	}
	return fns
}

// Slash returns the attached slash handlers.
func (n *Node) Slash() []SlashFunc {
	var fns []SlashFunc
	for _, h := range n.Handlers {
		if h.variant == VariantSlash {
			fns = append(fns, h.slash)
		}
	}
	return fns
}

// Message returns the attached message-target handlers.
func (n *Node) Message() []MessageFunc {
	var fns []MessageFunc
	for _, h := range n.Handlers {
		if h.variant == VariantMessage {
			fns = append(fns, h.message)
		}
	}
	return fns
}

// User returns the attached user-target handlers.
func (n *Node) User() []UserFunc {
	var fns []UserFunc
	for _, h := range n.Handlers {
		if h.variant == VariantUser {
			fns = append(fns, h.user)
		}
	}
	return fns
}

// HasVariant reports whether any node in the tree rooted here carries a
// handler of the given variant.
func (n *Node) HasVariant(v Variant) bool {
	for _, h := range n.Handlers {
		if h.variant == v {
			return true
		}
	}
	for _, o := range n.Options {
		switch {
		case o.Sub != nil:
			if o.Sub.HasVariant(v) {
				return true
			}
		case o.Group != nil:
			for _, sub := range o.Group.Subs {
				if sub.HasVariant(v) {
					return true
				}
			}
		}
	}
	return false
}

// BaseCommand is the root of a command tree plus the cross-surface policy
// that only applies at the top level.
type BaseCommand struct {
	Root              *Node
	DMEnabled         bool
	MemberPermissions *int64
}
