package command

// Variant identifies one of the four command surfaces.
type Variant int

const (
	VariantClassic Variant = iota + 1
	VariantSlash
	VariantMessage
	VariantUser
)

func (v Variant) String() string {
	switch v {
	case VariantClassic:
		return "classic"
	case VariantSlash:
		return "slash"
	case VariantMessage:
		return "message"
	case VariantUser:
		return "user"
	default:
		return "unknown"
	}
}

// Handler function signatures, one per request variant.
type (
	ClassicFunc func(ctx *Context, req *ClassicRequest) (Response, error)
	SlashFunc   func(ctx *Context, req *SlashRequest) (Response, error)
	MessageFunc func(ctx *Context, req *MessageRequest) (Response, error)
	UserFunc    func(ctx *Context, req *UserRequest) (Response, error)
)

// Handler is a tagged sum over the four variant function types. The
// constructor used at attach time selects the bucket, so a node can store
// handlers of mixed variants in one flat list. The same underlying function
// may be attached through multiple constructors; repeated attachment of one
// handler is not deduplicated.
type Handler struct {
	variant Variant
	classic ClassicFunc
	slash   SlashFunc
	message MessageFunc
	user    UserFunc
}

// Classic wraps a classic-surface handler.
func Classic(fn ClassicFunc) Handler { return Handler{variant: VariantClassic, classic: fn} }

// Slash wraps a slash-surface handler.
func Slash(fn SlashFunc) Handler { return Handler{variant: VariantSlash, slash: fn} }

// MessageTarget wraps a message-target handler.
func MessageTarget(fn MessageFunc) Handler { return Handler{variant: VariantMessage, message: fn} }

// UserTarget wraps a user-target handler.
func UserTarget(fn UserFunc) Handler { return Handler{variant: VariantUser, user: fn} }

// Variant reports which surface this handler serves.
func (h Handler) Variant() Variant { return h.variant }
