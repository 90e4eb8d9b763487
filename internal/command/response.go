package command

// ResponseKind tags the action a handler asks the dispatcher to take.
type ResponseKind int

const (
	// ResponseNone leaves side effects alone.
	ResponseNone ResponseKind = iota

	// ResponseClear removes the invocation artefact: the origin message on
	// the classic path, the deferred response on the interaction path.
	ResponseClear

	// ResponseCreateMessage posts or updates with the attached text.
	ResponseCreateMessage
)

// Response is the uniform handler return value shared by all variants.
// Handlers are free to perform platform side effects themselves before
// returning; the dispatcher only acts on the returned value.
type Response struct {
	Kind ResponseKind
	Text string
}

// None returns a response that requests no dispatcher action.
func None() Response { return Response{Kind: ResponseNone} }

// Clear returns a response that removes the invocation artefact.
func Clear() Response { return Response{Kind: ResponseClear} }

// CreateMessage returns a response that posts or updates with text.
func CreateMessage(text string) Response {
	return Response{Kind: ResponseCreateMessage, Text: text}
}
