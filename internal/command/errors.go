package command

import (
	"errors"
	"fmt"
)

// Sentinel errors for failure kinds that carry no detail.
var (
	// ErrNotPrefixed means a message did not start with a command prefix.
	// Classic-only and silent: the dispatcher drops it without reporting.
	ErrNotPrefixed = errors.New("message did not start with a command prefix")

	// ErrNotImplemented is a placeholder for handlers that are not done yet.
	ErrNotImplemented = errors.New("command or action not yet implemented")

	// ErrMissingReply means the sender must reply to a message.
	ErrMissingReply = errors.New("expected reply reference missing")

	// ErrMissingArgs means a required argument was not satisfied.
	ErrMissingArgs = errors.New("expected arguments missing")

	// ErrDisabled means the command is not available in this context.
	ErrDisabled = errors.New("command or action disabled")

	// ErrAccessDenied means the sender does not meet the permission requirements.
	ErrAccessDenied = errors.New("permission requirements not met")
)

// NotFoundError means a command is not in the registry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("command '%s' does not exist", e.Name)
}

// UnknownResourceError means a resource a handler depends on does not exist.
type UnknownResourceError struct {
	Resource string
}

func (e *UnknownResourceError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.Resource)
}

// UnexpectedArgsError means arguments are wrong, invalid or unexpected.
type UnexpectedArgsError struct {
	Detail string
}

func (e *UnexpectedArgsError) Error() string {
	return fmt.Sprintf("arguments unexpected or failed to process: %s", e.Detail)
}

// ParseError means tokenization or value parsing failed.
type ParseError struct {
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse command or argument: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("failed to parse command or argument: %s", e.Detail)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ArgMissingError is returned by Args accessors when no argument with the
// requested name is present.
type ArgMissingError struct {
	Name string
}

func (e *ArgMissingError) Error() string {
	return fmt.Sprintf("argument '%s' is missing", e.Name)
}

// ArgTypeError is returned by Args accessors when the named argument exists
// but holds a different kind of value.
type ArgTypeError struct {
	Name string
	Want ArgKind
	Got  ArgKind
}

func (e *ArgTypeError) Error() string {
	return fmt.Sprintf("argument '%s' is of kind %s, not %s", e.Name, e.Got, e.Want)
}
