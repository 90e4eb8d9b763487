// Package parser holds the lexical layer of the classic command path:
// prefix stripping, whitespace splitting and quote-aware tokenization.
package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Delimiters are the accepted quote characters. A quoted token spans up to
// the matching closing character; no escape processing is done.
const Delimiters = `"'` + "`"

// ErrNoArgument signals that the input held no further argument.
var ErrNoArgument = errors.New("no argument")

// UnterminatedError means a quoted token was never closed.
type UnterminatedError struct {
	Input string
}

func (e *UnterminatedError) Error() string {
	return fmt.Sprintf("missing matching delimiter in '%s', expected one of: %s", e.Input, Delimiters)
}

// Unprefix strips prefix from text, reporting whether it was present.
func Unprefix(prefix, text string) (string, bool) {
	return strings.CutPrefix(text, prefix)
}

// SplitOnceWhitespace returns the part before the first whitespace run and
// everything after it. The second value is empty when no whitespace occurs.
func SplitOnceWhitespace(text string) (string, string) {
	i := strings.IndexFunc(text, IsSpace)
	if i < 0 {
		return text, ""
	}
	return text[:i], text[i+1:]
}

// NextArg consumes one argument from input and returns it with the
// remaining text. An argument is either a quoted span or a whitespace
// separated word. Leading whitespace is skipped. ErrNoArgument is returned
// at end of input; an unclosed quote fails with UnterminatedError.
func NextArg(input string) (string, string, error) {
	input = strings.TrimLeftFunc(input, IsSpace)
	if input == "" {
		return "", "", ErrNoArgument
	}

	initial := input[0]
	if strings.IndexByte(Delimiters, initial) >= 0 {
		end := strings.IndexByte(input[1:], initial)
		if end < 0 {
			return "", "", &UnterminatedError{Input: input}
		}
		return input[1 : 1+end], input[2+end:], nil
	}

	arg, rest := SplitOnceWhitespace(input)
	return arg, rest, nil
}

// IsSpace reports whether r separates tokens. The same set applies at every
// lexical layer, from command descent to argument splitting.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// ParseArgs tokenizes the whole input.
func ParseArgs(input string) ([]string, error) {
	var args []string
	for {
		arg, rest, err := NextArg(input)
		if errors.Is(err, ErrNoArgument) {
			return args, nil
		}
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		input = rest
	}
}
