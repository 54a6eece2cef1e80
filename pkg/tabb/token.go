// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabb

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind classifies one raw input item.
type TokenKind int

const (
	// TokenLong is a "--name" or "--name=value" item.
	TokenLong TokenKind = iota
	// TokenShort is a "-x" or "-xyz" item: one or more short flag runes.
	// Whether the runes after the first are more flags or an attached value
	// depends on the schema, so the cluster is kept raw and resolved by the
	// matcher.
	TokenShort
	// TokenPositional is any item with no flag shape, and every item after
	// the first "--".
	TokenPositional
	// TokenSeparator is the first literal "--".
	TokenSeparator
)

func (k TokenKind) String() string {
	switch k {
	case TokenLong:
		return "long"
	case TokenShort:
		return "short"
	case TokenPositional:
		return "positional"
	case TokenSeparator:
		return "separator"
	}
	return "unknown"
}

// Token is one classified input item. Exactly one Token is produced per raw
// item, and each is consumed exactly once by the matcher.
type Token struct {
	Kind     TokenKind
	Text     string // the item as typed
	Name     string // long flag name or short cluster runes, dashes stripped
	Value    string // inline "=value", when present
	HasValue bool
	Pos      int // index of the item in the raw input
}

// Tokenize classifies raw invocation items left to right. The first literal
// "--" becomes a separator and permanently disables flag interpretation for
// the rest of the sequence. Classification is purely lexical: no schema
// lookup and no value coercion happens here, and the same input always
// yields the same tokens.
//
// A dash followed by a non-letter ("-", "-5", "-3.14") is a positional, so
// negative numbers never classify as flags.
func Tokenize(args []string) []Token {
	tokens := make([]Token, 0, len(args))
	literal := false

	for i, arg := range args {
		if literal {
			tokens = append(tokens, Token{Kind: TokenPositional, Text: arg, Pos: i})
			continue
		}
		if arg == "--" {
			literal = true
			tokens = append(tokens, Token{Kind: TokenSeparator, Text: arg, Pos: i})
			continue
		}
		tokens = append(tokens, classify(arg, i))
	}
	return tokens
}

func classify(arg string, pos int) Token {
	if strings.HasPrefix(arg, "--") {
		name, value, hasValue := strings.Cut(arg[2:], "=")
		return Token{
			Kind:     TokenLong,
			Text:     arg,
			Name:     name,
			Value:    value,
			HasValue: hasValue,
			Pos:      pos,
		}
	}
	if strings.HasPrefix(arg, "-") && len(arg) > 1 {
		rest := arg[1:]
		if first, _ := utf8.DecodeRuneInString(rest); isFlagRune(first) {
			name, value, hasValue := strings.Cut(rest, "=")
			return Token{
				Kind:     TokenShort,
				Text:     arg,
				Name:     name,
				Value:    value,
				HasValue: hasValue,
				Pos:      pos,
			}
		}
	}
	return Token{Kind: TokenPositional, Text: arg, Pos: pos}
}

// isFlagRune reports whether r can appear as a short flag. Short flags are
// letters, which keeps "-5" and "-3.14" classified as positionals.
func isFlagRune(r rune) bool {
	return unicode.IsLetter(r)
}
