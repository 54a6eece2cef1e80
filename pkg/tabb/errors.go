// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabb

import (
	"fmt"
	"strings"
)

// SchemaError is returned when a schema declaration is invalid. It is
// detected eagerly by Builder.Build, before any parsing begins; it is never
// produced while matching arguments.
type SchemaError struct {
	Schema string // command name of the schema level
	Spec   string // offending spec name, empty if the problem is level-wide
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Spec != "" {
		return fmt.Sprintf("schema %q: spec %q: %s", e.Schema, e.Spec, e.Reason)
	}
	return fmt.Sprintf("schema %q: %s", e.Schema, e.Reason)
}

// UnknownArgumentError is returned when a flag token does not match any
// long flag or short flag rune in the active schema. Suggestions holds
// close matches from the active schema's flag vocabulary, for callers that
// want to offer a "did you mean" hint; the engine itself renders nothing.
type UnknownArgumentError struct {
	Token       string // the flag as typed, e.g. "--bogus" or "-x"
	Pos         int    // index of the offending item in the raw input
	Suggestions []string
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("unknown argument: %s", e.Token)
}

// UnexpectedPositionalError is returned when a positional token arrives
// with no unfilled positional spec and no matching subcommand to bind it to.
type UnexpectedPositionalError struct {
	Token string
	Pos   int
}

func (e *UnexpectedPositionalError) Error() string {
	return fmt.Sprintf("unexpected argument: %q", e.Token)
}

// MissingValueError is returned when an option's minimum value count could
// not be satisfied: the input ended, or a flag or "--" boundary was reached,
// before enough values were collected.
type MissingValueError struct {
	Spec string
	Flag string // the flag occurrence as typed, empty for positionals
}

func (e *MissingValueError) Error() string {
	if e.Flag != "" {
		return fmt.Sprintf("%s requires a value for %q", e.Flag, e.Spec)
	}
	return fmt.Sprintf("missing value for %q", e.Spec)
}

// TooManyValuesError is returned when an argument collected more values
// than its arity allows.
type TooManyValuesError struct {
	Spec   string
	Limit  int
	Actual int
}

func (e *TooManyValuesError) Error() string {
	return fmt.Sprintf("%q accepts at most %d value(s), got %d", e.Spec, e.Limit, e.Actual)
}

// InvalidValueError is returned when a collected raw string fails type
// conversion. The conversion failure is available via Unwrap.
type InvalidValueError struct {
	Spec string
	Raw  string
	Err  error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %q: %v", e.Raw, e.Spec, e.Err)
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}

// MissingRequiredError is returned when a required argument collected no
// values and has no default.
type MissingRequiredError struct {
	Spec string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("missing required argument %q", e.Spec)
}

// ExclusiveGroupError is returned when two or more members of the same
// mutually-exclusive group were set in one invocation. Names are in schema
// declaration order.
type ExclusiveGroupError struct {
	Group string
	Names []string
}

func (e *ExclusiveGroupError) Error() string {
	return fmt.Sprintf("arguments %s are mutually exclusive (group %q)", strings.Join(e.Names, ", "), e.Group)
}
