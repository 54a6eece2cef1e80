// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabb

import (
	"fmt"
	"unicode"
)

// Kind classifies an ArgumentSpec.
type Kind int

const (
	// KindFlag is a boolean-presence argument that carries no value.
	KindFlag Kind = iota
	// KindOption is a named argument that consumes one or more values.
	KindOption
	// KindPositional is an argument identified by position rather than name.
	KindPositional
)

func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindOption:
		return "option"
	case KindPositional:
		return "positional"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Arity is the allowed count of values an argument may collect over one
// invocation. Max < 0 means unbounded.
type Arity struct {
	Min int
	Max int
}

// Common arities.
var (
	ExactlyOne = Arity{Min: 1, Max: 1}
	ZeroOrOne  = Arity{Min: 0, Max: 1}
	ZeroOrMore = Arity{Min: 0, Max: -1}
	OneOrMore  = Arity{Min: 1, Max: -1}
)

// Exactly returns an arity accepting exactly n values.
func Exactly(n int) Arity {
	return Arity{Min: n, Max: n}
}

// Unbounded reports whether the arity has no upper limit.
func (a Arity) Unbounded() bool {
	return a.Max < 0
}

func (a Arity) String() string {
	switch a {
	case ExactlyOne:
		return "1"
	case ZeroOrOne:
		return "?"
	case ZeroOrMore:
		return "*"
	case OneOrMore:
		return "+"
	}
	if a.Unbounded() {
		return fmt.Sprintf("{%d,}", a.Min)
	}
	if a.Min == a.Max {
		return fmt.Sprintf("{%d}", a.Min)
	}
	return fmt.Sprintf("{%d,%d}", a.Min, a.Max)
}

// ArgumentSpec describes one expected argument. Specs are declared through
// the builder and are immutable once the schema is built.
type ArgumentSpec struct {
	Name     string
	Kind     Kind
	Longs    []string // long flag strings, without the leading dashes
	Shorts   []rune   // short flag runes
	Values   Arity
	Type     Converter
	Default  any // used as-is when no value was collected; never converted
	Required bool
	Group    string // mutually-exclusive group id, empty for none
}

// Schema is an immutable, validated description of one command level:
// its argument specs plus any nested subcommand schemas. Build it with
// Builder.Build; a Schema is safe for concurrent use by any number of
// parsing passes.
type Schema struct {
	name        string
	specs       []*ArgumentSpec
	positionals []*ArgumentSpec
	longs       map[string]*ArgumentSpec
	shorts      map[rune]*ArgumentSpec
	commands    map[string]*Schema
	commandSeq  []string
}

// Name returns the command name the schema was declared with.
func (s *Schema) Name() string {
	return s.name
}

// Specs returns the argument specs in declaration order.
func (s *Schema) Specs() []*ArgumentSpec {
	out := make([]*ArgumentSpec, len(s.specs))
	copy(out, s.specs)
	return out
}

// Commands returns the subcommand names in declaration order.
func (s *Schema) Commands() []string {
	out := make([]string, len(s.commandSeq))
	copy(out, s.commandSeq)
	return out
}

// Command returns the subcommand schema with the given name.
func (s *Schema) Command(name string) (*Schema, bool) {
	sub, ok := s.commands[name]
	return sub, ok
}

// validLongFlag reports whether name is usable as a long flag: it must
// start with a letter and contain only letters, digits, '-' and '_'.
func validLongFlag(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 {
			if !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return false
		}
	}
	return true
}

// validate checks one schema level and recurses into subcommands. Called
// once from Builder.Build; parsing never re-validates.
func (s *Schema) validate() error {
	names := make(map[string]bool)
	for _, spec := range s.specs {
		if spec.Name == "" {
			return &SchemaError{Schema: s.name, Reason: "spec with empty name"}
		}
		if names[spec.Name] {
			return &SchemaError{Schema: s.name, Spec: spec.Name, Reason: "duplicate name"}
		}
		names[spec.Name] = true

		if err := s.validateSpec(spec); err != nil {
			return err
		}
	}

	if len(s.commandSeq) > 0 {
		// Unbounded positionals consume every later positional token, so a
		// subcommand at the same level could never be reached.
		for _, spec := range s.positionals {
			if spec.Values.Unbounded() {
				return &SchemaError{
					Schema: s.name,
					Spec:   spec.Name,
					Reason: "unbounded positional cannot be combined with subcommands",
				}
			}
		}
	}
	seen := make(map[string]bool)
	for _, name := range s.commandSeq {
		if name == "" {
			return &SchemaError{Schema: s.name, Reason: "subcommand with empty name"}
		}
		if seen[name] {
			return &SchemaError{Schema: s.name, Reason: fmt.Sprintf("duplicate subcommand %q", name)}
		}
		seen[name] = true
		if err := s.commands[name].validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Schema) validateSpec(spec *ArgumentSpec) error {
	fail := func(reason string) error {
		return &SchemaError{Schema: s.name, Spec: spec.Name, Reason: reason}
	}

	if spec.Values.Min < 0 {
		return fail("negative minimum arity")
	}
	if !spec.Values.Unbounded() && spec.Values.Max < spec.Values.Min {
		return fail("arity maximum below minimum")
	}
	if spec.Required && spec.Values.Min == 0 {
		// A required entry that is satisfied by zero values is contradictory.
		return fail(fmt.Sprintf("required is inconsistent with arity %s", spec.Values))
	}
	if spec.Required && spec.Group != "" {
		return fail("member of an exclusive group cannot be individually required")
	}
	if spec.Type.fn == nil {
		return fail("missing converter")
	}

	switch spec.Kind {
	case KindFlag, KindOption:
		if len(spec.Longs) == 0 && len(spec.Shorts) == 0 {
			return fail("needs at least one long or short flag")
		}
	case KindPositional:
		if len(spec.Longs) > 0 || len(spec.Shorts) > 0 {
			return fail("positional cannot have flag aliases")
		}
		if spec.Group != "" {
			return fail("positional cannot join an exclusive group")
		}
	default:
		return fail(fmt.Sprintf("unsupported kind %v", spec.Kind))
	}

	if spec.Kind == KindFlag {
		if spec.Values != ZeroOrOne && spec.Values != ZeroOrMore {
			return fail(fmt.Sprintf("flag cannot take arity %s", spec.Values))
		}
	}

	for _, long := range spec.Longs {
		if !validLongFlag(long) {
			return fail(fmt.Sprintf("invalid long flag %q", long))
		}
		if other, ok := s.longs[long]; ok && other != spec {
			return fail(fmt.Sprintf("long flag --%s already used by %q", long, other.Name))
		}
		s.longs[long] = spec
	}
	for _, short := range spec.Shorts {
		if !unicode.IsLetter(short) {
			return fail(fmt.Sprintf("invalid short flag %q: must be a letter", string(short)))
		}
		if other, ok := s.shorts[short]; ok && other != spec {
			return fail(fmt.Sprintf("short flag -%s already used by %q", string(short), other.Name))
		}
		s.shorts[short] = spec
	}
	return nil
}
