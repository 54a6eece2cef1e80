// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabb

import "fmt"

// SpecBuilder declares one argument. Obtain one from Flag, Option or
// Positional, chain setters, and pass it to New. The builder is scaffolding
// only; Build copies its state into an immutable ArgumentSpec.
type SpecBuilder struct {
	spec ArgumentSpec
}

// Flag declares a boolean-presence argument. The name doubles as its long
// flag; add shorts or extra longs with Short and Long.
func Flag(name string) *SpecBuilder {
	return &SpecBuilder{spec: ArgumentSpec{
		Name:   name,
		Kind:   KindFlag,
		Longs:  []string{name},
		Values: ZeroOrOne,
		Type:   Bool(),
	}}
}

// Option declares a named argument that consumes values. The name doubles
// as its long flag. The default type is string with arity "exactly one".
func Option(name string) *SpecBuilder {
	return &SpecBuilder{spec: ArgumentSpec{
		Name:   name,
		Kind:   KindOption,
		Longs:  []string{name},
		Values: ExactlyOne,
		Type:   String(),
	}}
}

// Positional declares an argument bound by position rather than name.
func Positional(name string) *SpecBuilder {
	return &SpecBuilder{spec: ArgumentSpec{
		Name:   name,
		Kind:   KindPositional,
		Values: ExactlyOne,
		Type:   String(),
	}}
}

// Long replaces the spec's long flags.
func (b *SpecBuilder) Long(names ...string) *SpecBuilder {
	b.spec.Longs = append([]string(nil), names...)
	return b
}

// Short adds short flag runes.
func (b *SpecBuilder) Short(runes ...rune) *SpecBuilder {
	b.spec.Shorts = append(b.spec.Shorts, runes...)
	return b
}

// Type sets the value converter.
func (b *SpecBuilder) Type(c Converter) *SpecBuilder {
	b.spec.Type = c
	return b
}

// Arity sets the allowed value count.
func (b *SpecBuilder) Arity(a Arity) *SpecBuilder {
	b.spec.Values = a
	return b
}

// Default sets the value used when the argument is absent. The default is
// stored as given; it is never passed through the converter.
func (b *SpecBuilder) Default(v any) *SpecBuilder {
	b.spec.Default = v
	return b
}

// Required marks the argument as mandatory.
func (b *SpecBuilder) Required() *SpecBuilder {
	b.spec.Required = true
	return b
}

// Exclusive places the argument in a mutually-exclusive group. At most one
// member of a group may be set per invocation.
func (b *SpecBuilder) Exclusive(group string) *SpecBuilder {
	b.spec.Group = group
	return b
}

// Builder assembles a schema level: a command name, its argument specs and
// any subcommands. Subcommand builders nest strictly top-down, so schema
// trees cannot contain cycles.
type Builder struct {
	name     string
	specs    []*SpecBuilder
	commands []*Builder
}

// New starts a schema for the named command.
func New(name string, specs ...*SpecBuilder) *Builder {
	return &Builder{name: name, specs: specs}
}

// Args appends more argument specs.
func (b *Builder) Args(specs ...*SpecBuilder) *Builder {
	b.specs = append(b.specs, specs...)
	return b
}

// Command nests a subcommand schema.
func (b *Builder) Command(child *Builder) *Builder {
	b.commands = append(b.commands, child)
	return b
}

// Build validates the declaration and returns the immutable schema. All
// structural problems surface here as a *SchemaError; parsing assumes a
// built schema is sound.
func (b *Builder) Build() (*Schema, error) {
	schema := b.assemble()
	if err := schema.validate(); err != nil {
		return nil, err
	}
	return schema, nil
}

// MustBuild is Build for schemas declared in code, where an invalid
// declaration is a programming error.
func MustBuild(b *Builder) *Schema {
	schema, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("tabb: invalid schema: %v", err))
	}
	return schema
}

func (b *Builder) assemble() *Schema {
	schema := &Schema{
		name:     b.name,
		longs:    make(map[string]*ArgumentSpec),
		shorts:   make(map[rune]*ArgumentSpec),
		commands: make(map[string]*Schema),
	}
	for _, sb := range b.specs {
		spec := sb.spec
		spec.Longs = append([]string(nil), sb.spec.Longs...)
		spec.Shorts = append([]rune(nil), sb.spec.Shorts...)
		schema.specs = append(schema.specs, &spec)
		if spec.Kind == KindPositional {
			schema.positionals = append(schema.positionals, &spec)
		}
	}
	for _, child := range b.commands {
		schema.commands[child.name] = child.assemble()
		schema.commandSeq = append(schema.commandSeq, child.name)
	}
	return schema
}
