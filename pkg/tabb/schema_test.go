// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabb

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildValid(t *testing.T) {
	schema, err := New("app",
		Flag("verbose").Short('v'),
		Option("out").Short('o'),
		Option("level").Type(Enum("debug", "info", "warn")),
		Positional("input"),
	).Command(New("add",
		Flag("force").Short('f'),
		Positional("text").Arity(OneOrMore),
	)).Command(New("remove",
		Positional("id").Type(Int()).Required(),
	)).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if schema.Name() != "app" {
		t.Errorf("Name() = %q, want %q", schema.Name(), "app")
	}
	if got := schema.Commands(); len(got) != 2 || got[0] != "add" || got[1] != "remove" {
		t.Errorf("Commands() = %v, want [add remove]", got)
	}
	if _, ok := schema.Command("add"); !ok {
		t.Error("Command(add) not found")
	}
	if len(schema.Specs()) != 4 {
		t.Errorf("Specs() len = %d, want 4", len(schema.Specs()))
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
		reason  string // substring of the SchemaError reason
	}{
		{
			name:    "empty spec name",
			builder: New("app", Option("")),
			reason:  "empty name",
		},
		{
			name:    "duplicate name",
			builder: New("app", Flag("x").Long("one"), Option("x").Long("two")),
			reason:  "duplicate name",
		},
		{
			name:    "duplicate long flag",
			builder: New("app", Flag("verbose"), Option("loud").Long("verbose")),
			reason:  "already used",
		},
		{
			name:    "duplicate short flag",
			builder: New("app", Flag("verbose").Short('v'), Option("value").Short('v')),
			reason:  "already used",
		},
		{
			name:    "required with zero-or-more",
			builder: New("app", Option("tag").Arity(ZeroOrMore).Required()),
			reason:  "required is inconsistent",
		},
		{
			name:    "required flag",
			builder: New("app", Flag("force").Required()),
			reason:  "required is inconsistent",
		},
		{
			name:    "required exclusive member",
			builder: New("app", Option("a").Required().Exclusive("grp")),
			reason:  "exclusive group",
		},
		{
			name:    "positional with flag alias",
			builder: New("app", Positional("input").Long("input")),
			reason:  "flag aliases",
		},
		{
			name:    "positional in exclusive group",
			builder: New("app", Positional("input").Exclusive("grp")),
			reason:  "exclusive group",
		},
		{
			name:    "flag with fixed arity",
			builder: New("app", Flag("force").Arity(Exactly(2))),
			reason:  "flag cannot take arity",
		},
		{
			name:    "invalid long flag",
			builder: New("app", Option("count").Long("9lives")),
			reason:  "invalid long flag",
		},
		{
			name:    "invalid short flag",
			builder: New("app", Option("count").Short('1')),
			reason:  "must be a letter",
		},
		{
			name:    "no flags on option",
			builder: New("app", Option("count").Long()),
			reason:  "at least one long or short flag",
		},
		{
			name:    "arity maximum below minimum",
			builder: New("app", Option("point").Arity(Arity{Min: 2, Max: 1})),
			reason:  "below minimum",
		},
		{
			name:    "missing converter",
			builder: New("app", Option("count").Type(Converter{})),
			reason:  "missing converter",
		},
		{
			name: "unbounded positional with subcommand",
			builder: New("app", Positional("files").Arity(ZeroOrMore)).
				Command(New("add")),
			reason: "unbounded positional",
		},
		{
			name:    "duplicate subcommand",
			builder: New("app").Command(New("add")).Command(New("add")),
			reason:  "duplicate subcommand",
		},
		{
			name: "invalid nested schema",
			builder: New("app").Command(New("add",
				Flag("force"), Option("loud").Long("force"),
			)),
			reason: "already used",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			if err == nil {
				t.Fatal("Build() succeeded, want SchemaError")
			}
			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("Build() error = %T, want *SchemaError", err)
			}
			if !strings.Contains(schemaErr.Reason, tt.reason) {
				t.Errorf("reason = %q, want substring %q", schemaErr.Reason, tt.reason)
			}
		})
	}
}

func TestMustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustBuild did not panic on invalid schema")
		}
	}()
	MustBuild(New("app", Option("")))
}

func TestArityString(t *testing.T) {
	tests := []struct {
		arity Arity
		want  string
	}{
		{ExactlyOne, "1"},
		{ZeroOrOne, "?"},
		{ZeroOrMore, "*"},
		{OneOrMore, "+"},
		{Exactly(3), "{3}"},
		{Arity{Min: 2, Max: 4}, "{2,4}"},
		{Arity{Min: 2, Max: -1}, "{2,}"},
	}
	for _, tt := range tests {
		if got := tt.arity.String(); got != tt.want {
			t.Errorf("Arity%+v.String() = %q, want %q", tt.arity, got, tt.want)
		}
	}
}
