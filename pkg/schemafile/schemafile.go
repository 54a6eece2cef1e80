// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schemafile loads argument schemas from TOML or YAML documents.
//
// A document mirrors the builder API one-to-one: a command name, a list of
// argument declarations and a list of nested subcommand documents. Loading
// runs the same validation as building a schema in code, so a document that
// loads cleanly parses exactly like its hand-written equivalent.
package schemafile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/yeetrun/tabb/pkg/tabb"
)

// Document is one command level of a schema file.
type Document struct {
	Name     string     `toml:"name" yaml:"name"`
	Args     []Argument `toml:"args" yaml:"args"`
	Commands []Document `toml:"commands" yaml:"commands"`
}

// Argument is one argument declaration. Kind defaults to "option"; Type
// defaults to "bool" for flags and "string" otherwise; Count defaults to
// the kind's natural arity.
type Argument struct {
	Name     string   `toml:"name" yaml:"name"`
	Kind     string   `toml:"kind" yaml:"kind"`
	Long     []string `toml:"long" yaml:"long"`
	Short    string   `toml:"short" yaml:"short"`
	Type     string   `toml:"type" yaml:"type"`
	Choices  []string `toml:"choices" yaml:"choices"`
	Pattern  string   `toml:"pattern" yaml:"pattern"`
	Min      *float64 `toml:"min" yaml:"min"`
	Max      *float64 `toml:"max" yaml:"max"`
	Count    string   `toml:"count" yaml:"count"`
	Default  *string  `toml:"default" yaml:"default"`
	Required bool     `toml:"required" yaml:"required"`
	Group    string   `toml:"group" yaml:"group"`
}

// Load reads the file and builds a schema. The format is chosen by
// extension: .toml, .yaml or .yml.
func Load(path string) (*tabb.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("schemafile: unsupported extension %q", ext)
	}
}

// ParseTOML builds a schema from a TOML document. Unknown keys are
// rejected.
func ParseTOML(data []byte) (*tabb.Schema, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("schemafile: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("schemafile: unknown key %q", undecoded[0].String())
	}
	return doc.Schema()
}

// ParseYAML builds a schema from a YAML document. Unknown keys are
// rejected.
func ParseYAML(data []byte) (*tabb.Schema, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("schemafile: %w", err)
	}
	return doc.Schema()
}

// Schema builds and validates the schema the document declares.
func (d *Document) Schema() (*tabb.Schema, error) {
	builder, err := d.builder()
	if err != nil {
		return nil, err
	}
	return builder.Build()
}

func (d *Document) builder() (*tabb.Builder, error) {
	b := tabb.New(d.Name)
	for _, arg := range d.Args {
		sb, err := arg.build()
		if err != nil {
			return nil, fmt.Errorf("schemafile: argument %q: %w", arg.Name, err)
		}
		b.Args(sb)
	}
	for _, child := range d.Commands {
		cb, err := child.builder()
		if err != nil {
			return nil, err
		}
		b.Command(cb)
	}
	return b, nil
}

func (a *Argument) build() (*tabb.SpecBuilder, error) {
	var sb *tabb.SpecBuilder
	switch a.Kind {
	case "flag":
		sb = tabb.Flag(a.Name)
	case "option", "":
		sb = tabb.Option(a.Name)
	case "positional":
		sb = tabb.Positional(a.Name)
	default:
		return nil, fmt.Errorf("unknown kind %q", a.Kind)
	}

	if a.Long != nil {
		sb.Long(a.Long...)
	}
	if a.Short != "" {
		sb.Short([]rune(a.Short)...)
	}

	conv, err := a.converter()
	if err != nil {
		return nil, err
	}
	if conv != nil {
		sb.Type(*conv)
	}

	if a.Count != "" {
		arity, err := parseArity(a.Count)
		if err != nil {
			return nil, err
		}
		sb.Arity(arity)
	}
	if a.Default != nil {
		// Convert eagerly so the parse result carries a typed default,
		// and so a bad default fails at load time rather than at use.
		c := conv
		if c == nil {
			def := defaultConverter(a.Kind)
			c = &def
		}
		v, err := c.Convert(*a.Default)
		if err != nil {
			return nil, fmt.Errorf("default %q: %w", *a.Default, err)
		}
		sb.Default(v)
	}
	if a.Required {
		sb.Required()
	}
	if a.Group != "" {
		sb.Exclusive(a.Group)
	}
	return sb, nil
}

func defaultConverter(kind string) tabb.Converter {
	if kind == "flag" {
		return tabb.Bool()
	}
	return tabb.String()
}

// converter resolves the declared type name. A nil return means the kind's
// default converter applies.
func (a *Argument) converter() (*tabb.Converter, error) {
	var conv tabb.Converter
	switch a.Type {
	case "":
		return nil, nil
	case "string":
		conv = tabb.String()
	case "int":
		if a.Min != nil || a.Max != nil {
			lo, hi, err := a.bounds()
			if err != nil {
				return nil, err
			}
			conv = tabb.IntRange(int64(lo), int64(hi))
		} else {
			conv = tabb.Int()
		}
	case "float":
		if a.Min != nil || a.Max != nil {
			lo, hi, err := a.bounds()
			if err != nil {
				return nil, err
			}
			conv = tabb.FloatRange(lo, hi)
		} else {
			conv = tabb.Float()
		}
	case "bool":
		conv = tabb.Bool()
	case "duration":
		conv = tabb.Duration()
	case "url":
		conv = tabb.URL()
	case "semver":
		conv = tabb.Semver()
	case "enum":
		if len(a.Choices) == 0 {
			return nil, fmt.Errorf("enum type needs choices")
		}
		conv = tabb.Enum(a.Choices...)
	case "pattern":
		if a.Pattern == "" {
			return nil, fmt.Errorf("pattern type needs a pattern")
		}
		re, err := regexp.Compile(a.Pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern: %w", err)
		}
		conv = tabb.Pattern(re)
	default:
		return nil, fmt.Errorf("unknown type %q", a.Type)
	}
	if a.Type != "enum" && len(a.Choices) > 0 {
		return nil, fmt.Errorf("choices only apply to the enum type")
	}
	if a.Type != "pattern" && a.Pattern != "" {
		return nil, fmt.Errorf("pattern only applies to the pattern type")
	}
	if a.Type != "int" && a.Type != "float" && (a.Min != nil || a.Max != nil) {
		return nil, fmt.Errorf("min/max only apply to int and float types")
	}
	return &conv, nil
}

func (a *Argument) bounds() (lo, hi float64, err error) {
	if a.Min == nil || a.Max == nil {
		return 0, 0, fmt.Errorf("min and max must be set together")
	}
	if *a.Min > *a.Max {
		return 0, 0, fmt.Errorf("min %v exceeds max %v", *a.Min, *a.Max)
	}
	return *a.Min, *a.Max, nil
}

// parseArity reads a count spelling: "?" for zero or one, "*" for zero or
// more, "+" for one or more, or a positive integer for an exact count.
func parseArity(s string) (tabb.Arity, error) {
	switch s {
	case "?":
		return tabb.ZeroOrOne, nil
	case "*":
		return tabb.ZeroOrMore, nil
	case "+":
		return tabb.OneOrMore, nil
	}
	if m, rest, ok := strings.Cut(s, ".."); ok {
		lo, err := strconv.Atoi(m)
		if err != nil || lo < 0 {
			return tabb.Arity{}, fmt.Errorf("bad count %q", s)
		}
		if rest == "" {
			return tabb.Arity{Min: lo, Max: -1}, nil
		}
		hi, err := strconv.Atoi(rest)
		if err != nil || hi < lo {
			return tabb.Arity{}, fmt.Errorf("bad count %q", s)
		}
		return tabb.Arity{Min: lo, Max: hi}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return tabb.Arity{}, fmt.Errorf("bad count %q", s)
	}
	return tabb.Exactly(n), nil
}
