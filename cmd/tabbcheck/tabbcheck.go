// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tabbcheck validates argument schema documents.
//
// It loads a TOML or YAML schema file, runs schema validation, and prints a
// summary of the declared grammar. Arguments after "--" are parsed against
// the loaded schema as a trial invocation, so a schema and a sample command
// line can be checked together:
//
//	tabbcheck todo.toml
//	tabbcheck todo.toml -- add --tag home "buy milk"
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/yeetrun/tabb/pkg/schemafile"
	"github.com/yeetrun/tabb/pkg/tabb"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	okColor   = color.New(color.FgGreen)
	nameColor = color.New(color.FgCyan)
)

// ownSchema is tabbcheck's own command line, declared with the library it
// checks.
var ownSchema = tabb.MustBuild(tabb.New("tabbcheck",
	tabb.Flag("quiet").Short('q'),
	tabb.Option("format").Short('f').Type(tabb.Enum("auto", "toml", "yaml")).Default("auto"),
	tabb.Positional("file").Required(),
	tabb.Positional("trial").Arity(tabb.ZeroOrMore),
))

func main() {
	res, err := tabb.Parse(ownSchema, os.Args[1:])
	if err != nil {
		printParseError("tabbcheck", err)
		fmt.Fprintln(os.Stderr, "usage: tabbcheck [-q] [-f toml|yaml] <schema-file> [-- trial args]")
		os.Exit(2)
	}

	file := res.String("file")
	schema, err := loadSchema(file, res.String("format"))
	if err != nil {
		errColor.Fprintf(os.Stderr, "%s: ", file)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if !res.Bool("quiet") {
		printSummary(schema, 0)
	}
	okColor.Printf("%s: ok\n", file)

	if trial := res.Strings("trial"); len(trial) > 0 {
		if err := runTrial(schema, trial); err != nil {
			os.Exit(1)
		}
	}
}

func loadSchema(path, format string) (*tabb.Schema, error) {
	switch format {
	case "toml", "yaml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if format == "toml" {
			return schemafile.ParseTOML(data)
		}
		return schemafile.ParseYAML(data)
	default:
		return schemafile.Load(path)
	}
}

// printSummary walks the schema tree and prints one line per argument and
// subcommand.
func printSummary(schema *tabb.Schema, depth int) {
	indent := strings.Repeat("  ", depth)
	nameColor.Printf("%s%s\n", indent, schema.Name())
	for _, spec := range schema.Specs() {
		fmt.Printf("%s  %-20s %s\n", indent, describeSpec(spec), spec.Type.Name())
	}
	for _, name := range schema.Commands() {
		child, _ := schema.Command(name)
		printSummary(child, depth+1)
	}
}

func describeSpec(spec *tabb.ArgumentSpec) string {
	if spec.Kind == tabb.KindPositional {
		return fmt.Sprintf("<%s>%s", spec.Name, arityMark(spec))
	}
	var parts []string
	for _, r := range spec.Shorts {
		parts = append(parts, "-"+string(r))
	}
	for _, l := range spec.Longs {
		parts = append(parts, "--"+l)
	}
	return strings.Join(parts, ", ") + arityMark(spec)
}

func arityMark(spec *tabb.ArgumentSpec) string {
	if spec.Kind == tabb.KindFlag || spec.Values == tabb.ExactlyOne {
		return ""
	}
	return spec.Values.String()
}

func runTrial(schema *tabb.Schema, args []string) error {
	res, err := tabb.Parse(schema, args)
	if err != nil {
		printParseError(schema.Name(), err)
		return err
	}
	okColor.Printf("trial: ok\n")
	if path := res.Path(); len(path) > 0 {
		fmt.Printf("  command: %s\n", strings.Join(path, " "))
	}
	return nil
}

// printParseError renders a parse failure, including did-you-mean
// suggestions for unknown flags.
func printParseError(prog string, err error) {
	errColor.Fprintf(os.Stderr, "%s: ", prog)
	fmt.Fprintln(os.Stderr, err)
	var unknown *tabb.UnknownArgumentError
	if errors.As(err, &unknown) && len(unknown.Suggestions) > 0 {
		fmt.Fprintf(os.Stderr, "did you mean %s?\n", strings.Join(unknown.Suggestions, ", "))
	}
}
