// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tabb is a declarative command-line argument parsing engine:
// given a schema of expected flags, options, positionals and nested
// subcommands, it consumes raw invocation tokens and produces either a
// typed Result or a structured error describing exactly what was
// malformed.
//
// # Declaring a schema
//
// Schemas are declared with the builder and validated eagerly; an invalid
// declaration is reported as a *SchemaError before any parsing happens:
//
//	schema, err := tabb.New("todo",
//	    tabb.Flag("verbose").Short('v'),
//	    tabb.Option("limit").Short('n').Type(tabb.Int()).Default(int64(20)),
//	).Command(tabb.New("add",
//	    tabb.Flag("force"),
//	    tabb.Positional("text").Arity(tabb.OneOrMore),
//	)).Build()
//
// # Parsing
//
// Parse walks the raw arguments against the schema and returns a Result
// with typed accessors:
//
//	res, err := tabb.Parse(schema, os.Args[1:])
//	if err != nil {
//	    // err is one of the structured kinds below; render it however
//	    // your program presents errors.
//	}
//	if res.Bool("verbose") { ... }
//
// The grammar is the POSIX/GNU flavor: "--name", "--name=value", short
// flags "-x", grouped shorts "-xyz", attached short values "-oFILE", and
// "--" to end flag interpretation. Flag lookup is exact and
// case-sensitive; there is no prefix or abbreviation matching. Negative
// numbers ("-5", "-3.14") are never treated as flags. Subcommand dispatch
// happens only after the level's declared positionals are satisfied.
//
// # Errors
//
// All failures are structured values usable with errors.As, one type per
// kind: SchemaError (construction time only), UnknownArgumentError,
// UnexpectedPositionalError, MissingValueError, TooManyValuesError,
// InvalidValueError, MissingRequiredError and ExclusiveGroupError. The
// first error in a left-to-right scan halts the pass; nothing is
// collected further and no error is downgraded to a default.
//
// The engine itself never prints, never exits, and has no opinion on
// help text. Rendering is the caller's job (see
// example/todo and cmd/tabbcheck).
package tabb
