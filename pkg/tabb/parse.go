// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabb

// Parse runs one pass over the raw invocation items (post-program-name)
// against a built schema: tokenize, match, then coerce and validate. It
// returns exactly one of a Result or a structured error; it never writes
// to a stream and never terminates the process.
//
// A pass is a pure computation over the immutable schema and its own
// pass-local state, so any number of Parse calls may run concurrently
// against the same Schema.
func Parse(schema *Schema, args []string) (*Result, error) {
	st, err := match(schema, Tokenize(args))
	if err != nil {
		return nil, err
	}
	return finalize(st)
}
